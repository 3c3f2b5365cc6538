package abi

import (
	"errors"
	"fmt"
	"math"
	"math/big"
)

const wordSize = 32

// ErrTruncated reports calldata shorter than its fixed head.
var ErrTruncated = errors.New("calldata truncated")

// words is the argument section of calldata, addressed in 32-byte slots.
type words []byte

func (w words) slot(i int) ([]byte, error) {
	start := i * wordSize
	if i < 0 || start+wordSize > len(w) {
		return nil, fmt.Errorf("%w: slot %d beyond %d bytes", ErrTruncated, i, len(w))
	}
	return w[start : start+wordSize], nil
}

func (w words) bigInt(i int) (*big.Int, error) {
	s, err := w.slot(i)
	if err != nil {
		return nil, err
	}
	return new(big.Int).SetBytes(s), nil
}

// offset reads slot i as a byte offset relative to the argument section and bounds it.
func (w words) offset(i int) (int, error) {
	v, err := w.bigInt(i)
	if err != nil {
		return 0, err
	}
	return w.bound(v, "offset")
}

func (w words) bound(v *big.Int, what string) (int, error) {
	if !v.IsInt64() || v.Int64() > math.MaxInt32 || int(v.Int64()) > len(w) {
		return 0, fmt.Errorf("%s %s beyond data bounds (%d bytes)", what, v.String(), len(w))
	}
	return int(v.Int64()), nil
}

// dynamicBytes reads a length-prefixed byte string located at off.
func (w words) dynamicBytes(off int) ([]byte, error) {
	if off+wordSize > len(w) {
		return nil, fmt.Errorf("length word at %d beyond data bounds (%d bytes)", off, len(w))
	}
	length := new(big.Int).SetBytes(w[off : off+wordSize])
	n, err := w.bound(length, "length")
	if err != nil {
		return nil, err
	}
	start := off + wordSize
	if start+n > len(w) {
		return nil, fmt.Errorf("dynamic bytes [%d,%d) beyond data bounds (%d bytes)", start, start+n, len(w))
	}
	return w[start : start+n], nil
}

// wordArray reads a length-prefixed array of 32-byte words located at off.
func (w words) wordArray(off int, maxLen int) ([][wordSize]byte, error) {
	if off+wordSize > len(w) {
		return nil, fmt.Errorf("array length at %d beyond data bounds (%d bytes)", off, len(w))
	}
	length := new(big.Int).SetBytes(w[off : off+wordSize])
	if maxLen > 0 && length.Cmp(big.NewInt(int64(maxLen))) > 0 {
		return nil, fmt.Errorf("%w: %s entries, cap %d", ErrBatchTooLarge, length.String(), maxLen)
	}
	n, err := w.bound(length, "array length")
	if err != nil {
		return nil, err
	}
	start := off + wordSize
	if start+n*wordSize > len(w) {
		return nil, fmt.Errorf("array of %d words at %d beyond data bounds (%d bytes)", n, start, len(w))
	}
	out := make([][wordSize]byte, n)
	for i := range out {
		copy(out[i][:], w[start+i*wordSize:])
	}
	return out, nil
}

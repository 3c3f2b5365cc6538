// Package safe provides helpers for numeric conversions with overflow checks.
package safe

import (
	"fmt"
	"math"
)

type integer interface {
	~int | ~int32 | ~int64 | ~uint | ~uint32 | ~uint64
}

// Uint64 converts an integer to uint64, rejecting negatives.
func Uint64[T integer](v T) (uint64, error) {
	if v < 0 {
		return 0, fmt.Errorf("value %d out of uint64 range", v)
	}
	return uint64(v), nil
}

// Int64 converts an integer to int64, rejecting values above math.MaxInt64.
// Block numbers are stored as BIGINT, so every write goes through here.
func Int64[T integer](v T) (int64, error) {
	if v < 0 {
		return int64(v), nil
	}
	if uint64(v) > math.MaxInt64 {
		return 0, fmt.Errorf("value %d out of int64 range", v)
	}
	return int64(v), nil
}

// Uint32 converts an integer to uint32 with range validation.
func Uint32[T integer](v T) (uint32, error) {
	if v < 0 {
		return 0, fmt.Errorf("value %d out of uint32 range", v)
	}
	if uint64(v) > math.MaxUint32 {
		return 0, fmt.Errorf("value %d out of uint32 range", v)
	}
	return uint32(v), nil
}

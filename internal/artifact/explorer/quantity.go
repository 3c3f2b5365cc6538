package explorer

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

// ParseQuantity normalizes a block number or other quantity that the explorer
// may encode either as 0x-prefixed hex or as a decimal string.
func ParseQuantity(raw string) (uint64, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, errors.New("empty quantity")
	}
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		// Explorers pad quantities and render zero as a bare "0x"; hexutil wants canonical form.
		digits := strings.TrimLeft(s[2:], "0")
		if digits == "" {
			return 0, nil
		}
		v, err := hexutil.DecodeUint64("0x" + digits)
		if err != nil {
			return 0, fmt.Errorf("parse hex quantity %q: %w", raw, err)
		}
		return v, nil
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse decimal quantity %q: %w", raw, err)
	}
	return v, nil
}

func parseOptionalQuantity(raw string) uint64 {
	if strings.TrimSpace(raw) == "" {
		return 0
	}
	v, err := ParseQuantity(raw)
	if err != nil {
		return 0
	}
	return v
}

func parseTimestamp(raw string) time.Time {
	sec := parseOptionalQuantity(raw)
	if sec == 0 {
		return time.Time{}
	}
	return time.Unix(int64(sec), 0).UTC()
}

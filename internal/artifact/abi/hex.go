package abi

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

// ParseHex decodes calldata as rendered by explorers. The 0x prefix is optional and "0x"
// alone is empty calldata.
func ParseHex(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "0x" || s == "0X" {
		return nil, nil
	}
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		s = "0x" + s
	}
	b, err := hexutil.Decode(s)
	if err != nil {
		return nil, fmt.Errorf("decode calldata: %w", err)
	}
	return b, nil
}

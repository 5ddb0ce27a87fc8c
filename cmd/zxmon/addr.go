package main

import (
	"fmt"
	"strconv"
	"strings"
)

// parseAddress accepts the same address notations the reference
// engine's monitor does: $hex, 0xhex, bare hex, and #decimal.
func parseAddress(s string) (uint16, error) {
	s = strings.TrimSpace(s)
	switch {
	case strings.HasPrefix(s, "#"):
		v, err := strconv.ParseUint(s[1:], 10, 16)
		return uint16(v), err
	case strings.HasPrefix(s, "$"):
		v, err := strconv.ParseUint(s[1:], 16, 16)
		return uint16(v), err
	case strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X"):
		v, err := strconv.ParseUint(s[2:], 16, 16)
		return uint16(v), err
	default:
		v, err := strconv.ParseUint(s, 16, 16)
		if err != nil {
			return 0, fmt.Errorf("not a valid address: %q", s)
		}
		return uint16(v), nil
	}
}

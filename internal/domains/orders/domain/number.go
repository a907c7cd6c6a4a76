package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// NumberPrefix is the prefix of every human-facing order number.
const NumberPrefix = "ORD-"

// ParseNumber extracts the numeric suffix of an order number. Numbers that do
// not match the ORD-<integer> pattern are reported as absent, never as errors.
func ParseNumber(number string) (int64, bool) {
	if !strings.HasPrefix(number, NumberPrefix) {
		return 0, false
	}
	seq, err := strconv.ParseInt(number[len(NumberPrefix):], 10, 64)
	if err != nil || seq < 0 {
		return 0, false
	}
	return seq, true
}

// FormatNumber renders a sequence value as an order number.
func FormatNumber(seq int64) string {
	return fmt.Sprintf("%s%d", NumberPrefix, seq)
}

// NextNumber derives the order number following the highest observed sequence.
// With no prior orders (maxSeq == 0) the sequence starts at ORD-1.
func NextNumber(maxSeq int64) string {
	return FormatNumber(maxSeq + 1)
}

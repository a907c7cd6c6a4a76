package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		number string
		seq    int64
		ok     bool
	}{
		{"ORD-1", 1, true},
		{"ORD-42", 42, true},
		{"ORD-abc", 0, false},
		{"ORD-", 0, false},
		{"TKT-7", 0, false},
		{"", 0, false},
		{"ORD--3", 0, false},
	}
	for _, tt := range tests {
		seq, ok := ParseNumber(tt.number)
		assert.Equal(t, tt.ok, ok, tt.number)
		assert.Equal(t, tt.seq, seq, tt.number)
	}
}

func TestNextNumber(t *testing.T) {
	assert.Equal(t, "ORD-8", NextNumber(7))
	assert.Equal(t, "ORD-1", NextNumber(0))
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "ORD-1001", FormatNumber(1001))
}

package scraper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripCurrencyArtifact(t *testing.T) {
	assert.Equal(t, "£51.77", stripCurrencyArtifact("Â£51.77"))
	assert.Equal(t, "£51.77", stripCurrencyArtifact("£51.77"))
	assert.Equal(t, "", stripCurrencyArtifact(""))
}

func TestParsePrice(t *testing.T) {
	tests := []struct {
		input string
		want  float64
		ok    bool
	}{
		{"Â£51.77", 51.77, true},
		{"£22.60", 22.60, true},
		{"51.77", 51.77, true},
		{" Â£19.00 ", 19.00, true},
		{"", 0, false},
		{"free", 0, false},
	}

	for _, tt := range tests {
		got, ok := parsePrice(tt.input)
		assert.Equal(t, tt.ok, ok, "parsePrice(%q) ok", tt.input)
		assert.Equal(t, tt.want, got, "parsePrice(%q) value", tt.input)
	}
}

func TestRepairMojibake(t *testing.T) {
	// "It’s" double-encoded: the UTF-8 bytes of "’" read back as Latin-1
	assert.Equal(t, "It’s a book", repairMojibake("Itâs a book"))

	// Clean ASCII passes through untouched
	assert.Equal(t, "plain text", repairMojibake("plain text"))

	// Code points that never fit Latin-1 are discarded, not kept broken
	assert.Equal(t, "ab", repairMojibake("a世b"))
}

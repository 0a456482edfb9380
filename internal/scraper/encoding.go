package scraper

import (
	"regexp"
	"strconv"
	"strings"
)

// The upstream site serves text that went through a Latin-1/UTF-8
// round trip somewhere in its own publishing chain. The two functions
// below undo that one specific defect; they are not general Unicode
// handling and must not grow into it.

var priceDigits = regexp.MustCompile(`[0-9]+(?:\.[0-9]+)?`)

// repairMojibake re-encodes the string as Latin-1 bytes, dropping
// code points above 0xFF, then re-decodes those bytes as UTF-8,
// dropping anything still invalid. "â€™" becomes "’" again.
func repairMojibake(s string) string {
	b := make([]byte, 0, len(s))
	for _, r := range s {
		if r <= 0xFF {
			b = append(b, byte(r))
		}
	}
	return strings.ToValidUTF8(string(b), "")
}

// stripCurrencyArtifact removes the mojibake marker that corrupts the
// currency symbol ("Â£51.77") so the amount can be parsed numerically
func stripCurrencyArtifact(s string) string {
	return strings.ReplaceAll(s, "Â", "")
}

// parsePrice extracts the numeric amount from a scraped price string.
// Invalid or empty input yields 0 and false.
func parsePrice(s string) (float64, bool) {
	cleaned := stripCurrencyArtifact(strings.TrimSpace(s))
	match := priceDigits.FindString(cleaned)
	if match == "" {
		return 0, false
	}
	value, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0, false
	}
	return value, true
}

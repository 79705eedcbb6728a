package categorize

import (
	"regexp"
	"strconv"
	"strings"
)

// ParsedExpense is the result of extracting an amount from free text.
// Amount is nil when no number could be found; the caller must then ask
// the user for an explicit amount instead of guessing or defaulting to zero.
type ParsedExpense struct {
	Amount  *int64 `json:"amount"`
	RawText string `json:"raw_text"`
}

// amountPatterns is evaluated in order; the first pattern that matches wins,
// even if a later pattern would also match. Several patterns overlap on
// purpose (the final catch-all is a superset of the positional ones). The
// precedence is part of the contract, so do not reorder.
var amountPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:spent|paid|spend)\s+(\d+)`), // "spent 120 on chai"
	regexp.MustCompile(`(\d+)\s+(?:for|on|rupees|rs|₹)`), // "120 for chai"
	regexp.MustCompile(`₹\s*(\d+)`),
	regexp.MustCompile(`rs\s*(\d+)`),
	regexp.MustCompile(`^(\d+)\s+`), // number at start
	regexp.MustCompile(`\s+(\d+)$`), // number at end
	regexp.MustCompile(`(\d+)`),     // any number
}

// ExtractAmount parses free-form quick-add text ("spent 120 on chai",
// "hostel ka kharcha 300", "₹500 groceries") and pulls out the first
// numeric amount candidate. Only non-negative integers are recognized;
// decimals and signs are not part of the capture.
func ExtractAmount(input string) ParsedExpense {
	normalized := strings.ToLower(strings.TrimSpace(input))

	for _, pattern := range amountPatterns {
		match := pattern.FindStringSubmatch(normalized)
		if len(match) < 2 || match[1] == "" {
			continue
		}
		value, err := strconv.ParseInt(match[1], 10, 64)
		if err != nil {
			// Digits overflowed int64; treat as no match for this pattern.
			continue
		}
		return ParsedExpense{Amount: &value, RawText: strings.TrimSpace(input)}
	}

	return ParsedExpense{Amount: nil, RawText: strings.TrimSpace(input)}
}

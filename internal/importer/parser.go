package importer

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"goaltracker/internal/domain"
)

// LineError reports a free-text line that could not become a donation.
type LineError struct {
	Line   int
	Text   string
	Reason string
}

func (e *LineError) Error() string {
	return fmt.Sprintf("Line %d: %s %q", e.Line, e.Reason, e.Text)
}

// ParseLine parses one non-blank line of free text. lineNo is 1-based and only
// used for error reporting.
func ParseLine(line string, lineNo int, opts Options) (domain.Donation, error) {
	opts = opts.withDefaults()
	text := strings.TrimSpace(line)

	for _, rule := range lineRules {
		m, ok := rule.match(text)
		if !ok {
			continue
		}
		return buildDonation(m, text, lineNo, opts)
	}
	return domain.Donation{}, &LineError{Line: lineNo, Text: text, Reason: "Could not parse"}
}

func buildDonation(m lineMatch, text string, lineNo int, opts Options) (domain.Donation, error) {
	if m.contributor == "" {
		return domain.Donation{}, &LineError{Line: lineNo, Text: text, Reason: "Missing contributor in"}
	}
	amount, ok := parseAmount(m.amount)
	if !ok {
		return domain.Donation{}, &LineError{Line: lineNo, Text: text, Reason: "Invalid amount in"}
	}
	cur := strings.ToUpper(m.currency)
	if cur == "" {
		cur = opts.DefaultCurrency
	}
	return domain.Donation{
		ID:          opts.NewID(),
		Contributor: m.contributor,
		Amount:      amount,
		Currency:    cur,
		Message:     m.message,
		Timestamp:   opts.Now(),
		Source:      domain.SourceManual,
	}, nil
}

// parseAmount accepts plain decimal numbers with an optional leading currency
// symbol and rejects anything that is not strictly positive.
func parseAmount(raw string) (decimal.Decimal, bool) {
	raw = strings.TrimSpace(raw)
	if !bareAmountPattern.MatchString(raw) {
		return decimal.Decimal{}, false
	}
	raw = strings.TrimLeft(raw, "$€£¥₹")
	amount, err := decimal.NewFromString(raw)
	if err != nil || !amount.IsPositive() {
		return decimal.Decimal{}, false
	}
	return amount, true
}

package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"goaltracker/internal/domain"
)

const anonymousContributor = "Anonymous"

// Column aliases, first non-empty match wins per field.
var (
	contributorColumns = []string{"contributor", "name", "user"}
	amountColumns      = []string{"amount", "donation"}
	currencyColumns    = []string{"currency"}
	messageColumns     = []string{"message", "comment"}
	timestampColumns   = []string{"timestamp"}
	platformColumns    = []string{"platform"}
)

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ImportCSV reads a CSV document with a header row. Rows with a missing or
// non-positive amount are reported by 1-based row number and skipped.
func ImportCSV(r io.Reader, opts Options) domain.ImportResult {
	opts = opts.withDefaults()
	result := domain.ImportResult{Format: domain.FormatCSV}

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return failed(domain.FormatCSV, errors.New("CSV file is empty: a header row is required"))
		}
		return failed(domain.FormatCSV, fmt.Errorf("read CSV header: %w", err))
	}
	columns := indexHeader(header)

	row := 0
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		row++
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", row, parseErr.Err))
				continue
			}
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", row, err))
			break
		}
		if blankRecord(record) {
			row--
			continue
		}

		donation, ok := csvDonation(columns, record, opts)
		if !ok {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: Invalid amount", row))
			continue
		}
		result.Records = append(result.Records, donation)
	}
	return result
}

func csvDonation(columns map[string]int, record []string, opts Options) (domain.Donation, bool) {
	amount, ok := parseCSVAmount(lookup(columns, record, amountColumns))
	if !ok {
		return domain.Donation{}, false
	}
	contributor := lookup(columns, record, contributorColumns)
	if contributor == "" {
		contributor = anonymousContributor
	}
	cur := strings.ToUpper(lookup(columns, record, currencyColumns))
	if cur == "" {
		cur = opts.DefaultCurrency
	}
	return domain.Donation{
		ID:          opts.NewID(),
		Contributor: contributor,
		Amount:      amount,
		Currency:    cur,
		Message:     lookup(columns, record, messageColumns),
		Timestamp:   parseTimestamp(lookup(columns, record, timestampColumns), opts),
		Source:      domain.ParseSource(strings.ToLower(lookup(columns, record, platformColumns))),
	}, true
}

func indexHeader(header []string) map[string]int {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		key := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
		if _, dup := columns[key]; !dup {
			columns[key] = i
		}
	}
	return columns
}

func lookup(columns map[string]int, record []string, aliases []string) string {
	for _, alias := range aliases {
		idx, ok := columns[alias]
		if !ok || idx >= len(record) {
			continue
		}
		if v := strings.TrimSpace(record[idx]); v != "" {
			return v
		}
	}
	return ""
}

func parseCSVAmount(raw string) (decimal.Decimal, bool) {
	raw = strings.ReplaceAll(raw, ",", "")
	raw = strings.TrimLeft(raw, "$€£¥₹")
	if raw == "" {
		return decimal.Decimal{}, false
	}
	amount, err := decimal.NewFromString(raw)
	if err != nil || !amount.IsPositive() {
		return decimal.Decimal{}, false
	}
	return amount, true
}

// parseTimestamp reads offset-less layouts as wall-clock time in opts.Location.
func parseTimestamp(raw string, opts Options) time.Time {
	if raw == "" {
		return opts.Now()
	}
	for _, layout := range timestampLayouts {
		if ts, err := time.ParseInLocation(layout, raw, opts.Location); err == nil {
			return ts
		}
	}
	return opts.Now()
}

func blankRecord(record []string) bool {
	for _, field := range record {
		if strings.TrimSpace(field) != "" {
			return false
		}
	}
	return true
}

package importer

import (
	"regexp"
	"strings"
)

// lineMatch is the raw text extracted by a grammar rule before validation.
type lineMatch struct {
	contributor string
	amount      string
	currency    string
	message     string
}

// lineRule is one named free-text grammar. Rules are tried in order and the
// first one that matches decides the outcome for the line.
type lineRule struct {
	name  string
	match func(line string) (lineMatch, bool)
}

var lineRules = []lineRule{
	{name: "donated", match: matchDonated},
	{name: "colon", match: matchColon},
	{name: "bare", match: matchBare},
}

const (
	symbolPattern = `[$€£¥₹]?`
	amountPattern = `(\d+(?:\.\d{1,2})?)`
)

var (
	// "<name> donated [CUR]<amount>[CUR][:|-] <message>"
	donatedPattern = regexp.MustCompile(`^(.+?)\s+(?i:donated)\s+(?:([A-Z]{3})\s*)?` + symbolPattern + amountPattern +
		`(?:\s*([A-Z]{3})\b)?\s*[:\-]?\s*(.*)$`)
	// "<name>: [CUR]<amount>[CUR] - <message>"
	colonPattern = regexp.MustCompile(`^(.+?):\s*(?:([A-Z]{3})\s*)?` + symbolPattern + amountPattern +
		`(?:\s*([A-Z]{3})\b)?\s*-?\s*(.*)$`)
	bareAmountPattern = regexp.MustCompile(`^` + symbolPattern + `\d+(?:\.\d+)?$`)
)

func matchDonated(line string) (lineMatch, bool) {
	return matchTemplate(donatedPattern, line)
}

func matchColon(line string) (lineMatch, bool) {
	return matchTemplate(colonPattern, line)
}

func matchTemplate(re *regexp.Regexp, line string) (lineMatch, bool) {
	m := re.FindStringSubmatch(line)
	if m == nil {
		return lineMatch{}, false
	}
	cur := m[2]
	if cur == "" {
		cur = m[4]
	}
	return lineMatch{
		contributor: strings.TrimSpace(m[1]),
		amount:      m[3],
		currency:    cur,
		message:     strings.TrimSpace(m[5]),
	}, true
}

// matchBare handles "<name> <amount> [CUR]". A trailing token is taken as the
// currency only when it is exactly three upper-case letters.
func matchBare(line string) (lineMatch, bool) {
	tokens := strings.Fields(line)
	if len(tokens) < 2 {
		return lineMatch{}, false
	}
	last := tokens[len(tokens)-1]
	if isCurrencyToken(last) {
		return lineMatch{
			contributor: strings.Join(tokens[:len(tokens)-2], " "),
			amount:      tokens[len(tokens)-2],
			currency:    last,
		}, true
	}
	return lineMatch{
		contributor: strings.Join(tokens[:len(tokens)-1], " "),
		amount:      last,
	}, true
}

func isCurrencyToken(tok string) bool {
	if len(tok) != 3 {
		return false
	}
	for _, r := range tok {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}

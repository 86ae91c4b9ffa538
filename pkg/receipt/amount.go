package receipt

import (
	"regexp"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// Pattern priorities. Only the relative order matters: explicit total
// labels outrank generic sum labels, which outrank bare currency-tagged
// numbers. Lines in the last 30% of the receipt get a fixed bonus since
// totals are printed near the end.
const (
	priTotal      = 100
	priSum        = 60
	priCurrency   = 30
	lateLineBonus = 15
)

// A grouped or plain number with an optional two-digit decimal part.
const numberGroup = `([0-9]{1,3}(?:,[0-9]{3})+(?:\.[0-9]{1,2})?|[0-9]+(?:\.[0-9]{1,2})?)`

const currencyOpt = `(?:₪|\$|NIS|ILS)?\s*`

type amountPattern struct {
	name     string
	re       *regexp.Regexp
	priority int
}

var amountPatterns = []amountPattern{
	{"total-en", regexp.MustCompile(`(?i)(?:grand\s*total|total\s*(?:due|to\s*pay|incl\.?\s*(?:tax|vat))?|amount\s*due)\s*:?\s*` + currencyOpt + numberGroup), priTotal},
	{"total-he", regexp.MustCompile(`(?:סה.{0,2}כ(?:\s*לתשלום)?|סך\s*הכל|לתשלום)\s*:?\s*` + currencyOpt + numberGroup), priTotal},
	{"sum-en", regexp.MustCompile(`(?i)(?:sum|amount|charge)\s*:?\s*` + currencyOpt + numberGroup), priSum},
	{"sum-he", regexp.MustCompile(`סכום\s*:?\s*` + currencyOpt + numberGroup), priSum},
	{"currency-prefix", regexp.MustCompile(`(?:₪|\$|NIS|ILS)\s*` + numberGroup), priCurrency},
	{"currency-suffix", regexp.MustCompile(numberGroup + `\s*(?:₪|NIS|ILS|ש.?ח)`), priCurrency},
}

// avoidPatterns flag interim sums that share wording with the real total
// and would otherwise outrank it. A flagged line is skipped entirely, in
// pattern matching and in the bare-number fallback alike.
var avoidPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)sub\s*-?\s*total`),
	regexp.MustCompile(`(?i)before\s*(?:tax|vat)`),
	regexp.MustCompile(`(?i)\binterim\b`),
	regexp.MustCompile(`לפני\s*מע.?מ`),
	regexp.MustCompile(`ביניים`),
	regexp.MustCompile(`פיקדון`),
}

// Amounts above this are almost always recognition noise or the wrong
// token (card numbers, ids), not a receipt total.
var maxAmount = decimal.NewFromInt(10000)

// The bare-number fallback has no label context, so it keeps a tighter cap.
var maxBareAmount = decimal.NewFromInt(5000)

var bareNumberRE = regexp.MustCompile(`\b[0-9]{1,4}\.[0-9]{2}\b`)

type amountCandidate struct {
	value     decimal.Decimal
	priority  int
	line      string
	lineIndex int
	pattern   string
}

// extractAmount selects the most plausible total from the line sequence.
// Returns (0, false) when nothing plausible is found: a missing amount is
// a normal outcome, corrected downstream by a human.
func extractAmount(lines []Line) (decimal.Decimal, bool) {
	n := len(lines)
	var cands []amountCandidate
	for _, ln := range lines {
		if isAvoided(ln.Text) {
			continue
		}
		for _, p := range amountPatterns {
			m := p.re.FindStringSubmatch(ln.Text)
			if m == nil {
				continue
			}
			amt, err := parseAmountToken(m[1])
			if err != nil || !plausibleAmount(amt, maxAmount) {
				continue
			}
			pri := p.priority
			if ln.Index*10 >= n*7 {
				pri += lateLineBonus
			}
			cands = append(cands, amountCandidate{
				value:     amt,
				priority:  pri,
				line:      ln.Text,
				lineIndex: ln.Index,
				pattern:   p.name,
			})
		}
	}
	if len(cands) > 0 {
		// Highest priority wins; on equal priority the later line wins,
		// since printed totals follow itemized subtotals.
		sort.SliceStable(cands, func(i, j int) bool {
			if cands[i].priority != cands[j].priority {
				return cands[i].priority > cands[j].priority
			}
			return cands[i].lineIndex > cands[j].lineIndex
		})
		return cands[0].value, true
	}
	// Fallback: any bare decimal-looking number in the final third.
	for i := n - 1; i >= n-(n+2)/3 && i >= 0; i-- {
		if isAvoided(lines[i].Text) {
			continue
		}
		m := bareNumberRE.FindString(lines[i].Text)
		if m == "" {
			continue
		}
		amt, err := parseAmountToken(m)
		if err != nil || !plausibleAmount(amt, maxBareAmount) {
			continue
		}
		return amt, true
	}
	return decimal.Zero, false
}

func isAvoided(line string) bool {
	for _, re := range avoidPatterns {
		if re.MatchString(line) {
			return true
		}
	}
	return false
}

// parseAmountToken normalizes a matched number into a decimal. Commas only
// appear as thousand separators in the patterns, so they are dropped.
func parseAmountToken(tok string) (decimal.Decimal, error) {
	tok = strings.ReplaceAll(strings.TrimSpace(tok), ",", "")
	return decimal.NewFromString(tok)
}

func plausibleAmount(d, max decimal.Decimal) bool {
	return d.IsPositive() && d.LessThanOrEqual(max)
}

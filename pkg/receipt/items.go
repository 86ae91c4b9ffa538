package receipt

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// maxItems bounds runaway recognition noise; items are display-only.
const maxItems = 10

const minItemLineLen = 6

// itemPriceRE matches a trailing price token, optionally currency-tagged.
var itemPriceRE = regexp.MustCompile(`(?:₪|\$|NIS|ILS)?\s*[0-9]{1,4}\.[0-9]{2}\s*(?:₪|NIS|ILS|ש.?ח)?\s*$`)

// itemLabelRE excludes total/payment/tax lines from the item list.
var itemLabelRE = regexp.MustCompile(`(?i)total|sub\s*-?\s*total|change|cash|credit|card|vat|tax|מע.?מ|סה.?כ|סך\s*הכל|לתשלום|סכום|עודף|מזומן|אשראי|ביניים`)

// extractItems collects plausible purchased-item descriptions: lines that
// carry an embedded price, minus the price itself.
func extractItems(lines []Line) []string {
	var out []string
	for _, ln := range lines {
		if len(out) == maxItems {
			break
		}
		if utf8.RuneCountInString(ln.Text) < minItemLineLen {
			continue
		}
		if itemLabelRE.MatchString(ln.Text) {
			continue
		}
		loc := itemPriceRE.FindStringIndex(ln.Text)
		if loc == nil {
			continue
		}
		desc := strings.TrimSpace(strings.Trim(ln.Text[:loc[0]], " .:-*"))
		if desc == "" {
			continue
		}
		out = append(out, desc)
	}
	return out
}

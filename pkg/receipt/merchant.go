package receipt

import (
	"regexp"
	"unicode/utf8"
)

// UnknownMerchant is the placeholder returned when no vendor name can be
// recovered from the text.
const UnknownMerchant = "Unknown"

// Merchant names print near the top; scanning further mostly picks up
// item lines.
const merchantScanLines = 4

const minMerchantLen = 3

type merchantPattern struct {
	name string
	re   *regexp.Regexp
}

// knownMerchants maps bilingual chain spellings to a canonical name.
// First match wins.
var knownMerchants = []merchantPattern{
	{"Shufersal", regexp.MustCompile(`(?i)shufersal|שופרסל`)},
	{"Rami Levy", regexp.MustCompile(`(?i)rami\s*lev|רמי\s*לוי`)},
	{"Victory", regexp.MustCompile(`(?i)victory|ויקטורי`)},
	{"Yochananof", regexp.MustCompile(`(?i)yochananof|יוחננוף`)},
	{"Osher Ad", regexp.MustCompile(`(?i)osher\s*ad|אושר\s*עד`)},
	{"Mega", regexp.MustCompile(`(?i)\bmega\b|מגה`)},
	{"Aroma", regexp.MustCompile(`(?i)aroma|ארומה`)},
	{"Cafe Cafe", regexp.MustCompile(`(?i)cafe\s*cafe|קפה\s*קפה`)},
	{"Cofix", regexp.MustCompile(`(?i)cofix|קופיקס`)},
	{"McDonald's", regexp.MustCompile(`(?i)mcdonald|מקדונלד`)},
	{"Paz", regexp.MustCompile(`(?i)\bpaz\b|תחנת\s*פז`)},
	{"Sonol", regexp.MustCompile(`(?i)sonol|סונול`)},
	{"Delek", regexp.MustCompile(`(?i)\bdelek\b|תחנת\s*דלק`)},
	{"Super-Pharm", regexp.MustCompile(`(?i)super\s*-?\s*pharm|סופר\s*-?\s*פארם`)},
	{"Office Depot", regexp.MustCompile(`(?i)office\s*depot|אופיס\s*דיפו`)},
	{"Steimatzky", regexp.MustCompile(`(?i)steimatzky|סטימצקי`)},
}

// extractMerchant identifies the vendor. Known-chain patterns over the top
// lines win; otherwise the first line with more than a trivial number of
// characters is used verbatim. Returns (UnknownMerchant, false) for an
// empty or hopeless sequence.
func extractMerchant(lines []Line) (string, bool) {
	limit := merchantScanLines
	if len(lines) < limit {
		limit = len(lines)
	}
	for _, ln := range lines[:limit] {
		for _, p := range knownMerchants {
			if p.re.MatchString(ln.Text) {
				return p.name, true
			}
		}
	}
	for _, ln := range lines {
		if utf8.RuneCountInString(ln.Text) > minMerchantLen {
			return ln.Text, true
		}
	}
	return UnknownMerchant, false
}

package receipt

import (
	"regexp"
	"sort"
	"strconv"
	"time"
)

// dateFormat tells the extractor how a pattern's three captured groups map
// to day/month/year.
type dateFormat int

const (
	dmy4 dateFormat = iota // day, month, 4-digit year
	ymd                    // 4-digit year, month, day
	dmy2                   // day, month, 2-digit year
)

type datePattern struct {
	name     string
	re       *regexp.Regexp
	priority int
	format   dateFormat
}

var datePatterns = []datePattern{
	{"labeled-dmy4", regexp.MustCompile(`(?i)(?:date|תאריך)\s*:?\s*([0-3]?[0-9])[./-]([01]?[0-9])[./-]((?:19|20)[0-9]{2})`), 100, dmy4},
	{"labeled-dmy2", regexp.MustCompile(`(?i)(?:date|תאריך)\s*:?\s*([0-3]?[0-9])[./-]([01]?[0-9])[./-]([0-9]{2})\b`), 90, dmy2},
	{"dmy4", regexp.MustCompile(`\b([0-3]?[0-9])[./-]([01]?[0-9])[./-]((?:19|20)[0-9]{2})\b`), 80, dmy4},
	{"ymd", regexp.MustCompile(`\b((?:19|20)[0-9]{2})[./-]([01]?[0-9])[./-]([0-3]?[0-9])\b`), 70, ymd},
	{"dmy2", regexp.MustCompile(`\b([0-3]?[0-9])[./-]([01]?[0-9])[./-]([0-9]{2})\b`), 40, dmy2},
}

// Years this far outside the window around now are recognition noise.
const (
	yearsBack    = 10
	yearsForward = 1
)

type dateCandidate struct {
	value     time.Time
	priority  int
	lineIndex int
	pattern   string
}

// extractDate selects the most plausible transaction date. When nothing
// valid is found it returns (now, false): defaulting to the current date is
// a documented fallback, not a failure.
func extractDate(lines []Line, now time.Time) (time.Time, bool) {
	var cands []dateCandidate
	for _, ln := range lines {
		for _, p := range datePatterns {
			m := p.re.FindStringSubmatch(ln.Text)
			if m == nil {
				continue
			}
			t, ok := buildDate(m[1], m[2], m[3], p.format, now)
			if !ok {
				continue
			}
			cands = append(cands, dateCandidate{value: t, priority: p.priority, lineIndex: ln.Index, pattern: p.name})
		}
	}
	if len(cands) == 0 {
		return now, false
	}
	// Highest priority wins; on equal priority the earlier line wins,
	// since dates print near the top of a receipt. Note the opposite
	// tie-break direction from amounts.
	sort.SliceStable(cands, func(i, j int) bool {
		if cands[i].priority != cands[j].priority {
			return cands[i].priority > cands[j].priority
		}
		return cands[i].lineIndex < cands[j].lineIndex
	})
	return cands[0].value, true
}

func buildDate(g1, g2, g3 string, format dateFormat, now time.Time) (time.Time, bool) {
	a1, _ := strconv.Atoi(g1)
	a2, _ := strconv.Atoi(g2)
	a3, _ := strconv.Atoi(g3)
	var day, month, year int
	switch format {
	case dmy4:
		day, month, year = a1, a2, a3
	case ymd:
		year, month, day = a1, a2, a3
	case dmy2:
		day, month = a1, a2
		year = resolveYear(a3, now.Year())
	}
	if !validDate(day, month, year, now) {
		return time.Time{}, false
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), true
}

// resolveYear expands a two-digit year. Values within 10 of the current
// two-digit year land in the 2000s; outside that window, below 50 means
// 2000s and 50 or above means 1900s.
func resolveYear(yy, currentYear int) int {
	cc := currentYear % 100
	diff := yy - cc
	if diff < 0 {
		diff = -diff
	}
	if diff <= 10 {
		return 2000 + yy
	}
	if yy < 50 {
		return 2000 + yy
	}
	return 1900 + yy
}

// validDate rejects impossible calendar combinations and years outside the
// plausible operating window. Rejections are silent; extraction moves on to
// the next candidate.
func validDate(day, month, year int, now time.Time) bool {
	if day < 1 || day > 31 || month < 1 || month > 12 {
		return false
	}
	if year < now.Year()-yearsBack || year > now.Year()+yearsForward {
		return false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return t.Day() == day && int(t.Month()) == month
}

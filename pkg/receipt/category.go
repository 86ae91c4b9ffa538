package receipt

import (
	"regexp"
	"strings"
)

// Category is one of a fixed closed set of expense categories.
type Category string

const (
	CategoryFood           Category = "food"
	CategoryFuel           Category = "fuel"
	CategoryParking        Category = "parking"
	CategoryTransport      Category = "transport"
	CategoryOffice         Category = "office"
	CategoryHosting        Category = "hosting"
	CategoryTraining       Category = "training"
	CategoryHealth         Category = "health"
	CategoryCommunications Category = "communications"
	CategoryOther          Category = "other"
)

// DefaultCategory wins ties and no-match cases. Food is the statistically
// dominant expense.
const DefaultCategory = CategoryFood

type categoryRule struct {
	re     *regexp.Regexp
	weight int
}

type categoryGroup struct {
	category Category
	rules    []categoryRule
}

// Rules are matched against a lowercased haystack, so the patterns are
// written lowercase. Scoring is additive: every rule that matches the text
// or the merchant name contributes its weight, letting several weak
// signals outvote a single wrong one.
var categoryGroups = []categoryGroup{
	{CategoryFood, []categoryRule{
		{regexp.MustCompile(`restaurant|מסעדה|מסעדת`), 8},
		{regexp.MustCompile(`cafe|coffee|aroma|espresso|קפה|ארומה|קופיקס`), 6},
		{regexp.MustCompile(`pizza|burger|falafel|shawarma|פיצה|המבורגר|פלאפל|שווארמה`), 6},
		{regexp.MustCompile(`super|market|grocer|שופרסל|רמי\s*לוי|ויקטורי|יוחננוף|אושר\s*עד|מכולת`), 5},
		{regexp.MustCompile(`bread|milk|lunch|לחם|חלב|מזון|ארוחה`), 3},
	}},
	{CategoryFuel, []categoryRule{
		{regexp.MustCompile(`fuel|petrol|gasoline|\bgas\b|בנזין|תחנת\s*דלק|סולר`), 8},
		{regexp.MustCompile(`\bpaz\b|sonol|\bdelek\b|סונול|תחנת\s*פז`), 6},
		{regexp.MustCompile(`liter|octane|ליטר|אוקטן`), 3},
	}},
	{CategoryParking, []categoryRule{
		{regexp.MustCompile(`parking|חניה|חנייה`), 10},
		{regexp.MustCompile(`חניון|garage`), 5},
	}},
	{CategoryTransport, []categoryRule{
		{regexp.MustCompile(`taxi|gett|\buber\b|מונית`), 8},
		{regexp.MustCompile(`\bbus\b|train|railway|אוטובוס|רכבת`), 6},
		{regexp.MustCompile(`רב.?קו|נסיעה`), 4},
	}},
	{CategoryOffice, []categoryRule{
		{regexp.MustCompile(`office\s*depot|אופיס\s*דיפו|קרביץ`), 8},
		{regexp.MustCompile(`stationery|toner|printer|נייר|טונר|ציוד\s*משרדי`), 5},
	}},
	{CategoryHosting, []categoryRule{
		{regexp.MustCompile(`hospitality|אירוח`), 6},
		{regexp.MustCompile(`hotel|מלון`), 5},
		{regexp.MustCompile(`client|לקוח`), 4},
	}},
	{CategoryTraining, []categoryRule{
		{regexp.MustCompile(`course|training|seminar|workshop|קורס|הדרכה|השתלמות|סדנה`), 8},
		{regexp.MustCompile(`\bbook\b|steimatzky|ספר|סטימצקי|צומת\s*ספרים`), 4},
	}},
	{CategoryHealth, []categoryRule{
		{regexp.MustCompile(`pharm|פארם|בית\s*מרקחת`), 8},
		{regexp.MustCompile(`clinic|medicine|מרפאה|תרופ`), 5},
	}},
	{CategoryCommunications, []categoryRule{
		{regexp.MustCompile(`cellcom|pelephone|partner|bezeq|סלקום|פלאפון|פרטנר|בזק`), 8},
		{regexp.MustCompile(`internet|cellular|אינטרנט|סלולר|תקשורת`), 5},
	}},
}

// classify assigns a category by additive weighted scoring over the full
// text and the merchant name. Ties and no-match both resolve to
// DefaultCategory.
func classify(merchant string, lines []Line) Category {
	var b strings.Builder
	for _, ln := range lines {
		b.WriteString(ln.Text)
		b.WriteByte('\n')
	}
	haystack := strings.ToLower(b.String())
	name := strings.ToLower(merchant)
	if merchant == UnknownMerchant {
		name = ""
	}

	scores := make(map[Category]int, len(categoryGroups))
	for _, g := range categoryGroups {
		for _, r := range g.rules {
			if r.re.MatchString(haystack) {
				scores[g.category] += r.weight
			}
			if name != "" && r.re.MatchString(name) {
				scores[g.category] += r.weight
			}
		}
	}

	best := DefaultCategory
	bestScore := 0
	tied := false
	for _, g := range categoryGroups {
		s := scores[g.category]
		if s > bestScore {
			best, bestScore, tied = g.category, s, false
		} else if s == bestScore && s > 0 {
			tied = true
		}
	}
	if bestScore == 0 || tied {
		return DefaultCategory
	}
	return best
}

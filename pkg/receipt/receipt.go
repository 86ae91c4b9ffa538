package receipt

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/shopspring/decimal"
)

// Recognizer is the external text-recognition engine. It receives a
// preprocessed receipt image and returns the raw recognized text.
type Recognizer interface {
	Recognize(ctx context.Context, image []byte) (string, error)
}

// Interpretation is the structured best-effort reading of one receipt.
// Every field carries a documented fallback (zero amount, current date,
// "Unknown" merchant, default category, empty items) rather than an error;
// Confidence tells the caller how much of the structure was recovered.
type Interpretation struct {
	Merchant   string          `json:"merchant"`
	Amount     decimal.Decimal `json:"amount"`
	Date       time.Time       `json:"date"`
	Items      []string        `json:"items"`
	Category   Category        `json:"category"`
	Confidence float64         `json:"confidence"`
	RawText    string          `json:"raw_text"`
}

// Engine extracts and classifies receipts. Safe for concurrent use; each
// interpretation keeps all transient state on the stack.
type Engine struct {
	rec Recognizer
	now func() time.Time
}

type Option func(*Engine)

// WithClock overrides the clock used for the date fallback and the
// two-digit-year pivot. Inject a fixed clock for reproducible runs.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// New builds an Engine. rec may be nil when only InterpretText is used.
func New(rec Recognizer, opts ...Option) *Engine {
	e := &Engine{rec: rec, now: time.Now}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// InterpretImage runs the full pipeline: preprocess the image, recognize
// text through the external engine, then interpret the text. Preprocessing
// failures fall back to the original bytes; recognition failures are fatal
// to the invocation and wrap ErrRecognitionUnavailable.
func (e *Engine) InterpretImage(ctx context.Context, img []byte) (*Interpretation, error) {
	if e.rec == nil {
		return nil, fmt.Errorf("%w: no recognizer configured", ErrRecognitionUnavailable)
	}
	processed, err := Preprocess(img)
	if err != nil {
		log.Printf("receipt: preprocess failed, passing original image through: %v", err)
		processed = img
	}
	text, err := e.rec.Recognize(ctx, processed)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRecognitionUnavailable, err)
	}
	return e.InterpretText(text), nil
}

// InterpretText derives an Interpretation from recognized text. Pure:
// identical text and clock always produce an identical result.
func (e *Engine) InterpretText(text string) *Interpretation {
	lines := Segment(text)
	now := e.now()

	merchant, merchantFound := extractMerchant(lines)
	amount, amountFound := extractAmount(lines)
	date, dateFound := extractDate(lines, now)
	items := extractItems(lines)
	category := classify(merchant, lines)
	conf := confidence(merchantFound, amountFound, dateFound, len(items) > 0)

	log.Printf("receipt: merchant=%q amount=%s date=%s category=%s items=%d confidence=%.2f text=%q",
		merchant, amount, date.Format("2006-01-02"), category, len(items), conf, snippet(text, 120))

	return &Interpretation{
		Merchant:   merchant,
		Amount:     amount,
		Date:       date,
		Items:      items,
		Category:   category,
		Confidence: conf,
		RawText:    text,
	}
}

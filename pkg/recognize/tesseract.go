package recognize

import (
	"context"
	"fmt"

	"github.com/otiai10/gosseract/v2"
)

// charWhitelist restricts recognition to digits, currency marks, and the
// Hebrew and Latin alphabets receipts are printed in.
const charWhitelist = "0123456789₪$%.,:;/()#-" +
	"abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	"אבגדהוזחטיכךלמםנןסעפףצץקרשת" +
	"\"' "

// Tesseract recognizes receipt text through a local Tesseract install.
// Each call uses its own client, so the zero lifecycle is safe for
// concurrent receipts.
type Tesseract struct {
	languages []string
}

// NewTesseract returns a recognizer configured for Hebrew and English.
func NewTesseract() *Tesseract {
	return &Tesseract{languages: []string{"heb", "eng"}}
}

// Recognize runs one OCR pass over the image bytes and returns the raw
// text. The caller decides retry policy; a failure here is final for the
// invocation.
func (t *Tesseract) Recognize(ctx context.Context, image []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	client := gosseract.NewClient()
	defer client.Close()
	_ = client.SetLanguage(t.languages...)
	_ = client.SetWhitelist(charWhitelist)
	if err := client.SetImageFromBytes(image); err != nil {
		return "", fmt.Errorf("set image: %w", err)
	}
	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("tesseract: %w", err)
	}
	return text, nil
}

package receipt

import "errors"

// ErrRecognitionUnavailable is returned when the external recognition
// engine could not produce any text for a receipt image.
var ErrRecognitionUnavailable = errors.New("recognition unavailable")

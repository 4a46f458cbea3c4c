package domain

import "errors"

const (
	// DefaultErrorMessage is shown when a failed generation carries no message.
	DefaultErrorMessage = "Unknown error"
	// NoImageDataMessage is shown when the provider answered without an image.
	NoImageDataMessage = "No image data found in response"
)

var (
	ErrUnknownBanner         = errors.New("unknown banner")
	ErrNoImageData           = errors.New("no image data in response")
	ErrGenerateAllInProgress = errors.New("generate all already in progress")
)

// GenerationError is the single failure kind of a banner generation. Message
// is the human readable text surfaced to the user and may be empty.
type GenerationError struct {
	Message string
	Err     error
}

func (e *GenerationError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return ""
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// FailureMessage extracts the user facing message from a generation failure,
// falling back to DefaultErrorMessage when none is available.
func FailureMessage(err error) string {
	if err == nil {
		return DefaultErrorMessage
	}
	var genErr *GenerationError
	if errors.As(err, &genErr) && genErr.Message != "" {
		return genErr.Message
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return DefaultErrorMessage
}

package domain

import (
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// BannerStyle enumerates the fixed visual themes a banner can be rendered in.
type BannerStyle string

const (
	BannerStyleCyber   BannerStyle = "CYBER"
	BannerStyleMinimal BannerStyle = "MINIMAL"
	BannerStyleLuxury  BannerStyle = "LUXURY"
	BannerStyleCartoon BannerStyle = "CARTOON"
)

// Label returns the style in display form, e.g. "Cyber". A Caser carries
// state, so each call builds its own.
func (s BannerStyle) Label() string {
	return cases.Title(language.English).String(strings.ToLower(string(s)))
}

// Valid reports whether s is one of the known styles.
func (s BannerStyle) Valid() bool {
	switch s {
	case BannerStyleCyber, BannerStyleMinimal, BannerStyleLuxury, BannerStyleCartoon:
		return true
	default:
		return false
	}
}

// BannerDefinition describes one banner slot offered to the user.
type BannerDefinition struct {
	ID          string
	Style       BannerStyle
	Title       string
	Description string
}

// GenerationStatus enumerates the lifecycle of a banner slot.
type GenerationStatus string

const (
	GenerationStatusIdle    GenerationStatus = "idle"
	GenerationStatusPending GenerationStatus = "pending"
	GenerationStatusSuccess GenerationStatus = "success"
	GenerationStatusError   GenerationStatus = "error"
)

// Terminal reports whether no generation is outstanding for the status.
func (s GenerationStatus) Terminal() bool {
	return s == GenerationStatusSuccess || s == GenerationStatusError
}

// GenerationState is the current view of a single banner slot.
//
// ImageRef holds the last successful image as a data URI. It survives later
// pending and error transitions, so callers should only present it as the
// current image when Status is success.
type GenerationState struct {
	BannerID  string
	Status    GenerationStatus
	ImageRef  string
	Error     string
	UpdatedAt time.Time
}

// HasImage reports whether the slot currently shows a generated image.
func (s GenerationState) HasImage() bool {
	return s.Status == GenerationStatusSuccess && s.ImageRef != ""
}

// BannerFilename names an exported banner image after its id and MIME type.
func BannerFilename(id, mime string) string {
	return "xox247-" + id + extensionFor(mime)
}

func extensionFor(mime string) string {
	switch mime {
	case "image/jpeg":
		return ".jpg"
	case "image/webp":
		return ".webp"
	default:
		return ".png"
	}
}

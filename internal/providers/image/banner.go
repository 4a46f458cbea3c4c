package image

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/vincent-petithory/dataurl"

	"bannerarchitect/internal/domain"
)

const defaultAssetFormat = "image/png"

// BannerRenderer turns a banner style into a displayable image reference by
// prompting the configured Generator.
type BannerRenderer struct {
	generator Generator
}

// NewBannerRenderer wraps a Generator.
func NewBannerRenderer(generator Generator) *BannerRenderer {
	return &BannerRenderer{generator: generator}
}

// Render generates one 9:16 banner for style and returns it as a data URI.
func (r *BannerRenderer) Render(ctx context.Context, style domain.BannerStyle) (string, error) {
	assets, err := r.generator.Generate(ctx, GenerateRequest{
		Prompt:      BannerPrompt(style),
		Quantity:    1,
		AspectRatio: BannerAspectRatio,
		RequestID:   uuid.NewString(),
	})
	if err != nil {
		var genErr *domain.GenerationError
		if errors.As(err, &genErr) {
			return "", err
		}
		return "", &domain.GenerationError{Message: err.Error(), Err: err}
	}

	for _, asset := range assets {
		if len(asset.Data) == 0 {
			continue
		}
		return EncodeImageRef(asset), nil
	}

	return "", &domain.GenerationError{Message: domain.NoImageDataMessage, Err: domain.ErrNoImageData}
}

// EncodeImageRef encodes the asset bytes as a base64 data URI.
func EncodeImageRef(asset Asset) string {
	format := asset.Format
	if format == "" {
		format = defaultAssetFormat
	}
	return dataurl.New(asset.Data, format).String()
}

// DecodeImageRef reverses EncodeImageRef, returning the raw bytes and their
// media type.
func DecodeImageRef(ref string) ([]byte, string, error) {
	du, err := dataurl.DecodeString(ref)
	if err != nil {
		return nil, "", fmt.Errorf("decode image ref: %w", err)
	}
	return du.Data, du.ContentType(), nil
}

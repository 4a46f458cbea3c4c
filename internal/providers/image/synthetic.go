package image

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"strconv"
	"time"
)

// SyntheticGenerator renders deterministic placeholder banners locally. It is
// meant for development against the full HTTP flow when no Gemini key is
// configured.
type SyntheticGenerator struct {
	// Delay simulates provider latency.
	Delay time.Duration
	// Scale shrinks the rendered canvas; 1 renders at full size.
	Scale int
}

func NewSyntheticGenerator(delay time.Duration) *SyntheticGenerator {
	return &SyntheticGenerator{Delay: delay, Scale: 4}
}

func (g *SyntheticGenerator) Generate(ctx context.Context, req GenerateRequest) ([]Asset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	quantity := req.Quantity
	if quantity <= 0 {
		quantity = 1
	}
	scale := g.Scale
	if scale <= 0 {
		scale = 1
	}

	width, height := AspectRatioSize(req.AspectRatio)
	width, height = width/scale, height/scale

	assets := make([]Asset, quantity)
	for i := range assets {
		seed := deterministicSeed(req.Prompt, req.AspectRatio, i)
		data, err := renderSyntheticImage(width, height, seed)
		if err != nil {
			return nil, err
		}
		assets[i] = Asset{
			Format: "image/png",
			Width:  width,
			Height: height,
			Data:   data,
		}
	}

	if g.Delay <= 0 {
		return assets, nil
	}
	select {
	case <-time.After(g.Delay):
		return assets, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

var _ Generator = (*SyntheticGenerator)(nil)

func renderSyntheticImage(width, height int, seed string) ([]byte, error) {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	base := colorFromSeed(seed, 0)
	accent := colorFromSeed(seed, 1)
	draw.Draw(img, img.Bounds(), &image.Uniform{base}, image.Point{}, draw.Src)

	stripeHeight := max(8, height/12)
	for y := 0; y < height; y += stripeHeight * 2 {
		stripe := image.Rect(0, y, width, min(height, y+stripeHeight))
		draw.Draw(img, stripe, &image.Uniform{accent}, image.Point{}, draw.Over)
	}

	diagonal := colorFromSeed(seed, 2)
	for x := 0; x < max(width, height); x += max(4, width/32) {
		for y := 0; y < height; y++ {
			xx := x + y
			if xx >= width {
				break
			}
			img.Set(xx, y, diagonal)
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode synthetic png: %w", err)
	}
	return buf.Bytes(), nil
}

func colorFromSeed(seed string, shift int) color.RGBA {
	doubled := seed + seed
	start := (shift * 6) % len(seed)
	segment := doubled[start : start+6]
	return color.RGBA{
		R: parseHexByte(segment[0:2]),
		G: parseHexByte(segment[2:4]),
		B: parseHexByte(segment[4:6]),
		A: 255,
	}
}

func parseHexByte(s string) uint8 {
	v, err := strconv.ParseUint(s, 16, 8)
	if err != nil {
		return 0
	}
	return uint8(v)
}

func deterministicSeed(parts ...any) string {
	hasher := sha256.New()
	for _, part := range parts {
		fmt.Fprintf(hasher, "%v|", part)
	}
	return hex.EncodeToString(hasher.Sum(nil))[:16]
}

package image

import (
	"bytes"
	"context"
	"image/png"
	"testing"
)

func TestSyntheticGeneratorRendersPortraitPNG(t *testing.T) {
	gen := NewSyntheticGenerator(0)
	assets, err := gen.Generate(context.Background(), GenerateRequest{
		Prompt:      "banner",
		Quantity:    1,
		AspectRatio: BannerAspectRatio,
	})
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	if len(assets) != 1 {
		t.Fatalf("len(assets) = %d", len(assets))
	}
	cfg, err := png.DecodeConfig(bytes.NewReader(assets[0].Data))
	if err != nil {
		t.Fatalf("decode png: %v", err)
	}
	if cfg.Width != assets[0].Width || cfg.Height != assets[0].Height {
		t.Fatalf("metadata %dx%d does not match png %dx%d", assets[0].Width, assets[0].Height, cfg.Width, cfg.Height)
	}
	if cfg.Width >= cfg.Height {
		t.Fatalf("expected portrait image, got %dx%d", cfg.Width, cfg.Height)
	}
}

func TestSyntheticGeneratorIsDeterministic(t *testing.T) {
	gen := NewSyntheticGenerator(0)
	req := GenerateRequest{Prompt: "same", AspectRatio: BannerAspectRatio}
	a, err := gen.Generate(context.Background(), req)
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	b, err := gen.Generate(context.Background(), req)
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	if !bytes.Equal(a[0].Data, b[0].Data) {
		t.Fatalf("expected identical output for identical prompts")
	}
}

func TestSyntheticGeneratorHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := NewSyntheticGenerator(0).Generate(ctx, GenerateRequest{}); err == nil {
		t.Fatalf("expected context error")
	}
}

package domain

import (
	"sync"
	"testing"
)

func TestBannerStyleLabel(t *testing.T) {
	tests := map[BannerStyle]string{
		BannerStyleCyber:   "Cyber",
		BannerStyleMinimal: "Minimal",
		BannerStyleLuxury:  "Luxury",
		BannerStyleCartoon: "Cartoon",
	}
	for style, want := range tests {
		if got := style.Label(); got != want {
			t.Fatalf("%s.Label() = %q, want %q", style, got, want)
		}
		if !style.Valid() {
			t.Fatalf("%s should be valid", style)
		}
	}
	if BannerStyle("NEON").Valid() {
		t.Fatalf("unexpected valid style")
	}
}

// Handlers call Label from every request goroutine.
func TestBannerStyleLabelConcurrent(t *testing.T) {
	var wg sync.WaitGroup
	errs := make(chan string, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				if got := BannerStyleLuxury.Label(); got != "Luxury" {
					errs <- got
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for got := range errs {
		t.Fatalf("Label() = %q under concurrent use", got)
	}
}

func TestGenerationStateHasImage(t *testing.T) {
	tests := []struct {
		name  string
		state GenerationState
		want  bool
	}{
		{name: "idle", state: GenerationState{Status: GenerationStatusIdle}, want: false},
		{name: "success", state: GenerationState{Status: GenerationStatusSuccess, ImageRef: "data:image/png;base64,AA=="}, want: true},
		{name: "success without ref", state: GenerationState{Status: GenerationStatusSuccess}, want: false},
		{name: "error keeps stale ref", state: GenerationState{Status: GenerationStatusError, ImageRef: "data:image/png;base64,AA=="}, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.state.HasImage(); got != tt.want {
				t.Fatalf("HasImage() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBannerFilename(t *testing.T) {
	tests := map[string]string{
		"image/png":  "xox247-cyber.png",
		"image/jpeg": "xox247-cyber.jpg",
		"image/webp": "xox247-cyber.webp",
		"":           "xox247-cyber.png",
	}
	for mime, want := range tests {
		if got := BannerFilename("cyber", mime); got != want {
			t.Fatalf("BannerFilename(%q) = %q, want %q", mime, got, want)
		}
	}
}

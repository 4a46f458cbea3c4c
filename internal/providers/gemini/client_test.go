package gemini

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bannerarchitect/internal/domain"
)

func testPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	client, err := NewClient(context.Background(), Options{
		APIKey:     "test-key",
		BaseURL:    ts.URL,
		HTTPClient: ts.Client(),
	})
	if err != nil {
		t.Fatalf("NewClient error: %v", err)
	}
	return client
}

func TestGenerateImagesReturnsInlineData(t *testing.T) {
	pngData := testPNG(t, 9, 16)
	var body string

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/models/"+DefaultModel+":generateContent") {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		raw, _ := io.ReadAll(r.Body)
		body = string(raw)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"candidates": []any{
				map[string]any{
					"content": map[string]any{
						"role": "model",
						"parts": []any{
							map[string]any{"text": "Here is your banner"},
							map[string]any{"inlineData": map[string]any{
								"mimeType": "image/png",
								"data":     base64.StdEncoding.EncodeToString(pngData),
							}},
						},
					},
				},
			},
		})
	})

	assets, err := client.GenerateImages(context.Background(), ImageRequest{
		Prompt:      "draw a banner",
		Quantity:    1,
		AspectRatio: "9:16",
		RequestID:   "req-1",
	})
	if err != nil {
		t.Fatalf("GenerateImages error: %v", err)
	}
	if len(assets) != 1 {
		t.Fatalf("len(assets) = %d, want 1", len(assets))
	}
	if assets[0].Format != "image/png" {
		t.Fatalf("Format = %q", assets[0].Format)
	}
	if !bytes.Equal(assets[0].Data, pngData) {
		t.Fatalf("image bytes mismatch")
	}
	if assets[0].Width != 9 || assets[0].Height != 16 {
		t.Fatalf("dimensions = %dx%d, want 9x16", assets[0].Width, assets[0].Height)
	}
	if !strings.Contains(body, "draw a banner") {
		t.Fatalf("prompt missing from request body: %s", body)
	}
	if !strings.Contains(body, "9:16") {
		t.Fatalf("aspect ratio missing from request body: %s", body)
	}
}

func TestGenerateImagesWithoutImageParts(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"candidates":[{"content":{"role":"model","parts":[{"text":"sorry"}]}}]}`)
	})

	assets, err := client.GenerateImages(context.Background(), ImageRequest{Prompt: "p", Quantity: 1})
	if err != nil {
		t.Fatalf("GenerateImages error: %v", err)
	}
	if len(assets) != 0 {
		t.Fatalf("expected no assets, got %d", len(assets))
	}
}

func TestGenerateImagesKeepsAPIMessage(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `{"error":{"code":400,"message":"blocked","status":"INVALID_ARGUMENT"}}`)
	})

	_, err := client.GenerateImages(context.Background(), ImageRequest{Prompt: "p", Quantity: 1})
	if err == nil {
		t.Fatalf("expected error")
	}
	var genErr *domain.GenerationError
	if !errors.As(err, &genErr) {
		t.Fatalf("expected GenerationError, got %T: %v", err, err)
	}
	if genErr.Message != "blocked" {
		t.Fatalf("Message = %q, want %q", genErr.Message, "blocked")
	}
}

type failingTransport struct{ err error }

func (f failingTransport) RoundTrip(*http.Request) (*http.Response, error) {
	return nil, f.err
}

func TestGenerateImagesTransportErrorMessage(t *testing.T) {
	cause := errors.New("connection reset by peer")
	client, err := NewClient(context.Background(), Options{
		APIKey:     "test-key",
		BaseURL:    "http://gemini.invalid",
		HTTPClient: &http.Client{Transport: failingTransport{err: cause}},
	})
	if err != nil {
		t.Fatalf("NewClient error: %v", err)
	}

	_, err = client.GenerateImages(context.Background(), ImageRequest{Prompt: "p", Quantity: 1})
	var genErr *domain.GenerationError
	if !errors.As(err, &genErr) {
		t.Fatalf("expected GenerationError, got %T: %v", err, err)
	}
	if !errors.Is(err, cause) {
		t.Fatalf("cause not preserved: %v", err)
	}
	if strings.HasPrefix(genErr.Message, "gemini:") || !strings.Contains(genErr.Message, "connection reset by peer") {
		t.Fatalf("Message = %q", genErr.Message)
	}
}

func TestNewClientRequiresKey(t *testing.T) {
	if _, err := NewClient(context.Background(), Options{}); err == nil {
		t.Fatalf("expected error when api key missing")
	}
}

func TestClampQuantity(t *testing.T) {
	for in, want := range map[int]int{-1: 1, 0: 1, 2: 2, 9: 4} {
		if got := clampQuantity(in); got != want {
			t.Fatalf("clampQuantity(%d) = %d, want %d", in, got, want)
		}
	}
}

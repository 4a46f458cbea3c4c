package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"

	"bannerarchitect/internal/catalog"
	"bannerarchitect/internal/domain"
	"bannerarchitect/internal/generation"
	"bannerarchitect/internal/infra"
	"bannerarchitect/internal/providers/image"
	"bannerarchitect/internal/storage"
	"bannerarchitect/pkg/zip"
)

func main() {
	_ = godotenv.Load(".env", ".env.local")
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

// run generates the requested banners, writes every successful image into
// the output directory and reports 1 when any banner failed.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("bannergen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		outFlag string
		idFlag  string
		zipFlag bool
	)
	fs.StringVar(&outFlag, "out", "banners", "Directory the generated banners are written to")
	fs.StringVar(&idFlag, "id", "", "Generate a single banner (cyber, minimal, luxury, cartoon); default all")
	fs.BoolVar(&zipFlag, "zip", false, "Also write every generated banner into banners.zip")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := infra.LoadConfig()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	logger := infra.NewLoggerWithWriter(stderr, "cli")

	cat := catalog.Default()
	if idFlag != "" {
		if _, ok := cat.Find(idFlag); !ok {
			fmt.Fprintf(stderr, "%v: %q\n", domain.ErrUnknownBanner, idFlag)
			return 1
		}
	}

	generator, err := image.NewGenerator(ctx, cfg, logger)
	if err != nil {
		fmt.Fprintf(stderr, "build generator: %v\n", err)
		return 1
	}
	store, err := storage.NewFileStore(outFlag)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	orchestrator := generation.NewOrchestrator(cat, generation.NewStore(cat.List()), image.NewBannerRenderer(generator), logger)
	if idFlag != "" {
		orchestrator.GenerateOne(ctx, idFlag)
	} else {
		orchestrator.GenerateAll(ctx)
	}

	failed := false
	var assets []zip.Asset
	for _, state := range orchestrator.Snapshot().Slots {
		switch state.Status {
		case domain.GenerationStatusSuccess:
			data, mime, err := image.DecodeImageRef(state.ImageRef)
			if err == nil {
				var path string
				if path, err = store.WriteBanner(ctx, state.BannerID, mime, data); err == nil {
					assets = append(assets, zip.Asset{Filename: domain.BannerFilename(state.BannerID, mime), MIME: mime, Data: data})
					fmt.Fprintf(stdout, "%-8s success %s\n", state.BannerID, path)
					continue
				}
			}
			fmt.Fprintf(stdout, "%-8s error   %v\n", state.BannerID, err)
			failed = true
		case domain.GenerationStatusError:
			fmt.Fprintf(stdout, "%-8s error   %s\n", state.BannerID, state.Error)
			failed = true
		}
	}

	if zipFlag && len(assets) > 0 {
		archive, err := zip.ArchiveAssets(assets)
		if err != nil {
			fmt.Fprintf(stderr, "build archive: %v\n", err)
			return 1
		}
		path, err := store.Write(ctx, "banners.zip", archive)
		if err != nil {
			fmt.Fprintf(stderr, "write archive: %v\n", err)
			return 1
		}
		fmt.Fprintf(stdout, "archive  %s\n", path)
	}

	if failed {
		return 1
	}
	return 0
}

package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"bannerarchitect/internal/domain"
	"bannerarchitect/internal/providers/image"
	"bannerarchitect/pkg/zip"
)

// DownloadBanner serves the current image of a banner as an attachment.
func (a *App) DownloadBanner(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, ok := a.Catalog.Find(id); !ok {
		a.error(w, http.StatusNotFound, "not_found", "banner not found")
		return
	}
	state, ok := a.Orchestrator.State(id)
	if !ok || !state.HasImage() {
		a.error(w, http.StatusNotFound, "not_found", "banner has no generated image")
		return
	}
	data, mime, err := image.DecodeImageRef(state.ImageRef)
	if err != nil {
		a.Logger.Error().Err(err).Str("banner_id", id).Msg("handlers: decode image ref")
		a.error(w, http.StatusInternalServerError, "internal", "failed to decode image")
		return
	}
	w.Header().Set("Content-Type", mime)
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", domain.BannerFilename(id, mime)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// DownloadArchive bundles every successful banner into one zip file.
func (a *App) DownloadArchive(w http.ResponseWriter, r *http.Request) {
	var assets []zip.Asset
	for _, state := range a.Orchestrator.Snapshot().Slots {
		if !state.HasImage() {
			continue
		}
		data, mime, err := image.DecodeImageRef(state.ImageRef)
		if err != nil {
			a.Logger.Warn().Err(err).Str("banner_id", state.BannerID).Msg("handlers: skipping undecodable image")
			continue
		}
		assets = append(assets, zip.Asset{Filename: domain.BannerFilename(state.BannerID, mime), MIME: mime, Data: data})
	}
	if len(assets) == 0 {
		a.error(w, http.StatusNotFound, "not_found", "no generated banners to archive")
		return
	}
	archive, err := zip.ArchiveAssets(assets)
	if err != nil {
		a.Logger.Error().Err(err).Msg("handlers: build archive")
		a.error(w, http.StatusInternalServerError, "internal", "failed to build archive")
		return
	}
	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", "attachment; filename=xox247-banners.zip")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(archive)
}

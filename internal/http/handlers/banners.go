package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/samber/lo"

	"bannerarchitect/internal/domain"
)

type bannerResponse struct {
	ID               string     `json:"id"`
	Style            string     `json:"style"`
	StyleLabel       string     `json:"style_label"`
	Title            string     `json:"title"`
	Description      string     `json:"description"`
	Status           string     `json:"status"`
	ImageURL         string     `json:"image_url,omitempty"`
	PreviousImageURL string     `json:"previous_image_url,omitempty"`
	DownloadURL      string     `json:"download_url,omitempty"`
	Error            string     `json:"error,omitempty"`
	UpdatedAt        *time.Time `json:"updated_at,omitempty"`
}

type snapshotResponse struct {
	GeneratingAll bool             `json:"generating_all"`
	Banners       []bannerResponse `json:"banners"`
}

func (a *App) ListBanners(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, a.snapshot())
}

func (a *App) GetBanner(w http.ResponseWriter, r *http.Request) {
	resp, ok := a.banner(chi.URLParam(r, "id"))
	if !ok {
		a.error(w, http.StatusNotFound, "not_found", "banner not found")
		return
	}
	a.json(w, http.StatusOK, resp)
}

// GenerateBanner starts (or retries) generation of one banner.
func (a *App) GenerateBanner(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !a.Orchestrator.DispatchOne(r.Context(), id) {
		a.error(w, http.StatusNotFound, "not_found", "banner not found")
		return
	}
	resp, _ := a.banner(id)
	a.json(w, http.StatusAccepted, resp)
}

// GenerateAll starts generation of every banner at once.
func (a *App) GenerateAll(w http.ResponseWriter, r *http.Request) {
	if err := a.Orchestrator.DispatchAll(r.Context()); err != nil {
		if errors.Is(err, domain.ErrGenerateAllInProgress) {
			a.error(w, http.StatusConflict, "conflict", "generation of all banners is already running")
			return
		}
		a.Logger.Error().Err(err).Msg("handlers: dispatch all failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to start generation")
		return
	}
	a.json(w, http.StatusAccepted, a.snapshot())
}

func (a *App) snapshot() snapshotResponse {
	snap := a.Orchestrator.Snapshot()
	return snapshotResponse{
		GeneratingAll: snap.GeneratingAll,
		Banners: lo.FilterMap(snap.Slots, func(state domain.GenerationState, _ int) (bannerResponse, bool) {
			def, ok := a.Catalog.Find(state.BannerID)
			if !ok {
				return bannerResponse{}, false
			}
			return toBannerResponse(def, state), true
		}),
	}
}

func (a *App) banner(id string) (bannerResponse, bool) {
	def, ok := a.Catalog.Find(id)
	if !ok {
		return bannerResponse{}, false
	}
	state, ok := a.Orchestrator.State(id)
	if !ok {
		return bannerResponse{}, false
	}
	return toBannerResponse(def, state), true
}

func toBannerResponse(def domain.BannerDefinition, state domain.GenerationState) bannerResponse {
	resp := bannerResponse{
		ID:          def.ID,
		Style:       string(def.Style),
		StyleLabel:  def.Style.Label(),
		Title:       def.Title,
		Description: def.Description,
		Status:      string(state.Status),
		Error:       state.Error,
	}
	if state.HasImage() {
		resp.ImageURL = state.ImageRef
		resp.DownloadURL = downloadPath(def.ID)
	} else {
		resp.PreviousImageURL = state.ImageRef
	}
	if !state.UpdatedAt.IsZero() {
		updated := state.UpdatedAt.UTC()
		resp.UpdatedAt = &updated
	}
	return resp
}

func downloadPath(id string) string {
	return "/v1/banners/" + id + "/download"
}

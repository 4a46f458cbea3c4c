package handlers

import (
	"net/http"

	"github.com/samber/lo"

	"bannerarchitect/internal/domain"
)

// StatsSummary reports how many banner slots sit in each status.
func (a *App) StatsSummary(w http.ResponseWriter, r *http.Request) {
	snap := a.Orchestrator.Snapshot()
	count := func(status domain.GenerationStatus) int {
		return lo.CountBy(snap.Slots, func(s domain.GenerationState) bool { return s.Status == status })
	}
	a.json(w, http.StatusOK, map[string]any{
		"total":          len(snap.Slots),
		"idle":           count(domain.GenerationStatusIdle),
		"pending":        count(domain.GenerationStatusPending),
		"success":        count(domain.GenerationStatusSuccess),
		"error":          count(domain.GenerationStatusError),
		"generating_all": snap.GeneratingAll,
	})
}

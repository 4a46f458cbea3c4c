package handlers

import (
	"encoding/json"
	"net/http"

	"bannerarchitect/internal/catalog"
	"bannerarchitect/internal/generation"
	"bannerarchitect/internal/infra"
)

// App carries the dependencies shared by every HTTP handler.
type App struct {
	Catalog      *catalog.Catalog
	Orchestrator *generation.Orchestrator
	Logger       infra.Logger
}

func NewApp(cat *catalog.Catalog, orchestrator *generation.Orchestrator, logger infra.Logger) *App {
	return &App{Catalog: cat, Orchestrator: orchestrator, Logger: logger}
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, status int, code, message string) {
	a.json(w, status, map[string]errorBody{"error": {Code: code, Message: message}})
}

package web

import (
	"context"
	"embed"
	"io/fs"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
	g "maragu.dev/gomponents"

	"daysoflight/internal/content"
	"daysoflight/internal/houses"
	"daysoflight/internal/web/view"
)

//go:embed static
var static embed.FS

// Handler holds the HTTP handlers of the site and their dependencies.
type Handler struct {
	fetcher    houses.Fetcher
	content    *content.Content
	renderWait time.Duration
}

// New creates a Handler. Each page view fetches houses through fetcher and
// waits at most renderWait for the answer before rendering.
func New(fetcher houses.Fetcher, c *content.Content, renderWait time.Duration) *Handler {
	return &Handler{
		fetcher:    fetcher,
		content:    c,
		renderWait: renderWait,
	}
}

// RegisterRoutes registers all HTTP routes on the given mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	assets, _ := fs.Sub(static, "static")

	mux.HandleFunc("GET /{$}", h.noCache(h.handleIndex))
	mux.HandleFunc("GET /houses", h.noCache(h.handleHouses))
	mux.HandleFunc("GET /give", h.noCache(h.handleGive))
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServerFS(assets)))
	mux.HandleFunc("GET /health", h.handleHealth)
}

func (h *Handler) noCache(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-store, no-cache, must-revalidate, proxy-revalidate")
		w.Header().Set("Pragma", "no-cache")
		w.Header().Set("Expires", "0")
		next(w, r)
	}
}

func (h *Handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, view.Home(h.content, h.houseView(r)))
}

func (h *Handler) handleHouses(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, view.Houses(h.content, h.houseView(r)))
}

func (h *Handler) handleGive(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, view.Give(h.content))
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

// houseView starts a fetch for this page view and resolves whatever state it
// reached within the render wait. The fetch outlives the request.
func (h *Handler) houseView(r *http.Request) houses.View {
	load := houses.Start(context.WithoutCancel(r.Context()), h.fetcher)

	ctx, cancel := context.WithTimeout(r.Context(), h.renderWait)
	defer cancel()
	result := load.Wait(ctx)

	logger := log.Ctx(r.Context())
	switch result.State() {
	case houses.StateError:
		logger.Debug().Err(result.Err()).Msg("Rendering fallback houses")
	case houses.StateLoading:
		logger.Debug().Dur("wait", h.renderWait).Msg("Houses still loading at render time")
	}
	return houses.Resolve(result)
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, node g.Node) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := node.Render(w); err != nil {
		log.Ctx(r.Context()).Error().Err(err).Msg("Failed to render page")
	}
}

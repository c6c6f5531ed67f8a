// Package api serves the houses REST API consumed by the site.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog/log"

	"daysoflight/internal/cache"
	"daysoflight/internal/model"
	"daysoflight/internal/repo"
	"daysoflight/internal/server"
)

const listingKey = "houses"

// Repository is the house storage the API reads from.
type Repository interface {
	ListHouses(ctx context.Context) ([]model.House, error)
	GetHouse(ctx context.Context, id int64) (model.House, error)
}

// Handler holds the API handlers and their dependencies.
type Handler struct {
	repo    Repository
	cache   *cache.Cache
	origins []string
}

// New creates a Handler. A nil cache reads the repository on every request.
func New(r Repository, c *cache.Cache, origins []string) *Handler {
	return &Handler{
		repo:    r,
		cache:   c,
		origins: origins,
	}
}

// Routes returns the API router.
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(server.WithRequestID, server.WithLogging, server.WithRecovery)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: h.origins,
		AllowedMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	}))

	r.Get("/health", h.handleHealth)
	r.Route("/api/houses", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Get("/{id}", h.handleDetail)
		r.Get("/{id}/", h.handleDetail)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeDetail(w, http.StatusNotFound, "Not found.")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeDetail(w, http.StatusMethodNotAllowed, "Method \""+r.Method+"\" not allowed.")
	})

	return r
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	q := parseQuery(r.URL.Query())

	all, err := h.listing(r.Context())
	if err != nil {
		log.Ctx(r.Context()).Error().Err(err).Msg("Failed to list houses")
		writeDetail(w, http.StatusInternalServerError, "Unable to list houses.")
		return
	}

	page, err := q.apply(all, requestURL(r))
	if err != nil {
		writeDetail(w, http.StatusNotFound, "Invalid page.")
		return
	}

	writeJSON(w, http.StatusOK, page)
}

func (h *Handler) handleDetail(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeDetail(w, http.StatusNotFound, "Not found.")
		return
	}

	house, err := h.repo.GetHouse(r.Context(), id)
	if errors.Is(err, repo.ErrNotFound) {
		writeDetail(w, http.StatusNotFound, "Not found.")
		return
	}
	if err != nil {
		log.Ctx(r.Context()).Error().Err(err).Int64("id", id).Msg("Failed to get house")
		writeDetail(w, http.StatusInternalServerError, "Unable to load house.")
		return
	}

	writeJSON(w, http.StatusOK, house)
}

// listing returns every house, served from the cache while it is fresh.
func (h *Handler) listing(ctx context.Context) ([]model.House, error) {
	if h.cache != nil {
		if cached, ok := h.cache.Get(listingKey); ok {
			return cached, nil
		}
	}

	all, err := h.repo.ListHouses(ctx)
	if err != nil {
		return nil, err
	}

	if h.cache != nil {
		if err := h.cache.Set(listingKey, all); err != nil {
			log.Ctx(ctx).Warn().Err(err).Msg("Failed to cache house listing")
		}
	}
	return all, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}

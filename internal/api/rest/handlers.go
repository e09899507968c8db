package rest

import (
	"encoding/json"
	"net/http"

	"github.com/akshay23/spurs-blog-mcp-server/internal/service"
)

// Handler contains dependencies for HTTP handlers.
type Handler struct {
	svc *service.Blog
}

// NewHandler creates a new handler.
func NewHandler(svc *service.Blog) *Handler {
	return &Handler{svc: svc}
}

// HealthCheck handles health check requests.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "spurs-blog-mcp-server",
	})
}

// GetArticles returns the current article snapshot.
func (h *Handler) GetArticles(w http.ResponseWriter, r *http.Request) {
	articles, err := h.svc.Articles(r.Context())
	if err != nil {
		respondError(w, http.StatusBadGateway, "Failed to fetch articles", err)
		return
	}
	respondJSON(w, http.StatusOK, articles)
}

// GetGameResults returns the extracted game results.
func (h *Handler) GetGameResults(w http.ResponseWriter, r *http.Request) {
	results, err := h.svc.GameResults(r.Context())
	if err != nil {
		respondError(w, http.StatusBadGateway, "Failed to extract game results", err)
		return
	}
	respondJSON(w, http.StatusOK, results)
}

// GetPlayers returns the player mention index.
func (h *Handler) GetPlayers(w http.ResponseWriter, r *http.Request) {
	players, err := h.svc.Players(r.Context())
	if err != nil {
		respondError(w, http.StatusBadGateway, "Failed to index players", err)
		return
	}
	respondJSON(w, http.StatusOK, players)
}

// SearchArticles returns articles matching the q query parameter.
func (h *Handler) SearchArticles(w http.ResponseWriter, r *http.Request) {
	keyword := r.URL.Query().Get("q")
	if keyword == "" {
		respondError(w, http.StatusBadRequest, "Missing query parameter 'q'", nil)
		return
	}

	results, err := h.svc.Search(r.Context(), keyword)
	if err != nil {
		respondError(w, http.StatusBadGateway, "Search failed", err)
		return
	}
	respondJSON(w, http.StatusOK, results)
}

// respondJSON writes a JSON response.
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError writes an error response.
func respondError(w http.ResponseWriter, status int, message string, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	response := map[string]interface{}{
		"error":  message,
		"status": status,
	}
	if err != nil {
		response["details"] = err.Error()
	}

	json.NewEncoder(w).Encode(response)
}

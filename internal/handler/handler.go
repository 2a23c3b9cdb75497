package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/KOFI-GYIMAH/portfolio-api/internal/github"
	"github.com/KOFI-GYIMAH/portfolio-api/internal/models"
	"github.com/KOFI-GYIMAH/portfolio-api/internal/service"
	"github.com/KOFI-GYIMAH/portfolio-api/pkg/errors"
	"github.com/KOFI-GYIMAH/portfolio-api/pkg/logger"
	"github.com/gorilla/mux"
)

// CacheControl is sent with every complete, successful document.
const CacheControl = "public, s-maxage=3600, stale-while-revalidate=86400"

type PortfolioService interface {
	GetStats(ctx context.Context) (*models.UserStatistics, error)
	GetActivity(ctx context.Context) (*models.ActivitySummary, error)
	GetContributions(ctx context.Context) (*models.ContributionCalendar, error)
	ListRepositories(ctx context.Context, opts service.RepositoryListOptions) ([]models.RepositorySummary, error)
	GetOverview(ctx context.Context) (models.Overview, map[string]error)
}

// QuotaSource exposes the last GitHub quota readings for /health.
type QuotaSource interface {
	Snapshot() map[string]github.Quota
}

type PortfolioHandler struct {
	service PortfolioService
	quotas  QuotaSource
	started time.Time
}

func NewPortfolioHandler(service PortfolioService, quotas QuotaSource) *PortfolioHandler {
	return &PortfolioHandler{
		service: service,
		quotas:  quotas,
		started: time.Now(),
	}
}

func (h *PortfolioHandler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/stats", h.getStats).Methods("GET")
	r.HandleFunc("/activity", h.getActivity).Methods("GET")
	r.HandleFunc("/contributions", h.getContributions).Methods("GET")
	r.HandleFunc("/repos", h.getRepositories).Methods("GET")
	r.HandleFunc("/overview", h.getOverview).Methods("GET")
}

func writeSuccess(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", CacheControl)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("Failed to encode response: %v", err)
	}
}

// * classify maps a failure to a status and a message safe to show a client.
// * Only a missing upstream entity is a 404; everything else is a 500.
func classify(err error, fallback string) (int, string) {
	switch {
	case errors.HasReference(err, github.RefAuthentication):
		return http.StatusInternalServerError, "GitHub API is not configured"
	case errors.HasReference(err, service.RefUserNotFound):
		return http.StatusNotFound, "GitHub user not found"
	case errors.HasReference(err, service.RefContributionsNotFound):
		return http.StatusNotFound, "Contributions not found"
	default:
		return http.StatusInternalServerError, fallback
	}
}

func writeFailure(w http.ResponseWriter, err error, fallback string) {
	status, message := classify(err, fallback)
	errors.WriteHTTPError(w, status, message, err)
}

// getStats godoc
// @Summary Get Statistics
// @Description Profile totals: repositories, stars, commits, pull requests, reviews, issues and followers
// @Tags Portfolio
// @Produce json
// @Success 200 {object} models.UserStatistics
// @Failure 404 {object} errors.HTTPErrorResponse "GitHub user not found"
// @Failure 500 {object} errors.HTTPErrorResponse "Internal Server Error"
// @Router /api/stats [get]
func (h *PortfolioHandler) getStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.GetStats(r.Context())
	if err != nil {
		writeFailure(w, err, "Failed to fetch GitHub statistics")
		return
	}

	logger.Info("Served stats for %s", stats.Login)
	writeSuccess(w, stats)
}

// getActivity godoc
// @Summary Get Activity
// @Description Contribution activity since January 1st of the previous year
// @Tags Portfolio
// @Produce json
// @Success 200 {object} models.ActivitySummary
// @Failure 404 {object} errors.HTTPErrorResponse "GitHub user not found"
// @Failure 500 {object} errors.HTTPErrorResponse "Internal Server Error"
// @Router /api/activity [get]
func (h *PortfolioHandler) getActivity(w http.ResponseWriter, r *http.Request) {
	activity, err := h.service.GetActivity(r.Context())
	if err != nil {
		writeFailure(w, err, "Failed to fetch GitHub activity")
		return
	}

	writeSuccess(w, activity)
}

// getContributions godoc
// @Summary Get Contributions
// @Description Contribution calendar for the trailing year
// @Tags Portfolio
// @Produce json
// @Success 200 {object} models.ContributionCalendar
// @Failure 404 {object} errors.HTTPErrorResponse "Contributions not found"
// @Failure 500 {object} errors.HTTPErrorResponse "Internal Server Error"
// @Router /api/contributions [get]
func (h *PortfolioHandler) getContributions(w http.ResponseWriter, r *http.Request) {
	calendar, err := h.service.GetContributions(r.Context())
	if err != nil {
		writeFailure(w, err, "Failed to fetch GitHub contributions")
		return
	}

	logger.Info("Served %d contribution weeks", len(calendar.Weeks))
	writeSuccess(w, calendar)
}

// parseLimit falls back to the default for a missing, non-numeric or
// non-positive value.
func parseLimit(raw string) int {
	limit, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || limit < 1 {
		return service.DefaultRepositoryLimit
	}
	return min(limit, service.MaxRepositories)
}

func parseFeatured(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	return strings.Split(raw, ",")
}

// getRepositories godoc
// @Summary List Repositories
// @Description Public, active repositories. Featured matches come first, then each group is ordered by stars.
// @Tags Portfolio
// @Produce json
// @Param featured query string false "Comma-separated name fragments to pin first"
// @Param limit query int false "Max repositories to return" default(10)
// @Success 200 {array} models.RepositorySummary
// @Failure 500 {object} errors.HTTPErrorResponse "Internal Server Error"
// @Router /api/repos [get]
func (h *PortfolioHandler) getRepositories(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	opts := service.RepositoryListOptions{
		Featured: parseFeatured(query.Get("featured")),
		Limit:    parseLimit(query.Get("limit")),
	}

	repos, err := h.service.ListRepositories(r.Context(), opts)
	if err != nil {
		// * listings never answer 404
		errors.WriteHTTPError(w, http.StatusInternalServerError, "Failed to fetch GitHub repositories", err)
		return
	}

	if repos == nil {
		repos = []models.RepositorySummary{}
	}

	logger.Info("Served %d repositories (limit %d, %d featured fragments)", len(repos), opts.Limit, len(opts.Featured))
	writeSuccess(w, repos)
}

// getOverview godoc
// @Summary Get Overview
// @Description Statistics, activity and contributions in one document. Sections fail independently.
// @Tags Portfolio
// @Produce json
// @Success 200 {object} models.Overview
// @Failure 500 {object} errors.HTTPErrorResponse "Internal Server Error"
// @Router /api/overview [get]
func (h *PortfolioHandler) getOverview(w http.ResponseWriter, r *http.Request) {
	overview, failures := h.service.GetOverview(r.Context())

	if len(failures) > 0 {
		overview.Errors = make(map[string]string, len(failures))
		for section, err := range failures {
			_, message := classify(err, "Failed to fetch "+section)
			overview.Errors[section] = message
			logger.Error("Overview section %s failed: %v", section, err)
		}
	}

	if overview.Stats == nil && overview.Activity == nil && overview.Contributions == nil {
		errors.WriteHTTPError(w, http.StatusInternalServerError, "Failed to fetch GitHub overview", nil)
		return
	}

	if len(failures) > 0 {
		// * partial documents must not be cached downstream
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Cache-Control", "no-store")
		if err := json.NewEncoder(w).Encode(overview); err != nil {
			logger.Error("Failed to encode response: %v", err)
		}
		return
	}

	writeSuccess(w, overview)
}

// Health godoc
// @Summary Health
// @Description Liveness and the last observed GitHub quota
// @Tags System
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (h *PortfolioHandler) Health(w http.ResponseWriter, r *http.Request) {
	resp := HealthResponse{
		Status: "ok",
		Uptime: time.Since(h.started).Round(time.Second).String(),
	}
	if h.quotas != nil {
		resp.Quotas = h.quotas.Snapshot()
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	json.NewEncoder(w).Encode(resp)
}

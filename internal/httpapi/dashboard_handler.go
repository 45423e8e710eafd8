package httpapi

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/badbingo/studyflow/internal/insights"
)

// RegisterDashboardRoutes wires the admin dashboard routes onto the provided router.
func RegisterDashboardRoutes(r chi.Router, svc *insights.Service) {
	h := &dashboardHandler{service: svc}

	r.Route("/v1/admin", func(r chi.Router) {
		r.Get("/dashboard", h.getDashboard)
	})
}

type dashboardHandler struct {
	service *insights.Service
}

type dashboardResponse struct {
	DAU               int                  `json:"dau"`
	WAU               int                  `json:"wau"`
	MAU               int                  `json:"mau"`
	AvgSessionMinutes float64              `json:"avgSessionMinutes"`
	SessionStats      sessionStatsResponse `json:"sessionStats"`
	Active30          []int                `json:"active30"`
	Sessions30        []int                `json:"sessions30"`
	AvgDuration30     []float64            `json:"avgDuration30"`
	FeatureUsage      featureUsageResponse `json:"featureUsage"`
	FeatureTrends     map[string][]int     `json:"featureTrends"`
	UserEngagement    map[string]int       `json:"userEngagement"`
	SessionFrequency  map[string]int       `json:"sessionFrequency"`
	SessionDepth      sessionDepthResponse `json:"sessionDepth"`
}

type sessionStatsResponse struct {
	Avg   float64 `json:"avg"`
	Min   int     `json:"min"`
	Max   int     `json:"max"`
	Total int     `json:"total"`
}

type featureUsageResponse struct {
	Labels []string `json:"labels"`
	Values []int    `json:"values"`
}

type sessionDepthResponse struct {
	DurationDistribution  map[string]int `json:"durationDistribution"`
	TimeOfDayDistribution map[string]int `json:"timeOfDayDistribution"`
	SessionIntensity      map[string]int `json:"sessionIntensity"`
	AvgSessionsPerDay     float64        `json:"avgSessionsPerDay"`
	MaxConsecutiveDays    int            `json:"maxConsecutiveDays"`
}

func (h *dashboardHandler) getDashboard(w http.ResponseWriter, r *http.Request) {
	role := r.URL.Query().Get("role")

	metrics, err := h.service.Dashboard(r.Context(), role)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			writeError(w, http.StatusServiceUnavailable, "request cancelled")
			return
		}
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, mapDashboardResponse(metrics))
}

func mapDashboardResponse(m insights.DashboardMetrics) dashboardResponse {
	return dashboardResponse{
		DAU:               m.DAU,
		WAU:               m.WAU,
		MAU:               m.MAU,
		AvgSessionMinutes: m.AvgSessionMinutes,
		SessionStats: sessionStatsResponse{
			Avg:   m.SessionStats.Avg,
			Min:   m.SessionStats.Min,
			Max:   m.SessionStats.Max,
			Total: m.SessionStats.Total,
		},
		Active30:         m.Active30,
		Sessions30:       m.Sessions30,
		AvgDuration30:    m.AvgDuration30,
		FeatureUsage:     featureUsageResponse{Labels: m.FeatureUsage.Labels, Values: m.FeatureUsage.Values},
		FeatureTrends:    m.FeatureTrends,
		UserEngagement:   m.UserEngagement,
		SessionFrequency: m.SessionDepth.SessionFrequency,
		SessionDepth: sessionDepthResponse{
			DurationDistribution:  m.SessionDepth.DurationDistribution,
			TimeOfDayDistribution: m.SessionDepth.TimeOfDayDistribution,
			SessionIntensity:      m.SessionDepth.SessionIntensity,
			AvgSessionsPerDay:     m.SessionDepth.AvgSessionsPerDay,
			MaxConsecutiveDays:    m.SessionDepth.MaxConsecutiveDays,
		},
	}
}

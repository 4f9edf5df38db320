package controllers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rewardplus/loyalty-console/api/responses"
	pkgerrors "github.com/rewardplus/loyalty-console/pkg/errors"
	"github.com/rewardplus/loyalty-console/pkg/logger"
	"github.com/rewardplus/loyalty-console/pkg/loyalty"
)

// AnalyticsService is the slice of the loyalty client the analytics
// controllers call.
type AnalyticsService interface {
	Summary(ctx context.Context) (*loyalty.AnalyticsSummary, error)
	CustomerActivity(ctx context.Context) (map[string]any, error)
	RedemptionTrends(ctx context.Context) (map[string]any, error)
	SalesAnalytics(ctx context.Context) (map[string]any, error)
}

// AnalyticsSummary returns the program-wide rollup.
func AnalyticsSummary(svc AnalyticsService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "analytics service unavailable"))
			return
		}

		summary, err := svc.Summary(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, summary)
	}
}

// AnalyticsReport serves one of the named upstream report payloads. The
// payloads are pass-through documents, not typed entities.
func AnalyticsReport(svc AnalyticsService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "analytics service unavailable"))
			return
		}

		var (
			report map[string]any
			err    error
		)
		switch name := chi.URLParam(r, "report"); name {
		case "customers":
			report, err = svc.CustomerActivity(ctx)
		case "redemptions":
			report, err = svc.RedemptionTrends(ctx)
		case "sales":
			report, err = svc.SalesAnalytics(ctx)
		default:
			err = pkgerrors.New(pkgerrors.CodeNotFound, "unknown analytics report").
				WithDetails(map[string]any{"report": name})
		}
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, report)
	}
}

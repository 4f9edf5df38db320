package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rewardplus/loyalty-console/api/responses"
	"github.com/rewardplus/loyalty-console/api/validators"
	"github.com/rewardplus/loyalty-console/internal/dashboard"
	pkgerrors "github.com/rewardplus/loyalty-console/pkg/errors"
	"github.com/rewardplus/loyalty-console/pkg/logger"
)

// CustomerDashboard serves the member view snapshot. Without a path id
// the demo walkthrough account is shown.
func CustomerDashboard(svc dashboard.Service, logg *logger.Logger, demoCustomerID int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "dashboard service unavailable"))
			return
		}

		customerID := demoCustomerID
		if raw := chi.URLParam(r, "customerId"); raw != "" {
			var err error
			customerID, err = validators.ParsePathID(raw, "customerId")
			if err != nil {
				responses.WriteError(ctx, logg, w, err)
				return
			}
		}

		if logg != nil {
			ctx = logg.WithCustomerID(ctx, customerID)
		}
		snap, err := svc.Customer(ctx, customerID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, snap)
	}
}

// SalesDashboard serves the roster view. A blank or whitespace query
// yields the unfiltered paginated list.
func SalesDashboard(svc dashboard.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "dashboard service unavailable"))
			return
		}

		page, err := validators.ParseQueryInt(r, "page", 0, 0, 10000)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		snap, err := svc.Sales(ctx, r.URL.Query().Get("query"), page)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, snap)
	}
}

// MarketingDashboard serves the campaign view snapshot.
func MarketingDashboard(svc dashboard.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "dashboard service unavailable"))
			return
		}

		snap, err := svc.Marketing(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, snap)
	}
}

// ManagerDashboard serves the analytics view snapshot.
func ManagerDashboard(svc dashboard.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "dashboard service unavailable"))
			return
		}

		snap, err := svc.Manager(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, snap)
	}
}

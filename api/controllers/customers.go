package controllers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rewardplus/loyalty-console/api/responses"
	"github.com/rewardplus/loyalty-console/api/validators"
	pkgerrors "github.com/rewardplus/loyalty-console/pkg/errors"
	"github.com/rewardplus/loyalty-console/pkg/logger"
	"github.com/rewardplus/loyalty-console/pkg/loyalty"
)

// CustomerService is the slice of the loyalty client the customer
// controllers call.
type CustomerService interface {
	GetCustomer(ctx context.Context, id int64) (*loyalty.Customer, error)
	EnrollCustomer(ctx context.Context, params loyalty.EnrollCustomerParams) (*loyalty.Customer, error)
}

type enrollCustomerPayload struct {
	FirstName   string `json:"firstName" validate:"required"`
	LastName    string `json:"lastName" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Phone       string `json:"phone"`
	DateOfBirth string `json:"dateOfBirth" validate:"required"`
}

// CustomerGet returns one enrolled customer by id.
func CustomerGet(svc CustomerService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "customer service unavailable"))
			return
		}

		id, err := validators.ParsePathID(chi.URLParam(r, "customerId"), "customerId")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		customer, err := svc.GetCustomer(ctx, id)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, customer)
	}
}

// CustomerEnroll validates the enrollment form and creates the member.
// The upstream record is returned as created; there is no local cache,
// so the next roster load reflects it immediately.
func CustomerEnroll(svc CustomerService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "customer service unavailable"))
			return
		}

		var payload enrollCustomerPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		customer, err := svc.EnrollCustomer(ctx, loyalty.EnrollCustomerParams{
			FirstName:   payload.FirstName,
			LastName:    payload.LastName,
			Email:       payload.Email,
			Phone:       payload.Phone,
			DateOfBirth: payload.DateOfBirth,
		})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, customer)
	}
}

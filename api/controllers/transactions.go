package controllers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/rewardplus/loyalty-console/api/responses"
	"github.com/rewardplus/loyalty-console/api/validators"
	pkgerrors "github.com/rewardplus/loyalty-console/pkg/errors"
	"github.com/rewardplus/loyalty-console/pkg/logger"
	"github.com/rewardplus/loyalty-console/pkg/loyalty"
)

// TransactionService is the slice of the loyalty client the transaction
// controllers call.
type TransactionService interface {
	CreateTransaction(ctx context.Context, customerID int64, params loyalty.CreateTransactionParams) (*loyalty.Transaction, error)
	ListCustomerTransactions(ctx context.Context, customerID int64, page, size int) ([]loyalty.Transaction, *loyalty.Pagination, error)
}

type createTransactionPayload struct {
	Amount          decimal.Decimal `json:"amount" validate:"required"`
	Description     string          `json:"description"`
	TransactionCode string          `json:"transactionCode"`
}

// TransactionCreate records a purchase against a customer's ledger and
// returns the refreshed first page of that ledger alongside the new
// record, so the caller never renders a stale list.
func TransactionCreate(svc TransactionService, logg *logger.Logger, pageSize int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "transaction service unavailable"))
			return
		}

		customerID, err := validators.ParsePathID(chi.URLParam(r, "customerId"), "customerId")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		var payload createTransactionPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		if !payload.Amount.IsPositive() {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeValidation, "amount must be positive").
				WithDetails(map[string]string{"amount": "must be greater than 0"}))
			return
		}

		created, err := svc.CreateTransaction(ctx, customerID, loyalty.CreateTransactionParams{
			Amount:          payload.Amount,
			Description:     payload.Description,
			TransactionCode: payload.TransactionCode,
		})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		transactions, _, err := svc.ListCustomerTransactions(ctx, customerID, 0, pageSize)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, map[string]any{
			"transaction":  created,
			"transactions": transactions,
		})
	}
}

// TransactionList returns one page of a customer's ledger.
func TransactionList(svc TransactionService, logg *logger.Logger, defaultSize int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "transaction service unavailable"))
			return
		}

		customerID, err := validators.ParsePathID(chi.URLParam(r, "customerId"), "customerId")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		page, err := validators.ParseQueryInt(r, "page", 0, 0, 10000)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		size, err := validators.ParseQueryInt(r, "size", defaultSize, 1, 100)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		transactions, pagination, err := svc.ListCustomerTransactions(ctx, customerID, page, size)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{
			"transactions": transactions,
			"pagination":   pagination,
		})
	}
}

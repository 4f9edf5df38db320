package controllers

import (
	"context"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/rewardplus/loyalty-console/api/responses"
	"github.com/rewardplus/loyalty-console/api/validators"
	pkgerrors "github.com/rewardplus/loyalty-console/pkg/errors"
	"github.com/rewardplus/loyalty-console/pkg/logger"
	"github.com/rewardplus/loyalty-console/pkg/loyalty"
)

// PromotionService is the slice of the loyalty client the promotion
// controllers call.
type PromotionService interface {
	CreatePromotion(ctx context.Context, params loyalty.CreatePromotionParams) (*loyalty.Promotion, error)
	ActivePromotions(ctx context.Context) ([]loyalty.Promotion, error)
}

type createPromotionPayload struct {
	Name                  string           `json:"name" validate:"required"`
	Description           string           `json:"description"`
	Type                  string           `json:"promotionType" validate:"required"`
	Status                string           `json:"status" validate:"omitempty,oneof=DRAFT SCHEDULED ACTIVE PAUSED EXPIRED"`
	StartDate             string           `json:"startDate" validate:"required"`
	EndDate               string           `json:"endDate" validate:"required"`
	BonusPointsMultiplier *decimal.Decimal `json:"bonusPointsMultiplier"`
	UsageLimit            int              `json:"usageLimit" validate:"omitempty,gt=0"`
}

// PromotionCreate validates the campaign form, creates the promotion,
// and returns it with the refreshed active list. A missing date never
// reaches the network: the form check rejects it first.
func PromotionCreate(svc PromotionService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "promotion service unavailable"))
			return
		}

		var payload createPromotionPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		status := payload.Status
		if status == "" {
			status = loyalty.PromotionDraft
		}

		created, err := svc.CreatePromotion(ctx, loyalty.CreatePromotionParams{
			Name:                  payload.Name,
			Description:           payload.Description,
			Type:                  payload.Type,
			Status:                status,
			StartDate:             payload.StartDate,
			EndDate:               payload.EndDate,
			BonusPointsMultiplier: payload.BonusPointsMultiplier,
			UsageLimit:            payload.UsageLimit,
		})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		promotions, err := svc.ActivePromotions(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, map[string]any{
			"promotion":  created,
			"promotions": promotions,
		})
	}
}

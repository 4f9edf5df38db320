package controllers

import (
	"context"
	"net/http"

	"github.com/rewardplus/loyalty-console/api/responses"
	"github.com/rewardplus/loyalty-console/api/validators"
	pkgerrors "github.com/rewardplus/loyalty-console/pkg/errors"
	"github.com/rewardplus/loyalty-console/pkg/logger"
	"github.com/rewardplus/loyalty-console/pkg/loyalty"
)

// RewardService is the slice of the loyalty client the reward
// controllers call.
type RewardService interface {
	RedeemReward(ctx context.Context, customerID, rewardID int64) (*loyalty.Redemption, error)
	GetPointsSummary(ctx context.Context, id int64) (*loyalty.PointsSummary, error)
	AvailableRewards(ctx context.Context) ([]loyalty.Reward, error)
}

type redeemRewardPayload struct {
	CustomerID int64 `json:"customerId" validate:"required,gt=0"`
	RewardID   int64 `json:"rewardId" validate:"required,gt=0"`
}

// RewardRedeem exchanges points for a reward and returns the refreshed
// points summary with the redemption, since the balance just changed.
func RewardRedeem(svc RewardService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "reward service unavailable"))
			return
		}

		var payload redeemRewardPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		redemption, err := svc.RedeemReward(ctx, payload.CustomerID, payload.RewardID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		points, err := svc.GetPointsSummary(ctx, payload.CustomerID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, map[string]any{
			"redemption": redemption,
			"points":     points,
		})
	}
}

// RewardList returns the redeemable catalog.
func RewardList(svc RewardService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "reward service unavailable"))
			return
		}

		rewards, err := svc.AvailableRewards(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, rewards)
	}
}

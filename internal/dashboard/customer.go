package dashboard

import (
	"context"

	"github.com/rewardplus/loyalty-console/pkg/loyalty"
	"golang.org/x/sync/errgroup"
)

// CustomerSnapshot is the render-ready state for the member-facing view:
// points account with derived tier progress, recent ledger entries, the
// redeemable catalog, and the member's promotions.
type CustomerSnapshot struct {
	State        State                  `json:"state"`
	Points       *loyalty.PointsSummary `json:"points,omitempty"`
	Progress     *TierProgress          `json:"progress,omitempty"`
	Transactions []loyalty.Transaction  `json:"transactions"`
	Rewards      []loyalty.Reward       `json:"rewards"`
	Promotions   []loyalty.Promotion    `json:"promotions"`
}

func (s *service) Customer(ctx context.Context, customerID int64) (*CustomerSnapshot, error) {
	snap := &CustomerSnapshot{State: State{Status: StatusLoading}}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		points, err := s.api.GetPointsSummary(ctx, customerID)
		if err != nil {
			return err
		}
		snap.Points = points
		return nil
	})
	g.Go(func() error {
		transactions, _, err := s.api.ListCustomerTransactions(ctx, customerID, 0, s.cfg.PageSize)
		if err != nil {
			return err
		}
		snap.Transactions = transactions
		return nil
	})
	g.Go(func() error {
		rewards, err := s.api.AvailableRewards(ctx)
		if err != nil {
			return err
		}
		snap.Rewards = rewards
		return nil
	})
	g.Go(func() error {
		promotions, err := s.api.CustomerPromotions(ctx, customerID)
		if err != nil {
			return err
		}
		snap.Promotions = promotions
		return nil
	})

	if err := g.Wait(); err != nil {
		s.logBatchFailure(ctx, "customer", err)
		return &CustomerSnapshot{State: failedState(err)}, err
	}

	progress := ProgressFor(snap.Points.CurrentBalance, snap.Points.Tier)
	snap.Progress = &progress
	snap.State = readyState()
	return snap, nil
}

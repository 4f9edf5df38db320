package dashboard

import (
	"context"

	"github.com/rewardplus/loyalty-console/pkg/loyalty"
	"golang.org/x/sync/errgroup"
)

// ManagerSnapshot is the render-ready state for the manager view: the
// program-wide analytics rollup plus the merged activity feed.
type ManagerSnapshot struct {
	State    State                     `json:"state"`
	Summary  *loyalty.AnalyticsSummary `json:"summary,omitempty"`
	Activity []ActivityEvent           `json:"activity"`
}

func (s *service) Manager(ctx context.Context) (*ManagerSnapshot, error) {
	snap := &ManagerSnapshot{State: State{Status: StatusLoading}}

	var (
		transactions []loyalty.Transaction
		redemptions  []loyalty.Redemption
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		summary, err := s.api.Summary(ctx)
		if err != nil {
			return err
		}
		snap.Summary = summary
		return nil
	})
	g.Go(func() error {
		var err error
		transactions, err = s.api.RecentTransactions(ctx, s.cfg.RecentLimit)
		return err
	})
	g.Go(func() error {
		var err error
		redemptions, err = s.api.RecentRedemptions(ctx, s.cfg.RecentLimit)
		return err
	})

	if err := g.Wait(); err != nil {
		s.logBatchFailure(ctx, "manager", err)
		return &ManagerSnapshot{State: failedState(err)}, err
	}

	snap.Activity = MergeActivity(transactions, redemptions)
	snap.State = readyState()
	return snap, nil
}

package dashboard

import (
	"context"

	"github.com/rewardplus/loyalty-console/pkg/loyalty"
	"golang.org/x/sync/errgroup"
)

// MarketingStats are campaign counters derived from the promotion list.
type MarketingStats struct {
	Active     int `json:"active"`
	Scheduled  int `json:"scheduled"`
	TotalUsage int `json:"totalUsage"`
}

// MarketingSnapshot is the render-ready state for the marketing view:
// the promotion roster with derived counters and the active catalog.
type MarketingSnapshot struct {
	State      State               `json:"state"`
	Promotions []loyalty.Promotion `json:"promotions"`
	Rewards    []loyalty.Reward    `json:"rewards"`
	Stats      MarketingStats      `json:"stats"`
}

func (s *service) Marketing(ctx context.Context) (*MarketingSnapshot, error) {
	snap := &MarketingSnapshot{State: State{Status: StatusLoading}}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		promotions, err := s.api.ActivePromotions(ctx)
		if err != nil {
			return err
		}
		snap.Promotions = promotions
		return nil
	})
	g.Go(func() error {
		rewards, err := s.api.ActiveRewards(ctx)
		if err != nil {
			return err
		}
		snap.Rewards = rewards
		return nil
	})

	if err := g.Wait(); err != nil {
		s.logBatchFailure(ctx, "marketing", err)
		return &MarketingSnapshot{State: failedState(err)}, err
	}

	snap.Stats = deriveMarketingStats(snap.Promotions)
	snap.State = readyState()
	return snap, nil
}

func deriveMarketingStats(promotions []loyalty.Promotion) MarketingStats {
	var stats MarketingStats
	for _, p := range promotions {
		switch p.Status {
		case loyalty.PromotionActive:
			stats.Active++
		case loyalty.PromotionScheduled:
			stats.Scheduled++
		}
		stats.TotalUsage += p.UsageCount
	}
	return stats
}

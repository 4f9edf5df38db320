package dashboard

import (
	"context"
	"strings"

	"github.com/rewardplus/loyalty-console/pkg/loyalty"
	"golang.org/x/sync/errgroup"
)

// SalesSnapshot is the render-ready state for the sales view: the
// customer roster (searched or paginated) plus recent transactions.
type SalesSnapshot struct {
	State              State                 `json:"state"`
	Query              string                `json:"query,omitempty"`
	Customers          []loyalty.Customer    `json:"customers"`
	Pagination         *loyalty.Pagination   `json:"pagination,omitempty"`
	RecentTransactions []loyalty.Transaction `json:"recentTransactions"`
}

// Sales loads the sales dashboard. A whitespace-only query falls back to
// the unfiltered paginated list rather than sending an empty search.
func (s *service) Sales(ctx context.Context, query string, page int) (*SalesSnapshot, error) {
	query = strings.TrimSpace(query)
	snap := &SalesSnapshot{State: State{Status: StatusLoading}, Query: query}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if query == "" {
			customers, pagination, err := s.api.ListCustomers(ctx, page, s.cfg.PageSize)
			if err != nil {
				return err
			}
			snap.Customers = customers
			snap.Pagination = pagination
			return nil
		}
		customers, err := s.api.SearchCustomers(ctx, query)
		if err != nil {
			return err
		}
		snap.Customers = customers
		return nil
	})
	g.Go(func() error {
		transactions, err := s.api.RecentTransactions(ctx, s.cfg.RecentLimit)
		if err != nil {
			return err
		}
		snap.RecentTransactions = transactions
		return nil
	})

	if err := g.Wait(); err != nil {
		s.logBatchFailure(ctx, "sales", err)
		return &SalesSnapshot{State: failedState(err), Query: query}, err
	}

	snap.State = readyState()
	return snap, nil
}

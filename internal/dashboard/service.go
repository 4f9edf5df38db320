package dashboard

import (
	"context"

	"github.com/rewardplus/loyalty-console/pkg/config"
	pkgerrors "github.com/rewardplus/loyalty-console/pkg/errors"
	"github.com/rewardplus/loyalty-console/pkg/logger"
	"github.com/rewardplus/loyalty-console/pkg/loyalty"
)

// Status is the lifecycle phase of one dashboard visit.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusReady   Status = "ready"
	StatusFailed  Status = "failed"
)

// State heads every snapshot. A failed batch is its own variant carrying
// the coded error, never an empty ready snapshot.
type State struct {
	Status Status         `json:"status"`
	Code   pkgerrors.Code `json:"code,omitempty"`
	Error  string         `json:"error,omitempty"`
}

func readyState() State {
	return State{Status: StatusReady}
}

func failedState(err error) State {
	state := State{Status: StatusFailed, Code: pkgerrors.CodeInternal, Error: "dashboard load failed"}
	if typed := pkgerrors.As(err); typed != nil {
		state.Code = typed.Code()
		state.Error = pkgerrors.MetadataFor(typed.Code()).PublicMessage
	}
	return state
}

// API is the slice of the loyalty client the aggregator fans out over.
type API interface {
	GetPointsSummary(ctx context.Context, id int64) (*loyalty.PointsSummary, error)
	ListCustomers(ctx context.Context, page, size int) ([]loyalty.Customer, *loyalty.Pagination, error)
	SearchCustomers(ctx context.Context, text string) ([]loyalty.Customer, error)
	ListCustomerTransactions(ctx context.Context, customerID int64, page, size int) ([]loyalty.Transaction, *loyalty.Pagination, error)
	RecentTransactions(ctx context.Context, limit int) ([]loyalty.Transaction, error)
	ActiveRewards(ctx context.Context) ([]loyalty.Reward, error)
	AvailableRewards(ctx context.Context) ([]loyalty.Reward, error)
	RecentRedemptions(ctx context.Context, limit int) ([]loyalty.Redemption, error)
	ActivePromotions(ctx context.Context) ([]loyalty.Promotion, error)
	CustomerPromotions(ctx context.Context, customerID int64) ([]loyalty.Promotion, error)
	Summary(ctx context.Context) (*loyalty.AnalyticsSummary, error)
}

// ServiceParams groups dependencies for the dashboard service.
type ServiceParams struct {
	API    API
	Logger *logger.Logger
	Config config.ConsoleConfig
}

// Service assembles render-ready snapshots for each dashboard. Every
// snapshot is immutable once returned; a refresh replaces it wholesale.
type Service interface {
	Customer(ctx context.Context, customerID int64) (*CustomerSnapshot, error)
	Sales(ctx context.Context, query string, page int) (*SalesSnapshot, error)
	Marketing(ctx context.Context) (*MarketingSnapshot, error)
	Manager(ctx context.Context) (*ManagerSnapshot, error)
}

type service struct {
	api  API
	logg *logger.Logger
	cfg  config.ConsoleConfig
}

// NewService builds a dashboard service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.API == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "loyalty API client is required")
	}
	if params.Logger == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "logger is required")
	}
	return &service{api: params.API, logg: params.Logger, cfg: params.Config}, nil
}

func (s *service) logBatchFailure(ctx context.Context, name string, err error) {
	s.logg.Error(s.logg.WithDashboard(ctx, name), "dashboard batch failed", err)
}

package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/rewardplus/loyalty-console/api/controllers"
	"github.com/rewardplus/loyalty-console/api/middleware"
	"github.com/rewardplus/loyalty-console/internal/access"
	"github.com/rewardplus/loyalty-console/internal/dashboard"
	"github.com/rewardplus/loyalty-console/pkg/config"
	"github.com/rewardplus/loyalty-console/pkg/logger"
	"github.com/rewardplus/loyalty-console/pkg/loyalty"
)

// RouterParams groups everything the console surface needs.
type RouterParams struct {
	Config     *config.Config
	Logger     *logger.Logger
	Client     *loyalty.Client
	Dashboards dashboard.Service
	Registry   *prometheus.Registry
}

func NewRouter(p RouterParams) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(p.Logger),
		middleware.RequestID(p.Logger),
		middleware.Logging(p.Logger),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(p.Config))
	})

	if p.Registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(p.Registry, promhttp.HandlerOpts{}))
	}

	pageSize := p.Config.Console.PageSize

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.RoleContext(p.Logger))

		r.Route("/dashboards", func(r chi.Router) {
			customerView := controllers.CustomerDashboard(p.Dashboards, p.Logger, p.Config.Console.DemoCustomerID)
			r.With(middleware.RequireCapability(access.CapViewCustomerDashboard, p.Logger)).
				Get("/customer", customerView)
			r.With(middleware.RequireCapability(access.CapViewCustomerDashboard, p.Logger)).
				Get("/customer/{customerId}", customerView)
			r.With(middleware.RequireCapability(access.CapViewSalesDashboard, p.Logger)).
				Get("/sales", controllers.SalesDashboard(p.Dashboards, p.Logger))
			r.With(middleware.RequireCapability(access.CapViewMarketingDashboard, p.Logger)).
				Get("/marketing", controllers.MarketingDashboard(p.Dashboards, p.Logger))
			r.With(middleware.RequireCapability(access.CapViewManagerDashboard, p.Logger)).
				Get("/manager", controllers.ManagerDashboard(p.Dashboards, p.Logger))
		})

		r.Route("/customers", func(r chi.Router) {
			r.Get("/{customerId}", controllers.CustomerGet(p.Client, p.Logger))
			r.With(middleware.RequireCapability(access.CapEnrollCustomer, p.Logger)).
				Post("/", controllers.CustomerEnroll(p.Client, p.Logger))
			r.Get("/{customerId}/transactions", controllers.TransactionList(p.Client, p.Logger, pageSize))
			r.With(middleware.RequireCapability(access.CapRecordTransaction, p.Logger)).
				Post("/{customerId}/transactions", controllers.TransactionCreate(p.Client, p.Logger, pageSize))
		})

		r.Route("/rewards", func(r chi.Router) {
			r.Get("/", controllers.RewardList(p.Client, p.Logger))
			r.With(middleware.RequireCapability(access.CapRedeemReward, p.Logger)).
				Post("/redeem", controllers.RewardRedeem(p.Client, p.Logger))
		})

		r.With(middleware.RequireCapability(access.CapManagePromotions, p.Logger)).
			Post("/promotions", controllers.PromotionCreate(p.Client, p.Logger))

		r.Route("/analytics", func(r chi.Router) {
			r.Use(middleware.RequireCapability(access.CapViewAnalytics, p.Logger))
			r.Get("/summary", controllers.AnalyticsSummary(p.Client, p.Logger))
			r.Get("/{report}", controllers.AnalyticsReport(p.Client, p.Logger))
		})
	})

	return r
}

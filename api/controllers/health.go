package controllers

import (
	"net/http"

	"github.com/rewardplus/loyalty-console/api/responses"
	"github.com/rewardplus/loyalty-console/pkg/config"
)

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-RewardPlus-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

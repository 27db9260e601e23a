package controllers

import (
	"context"
	"net/http"

	"github.com/Norumai01/HonkaiBackendV2/internal/app"
	"github.com/Norumai01/HonkaiBackendV2/internal/dtos"
	"github.com/Norumai01/HonkaiBackendV2/internal/utils"
)

type HealthController struct {
	app *app.App
}

func NewHealthController(app *app.App) *HealthController {
	return &HealthController{
		app: app,
	}
}

func (c *HealthController) HealthCheckHandler(w http.ResponseWriter, r *http.Request) {
	// Check database connectivity
	if err := c.app.DB.Ping(context.Background()); err != nil {
		utils.Logger.WithError(err).Error("Database unreachable")
		utils.RespondErrorWithCode(
			w,
			http.StatusServiceUnavailable,
			utils.ErrCodeInternal,
			"Database unreachable",
			nil,
			err,
		)
		return
	}

	// Check redis connectivity; an unreachable blacklist means every
	// authenticated request would be rejected, so report unhealthy.
	if err := c.app.Redis.Ping(context.Background()).Err(); err != nil {
		utils.Logger.WithError(err).Error("Redis unreachable")
		utils.RespondErrorWithCode(
			w,
			http.StatusServiceUnavailable,
			utils.ErrCodeInternal,
			"Redis unreachable",
			nil,
			err,
		)
		return
	}

	resp := dtos.HealthCheckResponse{
		Status: "OK",
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

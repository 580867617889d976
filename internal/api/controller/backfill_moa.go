package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/ptcharoen/agrirot/internal/pkg/constants"
	"github.com/spf13/viper"
)

func (c *Controller) BackfillMoAGroups(ctx echo.Context) error {
	baseURL := viper.GetString(constants.ViperBackfillBaseURL)
	if baseURL == "" {
		return constants.NewCodedError(http.StatusConflict, "backfill base url is not configured")
	}

	groups, err := c.catalogService.BackfillMoAGroups(ctx.Request().Context(), baseURL)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, groups)
}

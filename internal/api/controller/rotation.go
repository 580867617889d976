package controller

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/ptcharoen/agrirot/internal/pkg/constants"
)

func (c *Controller) CheckRotation(ctx echo.Context) error {
	plantingID, targetID, err := rotationParams(ctx)
	if err != nil {
		return err
	}

	check, err := c.rotationService.CheckRotation(ctx.Request().Context(), plantingID, targetID)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, check)
}

func (c *Controller) UsageHistory(ctx echo.Context) error {
	plantingID, targetID, err := rotationParams(ctx)
	if err != nil {
		return err
	}

	limit, _ := strconv.Atoi(ctx.QueryParams().Get("limit"))

	history, err := c.rotationService.UsageHistory(ctx.Request().Context(), plantingID, targetID, limit)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, history)
}

func (c *Controller) Recommendations(ctx echo.Context) error {
	plantingID, targetID, err := rotationParams(ctx)
	if err != nil {
		return err
	}

	lookback, _ := strconv.Atoi(ctx.QueryParams().Get("lookback"))

	recommendations, err := c.rotationService.Recommend(ctx.Request().Context(), plantingID, targetID, lookback)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, recommendations)
}

func rotationParams(ctx echo.Context) (plantingID, targetID int64, err error) {
	plantingID, err = strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || plantingID == 0 {
		return 0, 0, constants.ErrMissingPlantingID
	}

	targetID, err = strconv.ParseInt(ctx.QueryParams().Get("target_id"), 10, 64)
	if err != nil || targetID == 0 {
		return 0, 0, constants.ErrMissingTargetID
	}

	return plantingID, targetID, nil
}

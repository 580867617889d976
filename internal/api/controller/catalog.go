package controller

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/ptcharoen/agrirot/internal/pkg/constants"
)

func (c *Controller) ListMoAGroups(ctx echo.Context) error {
	groups, err := c.catalogService.ListMoAGroups(ctx.Request().Context())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, groups)
}

func (c *Controller) ListMoAGroupsBySystem(ctx echo.Context) error {
	groups, err := c.catalogService.ListMoAGroupsBySystem(ctx.Request().Context(), ctx.Param("system"))
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, groups)
}

func (c *Controller) ProductsForTarget(ctx echo.Context) error {
	targetID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || targetID == 0 {
		return constants.ErrMissingTargetID
	}

	products, err := c.catalogService.ProductsForTarget(ctx.Request().Context(), targetID)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, products)
}

package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/ptcharoen/agrirot/internal/domain/dto"
)

func (c *Controller) RecordTreatment(ctx echo.Context) error {
	req := new(dto.RecordTreatmentRequest)
	if err := ctx.Bind(req); err != nil {
		return err
	}
	if err := ctx.Validate(req); err != nil {
		return err
	}

	eventID, err := c.treatmentService.RecordTreatment(ctx.Request().Context(), req)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, dto.RecordTreatmentResponse{TreatmentEventID: eventID})
}

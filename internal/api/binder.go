package api

import (
	"fmt"

	"github.com/labstack/echo/v4"
	"github.com/ptcharoen/agrirot/internal/pkg/constants"
)

// Binder wraps echo's default binder and reports bind failures through the
// coded-error taxonomy so they come back as 400s.
type Binder struct {
	base echo.DefaultBinder
}

func NewBinder() *Binder {
	return &Binder{}
}

func (b *Binder) Bind(i interface{}, c echo.Context) error {
	if err := b.base.Bind(i, c); err != nil {
		return fmt.Errorf("bind: %w: %s", constants.ErrBadRequest, err.Error())
	}
	return nil
}

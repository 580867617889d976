package api

import (
	"github.com/bytedance/sonic"
	"github.com/labstack/echo/v4"
)

// SonicSerializer swaps echo's encoding/json for sonic.
type SonicSerializer struct{}

func NewSonicSerializer() *SonicSerializer {
	return &SonicSerializer{}
}

func (s *SonicSerializer) Serialize(c echo.Context, i interface{}, indent string) error {
	enc := sonic.ConfigDefault.NewEncoder(c.Response())
	if indent != "" {
		enc.SetIndent("", indent)
	}
	return enc.Encode(i)
}

func (s *SonicSerializer) Deserialize(c echo.Context, i interface{}) error {
	return sonic.ConfigDefault.NewDecoder(c.Request().Body).Decode(i)
}

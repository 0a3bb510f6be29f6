package api

import (
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/labstack/echo/v4"
)

// Serializer is echo's JSONSerializer backed by sonic.
type Serializer struct{}

func NewSerializer() *Serializer {
	return &Serializer{}
}

func (s *Serializer) Serialize(c echo.Context, i interface{}, indent string) error {
	enc := sonic.ConfigDefault.NewEncoder(c.Response())
	if indent != "" {
		enc.SetIndent("", indent)
	}
	return enc.Encode(i)
}

func (s *Serializer) Deserialize(c echo.Context, i interface{}) error {
	dec := sonic.ConfigDefault.NewDecoder(c.Request().Body)
	if err := dec.Decode(i); err != nil {
		return fmt.Errorf("decode request body: %w", err)
	}
	return nil
}

package api

import (
	"github.com/bytedance/sonic"
	"github.com/labstack/echo/v4"
	"github.com/maplecrest/canscore/internal/pkg/constants"
)

type Binder struct {
	base echo.DefaultBinder
}

func NewBinder() *Binder {
	return &Binder{}
}

func (b *Binder) Bind(i interface{}, c echo.Context) error {
	if err := b.base.Bind(i, c); err != nil {
		return constants.ErrInvalidRequestBody
	}
	return nil
}

// sonicSerializer plugs sonic in as echo's JSON codec.
type sonicSerializer struct{}

func (sonicSerializer) Serialize(c echo.Context, i interface{}, indent string) error {
	var (
		body []byte
		err  error
	)
	if indent != "" {
		body, err = sonic.MarshalIndent(i, "", indent)
	} else {
		body, err = sonic.Marshal(i)
	}
	if err != nil {
		return err
	}

	_, err = c.Response().Write(body)
	return err
}

func (sonicSerializer) Deserialize(c echo.Context, i interface{}) error {
	if err := sonic.ConfigDefault.NewDecoder(c.Request().Body).Decode(i); err != nil {
		return constants.ErrInvalidRequestBody
	}
	return nil
}

package inits

import (
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"net/http"
)

type requestValidator struct {
	v *validator.Validate
}

func (rv *requestValidator) Validate(i interface{}) error {
	if err := rv.v.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error()).SetInternal(err)
	}
	return nil
}

// Validator 绑定到 echo ，使 c.Validate 可以检查请求体上的 validate 标签
func Validator() echo.Validator {
	return &requestValidator{v: validator.New(validator.WithRequiredStructEnabled())}
}

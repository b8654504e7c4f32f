package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// WrapHandler turns a typed handler into an echo handler. The request is
// bound and validated before f runs, and the result is sent inside a
// Response envelope. f may return a *Response to control status and shape.
func WrapHandler[Req any, Res any](f func(c echo.Context, req Req) (Res, error)) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req Req
		if err := BindAndValidate(c, &req); err != nil {
			return err
		}

		data, err := f(c, req)
		if err != nil {
			return err
		}
		if c.Response().Committed {
			return nil
		}

		if resp, ok := any(data).(*Response); ok {
			if resp.Status == 0 {
				resp.Status = http.StatusOK
			}
			return c.JSON(resp.Status, resp)
		}
		return c.JSON(http.StatusOK, &Response{
			Status:  http.StatusOK,
			Success: true,
			Data:    data,
		})
	}
}

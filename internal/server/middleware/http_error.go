package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

// StatusClientClosedRequest is reported when the caller went away before
// the handler finished.
const StatusClientClosedRequest = 499

// ErrorTranslator maps an application error to a response, or returns nil
// when it does not recognise err.
type ErrorTranslator func(err error) *ResponseError

// ErrorHandler renders every error as a JSON ResponseError envelope.
func ErrorHandler(log Logger, translators ...ErrorTranslator) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if err == nil || c.Response().Committed {
			return
		}

		resp := translate(err, c, translators)
		if resp.ErrorMessage == "" {
			resp.ErrorMessage = http.StatusText(resp.Status)
		}
		if resp.Status >= http.StatusInternalServerError {
			log.Errorw("request error", "status", resp.Status, "error", err, "request_id", GetRequestID(c))
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(resp.Status)
		} else {
			err = c.JSON(resp.Status, resp)
		}
		if err != nil {
			log.Errorw("could not respond", "code", resp.Status, "response_body", resp, "error", err)
		}
	}
}

func translate(err error, c echo.Context, translators []ErrorTranslator) *ResponseError {
	var re *ResponseError
	if errors.As(err, &re) {
		return re
	}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		resp := &ResponseError{
			Status:       he.Code,
			Err:          err,
			ErrorCode:    codeForStatus(he.Code),
			ErrorMessage: fmt.Sprint(he.Message),
		}
		if he.Code == http.StatusNotFound && isNotFoundHandler(c.Handler()) {
			resp.ErrorMessage = "no route matched"
		}
		return resp
	}

	for _, tr := range translators {
		if resp := tr(err); resp != nil {
			return resp
		}
	}

	if errors.Is(err, context.Canceled) && errors.Is(c.Request().Context().Err(), context.Canceled) {
		return &ResponseError{Status: StatusClientClosedRequest, Err: err, ErrorCode: CodeCanceled}
	}

	return &ResponseError{Status: http.StatusInternalServerError, Err: err, ErrorCode: CodeInternal}
}

func codeForStatus(status int) string {
	switch {
	case status == http.StatusNotFound:
		return CodeNotFound
	case status == http.StatusConflict:
		return CodeConflict
	case status >= 500:
		return CodeInternal
	default:
		return CodeBadRequest
	}
}

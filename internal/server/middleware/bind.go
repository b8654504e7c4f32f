package middleware

import (
	"fmt"
	"net/http"
	"reflect"

	"github.com/cstockton/go-conv"
	"github.com/labstack/echo/v4"
)

// BindAndValidate binds the request body, path params, query and headers
// into req, then validates it. Failures are reported as 400 responses.
func BindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return err
	}

	if err := bindHeader(c.Request().Header, req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, ValidationMessage(err)).SetInternal(err)
	}

	return nil
}

// bindHeader decode http header to struct by tag `header:"<header_name>"`
// out must be a pointer to a struct
func bindHeader(header http.Header, dst any) error {
	getValueFn := func(tagValue string) (any, bool) {
		values := header.Values(tagValue)
		if len(values) == 0 {
			return nil, false
		}
		return values[0], true
	}

	return bindStruct(dst, "header", getValueFn)
}

// bindStruct decode to struct by custom tag `tagName:"tagValue"`
// dst must be a pointer to a struct
func bindStruct(dst any, tagName string, getValueFn func(tagValue string) (any, bool)) error {
	ptr := reflect.ValueOf(dst)
	if ptr.Kind() != reflect.Pointer || ptr.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("bind %s: destination must be a pointer to a struct, got %T", tagName, dst)
	}

	indirect := ptr.Elem()
	structType := indirect.Type()
	for i := 0; i < structType.NumField(); i++ {
		structField := structType.Field(i)
		tagValue := structField.Tag.Get(tagName)
		if tagValue == "" && structField.Anonymous && structField.IsExported() && structField.Type.Kind() == reflect.Struct {
			if err := bindStruct(indirect.Field(i).Addr().Interface(), tagName, getValueFn); err != nil {
				return err
			}
			continue
		}
		if tagValue == "-" || tagValue == "" || !structField.IsExported() {
			continue
		}

		value, ok := getValueFn(tagValue)
		if !ok {
			continue
		}
		field := indirect.Field(i)
		if err := conv.Infer(field, value); err != nil {
			return fmt.Errorf("cannot parse %s.%s as %s from: %#v / %s",
				structType.Name(), structField.Name, field.Type(), value, err)
		}
	}

	return nil
}

package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"

	"biztime-backend/internal/apperr"

	"github.com/gin-gonic/gin"
)

// bindJSON decodes the request body into dst, translating JSON type
// mismatches into field-level messages so clients learn which field was
// wrong, not just that the body failed to parse.
func bindJSON(c *gin.Context, dst any) *apperr.Error {
	if err := c.ShouldBindJSON(dst); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			return apperr.BadRequest(fmt.Sprintf("'%s' needs to be a %s", typeErr.Field, jsonKind(typeErr.Type)))
		}
		return apperr.BadRequest("invalid JSON body")
	}
	return nil
}

func jsonKind(t reflect.Type) string {
	switch t.Kind() {
	case reflect.Bool:
		return "boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Float32, reflect.Float64:
		return "number"
	case reflect.String:
		return "string"
	default:
		return t.Kind().String()
	}
}

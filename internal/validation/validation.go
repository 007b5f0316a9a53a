package validation

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// BindAndValidateJSON binds the request body into dst and writes a 400
// response on failure. Returns true when binding succeeded.
func BindAndValidateJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		abortWithBindingError(c, err)
		return false
	}
	return true
}

// BindStrictJSON is BindAndValidateJSON with unknown JSON fields rejected at
// the boundary, for update payloads where stray fields must not silently
// merge into the record.
func BindStrictJSON(c *gin.Context, dst any) bool {
	dec := json.NewDecoder(c.Request.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{
			Success: false,
			Message: "invalid request body",
			Errors: []FieldError{
				{Rule: "syntax", Message: err.Error()},
			},
		})
		return false
	}

	if binding.Validator != nil {
		if err := binding.Validator.ValidateStruct(dst); err != nil {
			abortWithBindingError(c, err)
			return false
		}
	}

	return true
}

func abortWithBindingError(c *gin.Context, err error) {
	if verrs, ok := err.(validator.ValidationErrors); ok {
		c.AbortWithStatusJSON(http.StatusBadRequest, formatValidationErrors(verrs))
		return
	}

	c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{
		Success: false,
		Message: "invalid request body",
		Errors: []FieldError{
			{Rule: "syntax", Message: err.Error()},
		},
	})
}

func formatValidationErrors(verrs validator.ValidationErrors) ErrorResponse {
	fields := make([]FieldError, 0, len(verrs))

	for _, fe := range verrs {
		jsonField := toJSONFieldName(fe.Field())
		fields = append(fields, FieldError{
			Field:   jsonField,
			Rule:    fe.Tag(),
			Message: buildMessage(jsonField, fe),
		})
	}

	return ErrorResponse{
		Success: false,
		Message: "validation failed",
		Errors:  fields,
	}
}

func toJSONFieldName(field string) string {
	if field == "" {
		return field
	}
	return strings.ToLower(field[:1]) + field[1:]
}

func buildMessage(field string, fe validator.FieldError) string {
	if fe.Tag() == "required" {
		return field + " is required"
	}

	return field + " is invalid (" + fe.Tag() + ")"
}

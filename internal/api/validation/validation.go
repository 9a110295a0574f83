// Package validation provides generic request binding helpers that every
// handler uses for its inputs. A failed bind writes a structured 400
// response ({error, code, details}) and reports failure, so handlers can
// simply return.
package validation

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// FieldError describes a single invalid field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ErrorResponse is the body returned for any validation failure
type ErrorResponse struct {
	Error   string       `json:"error"`
	Code    string       `json:"code"`
	Details []FieldError `json:"details,omitempty"`
}

var validate = validator.New()

// Body binds and validates a JSON request body. On failure it writes a
// 400 response and returns ok=false.
func Body[T any](c *gin.Context) (*T, bool) {
	var req T
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, err)
		return nil, false
	}
	if err := validate.Struct(&req); err != nil {
		writeError(c, err)
		return nil, false
	}
	return &req, true
}

// Query binds and validates query parameters into a tagged struct
func Query[T any](c *gin.Context) (*T, bool) {
	var req T
	if err := c.ShouldBindQuery(&req); err != nil {
		writeError(c, err)
		return nil, false
	}
	if err := validate.Struct(&req); err != nil {
		writeError(c, err)
		return nil, false
	}
	return &req, true
}

// URI binds and validates path parameters into a tagged struct
func URI[T any](c *gin.Context) (*T, bool) {
	var req T
	if err := c.ShouldBindUri(&req); err != nil {
		writeError(c, err)
		return nil, false
	}
	if err := validate.Struct(&req); err != nil {
		writeError(c, err)
		return nil, false
	}
	return &req, true
}

// BindAll binds URI, query, and body into one request struct, in that
// order, then validates the combined result. Use it when a handler's
// input spans more than one request part.
func BindAll[T any](c *gin.Context) (*T, bool) {
	var req T
	if err := c.ShouldBindUri(&req); err != nil {
		writeError(c, err)
		return nil, false
	}
	if err := c.ShouldBindQuery(&req); err != nil {
		writeError(c, err)
		return nil, false
	}
	if c.Request.Body != nil && c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			writeError(c, err)
			return nil, false
		}
	}
	if err := validate.Struct(&req); err != nil {
		writeError(c, err)
		return nil, false
	}
	return &req, true
}

// Pagination is the shared query shape for paginated list endpoints
type Pagination struct {
	Page     int `form:"page" validate:"omitempty,min=1"`
	PageSize int `form:"page_size" validate:"omitempty,min=1,max=100"`
}

// LimitOffset resolves the pagination into limit/offset with defaults
func (p *Pagination) LimitOffset() (limit, offset int) {
	page := p.Page
	if page < 1 {
		page = 1
	}
	size := p.PageSize
	if size < 1 {
		size = 20
	}
	return size, (page - 1) * size
}

// PageOrDefault returns the 1-based page number
func (p *Pagination) PageOrDefault() int {
	if p.Page < 1 {
		return 1
	}
	return p.Page
}

// SizeOrDefault returns the page size
func (p *Pagination) SizeOrDefault() int {
	if p.PageSize < 1 {
		return 20
	}
	return p.PageSize
}

func writeError(c *gin.Context, err error) {
	resp := ErrorResponse{
		Error: "validation failed",
		Code:  "VALIDATION_ERROR",
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			resp.Details = append(resp.Details, FieldError{
				Field:   strings.ToLower(fe.Field()),
				Message: messageFor(fe),
			})
		}
	} else {
		resp.Details = append(resp.Details, FieldError{Message: err.Error()})
	}

	c.AbortWithStatusJSON(http.StatusBadRequest, resp)
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "uuid":
		return "must be a valid UUID"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}

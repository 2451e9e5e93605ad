package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// ErrorResponse is the fixed error body shape for every failure.
type ErrorResponse struct {
	Detail string `json:"detail" example:"Question not found"`
}

// FieldError itemizes one violated field in a validation failure.
type FieldError struct {
	Field string `json:"field" example:"difficulty"`
	Error string `json:"error" example:"must be one of: easy medium hard"`
}

type StatusResponse struct {
	Status string `json:"status" example:"ok"`
}

// bindJSON binds and validates the request body, answering 422 with
// itemized field errors on violation. Returns false when the request has
// already been answered.
func bindJSON(c *gin.Context, obj any) bool {
	err := c.ShouldBindJSON(obj)
	if err == nil {
		return true
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]FieldError, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, FieldError{
				Field: strings.ToLower(fe.Field()),
				Error: tagMessage(fe),
			})
		}
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": fields})
		return false
	}

	c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Detail: "invalid request body"})
	return false
}

func tagMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field is required"
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	case "gt":
		return "must be greater than " + fe.Param()
	case "oneof":
		return "must be one of: " + fe.Param()
	case "email":
		return "must be a valid email address"
	case "category":
		return "must be one or two alphabetic words"
	case "alphaname":
		return "must contain letters only"
	default:
		return "failed on " + fe.Tag()
	}
}

// pathID parses a numeric path parameter, answering 400 on garbage.
func pathID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Detail: "invalid " + name})
		return 0, false
	}
	return uint(id), true
}

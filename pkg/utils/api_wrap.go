package utils

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

func RespondSuccess(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

func RespondCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

func RespondDeleted(c *gin.Context) {
	c.JSON(http.StatusOK, SuccessResponse{Success: true})
}

func RespondError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, ErrorResponse{Error: message})
}

// BindStrictJSON decodes the body into obj, rejecting unknown fields, then runs
// the binding validator over the result.
func BindStrictJSON(c *gin.Context, obj any) error {
	if c.Request.Body == nil {
		return Validation("Request body is required")
	}
	dec := json.NewDecoder(c.Request.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(obj); err != nil {
		if errors.Is(err, io.EOF) {
			return Validation("Request body is required")
		}
		return Validation("Invalid request body: %s", err.Error())
	}
	if dec.More() {
		return Validation("Invalid request body: trailing data")
	}
	if err := binding.Validator.ValidateStruct(obj); err != nil {
		return Validation("%s", describeValidation(err))
	}
	return nil
}

func describeValidation(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err.Error()
	}
	fe := verrs[0]
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "oneof":
		return fe.Field() + " must be one of: " + fe.Param()
	case "uuid", "uuid4":
		return fe.Field() + " must be a valid id"
	case "gte", "min":
		return fe.Field() + " must be at least " + fe.Param()
	default:
		return fe.Field() + " is invalid"
	}
}

// HandleServiceError maps a classified service error onto its HTTP status.
func HandleServiceError(c *gin.Context, log *zap.Logger, err error) {
	var svcErr *ServiceError
	message := err.Error()
	if errors.As(err, &svcErr) {
		message = svcErr.Msg
	}

	switch {
	case errors.Is(err, ErrUnauthorized):
		RespondError(c, http.StatusUnauthorized, message)
	case errors.Is(err, ErrForbidden):
		RespondError(c, http.StatusForbidden, message)
	case errors.Is(err, ErrNotFound):
		RespondError(c, http.StatusNotFound, message)
	case errors.Is(err, ErrConflict):
		RespondError(c, http.StatusConflict, message)
	case errors.Is(err, ErrValidation):
		RespondError(c, http.StatusBadRequest, message)
	default:
		log.Error("request failed",
			zap.String("trace_id", c.GetString("trace_id")),
			zap.String("path", c.FullPath()),
			zap.Error(err))
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}

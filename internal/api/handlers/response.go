package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	apperrors "roster-backend/internal/errors"
)

// Envelope is the uniform response body shared by every roster endpoint.
// Rejections keep HTTP semantics (4xx) but still carry status/message/data
// so consumers can branch on either.
type Envelope struct {
	Status  bool        `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// isBadRequest reports whether err is a caller fault: a struct validation
// failure or one of the malformed-input sentinels.
func isBadRequest(err error) bool {
	var verrs validator.ValidationErrors
	return apperrors.IsValidation(err) || errors.As(err, &verrs)
}

func respond(c *gin.Context, code int, status bool, message string, data interface{}) {
	c.JSON(code, Envelope{
		Status:  status,
		Message: message,
		Data:    data,
	})
}

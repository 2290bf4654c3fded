package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/help_hualien/internal/service"
	"github.com/sirupsen/logrus"
)

const internalErrorCode = "INTERNAL_SERVER_ERROR"

func respondOK(c *gin.Context, status int, data any) {
	c.JSON(status, Envelope{Success: true, Data: data})
}

func respondFail(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, Envelope{
		Success: false,
		Error: &ErrorBody{
			Code:    strconv.Itoa(status),
			Message: message,
		},
	})
}

// respondError сопоставляет ошибку сервиса со статусом ответа.
// Текст внутренних ошибок наружу не выдается.
func respondError(c *gin.Context, log *logrus.Entry, err error) {
	var svcErr *service.Error
	if errors.As(err, &svcErr) {
		switch {
		case errors.Is(svcErr, service.ErrNotFound):
			log.WithError(err).Warn("Resource not found")
			respondFail(c, http.StatusNotFound, svcErr.Message)
			return
		case errors.Is(svcErr, service.ErrConflict), errors.Is(svcErr, service.ErrInvalidInput):
			log.WithError(err).Warn("Request rejected by service")
			respondFail(c, http.StatusBadRequest, svcErr.Message)
			return
		}
	}

	log.WithError(err).Error("Unexpected service failure")
	c.AbortWithStatusJSON(http.StatusInternalServerError, Envelope{
		Success: false,
		Error: &ErrorBody{
			Code:    internalErrorCode,
			Message: "internal server error",
		},
	})
}

package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/help_hualien/internal/auth"
	"github.com/shenikar/help_hualien/internal/models"
	"github.com/shenikar/help_hualien/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	reportService  service.ReportService
	onGoingService service.OnGoingService
	userService    service.UserService
	verifier       auth.Verifier
	logger         *logrus.Logger
	validate       *validator.Validate
}

func NewHandler(
	reportService service.ReportService,
	onGoingService service.OnGoingService,
	userService service.UserService,
	verifier auth.Verifier,
	logger *logrus.Logger,
) *Handler {
	return &Handler{
		reportService:  reportService,
		onGoingService: onGoingService,
		userService:    userService,
		verifier:       verifier,
		logger:         logger,
		validate:       newValidator(),
	}
}

// newValidator регистрирует правило tw_mobile для номеров вида 09xxxxxxxx
// и проверку, что координаты переданы парой
func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("tw_mobile", func(fl validator.FieldLevel) bool {
		return models.IsValidPhone(fl.Field().String())
	})
	v.RegisterStructValidation(coordinatePairValidation, CreateReportRequest{}, ViewerQuery{})
	return v
}

func coordinatePairValidation(sl validator.StructLevel) {
	var lat, lon *float64
	switch v := sl.Current().Interface().(type) {
	case CreateReportRequest:
		lat, lon = v.Latitude, v.Longitude
	case ViewerQuery:
		lat, lon = v.Latitude, v.Longitude
	}

	if lat != nil && lon == nil {
		sl.ReportError(lon, "Longitude", "longitude", "required_with", "Latitude")
	}
	if lon != nil && lat == nil {
		sl.ReportError(lat, "Latitude", "latitude", "required_with", "Longitude")
	}
}

func (h *Handler) log(c *gin.Context, method string) *logrus.Entry {
	fields := logrus.Fields{
		"handler":    "v1",
		"method":     method,
		"request_id": c.GetString(requestIDHeader),
	}
	if identity := currentIdentity(c); identity != nil {
		fields["user_id"] = identity.UID
	}
	return h.logger.WithFields(fields)
}

// bindJSON разбирает и валидирует тело запроса; при ошибке ответ уже отправлен
func (h *Handler) bindJSON(c *gin.Context, log *logrus.Entry, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		respondFail(c, http.StatusBadRequest, "invalid request body")
		return false
	}

	if err := h.validate.Struct(dst); err != nil {
		log.WithError(err).Warn("Validation failed")
		respondFail(c, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}

// bindViewer разбирает необязательные latitude/longitude из строки запроса
func (h *Handler) bindViewer(c *gin.Context, log *logrus.Entry) (*models.Location, bool) {
	var q ViewerQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		log.WithError(err).Warn("Failed to bind query")
		respondFail(c, http.StatusBadRequest, "invalid latitude or longitude")
		return nil, false
	}

	if err := h.validate.Struct(q); err != nil {
		log.WithError(err).Warn("Validation failed")
		respondFail(c, http.StatusBadRequest, err.Error())
		return nil, false
	}
	return ViewerToLocation(q), true
}

func parseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		respondFail(c, http.StatusBadRequest, "invalid "+name)
		return 0, false
	}
	return id, true
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} Envelope "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	respondOK(c, http.StatusOK, gin.H{"status": "ok"})
}

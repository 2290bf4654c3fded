package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/help_hualien/internal/models"
)

// @Summary Create ongoing record
// @Description Volunteer starts going to help. A volunteer can have only one trip on the way or arrived.
// @Tags OnGoing
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param ongoing body CreateOnGoingRequest true "OnGoing creation request"
// @Success 201 {object} Envelope{data=OnGoingResponse}
// @Failure 400 {object} Envelope "Validation error or an active trip already exists"
// @Failure 401 {object} Envelope "Unauthorized"
// @Failure 404 {object} Envelope "Report or profile not found"
// @Failure 500 {object} Envelope "Internal server error"
// @Router /ongoing [post]
func (h *Handler) createOnGoing(c *gin.Context) {
	log := h.log(c, "createOnGoing")

	var input CreateOnGoingRequest
	if !h.bindJSON(c, log, &input) {
		return
	}

	view, err := h.onGoingService.CreateOnGoing(c.Request.Context(), currentIdentity(c).UID, input.ReportID, *input.Minutes)
	if err != nil {
		respondError(c, log, err)
		return
	}
	respondOK(c, http.StatusCreated, ViewToOnGoingResponse(view))
}

// @Summary Update ongoing status
// @Description Set the status (arrived, left, etc.) of the caller's own trip.
// @Tags OnGoing
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "OnGoing ID"
// @Param status body UpdateOnGoingStatusRequest true "Status update request"
// @Success 200 {object} Envelope{data=OnGoingResponse}
// @Failure 400 {object} Envelope "Invalid ID or request body"
// @Failure 401 {object} Envelope "Unauthorized"
// @Failure 404 {object} Envelope "OnGoing record not found or not owned by user"
// @Failure 500 {object} Envelope "Internal server error"
// @Router /ongoing/{id}/status [patch]
func (h *Handler) updateOnGoingStatus(c *gin.Context) {
	log := h.log(c, "updateOnGoingStatus")

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	log = log.WithField("ongoing_id", id)

	var input UpdateOnGoingStatusRequest
	if !h.bindJSON(c, log, &input) {
		return
	}

	view, err := h.onGoingService.UpdateOnGoingStatus(c.Request.Context(), currentIdentity(c).UID, id, models.OnGoingStatus(input.Status), input.Minutes)
	if err != nil {
		respondError(c, log, err)
		return
	}
	respondOK(c, http.StatusOK, ViewToOnGoingResponse(view))
}

// @Summary Get ongoing records of a report
// @Tags OnGoing
// @Produce json
// @Security BearerAuth
// @Param reportId path int true "Report ID"
// @Success 200 {object} Envelope{data=[]OnGoingResponse}
// @Failure 400 {object} Envelope "Invalid report ID"
// @Failure 401 {object} Envelope "Unauthorized"
// @Failure 500 {object} Envelope "Internal server error"
// @Router /ongoing/report/{reportId} [get]
func (h *Handler) listOnGoingByReport(c *gin.Context) {
	log := h.log(c, "listOnGoingByReport")

	reportID, ok := parseIDParam(c, "reportId")
	if !ok {
		return
	}

	views, err := h.onGoingService.ListOnGoingByReport(c.Request.Context(), reportID)
	if err != nil {
		respondError(c, log.WithField("report_id", reportID), err)
		return
	}
	respondOK(c, http.StatusOK, ViewsToOnGoingResponses(views))
}

// @Summary Get current user ongoing records
// @Tags OnGoing
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Envelope{data=[]OnGoingResponse}
// @Failure 401 {object} Envelope "Unauthorized"
// @Failure 500 {object} Envelope "Internal server error"
// @Router /ongoing/my [get]
func (h *Handler) listMyOnGoing(c *gin.Context) {
	log := h.log(c, "listMyOnGoing")

	views, err := h.onGoingService.ListMyOnGoing(c.Request.Context(), currentIdentity(c).UID)
	if err != nil {
		respondError(c, log, err)
		return
	}
	respondOK(c, http.StatusOK, ViewsToOnGoingResponses(views))
}

// @Summary Cancel ongoing record
// @Tags OnGoing
// @Produce json
// @Security BearerAuth
// @Param id path int true "OnGoing ID"
// @Success 200 {object} Envelope "OnGoing record deleted"
// @Failure 400 {object} Envelope "Invalid ID"
// @Failure 401 {object} Envelope "Unauthorized"
// @Failure 404 {object} Envelope "OnGoing record not found or not owned by user"
// @Failure 500 {object} Envelope "Internal server error"
// @Router /ongoing/{id} [delete]
func (h *Handler) removeOnGoing(c *gin.Context) {
	log := h.log(c, "removeOnGoing")

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.onGoingService.RemoveOnGoing(c.Request.Context(), currentIdentity(c).UID, id); err != nil {
		respondError(c, log.WithField("ongoing_id", id), err)
		return
	}
	respondOK(c, http.StatusOK, nil)
}

package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary Get reports
// @Description List all reports, newest first, with volunteers on the way and status counts.
// @Description Distance in km is added when latitude and longitude are both given.
// @Tags Report
// @Produce json
// @Security BearerAuth
// @Param latitude query number false "Viewer latitude"
// @Param longitude query number false "Viewer longitude"
// @Success 200 {object} Envelope{data=[]ReportViewResponse}
// @Failure 400 {object} Envelope "Invalid coordinates"
// @Failure 401 {object} Envelope "Unauthorized"
// @Failure 500 {object} Envelope "Internal server error"
// @Router /report [get]
func (h *Handler) listReports(c *gin.Context) {
	log := h.log(c, "listReports")

	viewer, ok := h.bindViewer(c, log)
	if !ok {
		return
	}

	views, err := h.reportService.ListReports(c.Request.Context(), viewer)
	if err != nil {
		respondError(c, log, err)
		return
	}
	respondOK(c, http.StatusOK, ViewsToReportResponses(views))
}

// @Summary Create report
// @Description Create a help request. Contact name and phone are copied from the caller's profile.
// @Tags Report
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param report body CreateReportRequest true "Report creation request"
// @Success 201 {object} Envelope{data=ReportResponse}
// @Failure 400 {object} Envelope "Invalid request body or validation error"
// @Failure 401 {object} Envelope "Unauthorized"
// @Failure 404 {object} Envelope "Caller has no profile"
// @Failure 500 {object} Envelope "Internal server error"
// @Router /report [post]
func (h *Handler) createReport(c *gin.Context) {
	log := h.log(c, "createReport")

	var input CreateReportRequest
	if !h.bindJSON(c, log, &input) {
		return
	}

	report, err := h.reportService.CreateReport(c.Request.Context(), currentIdentity(c).UID, DTOToNewReport(input))
	if err != nil {
		respondError(c, log, err)
		return
	}
	respondOK(c, http.StatusCreated, ModelToReportResponse(report))
}

// @Summary Get current user reports
// @Tags Report
// @Produce json
// @Security BearerAuth
// @Param latitude query number false "Viewer latitude"
// @Param longitude query number false "Viewer longitude"
// @Success 200 {object} Envelope{data=[]ReportViewResponse}
// @Failure 400 {object} Envelope "Invalid coordinates"
// @Failure 401 {object} Envelope "Unauthorized"
// @Failure 500 {object} Envelope "Internal server error"
// @Router /report/my [get]
func (h *Handler) listMyReports(c *gin.Context) {
	log := h.log(c, "listMyReports")

	viewer, ok := h.bindViewer(c, log)
	if !ok {
		return
	}

	views, err := h.reportService.ListMyReports(c.Request.Context(), currentIdentity(c).UID, viewer)
	if err != nil {
		respondError(c, log, err)
		return
	}
	respondOK(c, http.StatusOK, ViewsToReportResponses(views))
}

// @Summary Update report
// @Description Partially update the caller's own report. Absent fields stay unchanged.
// @Tags Report
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param reportId path int true "Report ID"
// @Param report body UpdateReportRequest true "Report update request"
// @Success 200 {object} Envelope{data=ReportResponse}
// @Failure 400 {object} Envelope "Invalid report ID or request body"
// @Failure 401 {object} Envelope "Unauthorized"
// @Failure 404 {object} Envelope "Report not found or not owned by user"
// @Failure 500 {object} Envelope "Internal server error"
// @Router /report/{reportId} [put]
func (h *Handler) updateReport(c *gin.Context) {
	log := h.log(c, "updateReport")

	reportID, ok := parseIDParam(c, "reportId")
	if !ok {
		return
	}
	log = log.WithField("report_id", reportID)

	var input UpdateReportRequest
	if !h.bindJSON(c, log, &input) {
		return
	}

	report, err := h.reportService.UpdateReport(c.Request.Context(), currentIdentity(c).UID, reportID, DTOToReportUpdate(input))
	if err != nil {
		respondError(c, log, err)
		return
	}
	respondOK(c, http.StatusOK, ModelToReportResponse(report))
}

package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary Create or update profile
// @Description Create the caller's profile or replace its name and phone.
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param user body UpsertUserRequest true "Profile"
// @Success 201 {object} Envelope{data=UserResponse}
// @Failure 400 {object} Envelope "Invalid request body or validation error"
// @Failure 401 {object} Envelope "Unauthorized"
// @Failure 500 {object} Envelope "Internal server error"
// @Router /users [post]
func (h *Handler) upsertUser(c *gin.Context) {
	log := h.log(c, "upsertUser")

	var input UpsertUserRequest
	if !h.bindJSON(c, log, &input) {
		return
	}

	user, err := h.userService.UpsertProfile(c.Request.Context(), currentIdentity(c).UID, input.Name, input.Phone)
	if err != nil {
		respondError(c, log, err)
		return
	}
	respondOK(c, http.StatusCreated, ModelToUserResponse(user))
}

// @Summary Get profile
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Envelope{data=UserResponse}
// @Failure 401 {object} Envelope "Unauthorized"
// @Failure 404 {object} Envelope "User not found"
// @Failure 500 {object} Envelope "Internal server error"
// @Router /users [get]
func (h *Handler) getUser(c *gin.Context) {
	log := h.log(c, "getUser")

	user, err := h.userService.GetProfile(c.Request.Context(), currentIdentity(c).UID)
	if err != nil {
		respondError(c, log, err)
		return
	}
	respondOK(c, http.StatusOK, ModelToUserResponse(user))
}

// @Summary Delete profile
// @Description Delete the caller's profile together with their ongoing records.
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Envelope "Profile deleted"
// @Failure 401 {object} Envelope "Unauthorized"
// @Failure 404 {object} Envelope "User not found"
// @Failure 500 {object} Envelope "Internal server error"
// @Router /users [delete]
func (h *Handler) deleteUser(c *gin.Context) {
	log := h.log(c, "deleteUser")

	if err := h.userService.DeleteProfile(c.Request.Context(), currentIdentity(c).UID); err != nil {
		respondError(c, log, err)
		return
	}
	respondOK(c, http.StatusOK, nil)
}

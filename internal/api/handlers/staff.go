package handlers

import (
	"errors"
	"fmt"
	"net/http"

	apperrors "roster-backend/internal/errors"
	"roster-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// StaffHandler handles HTTP requests for staff lookups
type StaffHandler struct {
	staffService service.StaffServiceInterface
}

// NewStaffHandler creates a new staff handler
func NewStaffHandler(staffService service.StaffServiceInterface) *StaffHandler {
	return &StaffHandler{
		staffService: staffService,
	}
}

// GetStaff handles GET /staff/:code
// @Summary Get staff info by code
// @Description Get one staff member's profile by their code. Codes are compared trimmed on both sides.
// @Tags staff
// @Accept json
// @Produce json
// @Param code path string true "Staff code"
// @Success 200 {object} handlers.Envelope "Staff info"
// @Failure 404 {object} handlers.Envelope "No staff found for this code"
// @Failure 500 {object} handlers.Envelope "Storage failure"
// @Router /staff/{code} [get]
func (h *StaffHandler) GetStaff(c *gin.Context) {
	code := c.Param("code")

	staff, err := h.staffService.GetByCode(code)
	if err != nil {
		if errors.Is(err, apperrors.ErrStaffNotFound) {
			respond(c, http.StatusNotFound, false, "No staff found for this code", gin.H{})
			return
		}
		respond(c, http.StatusInternalServerError, false, "Failed to fetch staff info", gin.H{})
		return
	}

	respond(c, http.StatusOK, true, fmt.Sprintf("Get staff info data of code %s", staff.Code), staff)
}

// GetLeaveProfile handles GET /staff/:code/leave
// @Summary Get staff leave profile
// @Description Get a staff member's profile together with their annual-leave and public-holiday entries inside a date range.
// @Tags staff
// @Accept json
// @Produce json
// @Param code path string true "Staff code"
// @Param start query string true "Range start (YYYY-MM-DD)"
// @Param end query string true "Range end (YYYY-MM-DD)"
// @Success 200 {object} handlers.Envelope "Leave profile"
// @Failure 400 {object} handlers.Envelope "Missing or malformed parameters"
// @Failure 404 {object} handlers.Envelope "No staff found for this code"
// @Failure 500 {object} handlers.Envelope "Storage failure"
// @Router /staff/{code}/leave [get]
func (h *StaffHandler) GetLeaveProfile(c *gin.Context) {
	code := c.Param("code")
	start := c.Query("start")
	end := c.Query("end")

	if start == "" || end == "" {
		respond(c, http.StatusBadRequest, false, "Missing parameters: start and end are required", nil)
		return
	}

	profile, err := h.staffService.LeaveProfile(code, start, end)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrStaffNotFound):
			respond(c, http.StatusNotFound, false, "No staff found for this code", gin.H{})
		case errors.Is(err, apperrors.ErrInvalidDateRange) || isBadRequest(err):
			respond(c, http.StatusBadRequest, false, err.Error(), nil)
		default:
			respond(c, http.StatusInternalServerError, false, "Failed to fetch leave data", nil)
		}
		return
	}

	respond(c, http.StatusOK, true, fmt.Sprintf("Get leave data of code %s", code), profile)
}

package handlers

import (
	"errors"
	"fmt"
	"net/http"

	apperrors "roster-backend/internal/errors"
	"roster-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ScheduleHandler handles HTTP requests for the combined schedule
type ScheduleHandler struct {
	scheduleService service.ScheduleServiceInterface
}

// NewScheduleHandler creates a new schedule handler
func NewScheduleHandler(scheduleService service.ScheduleServiceInterface) *ScheduleHandler {
	return &ScheduleHandler{
		scheduleService: scheduleService,
	}
}

func (h *ScheduleHandler) rangeParams(c *gin.Context) (string, string, bool) {
	start := c.Query("startDate")
	end := c.Query("endDate")
	if start == "" || end == "" {
		respond(c, http.StatusBadRequest, false, "startDate and endDate are required", nil)
		return "", "", false
	}
	return start, end, true
}

// ListSchedules handles GET /schedules
// @Summary List the combined schedule
// @Description Get every staff member's assignments in a date range, joined with staff info, catalog shift times and the day's first clock-in / last clock-out.
// @Tags schedules
// @Accept json
// @Produce json
// @Param startDate query string true "Range start (YYYY-MM-DD)"
// @Param endDate query string true "Range end (YYYY-MM-DD)"
// @Success 200 {object} handlers.Envelope "Schedule rows"
// @Failure 400 {object} handlers.Envelope "Missing or malformed dates"
// @Failure 500 {object} handlers.Envelope "Storage failure"
// @Router /schedules [get]
func (h *ScheduleHandler) ListSchedules(c *gin.Context) {
	start, end, ok := h.rangeParams(c)
	if !ok {
		return
	}

	listing, err := h.scheduleService.List(c.Request.Context(), start, end)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidDateRange) || isBadRequest(err) {
			respond(c, http.StatusBadRequest, false, err.Error(), nil)
			return
		}
		respond(c, http.StatusInternalServerError, false, "Failed to fetch staff schedule", nil)
		return
	}

	respond(c, http.StatusOK, true, "Schedule retrieved successfully", listing)
}

// ExportSchedules handles GET /schedules/export
// @Summary Export the combined schedule as a workbook
// @Description Download the schedule for a date range as an .xlsx attachment.
// @Tags schedules
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param startDate query string true "Range start (YYYY-MM-DD)"
// @Param endDate query string true "Range end (YYYY-MM-DD)"
// @Success 200 {file} binary "Workbook attachment"
// @Failure 400 {object} handlers.Envelope "Missing or malformed dates"
// @Failure 500 {object} handlers.Envelope "Export failure"
// @Router /schedules/export [get]
func (h *ScheduleHandler) ExportSchedules(c *gin.Context) {
	start, end, ok := h.rangeParams(c)
	if !ok {
		return
	}

	buf, filename, err := h.scheduleService.ExportExcel(c.Request.Context(), start, end)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidDateRange) || isBadRequest(err) {
			respond(c, http.StatusBadRequest, false, err.Error(), nil)
			return
		}
		respond(c, http.StatusInternalServerError, false, "Failed to export staff schedule", nil)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

// StaffCalendar handles GET /shifts/:staffCode/calendar
// @Summary Staff shift calendar feed
// @Description Get one staff member's assignments in a date range as an iCalendar feed suitable for calendar subscriptions.
// @Tags shifts
// @Produce text/calendar
// @Param staffCode path string true "Staff code"
// @Param startDate query string true "Range start (YYYY-MM-DD)"
// @Param endDate query string true "Range end (YYYY-MM-DD)"
// @Success 200 {string} string "iCalendar document"
// @Failure 400 {object} handlers.Envelope "Missing or malformed dates"
// @Failure 500 {object} handlers.Envelope "Storage failure"
// @Router /shifts/{staffCode}/calendar [get]
func (h *ScheduleHandler) StaffCalendar(c *gin.Context) {
	start, end, ok := h.rangeParams(c)
	if !ok {
		return
	}

	feed, err := h.scheduleService.Calendar(c.Param("staffCode"), start, end)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidDateRange) || isBadRequest(err) {
			respond(c, http.StatusBadRequest, false, err.Error(), nil)
			return
		}
		respond(c, http.StatusInternalServerError, false, "Failed to build shift calendar", nil)
		return
	}

	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(feed))
}

package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	apperrors "roster-backend/internal/errors"
	"roster-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TimeClockHandler handles HTTP requests for time-clock punches
type TimeClockHandler struct {
	timeClockService service.TimeClockServiceInterface
}

// NewTimeClockHandler creates a new time clock handler
func NewTimeClockHandler(timeClockService service.TimeClockServiceInterface) *TimeClockHandler {
	return &TimeClockHandler{
		timeClockService: timeClockService,
	}
}

// ListPunches handles GET /machine-times
// @Summary List time-clock punches
// @Description Get persisted punches newest-first with pagination. Out-of-range page/limit values are clamped, never rejected.
// @Tags machine-times
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Records per page, clamped to [1,500]" default(50)
// @Success 200 {object} handlers.Envelope "Successfully fetched time machine records"
// @Failure 500 {object} handlers.Envelope "Storage failure"
// @Router /machine-times [get]
func (h *TimeClockHandler) ListPunches(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(service.DefaultPunchPageSize)))

	listing, err := h.timeClockService.List(page, limit)
	if err != nil {
		respond(c, http.StatusInternalServerError, false, fmt.Sprintf("Failed to fetch time records, %v", err), nil)
		return
	}

	message := fmt.Sprintf("Successfully fetched time machine records, page %d of results (limit: %d)", listing.Page, listing.Limit)
	respond(c, http.StatusOK, true, message, listing)
}

// RecordPunch handles POST /machine-times
// @Summary Record a time-clock punch
// @Description Persist one terminal punch. The stored uniqueness constraint over (id_number, date, time, in_out) decides duplicates; a violation is a 409.
// @Tags machine-times
// @Accept json
// @Produce json
// @Param punch body service.RecordPunchRequest true "Punch data"
// @Success 201 {object} handlers.Envelope "Time record added successfully"
// @Failure 400 {object} handlers.Envelope "Missing fields or malformed time"
// @Failure 409 {object} handlers.Envelope "Punch already exists"
// @Failure 500 {object} handlers.Envelope "Storage failure"
// @Router /machine-times [post]
func (h *TimeClockHandler) RecordPunch(c *gin.Context) {
	var req service.RecordPunchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond(c, http.StatusBadRequest, false, err.Error(), nil)
		return
	}

	punch, err := h.timeClockService.Record(&req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrDuplicatePunch):
			respond(c, http.StatusConflict, false, "This clock-in/out already exists for this staff on this date & time", req)
		case isBadRequest(err):
			respond(c, http.StatusBadRequest, false, err.Error(), req)
		default:
			respond(c, http.StatusInternalServerError, false, fmt.Sprintf("Failed to add time record, %v", err), req)
		}
		return
	}

	respond(c, http.StatusCreated, true, "Time record added successfully", punch)
}

// AmendPunch handles PUT /machine-times
// @Summary Amend a time-clock punch
// @Description Correct a persisted punch addressed by readers plus id_number. Both keys must match the same row or the amendment is a 404.
// @Tags machine-times
// @Accept json
// @Produce json
// @Param punch body service.AmendPunchRequest true "Amended punch data"
// @Success 200 {object} handlers.Envelope "Time record updated successfully"
// @Failure 400 {object} handlers.Envelope "Missing fields or malformed time"
// @Failure 404 {object} handlers.Envelope "No row matches both keys"
// @Failure 500 {object} handlers.Envelope "Storage failure"
// @Router /machine-times [put]
func (h *TimeClockHandler) AmendPunch(c *gin.Context) {
	var req service.AmendPunchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond(c, http.StatusBadRequest, false, err.Error(), nil)
		return
	}

	punch, err := h.timeClockService.Amend(&req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrPunchNotFound):
			respond(c, http.StatusNotFound, false, "Record not found with the given readers and id_number", nil)
		case isBadRequest(err):
			respond(c, http.StatusBadRequest, false, err.Error(), req)
		default:
			respond(c, http.StatusInternalServerError, false, "Failed to update record", nil)
		}
		return
	}

	respond(c, http.StatusOK, true, "Time record updated successfully", punch)
}

// RemovePunch handles DELETE /machine-times
// @Summary Remove a time-clock punch
// @Description Delete a punch addressed by readers plus id_number and return the removed row for confirmation.
// @Tags machine-times
// @Accept json
// @Produce json
// @Param punch body service.RemovePunchRequest true "Dual key of the punch to remove"
// @Success 200 {object} handlers.Envelope "Time record deleted successfully"
// @Failure 400 {object} handlers.Envelope "Missing required fields"
// @Failure 404 {object} handlers.Envelope "No row matches both keys"
// @Failure 500 {object} handlers.Envelope "Storage failure"
// @Router /machine-times [delete]
func (h *TimeClockHandler) RemovePunch(c *gin.Context) {
	var req service.RemovePunchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond(c, http.StatusBadRequest, false, err.Error(), nil)
		return
	}

	punch, err := h.timeClockService.Remove(&req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrPunchNotFound):
			respond(c, http.StatusNotFound, false, "Record not found with the given readers and id_number", nil)
		case isBadRequest(err):
			respond(c, http.StatusBadRequest, false, err.Error(), req)
		default:
			respond(c, http.StatusInternalServerError, false, "Failed to delete record", nil)
		}
		return
	}

	respond(c, http.StatusOK, true, "Time record deleted successfully", punch)
}

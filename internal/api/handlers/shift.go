package handlers

import (
	"errors"
	"fmt"
	"net/http"

	apperrors "roster-backend/internal/errors"
	"roster-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ShiftHandler handles HTTP requests for shift assignments
type ShiftHandler struct {
	shiftService service.ShiftServiceInterface
}

// NewShiftHandler creates a new shift handler
func NewShiftHandler(shiftService service.ShiftServiceInterface) *ShiftHandler {
	return &ShiftHandler{
		shiftService: shiftService,
	}
}

// SubmitShift handles POST /shifts
// @Summary Assign a shift
// @Description Assign a shift to a staff member on a date. The (staffCode, date) pair is unique; a second submission for the same pair is rejected with 409 and the submitted payload echoed back.
// @Tags shifts
// @Accept json
// @Produce json
// @Param shift body service.SubmitShiftRequest true "Shift assignment data"
// @Success 201 {object} handlers.Envelope "Shift added successfully"
// @Failure 400 {object} handlers.Envelope "Missing or invalid fields"
// @Failure 409 {object} handlers.Envelope "Shift already exists for this staff and date"
// @Failure 500 {object} handlers.Envelope "Storage failure"
// @Router /shifts [post]
func (h *ShiftHandler) SubmitShift(c *gin.Context) {
	var req service.SubmitShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond(c, http.StatusBadRequest, false, err.Error(), nil)
		return
	}

	shift, err := h.shiftService.Submit(&req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrShiftExists):
			respond(c, http.StatusConflict, false, "Shift already exists for this staff and date", req)
		case isBadRequest(err):
			respond(c, http.StatusBadRequest, false, err.Error(), req)
		default:
			respond(c, http.StatusInternalServerError, false, fmt.Sprintf("Failed to add shift, %v", err), req)
		}
		return
	}

	respond(c, http.StatusCreated, true, "Shift added successfully", shift)
}

// ReviseShift handles PUT /shifts
// @Summary Revise an existing shift assignment
// @Description Update shiftName, note and syncVG of an existing assignment. A missing assignment is 404; submitting the same shiftName and syncVG again is a 409 no-change rejection.
// @Tags shifts
// @Accept json
// @Produce json
// @Param shift body service.ReviseShiftRequest true "Shift revision data"
// @Success 200 {object} handlers.Envelope "Shift updated successfully"
// @Failure 400 {object} handlers.Envelope "Missing or invalid fields"
// @Failure 404 {object} handlers.Envelope "No shift found to update"
// @Failure 409 {object} handlers.Envelope "Same shift and syncVG already stored"
// @Failure 500 {object} handlers.Envelope "Storage failure"
// @Router /shifts [put]
func (h *ShiftHandler) ReviseShift(c *gin.Context) {
	var req service.ReviseShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond(c, http.StatusBadRequest, false, err.Error(), nil)
		return
	}

	shift, err := h.shiftService.Revise(&req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrShiftNotFound):
			respond(c, http.StatusNotFound, false, "No shift found to update", req)
		case errors.Is(err, apperrors.ErrShiftUnchanged):
			respond(c, http.StatusConflict, false, "Cannot update due to the same shift and syncVG found", req)
		case isBadRequest(err):
			respond(c, http.StatusBadRequest, false, err.Error(), req)
		default:
			respond(c, http.StatusInternalServerError, false, fmt.Sprintf("Failed to update shift, %v", err), req)
		}
		return
	}

	respond(c, http.StatusOK, true, "Shift updated successfully", shift)
}

// ListShifts handles GET /shifts/:staffCode
// @Summary List shift assignments for a staff member
// @Description Get all shift assignments for a staff code, newest first. An empty result is reported with status=false and an empty data array.
// @Tags shifts
// @Accept json
// @Produce json
// @Param staffCode path string true "Staff code"
// @Success 200 {object} handlers.Envelope "Shift data retrieved successfully"
// @Failure 500 {object} handlers.Envelope "Storage failure"
// @Router /shifts/{staffCode} [get]
func (h *ShiftHandler) ListShifts(c *gin.Context) {
	staffCode := c.Param("staffCode")

	listing, err := h.shiftService.ListByStaff(staffCode)
	if err != nil {
		respond(c, http.StatusInternalServerError, false, fmt.Sprintf("Failed to fetch shift data, %v", err), nil)
		return
	}

	if listing.Total == 0 {
		respond(c, http.StatusOK, false, fmt.Sprintf("No shift data found for staffCode: %s", staffCode), listing.Shifts)
		return
	}

	respond(c, http.StatusOK, true, "Shift data retrieved successfully", listing.Shifts)
}

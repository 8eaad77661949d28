package handlers

import (
	"errors"
	"fmt"
	"net/http"

	apperrors "roster-backend/internal/errors"
	"roster-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// LeaveHandler handles HTTP requests for leave entries
type LeaveHandler struct {
	leaveService service.LeaveServiceInterface
}

// NewLeaveHandler creates a new leave handler
func NewLeaveHandler(leaveService service.LeaveServiceInterface) *LeaveHandler {
	return &LeaveHandler{
		leaveService: leaveService,
	}
}

// CreateLeave handles POST /leave
// @Summary Add a leave entry
// @Description Add an annual-leave or public-holiday entry keyed by (kind, staffCode, date, leaveCode).
// @Tags leave
// @Accept json
// @Produce json
// @Param entry body service.CreateLeaveRequest true "Leave entry data"
// @Success 201 {object} handlers.Envelope "Leave entry added successfully"
// @Failure 400 {object} handlers.Envelope "Missing or invalid fields"
// @Failure 409 {object} handlers.Envelope "Entry already exists for this key"
// @Failure 500 {object} handlers.Envelope "Storage failure"
// @Router /leave [post]
func (h *LeaveHandler) CreateLeave(c *gin.Context) {
	var req service.CreateLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond(c, http.StatusBadRequest, false, err.Error(), nil)
		return
	}

	entry, err := h.leaveService.Create(&req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrLeaveEntryExists):
			respond(c, http.StatusConflict, false, "Leave entry already exists for this staff and date", req)
		case errors.Is(err, apperrors.ErrInvalidLeaveKind) || isBadRequest(err):
			respond(c, http.StatusBadRequest, false, err.Error(), req)
		default:
			respond(c, http.StatusInternalServerError, false, fmt.Sprintf("Failed to add leave entry, %v", err), req)
		}
		return
	}

	respond(c, http.StatusCreated, true, "Leave entry added successfully", entry)
}

// UpdateLeave handles PUT /leave
// @Summary Update a leave balance
// @Description Set the remaining balance on an entry matched by its natural key.
// @Tags leave
// @Accept json
// @Produce json
// @Param entry body service.UpdateLeaveRequest true "Leave balance update"
// @Success 200 {object} handlers.Envelope "Leave entry updated successfully"
// @Failure 400 {object} handlers.Envelope "Missing or invalid fields"
// @Failure 404 {object} handlers.Envelope "No entry matches the key"
// @Failure 500 {object} handlers.Envelope "Storage failure"
// @Router /leave [put]
func (h *LeaveHandler) UpdateLeave(c *gin.Context) {
	var req service.UpdateLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond(c, http.StatusBadRequest, false, err.Error(), nil)
		return
	}

	if err := h.leaveService.UpdateBalance(&req); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrLeaveEntryNotFound):
			respond(c, http.StatusNotFound, false, "No leave entry found to update", req)
		case errors.Is(err, apperrors.ErrInvalidLeaveKind) || isBadRequest(err):
			respond(c, http.StatusBadRequest, false, err.Error(), req)
		default:
			respond(c, http.StatusInternalServerError, false, fmt.Sprintf("Failed to update leave entry, %v", err), req)
		}
		return
	}

	respond(c, http.StatusOK, true, "Leave entry updated successfully", req)
}

// DeleteLeave handles DELETE /leave
// @Summary Delete a leave entry
// @Description Delete an entry matched by its natural key.
// @Tags leave
// @Accept json
// @Produce json
// @Param entry body service.DeleteLeaveRequest true "Natural key of the entry to delete"
// @Success 200 {object} handlers.Envelope "Leave entry deleted successfully"
// @Failure 400 {object} handlers.Envelope "Missing or invalid fields"
// @Failure 404 {object} handlers.Envelope "No entry matches the key"
// @Failure 500 {object} handlers.Envelope "Storage failure"
// @Router /leave [delete]
func (h *LeaveHandler) DeleteLeave(c *gin.Context) {
	var req service.DeleteLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond(c, http.StatusBadRequest, false, err.Error(), nil)
		return
	}

	if err := h.leaveService.Delete(&req); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrLeaveEntryNotFound):
			respond(c, http.StatusNotFound, false, "No leave entry found to delete", req)
		case errors.Is(err, apperrors.ErrInvalidLeaveKind) || isBadRequest(err):
			respond(c, http.StatusBadRequest, false, err.Error(), req)
		default:
			respond(c, http.StatusInternalServerError, false, fmt.Sprintf("Failed to delete leave entry, %v", err), req)
		}
		return
	}

	respond(c, http.StatusOK, true, "Leave entry deleted successfully", req)
}

package leaveallocation

import (
	"context"
	"net/http"

	"go-leave/internal/shared/apperror"
	"go-leave/internal/shared/clock"
	"go-leave/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type MaximumDaysChecker interface {
	DaysExceedMaximum(ctx context.Context, leaveTypeID string, requestedDays int) (bool, error)
}

type Handler struct {
	service    Service
	leaveTypes MaximumDaysChecker
	clock      clock.Clock
	logger     *zap.Logger
}

func NewHandler(service Service, leaveTypes MaximumDaysChecker, clk clock.Clock, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("leaveallocation.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leaveallocation.handler")
	}
	return &Handler{service: service, leaveTypes: leaveTypes, clock: clk, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("leave allocation request failed",
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) GetEmployees(c *gin.Context) {
	resp, err := h.service.GetEmployees(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Allocate(c *gin.Context) {
	resp, err := h.service.AllocateLeave(c.Request.Context(), h.clock.Now(), c.Param("employeeId"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) GetMine(c *gin.Context) {
	resp, err := h.service.GetEmployeeAllocations(c.Request.Context(), h.clock.Now(), c.GetString("user_id"), "")
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetForEmployee(c *gin.Context) {
	resp, err := h.service.GetEmployeeAllocations(c.Request.Context(), h.clock.Now(), c.GetString("user_id"), c.Param("employeeId"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetByID(c *gin.Context) {
	resp, err := h.service.GetEmployeeAllocation(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

// Update rejects days above the leave type's annual maximum before editing.
func (h *Handler) Update(c *gin.Context) {
	var req EditAllocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	ctx := c.Request.Context()
	id := c.Param("id")

	current, err := h.service.GetEmployeeAllocation(ctx, id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	exceeds, err := h.leaveTypes.DaysExceedMaximum(ctx, current.LeaveTypeID, *req.Days)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	if exceeds {
		h.writeServiceError(c, apperror.Validation(map[string]string{
			"days": "Days exceed the maximum allowed for this leave type",
		}))
		return
	}

	resp, err := h.service.EditAllocation(ctx, id, *req.Days)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

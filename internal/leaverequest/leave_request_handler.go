package leaverequest

import (
	"bytes"
	"net/http"

	"go-leave/internal/domain"
	"go-leave/internal/i18n"
	leaverequesterrors "go-leave/internal/leaverequest/errors"
	"go-leave/internal/shared/apperror"
	"go-leave/internal/shared/clock"
	"go-leave/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	labels  Labeler
	clock   clock.Clock
	logger  *zap.Logger
}

func NewHandler(service Service, labels Labeler, clk clock.Clock, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("leaverequest.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leaverequest.handler")
	}
	return &Handler{service: service, labels: labels, clock: clk, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("leave request request failed",
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// Create checks the balance first so an oversized request reports a field error on end_date.
func (h *Handler) Create(c *gin.Context) {
	var req CreateLeaveRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	start, end, err := ParseRange(req.StartDate, req.EndDate)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	ctx := c.Request.Context()
	now := h.clock.Now()
	employeeID := c.GetString("user_id")

	exceeds, err := h.service.RequestDatesExceedAllocation(ctx, now, employeeID, start, end, req.LeaveTypeID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	if exceeds {
		h.writeServiceError(c, apperror.Validation(map[string]string{
			"end_date": "You do not have enough days for this request",
		}))
		return
	}

	resp, err := h.service.Create(ctx, now, employeeID, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) GetMine(c *gin.Context) {
	resp, err := h.service.GetEmployeeLeaveRequests(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	page, meta := response.Paginate(c, resp)
	response.Success(c, http.StatusOK, page, &meta)
}

// Cancel lets employees cancel only their own requests; supervisors and administrators may cancel any.
func (h *Handler) Cancel(c *gin.Context) {
	ctx := c.Request.Context()
	actorID := c.GetString("user_id")
	id := c.Param("id")

	if !mayActForOthers(c.GetString("role")) {
		lr, err := h.service.GetLeaveRequestForReview(ctx, id)
		if err != nil {
			h.writeServiceError(c, err)
			return
		}
		if lr.EmployeeID != actorID {
			h.writeServiceError(c, leaverequesterrors.ErrNotRequestOwner)
			return
		}
	}

	resp, err := h.service.Cancel(ctx, h.clock.Now(), actorID, id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetAll(c *gin.Context) {
	resp, err := h.service.AdminGetAllLeaveRequests(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Report(c *gin.Context) {
	ctx := c.Request.Context()
	data, err := h.service.AdminGetAllLeaveRequests(ctx)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	var buf bytes.Buffer
	if err := WriteReport(&buf, h.labels, i18n.LocaleFromContext(ctx), h.clock.Now(), data); err != nil {
		h.logger.Error("render leave request report failed", zap.Error(err))
		h.writeServiceError(c, apperror.Wrap(err, apperror.CodeInternalError, "failed to render report", http.StatusInternalServerError))
		return
	}

	c.Header("Content-Disposition", `attachment; filename="leave-requests.pdf"`)
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}

func (h *Handler) GetForReview(c *gin.Context) {
	resp, err := h.service.GetLeaveRequestForReview(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Review(c *gin.Context) {
	var req ReviewLeaveRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Review(c.Request.Context(), h.clock.Now(), c.GetString("user_id"), c.Param("id"), *req.Approved)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func mayActForOthers(role string) bool {
	return role == domain.RoleSupervisor || role == domain.RoleAdministrator
}

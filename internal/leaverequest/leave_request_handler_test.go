package leaverequest_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go-leave/internal/domain"
	leaverequest "go-leave/internal/leaverequest"
	leaverequesterrors "go-leave/internal/leaverequest/errors"
	leaverequestMock "go-leave/internal/leaverequest/mock"
	"go-leave/internal/shared/clock"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

var handlerNow = time.Date(2024, 10, 1, 9, 0, 0, 0, time.UTC)

func newRequestRouter(t *testing.T) (*gin.Engine, *leaverequestMock.MockService) {
	return newRequestRouterAs(t, "emp-1", domain.RoleEmployee)
}

func newRequestRouterAs(t *testing.T, userID, role string) (*gin.Engine, *leaverequestMock.MockService) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	svc := leaverequestMock.NewMockService(ctrl)
	h := leaverequest.NewHandler(svc, fakeLabels{}, clock.Fixed(handlerNow))

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Set("role", role)
		c.Next()
	})
	r.POST("/leave-requests", h.Create)
	r.GET("/leave-requests/me", h.GetMine)
	r.POST("/leave-requests/:id/cancel", h.Cancel)
	r.GET("/leave-requests/report.pdf", h.Report)
	r.POST("/leave-requests/:id/review", h.Review)
	return r, svc
}

func TestLeaveRequestHandler_Create(t *testing.T) {
	body := `{"leave_type_id":"lt-annual","start_date":"2024-10-07","end_date":"2024-10-11"}`

	t.Run("created", func(t *testing.T) {
		r, svc := newRequestRouter(t)
		svc.EXPECT().
			RequestDatesExceedAllocation(gomock.Any(), handlerNow, "emp-1", date(2024, 10, 7), date(2024, 10, 11), "lt-annual").
			Return(false, nil)
		svc.EXPECT().
			Create(gomock.Any(), handlerNow, "emp-1", gomock.Any()).
			Return(leaverequest.LeaveRequestResponse{ID: "lr-1", Status: leaverequest.StatusPending}, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/leave-requests", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"id":"lr-1"`)
	})

	t.Run("over balance is a field error on end_date", func(t *testing.T) {
		r, svc := newRequestRouter(t)
		svc.EXPECT().
			RequestDatesExceedAllocation(gomock.Any(), handlerNow, "emp-1", gomock.Any(), gomock.Any(), "lt-annual").
			Return(true, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/leave-requests", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, w.Body.String(), "end_date")
	})

	t.Run("end before start", func(t *testing.T) {
		r, _ := newRequestRouter(t)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/leave-requests",
			strings.NewReader(`{"leave_type_id":"lt-annual","start_date":"2024-10-11","end_date":"2024-10-07"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("missing fields", func(t *testing.T) {
		r, _ := newRequestRouter(t)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/leave-requests", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func ownedBy(employeeID string) leaverequest.LeaveRequestReviewResponse {
	return leaverequest.LeaveRequestReviewResponse{
		LeaveRequestResponse: leaverequest.LeaveRequestResponse{ID: "lr-1", EmployeeID: employeeID},
	}
}

func TestLeaveRequestHandler_Cancel(t *testing.T) {
	t.Run("employee cannot cancel another employee's request", func(t *testing.T) {
		r, svc := newRequestRouter(t)
		svc.EXPECT().GetLeaveRequestForReview(gomock.Any(), "lr-9").Return(ownedBy("emp-2"), nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/leave-requests/lr-9/cancel", nil))

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), leaverequesterrors.ErrNotRequestOwner.Message)
	})

	t.Run("employee cancels own request", func(t *testing.T) {
		r, svc := newRequestRouter(t)
		svc.EXPECT().GetLeaveRequestForReview(gomock.Any(), "lr-1").Return(ownedBy("emp-1"), nil)
		svc.EXPECT().Cancel(gomock.Any(), handlerNow, "emp-1", "lr-1").
			Return(leaverequest.LeaveRequestResponse{ID: "lr-1", Status: leaverequest.StatusCanceled}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/leave-requests/lr-1/cancel", nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("administrator cancels on behalf of an employee", func(t *testing.T) {
		r, svc := newRequestRouterAs(t, "admin-1", domain.RoleAdministrator)
		svc.EXPECT().Cancel(gomock.Any(), handlerNow, "admin-1", "lr-1").
			Return(leaverequest.LeaveRequestResponse{ID: "lr-1", Status: leaverequest.StatusCanceled}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/leave-requests/lr-1/cancel", nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("terminal state", func(t *testing.T) {
		r, svc := newRequestRouter(t)
		svc.EXPECT().GetLeaveRequestForReview(gomock.Any(), "lr-1").Return(ownedBy("emp-1"), nil)
		svc.EXPECT().Cancel(gomock.Any(), handlerNow, "emp-1", "lr-1").Return(leaverequest.LeaveRequestResponse{}, leaverequesterrors.ErrInvalidStatusTransition)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/leave-requests/lr-1/cancel", nil))

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestLeaveRequestHandler_Review(t *testing.T) {
	t.Run("decline", func(t *testing.T) {
		r, svc := newRequestRouter(t)
		svc.EXPECT().
			Review(gomock.Any(), handlerNow, "emp-1", "lr-1", false).
			Return(leaverequest.LeaveRequestResponse{ID: "lr-1", Status: leaverequest.StatusDeclined}, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/leave-requests/lr-1/review", strings.NewReader(`{"approved":false}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), leaverequest.StatusDeclined)
	})

	t.Run("approved flag is required", func(t *testing.T) {
		r, _ := newRequestRouter(t)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/leave-requests/lr-1/review", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestLeaveRequestHandler_GetMine(t *testing.T) {
	r, svc := newRequestRouter(t)
	svc.EXPECT().GetEmployeeLeaveRequests(gomock.Any(), "emp-1").Return([]leaverequest.LeaveRequestResponse{
		{ID: "lr-1"}, {ID: "lr-2"}, {ID: "lr-3"},
	}, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/leave-requests/me?page=1&page_size=2", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"lr-2"`)
	assert.NotContains(t, w.Body.String(), `"lr-3"`)
}

func TestLeaveRequestHandler_Report(t *testing.T) {
	r, svc := newRequestRouter(t)
	svc.EXPECT().AdminGetAllLeaveRequests(gomock.Any()).Return(leaverequest.AdminLeaveRequestsResponse{
		PendingRequests: 1,
		TotalRequests:   1,
		Requests: []leaverequest.LeaveRequestResponse{
			{ID: "lr-1", EmployeeName: "Jane Doe", LeaveTypeName: "Annual", StartDate: "2024-10-07", EndDate: "2024-10-11", NumberOfDays: 4, StatusLabel: "Pending"},
		},
	}, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/leave-requests/report.pdf", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(w.Body.String(), "%PDF"))
}

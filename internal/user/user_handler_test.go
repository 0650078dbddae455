package user_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-leave/internal/user"
	usererrors "go-leave/internal/user/errors"
	userMock "go-leave/internal/user/mock"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type apiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string            `json:"code"`
		Details map[string]string `json:"details"`
	} `json:"error"`
}

func newUserRouter(t *testing.T) (*gin.Engine, *userMock.MockService) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	svc := userMock.NewMockService(ctrl)
	h := user.NewHandler(svc)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user_id", "u-me")
		c.Next()
	})
	r.GET("/users/me", h.Me)
	r.GET("/users/employees", h.GetEmployees)
	r.POST("/users", h.Register)
	r.GET("/users/:id", h.GetByID)
	return r, svc
}

func TestUserHandler_Me(t *testing.T) {
	r, svc := newUserRouter(t)
	svc.EXPECT().GetMe(gomock.Any(), "u-me").Return(user.UserResponse{ID: "u-me", FullName: "Me Myself"}, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/users/me", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Me Myself")
}

func TestUserHandler_GetByID_NotFound(t *testing.T) {
	r, svc := newUserRouter(t)
	svc.EXPECT().GetUserByID(gomock.Any(), "missing").Return(user.UserResponse{}, usererrors.ErrUserNotFound)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/users/missing", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUserHandler_GetEmployees_FilterAndSort(t *testing.T) {
	r, svc := newUserRouter(t)
	svc.EXPECT().ListEmployees(gomock.Any()).Return([]user.UserResponse{
		{ID: "1", FullName: "Ann Baker", Email: "ann@example.com"},
		{ID: "2", FullName: "Bob Andrews", Email: "bob@corp.com"},
		{ID: "3", FullName: "Cara Doe", Email: "cara@example.com"},
	}, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/users/employees?q=example&sort_by=name&sort_dir=desc", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var env apiEnvelope
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	var got []user.UserResponse
	assert.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Len(t, got, 2)
	assert.Equal(t, "3", got[0].ID)
	assert.Equal(t, "1", got[1].ID)
}

func TestUserHandler_Register(t *testing.T) {
	t.Run("validation error", func(t *testing.T) {
		r, _ := newUserRouter(t)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(`{"first_name":"Jane"}`)))

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("conflict", func(t *testing.T) {
		r, svc := newUserRouter(t)
		svc.EXPECT().Register(gomock.Any(), gomock.Any()).Return(user.UserResponse{}, usererrors.ErrUserAlreadyExists)

		body := `{"first_name":"Jane","last_name":"Doe","email":"jane@example.com","password":"secret123"}`
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(body)))

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("created", func(t *testing.T) {
		r, svc := newUserRouter(t)
		svc.EXPECT().Register(gomock.Any(), gomock.Any()).Return(user.UserResponse{ID: "u-9"}, nil)

		body := `{"first_name":"Jane","last_name":"Doe","email":"jane@example.com","password":"secret123"}`
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(body)))

		assert.Equal(t, http.StatusCreated, w.Code)
	})
}

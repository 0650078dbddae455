package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-leave/internal/domain"
	"go-leave/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeRBAC struct {
	allowed bool
	err     error
	got     domain.EnforceRequest
}

func (f *fakeRBAC) Enforce(req domain.EnforceRequest) (bool, error) {
	f.got = req
	return f.allowed, f.err
}

func newRBACRouter(svc middleware.RBACService, role string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/leave-types",
		func(c *gin.Context) {
			if role != "" {
				c.Set("role", role)
			}
			c.Next()
		},
		middleware.RBACAuthorize(svc, "leave_type", "manage"),
		func(c *gin.Context) { c.Status(http.StatusNoContent) },
	)
	return r
}

func TestRBACAuthorize(t *testing.T) {
	tests := []struct {
		name   string
		role   string
		svc    *fakeRBAC
		status int
	}{
		{"allowed", domain.RoleAdministrator, &fakeRBAC{allowed: true}, http.StatusNoContent},
		{"denied", domain.RoleEmployee, &fakeRBAC{allowed: false}, http.StatusForbidden},
		{"missing role", "", &fakeRBAC{allowed: true}, http.StatusUnauthorized},
		{"enforcer error", domain.RoleEmployee, &fakeRBAC{err: errors.New("boom")}, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newRBACRouter(tt.svc, tt.role)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/leave-types", nil))

			assert.Equal(t, tt.status, w.Code)
			if tt.role != "" {
				assert.Equal(t, domain.EnforceRequest{Role: tt.role, Resource: "leave_type", Action: "manage"}, tt.svc.got)
			}
		})
	}
}

package leaveallocation

import (
	"go-leave/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, auth gin.HandlerFunc, rbacService middleware.RBACService) {
	allocations := r.Group("/leave-allocations")
	allocations.Use(auth)
	{
		allocations.GET("/me",
			middleware.RBACAuthorize(rbacService, "leave_allocation", "read_own"),
			h.GetMine,
		)

		allocations.GET("/employees",
			middleware.RBACAuthorize(rbacService, "leave_allocation", "manage"),
			h.GetEmployees,
		)
		allocations.GET("/employees/:employeeId",
			middleware.RBACAuthorize(rbacService, "leave_allocation", "manage"),
			h.GetForEmployee,
		)
		allocations.POST("/employees/:employeeId/allocate",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, "leave_allocation", "manage"),
			h.Allocate,
		)

		allocations.GET("/:id",
			middleware.RBACAuthorize(rbacService, "leave_allocation", "manage"),
			h.GetByID,
		)
		allocations.PUT("/:id",
			middleware.RBACAuthorize(rbacService, "leave_allocation", "manage"),
			h.Update,
		)
	}
}

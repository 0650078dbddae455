package leavetype

import (
	"go-leave/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, auth gin.HandlerFunc, rbacService middleware.RBACService) {
	types := r.Group("/leave-types")
	types.Use(auth)
	{
		types.GET("", middleware.RBACAuthorize(rbacService, "leave_type", "read"), h.List)
		types.GET("/name-exists", middleware.RBACAuthorize(rbacService, "leave_type", "manage"), h.NameExists)
		types.GET("/:id", middleware.RBACAuthorize(rbacService, "leave_type", "read"), h.GetByID)
		types.POST("", middleware.RBACAuthorize(rbacService, "leave_type", "manage"), h.Create)
		types.PUT("/:id", middleware.RBACAuthorize(rbacService, "leave_type", "manage"), h.Update)
		types.DELETE("/:id", middleware.RBACAuthorize(rbacService, "leave_type", "manage"), h.Delete)
	}
}

package rbac

import (
	"go-leave/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, auth gin.HandlerFunc, service Service) {
	group := r.Group("/rbac")
	group.Use(auth)
	{
		group.POST("/enforce", handler.Enforce)
		group.GET("/policies", middleware.RBACAuthorize(service, ResourceRBAC, ActionRead), handler.ListPolicies)
	}
}

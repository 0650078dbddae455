package period

import (
	"go-leave/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, auth gin.HandlerFunc, rbacService middleware.RBACService) {
	periods := r.Group("/periods")
	periods.Use(auth)
	{
		periods.GET("", middleware.RBACAuthorize(rbacService, "period", "read"), h.GetAll)
		periods.GET("/current", middleware.RBACAuthorize(rbacService, "period", "read"), h.GetCurrent)
		periods.POST("", middleware.RBACAuthorize(rbacService, "period", "manage"), h.Create)
	}
}

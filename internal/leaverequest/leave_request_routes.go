package leaverequest

import (
	"go-leave/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, auth gin.HandlerFunc, rbacService middleware.RBACService, rdb *redis.Client) {
	requests := r.Group("/leave-requests")
	requests.Use(auth)
	{
		requests.POST("",
			middleware.RateLimitByUser(2, 5),
			middleware.RBACAuthorize(rbacService, "leave_request", "create"),
			middleware.Idempotency(rdb),
			h.Create,
		)
		requests.GET("/me",
			middleware.RBACAuthorize(rbacService, "leave_request", "read_own"),
			h.GetMine,
		)
		requests.POST("/:id/cancel",
			middleware.RBACAuthorize(rbacService, "leave_request", "cancel"),
			h.Cancel,
		)

		requests.GET("",
			middleware.RBACAuthorize(rbacService, "leave_request", "read_all"),
			h.GetAll,
		)
		requests.GET("/report.pdf",
			middleware.RateLimitByUser(1, 3),
			middleware.RBACAuthorize(rbacService, "leave_request", "read_all"),
			h.Report,
		)
		requests.GET("/:id/review",
			middleware.RBACAuthorize(rbacService, "leave_request", "review"),
			h.GetForReview,
		)
		requests.POST("/:id/review",
			middleware.RBACAuthorize(rbacService, "leave_request", "review"),
			h.Review,
		)
	}
}

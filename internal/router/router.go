package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/iqbal-codes/fnb-os-web-app-sub000/internal/middleware"
	"github.com/iqbal-codes/fnb-os-web-app-sub000/internal/planner"
)

// NewRouter builds the engine's HTTP surface around a planner handler.
func NewRouter(handler *planner.Handler, log *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Health check route
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	group := r.Group("/planner")
	{
		group.POST("/metrics", handler.ComputeMetrics)
		group.POST("/shopping", handler.ShoppingPlan)
		group.POST("/shopping/export", handler.ExportShoppingPlan)
		group.POST("/validate", handler.Validate)

		group.POST("/snapshots", handler.SaveSnapshot)
		group.GET("/snapshots", handler.ListSnapshots)
		group.GET("/snapshots/:id", handler.GetSnapshot)
	}

	return r
}

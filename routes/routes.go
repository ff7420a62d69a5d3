package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"speedboat-api/controllers"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	speedboatController := controllers.NewSpeedboatController(db)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	api := r.Group("/api")

	speedboats := api.Group("/speedboats")
	{
		speedboats.GET("", speedboatController.ListSpeedboats)
		speedboats.POST("", speedboatController.CreateSpeedboat)
		speedboats.GET("/:id", speedboatController.GetSpeedboat)
		speedboats.PUT("/:id", speedboatController.UpdateSpeedboat)
		speedboats.PATCH("/:id", speedboatController.UpdateSpeedboat)
		speedboats.DELETE("/:id", speedboatController.DeleteSpeedboat)
	}
}

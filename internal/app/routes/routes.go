package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"courseadvisor/internal/app/controllers"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	teacherController *controllers.TeacherController,
	courseController *controllers.CourseController,
) {
	// Liveness probe
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API version group
	v1 := router.Group("/api/v1")

	// Teacher routes (public, read-only)
	teachers := v1.Group("/teachers")
	{
		teachers.GET("", teacherController.GetTeachers)
		teachers.GET("/:id/tags", teacherController.GetTeacherTags)
	}

	// Course catalog routes (public, read-only)
	v1.GET("/courses", courseController.GetCourses)
}

package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"courseadvisor/internal/app/services"
	"courseadvisor/internal/middleware"
)

// CourseController handles course catalog endpoints
type CourseController struct {
	courseService services.CourseService
}

// NewCourseController creates a new course controller
func NewCourseController(courseService services.CourseService) *CourseController {
	return &CourseController{
		courseService: courseService,
	}
}

// GetCourses retrieves catalog entries, optionally filtered by program
// @Summary List program courses
// @Description List the catalog entries for a degree program; without a program parameter the full catalog is returned
// @Tags courses
// @Produce json
// @Param program query string false "Program title, e.g. Computer Science B.S."
// @Success 200 {array} dto.CourseResponse "Catalog entries"
// @Failure 503 {object} dto.ErrorResponse "Course catalog unavailable"
// @Router /courses [get]
func (c *CourseController) GetCourses(ctx *gin.Context) {
	courses, err := c.courseService.GetCourses(ctx, ctx.Query("program"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, courses)
}

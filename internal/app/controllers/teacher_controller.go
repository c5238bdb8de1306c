package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"courseadvisor/internal/app/models/dto"
	"courseadvisor/internal/app/services"
	"courseadvisor/internal/middleware"
)

// TeacherController handles teacher query endpoints
type TeacherController struct {
	teacherService services.TeacherService
}

// NewTeacherController creates a new teacher controller
func NewTeacherController(teacherService services.TeacherService) *TeacherController {
	return &TeacherController{
		teacherService: teacherService,
	}
}

// teacherQuery binds the filter and pagination parameters of GET /teachers.
type teacherQuery struct {
	CourseCode string `form:"course_code"`
	Department string `form:"department"`
	Name       string `form:"name"`
	Exact      bool   `form:"exact"`
	Limit      *int   `form:"limit"`
	Offset     *int   `form:"offset"`
}

// GetTeachers looks up teachers by course code, department, or name
// @Summary Find teachers
// @Description Look up teachers by course code (ranked recommendation), department, or name. Exactly one filter is used; course_code takes precedence over department, department over name.
// @Tags teachers
// @Produce json
// @Param course_code query string false "Course code, e.g. CSE1321"
// @Param department query string false "Department label, e.g. CS"
// @Param name query string false "Teacher name (exact match, falling back to prefix)"
// @Param exact query bool false "Only exact name matches"
// @Param limit query int false "Page size (clamped per operation)"
// @Param offset query int false "Row offset (clamped to >= 0)"
// @Success 200 {array} dto.TeacherResponse "Matching teachers"
// @Failure 400 {object} dto.ErrorResponse "No filter parameter supplied"
// @Failure 503 {object} dto.ErrorResponse "Ratings store unavailable"
// @Router /teachers [get]
func (c *TeacherController) GetTeachers(ctx *gin.Context) {
	var query teacherQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid query parameters")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	opts := services.PageOptions{Limit: query.Limit, Offset: query.Offset}

	switch {
	case query.CourseCode != "":
		teachers, err := c.teacherService.GetTeachersByCourse(ctx, query.CourseCode, opts)
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, teachers)

	case query.Department != "":
		teachers, err := c.teacherService.GetTeachersByDepartment(ctx, query.Department, opts)
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, teachers)

	case query.Name != "":
		summaries, err := c.teacherService.GetTeachersByName(ctx, query.Name, services.NameOptions{
			PageOptions: opts,
			Exact:       query.Exact,
		})
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, summaries)

	default:
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "A filter parameter is required")
		errorDetail = errorDetail.WithDetails("Supply course_code, department, or name")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
	}
}

// GetTeacherTags retrieves tag counts for a teacher
// @Summary Get teacher tags
// @Description Get the tag counts recorded for a teacher, most frequent first
// @Tags teachers
// @Produce json
// @Param id path string true "Teacher ID"
// @Param limit query int false "Page size (clamped into [1, 100])"
// @Param offset query int false "Row offset (clamped to >= 0)"
// @Success 200 {array} dto.TagResponse "Tag counts"
// @Failure 503 {object} dto.ErrorResponse "Ratings store unavailable"
// @Router /teachers/{id}/tags [get]
func (c *TeacherController) GetTeacherTags(ctx *gin.Context) {
	var query struct {
		Limit  *int `form:"limit"`
		Offset *int `form:"offset"`
	}
	if err := ctx.ShouldBindQuery(&query); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid query parameters")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	tags, err := c.teacherService.GetTeacherTags(ctx, ctx.Param("id"), services.PageOptions{
		Limit:  query.Limit,
		Offset: query.Offset,
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, tags)
}

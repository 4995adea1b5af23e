package handlers

import (
	"net/http"

	"github.com/SAP-F-2025/course-service/internal/models"
	"github.com/SAP-F-2025/course-service/internal/services"
	"github.com/SAP-F-2025/course-service/internal/utils"
	"github.com/gin-gonic/gin"
)

type GradingHandler struct {
	BaseHandler
	courseService services.CourseService
}

func NewGradingHandler(courseService services.CourseService, logger utils.Logger) *GradingHandler {
	return &GradingHandler{
		BaseHandler:   NewBaseHandler(logger),
		courseService: courseService,
	}
}

// GradeCourse grades answers against a course supplied in the body
// @Summary Grade answers
// @Tags grading
// @Accept json
// @Produce json
// @Param request body models.GradeRequest true "Course and answers"
// @Success 200 {object} models.GradingSummary
// @Failure 400 {object} ErrorResponse
// @Router /v1/courses/grade [post]
func (h *GradingHandler) GradeCourse(c *gin.Context) {
	var req models.GradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.RespondWithError(c, http.StatusBadRequest, "Invalid request payload", err, err.Error())
		return
	}
	if req.Course == nil {
		h.RespondWithError(c, http.StatusBadRequest, msgInvalidCourse, nil)
		return
	}

	c.JSON(http.StatusOK, services.Grade(req.Course, req.Answers).Summary())
}

// GradeStoredCourse grades answers against a stored course
// @Summary Grade answers for a stored course
// @Tags grading
// @Accept json
// @Produce json
// @Param id path string true "Course ID"
// @Param request body models.GradeStoredRequest true "Answers"
// @Success 200 {object} models.GradingSummary
// @Failure 404 {object} ErrorResponse
// @Router /v1/courses/{id}/grade [post]
func (h *GradingHandler) GradeStoredCourse(c *gin.Context) {
	id := ParseStringIDParam(c, "id")
	if id == "" {
		return
	}

	var req models.GradeStoredRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.RespondWithError(c, http.StatusBadRequest, "Invalid request payload", err, err.Error())
		return
	}

	summary, err := h.courseService.GradeStored(c.Request.Context(), id, req.Answers)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/SAP-F-2025/course-service/internal/models"
	"github.com/SAP-F-2025/course-service/internal/services"
	"github.com/SAP-F-2025/course-service/internal/utils"
	"github.com/gin-gonic/gin"
)

type CourseHandler struct {
	BaseHandler
	courseService services.CourseService
	exportService services.ExportService
}

// GenerateCourseRequest is the raw generate body; lessons may arrive as a number or a numeric string
type GenerateCourseRequest struct {
	Prompt  string          `json:"prompt"`
	Lessons json.RawMessage `json:"lessons"`
}

func NewCourseHandler(
	courseService services.CourseService,
	exportService services.ExportService,
	logger utils.Logger,
) *CourseHandler {
	return &CourseHandler{
		BaseHandler:   NewBaseHandler(logger),
		courseService: courseService,
		exportService: exportService,
	}
}

// GenerateCourse generates, enriches and stores a course
// @Summary Generate course
// @Tags courses
// @Accept json
// @Produce json
// @Param request body GenerateCourseRequest true "Topic and lesson count"
// @Success 200 {object} CourseResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /generate-course [post]
func (h *CourseHandler) GenerateCourse(c *gin.Context) {
	var req GenerateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.RespondWithError(c, http.StatusBadRequest, msgInvalidInput, err, err.Error())
		return
	}

	lessons, err := parseLessonCount(req.Lessons)
	if err != nil {
		h.RespondWithError(c, http.StatusBadRequest, msgInvalidInput, err, err.Error())
		return
	}

	h.LogRequest(c, "Generating course", "lessons", lessons)

	course, err := h.courseService.Generate(c.Request.Context(), models.CourseRequest{
		Topic:       req.Prompt,
		LessonCount: lessons,
	})
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, CourseResponse{Course: course})
}

// GetCourse returns a stored course
// @Summary Get course
// @Tags courses
// @Produce json
// @Param id path string true "Course ID"
// @Success 200 {object} CourseResponse
// @Failure 404 {object} ErrorResponse
// @Router /v1/courses/{id} [get]
func (h *CourseHandler) GetCourse(c *gin.Context) {
	id := ParseStringIDParam(c, "id")
	if id == "" {
		return
	}

	course, err := h.courseService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, CourseResponse{Course: course})
}

// ExportDocument renders the posted course as a PDF download
// @Summary Export course PDF
// @Tags courses
// @Accept json
// @Produce application/pdf
// @Param request body models.ExportRequest true "Course to export"
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /export-pdf [post]
func (h *CourseHandler) ExportDocument(c *gin.Context) {
	h.export(c, h.exportService.ExportDocument)
}

// ExportWorkbook renders the posted course as an xlsx download
// @Summary Export course workbook
// @Tags courses
// @Accept json
// @Param request body models.ExportRequest true "Course to export"
// @Router /v1/courses/export-workbook [post]
func (h *CourseHandler) ExportWorkbook(c *gin.Context) {
	h.export(c, h.exportService.ExportWorkbook)
}

type exportFunc func(ctx context.Context, course *models.Course) (*services.ExportResult, error)

func (h *CourseHandler) export(c *gin.Context, render exportFunc) {
	var req models.ExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.RespondWithError(c, http.StatusBadRequest, msgInvalidCourse, err, err.Error())
		return
	}

	result, err := render(c.Request.Context(), req.Course)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	writeAttachment(c, result)
}

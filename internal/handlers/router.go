package handlers

import (
	"net/http"

	"github.com/SAP-F-2025/course-service/internal/services"
	"github.com/SAP-F-2025/course-service/internal/utils"
	"github.com/gin-gonic/gin"
)

type HandlerManager struct {
	courseHandler  *CourseHandler
	gradingHandler *GradingHandler
}

func NewHandlerManager(serviceManager services.ServiceManager, logger utils.Logger) *HandlerManager {
	return &HandlerManager{
		courseHandler:  NewCourseHandler(serviceManager.Course(), serviceManager.Export(), logger),
		gradingHandler: NewGradingHandler(serviceManager.Course(), logger),
	}
}

// SetupRoutes sets up all API routes
func (hm *HandlerManager) SetupRoutes(router *gin.Engine) {
	router.GET("/health", HealthCheck)

	api := router.Group("/api")
	{
		api.POST("/generate-course", hm.courseHandler.GenerateCourse)
		api.POST("/export-pdf", hm.courseHandler.ExportDocument)
	}

	v1 := router.Group("/api/v1")
	{
		courses := v1.Group("/courses")
		{
			courses.POST("/generate", hm.courseHandler.GenerateCourse)
			courses.POST("/export-document", hm.courseHandler.ExportDocument)
			courses.POST("/export-workbook", hm.courseHandler.ExportWorkbook)
			courses.POST("/grade", hm.gradingHandler.GradeCourse)
			courses.GET("/:id", hm.courseHandler.GetCourse)
			courses.POST("/:id/grade", hm.gradingHandler.GradeStoredCourse)
		}
	}
}

func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "course-service",
	})
}

package handlers

import (
	"errors"
	"net/http"

	"github.com/SAP-F-2025/course-service/internal/models"
	"github.com/SAP-F-2025/course-service/internal/services"
	"github.com/SAP-F-2025/course-service/internal/utils"
	"github.com/gin-gonic/gin"
)

// ===== COMMON RESPONSE STRUCTURES =====

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string      `json:"error"`
	Details interface{} `json:"details,omitempty"`
	Code    string      `json:"code,omitempty"`
}

// CourseResponse wraps a single course
type CourseResponse struct {
	Course *models.Course `json:"course"`
}

const (
	msgInvalidInput  = "Invalid input. Include prompt and lessons (1-10)."
	msgInvalidCourse = "Missing or invalid course data."
	msgNotFound      = "Course not found."
	msgInternal      = "Something went wrong."
)

// ===== BASE HANDLER STRUCT =====

// BaseHandler provides common logging functionality for all handlers
type BaseHandler struct {
	logger utils.Logger
}

// NewBaseHandler creates a new base handler with logging capability
func NewBaseHandler(logger utils.Logger) BaseHandler {
	return BaseHandler{
		logger: logger,
	}
}

// requestLogger prefers the per-request logger installed by utils.ContextLogger
func (h *BaseHandler) requestLogger(c *gin.Context) utils.Logger {
	if logger, exists := c.Get("logger"); exists {
		if typed, ok := logger.(utils.Logger); ok {
			return typed
		}
	}
	return h.logger.With(
		"request_id", c.GetHeader("X-Request-ID"),
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
	)
}

// LogRequest logs incoming HTTP requests with context information
func (h *BaseHandler) LogRequest(c *gin.Context, message string, additionalFields ...interface{}) {
	fields := append([]interface{}{"remote_addr", c.ClientIP()}, additionalFields...)
	h.requestLogger(c).Info(message, fields...)
}

// LogError logs error details with context information
func (h *BaseHandler) LogError(c *gin.Context, err error, message string, additionalFields ...interface{}) {
	h.requestLogger(c).LogError(err, message, additionalFields...)
}

// LogWarn logs warning messages with context
func (h *BaseHandler) LogWarn(c *gin.Context, message string, additionalFields ...interface{}) {
	h.requestLogger(c).Warn(message, additionalFields...)
}

// RespondWithError sends a consistent error response and logs it
func (h *BaseHandler) RespondWithError(c *gin.Context, statusCode int, message string, err error, details ...interface{}) {
	errorResp := ErrorResponse{
		Error: message,
	}

	if len(details) > 0 {
		errorResp.Details = details[0]
	}

	if err != nil && statusCode >= http.StatusInternalServerError {
		h.LogError(c, err, message, "status_code", statusCode)
	} else {
		h.LogWarn(c, message, "status_code", statusCode)
	}

	c.AbortWithStatusJSON(statusCode, errorResp)
}

// HandleServiceError maps service error kinds onto HTTP responses
func (h *BaseHandler) HandleServiceError(c *gin.Context, err error) {
	var (
		inputErr  *services.InputError
		renderErr *services.RenderError
		genErr    *services.GenerationError
	)

	switch {
	case errors.As(err, &inputErr):
		h.RespondWithError(c, http.StatusBadRequest, msgInvalidInput, err, inputErr.Errors)
	case errors.As(err, &renderErr):
		h.RespondWithError(c, http.StatusBadRequest, msgInvalidCourse, err, renderErr.Reason)
	case errors.As(err, &genErr):
		h.RespondWithError(c, http.StatusInternalServerError, genErr.Cause, err)
	case services.IsNotFound(err):
		h.RespondWithError(c, http.StatusNotFound, msgNotFound, err)
	default:
		h.RespondWithError(c, http.StatusInternalServerError, msgInternal, err)
	}
}

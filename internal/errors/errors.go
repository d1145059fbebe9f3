package errors

import (
	"net/http"
	"os"

	"codeberg.org/bookshelf/server/internal/logger"
	"codeberg.org/bookshelf/server/internal/metrics"
	"github.com/gin-gonic/gin"
)

// Error Handling Guidelines:
//
// For HTTP REST handlers:
//   - Use errors.PublicError() on public routes and errors.AdminError() on admin
//     routes whenever a repository or auth call fails. Both classify the raw
//     error at the matching trust level, log it, and write the response.
//   - Use errors.BadRequest(), errors.NotFound(), etc. for failures the handler
//     detected itself and can already describe safely
//   - Never call both logger.ErrorErr() and errors.PublicError() for the same error
//
// For services/repositories/internal packages:
//   - Return wrapped errors with context using fmt.Errorf("context: %w", err)
//   - Let the caller (handler) decide how to log and respond
//   - Do not log errors in non-handler code (avoid double logging)

// standard error codes
const (
	CodeUnauthorized    = "unauthorized"
	CodeForbidden       = "forbidden"
	CodeNotFound        = "not_found"
	CodeValidationError = "validation_error"
	CodeServerError     = "server_error"
	CodeBadRequest      = "bad_request"
	CodeConflict        = "conflict"
	CodeTooManyRequests = "too_many_requests"
	CodeUnavailable     = "unavailable"
)

const classifierKey = "classifier"

var isProduction = os.Getenv("ENVIRONMENT") == "production"

// switches response details between raw text and mapped text, and the
// default classifier's diagnostic sink with them. the environment is read
// at startup; call this once config is loaded.
func SetProduction(production bool) {
	isProduction = production
	defaultClassifier.Store(newDefaultClassifier(production))
}

// installs cl as the request classifier
func Middleware(cl *Classifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(classifierKey, cl)
		c.Next()
	}
}

// returns the classifier installed by Middleware, or the default one
func FromContext(c *gin.Context) *Classifier {
	if c != nil {
		if v, ok := c.Get(classifierKey); ok {
			if cl, ok := v.(*Classifier); ok && cl != nil {
				return cl
			}
		}
	}

	return Default()
}

// responds with a public-safe message for a failed data or auth operation.
// status 0 derives the status from err.
func PublicError(c *gin.Context, status int, err error, fallback string) {
	respondClassified(c, status, err, Public, fallback)
}

// responds with an operator-level message for a failed admin operation.
// status 0 derives the status from err.
func AdminError(c *gin.Context, status int, err error, fallback string) {
	respondClassified(c, status, err, Privileged, fallback)
}

func respondClassified(c *gin.Context, status int, err error, level TrustLevel, fallback string) {
	if status == 0 {
		status = StatusFor(err)
	}

	res := FromContext(c).ClassifyResult(err, level, fallback)
	metrics.ErrorsClassified.WithLabelValues(level.String(), string(res.Category)).Inc()

	args := []any{
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
		"user_id", c.GetString("user_id"),
		"trust", level.String(),
		"category", string(res.Category),
	}

	if status >= http.StatusInternalServerError {
		logger.ErrorErr(err, fallback, args...)
	} else {
		logger.Warn(fallback, append(args, "error", err)...)
	}

	c.AbortWithStatusJSON(status, ErrorResponse{
		Error:   codeForStatus(status),
		Message: res.Message,
	})
}

// returns a 401 unauthorized error
func Unauthorized(c *gin.Context, message string) {
	if message == "" {
		message = "authentication required"
	}

	c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{
		Error:   CodeUnauthorized,
		Message: message,
	})
}

// returns a 403 forbidden error
func Forbidden(c *gin.Context, message string) {
	if message == "" {
		message = "permission denied"
	}

	c.AbortWithStatusJSON(http.StatusForbidden, ErrorResponse{
		Error:   CodeForbidden,
		Message: message,
	})
}

// returns a 404 not found error
func NotFound(c *gin.Context, resource string) {
	message := "resource not found"

	if resource != "" {
		message = resource + " not found"
	}

	c.JSON(http.StatusNotFound, ErrorResponse{
		Error:   CodeNotFound,
		Message: message,
	})
}

// returns a 400 bad request error
func BadRequest(c *gin.Context, message string, err error) {
	if message == "" {
		message = "invalid request"
	}

	response := ErrorResponse{
		Error:   CodeBadRequest,
		Message: message,
	}

	// add details if error provided
	if err != nil {
		response.Details = details(c, err)
	}

	c.JSON(http.StatusBadRequest, response)
}

// returns a 400 bad request error for validation failures
func ValidationError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Error:   CodeValidationError,
		Message: "request validation failed",
		Details: details(c, err),
	})
}

// returns a 500 internal server error
func InternalError(c *gin.Context, message string, err error) {
	if message == "" {
		message = "an error occurred"
	}

	// log full error server-side with context
	logger.ErrorErr(err, message,
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
		"user_id", c.GetString("user_id"),
	)

	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Error:   CodeServerError,
		Message: message,
		Details: details(c, err),
	})
}

// returns a 409 conflict error
func Conflict(c *gin.Context, message string) {
	if message == "" {
		message = "resource conflict"
	}

	c.JSON(http.StatusConflict, ErrorResponse{
		Error:   CodeConflict,
		Message: message,
	})
}

// returns a 429 too many requests error
func TooManyRequests(c *gin.Context, message string) {
	if message == "" {
		message = "too many requests"
	}

	c.AbortWithStatusJSON(http.StatusTooManyRequests, ErrorResponse{
		Error:   CodeTooManyRequests,
		Message: message,
	})
}

// raw detail outside production, mapped detail (or nothing) in production
func details(c *gin.Context, err error) string {
	if err == nil {
		return ""
	}

	if !isProduction {
		return err.Error()
	}

	return FromContext(c).Classify(err, Public, "")
}

func codeForStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return CodeBadRequest
	case http.StatusUnauthorized:
		return CodeUnauthorized
	case http.StatusForbidden:
		return CodeForbidden
	case http.StatusNotFound:
		return CodeNotFound
	case http.StatusConflict:
		return CodeConflict
	case http.StatusUnprocessableEntity:
		return CodeValidationError
	case http.StatusTooManyRequests:
		return CodeTooManyRequests
	case http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return CodeUnavailable
	default:
		return CodeServerError
	}
}

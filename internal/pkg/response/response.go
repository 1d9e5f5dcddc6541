package response

import (
	"net/http"
	"reflect"

	"github.com/gin-gonic/gin"
)

// Error responses share one envelope: {"ok":0,"code":<status>,"message":...}.
// Every error helper aborts the handler chain.

func fail(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{"ok": 0, "code": status, "message": message})
}

// OK sends a 200 response. Slices are wrapped in {data: [...]} so the top
// level of the body is always an object.
func OK(c *gin.Context, data interface{}) {
	if data != nil && reflect.ValueOf(data).Kind() == reflect.Slice {
		c.JSON(http.StatusOK, gin.H{"data": data})
		return
	}
	c.JSON(http.StatusOK, data)
}

// Created sends a 201 response.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// NoContent sends a 204 response.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// BadRequest sends a 400 error response.
func BadRequest(c *gin.Context, message string) {
	fail(c, http.StatusBadRequest, message)
}

// Unauthorized sends a 401 error response.
func Unauthorized(c *gin.Context) {
	fail(c, http.StatusUnauthorized, "authentication required")
}

// Forbidden sends a 403 error response.
func Forbidden(c *gin.Context) {
	fail(c, http.StatusForbidden, "admin access required")
}

// ForbiddenMsg sends a 403 error response with a custom message.
func ForbiddenMsg(c *gin.Context, message string) {
	fail(c, http.StatusForbidden, message)
}

// NotFound sends a 404 error response.
func NotFound(c *gin.Context) {
	fail(c, http.StatusNotFound, "not found")
}

// NotFoundMsg sends a 404 error response with a custom message.
func NotFoundMsg(c *gin.Context, message string) {
	fail(c, http.StatusNotFound, message)
}

// MethodNotAllowed sends a 405 error response.
func MethodNotAllowed(c *gin.Context) {
	fail(c, http.StatusMethodNotAllowed, "method not allowed")
}

// Conflict sends a 409 error response.
func Conflict(c *gin.Context, message string) {
	fail(c, http.StatusConflict, message)
}

// UnprocessableEntity sends a 422 error response.
func UnprocessableEntity(c *gin.Context, message string) {
	fail(c, http.StatusUnprocessableEntity, message)
}

// InternalError sends a 500 error response with a generic message. Store
// failures are logged by the caller; the raw error never reaches the client.
func InternalError(c *gin.Context) {
	fail(c, http.StatusInternalServerError, "something went wrong")
}

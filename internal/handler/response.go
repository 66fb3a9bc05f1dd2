package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// Response helpers. Success responses return the payload directly; error
// responses carry {"error": msg, "code": businessCode}. Service errors are
// encoded as "NNNNN:message" and the leading digits pick the HTTP status.

func Error(c *gin.Context, httpCode int, code int, message string) {
	c.JSON(httpCode, gin.H{
		"code":  code,
		"error": message,
	})
}

func BadRequest(c *gin.Context, code int, message string) {
	Error(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code int, message string) {
	Error(c, http.StatusNotFound, code, message)
}

func Conflict(c *gin.Context, code int, message string) {
	Error(c, http.StatusConflict, code, message)
}

func InternalError(c *gin.Context, message string) {
	Error(c, http.StatusInternalServerError, 50001, message)
}

// HandleServiceError translates a "NNNNN:message" service error to the
// matching HTTP response. Unknown shapes become a generic 500.
func HandleServiceError(c *gin.Context, err error) {
	code, msg := parseErrorCode(err)
	switch code / 100 {
	case 400:
		BadRequest(c, code, msg)
	case 404:
		NotFound(c, code, msg)
	case 409:
		Conflict(c, code, msg)
	default:
		InternalError(c, "internal error")
	}
}

func parseID(s string) uint {
	id, _ := strconv.ParseUint(s, 10, 64)
	return uint(id)
}

func parseErrorCode(err error) (int, string) {
	msg := err.Error()
	if len(msg) > 5 && msg[5] == ':' {
		code, e := strconv.Atoi(msg[:5])
		if e == nil {
			return code, msg[6:]
		}
	}
	return 50001, msg
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Envelope messages. Every expense response carries success; failures
// are either a 404 not-found or a 500 server error — client input
// errors are not distinguished from server faults on this surface.
const (
	msgExpenseCreated  = "Expense created successfully"
	msgExpenseUpdated  = "Expense updated successfully"
	msgExpenseDeleted  = "Expense deleted successfully"
	msgExpenseNotFound = "Expense not found"
	msgServerError     = "Server error"
)

// notFound writes the uniform 404 envelope. Used both when the record
// does not exist and when it belongs to another user.
func (h *Handler) notFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{
		"success": false,
		"message": msgExpenseNotFound,
	})
}

// serverError logs err and writes the uniform 500 envelope with the raw
// error detail.
func (h *Handler) serverError(c *gin.Context, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(http.StatusInternalServerError, gin.H{
		"success": false,
		"message": msgServerError,
		"error":   err.Error(),
	})
}

// README: Base handler utilities (JSON helpers, error mapping).
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tripcost/internal/modules/estimate"
)

type errorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg, detail string) {
	writeJSON(c, status, errorResponse{Error: msg, Detail: detail})
}

// writeEstimateError answers 200 with the structured payload; callers inspect the "error" key.
func writeEstimateError(c *gin.Context, err error) {
	var e *estimate.Error
	if errors.As(err, &e) {
		writeJSON(c, http.StatusOK, e.Payload())
		return
	}
	_ = c.Error(err)
	writeError(c, http.StatusInternalServerError, "internal error", "")
}

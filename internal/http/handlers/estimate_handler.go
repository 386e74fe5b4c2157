// README: Travel estimate handler (prompt the model, return parsed cost ranges).
package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tripcost/internal/http/middleware"
	"tripcost/internal/modules/estimate"
)

type EstimateHandler struct {
	estimate *estimate.Service
	logger   *zap.Logger
}

func NewEstimateHandler(svc *estimate.Service, logger *zap.Logger) *EstimateHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EstimateHandler{estimate: svc, logger: logger}
}

// Pointers so a missing field fails binding while zero values ("" or 0) still pass.
type estimateReq struct {
	Location      *string `json:"location" binding:"required"`
	Accommodation *string `json:"accommodation" binding:"required"`
	People        *headcount `json:"people" binding:"required"`
	Season        *string    `json:"season" binding:"required"`
}

// headcount accepts 2, 2.0 and "2" alike. Fractions, booleans and non-numeric strings are rejected.
type headcount int

func (n *headcount) UnmarshalJSON(b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return err
	}

	var s string
	switch t := v.(type) {
	case json.Number:
		s = t.String()
	case string:
		s = strings.TrimSpace(t)
	default:
		return fmt.Errorf("people: expected an integer, got %s", b)
	}

	if i, err := strconv.Atoi(s); err == nil {
		*n = headcount(i)
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != math.Trunc(f) || math.Abs(f) > 1<<53 {
		return fmt.Errorf("people: expected an integer, got %s", b)
	}
	*n = headcount(f)
	return nil
}

// Create handles POST /api/estimate.
func (h *EstimateHandler) Create(c *gin.Context) {
	var req estimateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Debug("estimate: bad request body",
			zap.String("request_id", middleware.RequestID(c)),
			zap.Error(err),
		)
		writeError(c, http.StatusUnprocessableEntity, "invalid request body", err.Error())
		return
	}

	res, err := h.estimate.Estimate(c.Request.Context(), estimate.Request{
		Location:      *req.Location,
		Accommodation: *req.Accommodation,
		People:        int(*req.People),
		Season:        *req.Season,
	})
	if err != nil {
		writeEstimateError(c, err)
		return
	}

	writeJSON(c, http.StatusOK, res)
}

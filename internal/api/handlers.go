package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/stepgraph/core"
	"github.com/katalvlaran/stepgraph/internal/engine"
	"github.com/katalvlaran/stepgraph/internal/render"
	"github.com/katalvlaran/stepgraph/path"
)

// maxBodyBytes bounds the request body of /run-algorithm.
const maxBodyBytes = 4 << 20

type errorResponse struct {
	Error string `json:"error"`
}

type handlers struct {
	eng *engine.Engine
}

func (h *handlers) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *handlers) runAlgorithm(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes)

	var req engine.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusBadRequest, errorResponse{Error: "malformed request: " + err.Error()})
		return
	}

	out, err := h.eng.Run(&req)
	if err != nil {
		_ = c.Error(err)
		status := http.StatusInternalServerError
		if errors.Is(err, core.ErrInvalidArgument) {
			status = http.StatusBadRequest
		}
		c.JSON(status, errorResponse{Error: err.Error()})
		return
	}

	resp := outcomeJSON(out)
	if c.Query("diagram") == "mermaid" {
		resp["diagram"] = render.Outcome(out)
	}
	c.JSON(http.StatusOK, resp)
}

// outcomeJSON shapes an Outcome for the wire.
func outcomeJSON(out *engine.Outcome) gin.H {
	resp := gin.H{
		"algorithm": out.Algorithm.String(),
		"steps":     out.Steps,
	}
	switch {
	case out.Algorithm.Traversal():
		resp["path"] = nonNil(out.Order)
	case out.Algorithm.ProducesDistances():
		resp["path"] = nonNil(out.Path)
		resp["dist"] = distances(out.Dist)
		if out.NegativeCycle {
			resp["negative_cycle"] = true
		}
	default:
		resp["path"] = nonNil(out.Path)
		resp["cost"] = finite(out.Cost)
	}

	return resp
}

// distances encodes path.Inf as null; a nil slice stays null.
func distances(d []int64) []*int64 {
	if d == nil {
		return nil
	}
	out := make([]*int64, len(d))
	for i := range d {
		out[i] = finite(d[i])
	}

	return out
}

func finite(v int64) *int64 {
	if v == path.Inf {
		return nil
	}

	return &v
}

func nonNil(p []int) []int {
	if p == nil {
		return []int{}
	}

	return p
}

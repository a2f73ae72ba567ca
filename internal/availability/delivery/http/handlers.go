package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"smart-task-scheduler/internal/availability"
	"smart-task-scheduler/internal/middleware"
	"smart-task-scheduler/internal/model"
	pkgErrors "smart-task-scheduler/pkg/errors"
	"smart-task-scheduler/pkg/log"
	"smart-task-scheduler/pkg/response"
)

// Handler exposes calendar availability snapshots.
type Handler interface {
	Snapshot(c *gin.Context)
}

type handler struct {
	l   log.Logger
	svc *availability.Service
}

// New creates a new HTTP handler for the availability domain.
func New(l log.Logger, svc *availability.Service) *handler {
	return &handler{l: l, svc: svc}
}

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.GET("/snapshot", mw.Auth(), mw.RateLimit(), h.Snapshot)
}

type snapshotReq struct {
	UserID string    `form:"userId" binding:"required"`
	From   time.Time `form:"from"   binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
	To     time.Time `form:"to"     binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
}

type windowResp struct {
	Date        time.Time  `json:"date"`
	Slots       []slotResp `json:"slots"`
	FreeMinutes int        `json:"freeMinutes"`
	BusyMinutes int        `json:"busyMinutes"`
}

type slotResp struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

type bookingResp struct {
	ID      string    `json:"id"`
	TaskID  string    `json:"taskId,omitempty"`
	Content string    `json:"content"`
	Start   time.Time `json:"start"`
	End     time.Time `json:"end"`
	Managed bool      `json:"managed"`
}

type snapshotResp struct {
	Windows  []windowResp  `json:"windows"`
	Existing []bookingResp `json:"existing"`
	TakenAt  time.Time     `json:"takenAt"`
}

// Snapshot godoc
// @Summary     Calendar availability snapshot
// @Description Returns per-day free/busy windows and existing bookings for a user and range.
// @Tags        Availability
// @Accept      json
// @Produce     json
// @Param       userId query string true  "User id"
// @Param       from   query string true  "Range start (RFC3339)"
// @Param       to     query string true  "Range end (RFC3339)"
// @Success     200 {object} snapshotResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     502 {object} response.Resp "Calendar unavailable"
// @Router      /api/v1/availability/snapshot [GET]
func (h *handler) Snapshot(c *gin.Context) {
	ctx := c.Request.Context()

	var req snapshotReq
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, err)
		return
	}
	if !req.To.After(req.From) {
		response.Error(c, pkgErrors.NewHTTPError(400, "to must be after from"))
		return
	}

	sc := model.Scope{UserID: req.UserID}
	snap, err := h.svc.Snapshot(ctx, sc, req.From, req.To, model.DefaultPreferences(req.UserID))
	if err != nil {
		h.l.Errorf(ctx, "availability.Snapshot: %v", err)
		response.Error(c, pkgErrors.NewHTTPError(502, "calendar unavailable"))
		return
	}

	response.OK(c, newSnapshotResp(snap))
}

func newSnapshotResp(snap availability.Snapshot) snapshotResp {
	resp := snapshotResp{TakenAt: snap.TakenAt}
	for _, w := range snap.Windows {
		wr := windowResp{
			Date:        w.Date,
			FreeMinutes: w.FreeMinutes,
			BusyMinutes: w.BusyMinutes,
		}
		for _, s := range w.Slots {
			wr.Slots = append(wr.Slots, slotResp{Start: s.Start, End: s.End})
		}
		resp.Windows = append(resp.Windows, wr)
	}
	for _, b := range snap.Existing {
		resp.Existing = append(resp.Existing, bookingResp{
			ID:      b.ID,
			TaskID:  b.TaskID,
			Content: b.Content,
			Start:   b.Start,
			End:     b.End,
			Managed: b.Managed,
		})
	}
	return resp
}

package handler

import (
	"net/http"
	"time"

	"habitboard/internal/logger"
	"habitboard/internal/model"
	"habitboard/internal/service"

	"github.com/gin-gonic/gin"
)

type TrackerHandler struct {
	tracker *service.TrackerService
	loc     *time.Location
}

func NewTrackerHandler(tracker *service.TrackerService, loc *time.Location) *TrackerHandler {
	return &TrackerHandler{tracker: tracker, loc: loc}
}

// Show lists the goals scheduled for the requested date (query param
// "date", defaulting to today) with their completion state.
func (h *TrackerHandler) Show(c *gin.Context) {
	day := service.ParseDay(c.Query("date"), h.loc)
	uid := c.GetInt("user_id")

	goals, err := h.tracker.GoalsForDate(c.Request.Context(), uid, day)
	if err != nil {
		logger.Error("tracker.show failed", "err", err, "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, model.TrackerResponse{
		Today:        time.Now().In(h.loc).Format(service.DateLayout),
		SelectedDate: day.Format(service.DateLayout),
		Goals:        goals,
	})
}

// Update applies the submitted completion flags to every owned goal
// for the selected date. A missing or malformed date falls back to
// today rather than failing.
func (h *TrackerHandler) Update(c *gin.Context) {
	var req model.TrackerUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	day := service.ParseDay(req.Date, h.loc)
	uid := c.GetInt("user_id")

	if err := h.tracker.Apply(c.Request.Context(), uid, day, req.Completed); err != nil {
		logger.Error("tracker.update failed", "err", err, "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	logger.Info("tracker.update", "uid", uid, "date", day.Format(service.DateLayout), "flags", len(req.Completed))
	c.JSON(http.StatusOK, gin.H{"ok": true, "selected_date": day.Format(service.DateLayout)})
}

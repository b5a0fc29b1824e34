package handler

import (
	"net/http"
	"time"

	"habitboard/internal/logger"
	"habitboard/internal/service"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	stats *service.StatsService
	loc   *time.Location
}

func NewStatsHandler(stats *service.StatsService, loc *time.Location) *StatsHandler {
	return &StatsHandler{stats: stats, loc: loc}
}

func (h *StatsHandler) today() time.Time {
	now := time.Now().In(h.loc)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, h.loc)
}

func (h *StatsHandler) Dashboard(c *gin.Context) {
	uid := c.GetInt("user_id")
	resp, err := h.stats.Dashboard(c.Request.Context(), uid, h.today())
	if err != nil {
		logger.Error("dashboard failed", "err", err, "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *StatsHandler) Leaderboard(c *gin.Context) {
	entries, err := h.stats.Leaderboard(c.Request.Context(), h.today())
	if err != nil {
		logger.Error("leaderboard failed", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, entries)
}

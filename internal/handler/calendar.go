package handler

import (
	"net/http"
	"strconv"
	"time"

	"habitboard/internal/logger"
	"habitboard/internal/service"

	"github.com/gin-gonic/gin"
)

type CalendarHandler struct {
	calendar *service.CalendarService
	loc      *time.Location
}

func NewCalendarHandler(calendar *service.CalendarService, loc *time.Location) *CalendarHandler {
	return &CalendarHandler{calendar: calendar, loc: loc}
}

// Month serves /calendar and /calendar/:year/:month. Missing params
// mean the current month; out-of-range months roll into the adjacent
// year inside the service.
func (h *CalendarHandler) Month(c *gin.Context) {
	today := time.Now().In(h.loc)
	year, month := today.Year(), int(today.Month())

	if y := c.Param("year"); y != "" {
		m := c.Param("month")
		py, err1 := strconv.Atoi(y)
		pm, err2 := strconv.Atoi(m)
		if err1 != nil || err2 != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid year or month"})
			return
		}
		year, month = py, pm
	}

	uid := c.GetInt("user_id")
	resp, err := h.calendar.Month(c.Request.Context(), uid, year, month, today)
	if err != nil {
		logger.Error("calendar failed", "err", err, "uid", uid, "year", year, "month", month)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

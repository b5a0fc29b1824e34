package handler

import (
	"net/http"

	"habitboard/internal/logger"
	"habitboard/internal/model"
	"habitboard/internal/service"

	"github.com/gin-gonic/gin"
)

// WhitelistHandler is mounted behind AdminRequired.
type WhitelistHandler struct{ whitelist *service.WhitelistService }

func NewWhitelistHandler(whitelist *service.WhitelistService) *WhitelistHandler {
	return &WhitelistHandler{whitelist: whitelist}
}

func (h *WhitelistHandler) List(c *gin.Context) {
	entries, err := h.whitelist.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, entries)
}

func (h *WhitelistHandler) Upsert(c *gin.Context) {
	var req model.WhitelistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if err := h.whitelist.Upsert(c.Request.Context(), req.Email, req.Active); err != nil {
		logger.Error("whitelist.upsert failed", "err", err, "email", req.Email)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	logger.Info("whitelist.upsert", "email", req.Email, "active", req.Active, "by", c.GetString("user_name"))
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

package handler

import (
	"errors"
	"net/http"
	"strconv"

	"habitboard/internal/logger"
	"habitboard/internal/model"
	"habitboard/internal/service"

	"github.com/gin-gonic/gin"
)

type GoalHandler struct{ goals *service.GoalService }

func NewGoalHandler(goals *service.GoalService) *GoalHandler { return &GoalHandler{goals: goals} }

func (h *GoalHandler) List(c *gin.Context) {
	goals, err := h.goals.Goals(c.Request.Context(), c.GetInt("user_id"))
	if err != nil {
		logger.Error("goal.list failed", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, goals)
}

func (h *GoalHandler) Create(c *gin.Context) {
	var req model.GoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	uid := c.GetInt("user_id")
	g, err := h.goals.Create(c.Request.Context(), uid, req)
	if err != nil {
		logger.Error("goal.create failed", "err", err, "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	logger.Info("goal.create", "uid", uid, "goal_id", g.ID, "name", g.Name)
	c.JSON(http.StatusOK, g)
}

func (h *GoalHandler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	g, err := h.goals.Goal(c.Request.Context(), c.GetInt("user_id"), id)
	if errors.Is(err, service.ErrGoalNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "goal not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, g)
}

func (h *GoalHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	var req model.GoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	uid := c.GetInt("user_id")
	g, err := h.goals.Update(c.Request.Context(), uid, id, req)
	if errors.Is(err, service.ErrGoalNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "goal not found"})
		return
	}
	if err != nil {
		logger.Error("goal.update failed", "err", err, "uid", uid, "goal_id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, g)
}

func (h *GoalHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	uid := c.GetInt("user_id")
	err = h.goals.Delete(c.Request.Context(), uid, id)
	if errors.Is(err, service.ErrGoalNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "goal not found"})
		return
	}
	if err != nil {
		logger.Error("goal.delete failed", "err", err, "uid", uid, "goal_id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	logger.Info("goal.delete", "uid", uid, "goal_id", id)
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *GoalHandler) Challenges(c *gin.Context) {
	challenges, err := h.goals.Challenges(c.Request.Context(), c.GetInt("user_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, challenges)
}

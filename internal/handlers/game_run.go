package handlers

import (
	"errors"
	"net/http"

	"github.com/NathanMcCormack/Quiz-Web-Game-FYP2025/internal/services"

	"github.com/gin-gonic/gin"
)

type GameRunHandler struct {
	runs *services.GameRunService
}

func NewGameRunHandler(runs *services.GameRunService) *GameRunHandler {
	return &GameRunHandler{runs: runs}
}

type GameRunRequest struct {
	Score          *int    `json:"score" binding:"required,min=0"`
	Streak         *int    `json:"streak" binding:"required,min=0"`
	TotalQuestions *int    `json:"total_questions" binding:"omitempty,min=0"`
	Category       *string `json:"category" binding:"omitempty,max=64,category"`
}

// CreateRun godoc
// @Summary      Record one finished game run for a user
// @Tags         runs
// @Accept       json
// @Produce      json
// @Param        uid path int true "User ID"
// @Param        request body GameRunRequest true "Run data"
// @Success      201 {object} models.GameRun
// @Failure      422 {object} ErrorResponse
// @Router       /api/users/{uid}/runs [post]
func (h *GameRunHandler) CreateRun(c *gin.Context) {
	userID, ok := pathID(c, "uid")
	if !ok {
		return
	}

	var req GameRunRequest
	if !bindJSON(c, &req) {
		return
	}

	run, err := h.runs.Create(userID, services.GameRunInput{
		Score:          *req.Score,
		Streak:         *req.Streak,
		TotalQuestions: req.TotalQuestions,
		Category:       req.Category,
	})
	if err != nil {
		if errors.Is(err, services.ErrDuplicate) {
			c.JSON(http.StatusConflict, ErrorResponse{Detail: "Run creation failed"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Detail: "failed to record run"})
		return
	}
	c.JSON(http.StatusCreated, run)
}

// UserStats godoc
// @Summary      Aggregate stats over a user's runs
// @Tags         runs
// @Produce      json
// @Param        uid path int true "User ID"
// @Success      200 {object} models.UserStats
// @Router       /api/users/{uid}/stats [get]
func (h *GameRunHandler) UserStats(c *gin.Context) {
	userID, ok := pathID(c, "uid")
	if !ok {
		return
	}

	stats, err := h.runs.StatsForUser(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Detail: "failed to compute stats"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

// Leaderboard godoc
// @Summary      Best score and streak per user, best first
// @Tags         runs
// @Produce      json
// @Success      200 {array} models.LeaderboardEntry
// @Router       /api/leaderboard [get]
func (h *GameRunHandler) Leaderboard(c *gin.Context) {
	entries, err := h.runs.Leaderboard()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Detail: "failed to build leaderboard"})
		return
	}
	c.JSON(http.StatusOK, entries)
}

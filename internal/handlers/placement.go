package handlers

import (
	"errors"
	"net/http"

	"github.com/NathanMcCormack/Quiz-Web-Game-FYP2025/internal/services"

	"github.com/gin-gonic/gin"
)

type PlacementRequest struct {
	PlacedQuestionID uint  `json:"placed_question_id" binding:"required"`
	LeftNeighborID   *uint `json:"left_neighbor_id"`
	RightNeighborID  *uint `json:"right_neighbor_id"`
}

// ValidatePlacement godoc
// @Summary      Check a question's position on the number line
// @Description  Correct when the placed question's answer sits between its
// @Description  neighbours' answers; a missing neighbour leaves that side open.
// @Tags         game
// @Accept       json
// @Produce      json
// @Param        request body PlacementRequest true "Placement to check"
// @Success      200 {object} services.PlacementResult
// @Failure      404 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Router       /api/game/validate-placement [post]
func (h *QuestionHandler) ValidatePlacement(c *gin.Context) {
	var req PlacementRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.questions.ValidatePlacement(req.PlacedQuestionID, req.LeftNeighborID, req.RightNeighborID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Detail: "Question not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Detail: "failed to validate placement"})
		return
	}
	c.JSON(http.StatusOK, result)
}

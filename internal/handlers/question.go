package handlers

import (
	"errors"
	"net/http"

	"github.com/NathanMcCormack/Quiz-Web-Game-FYP2025/internal/services"

	"github.com/gin-gonic/gin"
)

type QuestionHandler struct {
	questions *services.QuestionService
}

func NewQuestionHandler(questions *services.QuestionService) *QuestionHandler {
	return &QuestionHandler{questions: questions}
}

type QuestionRequest struct {
	Question   string `json:"question" binding:"required,min=1,max=500"`
	Answer     *int   `json:"answer" binding:"required,min=0"`
	Category   string `json:"category" binding:"required,max=64,category"`
	Difficulty string `json:"difficulty" binding:"required,oneof=easy medium hard"`
}

type QuestionPatchRequest struct {
	Question   *string `json:"question" binding:"omitempty,min=1,max=500"`
	Answer     *int    `json:"answer" binding:"omitempty,min=0"`
	Category   *string `json:"category" binding:"omitempty,max=64,category"`
	Difficulty *string `json:"difficulty" binding:"omitempty,oneof=easy medium hard"`
}

// ListQuestions godoc
// @Summary      List all questions
// @Tags         questions
// @Produce      json
// @Success      200 {array} models.Question
// @Router       /api/questions [get]
func (h *QuestionHandler) ListQuestions(c *gin.Context) {
	questions, err := h.questions.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Detail: "failed to list questions"})
		return
	}
	c.JSON(http.StatusOK, questions)
}

// RandomQuestion godoc
// @Summary      Fetch one random question, answer hidden
// @Tags         questions
// @Produce      json
// @Success      200 {object} models.PublicQuestion
// @Failure      404 {object} ErrorResponse
// @Router       /api/questions/random [get]
func (h *QuestionHandler) RandomQuestion(c *gin.Context) {
	question, err := h.questions.Random()
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Detail: "No questions available"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Detail: "failed to fetch question"})
		return
	}
	c.JSON(http.StatusOK, question.Public())
}

// GetQuestion godoc
// @Summary      Fetch one question by id
// @Tags         questions
// @Produce      json
// @Param        id path int true "Question ID"
// @Success      200 {object} models.Question
// @Failure      404 {object} ErrorResponse
// @Router       /api/questions/{id} [get]
func (h *QuestionHandler) GetQuestion(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	question, err := h.questions.GetByID(id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Detail: "Question not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Detail: "failed to fetch question"})
		return
	}
	c.JSON(http.StatusOK, question)
}

// CreateQuestion godoc
// @Summary      Create a question
// @Tags         questions
// @Accept       json
// @Produce      json
// @Param        request body QuestionRequest true "Question data"
// @Success      201 {object} models.Question
// @Failure      422 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Router       /api/questions [post]
func (h *QuestionHandler) CreateQuestion(c *gin.Context) {
	var req QuestionRequest
	if !bindJSON(c, &req) {
		return
	}

	question, err := h.questions.Create(services.QuestionInput{
		Question:   req.Question,
		Answer:     *req.Answer,
		Category:   req.Category,
		Difficulty: req.Difficulty,
	})
	if err != nil {
		if errors.Is(err, services.ErrDuplicate) {
			c.JSON(http.StatusConflict, ErrorResponse{Detail: "Question creation failed"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Detail: "failed to create question"})
		return
	}
	c.JSON(http.StatusCreated, question)
}

// UpdateQuestion godoc
// @Summary      Replace every field of a question
// @Tags         questions
// @Accept       json
// @Produce      json
// @Param        id path int true "Question ID"
// @Param        request body QuestionRequest true "Question data"
// @Success      200 {object} models.Question
// @Failure      404 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Router       /api/questions/{id} [put]
func (h *QuestionHandler) UpdateQuestion(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req QuestionRequest
	if !bindJSON(c, &req) {
		return
	}

	question, err := h.questions.Update(id, services.QuestionInput{
		Question:   req.Question,
		Answer:     *req.Answer,
		Category:   req.Category,
		Difficulty: req.Difficulty,
	})
	if err != nil {
		h.answerMutationError(c, err)
		return
	}
	c.JSON(http.StatusOK, question)
}

// PatchQuestion godoc
// @Summary      Update only the fields present in the payload
// @Tags         questions
// @Accept       json
// @Produce      json
// @Param        id path int true "Question ID"
// @Param        request body QuestionPatchRequest true "Partial question data"
// @Success      200 {object} models.Question
// @Failure      404 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Router       /api/questions/{id} [patch]
func (h *QuestionHandler) PatchQuestion(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req QuestionPatchRequest
	if !bindJSON(c, &req) {
		return
	}

	question, err := h.questions.Patch(id, services.QuestionPatch{
		Question:   req.Question,
		Answer:     req.Answer,
		Category:   req.Category,
		Difficulty: req.Difficulty,
	})
	if err != nil {
		h.answerMutationError(c, err)
		return
	}
	c.JSON(http.StatusOK, question)
}

// DeleteQuestion godoc
// @Summary      Delete a question
// @Tags         questions
// @Param        id path int true "Question ID"
// @Success      204
// @Failure      404 {object} ErrorResponse
// @Router       /api/questions/{id} [delete]
func (h *QuestionHandler) DeleteQuestion(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.questions.Delete(id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Detail: "Question not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Detail: "failed to delete question"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *QuestionHandler) answerMutationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Detail: "Question not found"})
	case errors.Is(err, services.ErrDuplicate):
		c.JSON(http.StatusConflict, ErrorResponse{Detail: "Question update failed"})
	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{Detail: "failed to update question"})
	}
}

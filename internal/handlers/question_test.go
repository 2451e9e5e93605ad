package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createQuestion(t *testing.T, r *gin.Engine, question string, answer int, category, difficulty string) map[string]any {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/questions", gin.H{
		"question":   question,
		"answer":     answer,
		"category":   category,
		"difficulty": difficulty,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decode(t, w)
}

func TestHealth(t *testing.T) {
	r, _ := newGameServer(t)

	w := doJSON(t, r, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, map[string]any{"status": "ok"}, decode(t, w))
}

func TestCreateAndGetQuestion(t *testing.T) {
	r, _ := newGameServer(t)

	created := createQuestion(t, r, "When was the Declaration of Independence signed?", 1776, "History", "easy")
	require.Contains(t, created, "id")
	assert.Equal(t, float64(1776), created["answer"])

	w := doJSON(t, r, http.MethodGet, "/api/questions/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	got := decode(t, w)
	assert.Equal(t, created["id"], got["id"])
	assert.Equal(t, "When was the Declaration of Independence signed?", got["question"])
	assert.Equal(t, float64(1776), got["answer"])
	assert.Equal(t, "History", got["category"])
	assert.Equal(t, "easy", got["difficulty"])
}

func TestCreateQuestionValidation(t *testing.T) {
	r, _ := newGameServer(t)

	cases := []gin.H{
		// negative answer
		{"question": "Testing", "answer": -1, "category": "History", "difficulty": "easy"},
		// category must be alphabetic words
		{"question": "Testing", "answer": 1, "category": "01010101", "difficulty": "easy"},
		// category may have at most two words
		{"question": "Testing", "answer": 1, "category": "one two three", "difficulty": "easy"},
		// difficulty outside the enum
		{"question": "Bad difficulty", "answer": 1, "category": "History", "difficulty": "impossible"},
		// empty question text
		{"question": "", "answer": 1, "category": "History", "difficulty": "easy"},
	}
	for _, payload := range cases {
		w := doJSON(t, r, http.MethodPost, "/api/questions", payload)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code, w.Body.String())
	}

	// nothing was persisted
	w := doJSON(t, r, http.MethodGet, "/api/questions", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeList(t, w))
}

func TestListQuestionsOrderedByID(t *testing.T) {
	r, _ := newGameServer(t)

	createQuestion(t, r, "Q1", 1, "History", "easy")
	createQuestion(t, r, "Q2", 2, "Science", "medium")
	createQuestion(t, r, "Q3", 3, "General Knowledge", "hard")

	w := doJSON(t, r, http.MethodGet, "/api/questions", nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := decodeList(t, w)
	require.Len(t, list, 3)
	assert.Equal(t, float64(1), list[0]["id"])
	assert.Equal(t, float64(2), list[1]["id"])
	assert.Equal(t, float64(3), list[2]["id"])
}

func TestRandomQuestionEmptyReturns404(t *testing.T) {
	r, _ := newGameServer(t)

	w := doJSON(t, r, http.MethodGet, "/api/questions/random", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, map[string]any{"detail": "No questions available"}, decode(t, w))
}

func TestRandomQuestionHidesAnswer(t *testing.T) {
	r, _ := newGameServer(t)
	created := createQuestion(t, r, "Pick me", 42, "Maths", "medium")

	w := doJSON(t, r, http.MethodGet, "/api/questions/random", nil)
	require.Equal(t, http.StatusOK, w.Code)
	got := decode(t, w)
	assert.Equal(t, created["id"], got["id"])
	assert.Equal(t, "Pick me", got["question"])
	assert.NotContains(t, got, "answer")
}

func TestGetQuestionNotFound(t *testing.T) {
	r, _ := newGameServer(t)

	w := doJSON(t, r, http.MethodGet, "/api/questions/9999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, map[string]any{"detail": "Question not found"}, decode(t, w))
}

func TestPutUpdateQuestion(t *testing.T) {
	r, _ := newGameServer(t)
	created := createQuestion(t, r, "Q1", 10, "History", "easy")

	w := doJSON(t, r, http.MethodPut, "/api/questions/1", gin.H{
		"question":   "Q1 updated",
		"answer":     11,
		"category":   "History",
		"difficulty": "medium",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body := decode(t, w)
	assert.Equal(t, created["id"], body["id"])
	assert.Equal(t, "Q1 updated", body["question"])
	assert.Equal(t, float64(11), body["answer"])
	assert.Equal(t, "medium", body["difficulty"])
}

func TestPutUpdateQuestionNotFound(t *testing.T) {
	r, _ := newGameServer(t)

	w := doJSON(t, r, http.MethodPut, "/api/questions/12345", gin.H{
		"question":   "X",
		"answer":     1,
		"category":   "History",
		"difficulty": "easy",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, map[string]any{"detail": "Question not found"}, decode(t, w))
}

func TestPatchQuestionSubsetOfFields(t *testing.T) {
	r, _ := newGameServer(t)
	createQuestion(t, r, "Q1", 10, "History", "easy")

	w := doJSON(t, r, http.MethodPatch, "/api/questions/1", gin.H{"answer": 99})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body := decode(t, w)
	assert.Equal(t, float64(99), body["answer"])
	assert.Equal(t, "Q1", body["question"])
	assert.Equal(t, "History", body["category"])
	assert.Equal(t, "easy", body["difficulty"])
}

func TestPatchQuestionEmptyPayload(t *testing.T) {
	r, _ := newGameServer(t)
	createQuestion(t, r, "Q1", 10, "History", "easy")

	w := doJSON(t, r, http.MethodPatch, "/api/questions/1", gin.H{})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body := decode(t, w)
	assert.Equal(t, "Q1", body["question"])
	assert.Equal(t, float64(10), body["answer"])
	assert.Equal(t, "History", body["category"])
	assert.Equal(t, "easy", body["difficulty"])
}

func TestPatchQuestionValidation(t *testing.T) {
	r, _ := newGameServer(t)
	createQuestion(t, r, "Q1", 10, "History", "easy")

	w := doJSON(t, r, http.MethodPatch, "/api/questions/1", gin.H{"difficulty": "impossible"})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = doJSON(t, r, http.MethodPatch, "/api/questions/1", gin.H{"answer": -5})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	// record untouched
	w = doJSON(t, r, http.MethodGet, "/api/questions/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(10), decode(t, w)["answer"])
}

func TestDeleteQuestionThen404(t *testing.T) {
	r, _ := newGameServer(t)
	createQuestion(t, r, "Q1", 10, "History", "easy")

	w := doJSON(t, r, http.MethodDelete, "/api/questions/1", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())

	w = doJSON(t, r, http.MethodGet, "/api/questions/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, map[string]any{"detail": "Question not found"}, decode(t, w))
}

func TestDeleteQuestionNotFound(t *testing.T) {
	r, _ := newGameServer(t)

	w := doJSON(t, r, http.MethodDelete, "/api/questions/9999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, map[string]any{"detail": "Question not found"}, decode(t, w))
}

package services

import (
	"github.com/NathanMcCormack/Quiz-Web-Game-FYP2025/internal/models"

	"gorm.io/gorm"
)

type QuestionService struct {
	db *gorm.DB
}

func NewQuestionService(db *gorm.DB) *QuestionService {
	return &QuestionService{db: db}
}

type QuestionInput struct {
	Question   string
	Answer     int
	Category   string
	Difficulty string
}

// QuestionPatch carries a partial update; nil fields are left untouched.
type QuestionPatch struct {
	Question   *string
	Answer     *int
	Category   *string
	Difficulty *string
}

func (s *QuestionService) List() ([]models.Question, error) {
	var questions []models.Question
	if err := s.db.Order("id ASC").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (s *QuestionService) GetByID(id uint) (*models.Question, error) {
	var question models.Question
	if err := s.db.First(&question, id).Error; err != nil {
		return nil, translate(err)
	}
	return &question, nil
}

// Random picks one question uniformly across the whole bank.
// Returns ErrNotFound when the bank is empty.
func (s *QuestionService) Random() (*models.Question, error) {
	var question models.Question
	if err := s.db.Order("RANDOM()").Take(&question).Error; err != nil {
		return nil, translate(err)
	}
	return &question, nil
}

func (s *QuestionService) Create(input QuestionInput) (*models.Question, error) {
	question := models.Question{
		Question:   input.Question,
		Answer:     input.Answer,
		Category:   input.Category,
		Difficulty: input.Difficulty,
	}
	if err := s.db.Create(&question).Error; err != nil {
		return nil, translate(err)
	}
	return &question, nil
}

// Update overwrites every field of an existing question.
func (s *QuestionService) Update(id uint, input QuestionInput) (*models.Question, error) {
	var question models.Question
	if err := s.db.First(&question, id).Error; err != nil {
		return nil, translate(err)
	}

	question.Question = input.Question
	question.Answer = input.Answer
	question.Category = input.Category
	question.Difficulty = input.Difficulty

	if err := s.db.Save(&question).Error; err != nil {
		return nil, translate(err)
	}
	return &question, nil
}

// Patch applies only the fields the caller actually sent. An empty patch
// still bumps updated_at, nothing else.
func (s *QuestionService) Patch(id uint, patch QuestionPatch) (*models.Question, error) {
	var question models.Question
	if err := s.db.First(&question, id).Error; err != nil {
		return nil, translate(err)
	}

	if patch.Question != nil {
		question.Question = *patch.Question
	}
	if patch.Answer != nil {
		question.Answer = *patch.Answer
	}
	if patch.Category != nil {
		question.Category = *patch.Category
	}
	if patch.Difficulty != nil {
		question.Difficulty = *patch.Difficulty
	}

	if err := s.db.Save(&question).Error; err != nil {
		return nil, translate(err)
	}
	return &question, nil
}

func (s *QuestionService) Delete(id uint) error {
	result := s.db.Delete(&models.Question{}, id)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// PlacementResult reports whether a question was placed on the number line
// in a position consistent with its neighbours' answers.
type PlacementResult struct {
	Correct      bool `json:"correct"`
	PlacedAnswer int  `json:"placed_answer"`
	LeftAnswer   *int `json:"left_answer"`
	RightAnswer  *int `json:"right_answer"`
}

// ValidatePlacement checks placed against its optional neighbours: the
// placement is correct when left.answer <= placed.answer <= right.answer,
// with a missing neighbour leaving that side unbounded.
func (s *QuestionService) ValidatePlacement(placedID uint, leftID, rightID *uint) (*PlacementResult, error) {
	placed, err := s.GetByID(placedID)
	if err != nil {
		return nil, err
	}

	result := PlacementResult{Correct: true, PlacedAnswer: placed.Answer}

	if leftID != nil {
		left, err := s.GetByID(*leftID)
		if err != nil {
			return nil, err
		}
		result.LeftAnswer = &left.Answer
		if placed.Answer < left.Answer {
			result.Correct = false
		}
	}
	if rightID != nil {
		right, err := s.GetByID(*rightID)
		if err != nil {
			return nil, err
		}
		result.RightAnswer = &right.Answer
		if placed.Answer > right.Answer {
			result.Correct = false
		}
	}

	return &result, nil
}

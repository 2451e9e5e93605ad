package services

import (
	"math"

	"github.com/NathanMcCormack/Quiz-Web-Game-FYP2025/internal/models"

	"gorm.io/gorm"
)

type GameRunService struct {
	db *gorm.DB
}

func NewGameRunService(db *gorm.DB) *GameRunService {
	return &GameRunService{db: db}
}

type GameRunInput struct {
	Score          int
	Streak         int
	TotalQuestions *int
	Category       *string
}

func (s *GameRunService) Create(userID uint, input GameRunInput) (*models.GameRun, error) {
	run := models.GameRun{
		UserID:         userID,
		Score:          input.Score,
		Streak:         input.Streak,
		TotalQuestions: input.TotalQuestions,
		Category:       input.Category,
	}
	if err := s.db.Create(&run).Error; err != nil {
		return nil, translate(err)
	}
	return &run, nil
}

// StatsForUser aggregates a user's runs. A user with no runs gets the
// all-zero object rather than an error.
func (s *GameRunService) StatsForUser(userID uint) (*models.UserStats, error) {
	var row struct {
		GamesPlayed   int
		HighScore     int
		LongestStreak int
		AverageScore  float64
	}
	err := s.db.Model(&models.GameRun{}).
		Select("COUNT(*) AS games_played, COALESCE(MAX(score), 0) AS high_score, COALESCE(MAX(streak), 0) AS longest_streak, COALESCE(AVG(score), 0) AS average_score").
		Where("user_id = ?", userID).
		Scan(&row).Error
	if err != nil {
		return nil, err
	}

	return &models.UserStats{
		HighScore:     row.HighScore,
		LongestStreak: row.LongestStreak,
		AverageScore:  math.Round(row.AverageScore*100) / 100,
		GamesPlayed:   row.GamesPlayed,
	}, nil
}

// Leaderboard returns one entry per user, best score first, best streak
// breaking ties.
func (s *GameRunService) Leaderboard() ([]models.LeaderboardEntry, error) {
	var entries []models.LeaderboardEntry
	err := s.db.Model(&models.GameRun{}).
		Select("user_id, MAX(score) AS best_score, MAX(streak) AS best_streak").
		Group("user_id").
		Order("MAX(score) DESC, MAX(streak) DESC").
		Scan(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

package models

import "time"

// GameRun records one finished play session. Runs are written once and
// never updated; user_id is a plain integer with no foreign key into the
// user service.
type GameRun struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	UserID         uint      `gorm:"not null;index" json:"user_id"`
	Score          int       `gorm:"not null" json:"score"`
	Streak         int       `gorm:"not null" json:"streak"`
	TotalQuestions *int      `json:"total_questions"`
	Category       *string   `gorm:"size:64" json:"category"`
	StartedAt      time.Time `gorm:"autoCreateTime" json:"started_at"`
	EndedAt        time.Time `gorm:"autoCreateTime" json:"ended_at"`
}

// UserStats is the aggregate view over one user's runs.
type UserStats struct {
	HighScore     int     `json:"high_score"`
	LongestStreak int     `json:"longest_streak"`
	AverageScore  float64 `json:"average_score"`
	GamesPlayed   int     `json:"games_played"`
}

// LeaderboardEntry is one row of the global leaderboard, one per user.
type LeaderboardEntry struct {
	UserID     uint `json:"user_id"`
	BestScore  int  `json:"best_score"`
	BestStreak int  `json:"best_streak"`
}

package models

import "time"

type Question struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Question   string    `gorm:"size:500;not null" json:"question"`
	Answer     int       `gorm:"not null" json:"answer"`
	Category   string    `gorm:"size:64;not null;index" json:"category"`
	Difficulty string    `gorm:"size:10;not null" json:"difficulty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// PublicQuestion is the shape served during gameplay: the answer stays
// hidden so the client cannot see it before placing the question.
type PublicQuestion struct {
	ID         uint   `json:"id"`
	Question   string `json:"question"`
	Category   string `json:"category"`
	Difficulty string `json:"difficulty"`
}

func (q *Question) Public() PublicQuestion {
	return PublicQuestion{
		ID:         q.ID,
		Question:   q.Question,
		Category:   q.Category,
		Difficulty: q.Difficulty,
	}
}

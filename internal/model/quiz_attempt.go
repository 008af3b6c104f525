package model

import "time"

// QuizAttempt 一次完整的答题记录，写入后不可修改
// swagger:model QuizAttempt
type QuizAttempt struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID      uint      `gorm:"index;not null" json:"user_id"`
	CategoryID  uint      `gorm:"index;not null" json:"category_id"`
	Score       int       `gorm:"not null" json:"score"`
	CompletedAt time.Time `json:"completed_at"`
}

func (QuizAttempt) TableName() string {
	return "quiz_attempts"
}

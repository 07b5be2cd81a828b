// models/test_result.go
package models

import "time"

// TestResult is one quiz outcome for a user. Rows are append-only: created by
// the submission endpoint, never updated or deleted.
type TestResult struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	UserID         string    `json:"user_id" gorm:"not null;size:50;index"`
	Category       string    `json:"category" gorm:"not null;size:50"`
	CorrectAnswers int       `json:"correct_answers" gorm:"not null;default:0"`
	CreatedAt      time.Time `json:"created_at" gorm:"index"`
}

func (TestResult) TableName() string {
	return "test_results"
}

// models/quiz.go
package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// Quiz is a static daily question. Options are stored as a JSON array column
// so the ordering of choices survives the round trip.
type Quiz struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	QuestionText string         `json:"question_text" gorm:"not null;type:text"`
	Options      datatypes.JSON `json:"options" gorm:"not null"`
	CorrectIndex int            `json:"correct_index" gorm:"not null"`
	Explanation  string         `json:"explanation" gorm:"not null;type:text"`
	Category     string         `json:"category" gorm:"not null;size:50"`
	Date         time.Time      `json:"date" gorm:"not null;type:date;index"`
}

func (Quiz) TableName() string {
	return "quizzes"
}

// OptionList decodes the stored options column into an ordered string slice.
// Undecodable data yields an empty list rather than an error.
func (q *Quiz) OptionList() []string {
	var options []string
	if err := json.Unmarshal(q.Options, &options); err != nil {
		return []string{}
	}
	return options
}

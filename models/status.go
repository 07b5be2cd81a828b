// models/status.go
package models

// Status holds a user's baseline biz/design/tech scores. Quiz-derived growth
// is added on top of these at read time, never written back.
type Status struct {
	ID     uint   `json:"id" gorm:"primaryKey"`
	UserID string `json:"user_id" gorm:"not null;size:50;index"`
	Biz    int    `json:"biz" gorm:"not null"`
	Design int    `json:"design" gorm:"not null"`
	Tech   int    `json:"tech" gorm:"not null"`
}

func (Status) TableName() string {
	return "status_table"
}

// models/team.go
package models

type Team struct {
	ID      uint         `json:"id" gorm:"primaryKey"`
	Name    string       `json:"name" gorm:"not null;size:100"`
	Members []TeamMember `json:"members,omitempty" gorm:"foreignKey:TeamID"`
}

func (Team) TableName() string {
	return "team"
}

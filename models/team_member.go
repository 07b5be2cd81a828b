// models/team_member.go
package models

import "time"

// TeamMember assigns a user to a role slot on a team. The composite primary
// key (team_id, role) means a role can hold at most one member at a time;
// concurrent duplicate inserts are rejected at the storage layer.
type TeamMember struct {
	TeamID    uint        `json:"team_id" gorm:"primaryKey;autoIncrement:false"`
	Role      string      `json:"role" gorm:"primaryKey;size:10"`
	UserID    string      `json:"user_id" gorm:"not null;size:50;index"`
	Team      *Team       `json:"team,omitempty" gorm:"foreignKey:TeamID"`
	User      *UserMaster `json:"user,omitempty" gorm:"foreignKey:UserID;references:UserID"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

func (TeamMember) TableName() string {
	return "team_members"
}

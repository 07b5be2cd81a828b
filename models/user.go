// models/user.go
package models

// UserMaster is a registered user. The primary key is a caller-visible
// string id, not an auto-increment integer.
type UserMaster struct {
	UserID    string `json:"user_id" gorm:"primaryKey;size:50"`
	Name      string `json:"name" gorm:"not null;size:100"`
	Password  string `json:"-" gorm:"not null;size:100"`
	AvatarURL string `json:"avatar_url" gorm:"size:255"`
	CoreTime  string `json:"core_time" gorm:"size:50"`

	Specialties  []Specialty   `json:"specialties,omitempty" gorm:"many2many:user_specialties;foreignKey:UserID;joinForeignKey:UserID;references:Specialty;joinReferences:Specialty"`
	Orientations []Orientation `json:"orientations,omitempty" gorm:"many2many:user_orientations;foreignKey:UserID;joinForeignKey:UserID;references:Orientation;joinReferences:Orientation"`
	TeamMembers  []TeamMember  `json:"-" gorm:"foreignKey:UserID;references:UserID"`
}

func (UserMaster) TableName() string {
	return "user_master"
}

// Specialty is a tag vocabulary entry. Test-result categories are validated
// against this table.
type Specialty struct {
	Specialty string `json:"specialty" gorm:"primaryKey;size:50"`
}

func (Specialty) TableName() string {
	return "specialty"
}

// Orientation is a tag vocabulary entry for working-style preferences.
type Orientation struct {
	Orientation string `json:"orientation" gorm:"primaryKey;size:50"`
}

func (Orientation) TableName() string {
	return "orientation"
}

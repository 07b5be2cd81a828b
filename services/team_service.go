// services/team_service.go - Team roster assembly and membership business logic
package services

import (
	"errors"

	"github.com/Jiromtrf/step4-app-backend-test/models"
	"gorm.io/gorm"
)

// MemberView is one roster entry: membership joined with the user profile and
// the computed skill scores.
type MemberView struct {
	Role         string   `json:"role"`
	UserID       string   `json:"user_id"`
	Name         string   `json:"name"`
	AvatarURL    string   `json:"avatar_url"`
	Specialties  []string `json:"specialties"`
	Orientations []string `json:"orientations"`
	CoreTime     string   `json:"core_time"`
	Biz          int      `json:"biz"`
	Design       int      `json:"design"`
	Tech         int      `json:"tech"`
}

type TeamService struct {
	db     *gorm.DB
	skills *SkillService
}

func NewTeamService(db *gorm.DB) *TeamService {
	return &TeamService{db: db, skills: NewSkillService(db)}
}

// CreateTeam creates a new team with an empty roster.
func (s *TeamService) CreateTeam(name string) (*models.Team, error) {
	team := &models.Team{Name: name}
	if err := s.db.Create(team).Error; err != nil {
		return nil, err
	}
	return team, nil
}

// AddMember assigns a user to a role slot. An occupied (team, role) slot is
// ErrRoleTaken, never a silent duplicate: the pre-check catches the common
// case and the composite primary key catches concurrent inserts.
func (s *TeamService) AddMember(teamID uint, role, userID string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var user models.UserMaster
		if err := tx.Where("user_id = ?", userID).First(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}

		var team models.Team
		if err := tx.First(&team, teamID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTeamNotFound
			}
			return err
		}

		var existing models.TeamMember
		err := tx.Where("team_id = ? AND role = ?", teamID, role).First(&existing).Error
		if err == nil {
			return ErrRoleTaken
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		member := models.TeamMember{TeamID: teamID, Role: role, UserID: userID}
		if err := tx.Create(&member).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrRoleTaken
			}
			return err
		}
		return nil
	})
}

// RemoveMember clears a role slot. An empty slot is ErrMemberNotFound, so a
// second removal of the same slot fails the same way.
func (s *TeamService) RemoveMember(teamID uint, role string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var member models.TeamMember
		if err := tx.Where("team_id = ? AND role = ?", teamID, role).First(&member).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrMemberNotFound
			}
			return err
		}
		return tx.Where("team_id = ? AND role = ?", teamID, role).Delete(&models.TeamMember{}).Error
	})
}

// GetRoster assembles the member views for a team: membership rows ordered by
// role, each joined with the user profile and current computed skills.
// Membership rows whose user no longer exists are skipped rather than failing
// the whole roster. An unknown team yields an empty roster.
func (s *TeamService) GetRoster(teamID uint) ([]MemberView, error) {
	var members []models.TeamMember
	if err := s.db.Where("team_id = ?", teamID).Order("role ASC").Find(&members).Error; err != nil {
		return nil, err
	}

	roster := make([]MemberView, 0, len(members))
	for _, member := range members {
		var user models.UserMaster
		err := s.db.Preload("Specialties").Preload("Orientations").
			Where("user_id = ?", member.UserID).First(&user).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}

		skills, err := s.skills.ComputeSkills(member.UserID, nil)
		if err != nil {
			return nil, err
		}

		roster = append(roster, MemberView{
			Role:         member.Role,
			UserID:       member.UserID,
			Name:         user.Name,
			AvatarURL:    user.AvatarURL,
			Specialties:  SpecialtyNames(user.Specialties),
			Orientations: OrientationNames(user.Orientations),
			CoreTime:     user.CoreTime,
			Biz:          skills.Biz,
			Design:       skills.Design,
			Tech:         skills.Tech,
		})
	}

	return roster, nil
}

// SpecialtyNames flattens specialty rows to their names.
func SpecialtyNames(specialties []models.Specialty) []string {
	names := make([]string, 0, len(specialties))
	for _, s := range specialties {
		names = append(names, s.Specialty)
	}
	return names
}

// OrientationNames flattens orientation rows to their names.
func OrientationNames(orientations []models.Orientation) []string {
	names := make([]string, 0, len(orientations))
	for _, o := range orientations {
		names = append(names, o.Orientation)
	}
	return names
}

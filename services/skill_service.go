// services/skill_service.go - Skill score aggregation
package services

import (
	"errors"
	"strings"
	"time"

	"github.com/Jiromtrf/step4-app-backend-test/models"
	"gorm.io/gorm"
)

// GrowthPerCorrectAnswer is the fixed score increment per correct quiz
// answer. Growth is cumulative since account creation, never decayed or
// capped.
const GrowthPerCorrectAnswer = 2

// SkillSet is a user's current biz/design/tech scores.
type SkillSet struct {
	Biz    int `json:"biz"`
	Design int `json:"design"`
	Tech   int `json:"tech"`
}

type SkillService struct {
	db *gorm.DB
}

func NewSkillService(db *gorm.DB) *SkillService {
	return &SkillService{db: db}
}

// ComputeSkills derives a user's current scores: the baseline status row
// (zeros when absent) plus per-category growth summed from test results.
// A non-nil asOf restricts results to those created on or before that
// calendar date. Categories outside the three known buckets are ignored.
func (s *SkillService) ComputeSkills(userID string, asOf *time.Time) (SkillSet, error) {
	var skills SkillSet

	var status models.Status
	err := s.db.Where("user_id = ?", userID).First(&status).Error
	switch {
	case err == nil:
		skills = SkillSet{Biz: status.Biz, Design: status.Design, Tech: status.Tech}
	case errors.Is(err, gorm.ErrRecordNotFound):
		// no baseline row, start from zeros
	default:
		return SkillSet{}, err
	}

	type categorySum struct {
		Category string
		Total    int
	}

	query := s.db.Model(&models.TestResult{}).
		Select("category, SUM(correct_answers) AS total").
		Where("user_id = ?", userID)
	if asOf != nil {
		// the cutoff date is inclusive of the whole calendar day
		query = query.Where("created_at < ?", asOf.AddDate(0, 0, 1))
	}

	var sums []categorySum
	if err := query.Group("category").Scan(&sums).Error; err != nil {
		return SkillSet{}, err
	}

	for _, row := range sums {
		growth := row.Total * GrowthPerCorrectAnswer
		switch strings.ToLower(row.Category) {
		case "biz":
			skills.Biz += growth
		case "design":
			skills.Design += growth
		case "tech":
			skills.Tech += growth
		}
	}

	return skills, nil
}

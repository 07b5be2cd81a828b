// handlers/teams.go - Team and membership endpoints
package handlers

import (
	"errors"
	"log"
	"strconv"

	"github.com/Jiromtrf/step4-app-backend-test/services"
	"github.com/gofiber/fiber/v2"
)

type CreateTeamRequest struct {
	Name string `json:"name"`
}

type AddTeamMemberRequest struct {
	TeamID uint   `json:"team_id"`
	Role   string `json:"role"`
	UserID string `json:"user_id"`
}

type RemoveTeamMemberRequest struct {
	TeamID uint   `json:"team_id"`
	Role   string `json:"role"`
}

// CreateTeam creates a new team with an empty roster.
func CreateTeam(c *fiber.Ctx) error {
	var req CreateTeamRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": "Invalid request body"})
	}
	if req.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": "Team name is required"})
	}

	team, err := teamService.CreateTeam(req.Name)
	if err != nil {
		log.Printf("Error creating team %q: %v", req.Name, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"detail": "Internal server error"})
	}

	return c.JSON(fiber.Map{
		"team_id":   team.ID,
		"team_name": team.Name,
	})
}

// AddTeamMember assigns a user to a role slot. An occupied slot is a 409, not
// a generic failure.
func AddTeamMember(c *fiber.Ctx) error {
	var req AddTeamMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": "Invalid request body"})
	}
	if req.TeamID == 0 || req.Role == "" || req.UserID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": "team_id, role and user_id are required"})
	}

	err := teamService.AddMember(req.TeamID, req.Role, req.UserID)
	switch {
	case err == nil:
		return c.JSON(fiber.Map{"message": "Team member added successfully."})
	case errors.Is(err, services.ErrRoleTaken):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"detail": "Role is already filled in this team."})
	case errors.Is(err, services.ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"detail": "User not found"})
	case errors.Is(err, services.ErrTeamNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"detail": "Team not found"})
	default:
		log.Printf("Error adding member %s to team %d: %v", req.UserID, req.TeamID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"detail": "Internal server error"})
	}
}

// RemoveTeamMember clears a role slot.
func RemoveTeamMember(c *fiber.Ctx) error {
	var req RemoveTeamMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": "Invalid request body"})
	}

	err := teamService.RemoveMember(req.TeamID, req.Role)
	switch {
	case err == nil:
		return c.JSON(fiber.Map{"message": "Team member removed successfully."})
	case errors.Is(err, services.ErrMemberNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"detail": "Member not found in this role."})
	default:
		log.Printf("Error removing role %s from team %d: %v", req.Role, req.TeamID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"detail": "Internal server error"})
	}
}

// GetTeamInfo returns the team roster enriched with profile data and computed
// skill scores, ordered by role.
func GetTeamInfo(c *fiber.Ctx) error {
	teamID, err := strconv.ParseUint(c.Params("team_id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": "Invalid team id"})
	}

	roster, err := teamService.GetRoster(uint(teamID))
	if err != nil {
		log.Printf("Error assembling roster for team %d: %v", teamID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"detail": "Internal server error"})
	}

	return c.JSON(roster)
}

// handlers/slack.go - Pass-throughs to the Slack bridge
package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"
)

// Slack user whose channel messages get an automatic acknowledgement.
const slackTargetUserID = "U12345678"

type SendMessageRequest struct {
	Text string `json:"text"`
}

type AddReactionRequest struct {
	Channel   string `json:"channel"`
	Timestamp string `json:"timestamp"`
	Emoji     string `json:"emoji"`
}

type SendReplyRequest struct {
	Channel  string `json:"channel"`
	ThreadTS string `json:"thread_ts"`
	Text     string `json:"text"`
}

// SendSlackMessage posts text to the configured channel.
func SendSlackMessage(c *fiber.Ctx) error {
	var req SendMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": "Invalid request body"})
	}
	if req.Text == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": "text is required"})
	}

	result, err := slackService.SendMessage(c.Context(), req.Text)
	if err != nil {
		log.Printf("Error sending Slack message: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"detail": "Internal server error"})
	}
	return c.JSON(result)
}

// GetSlackMessages returns the latest channel messages with author names and
// reaction counts.
func GetSlackMessages(c *fiber.Ctx) error {
	messages, err := slackService.GetMessages(c.Context())
	if err != nil {
		log.Printf("Error fetching Slack messages: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status":  "error",
			"message": err.Error(),
		})
	}
	return c.JSON(fiber.Map{"status": "ok", "data": messages})
}

// AddSlackReaction attaches an emoji reaction to a message.
func AddSlackReaction(c *fiber.Ctx) error {
	var req AddReactionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": "Invalid request body"})
	}
	if req.Channel == "" || req.Timestamp == "" || req.Emoji == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": "channel, timestamp and emoji are required"})
	}

	result, err := slackService.AddReaction(c.Context(), req.Channel, req.Timestamp, req.Emoji)
	if err != nil {
		log.Printf("Error adding Slack reaction: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"detail": "Internal server error"})
	}
	return c.JSON(result)
}

// SendSlackReply posts a threaded reply.
func SendSlackReply(c *fiber.Ctx) error {
	var req SendReplyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": "Invalid request body"})
	}
	if req.Channel == "" || req.ThreadTS == "" || req.Text == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": "channel, thread_ts and text are required"})
	}

	result, err := slackService.Reply(c.Context(), req.Channel, req.ThreadTS, req.Text)
	if err != nil {
		log.Printf("Error sending Slack reply: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"detail": "Internal server error"})
	}
	return c.JSON(result)
}

// SlackEvents handles the Slack Events API callback: echoes the URL
// verification challenge and acknowledges messages from the target user with
// a reaction and a canned thread reply.
func SlackEvents(c *fiber.Ctx) error {
	var payload struct {
		Challenge string `json:"challenge"`
		Event     struct {
			Type    string `json:"type"`
			User    string `json:"user"`
			Channel string `json:"channel"`
			TS      string `json:"ts"`
		} `json:"event"`
	}
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": "Invalid request body"})
	}

	if payload.Challenge != "" {
		return c.JSON(fiber.Map{"challenge": payload.Challenge})
	}

	if payload.Event.Type == "message" && payload.Event.User == slackTargetUserID {
		if _, err := slackService.AddReaction(c.Context(), payload.Event.Channel, payload.Event.TS, "thumbsup"); err != nil {
			log.Printf("Error reacting to Slack event: %v", err)
		}
		if _, err := slackService.Reply(c.Context(), payload.Event.Channel, payload.Event.TS, "Thank you for your message!"); err != nil {
			log.Printf("Error replying to Slack event: %v", err)
		}
	}

	return c.JSON(fiber.Map{"status": "ok"})
}

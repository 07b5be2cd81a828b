// services/slack_service.go - Thin wrapper over the Slack Web API.
//
// Pure I/O: synchronous outbound calls, no retries or backoff. Failures
// surface to the caller as-is.
package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/Jiromtrf/step4-app-backend-test/config"
)

// SlackMessage is one channel message with its author resolved to a display
// name and its reaction tallies.
type SlackMessage struct {
	Text      string          `json:"text"`
	User      string          `json:"user"`
	Reactions []SlackReaction `json:"reactions"`
}

type SlackReaction struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type SlackService struct {
	token     string
	channelID string
	baseURL   string
	client    *http.Client
}

func NewSlackService(cfg *config.Config) *SlackService {
	return &SlackService{
		token:     cfg.SlackToken,
		channelID: cfg.SlackChannelID,
		baseURL:   "https://slack.com/api",
		client:    &http.Client{Timeout: 10 * time.Second},
	}
}

// SendMessage posts text to the configured channel.
func (s *SlackService) SendMessage(ctx context.Context, text string) (map[string]interface{}, error) {
	return s.postJSON(ctx, "chat.postMessage", map[string]interface{}{
		"channel": s.channelID,
		"text":    text,
	})
}

// Reply posts text into the thread rooted at threadTS.
func (s *SlackService) Reply(ctx context.Context, channel, threadTS, text string) (map[string]interface{}, error) {
	return s.postJSON(ctx, "chat.postMessage", map[string]interface{}{
		"channel":   channel,
		"text":      text,
		"thread_ts": threadTS,
	})
}

// AddReaction attaches an emoji reaction to the message at timestamp.
func (s *SlackService) AddReaction(ctx context.Context, channel, timestamp, emoji string) (map[string]interface{}, error) {
	return s.postJSON(ctx, "reactions.add", map[string]interface{}{
		"channel":   channel,
		"name":      emoji,
		"timestamp": timestamp,
	})
}

// GetMessages fetches the latest messages from the configured channel with
// author names and reaction counts.
func (s *SlackService) GetMessages(ctx context.Context) ([]SlackMessage, error) {
	params := url.Values{}
	params.Set("channel", s.channelID)
	params.Set("limit", "10")

	var history struct {
		OK       bool   `json:"ok"`
		Error    string `json:"error"`
		Messages []struct {
			User      string          `json:"user"`
			Text      string          `json:"text"`
			Reactions []SlackReaction `json:"reactions"`
		} `json:"messages"`
	}
	if err := s.getJSON(ctx, "conversations.history", params, &history); err != nil {
		return nil, err
	}
	if !history.OK {
		return nil, fmt.Errorf("slack conversations.history: %s", history.Error)
	}

	messages := make([]SlackMessage, 0, len(history.Messages))
	for _, msg := range history.Messages {
		reactions := msg.Reactions
		if reactions == nil {
			reactions = []SlackReaction{}
		}
		messages = append(messages, SlackMessage{
			Text:      msg.Text,
			User:      s.GetUserName(ctx, msg.User),
			Reactions: reactions,
		})
	}
	return messages, nil
}

// GetUserName resolves a Slack user id to the member's real name, falling
// back to "Unknown User" when the lookup fails.
func (s *SlackService) GetUserName(ctx context.Context, userID string) string {
	params := url.Values{}
	params.Set("user", userID)

	var info struct {
		OK   bool `json:"ok"`
		User struct {
			RealName string `json:"real_name"`
		} `json:"user"`
	}
	if err := s.getJSON(ctx, "users.info", params, &info); err != nil || !info.OK || info.User.RealName == "" {
		return "Unknown User"
	}
	return info.User.RealName
}

func (s *SlackService) postJSON(ctx context.Context, method string, payload map[string]interface{}) (map[string]interface{}, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/"+method, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+s.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var result map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode slack %s response: %w", method, err)
	}
	return result, nil
}

func (s *SlackService) getJSON(ctx context.Context, method string, params url.Values, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/"+method+"?"+params.Encode(), nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+s.token)

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("slack %s: unexpected status %d", method, resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

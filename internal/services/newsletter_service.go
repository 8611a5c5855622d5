package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"honesttour/pkg/utils"
)

type NewsletterServiceInterface interface {
	Subscribe(ctx context.Context, email string) error
}

// EmailOctopusService forwards subscriptions to the mailing-list provider
// using server-held credentials. The provider's "member exists" error is
// mapped to a distinct sentinel so the API can answer with a friendly
// message.
type EmailOctopusService struct {
	HTTP    *http.Client
	BaseURL string
	APIKey  string
	ListID  string
}

func NewEmailOctopusService(apiKey, listID string) *EmailOctopusService {
	return &EmailOctopusService{
		HTTP:    &http.Client{Timeout: 10 * time.Second},
		BaseURL: "https://emailoctopus.com",
		APIKey:  apiKey,
		ListID:  listID,
	}
}

func (s *EmailOctopusService) Subscribe(ctx context.Context, email string) error {
	if email == "" || !strings.Contains(email, "@") {
		return utils.ErrInvalidEmail
	}
	if s.APIKey == "" || s.ListID == "" {
		return utils.ErrNewsletterConfig
	}

	body, err := json.Marshal(map[string]string{
		"api_key":       s.APIKey,
		"email_address": email,
		"status":        "SUBSCRIBED",
	})
	if err != nil {
		return err
	}

	u := fmt.Sprintf("%s/api/1.6/lists/%s/contacts", strings.TrimRight(s.BaseURL, "/"), s.ListID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.HTTP.Do(req)
	if err != nil {
		log.Printf("Newsletter provider error: %v", err)
		return fmt.Errorf("newsletter provider: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 == 2 {
		return nil
	}

	var payload struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil {
		if payload.Error.Code == "MEMBER_EXISTS_WITH_EMAIL_ADDRESS" {
			return utils.ErrAlreadySubscribed
		}
		if payload.Error.Message != "" {
			return fmt.Errorf("newsletter provider: %s", payload.Error.Message)
		}
	}
	return fmt.Errorf("newsletter provider: status %s", resp.Status)
}

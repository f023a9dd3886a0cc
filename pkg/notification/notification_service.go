package notification

import (
	"Cookly-Backend/domain"
	"Cookly-Backend/entities"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
)

const pushyEndpoint = "https://api.pushy.me/push"

type (
	// PushTokenSource supplies registered device tokens, optionally
	// filtered by subscription status.
	PushTokenSource interface {
		GetPushyTokens(ctx context.Context, isSubscribed *bool) ([]string, error)
	}

	NotificationService interface {
		SendNotification(ctx context.Context, req domain.SendNotificationRequest) (*entities.NotificationLog, error)
		GetLogs(ctx context.Context, limit, offset int) ([]*entities.NotificationLog, int64, error)
	}

	notificationService struct {
		notificationRepository NotificationRepository
		tokens                 PushTokenSource
		httpClient             *http.Client
		apiKey                 string
	}

	pushyRequest struct {
		To           []string       `json:"to"`
		Data         map[string]any `json:"data"`
		Notification pushyAlert     `json:"notification"`
	}

	pushyAlert struct {
		Title string `json:"title"`
		Body  string `json:"body"`
	}

	pushyResponse struct {
		Success bool   `json:"success"`
		ID      string `json:"id"`
		Error   string `json:"error"`
	}
)

func NewNotificationService(notificationRepository NotificationRepository, tokens PushTokenSource, apiKey string) NotificationService {
	return &notificationService{
		notificationRepository: notificationRepository,
		tokens:                 tokens,
		httpClient:             &http.Client{Timeout: 15 * time.Second},
		apiKey:                 apiKey,
	}
}

func (s *notificationService) SendNotification(ctx context.Context, req domain.SendNotificationRequest) (*entities.NotificationLog, error) {
	audience := req.TargetAudience
	if audience == "" {
		audience = entities.NotificationAudienceAll
	}

	var isSubscribed *bool
	switch audience {
	case entities.NotificationAudienceSubscribed:
		subscribed := true
		isSubscribed = &subscribed
	case entities.NotificationAudienceUnsubscribed:
		subscribed := false
		isSubscribed = &subscribed
	}

	tokens, err := s.tokens.GetPushyTokens(ctx, isSubscribed)
	if err != nil {
		return nil, err
	}
	if len(tokens) == 0 {
		return nil, domain.ErrNoPushTokens
	}

	log := &entities.NotificationLog{
		ID:             uuid.New(),
		Title:          req.Title,
		Message:        req.Message,
		TargetAudience: audience,
	}

	if err := s.push(ctx, tokens, req.Title, req.Message); err != nil {
		log.FailureCount = len(tokens)
		log.Status = "failed"
	} else {
		log.SentCount = len(tokens)
		log.Status = "success"
	}

	if err := s.notificationRepository.CreateLog(ctx, log); err != nil {
		return nil, err
	}
	return log, nil
}

func (s *notificationService) GetLogs(ctx context.Context, limit, offset int) ([]*entities.NotificationLog, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.notificationRepository.FindLogs(ctx, limit, offset)
}

func (s *notificationService) push(ctx context.Context, tokens []string, title, message string) error {
	payload := pushyRequest{
		To: tokens,
		Data: map[string]any{
			"title":   title,
			"message": message,
		},
		Notification: pushyAlert{Title: title, Body: message},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s?api_key=%s", pushyEndpoint, s.apiKey)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(httpReq)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var result pushyResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK || !result.Success {
		return fmt.Errorf("pushy broadcast failed: %s", result.Error)
	}
	return nil
}

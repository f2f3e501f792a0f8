package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"eventhub/internal/domain/service"
)

const (
	defaultExpoEndpoint   = "https://exp.host/--/api/v2/push/send"
	expoDeviceNotRegister = "DeviceNotRegistered"
	maxExpoErrorBodyBytes = 1 << 10
)

type expoMessage struct {
	To    string            `json:"to"`
	Title string            `json:"title"`
	Body  string            `json:"body"`
	Data  map[string]string `json:"data,omitempty"`
	Sound string            `json:"sound,omitempty"`
}

type expoTicket struct {
	Status  string `json:"status"`
	ID      string `json:"id"`
	Message string `json:"message"`
	Details struct {
		Error string `json:"error"`
	} `json:"details"`
}

type expoResponse struct {
	Data   []expoTicket `json:"data"`
	Errors []struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"errors"`
}

type expoService struct {
	endpoint    string
	accessToken string
	httpClient  *http.Client
}

// NewExpoService creates a push service that sends through the Expo push API.
func NewExpoService(endpoint, accessToken string, httpClient *http.Client) service.PushService {
	if endpoint == "" {
		endpoint = defaultExpoEndpoint
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &expoService{
		endpoint:    endpoint,
		accessToken: accessToken,
		httpClient:  httpClient,
	}
}

// IsExpoPushToken reports whether token has the Expo push token shape.
func IsExpoPushToken(token string) bool {
	return (strings.HasPrefix(token, "ExponentPushToken[") || strings.HasPrefix(token, "ExpoPushToken[")) &&
		strings.HasSuffix(token, "]")
}

// SendSingleNotification sends a push notification to a single Expo push token
func (s *expoService) SendSingleNotification(ctx context.Context, token, title, body string, data map[string]string) error {
	if !IsExpoPushToken(token) {
		return fmt.Errorf("%w: %q is not an Expo push token", service.ErrInvalidPushToken, token)
	}

	payload, err := json.Marshal([]expoMessage{{
		To:    token,
		Title: title,
		Body:  body,
		Data:  data,
		Sound: "default",
	}})
	if err != nil {
		return fmt.Errorf("failed to encode push message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create push request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if s.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+s.accessToken)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send push request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		errBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxExpoErrorBodyBytes))

		return fmt.Errorf("expo push returned status %d: %s", resp.StatusCode, string(errBody))
	}

	var result expoResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("failed to decode push response: %w", err)
	}

	if len(result.Errors) > 0 {
		return fmt.Errorf("expo push request error %s: %s", result.Errors[0].Code, result.Errors[0].Message)
	}
	if len(result.Data) == 0 {
		return fmt.Errorf("expo push response has no ticket")
	}

	ticket := result.Data[0]
	if ticket.Status == "ok" {
		return nil
	}
	if ticket.Details.Error == expoDeviceNotRegister {
		return fmt.Errorf("%w: %s", service.ErrInvalidPushToken, ticket.Message)
	}

	return fmt.Errorf("expo push ticket error %s: %s", ticket.Details.Error, ticket.Message)
}

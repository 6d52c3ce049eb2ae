package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"gansputra.dev/internal/models"
)

// ErrRelayRejected is returned when the relay answers without success
var ErrRelayRejected = errors.New("form relay rejected submission")

// relayRequest is the JSON body the form relay expects
type relayRequest struct {
	AccessKey string `json:"access_key"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Message   string `json:"message"`
	Subject   string `json:"subject"`
}

type relayResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Relay posts contact messages to a third-party form relay
type Relay struct {
	endpoint  string
	accessKey string
	client    *http.Client
}

// NewRelay creates a relay client. A nil client uses http.DefaultClient.
func NewRelay(endpoint, accessKey string, client *http.Client) *Relay {
	if client == nil {
		client = http.DefaultClient
	}
	return &Relay{endpoint: endpoint, accessKey: accessKey, client: client}
}

// Subject returns the mail subject used for a sender
func Subject(name string) string {
	return "New Message from Portfolio: " + name
}

// Send delivers the form. It returns nil only when the relay reports success.
func (r *Relay) Send(ctx context.Context, form models.ContactForm) error {
	body, err := json.Marshal(relayRequest{
		AccessKey: r.accessKey,
		Name:      form.Name,
		Email:     form.Email,
		Message:   form.Message,
		Subject:   Subject(form.Name),
	})
	if err != nil {
		return fmt.Errorf("encode relay request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build relay request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("relay request: %w", err)
	}
	defer resp.Body.Close()

	var result relayResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<16)).Decode(&result); err != nil {
		return fmt.Errorf("decode relay response (status %d): %w", resp.StatusCode, err)
	}
	if !result.Success {
		return fmt.Errorf("%w: %s", ErrRelayRejected, result.Message)
	}
	return nil
}

// Package rhid is a thin client for the RHiD time-clock API, covering the
// two calls the sync feature needs: login and person listing.
package rhid

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const DefaultBaseURL = "https://www.rhid.com.br/v2"

type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Person is one employee record as RHiD returns it. Code and CPF arrive
// as numbers or strings depending on the tenant, hence json.Number.
type Person struct {
	ID           int         `json:"id"`
	Name         string      `json:"name"`
	Code         json.Number `json:"code"`
	CPF          json.Number `json:"cpf"`
	Registration string      `json:"registration"`
	Status       int         `json:"status"`
}

// Login authenticates against RHiD and returns the bearer token the other
// endpoints expect.
func (c *Client) Login(email, password string) (string, error) {
	payload, _ := json.Marshal(map[string]string{
		"email":    email,
		"password": password,
	})

	resp, err := c.HTTPClient.Post(c.BaseURL+"/login", "application/json", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("rhid login: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("rhid login: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("rhid login: status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var result struct {
		AccessToken string `json:"accessToken"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("rhid login: resposta inválida: %w", err)
	}
	if result.AccessToken == "" {
		return "", fmt.Errorf("rhid login: resposta sem accessToken")
	}
	return result.AccessToken, nil
}

// ListPersons fetches a page of employees. RHiD answers either
// {"data": [...]} or a bare array depending on the endpoint version.
func (c *Client) ListPersons(token string, start, length int) ([]Person, error) {
	url := fmt.Sprintf("%s/person?start=%d&length=%d", c.BaseURL, start, length)
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("rhid person: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("rhid person: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("rhid person: status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var wrapped struct {
		Data []Person `json:"data"`
	}
	if err := json.Unmarshal(body, &wrapped); err == nil && wrapped.Data != nil {
		return wrapped.Data, nil
	}

	var persons []Person
	if err := json.Unmarshal(body, &persons); err != nil {
		return nil, fmt.Errorf("rhid person: resposta inválida: %w", err)
	}
	return persons, nil
}

// Package builder provides a programmatic deck builder session on top of
// the Deck Builder REST API.
package builder

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
)

// Card is a catalog entry as served by the API.
type Card struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Elixir      int    `json:"elixir"`
	Rarity      string `json:"rarity"`
	Type        string `json:"type"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
}

// DeckCard is a card placed at a position inside a deck.
type DeckCard struct {
	Position int  `json:"position"`
	Card     Card `json:"card"`
}

// Deck is a persisted deck as served by the API.
type Deck struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	AvgElixir   float64    `json:"avgElixir"`
	IsPublic    bool       `json:"isPublic"`
	Likes       int        `json:"likes"`
	Slot        int        `json:"slot"`
	OwnerID     int64      `json:"ownerId"`
	Cards       []DeckCard `json:"cards"`
}

// User is the public profile returned by the auth endpoints.
type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// AuthResult is the outcome of a register or login call.
type AuthResult struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

// DeckInput is the body for deck create and update calls.
type DeckInput struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	CardNames   []string `json:"cardNames"`
	Slot        int      `json:"slot"`
	IsPublic    bool     `json:"isPublic"`
}

// DeckAPI is the remote surface the builder session needs.
type DeckAPI interface {
	Register(name, email, password string) (*AuthResult, error)
	Login(email, password string) (*AuthResult, error)
	GetAllCards() ([]Card, error)
	GetUserDecks() ([]Deck, error)
	GetPublicDecks() ([]Deck, error)
	GetSharedDeck(id int64) (*Deck, error)
	CreateDeck(input DeckInput) (*Deck, error)
	UpdateDeck(id int64, input DeckInput) (*Deck, error)
	DeleteDeck(id int64) error
	LikeDeck(id int64) (int, error)
}

// Client talks to the Deck Builder API. Not safe for concurrent use while
// the token is being changed.
type Client struct {
	baseURL string
	token   string
	client  *http.Client
}

// NewClient creates an API client with retrying transport.
func NewClient(baseURL string) *Client {
	rc := retryablehttp.NewClient()
	rc.RetryMax = 3
	rc.HTTPClient.Timeout = 30 * time.Second
	rc.Logger = nil

	return &Client{
		baseURL: baseURL,
		client:  rc.StandardClient(),
	}
}

// SetToken sets the bearer token attached to subsequent requests.
func (c *Client) SetToken(token string) {
	c.token = token
}

// Token returns the current bearer token, empty when unauthenticated.
func (c *Client) Token() string {
	return c.token
}

func (c *Client) Register(name, email, password string) (*AuthResult, error) {
	body := map[string]string{"name": name, "email": email, "password": password}
	var result AuthResult
	if err := c.sendRequest("POST", "/auth/register", body, http.StatusCreated, &result); err != nil {
		return nil, err
	}
	c.token = result.Token
	return &result, nil
}

func (c *Client) Login(email, password string) (*AuthResult, error) {
	body := map[string]string{"email": email, "password": password}
	var result AuthResult
	if err := c.sendRequest("POST", "/auth/login", body, http.StatusOK, &result); err != nil {
		return nil, err
	}
	c.token = result.Token
	return &result, nil
}

func (c *Client) GetAllCards() ([]Card, error) {
	var result struct {
		Cards []Card `json:"cards"`
	}
	if err := c.sendRequest("GET", "/cards", nil, http.StatusOK, &result); err != nil {
		return nil, err
	}
	return result.Cards, nil
}

func (c *Client) GetUserDecks() ([]Deck, error) {
	var decks []Deck
	if err := c.sendRequest("GET", "/decks", nil, http.StatusOK, &decks); err != nil {
		return nil, err
	}
	return decks, nil
}

func (c *Client) GetPublicDecks() ([]Deck, error) {
	var decks []Deck
	if err := c.sendRequest("GET", "/decks?onlyPublic=true", nil, http.StatusOK, &decks); err != nil {
		return nil, err
	}
	return decks, nil
}

func (c *Client) GetSharedDeck(id int64) (*Deck, error) {
	var deck Deck
	if err := c.sendRequest("GET", fmt.Sprintf("/decks/shared/%d", id), nil, http.StatusOK, &deck); err != nil {
		return nil, err
	}
	return &deck, nil
}

func (c *Client) CreateDeck(input DeckInput) (*Deck, error) {
	var deck Deck
	if err := c.sendRequest("POST", "/decks", input, http.StatusCreated, &deck); err != nil {
		return nil, err
	}
	return &deck, nil
}

func (c *Client) UpdateDeck(id int64, input DeckInput) (*Deck, error) {
	var deck Deck
	if err := c.sendRequest("PUT", fmt.Sprintf("/decks/%d", id), input, http.StatusOK, &deck); err != nil {
		return nil, err
	}
	return &deck, nil
}

func (c *Client) DeleteDeck(id int64) error {
	return c.sendRequest("DELETE", fmt.Sprintf("/decks/%d", id), nil, http.StatusNoContent, nil)
}

func (c *Client) LikeDeck(id int64) (int, error) {
	var result struct {
		Likes int `json:"likes"`
	}
	if err := c.sendRequest("POST", fmt.Sprintf("/decks/%d/like", id), nil, http.StatusOK, &result); err != nil {
		return 0, err
	}
	return result.Likes, nil
}

// envelope matches the API's {status, data|message} response shape.
type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// APIError is a non-success response from the API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error: status %d - %s", e.StatusCode, e.Message)
}

// method to send HTTP requests and handle responses
func (c *Client) sendRequest(method, path string, bodyData any, expectedStatus int, out any) error {
	var body io.Reader

	if bodyData != nil {
		jsonBytes, err := json.Marshal(bodyData)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		body = bytes.NewBuffer(jsonBytes)
	}

	req, err := http.NewRequest(method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("http request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != expectedStatus {
		var env envelope
		if err := json.Unmarshal(respBody, &env); err == nil && env.Message != "" {
			return &APIError{StatusCode: resp.StatusCode, Message: env.Message}
		}
		return &APIError{StatusCode: resp.StatusCode, Message: string(respBody)}
	}

	if out == nil {
		return nil
	}

	var env envelope
	if err := json.Unmarshal(respBody, &env); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("failed to decode response data: %w", err)
	}

	return nil
}

package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"

	"duskcrawl/combat"
)

// Client is a reference HTTP client for a duskcrawld server: marshal the
// snapshot, POST it, decode the chosen action.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient builds a Client against the server at baseURL (e.g.
// "http://localhost:8080").
func NewClient(baseURL string) *Client {
	return &Client{baseURL: baseURL, httpClient: http.DefaultClient}
}

// Decide posts the given state to POST /decide and returns the chosen
// action, the server-assigned request ID, and any transport-level error.
func (c *Client) Decide(ctx context.Context, s combat.RunState) (combat.Action, string, error) {
	req := DecideRequest{RequestID: uuid.New().String(), State: ToDTO(s)}

	body, err := json.Marshal(req)
	if err != nil {
		return combat.Action{}, "", fmt.Errorf("transport: marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/decide", bytes.NewReader(body))
	if err != nil {
		return combat.Action{}, "", fmt.Errorf("transport: build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return combat.Action{}, "", fmt.Errorf("transport: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		out, _ := io.ReadAll(resp.Body)
		return combat.Action{}, "", fmt.Errorf("transport: server returned %d: %s", resp.StatusCode, out)
	}

	var decideResp DecideResponse
	if err := json.NewDecoder(resp.Body).Decode(&decideResp); err != nil {
		return combat.Action{}, "", fmt.Errorf("transport: decode response: %w", err)
	}

	action, err := actionFromDTO(decideResp.Action)
	if err != nil {
		return combat.Action{}, "", err
	}
	return action, decideResp.RequestID, nil
}

func actionFromDTO(d ActionDTO) (combat.Action, error) {
	if d.Kind == "loot" {
		return combat.LootAction(d.LootIndex), nil
	}
	move, err := moveFromString(d.Move)
	if err != nil {
		return combat.Action{}, err
	}
	return combat.MoveAction(move), nil
}

func moveFromString(s string) (combat.Move, error) {
	switch s {
	case "Rock":
		return combat.Rock, nil
	case "Paper":
		return combat.Paper, nil
	case "Scissor":
		return combat.Scissor, nil
	default:
		return 0, fmt.Errorf("transport: unknown move %q", s)
	}
}

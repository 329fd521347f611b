// Package gateway sends rosters to the remote character API
package gateway

//go:generate mockgen -destination=mock/mock_client.go -package=gatewaymock github.com/KirkDiggler/character-sheet/internal/clients/gateway Client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/KirkDiggler/character-sheet/internal/entities/sheet"
	"github.com/KirkDiggler/character-sheet/internal/errors"
)

// DefaultEndpoint is the character API the roster is posted to
const DefaultEndpoint = "https://recruiting.verylongdomaintotestwith.ca/api/nishchay157/character"

// DefaultTimeout bounds a single save request
const DefaultTimeout = 30 * time.Second

// Client persists a whole roster in one request
type Client interface {
	// Save posts every character in roster order. There is no retry.
	// Returns errors with ReasonPersistenceFailure for transport errors and non-2xx responses
	Save(ctx context.Context, input *SaveInput) (*SaveOutput, error)
}

// SaveInput defines the input for saving a roster
type SaveInput struct {
	Characters []sheet.Character
}

// SaveOutput defines the output for saving a roster
type SaveOutput struct {
	StatusCode int
}

// Record is the wire form of one character
type Record struct {
	Attributes    map[string]int `json:"attributes"`
	Skills        map[string]int `json:"skills"`
	SkillPoints   int            `json:"skillPoints"`
	SelectedClass string         `json:"selectedClass,omitempty"`
}

// Config contains configuration for the gateway client
type Config struct {
	Endpoint   string
	HTTPClient *http.Client
	Timeout    time.Duration
}

// Validate checks the config
func (cfg *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("Endpoint", cfg.Endpoint, vb)
	if cfg.Timeout < 0 {
		vb.Field("Timeout", "must not be negative")
	}
	return vb.Build()
}

type client struct {
	endpoint   string
	httpClient *http.Client
}

// New creates a gateway client
func New(cfg *Config) (Client, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout == 0 {
			timeout = DefaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	return &client{
		endpoint:   cfg.Endpoint,
		httpClient: httpClient,
	}, nil
}

// ToRecords converts characters to their wire form, preserving order
func ToRecords(characters []sheet.Character) []Record {
	records := make([]Record, len(characters))
	for i, c := range characters {
		attributes := c.Attributes
		if attributes == nil {
			attributes = map[string]int{}
		}
		skills := c.Skills
		if skills == nil {
			skills = map[string]int{}
		}
		records[i] = Record{
			Attributes:    attributes,
			Skills:        skills,
			SkillPoints:   c.SkillPoints,
			SelectedClass: c.SelectedClass,
		}
	}
	return records
}

func (c *client) Save(ctx context.Context, input *SaveInput) (*SaveOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	body, err := json.Marshal(ToRecords(input.Characters))
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal characters")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(err, "failed to build save request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		slog.WarnContext(ctx, "character save request failed",
			"endpoint", c.endpoint,
			"error", err.Error())
		return nil, errors.PersistenceFailure(err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		slog.WarnContext(ctx, "character save rejected",
			"endpoint", c.endpoint,
			"status_code", resp.StatusCode)
		return nil, errors.PersistenceFailure(nil).WithMeta("status_code", resp.StatusCode)
	}

	slog.DebugContext(ctx, "characters saved",
		"endpoint", c.endpoint,
		"count", len(input.Characters),
		"status_code", resp.StatusCode)

	return &SaveOutput{StatusCode: resp.StatusCode}, nil
}

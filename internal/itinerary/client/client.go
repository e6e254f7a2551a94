// Package client is the consumer side of the suggestion endpoint: it builds
// request payloads from trip state and guarantees at most one in-flight
// request per session, cancelling a pending request when a new one starts.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"

	"travelguide_backend/internal/itinerary/transport"
)

// ErrSuperseded reports that a newer request replaced this one before it
// finished. Its result must never be applied.
var ErrSuperseded = errors.New("suggestion request superseded by a newer one")

// APIError is a decoded error response from the suggestion service.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Client issues itinerary suggestion requests against a base URL.
type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
	}
}

// BuildRequest assembles the request payload. Known locations are reduced
// to the reference fields the prompt needs; descriptions stay behind.
func BuildRequest(cityID, cityName string, prefs transport.TravelPreferences, known []transport.LocationReference) transport.ItineraryRequest {
	refs := make([]transport.LocationReference, len(known))
	copy(refs, known)
	return transport.ItineraryRequest{
		CityID:            cityID,
		CityName:          cityName,
		Preferences:       &prefs,
		ExistingLocations: refs,
	}
}

// Suggest performs one blocking round trip. The context controls
// cancellation; there are no retries.
func (c *Client) Suggest(ctx context.Context, payload transport.ItineraryRequest) (*transport.SuggestionsResponse, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/ai/itinerary", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		apiErr := &APIError{}
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
		if jsonErr := json.Unmarshal(raw, apiErr); jsonErr != nil || apiErr.Code == "" {
			apiErr = &APIError{Code: "UNEXPECTED_ERROR", Message: "AI server responded with an error."}
		}
		return nil, apiErr
	}

	var result transport.SuggestionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Session serializes suggestion requests for one UI surface. Starting a new
// request aborts the previous in-flight one, and a response belonging to a
// superseded request is discarded instead of overwriting newer state. A
// failed request leaves the previously applied suggestions untouched.
type Session struct {
	client *Client

	mu          sync.Mutex
	cancel      context.CancelFunc
	generation  uint64
	suggestions []transport.SuggestedLocation
}

func NewSession(client *Client) *Session {
	return &Session{client: client}
}

// RequestSuggestions issues a request, superseding any pending one.
func (s *Session) RequestSuggestions(ctx context.Context, payload transport.ItineraryRequest) (*transport.SuggestionsResponse, error) {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	reqCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.generation++
	generation := s.generation
	s.mu.Unlock()

	resp, err := s.client.Suggest(reqCtx, payload)

	s.mu.Lock()
	defer s.mu.Unlock()

	if generation != s.generation {
		cancel()
		return nil, ErrSuperseded
	}
	s.cancel = nil
	cancel()

	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil, ErrSuperseded
		}
		return nil, err
	}

	s.suggestions = resp.Locations
	return resp, nil
}

// Suggestions returns the most recently applied result.
func (s *Session) Suggestions() []transport.SuggestedLocation {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]transport.SuggestedLocation, len(s.suggestions))
	copy(out, s.suggestions)
	return out
}

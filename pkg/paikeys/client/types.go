package client

import (
	"errors"
	"fmt"
	"net/http"
)

// Model is a catalog entry as served by the API.
type Model struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Provider       string   `json:"provider"`
	Capabilities   []string `json:"capabilities"`
	Strengths      []string `json:"strengths"`
	ContextWindow  int      `json:"contextWindow"`
	CostPerMillion float64  `json:"costPerMillion"`
	OpenSource     bool     `json:"openSource"`
}

// RouteRequest is the body of POST /api/route-model.
type RouteRequest struct {
	Prompt   string `json:"prompt"`
	Modality string `json:"modality"`
	Priority string `json:"priority"`
}

// Insights explains a routing decision.
type Insights struct {
	EstimatedTokens int      `json:"estimatedTokens"`
	Reasoning       []string `json:"reasoning"`
}

// RouteResponse is a routing decision.
type RouteResponse struct {
	Recommendation Model    `json:"recommendation"`
	Alternatives   []Model  `json:"alternatives"`
	Insights       Insights `json:"insights"`

	// RequestID is the X-Request-ID the server answered with.
	RequestID string `json:"-"`
}

// ModelList is the catalog listing.
type ModelList struct {
	Models      []Model `json:"models"`
	ETag        string  `json:"-"`
	NotModified bool    `json:"-"`
}

// APIError is a non-2xx response from the server.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
	RequestID  string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("paikeys API %d [%s]: %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("paikeys API %d: %s", e.StatusCode, e.Message)
}

// IsBadRequest reports whether err is an APIError for a rejected request.
func IsBadRequest(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusBadRequest
}

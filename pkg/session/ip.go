package session

import (
	"context"
	"encoding/json"
	"net/http"
	"time"
)

const defaultIPEndpoint = "https://api.ipify.org?format=json"

// IPLookup resolves the client's public IP through an external lookup
// service. The result only decorates login/register requests, so every
// failure degrades to "unknown".
type IPLookup struct {
	endpoint string
	http     *http.Client
}

// NewIPLookup uses the default ipify endpoint when endpoint is empty.
func NewIPLookup(endpoint string) *IPLookup {
	if endpoint == "" {
		endpoint = defaultIPEndpoint
	}
	return &IPLookup{
		endpoint: endpoint,
		http:     &http.Client{Timeout: 5 * time.Second},
	}
}

// Lookup returns the public IP, or "" if the service is unreachable or
// answers garbage.
func (l *IPLookup) Lookup(ctx context.Context) string {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.endpoint, nil)
	if err != nil {
		return ""
	}

	resp, err := l.http.Do(req)
	if err != nil {
		return ""
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ""
	}

	var payload struct {
		IP string `json:"ip"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return ""
	}
	return payload.IP
}

package locator

import (
	"fmt"
	"io"
	"net/http"
	"time"
)

// MaxContentResponseSize is the maximum allowed response body size for
// content fetches (1 GB). This prevents memory exhaustion from malicious
// gateways.
const MaxContentResponseSize = 1 << 30

// ContentResolver fetches encrypted listing payloads by CID from HTTP
// gateways in order. It returns ciphertext only; decryption requires the
// listing's secret obtained through a purchase event.
type ContentResolver struct {
	Gateways []string     // gateway base URLs (e.g. "https://ipfs.io")
	Client   *http.Client // HTTP client; nil uses a 30s-timeout default
}

// NewContentResolver creates a ContentResolver over the given gateways.
func NewContentResolver(gateways []string) *ContentResolver {
	return &ContentResolver{
		Gateways: gateways,
		Client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Fetch retrieves the payload for cid, trying each gateway in order and
// returning the first successful result.
func (r *ContentResolver) Fetch(cid string) ([]byte, error) {
	if err := ValidateCID(cid); err != nil {
		return nil, err
	}

	client := r.Client
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}

	for _, gw := range r.Gateways {
		data, err := r.fetchFromGateway(client, gw, cid)
		if err == nil {
			return data, nil
		}
		// Continue to the next gateway on any error.
	}

	return nil, fmt.Errorf("%w: cid %s", ErrNotFound, cid)
}

// fetchFromGateway fetches the payload from a single gateway.
// Endpoint: GET {baseURL}/ipfs/{cid}
func (r *ContentResolver) fetchFromGateway(client *http.Client, baseURL, cid string) ([]byte, error) {
	url := baseURL + "/ipfs/" + cid

	resp, err := client.Get(url)
	if err != nil {
		return nil, fmt.Errorf("locator: gateway %s: %w", baseURL, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("locator: gateway %s: HTTP %d", baseURL, resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, MaxContentResponseSize))
	if err != nil {
		return nil, fmt.Errorf("locator: gateway %s: read body: %w", baseURL, err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("locator: gateway %s: empty response", baseURL)
	}

	return data, nil
}

// Package pincode looks up Indian postal pincodes for address auto-fill.
// The upstream service is a free best-effort API; callers treat any
// failure as "no suggestion" and let the user type the fields by hand.
package pincode

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"storefront/config"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
)

const lookupTimeout = 5 * time.Second

// Client implements service.PincodeLookup over api.postalpincode.in.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates the pincode lookup client.
func NewClient(cfg *config.Config) service.PincodeLookup {
	return &Client{
		baseURL:    cfg.Pincode.BaseURL,
		httpClient: &http.Client{Timeout: lookupTimeout},
	}
}

// lookupResponse mirrors the upstream response: a one-element array with
// a status and a list of post offices for the pincode.
type lookupResponse []struct {
	Status     string `json:"Status"`
	PostOffice []struct {
		Name     string `json:"Name"`
		District string `json:"District"`
		State    string `json:"State"`
	} `json:"PostOffice"`
}

func (c *Client) Lookup(ctx context.Context, pin string) (*service.PincodeInfo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/pincode/"+pin, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create pincode request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "pincode lookup failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)

		return nil, errors.Errorf("pincode lookup failed with status %d: %s", resp.StatusCode, string(body))
	}

	var decoded lookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, errors.Wrap(err, "failed to decode pincode response")
	}

	if len(decoded) == 0 || decoded[0].Status != "Success" || len(decoded[0].PostOffice) == 0 {
		return nil, errors.Errorf("no locality found for pincode %s", pin)
	}

	office := decoded[0].PostOffice[0]

	return &service.PincodeInfo{
		City:  office.District,
		State: office.State,
	}, nil
}

// Package arcgis is a client for querying and updating feature layers of an
// ArcGIS-style feature service.
package arcgis

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Client talks to one feature service. Layers are addressed by their
// path relative to the service root (e.g. "0", "1").
type Client struct {
	HTTP    *http.Client
	BaseURL string
	Token   string
}

// NewClient returns a new Client for the service at baseURL.
func NewClient(httpClient *http.Client, baseURL, token string) *Client {
	return &Client{
		HTTP:    httpClient,
		BaseURL: strings.TrimRight(baseURL, "/"),
		Token:   token,
	}
}

// Query fetches every feature of the layer, following the service's
// transfer limit with resultOffset until the collection is exhausted.
// Features are returned in the order the service delivers them.
func (c *Client) Query(ctx context.Context, layer string) ([]Feature, error) {
	var features []Feature
	offset := 0
	for {
		page, err := c.queryPage(ctx, layer, offset)
		if err != nil {
			return nil, err
		}
		features = append(features, page.Features...)
		if !page.ExceededTransferLimit || len(page.Features) == 0 {
			return features, nil
		}
		offset += len(page.Features)
	}
}

func (c *Client) queryPage(ctx context.Context, layer string, offset int) (*queryResponse, error) {
	params := url.Values{}
	params.Set("where", "1=1")
	params.Set("outFields", "*")
	params.Set("f", "json")
	params.Set("token", c.Token)
	if offset > 0 {
		params.Set("resultOffset", strconv.Itoa(offset))
	}

	endpoint := fmt.Sprintf("%s/%s/query?%s", c.BaseURL, layer, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "query layer %s", layer)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("query layer %s: status %d", layer, resp.StatusCode)
	}

	var body queryResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, errors.Wrapf(err, "query layer %s", layer)
	}
	if body.Error != nil {
		return nil, errors.Wrapf(body.Error, "query layer %s", layer)
	}
	return &body, nil
}

// ApplyEdits submits updates as one batch and returns the per-feature
// results in submission order. A rejected feature is reported in its
// EditResult, not as an error; only transport and service-level failures
// produce an error.
func (c *Client) ApplyEdits(ctx context.Context, layer string, updates []Feature) ([]EditResult, error) {
	payload, err := json.Marshal(updates)
	if err != nil {
		return nil, err
	}

	form := url.Values{}
	form.Set("f", "json")
	form.Set("token", c.Token)
	form.Set("updates", string(payload))

	endpoint := fmt.Sprintf("%s/%s/applyEdits", c.BaseURL, layer)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "apply edits to layer %s", layer)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("apply edits to layer %s: status %d", layer, resp.StatusCode)
	}

	var body applyEditsResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, errors.Wrapf(err, "apply edits to layer %s", layer)
	}
	if body.Error != nil {
		return nil, errors.Wrapf(body.Error, "apply edits to layer %s", layer)
	}
	return body.UpdateResults, nil
}

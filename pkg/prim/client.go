package prim

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/idfm-prim/idfm/pkg/navitia"
	"github.com/idfm-prim/idfm/pkg/util"
	"github.com/rs/zerolog/log"
)

const DefaultBaseURL = "https://prim.iledefrance-mobilites.fr/marketplace/v2/navitia"
const DefaultTimeout = 20 * time.Second

const errorBodyLength = 512

type Options struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration

	HTTPClient *http.Client
}

// Client talks to the Navitia API exposed through the PRIM marketplace
type Client struct {
	apiKey  string
	baseURL string

	httpClient *http.Client
}

func NewClient(options Options) (*Client, error) {
	if options.APIKey == "" {
		return nil, ErrMissingCredential
	}

	baseURL := options.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	httpClient := options.HTTPClient
	if httpClient == nil {
		timeout := options.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}

		httpClient = &http.Client{Timeout: timeout}
	}

	return &Client{
		apiKey:     options.APIKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}, nil
}

func (c *Client) Places(ctx context.Context, query string, count int) (*navitia.PlacesResponse, error) {
	var response navitia.PlacesResponse
	err := c.getJSON(ctx, "places", url.Values{
		"q":     {query},
		"count": {strconv.Itoa(count)},
	}, &response)
	if err != nil {
		return nil, err
	}

	return &response, nil
}

func (c *Client) Journeys(ctx context.Context, fromID string, toID string, count int) (*navitia.JourneysResponse, error) {
	var response navitia.JourneysResponse
	err := c.getJSON(ctx, "journeys", url.Values{
		"from":  {fromID},
		"to":    {toID},
		"count": {strconv.Itoa(count)},
	}, &response)
	if err != nil {
		return nil, err
	}

	return &response, nil
}

func (c *Client) Disruptions(ctx context.Context, filter string) (*navitia.DisruptionsResponse, error) {
	var response navitia.DisruptionsResponse
	err := c.getJSON(ctx, "disruptions", url.Values{
		"filter": {filter},
	}, &response)
	if err != nil {
		return nil, err
	}

	return &response, nil
}

// Raw returns the undecoded response document
func (c *Client) Raw(ctx context.Context, path string, params url.Values) ([]byte, error) {
	return c.get(ctx, path, params)
}

func (c *Client) getJSON(ctx context.Context, path string, params url.Values, target any) error {
	body, err := c.get(ctx, path, params)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, target); err != nil {
		return &GatewayError{
			Path: path,
			Err:  fmt.Errorf("malformed response: %w", err),
		}
	}

	return nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	path = strings.TrimLeft(path, "/")
	requestURL := fmt.Sprintf("%s/%s", c.baseURL, path)
	if len(params) > 0 {
		requestURL = fmt.Sprintf("%s?%s", requestURL, params.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, &GatewayError{Path: path, Err: err}
	}
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Accept", "application/json")

	startTime := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &GatewayError{Path: path, Err: err}
	}
	defer resp.Body.Close()

	log.Debug().
		Str("path", path).
		Int("status", resp.StatusCode).
		Str("latency", time.Since(startTime).String()).
		Msg("PRIM request")

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &GatewayError{Path: path, StatusCode: resp.StatusCode, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &GatewayError{
			Path:       path,
			StatusCode: resp.StatusCode,
			Body:       util.TrimString(string(body), errorBodyLength),
		}
	}

	return body, nil
}

package amadeus

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/nvarma/skyfinder/internal/models"
	"github.com/nvarma/skyfinder/internal/ratelimit"
	"github.com/nvarma/skyfinder/pkg/logger"
)

const (
	DefaultBaseURL     = "https://test.api.amadeus.com"
	locationsPageLimit = 5
	maxOffers          = 20

	endpointToken     = "token"
	endpointOffers    = "offers"
	endpointLocations = "locations"
)

// ErrNotConfigured means the client credentials are missing; only the mock
// generator can answer searches in that case.
var ErrNotConfigured = errors.New("amadeus client credentials are not configured")

type Config struct {
	BaseURL      string
	ClientID     string
	ClientSecret string
	HTTPClient   *http.Client
	Limiter      *ratelimit.EndpointLimiter
	Logger       logger.Logger
}

// Client talks to the flight-offers and locations endpoints with a cached
// bearer token.
type Client struct {
	baseURL      string
	clientID     string
	clientSecret string
	httpClient   *http.Client
	limiter      *ratelimit.EndpointLimiter
	tokens       *TokenCache
	log          logger.Logger
	now          func() time.Time
}

func NewClient(cfg Config, tokens *TokenCache) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: 10 * time.Second}
	}
	if cfg.Limiter == nil {
		cfg.Limiter = ratelimit.NewEndpointLimiterWithDefaults()
	}
	if cfg.Logger == nil {
		cfg.Logger = logger.NewNop()
	}
	if tokens == nil {
		tokens = NewTokenCache()
	}
	return &Client{
		baseURL:      cfg.BaseURL,
		clientID:     cfg.ClientID,
		clientSecret: cfg.ClientSecret,
		httpClient:   cfg.HTTPClient,
		limiter:      cfg.Limiter,
		tokens:       tokens,
		log:          cfg.Logger,
		now:          time.Now,
	}
}

// Configured reports whether live searches are possible at all.
func (c *Client) Configured() bool {
	return c.clientID != "" && c.clientSecret != ""
}

func (c *Client) accessToken(ctx context.Context) (string, error) {
	if !c.Configured() {
		return "", ErrNotConfigured
	}

	if token, ok := c.tokens.Get(c.now()); ok {
		return token, nil
	}

	if err := c.limiter.Wait(ctx, endpointToken); err != nil {
		return "", err
	}

	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", c.clientID)
	form.Set("client_secret", c.clientSecret)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/v1/security/oauth2/token", strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("token request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("failed to obtain access token (status %d)", resp.StatusCode)
	}

	var payload tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("token response: %w", err)
	}

	c.tokens.Set(payload.AccessToken, time.Duration(payload.ExpiresIn)*time.Second, c.now())
	return payload.AccessToken, nil
}

// SearchOffers fetches raw flight offers for the request. Offers come back
// unnormalized; malformed ones are the normalizer's problem, not an error here.
func (c *Client) SearchOffers(ctx context.Context, req models.SearchRequest) ([]Offer, error) {
	token, err := c.accessToken(ctx)
	if err != nil {
		return nil, err
	}

	if err := c.limiter.Wait(ctx, endpointOffers); err != nil {
		return nil, err
	}

	q := url.Values{}
	q.Set("originLocationCode", req.Origin)
	q.Set("destinationLocationCode", req.Destination)
	q.Set("departureDate", req.DepartureDate)
	if req.ReturnDate != "" {
		q.Set("returnDate", req.ReturnDate)
	}
	q.Set("adults", strconv.Itoa(req.Passengers.Adults))
	q.Set("currencyCode", "USD")
	if req.TravelClass != "" {
		q.Set("travelClass", string(req.TravelClass))
	}
	q.Set("max", strconv.Itoa(maxOffers))

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/v2/shopping/flight-offers?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("flight offers request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.New(c.errorMessage(resp))
	}

	var payload offersResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("flight offers response: %w", err)
	}

	return payload.Data, nil
}

// errorMessage pulls the first error detail out of a non-success body, falling
// back to a generic message when the body is not what we expect.
func (c *Client) errorMessage(resp *http.Response) string {
	message := "flight offer search failed"

	var payload apiError
	if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil {
		if len(payload.Errors) > 0 && payload.Errors[0].Detail != "" {
			message = payload.Errors[0].Detail
		}
	}
	return message
}

// SearchLocations looks up airports/cities for an autocomplete keyword.
// Keywords shorter than 2 characters return nothing without a network call.
func (c *Client) SearchLocations(ctx context.Context, keyword string) ([]models.LocationOption, error) {
	keyword = strings.TrimSpace(keyword)
	if len(keyword) < 2 {
		return nil, nil
	}

	token, err := c.accessToken(ctx)
	if err != nil {
		return nil, err
	}

	if err := c.limiter.Wait(ctx, endpointLocations); err != nil {
		return nil, err
	}

	q := url.Values{}
	q.Set("keyword", keyword)
	q.Set("subType", "AIRPORT,CITY")
	q.Set("page[limit]", strconv.Itoa(locationsPageLimit))

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/v1/reference-data/locations?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("locations request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("locations request failed (status %d)", resp.StatusCode)
	}

	var payload locationsResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("locations response: %w", err)
	}

	options := make([]models.LocationOption, 0, len(payload.Data))
	for _, loc := range payload.Data {
		if loc.IataCode == "" {
			continue
		}
		options = append(options, models.LocationOption{
			Iata:  loc.IataCode,
			Label: locationLabel(loc),
		})
	}
	return options, nil
}

func locationLabel(loc Location) string {
	if loc.SubType == "CITY" && loc.Address.CityName != "" && loc.Address.CityName != loc.Name {
		return fmt.Sprintf("%s (%s)", loc.Address.CityName, loc.IataCode)
	}
	return fmt.Sprintf("%s (%s)", loc.Name, loc.IataCode)
}

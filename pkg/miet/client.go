package miet

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dgraph-io/ristretto"

	"github.com/okhsunrog/sch-parse/pkg/schedule"
)

var baseURL = "https://miet.ru/schedule"

// cacheTTL bounds how long a response body is reused within one run
const cacheTTL = 5 * time.Minute

const maxAttempts = 3

var (
	// ErrTransport is returned for network failures and non-200 responses
	ErrTransport = errors.New("transport failure")
	// ErrMalformedResponse is returned when the body is not the expected JSON
	ErrMalformedResponse = errors.New("malformed response")
)

// The schedule endpoints only answer requests that look like the site's own AJAX calls
var defaultHeaders = map[string]string{
	"User-Agent":       "Mozilla/5.0 (X11; Linux x86_64; rv:109.0) Gecko/20100101 Firefox/115.0",
	"Accept":           "application/json, text/javascript, */*; q=0.01",
	"Accept-Language":  "ru-RU,ru;q=0.8,en-US;q=0.5,en;q=0.3",
	"X-Requested-With": "XMLHttpRequest",
	"Origin":           "https://miet.ru",
	"Referer":          "https://miet.ru/schedule/",
}

// Client talks to the MIET schedule API
type Client struct {
	httpClient *http.Client
	cache      *ristretto.Cache
	retryDelay time.Duration
}

// NewClient creates a new API client with an in-memory response cache
func NewClient() (*Client, error) {
	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 1e4,      // number of keys to track frequency of
		MaxCost:     64 << 20, // total cached body size (64MB)
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create response cache: %w", err)
	}

	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		cache:      cache,
		retryDelay: time.Second,
	}, nil
}

// ScheduleResponse is the body returned by the /data endpoint
type ScheduleResponse struct {
	Semester string              `json:"Semestr"`
	Lessons  []schedule.RawEntry `json:"Data"`
}

// FetchGroups retrieves the names of all study groups
func (c *Client) FetchGroups() ([]string, error) {
	var groups []string
	err := c.fetch("groups", func() (*http.Request, error) {
		return http.NewRequest(http.MethodGet, baseURL+"/groups", nil)
	}, func(body []byte) error {
		groups = nil
		if err := json.Unmarshal(body, &groups); err != nil {
			return fmt.Errorf("%w: decoding group list: %v (body: %s)", ErrMalformedResponse, err, snippet(body))
		}
		// A null body decodes without error but is not a group list
		if groups == nil {
			return fmt.Errorf("%w: group list is missing (body: %s)", ErrMalformedResponse, snippet(body))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return groups, nil
}

// scheduleBody mirrors ScheduleResponse with a pointer so a missing Data key can be told apart from an empty one
type scheduleBody struct {
	Semester string               `json:"Semestr"`
	Lessons  *[]schedule.RawEntry `json:"Data"`
}

// FetchSchedule retrieves the full semester schedule of a group
func (c *Client) FetchSchedule(group string) (*ScheduleResponse, error) {
	form := url.Values{"group": {group}}.Encode()

	var resp *ScheduleResponse
	err := c.fetch("data|"+group, func() (*http.Request, error) {
		req, err := http.NewRequest(http.MethodPost, baseURL+"/data", strings.NewReader(form))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded; charset=UTF-8")
		return req, nil
	}, func(body []byte) error {
		var decoded scheduleBody
		if err := json.Unmarshal(body, &decoded); err != nil {
			return fmt.Errorf("%w: decoding schedule for %s: %v (body: %s)", ErrMalformedResponse, group, err, snippet(body))
		}
		if decoded.Lessons == nil {
			return fmt.Errorf("%w: schedule for %s has no Data list (body: %s)", ErrMalformedResponse, group, snippet(body))
		}
		resp = &ScheduleResponse{Semester: decoded.Semester, Lessons: *decoded.Lessons}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return resp, nil
}

// fetch obtains the body for key, from the cache when possible, and hands it
// to decode. Only bodies that decode cleanly are cached.
func (c *Client) fetch(key string, newRequest func() (*http.Request, error), decode func([]byte) error) error {
	if cached, found := c.cache.Get(key); found {
		return decode(cached.([]byte))
	}

	body, err := c.doWithRetries(newRequest)
	if err != nil {
		return err
	}

	if err := decode(body); err != nil {
		return err
	}
	c.cache.SetWithTTL(key, body, int64(len(body)), cacheTTL)
	return nil
}

// doWithRetries sends a request up to maxAttempts times for network errors and 502/503/504
func (c *Client) doWithRetries(newRequest func() (*http.Request, error)) ([]byte, error) {
	var lastErr error

	for attempt := 0; attempt < maxAttempts; attempt++ {
		if attempt > 0 {
			time.Sleep(time.Duration(attempt) * c.retryDelay)
		}

		req, err := newRequest()
		if err != nil {
			return nil, err
		}
		for k, v := range defaultHeaders {
			req.Header.Set(k, v)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("%s %s: %w", req.Method, req.URL, err)
			continue
		}

		body, readErr := io.ReadAll(resp.Body)
		resp.Body.Close()

		switch {
		case resp.StatusCode == http.StatusBadGateway || resp.StatusCode == http.StatusServiceUnavailable || resp.StatusCode == http.StatusGatewayTimeout:
			lastErr = fmt.Errorf("%s %s: transient status code %d", req.Method, req.URL, resp.StatusCode)
			continue
		case resp.StatusCode != http.StatusOK:
			return nil, fmt.Errorf("%w: %s %s: unexpected status code %d (body: %s)", ErrTransport, req.Method, req.URL, resp.StatusCode, snippet(body))
		case readErr != nil:
			lastErr = fmt.Errorf("%s %s: reading body: %w", req.Method, req.URL, readErr)
			continue
		}

		return body, nil
	}

	return nil, fmt.Errorf("%w: failed after %d attempts: %w", ErrTransport, maxAttempts, lastErr)
}

func snippet(body []byte) string {
	const limit = 200
	s := strings.TrimSpace(string(body))
	if len([]rune(s)) > limit {
		return string([]rune(s)[:limit]) + "..."
	}
	return s
}

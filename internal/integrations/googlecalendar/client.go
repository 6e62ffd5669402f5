package googlecalendar

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Logger is the logging surface the client needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client is a thin REST client for the Google Calendar events endpoint.
// Authentication is a bearer token supplied by configuration; token
// acquisition and refresh belong to the deployment, not this service.
type Client struct {
	baseURL    string
	calendarID string
	token      string
	httpClient *http.Client
	log        Logger
}

// NewClient creates a calendar client for a single calendar.
func NewClient(baseURL, calendarID, token string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		calendarID: calendarID,
		token:      token,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// CreateEvent inserts an event into the configured calendar.
func (c *Client) CreateEvent(ctx context.Context, event *Event) (*Event, error) {
	endpoint := fmt.Sprintf("%s/calendars/%s/events",
		c.baseURL, url.PathEscape(c.calendarID))

	body, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to encode event: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Created events come back with status 200 and the stored event.
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, ErrUnauthorized
	default:
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(raw))
	}

	var created Event
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &created, nil
}

// DeleteEvent removes an event from the configured calendar.
func (c *Client) DeleteEvent(ctx context.Context, eventID string) error {
	endpoint := fmt.Sprintf("%s/calendars/%s/events/%s",
		c.baseURL, url.PathEscape(c.calendarID), url.PathEscape(eventID))

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, endpoint, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusNoContent, http.StatusOK:
		return nil
	case http.StatusNotFound, http.StatusGone:
		return ErrEventNotFound
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthorized
	default:
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(raw))
	}
}

// CreateEventWithGracefulDegradation inserts an event but degrades to
// ErrServiceDegraded when the calendar API is unreachable. Schedule creation
// must not fail because the calendar is down; the caller records the
// schedule without an event id and moves on.
func (c *Client) CreateEventWithGracefulDegradation(ctx context.Context, event *Event) (*Event, error) {
	c.log.Info("Creating calendar event summary=%q start=%s", event.Summary, event.Start.DateTime)

	created, err := c.CreateEvent(ctx, event)
	if err != nil {
		if errors.Is(err, ErrUnauthorized) {
			// Misconfiguration, not an outage. Surface it loudly but still
			// degrade so the schedule is saved.
			c.log.Error("Calendar token rejected, check google_calendar config: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrServiceDegraded, err)
		}

		c.log.Error("Calendar API unavailable, applying graceful degradation: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrServiceDegraded, err)
	}

	c.log.Info("Successfully created calendar event id=%s", created.ID)
	return created, nil
}

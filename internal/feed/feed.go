package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client — клиент фида каталога: один настроенный endpoint,
// один GET за вызов. Тело разбирается duck-typed, потому что
// фид наполняется из таблицы руками и схеме верить нельзя.
type Client struct {
	Doer         Doer
	URL          string
	ApplyHeaders func(*http.Request)
}

func New(doer Doer, feedURL string, applyHeaders func(*http.Request)) *Client {
	return &Client{
		Doer:         doer,
		URL:          strings.TrimSpace(feedURL),
		ApplyHeaders: applyHeaders,
	}
}

const maxBodyBytes = 4 * 1024 * 1024

// Fetch выполняет ровно один запрос к фиду и возвращает сырой payload.
func (c *Client) Fetch(ctx context.Context) (Payload, error) {
	if c.URL == "" {
		return Payload{}, fmt.Errorf("feed URL is empty")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL, nil)
	if err != nil {
		return Payload{}, err
	}
	req.Header.Set("Accept", "application/json")
	if c.ApplyHeaders != nil {
		c.ApplyHeaders(req)
	}

	resp, err := c.Doer.Do(req)
	if err != nil {
		return Payload{}, err
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return Payload{}, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Payload{}, &APIError{Status: resp.StatusCode, Body: strings.TrimSpace(string(b))}
	}

	dec := json.NewDecoder(strings.NewReader(string(b)))
	dec.UseNumber()

	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return Payload{}, fmt.Errorf("feed: bad json body=%s", string(b[:min(len(b), 1024)]))
	}

	return Payload{Raw: raw}, nil
}

package generator

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// DefaultTimeout bounds a single HTTP request issued by a generator.
const DefaultTimeout = 15 * time.Second

// auth decorates an outgoing request.
type auth func(*http.Request)

func basicAuth(user, password string) auth {
	if user == "" {
		return nil
	}
	return func(r *http.Request) { r.SetBasicAuth(user, password) }
}

func bearerAuth(token string) auth {
	if strings.TrimSpace(token) == "" {
		return nil
	}
	return func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+token) }
}

// get performs a GET and hands the body to decode. Non-2xx responses are
// errors carrying a prefix of the body.
func get(ctx context.Context, client *http.Client, url string, a auth, decode func(io.Reader) error) error {
	if client == nil {
		client = &http.Client{Timeout: DefaultTimeout}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if a != nil {
		a(req)
	}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("GET %s: %w", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
		msg := strings.TrimSpace(string(snippet))
		if msg == "" {
			return fmt.Errorf("GET %s: %s", url, resp.Status)
		}
		return fmt.Errorf("GET %s: %s: %s", url, resp.Status, msg)
	}
	if err := decode(resp.Body); err != nil {
		return fmt.Errorf("GET %s: %w", url, err)
	}
	return nil
}

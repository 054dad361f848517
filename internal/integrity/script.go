package integrity

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// Defaults for the js-sha1 library pages may load.
const (
	DefaultHashLibraryURL       = "https://cdnjs.cloudflare.com/ajax/libs/js-sha1/0.6.0/sha1.min.js"
	DefaultHashLibraryIntegrity = "sha512-E3YpFkKq6GwJV4R5EHAgN6p6nQvRzCq6Q6k2q+w5FvIhqpZbZ8nYhPxR8tZcLeLlqejNFqS8QraBpZHR5t5uVw=="
	DefaultCrossOrigin          = "anonymous"
)

// Script describes an externally hosted script tag with an integrity hash.
// It has no data dependency on the itinerary.
type Script struct {
	URL         string
	Integrity   string
	CrossOrigin string
	// GlobalName is the function name pages expect; AltGlobalName is copied
	// into it on load when the library exposed only that one.
	GlobalName    string
	AltGlobalName string
}

// HashLibrary returns the js-sha1 script description.
func HashLibrary(url, integrity, crossOrigin string) Script {
	if url == "" {
		url = DefaultHashLibraryURL
	}
	if crossOrigin == "" {
		crossOrigin = DefaultCrossOrigin
	}
	return Script{
		URL:           url,
		Integrity:     integrity,
		CrossOrigin:   crossOrigin,
		GlobalName:    "sha1",
		AltGlobalName: "jssha1",
	}
}

// Fetch downloads the script body.
func (s Script) Fetch(ctx context.Context, client *http.Client) ([]byte, error) {
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", s.URL, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching %s: status %d", s.URL, resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", s.URL, err)
	}
	return body, nil
}

// VerifyRemote fetches the script and checks it against its integrity value.
func (s Script) VerifyRemote(ctx context.Context, client *http.Client) error {
	body, err := s.Fetch(ctx, client)
	if err != nil {
		return err
	}
	return Verify(s.Integrity, body)
}

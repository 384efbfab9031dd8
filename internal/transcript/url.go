package transcript

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// ErrUnrecognizedURL reports a URL that does not belong to a known
// YouTube host or carries no video identifier.
var ErrUnrecognizedURL = errors.New("unrecognized video URL")

// ExtractVideoID parses a YouTube URL and returns the video identifier.
// For the shortened domain the identifier is the path component; for the
// standard domain it is the "v" query parameter.
func ExtractVideoID(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnrecognizedURL, err)
	}

	switch u.Hostname() {
	case "youtu.be":
		id := strings.TrimPrefix(u.Path, "/")
		if id == "" {
			return "", fmt.Errorf("%w: empty path in %q", ErrUnrecognizedURL, rawURL)
		}
		return id, nil
	case "www.youtube.com", "youtube.com":
		id := u.Query().Get("v")
		if id == "" {
			return "", fmt.Errorf("%w: missing v parameter in %q", ErrUnrecognizedURL, rawURL)
		}
		return id, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnrecognizedURL, rawURL)
}

package file

import (
	"errors"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
)

const originsDir = "origins"

// OriginDir returns the storage directory for the origin of apiURL, so two
// API hosts never share keys.
func OriginDir(dataDir string, apiURL string) (string, error) {
	origin, err := OriginKey(apiURL)
	if err != nil {
		return "", err
	}

	return filepath.Join(dataDir, originsDir, origin), nil
}

// OriginKey flattens scheme, host and port into a directory name, e.g.
// "http_localhost_4000".
func OriginKey(apiURL string) (string, error) {
	parsed, err := url.Parse(strings.TrimSpace(apiURL))
	if err != nil {
		return "", fmt.Errorf("parse api url: %w", err)
	}
	if parsed.Scheme == "" || parsed.Hostname() == "" {
		return "", errors.New("api url must include scheme and host")
	}

	port := parsed.Port()
	if port == "" {
		switch parsed.Scheme {
		case "https":
			port = "443"
		default:
			port = "80"
		}
	}

	var b strings.Builder
	for _, part := range []string{parsed.Scheme, parsed.Hostname(), port} {
		if b.Len() > 0 {
			b.WriteByte('_')
		}
		for _, r := range strings.ToLower(part) {
			switch {
			case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '.', r == '-':
				b.WriteRune(r)
			default:
				b.WriteByte('-')
			}
		}
	}

	return b.String(), nil
}

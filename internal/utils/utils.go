package utils

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"path"
	"strings"

	"golang.org/x/net/idna"
)

var (
	ErrEmptyURL    = errors.New("empty url")
	ErrMissingHost = errors.New("url has no host")
	ErrBadScheme   = errors.New("url scheme must be http or https")
)

// CanonicalizeOptions controls optional canonicalization policies.
type CanonicalizeOptions struct {
	// StripTrailingSlash treats /a and /a/ the same by removing the
	// trailing slash (except for root "/").
	StripTrailingSlash bool

	// DefaultScheme is assumed for schemeless input; if empty a scheme is
	// required.
	DefaultScheme string
}

// Canonicalize returns a deterministic canonical URL string or an error.
// Scheme and host are lowercased, IDN hosts converted to punycode, default
// ports and fragments dropped, the path cleaned.
func Canonicalize(raw string, opts CanonicalizeOptions) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyURL
	}

	if opts.DefaultScheme != "" && !strings.Contains(raw, "://") {
		raw = opts.DefaultScheme + "://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Host == "" {
		return "", ErrMissingHost
	}

	u.Scheme = strings.ToLower(u.Scheme)
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", ErrBadScheme
	}

	// Lowercase host and convert IDN -> punycode
	host := strings.ToLower(u.Hostname())
	if puny, err := idna.Lookup.ToASCII(host); err == nil {
		host = puny
	}

	// Preserve non-default port only
	port := u.Port()
	if (u.Scheme == "http" && port == "80") || (u.Scheme == "https" && port == "443") || port == "" {
		u.Host = host
	} else {
		u.Host = net.JoinHostPort(host, port)
	}

	// Drop userinfo (credentials)
	u.User = nil

	cleanPath := path.Clean(u.Path)
	if cleanPath == "." {
		cleanPath = "/"
	}
	if opts.StripTrailingSlash && len(cleanPath) > 1 {
		cleanPath = strings.TrimRight(cleanPath, "/")
		if cleanPath == "" {
			cleanPath = "/"
		}
	}
	u.Path = cleanPath
	u.Fragment = ""

	return u.String(), nil
}

// Origin reduces a URL to its scheme+host form, the base against which
// sitemap locations are probed.
func Origin(raw string) (string, error) {
	canon, err := Canonicalize(raw, CanonicalizeOptions{DefaultScheme: "https"})
	if err != nil {
		return "", err
	}
	u, err := url.Parse(canon)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s://%s", u.Scheme, u.Host), nil
}

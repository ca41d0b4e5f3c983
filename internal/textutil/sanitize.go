// Package textutil cleans user supplied text before it is stored.
// Every function is total: bad input degrades to a best-effort or empty
// result, never to an error.
package textutil

import (
	"html"
	"net"
	"net/url"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
)

var (
	strictPolicy = bluemonday.StrictPolicy()
	validate     = validator.New()

	allowedSchemes = map[string]bool{
		"http":   true,
		"https":  true,
		"ftp":    true,
		"ftps":   true,
		"mailto": true,
		"news":   true,
		"irc":    true,
		"gopher": true,
		"nntp":   true,
		"feed":   true,
		"telnet": true,
	}
)

// maxStripPasses bounds how many layers of entity encoding are peeled off.
const maxStripPasses = 8

// SanitizeTextField strips markup and collapses all whitespace, line
// breaks included, to single spaces. Entity encoded markup is decoded and
// stripped as well; input still carrying markup after maxStripPasses yields "".
func SanitizeTextField(s string) string {
	if !utf8.ValidString(s) {
		return ""
	}
	for range maxStripPasses {
		next := html.UnescapeString(strictPolicy.Sanitize(s))
		if next == s {
			return strings.Join(strings.Fields(s), " ")
		}
		s = next
	}
	return ""
}

// SanitizeEmail returns the trimmed address, or "" when it is not a valid
// email address.
func SanitizeEmail(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	if err := validate.Var(s, "required,email"); err != nil {
		return ""
	}
	return s
}

// CanonicalURL makes s safe to store as a link target. Scheme-less hosts
// get http://, disallowed schemes yield "".
func CanonicalURL(s string) string {
	s = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, strings.TrimSpace(s))
	if s == "" {
		return ""
	}
	s = strings.ReplaceAll(s, " ", "%20")

	if !strings.Contains(s, ":") && !strings.ContainsAny(s[:1], "/#?") {
		s = "http://" + s
	}

	u, err := url.Parse(s)
	if err != nil {
		return ""
	}
	if u.Scheme != "" {
		u.Scheme = strings.ToLower(u.Scheme)
		if !allowedSchemes[u.Scheme] {
			return ""
		}
	}
	u.Host = strings.ToLower(u.Host)
	return u.String()
}

// SanitizeIP returns the canonical form of an IP address, or "".
func SanitizeIP(s string) string {
	ip := net.ParseIP(strings.TrimSpace(s))
	if ip == nil {
		return ""
	}
	return ip.String()
}

// SanitizeKey lowercases s and keeps only a-z, 0-9, '_' and '-'.
func SanitizeKey(s string) string {
	s = strings.ToLower(s)
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_', r == '-':
			return r
		default:
			return -1
		}
	}, s)
}

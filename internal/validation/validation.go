package validation

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// PostIDPattern matches X post ids, which are decimal snowflake values.
var PostIDPattern = regexp.MustCompile(`^[0-9]+$`)

// ValidateBaseURL checks that a service base URL is well formed and uses an
// allowed scheme (http/https only).
func ValidateBaseURL(urlStr string) (bool, string) {
	if urlStr == "" {
		return false, "Base URL is required"
	}

	u, err := url.Parse(urlStr)
	if err != nil {
		return false, "Invalid URL format"
	}

	scheme := strings.ToLower(u.Scheme)
	if scheme != "http" && scheme != "https" {
		return false, "Base URL must use http:// or https:// scheme"
	}

	if u.Host == "" {
		return false, "Base URL must have a valid host"
	}

	return true, ""
}

// ExtractPostID pulls the post id out of a post URL: the last path segment,
// query string stripped. A bare numeric id is accepted as-is.
func ExtractPostID(postURL string) (string, error) {
	trimmed := strings.TrimRight(strings.TrimSpace(postURL), "/")
	if trimmed == "" {
		return "", errors.New("post URL is required")
	}

	segment := trimmed
	if i := strings.LastIndex(segment, "/"); i >= 0 {
		segment = segment[i+1:]
	}
	if i := strings.Index(segment, "?"); i >= 0 {
		segment = segment[:i]
	}

	if !PostIDPattern.MatchString(segment) {
		return "", fmt.Errorf("no post id found in %q", postURL)
	}
	return segment, nil
}

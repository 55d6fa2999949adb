package session

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Callback carries the parameters the identity provider hands back
// after a successful Google sign-in.
type Callback struct {
	Token     string
	Email     string
	ExpiresIn int64
}

// ParseCallback extracts callback parameters from a fragment- or
// query-encoded string such as "token=...&email=...&expiresIn=3600".
// A leading "#" or "?" is tolerated. All three parameters are
// required; expiresIn must be an integer number of seconds.
func ParseCallback(raw string) (Callback, error) {
	raw = strings.TrimPrefix(strings.TrimPrefix(raw, "#"), "?")

	values, err := url.ParseQuery(raw)
	if err != nil {
		return Callback{}, fmt.Errorf("failed to parse callback parameters: %w", err)
	}

	token := values.Get("token")
	email := values.Get("email")
	expiresIn := values.Get("expiresIn")
	if token == "" || email == "" || expiresIn == "" {
		return Callback{}, fmt.Errorf("callback is missing token, email or expiresIn")
	}

	seconds, err := strconv.ParseInt(expiresIn, 10, 64)
	if err != nil {
		return Callback{}, fmt.Errorf("failed to parse expiresIn: %w", err)
	}

	return Callback{Token: token, Email: email, ExpiresIn: seconds}, nil
}

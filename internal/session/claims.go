package session

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims holds the subset of token claims the client reads. Nothing
// here is verified: the subject is a personalization hint and the
// backend re-checks identity on every privileged mutation.
type Claims struct {
	Subject string
	Email   string
}

var claimsParser = jwt.NewParser()

// DecodeClaims extracts claims from the payload segment of a bearer
// token without checking its signature. It is total: malformed input,
// a payload that is not base64url JSON, or a missing sub claim all
// yield ok == false, never an error.
func DecodeClaims(token string) (Claims, bool) {
	parsed, _, err := claimsParser.ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return Claims{}, false
	}

	mapClaims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, false
	}

	sub, ok := mapClaims["sub"].(string)
	if !ok || sub == "" {
		return Claims{}, false
	}

	email, _ := mapClaims["email"].(string)
	return Claims{Subject: sub, Email: email}, true
}

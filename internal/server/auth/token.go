// Package auth implements the access-control core: the bearer-token codec,
// password hashing, and the ownership policy for mutating operations.
package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"strings"
	"time"

	"threadboard/internal/common"
)

// claims is the full claim set carried by a token: the account id and an
// absolute Unix-epoch expiry. Nothing else is ever embedded.
type claims struct {
	UserID int64 `json:"uid"`
	Exp    int64 `json:"exp"`
}

// sign computes the HMAC-SHA256 signature over the already-encoded claims
// text, base64url-encoded without padding. Signing the encoded text keeps
// verification a pure byte comparison with no re-serialization ambiguity.
func sign(data string, secret []byte) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write([]byte(data))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

// IssueToken builds a token for the given account id, valid for the given
// lifetime from now. The result is base64url(claims) + "." + base64url(mac).
func IssueToken(subjectID int64, secret []byte, lifetime time.Duration) (string, error) {
	c := claims{
		UserID: subjectID,
		Exp:    time.Now().Add(lifetime).Unix(),
	}
	b, err := json.Marshal(c)
	if err != nil {
		return "", err
	}
	p := base64.RawURLEncoding.EncodeToString(b)
	return p + "." + sign(p, secret), nil
}

// ParseToken validates a token and returns the account id it was issued for.
//
// Validation order matters: the signature is checked before the claims block
// is decoded, so unverified content is never parsed. Every failure returns a
// distinguishable sentinel from the common package; callers serving HTTP must
// collapse them into one uniform unauthorized response.
func ParseToken(token string, secret []byte) (int64, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 2 {
		return 0, common.ErrMalformedToken
	}
	p, sig := parts[0], parts[1]

	// hmac.Equal is constant-time.
	if !hmac.Equal([]byte(sign(p, secret)), []byte(sig)) {
		return 0, common.ErrBadSignature
	}

	pb, err := base64.RawURLEncoding.DecodeString(p)
	if err != nil {
		return 0, common.ErrBadPayload
	}

	var c claims
	if err := json.Unmarshal(pb, &c); err != nil {
		return 0, common.ErrBadPayload
	}

	if time.Now().Unix() > c.Exp {
		return 0, common.ErrTokenExpired
	}

	return c.UserID, nil
}

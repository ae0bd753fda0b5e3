package session

import (
	"net/http"
	"time"

	"github.com/moodjournal/moodjournal-go/internal/crypto"
)

const (
	// CookieName carries the session token.
	CookieName = "auth_token"

	// TTL is how long a session stays valid after sign-in.
	TTL = 7 * 24 * time.Hour
)

// Issuer mints session tokens and manages the session cookie.
type Issuer struct {
	secret string
	secure bool
	now    func() time.Time
}

// NewIssuer creates an Issuer. secure controls the cookie's Secure attribute
// and should only be false for local development over plain HTTP.
func NewIssuer(secret string, secure bool) *Issuer {
	return &Issuer{
		secret: secret,
		secure: secure,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// Issue returns a signed session token for userID.
func (i *Issuer) Issue(userID string) (string, error) {
	return crypto.GenerateToken(userID, i.secret, i.now(), TTL)
}

// Verify returns the user id carried by a session token.
func (i *Issuer) Verify(token string) (string, error) {
	claims, err := crypto.ValidateToken(token, i.secret, i.now())
	if err != nil {
		return "", err
	}
	return claims.UserID(), nil
}

// Attach sets the session cookie on the response.
func (i *Issuer) Attach(w http.ResponseWriter, token string) {
	http.SetCookie(w, i.cookie(token, int(TTL/time.Second)))
}

// Clear expires the session cookie on the client.
func (i *Issuer) Clear(w http.ResponseWriter) {
	c := i.cookie("", -1)
	c.Expires = time.Unix(0, 0)
	http.SetCookie(w, c)
}

func (i *Issuer) cookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   i.secure,
		SameSite: http.SameSiteStrictMode,
	}
}

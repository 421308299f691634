// Package sessioncookie centralizes gateway session cookie behavior.
package sessioncookie

import (
	"net/http"
	"strings"
	"time"

	"github.com/louisbranch/boardbots/internal/services/gateway/platform/requestmeta"
)

// Name is the cookie carrying the backend session bearer token.
const Name = "SESSION"

// FallbackName is the secondary cookie written when the token came from the
// local fallback credential store.
const FallbackName = "SESSION_FALLBACK"

// Lifetime is how long a session cookie stays valid after issuance.
const Lifetime = 15 * time.Minute

// Options enumerates every cookie attribute the gateway sets.
type Options struct {
	// Lifetime sets Max-Age and Expires relative to issuance. Zero means the
	// cookie expires at the moment it is issued.
	Lifetime time.Duration
	// HTTPOnly hides the cookie from browser script.
	HTTPOnly bool
	// SameSite controls cross-site sending.
	SameSite http.SameSite
	// Scheme decides when the Secure attribute is set.
	Scheme requestmeta.SchemePolicy
}

// SessionOptions are the attributes of the primary session cookie.
func SessionOptions() Options {
	return Options{
		Lifetime: Lifetime,
		HTTPOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

// FallbackOptions are the attributes of the fallback marker cookie. Its
// lifetime is zero, so browsers drop it as soon as it arrives.
func FallbackOptions() Options {
	return Options{
		HTTPOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

// Read returns the trimmed session cookie value when present.
func Read(r *http.Request) (string, bool) {
	if r == nil {
		return "", false
	}
	cookie, err := r.Cookie(Name)
	if err != nil || cookie == nil {
		return "", false
	}
	value := strings.TrimSpace(cookie.Value)
	if value == "" {
		return "", false
	}
	return value, true
}

// Write sets the session cookie issued at now.
func Write(w http.ResponseWriter, r *http.Request, token string, now time.Time) {
	set(w, r, Name, token, now, SessionOptions())
}

// WriteFallback sets the fallback marker cookie issued at now.
func WriteFallback(w http.ResponseWriter, r *http.Request, token string, now time.Time) {
	set(w, r, FallbackName, token, now, FallbackOptions())
}

func set(w http.ResponseWriter, r *http.Request, name, value string, now time.Time, opts Options) {
	if w == nil {
		return
	}
	cookie := &http.Cookie{
		Name:     name,
		Value:    strings.TrimSpace(value),
		Path:     "/",
		Expires:  now.Add(opts.Lifetime).UTC(),
		HttpOnly: opts.HTTPOnly,
		Secure:   requestmeta.IsHTTPSWithPolicy(r, opts.Scheme),
		SameSite: opts.SameSite,
	}
	if opts.Lifetime > 0 {
		cookie.MaxAge = int(opts.Lifetime / time.Second)
	}
	http.SetCookie(w, cookie)
}

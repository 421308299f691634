package auth

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/louisbranch/boardbots/internal/services/gateway/credentialstore"
	"github.com/louisbranch/boardbots/internal/services/gateway/credentials"
	module "github.com/louisbranch/boardbots/internal/services/gateway/module"
	"github.com/louisbranch/boardbots/internal/services/gateway/platform/httpx"
	"github.com/louisbranch/boardbots/internal/services/gateway/platform/sessioncookie"
	"github.com/louisbranch/boardbots/internal/services/gateway/routepath"
	"github.com/louisbranch/boardbots/internal/services/gateway/templates"
)

// failedQueryParam marks a login page reached after a rejected submission.
const failedQueryParam = "auth"

type handlers struct {
	credentials module.Authenticator
	development bool
	now         func() time.Time
	logger      *log.Logger
}

func (h handlers) handleLogin(w http.ResponseWriter, r *http.Request) {
	if !h.development {
		http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
		return
	}
	view := templates.LoginView{Failed: r.URL.Query().Has(failedQueryParam)}
	if err := httpx.WriteComponent(w, r, http.StatusOK, templates.LoginPage(view)); err != nil {
		h.logger.Printf("auth: render login page: %v", err)
	}
}

func (h handlers) handleSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.logger.Printf("auth: parse login form: %v", err)
		http.Redirect(w, r, routepath.LoginFailed, http.StatusFound)
		return
	}
	username := r.PostForm.Get("name")
	password := r.PostForm.Get("password")

	result, err := h.credentials.Authenticate(httpx.RequestContext(r), username, password)
	if err != nil {
		switch {
		case errors.Is(err, credentials.ErrAuthFailure):
			h.logger.Printf("auth: login rejected user=%q", username)
		case errors.Is(err, credentialstore.ErrUnavailable):
			h.logger.Printf("auth: credential store unavailable user=%q: %v", username, err)
		default:
			h.logger.Printf("auth: login user=%q: %v", username, err)
		}
		http.Redirect(w, r, routepath.LoginFailed, http.StatusFound)
		return
	}

	now := h.now()
	sessioncookie.Write(w, r, result.Token, now)
	if result.Source == credentials.SourceFallback {
		sessioncookie.WriteFallback(w, r, result.Token, now)
	}
	http.Redirect(w, r, routepath.Root, http.StatusFound)
}

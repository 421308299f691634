package requestmeta

import (
	"crypto/tls"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestIsHTTPS(t *testing.T) {
	t.Parallel()

	plain := httptest.NewRequest(http.MethodGet, "http://gateway.local/", nil)
	if IsHTTPS(plain) {
		t.Fatal("plain request reported as HTTPS")
	}

	secure := httptest.NewRequest(http.MethodGet, "http://gateway.local/", nil)
	secure.TLS = &tls.ConnectionState{}
	if !IsHTTPS(secure) {
		t.Fatal("TLS request not reported as HTTPS")
	}

	if IsHTTPS(nil) {
		t.Fatal("nil request reported as HTTPS")
	}
}

func TestIsHTTPSForwardedProtoRequiresPolicy(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "http://gateway.local/", nil)
	req.Header.Set("X-Forwarded-Proto", "https")
	if IsHTTPS(req) {
		t.Fatal("forwarded proto trusted without policy")
	}
	if !IsHTTPSWithPolicy(req, SchemePolicy{TrustForwardedProto: true}) {
		t.Fatal("forwarded proto ignored with trusting policy")
	}
}

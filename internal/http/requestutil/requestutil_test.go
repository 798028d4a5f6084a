package requestutil

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSanitizeRequestID(t *testing.T) {
	if got := SanitizeRequestID("valid-123"); got != "valid-123" {
		t.Fatalf("expected pass-through, got %s", got)
	}
	if got := SanitizeRequestID("bad id"); got == "" || got == "bad id" {
		t.Fatalf("expected sanitized id, got %s", got)
	}
	useFallback.Store(true)
	defer useFallback.Store(false)
	if got := NewRequestID(); got == "" {
		t.Fatalf("expected fallback request id when RNG fails")
	}
}

func TestClientIP(t *testing.T) {
	if got := ClientIP(nil); got != "" {
		t.Fatalf("expected empty for nil request, got %q", got)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Forwarded-For", "1.2.3.4, 5.6.7.8")
	if got := ClientIP(req); got != "1.2.3.4" {
		t.Fatalf("expected first forwarded address, got %s", got)
	}

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "9.9.9.9:1234"
	if got := ClientIP(req); got != "9.9.9.9:1234" {
		t.Fatalf("expected remote addr fallback, got %s", got)
	}
}

func TestPathInt(t *testing.T) {
	cases := []struct {
		raw     string
		want    int
		wantErr bool
	}{
		{"9", 9, false},
		{"004", 4, false},
		{"-1", -1, false},
		{"abc", 0, true},
		{"1.5", 0, true},
		{"", 0, true},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, "/player/x", nil)
		req.SetPathValue("vlr_id", tc.raw)
		got, err := PathInt(req, "vlr_id")
		if (err != nil) != tc.wantErr || got != tc.want {
			t.Fatalf("PathInt(%q) = %d, %v", tc.raw, got, err)
		}
	}
}

func TestPathString(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/team/2", nil)
	req.SetPathValue("team_id", " 2 ")
	if got, err := PathString(req, "team_id"); err != nil || got != "2" {
		t.Fatalf("expected trimmed value, got %q %v", got, err)
	}
	if _, err := PathString(req, "absent"); err == nil {
		t.Fatalf("expected error for missing wildcard")
	}
}

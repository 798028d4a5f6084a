package http

import (
	nethttp "net/http"
	"strings"
	"testing"

	"github.com/TongAlan/val-api/internal/http/handlers"
	"github.com/TongAlan/val-api/internal/testutil"
)

func TestRouterDispatchesRoutes(t *testing.T) {
	stub := testutil.NewStubProvider()
	h := NewHandler(handlers.NewHandler(stub, testutil.StubTable(3), nil), nil, nil)

	cases := []struct {
		path   string
		status int
		body   string
	}{
		{"/", nethttp.StatusOK, "VLR API"},
		{"/health", nethttp.StatusOK, "healthy"},
		{"/ready", nethttp.StatusOK, `"players":3`},
		{"/matches", nethttp.StatusOK, `"matches"`},
		{"/matches/429390", nethttp.StatusOK, `"match"`},
		{"/players/emea", nethttp.StatusOK, `"region":"emea"`},
		{"/player/9", nethttp.StatusOK, `"player"`},
		{"/teams/global", nethttp.StatusOK, `"teams"`},
		{"/team/2", nethttp.StatusOK, `"team"`},
		{"/nope", nethttp.StatusNotFound, `"error":"not found"`},
		{"/matches/1/extra", nethttp.StatusNotFound, `"error"`},
	}
	for _, tc := range cases {
		rr := testutil.Serve(h, nethttp.MethodGet, tc.path, nil)
		if rr.Code != tc.status {
			t.Fatalf("%s: expected %d, got %d", tc.path, tc.status, rr.Code)
		}
		if !strings.Contains(rr.Body.String(), tc.body) {
			t.Fatalf("%s: expected body to contain %s, got %s", tc.path, tc.body, rr.Body.String())
		}
		if rr.Header().Get("X-Request-ID") == "" {
			t.Fatalf("%s: expected request id header", tc.path)
		}
	}
}

func TestRouterRejectsNonGet(t *testing.T) {
	h := NewHandler(handlers.NewHandler(testutil.NewStubProvider(), testutil.StubTable(1), nil), nil, nil)
	for _, path := range []string{"/", "/matches", "/players/emea", "/team/2"} {
		rr := testutil.Serve(h, nethttp.MethodPost, path, nil)
		testutil.AssertStatus(t, rr, nethttp.StatusMethodNotAllowed)
	}
}

func TestRouterRecoversPanics(t *testing.T) {
	stub := testutil.NewStubProvider()
	stub.Panic = true
	logger, _ := testutil.NewBufferLogger()
	h := NewHandler(handlers.NewHandler(stub, testutil.StubTable(1), logger), logger, nil)

	rr := testutil.Serve(h, nethttp.MethodGet, "/matches", nil)
	testutil.AssertStatus(t, rr, nethttp.StatusInternalServerError)
}

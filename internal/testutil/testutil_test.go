package testutil

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/TongAlan/val-api/internal/domain/regions"
)

func TestRecordHelpers(t *testing.T) {
	m := SampleMatch("429390")
	if m.MatchID != "429390" || !strings.HasSuffix(m.URL, "/429390") {
		t.Fatalf("unexpected match fixture %+v", m)
	}
	team := SampleTeam("2", "Sentinels")
	if team.TeamID != "2" || team.Name != "Sentinels" {
		t.Fatalf("unexpected team fixture %+v", team)
	}
	p := SamplePlayer(9, "TenZ")
	if p.VlrID != 9 || p.IGN != "TenZ" || len(p.TopAgents) != 1 {
		t.Fatalf("unexpected player fixture %+v", p)
	}
}

func TestMustDocument(t *testing.T) {
	doc := MustDocument(t, MatchesPage)
	if doc.Find("div.wf-card").Length() != 3 {
		t.Fatalf("expected three cards in listing fixture")
	}
	if MustDocument(t, EmptyPage).Find("a").Length() != 0 {
		t.Fatalf("expected empty page to carry no links")
	}
}

func TestServeHelpers(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	rr := Serve(handler, http.MethodPost, "/test", strings.NewReader("{}"))
	AssertStatus(t, rr, http.StatusCreated)
	var body map[string]bool
	DecodeJSON(t, rr, &body)
	if !body["ok"] {
		t.Fatalf("expected ok=true")
	}
}

func TestServerStubs(t *testing.T) {
	sh := &StubHTTPServer{ListenErr: errors.New("boom"), ShutdownErr: errors.New("down")}
	sh.HandlerVal = http.NewServeMux()
	_ = sh.ListenAndServe()
	_ = sh.Shutdown(context.Background())
	_ = sh.Handler()
	_ = sh.Addr()
	if sh.ListenCalls != 1 || sh.ShutdownCalls != 1 {
		t.Fatalf("expected listen/shutdown calls, got %+v", sh)
	}

	b := &BlockingHTTPServer{Unblock: make(chan struct{}), HandlerVal: http.NewServeMux()}
	if err := b.ListenAndServe(); err != nil {
		t.Fatalf("expected nil listen error for blocking server")
	}
	done := make(chan error, 1)
	go func() { done <- b.Shutdown(context.Background()) }()
	close(b.Unblock)
	if err := <-done; err != nil {
		t.Fatalf("expected nil shutdown err, got %v", err)
	}
	if b.ShutdownCalls != 1 {
		t.Fatalf("expected shutdown called once")
	}

	e := &ErrHTTPServer{}
	if err := e.ListenAndServe(); err == nil {
		t.Fatalf("expected listen error")
	}
	c := &CloseableHTTPServer{}
	if err := c.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		t.Fatalf("expected ErrServerClosed, got %v", err)
	}
}

func TestLoggerAndMetricsHelpers(t *testing.T) {
	logger, buf := NewBufferLogger()
	logger.Info("hello", "k", "v")
	if buf.Len() == 0 {
		t.Fatalf("expected buffered log output")
	}
	rec, shutdown := NewRecorderWithShutdown()
	if rec == nil || shutdown == nil {
		t.Fatalf("expected recorder and shutdown")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("expected nil shutdown error, got %v", err)
	}
}

func TestStubProvider(t *testing.T) {
	ctx := context.Background()
	stub := NewStubProvider()

	if got, err := stub.Matches(ctx); err != nil || len(got) != 1 {
		t.Fatalf("expected one match, got %v err %v", got, err)
	}
	if _, err := stub.Teams(ctx, regions.China); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if stub.LastRegion != regions.China {
		t.Fatalf("expected region recorded, got %s", stub.LastRegion)
	}
	if got, _ := stub.Player(ctx, 9); got == nil || got.IGN != "TenZ" {
		t.Fatalf("unexpected player %+v", got)
	}

	stub.Err = errors.New("boom")
	if _, err := stub.Team(ctx, "2"); !errors.Is(err, stub.Err) {
		t.Fatalf("expected error passthrough")
	}
	if stub.Calls.Load() != 4 {
		t.Fatalf("expected 4 calls, got %d", stub.Calls.Load())
	}

	stub.Panic = true
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	_, _ = stub.Matches(ctx)
}

func TestStubTable(t *testing.T) {
	if StubTable(5).Len() != 5 {
		t.Fatalf("expected table length passthrough")
	}
}

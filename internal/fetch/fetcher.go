package fetch

import (
	"bytes"
	"context"
	"log/slog"
	"math/rand"
	"net/http"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/TongAlan/val-api/internal/logging"
	"github.com/TongAlan/val-api/internal/metrics"
)

// DefaultTimeout bounds a single page fetch.
const DefaultTimeout = 10 * time.Second

// SourceVlr labels fetch metrics for vlr.gg.
const SourceVlr = "vlr"

var tracer = otel.Tracer("val-api/fetch")

// Options configure a Fetcher. The zero value fetches with DefaultTimeout
// and no spacing between requests.
type Options struct {
	Timeout   time.Duration
	Delay     time.Duration
	Jitter    time.Duration
	Transport http.RoundTripper
	Source    string
	Recorder  *metrics.Recorder
	Logger    *slog.Logger
}

// Fetcher retrieves HTML pages with browser-like headers. It is safe for
// concurrent use.
type Fetcher struct {
	client   *resty.Client
	pacer    *pacer
	source   string
	recorder *metrics.Recorder
	logger   *slog.Logger
	pick     func(n int) int
	now      func() time.Time
}

func New(opts Options) *Fetcher {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	source := opts.Source
	if source == "" {
		source = SourceVlr
	}

	client := resty.New()
	client.SetTimeout(timeout)
	client.SetHeaders(browserHeaders)
	if opts.Transport != nil {
		client.SetTransport(opts.Transport)
	}

	return &Fetcher{
		client:   client,
		pacer:    newPacer(opts.Delay, opts.Jitter),
		source:   source,
		recorder: opts.Recorder,
		logger:   opts.Logger,
		pick:     rand.Intn,
		now:      time.Now,
	}
}

// Fetch returns the parsed page at url, or nil when it could not be
// retrieved. Failures are logged and never retried.
func (f *Fetcher) Fetch(ctx context.Context, url string) *goquery.Document {
	doc, err := f.Get(ctx, url)
	if err != nil {
		args := []any{logging.FieldURL, url, "error", err}
		if statusErr, ok := AsStatusError(err); ok {
			args = append(args, logging.FieldStatusCode, statusErr.StatusCode)
		}
		logging.Warn(f.logger, "page fetch failed", args...)
		return nil
	}
	return doc
}

// Get is Fetch with the failure reason exposed.
func (f *Fetcher) Get(ctx context.Context, url string) (*goquery.Document, error) {
	ctx, span := tracer.Start(ctx, "fetch.page",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("url", url),
			attribute.String("source", f.source),
		),
	)
	defer span.End()

	if err := f.pacer.wait(ctx); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "canceled while waiting for request slot")
		return nil, err
	}

	start := f.now()
	doc, err := f.get(ctx, url)
	f.recorder.RecordFetch(f.source, f.now().Sub(start), err)
	if err != nil {
		if statusErr, ok := AsStatusError(err); ok {
			span.SetAttributes(attribute.Int("http.status_code", statusErr.StatusCode))
			if statusErr.RateLimited() {
				f.recorder.RecordRateLimit(f.source, statusErr.RetryAfter)
			}
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "page fetch failed")
		return nil, err
	}
	return doc, nil
}

func (f *Fetcher) get(ctx context.Context, url string) (*goquery.Document, error) {
	res, err := f.client.R().
		SetContext(ctx).
		SetHeader("User-Agent", f.userAgent()).
		Get(url)
	if err != nil {
		return nil, err
	}
	if !res.IsSuccess() {
		return nil, &StatusError{
			URL:        url,
			StatusCode: res.StatusCode(),
			RetryAfter: parseRetryAfter(res.Header().Get("Retry-After"), f.now()),
		}
	}
	return goquery.NewDocumentFromReader(bytes.NewReader(res.Body()))
}

func (f *Fetcher) userAgent() string {
	return userAgents[f.pick(len(userAgents))]
}

// SPDX-License-Identifier: EPL-2.0

package client

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/shouni/go-http-kit/pkg/httpkit"
	"golang.org/x/time/rate"

	"github.com/ik5/wavstream"
	"github.com/ik5/wavstream/audio"
)

const (
	readyPath    = "/api/ready"
	generatePath = "/api/tts-generate-streaming"

	readyBody = "Ready"

	// the server insists on a file name even for streamed output
	streamOutputFile = "stream_output.wav"
)

// Client talks to a streaming TTS server.
type Client struct {
	cfg      Config
	endpoint *url.URL

	probe   *httpkit.Client
	stream  *http.Client
	limiter *rate.Limiter

	registry *audio.Registry
	metrics  *Metrics
	logger   *slog.Logger
}

type Option func(*Client)

// WithHTTPClient replaces the client used for generation requests. It must
// not set a Timeout, since that would cut long audio streams short.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.stream = hc }
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// WithRegistry sets the decoders responses are matched against.
func WithRegistry(r *audio.Registry) Option {
	return func(c *Client) { c.registry = r }
}

func WithMetrics(m *Metrics) Option {
	return func(c *Client) { c.metrics = m }
}

func New(cfg Config, opts ...Option) (*Client, error) {
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultEndpoint
	}

	endpoint, err := url.Parse(cfg.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidEndpoint, err)
	}
	if endpoint.Scheme != "http" && endpoint.Scheme != "https" {
		return nil, fmt.Errorf("%w: scheme %q", ErrInvalidEndpoint, endpoint.Scheme)
	}

	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.ReadyTimeout <= 0 {
		cfg.ReadyTimeout = defaultReadyTimeout
	}
	if cfg.ReadyInterval <= 0 {
		cfg.ReadyInterval = defaultReadyInterval
	}
	if cfg.BufferSize <= 0 {
		cfg.BufferSize = defaultBufferSize
	}

	limit := rate.Inf
	if cfg.RequestRate > 0 {
		limit = rate.Limit(cfg.RequestRate)
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.ResponseHeaderTimeout = cfg.Timeout

	c := &Client{
		cfg:      cfg,
		endpoint: endpoint,
		probe:    httpkit.New(cfg.Timeout),
		stream:   &http.Client{Transport: transport},
		limiter:  rate.NewLimiter(limit, max(cfg.RequestBurst, 1)),
		logger:   slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.registry == nil {
		c.registry = wavstream.DefaultRegistry()
	}
	c.logger = c.logger.With("endpoint", endpoint.Redacted())

	return c, nil
}

// Ready asks the server whether it can take generation requests.
func (c *Client) Ready(ctx context.Context) (bool, error) {
	start := time.Now()

	body, err := c.probe.FetchBytes(ctx, c.endpoint.JoinPath(readyPath).String())
	if err != nil {
		c.metrics.observe(endpointReady, "error", start)
		return false, fmt.Errorf("%w: %w", ErrRequest, err)
	}
	c.metrics.observe(endpointReady, strconv.Itoa(http.StatusOK), start)

	return strings.TrimSpace(string(body)) == readyBody, nil
}

// WaitReady polls Ready with exponential backoff until the server is ready,
// ctx is done or Config.ReadyTimeout passes.
func (c *Client) WaitReady(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.ReadyTimeout)
	defer cancel()

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = c.cfg.ReadyInterval
	b.MaxElapsedTime = 0

	probe := func() error {
		ready, err := c.Ready(ctx)
		if err != nil {
			return err
		}
		if !ready {
			return ErrNotReady
		}
		return nil
	}

	notify := func(err error, next time.Duration) {
		c.logger.Debug("server not ready", "err", err, "retry_in", next)
	}

	if err := backoff.RetryNotify(probe, backoff.WithContext(b, ctx), notify); err != nil {
		return fmt.Errorf("%w: %w", ErrNotReady, err)
	}

	c.logger.Info("server is ready")

	return nil
}

// GenerateStream asks the server to speak text and returns the audio as soon
// as its header has been decoded. Samples are read from the network as the
// returned source is drained. Closing the source closes the response body.
//
// An empty voice or language falls back to the configured one.
func (c *Client) GenerateStream(ctx context.Context, text, voice, language string) (audio.Source, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyText
	}
	if voice == "" {
		voice = c.cfg.Voice
	}
	if language == "" {
		language = c.cfg.Language
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRequest, err)
	}

	u := c.endpoint.JoinPath(generatePath)
	q := url.Values{}
	q.Set("text", text)
	q.Set("voice", voice)
	q.Set("language", language)
	q.Set("output_file", streamOutputFile)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRequest, err)
	}

	start := time.Now()
	resp, err := c.stream.Do(req)
	if err != nil {
		c.metrics.observe(endpointGenerate, "error", start)
		return nil, fmt.Errorf("%w: %w", ErrRequest, err)
	}
	c.metrics.observe(endpointGenerate, strconv.Itoa(resp.StatusCode), start)

	if resp.StatusCode != http.StatusOK {
		// a short excerpt of the body usually says what went wrong
		excerpt, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		resp.Body.Close()
		return nil, fmt.Errorf("%w: %s: %q", ErrUnexpectedStatus, resp.Status, strings.TrimSpace(string(excerpt)))
	}

	dec, err := c.decoderFor(resp.Header.Get("Content-Type"))
	if err != nil {
		resp.Body.Close()
		return nil, err
	}

	body := &bufferedBody{
		Reader: bufio.NewReaderSize(resp.Body, c.cfg.BufferSize),
		Closer: resp.Body,
	}

	src, err := dec.Decode(body)
	if err != nil {
		c.metrics.decodeFailed()
		resp.Body.Close()
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	c.logger.Debug("stream started",
		"sample_rate", src.SampleRate(),
		"channels", src.Channels(),
		"content_type", resp.Header.Get("Content-Type"),
	)

	return src, nil
}

// decoderFor picks the decoder for a response. Servers that send no content
// type, or a generic binary one, get the wav decoder.
func (c *Client) decoderFor(contentType string) (audio.Decoder, error) {
	switch contentType {
	case "", "application/octet-stream":
		if d, ok := c.registry.Get("wav"); ok {
			return d, nil
		}
	default:
		if d, ok := c.registry.Lookup(contentType); ok {
			return d, nil
		}
	}

	return nil, fmt.Errorf("%w: %q", ErrUnsupportedMedia, contentType)
}

// bufferedBody reads through a bufio.Reader but closes the response body.
type bufferedBody struct {
	*bufio.Reader
	io.Closer
}

// Package server publishes the rendered schedule as a subscribable
// iCalendar feed on the loopback interface.
package server

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/omnislash-com/nuxtjs-vuetify-pinia-template/internal/config"
	"github.com/omnislash-com/nuxtjs-vuetify-pinia-template/internal/dates"
)

// feedItem stores the rendered feed and its metadata for HTTP caching.
type feedItem struct {
	data         []byte
	etag         string
	lastModified string // RFC1123 format required by HTTP headers
}

// FeedServer serves the latest feed set with SetFeed. Reads are lock-free;
// the feed is replaced as a whole.
type FeedServer struct {
	feed atomic.Pointer[feedItem]
	addr atomic.Pointer[string]

	Port   string      // "0" picks a free port.
	Clock  dates.Clock // Interface for time mocking.
	Logger *slog.Logger
}

// NewFeedServer creates a server bound to 127.0.0.1:port.
func NewFeedServer(port string, logger *slog.Logger) *FeedServer {
	return &FeedServer{Port: port, Logger: logger}
}

// ValidatePort checks that port is a number in the TCP range.
func ValidatePort(port string) error {
	n, err := strconv.Atoi(port)
	if err != nil {
		return fmt.Errorf("%s: %q", config.ErrPortNumber, port)
	}
	if n < config.MinPort || n > config.MaxPort {
		return fmt.Errorf("%s: %d", config.ErrPortRange, n)
	}
	return nil
}

func (s *FeedServer) log() *slog.Logger {
	if s.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return s.Logger.With(config.LogKeyComponent, config.CompServer)
}

func (s *FeedServer) now() time.Time {
	if s.Clock == nil {
		return time.Now()
	}
	return s.Clock.Now()
}

// Handler returns the HTTP routes of the feed.
func (s *FeedServer) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc(config.RouteFeed, s.handleFeed)
	mux.HandleFunc(config.RouteHealth, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, config.HTTPMsgHealthy)
	})
	return mux
}

// Addr returns the bound address once Start is listening.
func (s *FeedServer) Addr() string {
	if p := s.addr.Load(); p != nil {
		return *p
	}
	return ""
}

// Start listens and serves until ctx is cancelled, then shuts down
// gracefully.
func (s *FeedServer) Start(ctx context.Context) error {
	ln, err := net.Listen("tcp", net.JoinHostPort(config.LocalhostBindAddr, s.Port))
	if err != nil {
		return fmt.Errorf("%s: %w", config.ErrServerStartup, err)
	}
	addr := ln.Addr().String()
	s.addr.Store(&addr)

	srv := &http.Server{
		Handler:      s.Handler(),
		ReadTimeout:  config.ServerReadTimeout,
		WriteTimeout: config.ServerWriteTimeout,
		IdleTimeout:  config.ServerIdleTimeout,
	}

	serverError := make(chan error, 1)
	go func() {
		s.log().Info(config.MsgServerListen, config.LogKeyAddr, addr)
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverError <- err
		}
	}()

	select {
	case <-ctx.Done():
		s.log().Info(config.MsgServerStop)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("%s: %w", config.ErrServerShutdown, err)
		}
		return nil

	case err := <-serverError:
		return fmt.Errorf("%s: %w", config.ErrServerStartup, err)
	}
}

// SetFeed atomically replaces the served content. An identical feed keeps
// its original Last-Modified time.
func (s *FeedServer) SetFeed(data []byte) {
	hash := sha256.Sum256(data)
	etag := fmt.Sprintf(config.FormatETag, hex.EncodeToString(hash[:]))

	if old := s.feed.Load(); old != nil && old.etag == etag {
		return
	}

	s.feed.Store(&feedItem{
		data:         data,
		etag:         etag,
		lastModified: s.now().UTC().Format(http.TimeFormat),
	})

	s.log().Debug(config.MsgFeedUpdated,
		config.LogKeySizeBytes, len(data),
		config.LogKeyETag, etag,
	)
}

// Refresh renders the feed immediately and then every interval until ctx
// is cancelled. Render failures are logged and the previous feed is kept.
// A non-positive interval selects config.DefaultRefreshInterval.
func (s *FeedServer) Refresh(ctx context.Context, interval time.Duration, render func() ([]byte, error)) {
	if interval <= 0 {
		interval = config.DefaultRefreshInterval
	}
	update := func() {
		data, err := render()
		if err != nil {
			s.log().Error(config.ErrFeedRender, config.LogKeyError, err)
			return
		}
		s.SetFeed(data)
	}

	update()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			update()
		}
	}
}

// handleFeed serves the feed with conditional request support.
func (s *FeedServer) handleFeed(w http.ResponseWriter, r *http.Request) {
	item := s.feed.Load()
	if item == nil {
		w.Header().Set(config.HeaderRetryAfter, config.RetryAfterSeconds)
		http.Error(w, config.HTTPMsgInitializing, http.StatusServiceUnavailable)
		return
	}

	w.Header().Set(config.HeaderContentType, config.MimeTextCalendar)
	w.Header().Set(config.HeaderXContentType, config.MimeNoSniff)
	w.Header().Set(config.HeaderCacheControl, config.CacheControlPrivate)
	w.Header().Set(config.HeaderETag, item.etag)
	w.Header().Set(config.HeaderLastModified, item.lastModified)

	if match := r.Header.Get(config.HeaderIfNoneMatch); match == item.etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	if since := r.Header.Get(config.HeaderIfModifiedSince); since != "" {
		if clientTime, err := time.Parse(http.TimeFormat, since); err == nil {
			if serverTime, err := time.Parse(http.TimeFormat, item.lastModified); err == nil && !serverTime.After(clientTime) {
				w.WriteHeader(http.StatusNotModified)
				return
			}
		}
	}

	if r.Method == http.MethodHead {
		return
	}
	if _, err := io.Copy(w, bytes.NewReader(item.data)); err != nil {
		s.log().Error(config.ErrWriteResp, config.LogKeyError, err)
	}
}

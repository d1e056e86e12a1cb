package server

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/preston-bernstein/sleeper-bridge/internal/config"
	"github.com/preston-bernstein/sleeper-bridge/internal/http/handlers"
	"github.com/preston-bernstein/sleeper-bridge/internal/providers/fixture"
	"github.com/preston-bernstein/sleeper-bridge/internal/testutil"
)

type stubHTTPServer struct {
	addr          string
	handler       http.Handler
	listenCalls   int
	shutdownCalls int
	listenErr     error
	shutdownErr   error
}

func (s *stubHTTPServer) ListenAndServe() error {
	s.listenCalls++
	return s.listenErr
}

func (s *stubHTTPServer) Shutdown(ctx context.Context) error {
	_ = ctx
	s.shutdownCalls++
	return s.shutdownErr
}

func (s *stubHTTPServer) Addr() string {
	return s.addr
}

func (s *stubHTTPServer) Handler() http.Handler {
	return s.handler
}

type blockingHTTPServer struct {
	addr          string
	handler       http.Handler
	shutdownCalls int
	unblock       chan struct{}
}

func (s *blockingHTTPServer) ListenAndServe() error {
	return nil
}

func (s *blockingHTTPServer) Shutdown(ctx context.Context) error {
	s.shutdownCalls++
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-s.unblock:
		return nil
	}
}

func (s *blockingHTTPServer) Addr() string {
	return s.addr
}

func (s *blockingHTTPServer) Handler() http.Handler {
	return s.handler
}

func TestServerServesSimplifiedRosters(t *testing.T) {
	up := testutil.NewStubUpstream(map[string]string{
		"league/L1/rosters": `[{"roster_id":1,"owner_id":"u1","starters":["p1","p2"],"players":["p1","p2","p3"]},{"roster_id":2,"owner_id":"u2","starters":["p4"],"players":["p4","p5"]}]`,
		"league/L1/users":   `[{"user_id":"u1","display_name":"Team A"}]`,
	})
	rec, _ := testutil.NewRecorderWithShutdown()
	srv := newServerWithUpstream(config.Config{}, nil, up, rec)

	rr := testutil.Serve(srv.Handler(), http.MethodGet, "/simplified_rosters/L1", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	require.JSONEq(t, `[
		{"team_name":"Team A","starters":["p1","p2"],"bench":["p3"],"roster_id":1},
		{"team_name":"Unknown","starters":["p4"],"bench":["p5"],"roster_id":2}
	]`, rr.Body.String())
	require.NotEmpty(t, rr.Header().Get("X-Request-ID"))
	require.Equal(t, 1, rec.UpstreamCalls("league_rosters"))
	require.Equal(t, 1, rec.UpstreamCalls("league_users"))
}

func TestServerUpstreamTimeoutReturns502(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer upstream.Close()

	cfg := config.Config{
		Provider: "sleeper",
		Sleeper:  config.SleeperConfig{BaseURL: upstream.URL, Timeout: 50 * time.Millisecond},
	}
	rec, _ := testutil.NewRecorderWithShutdown()
	srv := newServerWithUpstream(cfg, nil, nil, rec)

	rr := testutil.Serve(srv.Handler(), http.MethodGet, "/league/L1", nil)
	testutil.AssertStatus(t, rr, http.StatusBadGateway)

	var resp handlers.ErrorResponse
	testutil.DecodeJSON(t, rr, &resp)
	require.Equal(t, "Sleeper API request failed", resp.Error)
	require.NotEmpty(t, resp.Details)
	require.Equal(t, 1, rec.UpstreamErrors("league"))
}

func TestServerPassesThroughUpstreamBody(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/user/someone" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"user_id":"123","display_name":"Someone","metadata":{"x":1}}`))
	}))
	defer upstream.Close()

	cfg := config.Config{Sleeper: config.SleeperConfig{BaseURL: upstream.URL, Timeout: time.Second}}
	rec, _ := testutil.NewRecorderWithShutdown()
	srv := newServerWithUpstream(cfg, nil, nil, rec)

	rr := testutil.Serve(srv.Handler(), http.MethodGet, "/user/someone", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	require.JSONEq(t, `{"user_id":"123","display_name":"Someone","metadata":{"x":1}}`, rr.Body.String())
}

func TestServerWithFixtureProvider(t *testing.T) {
	rec, _ := testutil.NewRecorderWithShutdown()
	srv := newServerWithUpstream(config.Config{Provider: "fixture"}, nil, nil, rec)

	rr := testutil.Serve(srv.Handler(), http.MethodGet, "/simplified_rosters/"+fixture.LeagueID, nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var teams []map[string]any
	testutil.DecodeJSON(t, rr, &teams)
	require.NotEmpty(t, teams)

	home := testutil.Serve(srv.Handler(), http.MethodGet, "/", nil)
	testutil.AssertStatus(t, home, http.StatusOK)
	require.Equal(t, handlers.HomeMessage, home.Body.String())
}

func TestSelectProviderDefaultsToSleeper(t *testing.T) {
	for _, name := range []string{"", "sleeper", "SLEEPER", "unknown"} {
		up := selectProvider(config.Config{Provider: name}, nil)
		require.Equal(t, "sleeper", normalizeProviderName("", up), name)
	}
}

func TestSelectProviderChoosesFixture(t *testing.T) {
	up := selectProvider(config.Config{Provider: "fixture"}, nil)
	_, ok := up.(*fixture.Provider)
	require.True(t, ok, "expected fixture provider")
}

func TestSelectProviderWarnsOnUnknown(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()
	selectProvider(config.Config{Provider: "espn"}, logger)
	require.Contains(t, buf.String(), "unknown provider")
	require.Contains(t, buf.String(), "provider=espn")
}

func TestNewConstructsServer(t *testing.T) {
	cfg := config.Config{
		Port:     "0",
		Provider: "fixture",
		Metrics: config.MetricsConfig{
			Enabled: false,
		},
	}
	srv := New(cfg, nil)
	require.NotNil(t, srv)
	require.NotNil(t, srv.Handler())
	require.NotNil(t, srv.upstream)
}

func TestGracefulShutdownCallsShutdown(t *testing.T) {
	httpSrv := &stubHTTPServer{}
	metricsSrv := &stubHTTPServer{}
	stopped := 0

	srv := newServerWithDeps(config.Config{}, nil, httpSrv)
	srv.metricsServer = metricsSrv
	srv.metricsStop = func(context.Context) error {
		stopped++
		return nil
	}
	srv.gracefulShutdown()

	require.Equal(t, 1, httpSrv.shutdownCalls)
	require.Equal(t, 1, metricsSrv.shutdownCalls)
	require.Equal(t, 1, stopped)
}

func TestGracefulShutdownTimesOutLongRunningShutdown(t *testing.T) {
	blocking := &blockingHTTPServer{
		addr:    ":0",
		handler: http.NewServeMux(),
		unblock: make(chan struct{}),
	}

	original := shutdownTimeout
	shutdownTimeout = 5 * time.Millisecond
	defer func() { shutdownTimeout = original }()

	srv := newServerWithDeps(config.Config{}, nil, blocking)

	start := time.Now()
	srv.gracefulShutdown()
	elapsed := time.Since(start)

	require.Equal(t, 1, blocking.shutdownCalls)
	if elapsed > 200*time.Millisecond {
		t.Fatalf("shutdown took too long: %s", elapsed)
	}
}

func TestGracefulShutdownContinuesWhenMetricsStopErrors(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()
	httpSrv := &stubHTTPServer{}

	srv := newServerWithDeps(config.Config{}, logger, httpSrv)
	srv.metricsStop = func(context.Context) error { return errors.New("stop failure") }
	srv.gracefulShutdown()

	require.Equal(t, 1, httpSrv.shutdownCalls)
	require.Contains(t, buf.String(), "metrics shutdown failed")
	require.Contains(t, buf.String(), "shutdown complete")
}

func TestServerStartHandlesListenErrorAndStops(t *testing.T) {
	httpSrv := &stubHTTPServer{addr: ":0", listenErr: errors.New("listen failure")}
	srv := newServerWithDeps(config.Config{}, nil, httpSrv)

	var wg sync.WaitGroup
	wg.Add(1)
	stopCalled := make(chan struct{})
	stop := func() {
		close(stopCalled)
		wg.Done()
	}

	srv.startServer(stop)

	select {
	case <-stopCalled:
	case <-time.After(200 * time.Millisecond):
		t.Fatal("expected stop to be called on listen failure")
	}

	wg.Wait()
}

func TestRunCancelsAndStopsComponents(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	httpSrv := &stubHTTPServer{addr: ":0", listenErr: http.ErrServerClosed}
	srv := newServerWithDeps(config.Config{}, nil, httpSrv)

	done := make(chan struct{})
	go func() {
		srv.Run(ctx, cancel)
		close(done)
	}()

	time.Sleep(10 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("run did not return after cancel")
	}

	require.Equal(t, 1, httpSrv.shutdownCalls)
}

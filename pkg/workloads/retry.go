package workloads

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"time"

	"github.com/lukasrand/gobench/pkg/bench"
	"github.com/lukasrand/gobench/pkg/httpx"
)

// newFlakyServer returns an httptest.Server that fails every request with a
// 503 until the failAttempts-th attempt, then always succeeds. It exists
// purely to give httpx.RetryClient.DoRetry a real, repeatable workload.
func newFlakyServer(failAttempts int32) *httptest.Server {
	var attempts atomic.Int32
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if attempts.Add(1) <= failAttempts {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}))
}

// benchmarkRetryClientFlakyServer measures one httpx.RetryClient.DoRetry
// call against a fresh server that answers its first two requests with a
// 503. Each iteration starts a server, sends one request and closes the
// server; each worker uses its own client. DoRetry retries only transport
// errors, so the 503 comes back as the response and no retry is made.
func benchmarkRetryClientFlakyServer(s *bench.State) {
	client := &httpx.RetryClient{Client: &http.Client{}}

	for s.KeepRunning() {
		server := newFlakyServer(2)

		body := []byte("{}")
		req, err := http.NewRequest(http.MethodPost, server.URL, bytes.NewReader(body))
		if err != nil {
			panic(err)
		}
		req.GetBody = func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(body)), nil
		}

		resp, err := client.DoRetry(req, 5, time.Millisecond)
		if err != nil {
			panic(err)
		}
		_ = resp.Body.Close()
		server.Close()
	}
}

// Package testutil provides a scripted stand-in for the pySET server.
package testutil

import (
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
)

// RecordedRequest is what the fake server saw for one call
type RecordedRequest struct {
	Method      string
	Route       string
	Path        string
	ContentType string
	RequestID   string
	Body        []byte
}

// FakeServer answers /api/app/{name}/ with canned bodies
type FakeServer struct {
	Server *httptest.Server

	mu        sync.Mutex
	responses map[string]string
	requests  []RecordedRequest
}

// NewFakeServer starts a server that is closed with the test
func NewFakeServer(t *testing.T) *FakeServer {
	t.Helper()

	f := &FakeServer{responses: make(map[string]string)}

	r := chi.NewRouter()
	r.HandleFunc("/api/app/{name}/", f.handle)
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		io.WriteString(w, "<html><body>not found</body></html>")
	})

	f.Server = httptest.NewServer(r)
	t.Cleanup(f.Server.Close)
	return f
}

func (f *FakeServer) handle(w http.ResponseWriter, r *http.Request) {
	route := "app/" + chi.URLParam(r, "name")
	body, _ := io.ReadAll(r.Body)

	f.mu.Lock()
	f.requests = append(f.requests, RecordedRequest{
		Method:      r.Method,
		Route:       route,
		Path:        r.URL.Path,
		ContentType: r.Header.Get("Content-Type"),
		RequestID:   r.Header.Get("X-Request-ID"),
		Body:        body,
	})
	raw, ok := f.responses[route]
	f.mu.Unlock()

	if !ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		io.WriteString(w, `{"status":"ERROR","error":"no canned response"}`)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	io.WriteString(w, raw)
}

// Respond sets the JSON answer for a route
func (f *FakeServer) Respond(t *testing.T, route string, body any) {
	t.Helper()
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("encoding canned response: %v", err)
	}
	f.RespondRaw(route, string(data))
}

// RespondRaw sets a verbatim answer for a route
func (f *FakeServer) RespondRaw(route, raw string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.responses[route] = raw
}

func (f *FakeServer) Requests() []RecordedRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]RecordedRequest, len(f.requests))
	copy(out, f.requests)
	return out
}

// LastRequest fails the test when nothing was received
func (f *FakeServer) LastRequest(t *testing.T) RecordedRequest {
	t.Helper()
	reqs := f.Requests()
	if len(reqs) == 0 {
		t.Fatalf("fake server received no request")
	}
	return reqs[len(reqs)-1]
}

// Port is the listening port, used as the router's local port
func (f *FakeServer) Port(t *testing.T) int {
	t.Helper()
	_, portStr, err := net.SplitHostPort(f.Server.Listener.Addr().String())
	if err != nil {
		t.Fatalf("splitting listener address: %v", err)
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		t.Fatalf("parsing listener port: %v", err)
	}
	return port
}

// ClosedPort returns a port nothing listens on
func ClosedPort(t *testing.T) int {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("reserving port: %v", err)
	}
	port := l.Addr().(*net.TCPAddr).Port
	l.Close()
	return port
}

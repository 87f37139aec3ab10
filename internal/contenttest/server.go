// Package contenttest runs an in-process stand-in for the content service.
//
// Tests seed it with the Birchwood defaults, then override individual
// endpoints to return errors, slow responses or malformed bodies.
package contenttest

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/mux"

	"birchwood/internal/domain"
)

// Route is the canned response of one endpoint.
type Route struct {
	Status int
	Body   []byte
	Delay  time.Duration // wait before answering; aborted when the client goes away
}

// Server is a fake content service.
type Server struct {
	*httptest.Server

	mu     sync.Mutex
	routes map[string]Route
	hits   map[string]int
	ids    []string
}

// New starts a seeded server and closes it when t finishes.
func New(t testing.TB) *Server {
	t.Helper()
	s := &Server{
		routes: make(map[string]Route),
		hits:   make(map[string]int),
	}
	s.SetJSON(domain.ResourceContact, SeedContact())
	s.SetJSON(domain.ResourceRules, SeedRules())
	s.SetJSON(domain.ResourceCamping, SeedCamping())
	s.SetJSON(domain.ResourceFishing, SeedFishing())
	s.SetJSON(domain.ResourceGallery, SeedGallery())

	r := mux.NewRouter()
	r.HandleFunc("/api/{name}", s.serve).Methods(http.MethodGet)
	s.Server = httptest.NewServer(r)
	t.Cleanup(s.Close)
	return s
}

func (s *Server) serve(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	s.mu.Lock()
	route, ok := s.routes[name]
	s.hits[name]++
	s.ids = append(s.ids, r.Header.Get("X-Request-ID"))
	s.mu.Unlock()
	if !ok {
		http.NotFound(w, r)
		return
	}
	if route.Delay > 0 {
		select {
		case <-time.After(route.Delay):
		case <-r.Context().Done():
			return
		}
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(route.Status)
	_, _ = w.Write(route.Body)
}

// Set replaces the response of the endpoint serving res.
func (s *Server) Set(res domain.Resource, route Route) {
	if route.Status == 0 {
		route.Status = http.StatusOK
	}
	s.mu.Lock()
	s.routes[endpoint(res)] = route
	s.mu.Unlock()
}

// SetJSON makes res answer 200 with v encoded as JSON.
func (s *Server) SetJSON(res domain.Resource, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	s.Set(res, Route{Status: http.StatusOK, Body: b})
}

// SetRaw makes res answer 200 with body verbatim.
func (s *Server) SetRaw(res domain.Resource, body string) {
	s.Set(res, Route{Status: http.StatusOK, Body: []byte(body)})
}

// Fail makes res answer with status and a small error body.
func (s *Server) Fail(res domain.Resource, status int) {
	s.Set(res, Route{Status: status, Body: []byte(`{"detail":"unavailable"}`)})
}

// Delay keeps the current response of res but answers after d.
func (s *Server) Delay(res domain.Resource, d time.Duration) {
	s.mu.Lock()
	route := s.routes[endpoint(res)]
	route.Delay = d
	s.routes[endpoint(res)] = route
	s.mu.Unlock()
}

// Hits returns how many requests reached the endpoint serving res.
func (s *Server) Hits(res domain.Resource) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hits[endpoint(res)]
}

// RequestIDs returns the X-Request-ID headers seen so far, in arrival order.
func (s *Server) RequestIDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.ids...)
}

func endpoint(res domain.Resource) string {
	p := res.Path()
	if len(p) > len("/api/") {
		return p[len("/api/"):]
	}
	return string(res)
}

// PNGDataURI returns a w×h solid PNG as a data URI.
func PNGDataURI(w, h int, c color.Color) string {
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(PNG(w, h, c))
}

// PNG returns a w×h solid PNG.
func PNG(w, h int, c color.Color) []byte {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		panic(err)
	}
	return buf.Bytes()
}

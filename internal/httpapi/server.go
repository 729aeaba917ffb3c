package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	apimw "github.com/hamed0406/statuscheck/internal/httpapi/middleware"
)

// Server is a small stand-in for the public status test endpoint:
// /status/{code} answers with whatever code it is asked for.
type Server struct {
	Logger *zap.Logger
}

func NewServer(l *zap.Logger) *Server {
	if l == nil {
		l = zap.NewNop()
	}
	return &Server{Logger: l}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(apimw.AccessLog(s.Logger))
	r.Use(cors.AllowAll().Handler)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Get("/get", s.handleEcho)
	r.HandleFunc("/status/{code}", s.handleStatus)

	return r
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	code, ok := parseStatusCode(chi.URLParam(r, "code"))
	if !ok {
		http.Error(w, "invalid status code", http.StatusBadRequest)
		return
	}
	w.WriteHeader(code)
}

type echoPayload struct {
	URL     string            `json:"url"`
	Args    map[string]string `json:"args"`
	Headers map[string]string `json:"headers"`
}

func (s *Server) handleEcho(w http.ResponseWriter, r *http.Request) {
	p := echoPayload{
		URL:     requestURL(r),
		Args:    make(map[string]string),
		Headers: make(map[string]string),
	}
	for k, v := range r.URL.Query() {
		if len(v) > 0 {
			p.Args[k] = v[0]
		}
	}
	for k, v := range r.Header {
		if len(v) > 0 {
			p.Headers[k] = v[0]
		}
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(p)
}

// parseStatusCode accepts final status codes only; 1xx cannot be the
// last word of a response.
func parseStatusCode(raw string) (int, bool) {
	code, err := strconv.Atoi(raw)
	if err != nil || code < 200 || code > 599 {
		return 0, false
	}
	return code, true
}

func requestURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + r.Host + r.URL.RequestURI()
}

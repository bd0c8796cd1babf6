// Package server renders the artist listing as a web page.
//
// The payload is fetched once, by Load, before serving starts. Every request
// after that, including filter submissions, is answered from that snapshot
// without touching the network. If the fetch failed, every page shows the
// error instead, until the process is restarted.
package server

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"log"
	"net/http"

	"github.com/amonks/lineup/data"
	"github.com/amonks/lineup/failure"
	"github.com/amonks/lineup/lineup"
)

//go:embed templates/*.html
var templateFS embed.FS

// A Loader does the one fetch.
type Loader func(ctx context.Context) (*data.Payload, error)

type Server struct {
	tmpl *template.Template

	listing *lineup.Listing
	err     error
}

func New() (*Server, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("error parsing templates: %w", err)
	}
	return &Server{tmpl: tmpl}, nil
}

// Load runs load and keeps either its payload or its error. Call it once,
// before Handler is serving requests.
func (s *Server) Load(ctx context.Context, load Loader) {
	payload, err := load(ctx)
	if err != nil {
		log.Printf("load error:\t%s\t%s", failure.KindOf(err), err)
		s.err = err
		return
	}
	s.listing = lineup.NewListing(payload)
	log.Printf("loaded:\t%d artists", s.listing.Len())
}

type pageView struct {
	Catalog  data.Catalog
	Criteria data.Criteria
	Artists  []data.DisplayRecord
	Error    string
	Empty    string
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handlePage)
	mux.HandleFunc("GET /api/catalog", s.handleCatalog)
	mux.HandleFunc("GET /api/artists", s.handleArtists)
	return mux
}

func criteriaFromRequest(req *http.Request) data.Criteria {
	query := req.URL.Query()
	return data.Criteria{
		Genre: query.Get("genre"),
		Day:   query.Get("day"),
		Stage: query.Get("stage"),
	}
}

func (s *Server) handlePage(w http.ResponseWriter, req *http.Request) {
	view := pageView{Empty: lineup.NoArtistsFound}
	if s.err != nil {
		view.Error = failure.Message(s.err)
	} else {
		view.Criteria = criteriaFromRequest(req)
		view.Catalog = s.listing.Catalog()
		view.Artists = s.listing.Artists(view.Criteria)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.tmpl.ExecuteTemplate(w, "page.html", view); err != nil {
		log.Printf("error executing template: %s", err)
	}
}

func (s *Server) handleCatalog(w http.ResponseWriter, req *http.Request) {
	if s.err != nil {
		writeJSONError(w, s.err)
		return
	}
	writeJSON(w, s.listing.Catalog())
}

func (s *Server) handleArtists(w http.ResponseWriter, req *http.Request) {
	if s.err != nil {
		writeJSONError(w, s.err)
		return
	}
	writeJSON(w, s.listing.Artists(criteriaFromRequest(req)))
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("error encoding json: %s", err)
	}
}

func writeJSONError(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusServiceUnavailable)
	json.NewEncoder(w).Encode(map[string]string{"error": failure.Message(err)})
}

// Run serves handler on addr until ctx is canceled.
func Run(ctx context.Context, handler http.Handler, addr string) error {
	srv := http.Server{Addr: addr, Handler: handler}

	errs := make(chan error)
	go func() { errs <- srv.ListenAndServe() }()

	log.Printf("listening on %s", addr)

	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
		if err := srv.Shutdown(context.Background()); err != nil {
			return err
		}
		if err := <-errs; err != http.ErrServerClosed {
			return err
		}
		return nil
	}
}

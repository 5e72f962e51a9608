// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package server implements the mdview document viewer:
// an HTTP server that renders Markdown files under a root directory
// as navigable pages, exposes them as JSON, and pushes reload
// notifications to open pages when files change.
package server

import (
	"bufio"
	"context"
	"encoding/json"
	"io/fs"
	"mime"
	"net"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"rsc.io/mdview"
	"rsc.io/mdview/internal/config"
	"rsc.io/mdview/internal/metrics"
)

var (
	errNotFound    = errors.New("document not found")
	errUnsupported = errors.New("unsupported document format")
	errBadPath     = errors.New("path outside document root")
)

// A Server serves the documents under a root directory.
type Server struct {
	cfg     config.ServerConfig
	style   string
	parser  *mdview.Parser
	log     zerolog.Logger
	metrics *metrics.Metrics
	gather  prometheus.Gatherer
	cache   *renderCache
	hub     *hub
	mux     *http.ServeMux
}

// New returns a server for cfg. Its collectors are registered with reg,
// which also backs the /metrics endpoint.
func New(cfg *config.Config, log zerolog.Logger, reg *prometheus.Registry) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	root, err := filepath.Abs(cfg.Server.Root)
	if err != nil {
		return nil, errors.Wrap(err, "document root")
	}
	info, err := os.Stat(root)
	if err != nil {
		return nil, errors.Wrap(err, "document root")
	}
	if !info.IsDir() {
		return nil, errors.Errorf("document root %s is not a directory", root)
	}

	m := metrics.New(reg)
	s := &Server{
		cfg:     cfg.Server,
		style:   cfg.Render.HighlightStyle,
		parser:  cfg.Render.Parser(),
		log:     log,
		metrics: m,
		gather:  reg,
		cache:   newRenderCache(),
		hub:     newHub(log, m),
		mux:     http.NewServeMux(),
	}
	s.cfg.Root = root
	s.routes()
	return s, nil
}

func (s *Server) routes() {
	s.handle("GET /{$}", "index", s.handleIndex)
	s.handle("GET /view/{path...}", "view", s.handleView)
	s.handle("GET /api/doc/{path...}", "api", s.handleAPI)
	s.handle("GET /raw/{path...}", "raw", s.handleRaw)
	s.handle("GET /static/highlight.css", "css", s.handleCSS)
	s.handle("GET /metrics", "metrics", promhttp.HandlerFor(s.gather, promhttp.HandlerOpts{}).ServeHTTP)
	if s.cfg.LiveReload {
		s.handle("GET /live", "live", s.hub.serveWS)
	}
}

// handle registers h for pattern, wrapped with request ids,
// access logging, and request metrics under the given route name.
func (s *Server) handle(pattern, route string, h http.HandlerFunc) {
	s.mux.Handle(pattern, s.instrument(route, h))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// Run serves HTTP on the configured address until ctx is canceled,
// then shuts down gracefully. When watching is enabled it also watches
// the document root for changes.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return errors.Wrapf(err, "listen on %s", s.cfg.Addr)
	}
	return s.Serve(ctx, ln)
}

// Serve is like Run but accepts connections on ln.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if s.cfg.Watch {
		w, err := s.newWatcher()
		if err != nil {
			return err
		}
		go w.run(ctx)
	}

	srv := &http.Server{
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errc := make(chan error, 1)
	go func() {
		errc <- srv.Serve(ln)
	}()
	s.log.Info().Str("addr", ln.Addr().String()).Str("root", s.cfg.Root).Msg("serving documents")

	select {
	case err := <-errc:
		return errors.Wrap(err, "serve")
	case <-ctx.Done():
	}

	shutdownCtx, stop := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer stop()
	s.hub.closeAll()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, "shutdown")
	}
	s.log.Info().Msg("server stopped")
	return nil
}

// A docResponse is the JSON form of a rendered document.
type docResponse struct {
	Path string `json:"path"`
	*mdview.Document
}

func (s *Server) handleAPI(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("path")
	doc, err := s.load(name)
	if err != nil {
		s.error(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	enc := json.NewEncoder(w)
	enc.SetIndent("", "\t")
	if err := enc.Encode(docResponse{name, doc}); err != nil {
		s.log.Warn().Err(err).Str("path", name).Msg("write response")
	}
}

func (s *Server) handleView(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("path")
	doc, err := s.load(name)
	if err != nil {
		s.error(w, r, err)
		return
	}
	s.writePage(w, r, pageTemplate, newPageData(name, doc, s.cfg.LiveReload))
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	docs, err := s.documents()
	if err != nil {
		s.error(w, r, err)
		return
	}
	s.writePage(w, r, indexTemplate, indexData{Docs: docs})
}

// handleRaw serves a file under the root with its detected content type,
// whatever its format.
func (s *Server) handleRaw(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("path")
	file, err := s.resolve(name)
	if err != nil {
		s.error(w, r, err)
		return
	}
	info, err := os.Stat(file)
	if err != nil || info.IsDir() {
		s.error(w, r, notFound(err, name))
		return
	}
	data, err := os.ReadFile(file)
	if err != nil {
		s.error(w, r, notFound(err, name))
		return
	}
	ctype := mime.TypeByExtension(filepath.Ext(file))
	if s.isDocument(file) {
		ctype = "text/markdown; charset=utf-8"
	}
	if ctype == "" {
		ctype = http.DetectContentType(data)
	}
	w.Header().Set("Content-Type", ctype)
	w.Write(data)
}

func (s *Server) handleCSS(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	if err := mdview.WriteHighlightCSS(w, s.style); err != nil {
		s.log.Warn().Err(err).Msg("write stylesheet")
	}
}

// resolve maps a slash-separated path from a URL to a file under the root.
func (s *Server) resolve(name string) (string, error) {
	rel := filepath.FromSlash(name)
	if name == "" || !filepath.IsLocal(rel) {
		return "", errors.Wrapf(errBadPath, "%q", name)
	}
	return filepath.Join(s.cfg.Root, rel), nil
}

func (s *Server) isDocument(file string) bool {
	return slices.Contains(s.cfg.Extensions, strings.ToLower(filepath.Ext(file)))
}

// load returns the rendered document at name, from the cache when
// the file is unchanged since it was last rendered.
func (s *Server) load(name string) (*mdview.Document, error) {
	file, err := s.resolve(name)
	if err != nil {
		return nil, err
	}
	if !s.isDocument(file) {
		return nil, errors.Wrapf(errUnsupported, "%s", name)
	}
	info, err := os.Stat(file)
	if err != nil || info.IsDir() {
		return nil, notFound(err, name)
	}
	if doc, ok := s.cache.get(name, info); ok {
		s.metrics.CacheLookups.WithLabelValues("hit").Inc()
		return doc, nil
	}
	s.metrics.CacheLookups.WithLabelValues("miss").Inc()

	data, err := os.ReadFile(file)
	if err != nil {
		return nil, notFound(err, name)
	}
	start := time.Now()
	doc, err := s.parser.Parse(string(data))
	if err != nil {
		return nil, errors.Wrapf(err, "render %s", name)
	}
	elapsed := time.Since(start)
	s.metrics.RenderDuration.Observe(elapsed.Seconds())
	s.metrics.RenderedBlocks.Observe(float64(len(doc.Blocks)))
	s.log.Debug().
		Str("path", name).
		Dur("duration", elapsed).
		Int("blocks", len(doc.Blocks)).
		Int("headings", len(doc.Outline)).
		Msg("rendered")
	s.cache.put(name, info, doc)
	return doc, nil
}

func notFound(err error, name string) error {
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return errors.Wrapf(errNotFound, "%s", name)
	}
	return errors.Wrapf(err, "%s", name)
}

// documents lists the documents under the root as slash-separated paths.
// Hidden directories are skipped.
func (s *Server) documents() ([]string, error) {
	var docs []string
	err := filepath.WalkDir(s.cfg.Root, func(file string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if file != s.cfg.Root && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if s.isDocument(file) {
			rel, err := filepath.Rel(s.cfg.Root, file)
			if err != nil {
				return err
			}
			docs = append(docs, filepath.ToSlash(rel))
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "list documents")
	}
	slices.Sort(docs)
	return docs, nil
}

// error writes the HTTP error corresponding to err.
func (s *Server) error(w http.ResponseWriter, r *http.Request, err error) {
	code := http.StatusInternalServerError
	switch errors.Cause(err) {
	case errNotFound:
		code = http.StatusNotFound
	case errUnsupported:
		code = http.StatusUnsupportedMediaType
	case errBadPath:
		code = http.StatusBadRequest
	}
	ev := s.log.Warn()
	if code == http.StatusInternalServerError {
		ev = s.log.Error()
	}
	ev.Err(err).Str("request_id", requestID(r)).Int("status", code).Msg("request failed")
	http.Error(w, err.Error(), code)
}

type requestIDKey struct{}

func requestID(r *http.Request) string {
	id, _ := r.Context().Value(requestIDKey{}).(string)
	return id
}

// instrument wraps h with a request id, an access log line,
// and request metrics.
func (s *Server) instrument(route string, h http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-Id")
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-Id", id)
		r = r.WithContext(context.WithValue(r.Context(), requestIDKey{}, id))

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		h(rec, r)
		elapsed := time.Since(start)

		s.metrics.RequestCount.WithLabelValues(r.Method, route, strconv.Itoa(rec.status)).Inc()
		s.metrics.RequestDuration.WithLabelValues(r.Method, route).Observe(elapsed.Seconds())
		s.log.Info().
			Str("request_id", id).
			Str("method", r.Method).
			Str("path", path.Clean(r.URL.Path)).
			Int("status", rec.status).
			Dur("duration", elapsed).
			Msg("request")
	})
}

// A statusRecorder records the status code written through it.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (w *statusRecorder) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusRecorder) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

// Hijack hands the connection to the live-reload websocket.
func (w *statusRecorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	h, ok := w.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, errors.New("connection cannot be hijacked")
	}
	w.status = http.StatusSwitchingProtocols
	return h.Hijack()
}

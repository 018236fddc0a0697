package server

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/Nel-sokchhunly/sing-khmer-keyboard/pkg/config"
	"github.com/Nel-sokchhunly/sing-khmer-keyboard/pkg/suggest"
)

// Server reads msgpack request frames, runs them against the engine, and
// writes one response frame per request.
type Server struct {
	index     *suggest.Trie
	suggester *suggest.Suggester
	cfg       *config.Config
	dec       *msgpack.Decoder
	enc       *msgpack.Encoder
}

// NewServer wires the engine to stdin/stdout for host IPC.
func NewServer(index *suggest.Trie, cfg *config.Config) *Server {
	return newServer(index, cfg, os.Stdin, os.Stdout)
}

func newServer(index *suggest.Trie, cfg *config.Config, r io.Reader, w io.Writer) *Server {
	return &Server{
		index:     index,
		suggester: suggest.NewSuggester(index),
		cfg:       cfg,
		dec:       msgpack.NewDecoder(r),
		enc:       msgpack.NewEncoder(w),
	}
}

// Start runs the request loop until the input stream closes.
func (s *Server) Start() error {
	log.Debug("server: ready")
	s.send(StatusResponse{Status: "ready"})

	for {
		var req Request
		if err := s.dec.Decode(&req); err != nil {
			if errors.Is(err, io.EOF) {
				log.Debug("server: input closed, shutting down")
				return nil
			}
			log.Errorf("decoding request: %v", err)
			return err
		}
		s.handleRequest(req)
	}
}

func (s *Server) handleRequest(req Request) {
	switch req.Action {
	case "", "suggest":
		s.handleSearch(req, func(input string) []string {
			return s.suggester.Suggest(input)
		})
	case "exact":
		s.handleSearch(req, s.index.SearchExact)
	case "prefix":
		s.handleSearch(req, s.index.SearchPrefix)
	case "fuzzy":
		maxDist := suggest.FuzzyMaxDistance
		if req.MaxDistance != nil {
			maxDist = *req.MaxDistance
		}
		s.handleSearch(req, func(input string) []string {
			return s.index.SearchFuzzy(input, maxDist)
		})
	case "select":
		s.handleSelect(req)
	case "stats":
		stats := s.index.Stats()
		s.send(StatsResponse{
			ID:           req.ID,
			Keys:         stats.Keys,
			Pairs:        stats.Pairs,
			MaxFrequency: stats.MaxFrequency,
		})
	default:
		s.sendError(req.ID, fmt.Sprintf("unknown action: %s", req.Action), 400)
	}
}

// handleSearch validates the input and answers with the ranked words the
// given mode produced. An empty result is a normal response, not an error.
func (s *Server) handleSearch(req Request, search func(string) []string) {
	if req.Input == "" {
		s.sendError(req.ID, "missing 'q' field", 400)
		return
	}
	if max := s.cfg.Server.MaxInputLen; max > 0 && len(req.Input) > max {
		s.sendError(req.ID, fmt.Sprintf("input exceeds maximum length of %d", max), 400)
		return
	}

	start := time.Now()
	words := search(req.Input)
	elapsed := time.Since(start)

	candidates := make([]Candidate, len(words))
	for i, w := range words {
		candidates[i] = Candidate{Word: w, Rank: uint16(i + 1)}
	}

	s.send(SuggestResponse{
		ID:        req.ID,
		Words:     candidates,
		Count:     len(candidates),
		TimeTaken: elapsed.Microseconds(),
	})
}

// handleSelect strengthens the accepted (key, word) pair. The increment
// itself is a no-op for unknown pairs, so the ack is unconditional.
func (s *Server) handleSelect(req Request) {
	if req.Key == "" || req.Word == "" {
		s.sendError(req.ID, "select requires 'k' and 'w' fields", 400)
		return
	}
	s.index.IncrementFrequency(req.Key, req.Word)
	log.Debugf("select: %q -> %q", req.Key, req.Word)
	s.send(StatusResponse{ID: req.ID, Status: "ok"})
}

func (s *Server) send(resp any) {
	if err := s.enc.Encode(resp); err != nil {
		log.Errorf("encoding response: %v", err)
	}
}

func (s *Server) sendError(id, message string, code int) {
	log.Debugf("rejected request %q: %s", id, message)
	s.send(ErrorResponse{ID: id, Error: message, Code: code})
}

/*
Package server implements the msgpack IPC surface the host keyboard
integration talks to.

Frames are msgpack-encoded over stdin/stdout and processed synchronously.
Every request carries an id that is echoed in the response, plus an
action selecting the operation; an empty action means "suggest".

A suggestion request and its response:

	{"id": "req_001", "q": "slan"}
	{"id": "req_001", "s": [{"w": "ស្លាញ់", "r": 1}], "c": 1, "t": 87}

When the user accepts a candidate, the host reports the selection so the
pair's frequency is strengthened for future ranking:

	{"id": "sel_001", "action": "select", "k": "slanh", "w": "ស្លាញ់"}

The raw search modes ("exact", "prefix", "fuzzy") and "stats" exist for
debugging hosts and test harnesses; "fuzzy" honors an optional edit
budget d (default 1).
*/
package server

// Request is the single inbound frame shape.
type Request struct {
	ID          string `msgpack:"id"`
	Action      string `msgpack:"action,omitempty"` // "", "suggest", "exact", "prefix", "fuzzy", "select", "stats"
	Input       string `msgpack:"q,omitempty"`
	Key         string `msgpack:"k,omitempty"`  // for "select"
	Word        string `msgpack:"w,omitempty"`  // for "select"
	MaxDistance *int   `msgpack:"d,omitempty"`  // for "fuzzy"
}

// Candidate is one ranked suggestion.
type Candidate struct {
	Word string `msgpack:"w"`
	Rank uint16 `msgpack:"r"`
}

// SuggestResponse answers suggest/exact/prefix/fuzzy requests.
type SuggestResponse struct {
	ID        string      `msgpack:"id"`
	Words     []Candidate `msgpack:"s"`
	Count     int         `msgpack:"c"`
	TimeTaken int64       `msgpack:"t"` // microseconds
}

// StatusResponse acknowledges select requests and startup.
type StatusResponse struct {
	ID     string `msgpack:"id,omitempty"`
	Status string `msgpack:"status"`
}

// StatsResponse reports index size.
type StatsResponse struct {
	ID           string `msgpack:"id"`
	Keys         int    `msgpack:"keys"`
	Pairs        int    `msgpack:"pairs"`
	MaxFrequency int    `msgpack:"max_freq"`
}

// ErrorResponse reports a rejected frame.
type ErrorResponse struct {
	ID    string `msgpack:"id,omitempty"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}

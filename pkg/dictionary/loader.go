// Package dictionary loads the flat romanization corpus into a suggest
// index. One entry per line:
//
//	<khmer word>: <romanization1>, <romanization2>, ...
//
// Parsing is deliberately lenient: blank and malformed lines are dropped
// silently so a partially damaged corpus still yields a usable index.
package dictionary

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/Nel-sokchhunly/sing-khmer-keyboard/pkg/suggest"
)

// LoadStats summarizes one corpus load.
type LoadStats struct {
	Lines   int // lines read
	Skipped int // blank or malformed lines dropped
	Pairs   int // (romanization, word) pairs inserted
}

// Load reads a corpus from r into a fresh index. The index is built off
// to the side and only returned once the scan completes, so callers never
// observe a half-populated one. Every surviving pair is inserted at
// frequency 1, accumulating when the same pair recurs across lines.
func Load(r io.Reader) (*suggest.Trie, LoadStats) {
	trie := suggest.NewTrie()
	var stats LoadStats

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		stats.Lines++
		word, keys, ok := parseLine(scanner.Text())
		if !ok {
			stats.Skipped++
			continue
		}
		for _, key := range keys {
			trie.Insert(key, word, 1)
			stats.Pairs++
		}
	}
	if err := scanner.Err(); err != nil {
		// never publish a half-populated index
		log.Warnf("corpus scan failed, discarding partial index: %v", err)
		return suggest.NewTrie(), LoadStats{}
	}

	log.Debugf("corpus loaded: %d lines, %d skipped, %d pairs", stats.Lines, stats.Skipped, stats.Pairs)
	return trie, stats
}

// LoadFile loads the corpus at path. A missing or unreadable file is not
// fatal: the engine must stay queryable, so LoadFile returns an empty
// index together with the error for the caller to log.
func LoadFile(path string) (*suggest.Trie, LoadStats, error) {
	f, err := os.Open(path)
	if err != nil {
		return suggest.NewTrie(), LoadStats{}, fmt.Errorf("opening corpus %s: %w", path, err)
	}
	defer f.Close()

	trie, stats := Load(f)
	return trie, stats, nil
}

// parseLine splits one corpus line into the Khmer word and its
// romanization keys. ok is false for blank lines, lines without a colon,
// and lines whose word or whole right-hand side is empty after trimming.
// Individual empty romanization tokens are dropped, the rest lower-cased.
func parseLine(line string) (string, []string, bool) {
	if strings.TrimSpace(line) == "" {
		return "", nil, false
	}

	word, rest, found := strings.Cut(line, ":")
	if !found {
		return "", nil, false
	}
	word = strings.TrimSpace(word)
	if word == "" || strings.TrimSpace(rest) == "" {
		return "", nil, false
	}

	var keys []string
	for _, token := range strings.Split(rest, ",") {
		key := strings.ToLower(strings.TrimSpace(token))
		if key == "" {
			continue
		}
		keys = append(keys, key)
	}
	if len(keys) == 0 {
		return "", nil, false
	}
	return word, keys, true
}

// Package suggest is the core engine: a frequency-ranked romanization
// index over a patricia trie, the exact/prefix/fuzzy retrieval modes,
// and the composition policy that merges them into suggestions.
package suggest

import (
	"sort"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// Trie maps romanized keys to Khmer words with a usage frequency per
// (key, word) pair. Keys are normalized to lower case before every
// operation, blank keys or words are silently ignored, and pairs are
// never deleted; frequencies only grow.
//
// A single RWMutex guards the whole index: searches share a read lock,
// Insert and IncrementFrequency take the write lock. Call volume is
// per-keystroke, so one global lock is sufficient.
type Trie struct {
	mu      sync.RWMutex
	index   *patricia.Trie
	keys    int
	pairs   int
	maxFreq int
}

// Stats describes the current size of the index.
type Stats struct {
	Keys         int
	Pairs        int
	MaxFrequency int
}

// NewTrie returns an empty index.
func NewTrie() *Trie {
	return &Trie{
		index: patricia.NewTrie(),
	}
}

// NormalizeKey is the canonical form every operation applies to its key
// argument: surrounding whitespace trimmed, lower-cased.
func NormalizeKey(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}

// Insert records word under key, adding freq to the pair's frequency.
// Repeated inserts of the same pair accumulate rather than overwrite.
// A blank key, blank word, or non-positive freq is a no-op.
func (t *Trie) Insert(key, word string, freq int) {
	key = NormalizeKey(key)
	word = strings.TrimSpace(word)
	if key == "" || word == "" || freq < 1 {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	words, ok := t.index.Get(patricia.Prefix(key)).(map[string]int)
	if !ok {
		words = make(map[string]int)
		t.index.Set(patricia.Prefix(key), words)
		t.keys++
	}
	if _, exists := words[word]; !exists {
		t.pairs++
	}
	words[word] += freq
	if words[word] > t.maxFreq {
		t.maxFreq = words[word]
	}
}

// IncrementFrequency adds 1 to the frequency of an existing (key, word)
// pair. Unknown keys or words are a no-op: selection events never create
// vocabulary, they only strengthen it.
func (t *Trie) IncrementFrequency(key, word string) {
	key = NormalizeKey(key)
	word = strings.TrimSpace(word)
	if key == "" || word == "" {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	words, ok := t.index.Get(patricia.Prefix(key)).(map[string]int)
	if !ok {
		return
	}
	if _, exists := words[word]; !exists {
		return
	}
	words[word]++
	if words[word] > t.maxFreq {
		t.maxFreq = words[word]
	}
}

// Frequency returns the stored count for a (key, word) pair, 0 when the
// pair is not present.
func (t *Trie) Frequency(key, word string) int {
	key = NormalizeKey(key)
	word = strings.TrimSpace(word)
	if key == "" || word == "" {
		return 0
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	words, ok := t.index.Get(patricia.Prefix(key)).(map[string]int)
	if !ok {
		return 0
	}
	return words[word]
}

// SearchExact returns the words stored at exactly key, ordered by
// frequency descending. Frequency ties break lexicographically ascending
// on the word so results are deterministic.
func (t *Trie) SearchExact(key string) []string {
	key = NormalizeKey(key)
	if key == "" {
		return nil
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	words, ok := t.index.Get(patricia.Prefix(key)).(map[string]int)
	if !ok {
		return nil
	}
	return rankByFrequency(words)
}

// SearchPrefix returns every word reachable under prefix, ordered by the
// word's frequency summed across all keys in the subtree: a word stored
// under several romanizations sharing the prefix counts once, with its
// frequencies added together. Same tie-break as SearchExact. The words
// at the exact key are always a subset of its prefix results.
func (t *Trie) SearchPrefix(prefix string) []string {
	prefix = NormalizeKey(prefix)
	if prefix == "" {
		return nil
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	sums := make(map[string]int)
	err := t.index.VisitSubtree(patricia.Prefix(prefix), func(_ patricia.Prefix, item patricia.Item) error {
		for word, freq := range item.(map[string]int) {
			sums[word] += freq
		}
		return nil
	})
	if err != nil {
		log.Errorf("visiting subtree for %q: %v", prefix, err)
		return nil
	}
	if len(sums) == 0 {
		return nil
	}
	return rankByFrequency(sums)
}

// SearchFuzzy returns distinct words whose key is within maxDistance
// edits of input, ordered by distance ascending then frequency
// descending, ties lexicographic. A word reachable through several keys
// keeps only its best-ranked occurrence; frequencies are not summed.
// SearchFuzzy(x, 0) yields the same word set as SearchExact(x).
//
// Every stored key is scanned per query. Fine for corpora of a few
// thousand keys; a bounded-distance index would be needed beyond that.
func (t *Trie) SearchFuzzy(input string, maxDistance int) []string {
	input = NormalizeKey(input)
	if input == "" {
		return nil
	}

	type candidate struct {
		word string
		dist int
		freq int
	}

	t.mu.RLock()
	var candidates []candidate
	err := t.index.Visit(func(p patricia.Prefix, item patricia.Item) error {
		d := Distance(input, string(p))
		if d > maxDistance {
			return nil
		}
		for word, freq := range item.(map[string]int) {
			candidates = append(candidates, candidate{word: word, dist: d, freq: freq})
		}
		return nil
	})
	t.mu.RUnlock()
	if err != nil {
		log.Errorf("scanning keys for %q: %v", input, err)
		return nil
	}
	if len(candidates) == 0 {
		return nil
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].dist != candidates[j].dist {
			return candidates[i].dist < candidates[j].dist
		}
		if candidates[i].freq != candidates[j].freq {
			return candidates[i].freq > candidates[j].freq
		}
		return candidates[i].word < candidates[j].word
	})

	seen := make(map[string]bool, len(candidates))
	results := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if seen[c.word] {
			continue
		}
		seen[c.word] = true
		results = append(results, c.word)
	}
	return results
}

// Stats reports key count, pair count, and the highest stored frequency.
func (t *Trie) Stats() Stats {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return Stats{
		Keys:         t.keys,
		Pairs:        t.pairs,
		MaxFrequency: t.maxFreq,
	}
}

// rankByFrequency flattens a word->frequency map into words ordered by
// frequency descending, ties lexicographic ascending.
func rankByFrequency(words map[string]int) []string {
	type entry struct {
		word string
		freq int
	}
	entries := make([]entry, 0, len(words))
	for word, freq := range words {
		entries = append(entries, entry{word: word, freq: freq})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].freq != entries[j].freq {
			return entries[i].freq > entries[j].freq
		}
		return entries[i].word < entries[j].word
	})
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.word
	}
	return out
}

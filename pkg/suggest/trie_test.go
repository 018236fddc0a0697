package suggest

import (
	"reflect"
	"sort"
	"sync"
	"testing"
)

func newSeededTrie() *Trie {
	trie := NewTrie()
	trie.Insert("jg", "ជាង", 1)
	trie.Insert("jg", "ចង់", 1)
	trie.Insert("slanh", "ស្លាញ់", 1)
	trie.Insert("srolanh", "ស្រឡាញ់", 2)
	trie.Insert("kjol", "ខ្យល់", 1)
	return trie
}

func sortedCopy(s []string) []string {
	out := append([]string(nil), s...)
	sort.Strings(out)
	return out
}

func TestSearchExactRanking(t *testing.T) {
	trie := newSeededTrie()

	got := trie.SearchExact("jg")
	if len(got) != 2 {
		t.Fatalf("Expected 2 words for 'jg', got %v", got)
	}
	// equal frequency: deterministic lexicographic order
	if got[0] != "ចង់" || got[1] != "ជាង" {
		t.Errorf("Expected tie-broken [ចង់ ជាង], got %v", got)
	}

	if got := trie.SearchExact("nothere"); len(got) != 0 {
		t.Errorf("Expected no words for unknown key, got %v", got)
	}
}

func TestCaseInvariance(t *testing.T) {
	trie := newSeededTrie()
	trie.Insert("SLANH", "ស្លាញ់", 1) // accumulates into the lower-cased key

	variants := []string{"slanh", "SLANH", "SlAnH", "  slanh  "}
	want := trie.SearchExact("slanh")
	if len(want) == 0 {
		t.Fatal("Expected matches for 'slanh'")
	}
	for _, v := range variants {
		if got := trie.SearchExact(v); !reflect.DeepEqual(got, want) {
			t.Errorf("SearchExact(%q) = %v, want %v", v, got, want)
		}
		if got := trie.SearchPrefix(v); len(got) == 0 {
			t.Errorf("SearchPrefix(%q) returned nothing", v)
		}
		if got, wantF := trie.SearchFuzzy(v, 1), trie.SearchFuzzy("slanh", 1); !reflect.DeepEqual(got, wantF) {
			t.Errorf("SearchFuzzy(%q, 1) = %v, want %v", v, got, wantF)
		}
	}

	if trie.Frequency("slanh", "ស្លាញ់") != 2 {
		t.Errorf("Upper-cased insert did not accumulate into the canonical key")
	}
}

func TestExactSubsetOfPrefix(t *testing.T) {
	trie := newSeededTrie()

	for _, key := range []string{"jg", "slanh", "srolanh", "kjol"} {
		prefixWords := trie.SearchPrefix(key)
		inPrefix := make(map[string]bool, len(prefixWords))
		for _, w := range prefixWords {
			inPrefix[w] = true
		}
		for _, w := range trie.SearchExact(key) {
			if !inPrefix[w] {
				t.Errorf("Exact result %q for key %q missing from prefix results %v", w, key, prefixWords)
			}
		}
	}
}

func TestPrefixSumsAcrossKeys(t *testing.T) {
	trie := NewTrie()
	// one word reachable via two keys under the prefix, frequencies summed
	trie.Insert("sl", "ស្លាញ់", 2)
	trie.Insert("sla", "ស្លាញ់", 3)
	trie.Insert("slx", "សល", 4)

	got := trie.SearchPrefix("sl")
	want := []string{"ស្លាញ់", "សល"} // summed 5 beats 4
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SearchPrefix('sl') = %v, want %v", got, want)
	}
}

func TestFuzzyZeroEqualsExact(t *testing.T) {
	trie := newSeededTrie()
	for _, key := range []string{"jg", "slanh", "missing"} {
		exact := sortedCopy(trie.SearchExact(key))
		fuzzy := sortedCopy(trie.SearchFuzzy(key, 0))
		if !reflect.DeepEqual(exact, fuzzy) {
			t.Errorf("Fuzzy at distance 0 for %q = %v, exact = %v", key, fuzzy, exact)
		}
	}
}

func TestFuzzyToleratesOneEdit(t *testing.T) {
	trie := newSeededTrie()

	got := trie.SearchFuzzy("slah", 1) // one deletion away from slanh
	found := false
	for _, w := range got {
		if w == "ស្លាញ់" {
			found = true
		}
	}
	if !found {
		t.Errorf("SearchFuzzy('slah', 1) = %v, expected it to contain ស្លាញ់", got)
	}

	if got := trie.SearchFuzzy("slah", 0); len(got) != 0 {
		t.Errorf("SearchFuzzy('slah', 0) = %v, expected no matches", got)
	}
}

func TestFuzzyOrdering(t *testing.T) {
	trie := NewTrie()
	trie.Insert("test", "តេស្ត១", 1)
	trie.Insert("tests", "តេស្ត២", 3)
	trie.Insert("text", "តេស្ត៣", 2)

	got := trie.SearchFuzzy("test", 2)
	// distance 0 first, then distance-1 ties broken by frequency desc
	want := []string{"តេស្ត១", "តេស្ត២", "តេស្ត៣"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SearchFuzzy('test', 2) = %v, want %v", got, want)
	}
}

func TestFuzzyDeduplicatesByBestRank(t *testing.T) {
	trie := NewTrie()
	// same word under two keys near the input: keep the closer occurrence,
	// do not sum frequencies
	trie.Insert("chong", "ចង់", 1)
	trie.Insert("chng", "ចង់", 5)
	trie.Insert("chong", "ចុង", 2)

	got := trie.SearchFuzzy("chong", 1)
	want := []string{"ចុង", "ចង់"} // both at distance 0 via "chong", freq 2 beats 1
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SearchFuzzy('chong', 1) = %v, want %v", got, want)
	}
}

func TestFrequencyAccumulation(t *testing.T) {
	twice := NewTrie()
	twice.Insert("jg", "ចង់", 1)
	twice.Insert("jg", "ចង់", 1)

	once := NewTrie()
	once.Insert("jg", "ចង់", 2)

	if a, b := twice.Frequency("jg", "ចង់"), once.Frequency("jg", "ចង់"); a != b {
		t.Errorf("Inserting twice at 1 stored %d, inserting once at 2 stored %d", a, b)
	}
}

func TestIncrementLearning(t *testing.T) {
	trie := newSeededTrie()

	for i := 0; i < 3; i++ {
		trie.IncrementFrequency("jg", "ចង់")
	}
	if got := trie.SearchExact("jg"); got[0] != "ចង់" {
		t.Errorf("After three acceptances expected ចង់ first, got %v", got)
	}
	if f := trie.Frequency("jg", "ជាង"); f != 1 {
		t.Errorf("Increment leaked onto sibling word: freq %d", f)
	}
}

func TestIncrementNeverCreatesPairs(t *testing.T) {
	trie := newSeededTrie()
	before := trie.SearchExact("jg")
	beforeStats := trie.Stats()

	trie.IncrementFrequency("unknownkey", "ចង់")
	trie.IncrementFrequency("jg", "មិនមាន")
	trie.IncrementFrequency("", "ចង់")
	trie.IncrementFrequency("jg", "   ")

	if got := trie.SearchExact("jg"); !reflect.DeepEqual(got, before) {
		t.Errorf("Results changed after no-op increments: %v -> %v", before, got)
	}
	if got := trie.Stats(); got != beforeStats {
		t.Errorf("Stats changed after no-op increments: %+v -> %+v", beforeStats, got)
	}
}

func TestBlankInputsAreNoOps(t *testing.T) {
	trie := newSeededTrie()
	beforeStats := trie.Stats()

	trie.Insert("", "ចង់", 1)
	trie.Insert("   ", "ចង់", 1)
	trie.Insert("jg", "", 1)
	trie.Insert("jg", "  ", 1)

	if got := trie.Stats(); got != beforeStats {
		t.Errorf("Blank inserts mutated the index: %+v -> %+v", beforeStats, got)
	}

	for _, blank := range []string{"", "   ", "\t"} {
		if got := trie.SearchExact(blank); len(got) != 0 {
			t.Errorf("SearchExact(%q) = %v, want empty", blank, got)
		}
		if got := trie.SearchPrefix(blank); len(got) != 0 {
			t.Errorf("SearchPrefix(%q) = %v, want empty", blank, got)
		}
		if got := trie.SearchFuzzy(blank, 2); len(got) != 0 {
			t.Errorf("SearchFuzzy(%q) = %v, want empty", blank, got)
		}
	}
}

func TestNonPositiveInsertFreqIgnored(t *testing.T) {
	trie := NewTrie()
	trie.Insert("jg", "ចង់", 0)
	trie.Insert("jg", "ចង់", -3)
	if got := trie.Stats(); got.Pairs != 0 {
		t.Errorf("Non-positive freq insert created pairs: %+v", got)
	}
}

func TestConcurrentAccess(t *testing.T) {
	trie := newSeededTrie()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				trie.SearchExact("jg")
				trie.SearchPrefix("s")
				trie.SearchFuzzy("slah", 1)
			}
		}()
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		for j := 0; j < 200; j++ {
			trie.IncrementFrequency("jg", "ចង់")
		}
	}()
	wg.Wait()

	if f := trie.Frequency("jg", "ចង់"); f != 201 {
		t.Errorf("Lost updates under concurrency: freq %d, want 201", f)
	}
}

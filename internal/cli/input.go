// Package cli is the interactive front-end for testing the engine: type
// a romanization, get ranked Khmer candidates, accept one by number to
// exercise the frequency-learning path.
package cli

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	charmlog "github.com/charmbracelet/log"

	"github.com/Nel-sokchhunly/sing-khmer-keyboard/internal/logger"
	"github.com/Nel-sokchhunly/sing-khmer-keyboard/internal/utils"
	"github.com/Nel-sokchhunly/sing-khmer-keyboard/pkg/suggest"
)

// InputHandler reads romanized input from stdin and prints suggestions.
// After a suggestion list, entering its number (1-3) marks that candidate
// as accepted, which strengthens the pair for future ranking.
type InputHandler struct {
	index     *suggest.Trie
	suggester *suggest.Suggester
	log       *charmlog.Logger
	showFreq  bool

	lastInput string
	lastWords []string
}

// NewInputHandler wraps the index for interactive use.
func NewInputHandler(index *suggest.Trie, showFreq bool) *InputHandler {
	return &InputHandler{
		index:     index,
		suggester: suggest.NewSuggester(index),
		log:       logger.New("cli"),
		showFreq:  showFreq,
	}
}

// Start begins the interface loop. It terminates when stdin closes or
// errors out.
func (h *InputHandler) Start() error {
	h.log.Print("Sing Khmer CLI")
	h.log.Print("type a romanization and press Enter; enter 1-3 to accept a suggestion (Ctrl+C to exit):")
	reader := bufio.NewReader(os.Stdin)

	for {
		h.log.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		h.handleLine(line)
	}
}

// handleLine treats a bare 1-3 as a selection against the previous
// suggestion list, anything else as a new lookup.
func (h *InputHandler) handleLine(line string) {
	if n, err := strconv.Atoi(line); err == nil && len(h.lastWords) > 0 {
		if n < 1 || n > len(h.lastWords) {
			h.log.Errorf("No suggestion numbered %d", n)
			return
		}
		word := h.lastWords[n-1]
		h.index.IncrementFrequency(h.lastInput, word)
		h.log.Printf("Accepted %s for '%s' (freq now %s)",
			word, h.lastInput, utils.FormatWithCommas(h.index.Frequency(h.lastInput, word)))
		return
	}

	words := h.suggester.Suggest(line)
	if len(words) == 0 {
		h.log.Warnf("No suggestions found for '%s'", line)
		h.lastInput, h.lastWords = "", nil
		return
	}

	h.lastInput, h.lastWords = suggest.NormalizeKey(line), words
	h.log.Printf("Found %d suggestions for '%s':", len(words), line)
	for i, w := range words {
		clWord := fmt.Sprintf("\033[38;5;75m%s\033[0m", w)
		if h.showFreq {
			freq := utils.FormatWithCommas(h.index.Frequency(h.lastInput, w))
			h.log.Printf("%2d. %-30s (freq: %8s)", i+1, clWord, freq)
		} else {
			h.log.Printf("%2d. %s", i+1, clWord)
		}
	}
}

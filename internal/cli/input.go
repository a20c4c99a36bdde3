// Package cli provides a stdin REPL for exercising the prediction engine
// interactively during development.
package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/swypelab/swyft/internal/utils"
	"github.com/swypelab/swyft/pkg/predictor"
)

// InputHandler reads swipe traces from stdin and prints ranked predictions.
type InputHandler struct {
	pred         *predictor.Predictor
	minTraceLen  int
	maxTraceLen  int
	limit        int
	requestCount int
}

// NewInputHandler creates a REPL input handler bound to pred.
func NewInputHandler(pred *predictor.Predictor, minLen, maxLen, limit int) *InputHandler {
	return &InputHandler{
		pred:        pred,
		minTraceLen: minLen,
		maxTraceLen: maxLen,
		limit:       limit,
	}
}

// Start begins the REPL loop.
func (h *InputHandler) Start() error {
	log.Print("swyft debug REPL")
	reader := bufio.NewReader(os.Stdin)
	log.Print("type a swipe trace and press Enter (Ctrl+C to exit):")

	for {
		log.Print("> ")
		trace, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		trace = strings.TrimSpace(trace)
		if trace == "" {
			continue
		}
		h.handleInput(trace)
	}
}

func (h *InputHandler) handleInput(trace string) {
	h.requestCount++

	if len(trace) < h.minTraceLen {
		log.Errorf("trace too short: %s", trace)
		return
	}
	if len(trace) > h.maxTraceLen {
		log.Errorf("trace too long: %s", trace)
		return
	}
	if !utils.IsValidInput(trace) {
		log.Warnf("trace rejected by input filter: '%s'", trace)
		return
	}

	start := time.Now()
	preds := h.pred.Predict(trace, h.limit)
	elapsed := time.Since(start)

	log.Debugf("took %v for trace '%s'", elapsed, trace)

	if len(preds) == 0 {
		log.Warnf("no predictions for trace: '%s'", trace)
		return
	}

	log.Printf("found %d predictions for trace '%s':", len(preds), trace)
	for i, p := range preds {
		clWord := fmt.Sprintf("\033[38;5;75m%s\033[0m", p.Word)
		log.Printf("%2d. %-20s (score: %6.4f, freq: %5.3f)", i+1, clWord, p.Score, p.Freq)
	}
}

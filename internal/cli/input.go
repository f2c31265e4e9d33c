// Package cli checks text piped or typed on stdin, line by line.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/aqbifzl/rscheck/pkg/checker"
	"github.com/charmbracelet/log"
)

// StdinName is the path reported for text read from stdin.
const StdinName = "<stdin>"

const maxLineSize = 1024 * 1024

// InputHandler feeds stdin to a checker as a single pseudo-file.
// Typos are reported as soon as their line is read, so it also works
// interactively.
type InputHandler struct {
	checker *checker.Checker
	prompt  bool
}

// NewInputHandler handles initialization of the InputHandler.
// prompt prints a short hint to the log before reading, for terminals.
func NewInputHandler(c *checker.Checker, prompt bool) *InputHandler {
	return &InputHandler{
		checker: c,
		prompt:  prompt,
	}
}

// Start builds the dictionary, then checks every line of in until EOF.
// The summary counts stdin as one file.
func (h *InputHandler) Start(in io.Reader) (checker.Stats, error) {
	if err := h.checker.Build(); err != nil {
		return checker.Stats{}, err
	}
	reporter := h.checker.Reporter()

	if h.prompt {
		log.Print("rscheck: type or paste text, typos are listed after each line (Ctrl+D to finish)")
	}

	reporter.FileStarted(StdinName)
	stats := checker.Stats{FilesChecked: 1}
	if err := h.readLines(in); err != nil {
		stats.Errors++
		reporter.FileError(StdinName, err)
	}
	reporter.FileDone(StdinName)

	stats.Typos = h.checker.Stats().Typos
	reporter.Summary(stats)
	return stats, nil
}

func (h *InputHandler) readLines(in io.Reader) error {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	lineNum := 0
	for scanner.Scan() {
		line := scanner.Text()
		if !utf8.ValidString(line) {
			log.Debugf("Skipping invalid line %d on stdin", lineNum)
		} else if n := h.checker.CheckLine(StdinName, line, lineNum); n > 0 {
			log.Debugf("Line %d: %d typos", lineNum, n)
		}
		lineNum++
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read line %d: %w", lineNum, err)
	}
	return nil
}

// =============================================================================
// lineeditor.go - Line Editing with History
// =============================================================================
//
// This file provides the input layer for the REPL. It has two modes:
//
//   - Interactive (TTY): uses ergochat/readline for cursor movement, history
//     navigation with the arrow keys, and Ctrl-R search. History persists
//     across sessions in ~/.mcsh_history (or repl.history_file).
//
//   - Non-interactive (pipe, Emacs comint): reads plain lines with a
//     bufio.Scanner and prints the prompt itself, so scripts can pipe
//     commands into mcsh.
//
// =============================================================================

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ergochat/readline"
	"golang.org/x/term"

	"github.com/mcrs/mcrs-go/internal/config"
)

// historyFileName is the default history file in the user's home directory.
const historyFileName = ".mcsh_history"

// LineEditor reads REPL input lines.
type LineEditor struct {
	// interactive is true when readline drives a real terminal.
	interactive bool

	rl *readline.Instance

	scanner *bufio.Scanner
	out     io.Writer
}

// NewLineEditor creates a line editor for os.Stdin.
//
// Readline is only used when stdin is a terminal and we are not running
// inside Emacs, which provides its own line editing.
func NewLineEditor(cfg config.REPLConfig) *LineEditor {
	isInteractive := term.IsTerminal(int(os.Stdin.Fd())) &&
		os.Getenv("INSIDE_EMACS") == ""

	if !isInteractive {
		return newScannerLineEditor(os.Stdin, os.Stdout)
	}

	historyLimit := cfg.HistorySize
	if historyLimit == 0 {
		// readline treats a negative limit as "no history".
		historyLimit = -1
	}

	rl, err := readline.NewFromConfig(&readline.Config{
		HistoryFile:            historyPath(cfg),
		HistoryLimit:           historyLimit,
		DisableAutoSaveHistory: true,
		Prompt:                 "",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: readline init failed (%v), using basic input\n", err)
		return newScannerLineEditor(os.Stdin, os.Stdout)
	}

	return &LineEditor{
		interactive: true,
		rl:          rl,
	}
}

// newScannerLineEditor creates a non-interactive editor reading from r and
// writing prompts to w.
func newScannerLineEditor(r io.Reader, w io.Writer) *LineEditor {
	return &LineEditor{
		scanner: bufio.NewScanner(r),
		out:     w,
	}
}

// historyPath resolves the history file, defaulting to ~/.mcsh_history.
// An empty result disables persistent history.
func historyPath(cfg config.REPLConfig) string {
	if cfg.HistoryFile != "" {
		return cfg.HistoryFile
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, historyFileName)
}

// GetLine displays prompt and reads one line of input. It returns io.EOF on
// Ctrl-D, Ctrl-C or the end of piped input.
func (le *LineEditor) GetLine(prompt string) (string, error) {
	if le.interactive {
		return le.getInteractiveLine(prompt)
	}
	return le.getNonInteractiveLine(prompt)
}

func (le *LineEditor) getInteractiveLine(prompt string) (string, error) {
	le.rl.SetPrompt(prompt)

	line, err := le.rl.Readline()
	if err != nil {
		if errors.Is(err, readline.ErrInterrupt) {
			return "", io.EOF
		}
		return "", err
	}

	if trimmed := strings.TrimSpace(line); trimmed != "" {
		le.rl.SaveToHistory(trimmed)
	}
	return line, nil
}

func (le *LineEditor) getNonInteractiveLine(prompt string) (string, error) {
	fmt.Fprint(le.out, prompt)

	if !le.scanner.Scan() {
		if err := le.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return le.scanner.Text(), nil
}

// Close releases the terminal. It is safe to call more than once.
func (le *LineEditor) Close() {
	if le.rl != nil {
		le.rl.Close()
		le.rl = nil
	}
}

// IsInteractive reports whether readline is in use.
func (le *LineEditor) IsInteractive() bool {
	return le.interactive
}

package shell

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"
)

// LineReader is a source of input lines. *liner.State satisfies it.
type LineReader interface {
	Prompt(prompt string) (string, error)
	AppendHistory(item string)
}

// Run reads lines from in until EOF or ".exit". SQL text is buffered
// until a line contains ';', so statements may span lines. Ctrl-C
// discards the pending buffer.
func (s *Shell) Run(in LineReader) error {
	var pending strings.Builder

	for {
		prompt := Prompt
		if pending.Len() > 0 {
			prompt = ContinuationPrompt
		}

		line, err := in.Prompt(prompt)
		switch {
		case errors.Is(err, liner.ErrPromptAborted):
			pending.Reset()
			continue
		case errors.Is(err, io.EOF):
			fmt.Fprintln(s.out)
			return nil
		case err != nil:
			return fmt.Errorf("shell: read input: %w", err)
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" && pending.Len() == 0 {
			continue
		}
		in.AppendHistory(line)

		if pending.Len() == 0 && strings.HasPrefix(trimmed, ".") {
			err := s.ExecMeta(trimmed)
			if errors.Is(err, errExit) {
				return nil
			}
			if err != nil {
				return err
			}
			continue
		}

		if pending.Len() > 0 {
			pending.WriteByte('\n')
		}
		pending.WriteString(line)
		if !strings.Contains(line, ";") {
			continue
		}

		src := pending.String()
		pending.Reset()
		if err := s.ExecSQL(src); err != nil {
			s.log.Debug("statement failed", "error", err)
		}
	}
}

// RunTerminal runs the shell on the process terminal with line editing,
// loading history from historyFile and writing it back on exit.
func (s *Shell) RunTerminal(historyFile string) error {
	state := liner.NewLiner()
	defer state.Close()
	state.SetCtrlCAborts(true)

	if err := loadHistory(state, historyFile); err != nil {
		s.log.Warn("could not read history", "file", historyFile, "error", err)
	}

	runErr := s.Run(state)

	if err := saveHistory(state, historyFile); err != nil {
		s.log.Warn("could not write history", "file", historyFile, "error", err)
	}
	return runErr
}

// historyStore is the part of *liner.State that persists history.
type historyStore interface {
	ReadHistory(r io.Reader) (int, error)
	WriteHistory(w io.Writer) (int, error)
}

func loadHistory(h historyStore, path string) error {
	if path == "" {
		return nil
	}
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	defer f.Close()
	_, err = h.ReadHistory(f)
	return err
}

func saveHistory(h historyStore, path string) error {
	if path == "" {
		return nil
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := h.WriteHistory(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

package viewer

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/blacktop/asmview/internal/log"
	"github.com/blacktop/asmview/internal/syntax"
)

// documentMsg carries the result of a highlighting pass back to the model.
// doc may be non-nil even when err is set: a missing grammar yields an
// unhighlighted fallback document alongside the error.
type documentMsg struct {
	doc *syntax.Document
	err error
}

// fileChangedMsg signals that the watched source file changed on disk.
type fileChangedMsg struct{}

// loadCmd reads the source and runs a full highlighting pass off the
// update loop.
func (m Model) loadCmd() tea.Cmd {
	return func() tea.Msg {
		src, err := m.readSource()
		if err != nil {
			log.ErrorErr(log.CatUI, "reading source failed", err, "path", m.path)
			return documentMsg{err: err}
		}
		doc, err := m.registry.Highlight(m.grammarID, src)
		return documentMsg{doc: doc, err: err}
	}
}

// readSource returns the current source text, from disk when a path is set
// or from the in-memory source otherwise.
func (m Model) readSource() (string, error) {
	if m.path == "" {
		return string(m.source), nil
	}
	data, err := os.ReadFile(m.path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// listenChanges waits for the next change notification from the watcher.
// Returns nil when no watcher channel is wired (in-memory source).
func (m Model) listenChanges() tea.Cmd {
	if m.changes == nil {
		return nil
	}
	ch := m.changes
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return fileChangedMsg{}
	}
}

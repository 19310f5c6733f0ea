package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rg089/plotex/pkg/sizing"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m PublisherListModel, keys ...string) (PublisherListModel, tea.Cmd) {
	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = m.Update(key(k))
		m = next.(PublisherListModel)
	}
	return m, cmd
}

func TestPublisherListModel(t *testing.T) {
	pubs := sizing.Publishers()
	if len(pubs) < 2 {
		t.Skip("need at least two publishers")
	}

	m := NewPublisherListModel(pubs[1], 0)
	if m.Cursor != 1 || m.Fraction != 1 {
		t.Fatalf("initial cursor %d, fraction %g", m.Cursor, m.Fraction)
	}

	m, _ = press(m, "up", "up", "k")
	if m.Cursor != 0 {
		t.Errorf("cursor should stop at 0, got %d", m.Cursor)
	}
	m, _ = press(m, "down")
	if m.Cursor != 1 {
		t.Errorf("cursor after down = %d", m.Cursor)
	}
	for i := 0; i < len(pubs)+2; i++ {
		m, _ = press(m, "j")
	}
	if m.Cursor != len(pubs)-1 {
		t.Errorf("cursor should stop at the last publisher, got %d", m.Cursor)
	}

	m, cmd := press(m, "enter")
	if m.Selected != pubs[len(pubs)-1] {
		t.Errorf("Selected = %q", m.Selected)
	}
	if cmd == nil {
		t.Error("enter should quit")
	}
}

func TestPublisherListModelQuit(t *testing.T) {
	m, cmd := press(NewPublisherListModel("unknown", 0.5), "q")
	if m.Selected != "" || cmd == nil {
		t.Errorf("q should quit without a selection, got %q", m.Selected)
	}
	if m.Cursor != 0 {
		t.Errorf("unknown current publisher should start at 0, got %d", m.Cursor)
	}
}

func TestPublisherListView(t *testing.T) {
	view := NewPublisherListModel(sizing.DefaultPublisher, 1).View()
	for _, name := range sizing.Publishers() {
		if !strings.Contains(view, name) {
			t.Errorf("view missing %s:\n%s", name, view)
		}
	}
	if !strings.Contains(view, "455.2pt") {
		t.Errorf("view should show the acl width:\n%s", view)
	}
}

package cli

import (
	"fmt"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rg089/plotex/pkg/sizing"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// PublisherListModel - Interactive publisher selection
// =============================================================================

// PublisherListModel is the bubbletea model for interactive publisher selection.
type PublisherListModel struct {
	Publishers []string
	Cursor     int
	Selected   string
	Fraction   float64
}

// NewPublisherListModel creates a publisher list with the cursor on current.
// The fraction is used to preview the resulting figure width.
func NewPublisherListModel(current string, fraction float64) PublisherListModel {
	pubs := sizing.Publishers()
	cursor := max(slices.Index(pubs, current), 0)
	if fraction <= 0 {
		fraction = 1
	}
	return PublisherListModel{Publishers: pubs, Cursor: cursor, Fraction: fraction}
}

func (m PublisherListModel) Init() tea.Cmd {
	return nil
}

func (m PublisherListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "down", "j":
			if m.Cursor < len(m.Publishers)-1 {
				m.Cursor++
			}
		case "enter":
			m.Selected = m.Publishers[m.Cursor]
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m PublisherListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Publisher"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	for i, name := range m.Publishers {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		pts, _ := sizing.PublisherWidth(name)
		inches := pts / sizing.PointsPerInch * m.Fraction
		line := fmt.Sprintf("%s%-10s %s", cursor, name,
			listDimStyle.Render(fmt.Sprintf("%.1fpt  %.2f × %.2f in", pts, inches, inches*sizing.GoldenRatio)))

		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// pickPublisher runs the publisher picker. It returns "" when the user quits
// without choosing.
func pickPublisher(current string, fraction float64) (string, error) {
	final, err := tea.NewProgram(NewPublisherListModel(current, fraction)).Run()
	if err != nil {
		return "", err
	}
	return final.(PublisherListModel).Selected, nil
}

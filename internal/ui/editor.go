// Package ui hosts the interactive expression editor: a Bubble Tea text
// input wired to the autocomplete controller. All completion logic lives in
// internal/completion; this package only translates key events into
// controller transitions and renders the resulting state.
package ui

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/mattn/go-runewidth"

	"github.com/ledgewood/auditexpr/internal/completion"
)

// maxVisibleSuggestions caps the dropdown height.
const maxVisibleSuggestions = 8

// Editor is the Bubble Tea model for the expression editor.
type Editor struct {
	input   textinput.Model
	ctrl    *completion.Controller
	state   completion.EditorState
	width   int
	noColor bool

	submitted bool
	cancelled bool
	result    string
}

// NewEditor builds an editor over the given controller, seeded with an
// initial expression.
func NewEditor(ctrl *completion.Controller, initial string) *Editor {
	ti := textinput.New()
	ti.Placeholder = `verb == "delete" && objectRef.namespace == "prod"`
	ti.CharLimit = 500
	ti.SetWidth(80)
	ti.Prompt = "❯ "
	ti.SetValue(initial)
	ti.SetCursor(len(initial))
	ti.Focus()

	return &Editor{
		input: ti,
		ctrl:  ctrl,
		state: ctrl.Initial(initial, len(initial)),
		width: 80,
	}
}

// SetNoColor disables dropdown styling.
func (e *Editor) SetNoColor(noColor bool) {
	e.noColor = noColor
}

// Submitted reports whether the user accepted the expression with Enter.
func (e *Editor) Submitted() bool { return e.submitted }

// Cancelled reports whether the user left with Esc or Ctrl+C.
func (e *Editor) Cancelled() bool { return e.cancelled }

// Result returns the final expression after submission.
func (e *Editor) Result() string { return e.result }

// Init starts the cursor blink.
func (e *Editor) Init() tea.Cmd {
	return textinput.Blink
}

// Update routes key events: popup navigation keys go to the controller,
// everything else edits the text and triggers a recompute.
func (e *Editor) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		e.width = msg.Width
		e.input.SetWidth(msg.Width - 4)
		return e, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			e.cancelled = true
			return e, tea.Quit

		case "esc":
			if e.state.Open {
				e.state = e.ctrl.Dismiss(e.state)
				return e, nil
			}
			e.cancelled = true
			return e, tea.Quit

		case "enter":
			if e.state.Open && len(e.state.Suggestions) > 0 {
				e.acceptSelected()
				return e, nil
			}
			e.submitted = true
			e.result = strings.TrimSpace(e.input.Value())
			return e, tea.Quit

		case "tab":
			if e.state.Open && len(e.state.Suggestions) > 0 {
				e.acceptSelected()
			}
			return e, nil

		case "down":
			e.state = e.ctrl.MoveDown(e.state)
			return e, nil

		case "up":
			e.state = e.ctrl.MoveUp(e.state)
			return e, nil

		case "ctrl+space", "ctrl+@":
			e.state = e.ctrl.ForceTrigger(e.state)
			return e, nil

		case "ctrl+u":
			e.input.SetValue("")
			e.input.SetCursor(0)
			e.state = e.ctrl.TextChanged(e.state, "", 0)
			return e, nil
		}
	}

	var cmd tea.Cmd
	e.input, cmd = e.input.Update(msg)
	e.state = e.ctrl.TextChanged(e.state, e.input.Value(), e.input.Position())
	return e, cmd
}

// acceptSelected applies the controller's accepted insertion back into the
// text input so widget and engine agree on text and cursor.
func (e *Editor) acceptSelected() {
	e.state = e.ctrl.Accept(e.state)
	e.input.SetValue(e.state.Text)
	e.input.SetCursor(e.state.Cursor)
}

// View renders the input line and, when open, the suggestion dropdown.
func (e *Editor) View() tea.View {
	var b strings.Builder
	b.WriteString(e.input.View())
	b.WriteString("\n")

	if e.state.Open && len(e.state.Suggestions) > 0 {
		b.WriteString(e.renderDropdown())
	} else {
		b.WriteString(e.renderHint())
	}

	return tea.NewView(b.String())
}

func (e *Editor) renderDropdown() string {
	total := len(e.state.Suggestions)
	visible := total
	if visible > maxVisibleSuggestions {
		visible = maxVisibleSuggestions
	}

	// Keep the selected row inside the window.
	start := 0
	if e.state.Selected >= visible {
		start = e.state.Selected - visible + 1
	}

	textWidth := 0
	for _, s := range e.state.Suggestions {
		if w := runewidth.StringWidth(displayText(s)); w > textWidth {
			textWidth = w
		}
	}

	selStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	var b strings.Builder
	for i := start; i < start+visible; i++ {
		s := e.state.Suggestions[i]
		prefix := "  "
		if i == e.state.Selected {
			prefix = "❯ "
		}

		line := prefix + runewidth.FillRight(displayText(s), textWidth)
		desc := "  " + s.Description + " (" + s.Kind.String() + ")"

		if e.noColor {
			b.WriteString(line + desc)
		} else if i == e.state.Selected {
			b.WriteString(selStyle.Render(line) + dimStyle.Render(desc))
		} else {
			b.WriteString(line + dimStyle.Render(desc))
		}
		b.WriteString("\n")
	}

	if total > visible {
		b.WriteString(dimStyle.Render("  …"))
		b.WriteString("\n")
	}
	return b.String()
}

func (e *Editor) renderHint() string {
	hint := "enter: submit · esc: quit · ctrl+space: suggest"
	if e.noColor {
		return hint + "\n"
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Render(hint) + "\n"
}

// displayText trims the padding spaces connectors carry so the dropdown
// reads cleanly; the inserted text keeps them.
func displayText(s completion.Suggestion) string {
	return strings.TrimSpace(s.Text)
}

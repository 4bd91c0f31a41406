package completion

import (
	"strings"
)

// EditorState is the full autocomplete state for one input widget. It is a
// value: every transition returns a new state and never mutates the receiver,
// so hosts and tests can assert on pure input/output pairs.
type EditorState struct {
	Text        string
	Cursor      int
	Suggestions []Suggestion
	Selected    int
	Open        bool
}

// Controller drives the popup state machine for one input. The zero states
// are Closed; the machine re-enters Closed whenever a recomputation yields no
// suggestions.
type Controller struct {
	engine *Engine

	// minTrigger suppresses recomputation on ordinary text changes until
	// the trimmed text reaches this length. ForceTrigger ignores it.
	minTrigger int
}

// ControllerOption configures a Controller.
type ControllerOption func(*Controller)

// WithMinTrigger sets the minimum text length before text changes open the
// popup on their own.
func WithMinTrigger(n int) ControllerOption {
	return func(c *Controller) {
		c.minTrigger = n
	}
}

// NewController builds a controller over the given engine.
func NewController(engine *Engine, opts ...ControllerOption) *Controller {
	c := &Controller{engine: engine}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Initial returns the Closed state for the given text and cursor.
func (c *Controller) Initial(text string, cursor int) EditorState {
	return EditorState{Text: text, Cursor: clampCursor(text, cursor)}
}

// TextChanged records the new text and cursor and recomputes suggestions.
// A non-empty result opens the popup with the first entry selected; an empty
// result closes it.
func (c *Controller) TextChanged(st EditorState, text string, cursor int) EditorState {
	st.Text = text
	st.Cursor = clampCursor(text, cursor)
	if c.minTrigger > 0 && len(strings.TrimSpace(text)) < c.minTrigger {
		return closed(st)
	}
	return c.recompute(st)
}

// ForceTrigger recomputes suggestions at the current position regardless of
// the minimum-length heuristic.
func (c *Controller) ForceTrigger(st EditorState) EditorState {
	return c.recompute(st)
}

// MoveDown advances the selection, clamping at the last entry.
func (c *Controller) MoveDown(st EditorState) EditorState {
	if !st.Open || len(st.Suggestions) == 0 {
		return st
	}
	if st.Selected < len(st.Suggestions)-1 {
		st.Selected++
	}
	return st
}

// MoveUp retreats the selection, clamping at the first entry.
func (c *Controller) MoveUp(st EditorState) EditorState {
	if !st.Open || len(st.Suggestions) == 0 {
		return st
	}
	if st.Selected > 0 {
		st.Selected--
	}
	return st
}

// Accept applies the selected suggestion and closes the popup. The returned
// state carries the new text and cursor for the host widget. When the popup
// is closed or empty the state is returned unchanged.
func (c *Controller) Accept(st EditorState) EditorState {
	if !st.Open || len(st.Suggestions) == 0 {
		return st
	}
	sel := st.Selected
	if sel < 0 || sel >= len(st.Suggestions) {
		sel = 0
	}
	ins := Insert(st.Suggestions[sel], st.Text, st.Cursor)
	st.Text = ins.NewText
	st.Cursor = ins.NewCursor
	return closed(st)
}

// Dismiss closes the popup, discarding suggestions and leaving the text and
// cursor untouched. Used for Escape, blur, and click-outside.
func (c *Controller) Dismiss(st EditorState) EditorState {
	return closed(st)
}

func (c *Controller) recompute(st EditorState) EditorState {
	suggestions := c.engine.Generate(st.Text, st.Cursor)
	if len(suggestions) == 0 {
		return closed(st)
	}
	st.Suggestions = suggestions
	st.Selected = 0
	st.Open = true
	return st
}

func closed(st EditorState) EditorState {
	st.Suggestions = nil
	st.Selected = 0
	st.Open = false
	return st
}

func clampCursor(text string, cursor int) int {
	if cursor < 0 {
		return 0
	}
	if cursor > len(text) {
		return len(text)
	}
	return cursor
}

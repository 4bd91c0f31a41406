package completion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInsert(t *testing.T) {
	tests := []struct {
		name       string
		suggestion Suggestion
		text       string
		cursor     int
		wantText   string
		wantCursor int
	}{
		{
			name:       "connector_after_quoted_value",
			suggestion: Suggestion{Text: " && ", Kind: KindLogical},
			text:       `verb == "get"`,
			cursor:     13,
			wantText:   `verb == "get" && `,
			wantCursor: 17,
		},
		{
			name:       "field_replaces_partial_token",
			suggestion: Suggestion{Text: "verb", Kind: KindField},
			text:       "ve",
			cursor:     2,
			wantText:   "verb",
			wantCursor: 4,
		},
		{
			name:       "field_replaces_partial_token_in_second_clause",
			suggestion: Suggestion{Text: "stage", Kind: KindField},
			text:       `verb == "get" && st`,
			cursor:     19,
			wantText:   `verb == "get" && stage`,
			wantCursor: 22,
		},
		{
			name:       "operator_after_field",
			suggestion: Suggestion{Text: "== ", Kind: KindOperator},
			text:       "verb ",
			cursor:     5,
			wantText:   "verb == ",
			wantCursor: 8,
		},
		{
			name:       "value_after_operator_keeps_operator",
			suggestion: Suggestion{Text: `"get"`, Kind: KindValue},
			text:       "verb == ",
			cursor:     8,
			wantText:   `verb == "get"`,
			wantCursor: 13,
		},
		{
			name:       "function_after_dot_inserts_opening_token_only",
			suggestion: Suggestion{Text: ".contains(", Kind: KindFunction},
			text:       "objectRef.name.",
			cursor:     15,
			wantText:   "objectRef.name.contains(",
			wantCursor: 24,
		},
		{
			name:       "insertion_preserves_text_after_cursor",
			suggestion: Suggestion{Text: "verb", Kind: KindField},
			text:       `ve && stage == "Panic"`,
			cursor:     2,
			wantText:   `verb && stage == "Panic"`,
			wantCursor: 4,
		},
		{
			name:       "empty_text",
			suggestion: Suggestion{Text: "verb", Kind: KindField},
			text:       "",
			cursor:     0,
			wantText:   "verb",
			wantCursor: 4,
		},
		{
			name:       "cursor_beyond_end_clamps",
			suggestion: Suggestion{Text: "verb", Kind: KindField},
			text:       "ve",
			cursor:     50,
			wantText:   "verb",
			wantCursor: 4,
		},
		{
			name:       "negative_cursor_clamps",
			suggestion: Suggestion{Text: "verb", Kind: KindField},
			text:       "stage",
			cursor:     -3,
			wantText:   "verbstage",
			wantCursor: 4,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Insert(tt.suggestion, tt.text, tt.cursor)
			assert.Equal(t, tt.wantText, got.NewText)
			assert.Equal(t, tt.wantCursor, got.NewCursor)
		})
	}
}

func TestInsert_isPure(t *testing.T) {
	s := Suggestion{Text: " && ", Kind: KindLogical}
	text := `verb == "get"`

	first := Insert(s, text, 13)
	second := Insert(s, text, 13)
	assert.Equal(t, first, second)
}

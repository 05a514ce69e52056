package tui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/notepad/internal/model"
	"github.com/idilsaglam/notepad/internal/notepad"
	"github.com/idilsaglam/notepad/internal/store/memkv"
)

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
)

func newTestModel(t *testing.T) (Model, *notepad.Notepad) {
	t.Helper()
	np := notepad.Open(context.Background(), memkv.New())
	m := New(context.Background(), np, nil)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return next.(Model), np
}

// send feeds msgs through Update in order.
func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m
}

func TestNewNoteIsSelected(t *testing.T) {
	m, np := newTestModel(t)

	m = send(t, m, runes("n"), runes("n"))

	require.Equal(t, 2, np.Len())
	cur, ok := np.Current()
	require.True(t, ok)
	assert.Equal(t, "Untitled 2", cur.Name)
	assert.Equal(t, 1, m.list.Index())
	assert.Len(t, m.list.Items(), 2)
}

func TestEditWritesThrough(t *testing.T) {
	m, np := newTestModel(t)

	m = send(t, m, runes("n"), runes("e"), runes("h"), runes("i"))
	assert.Equal(t, focusEditor, m.focus)

	cur, _ := np.Current()
	assert.Equal(t, "hi", cur.Content)

	// typing "n" while editing is text, not a new note
	m = send(t, m, runes("n"), keyEsc)
	assert.Equal(t, focusList, m.focus)
	assert.Equal(t, 1, np.Len())
	cur, _ = np.Current()
	assert.Equal(t, "hin", cur.Content)
}

func TestEditWithoutNoteIsIgnored(t *testing.T) {
	m, _ := newTestModel(t)

	m = send(t, m, runes("e"))
	assert.Equal(t, focusList, m.focus)
	assert.Contains(t, m.View(), "No note selected")
}

func TestRename(t *testing.T) {
	m, np := newTestModel(t)
	m = send(t, m, runes("n"), runes("r"))
	require.Equal(t, focusRename, m.focus)
	assert.Equal(t, "Untitled 1", m.ti.Value())

	// clear the prefilled name then type a new one
	for range "Untitled 1" {
		m = send(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	}
	m = send(t, m, runes("Groceries"), keyEnter)

	assert.Equal(t, focusList, m.focus)
	cur, _ := np.Current()
	assert.Equal(t, "Groceries", cur.Name)
}

func TestRenameIsBounded(t *testing.T) {
	m, np := newTestModel(t)
	m = send(t, m, runes("n"), runes("r"), runes(strings.Repeat("x", 50)), keyEnter)

	cur, _ := np.Current()
	assert.LessOrEqual(t, len([]rune(cur.Name)), model.MaxNameLen)
}

func TestRenameCancel(t *testing.T) {
	m, np := newTestModel(t)
	m = send(t, m, runes("n"), runes("r"), runes("zzz"), keyEsc)

	assert.Equal(t, focusList, m.focus)
	cur, _ := np.Current()
	assert.Equal(t, "Untitled 1", cur.Name)
}

func TestDeleteFallsBackToFirst(t *testing.T) {
	m, np := newTestModel(t)
	m = send(t, m, runes("n"), runes("n"), runes("n"))
	first := np.Notes()[0]

	m = send(t, m, runes("d"))

	require.Equal(t, 2, np.Len())
	cur, _ := np.Current()
	assert.Equal(t, first.ID, cur.ID)
	assert.Equal(t, 0, m.list.Index())

	m = send(t, m, runes("d"), runes("d"))
	assert.Equal(t, 0, np.Len())
	assert.Contains(t, m.View(), "Last saved: Never")
}

func TestCursorMovesSelection(t *testing.T) {
	m, np := newTestModel(t)
	m = send(t, m, runes("n"), runes("n"))
	notes := np.Notes()
	np.Select(notes[0].ID)
	m.refresh()

	send(t, m, keyDown)

	cur, _ := np.Current()
	assert.Equal(t, notes[1].ID, cur.ID)
}

func TestFontSizeKeys(t *testing.T) {
	m, np := newTestModel(t)

	m = send(t, m, runes("+"), runes("+"), runes("="))
	assert.Equal(t, model.DefaultFontSize+3, np.FontSize())

	for i := 0; i < 100; i++ {
		m = send(t, m, runes("-"))
	}
	assert.Equal(t, model.MinFontSize, np.FontSize())
	assert.Contains(t, m.View(), "Text size:")
	assert.Contains(t, m.View(), "10px")
}

func TestQuit(t *testing.T) {
	m, _ := newTestModel(t)

	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestCtrlCQuitsFromAnyFocus(t *testing.T) {
	ctrlC := tea.KeyMsg{Type: tea.KeyCtrlC}

	tests := []struct {
		name  string
		enter []tea.Msg
	}{
		{"list", nil},
		{"editor", []tea.Msg{runes("n"), runes("e")}},
		{"rename", []tea.Msg{runes("n"), runes("r")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, np := newTestModel(t)
			m = send(t, m, tt.enter...)

			_, cmd := m.Update(ctrlC)
			require.NotNil(t, cmd)
			assert.IsType(t, tea.QuitMsg{}, cmd())
			if cur, ok := np.Current(); ok {
				assert.Empty(t, cur.Content)
			}
		})
	}
}

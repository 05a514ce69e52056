// Package tui is the interactive notepad: a note list on the left, the selected
// note's text on the right, and the text size and last-saved time underneath.
package tui

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/idilsaglam/notepad/internal/model"
	"github.com/idilsaglam/notepad/internal/notepad"
	"github.com/idilsaglam/notepad/internal/ui"
)

const (
	listWidth      = 34
	savedLayout    = "Jan 2 15:04:05"
	fallbackWidth  = 80
	fallbackHeight = 24
)

// noteItem adapts model.Note to bubbles/list.Item
type noteItem struct {
	note model.Note
}

func (i noteItem) Title() string       { return i.note.Name }
func (i noteItem) Description() string { return lastSaved(i.note) }
func (i noteItem) FilterValue() string { return i.note.Name }

// Single-line rows, "> " marks the cursor.
type itemDelegate struct{}

func (d itemDelegate) Height() int                         { return 1 }
func (d itemDelegate) Spacing() int                        { return 0 }
func (d itemDelegate) Update(tea.Msg, *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(noteItem)
	if !ok {
		return
	}
	name := it.note.Name
	if strings.TrimSpace(name) == "" {
		name = mutedStyle.Render("(no name)")
	}
	prefix := "  "
	if index == m.Index() {
		prefix = selectedStyle.Render("> ")
	}
	fmt.Fprint(w, prefix+name)
}

type focus int

const (
	focusList focus = iota
	focusEditor
	focusRename
)

// Model is the Bubble Tea model. Every intent goes straight to the Notepad,
// which persists it; nothing is held back until quit.
type Model struct {
	ctx  context.Context
	np   *notepad.Notepad
	log  *zap.Logger
	keys keyMap

	list   list.Model
	editor textarea.Model
	ti     textinput.Model
	focus  focus

	width, height int
}

// New builds the model over np.
func New(ctx context.Context, np *notepad.Notepad, log *zap.Logger) Model {
	if log == nil {
		log = zap.NewNop()
	}
	keys := defaultKeys()

	l := list.New(nil, itemDelegate{}, listWidth, fallbackHeight-6)
	l.Title = "Notes"
	l.SetShowHelp(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()
	l.Styles.Title = titleStyle
	l.Styles.HelpStyle = helpStyle
	l.SetStatusBarItemName("note", "notes")
	l.AdditionalShortHelpKeys = keys.listHelp
	l.AdditionalFullHelpKeys = keys.listHelp

	ed := textarea.New()
	ed.Placeholder = "Start typing your notes here..."
	ed.ShowLineNumbers = false
	ed.CharLimit = 0
	ed.MaxHeight = 0

	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Enter note name"
	ti.CharLimit = model.MaxNameLen

	m := Model{
		ctx:    ctx,
		np:     np,
		log:    log,
		keys:   keys,
		list:   l,
		editor: ed,
		ti:     ti,
		width:  fallbackWidth,
		height: fallbackHeight,
	}
	m.layout()
	m.refresh()
	return m
}

// Run starts the program on the alternate screen and blocks until the user quits.
// It returns the last persistence failure, if any.
func Run(ctx context.Context, np *notepad.Notepad, log *zap.Logger) error {
	p := tea.NewProgram(New(ctx, np, log), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return err
	}
	return np.Err()
}

// refresh rebuilds the list from the notepad, puts the cursor on the selection
// and loads the selected note into the editor.
func (m *Model) refresh() {
	notes := m.np.Notes()
	items := make([]list.Item, 0, len(notes))
	sel, _ := m.np.Selected()
	cursor := 0
	for i, n := range notes {
		items = append(items, noteItem{note: n})
		if n.ID == sel {
			cursor = i
		}
	}
	m.list.SetItems(items)
	m.list.Select(cursor)
	m.loadEditor()
}

func (m *Model) loadEditor() {
	cur, ok := m.np.Current()
	if !ok {
		m.editor.SetValue("")
		return
	}
	if m.editor.Value() != cur.Content {
		m.editor.SetValue(cur.Content)
	}
}

// syncSelection selects whatever the list cursor is on.
func (m *Model) syncSelection() {
	it, ok := m.list.SelectedItem().(noteItem)
	if !ok {
		return
	}
	if sel, _ := m.np.Selected(); sel != it.note.ID {
		m.np.Select(it.note.ID)
		m.loadEditor()
	}
}

func (m *Model) layout() {
	m.list.SetSize(listWidth, max(m.height-6, 3))
	m.editor.SetWidth(max(m.width-listWidth-8, 10))
	m.editor.SetHeight(max(m.height-6, 3))
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.width, m.height = ws.Width, ws.Height
		m.layout()
		return m, nil
	}
	if km, ok := msg.(tea.KeyMsg); ok && key.Matches(km, m.keys.Interrupt) {
		return m, tea.Quit
	}

	switch m.focus {
	case focusRename:
		return m.updateRename(msg)
	case focusEditor:
		return m.updateEditor(msg)
	}
	return m.updateList(msg)
}

func (m Model) updateRename(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(km, m.keys.Confirm):
			if cur, ok := m.np.Current(); ok {
				m.np.Rename(m.ctx, cur.ID, model.BoundName(m.ti.Value()))
			}
			m.endRename()
			m.refresh()
			return m, nil
		case key.Matches(km, m.keys.Back):
			m.endRename()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}

func (m *Model) endRename() {
	m.ti.SetValue("")
	m.ti.Blur()
	m.focus = focusList
}

func (m Model) updateEditor(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok && key.Matches(km, m.keys.Back) {
		m.editor.Blur()
		m.focus = focusList
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	if cur, ok := m.np.Current(); ok && m.editor.Value() != cur.Content {
		m.np.SetContent(m.ctx, cur.ID, m.editor.Value())
	}
	return m, cmd
}

func (m Model) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(km, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(km, m.keys.New):
			m.np.Create(m.ctx)
			m.refresh()
			return m, nil
		case key.Matches(km, m.keys.Edit):
			if _, ok := m.np.Current(); !ok {
				return m, nil
			}
			m.focus = focusEditor
			cmd := m.editor.Focus()
			return m, cmd
		case key.Matches(km, m.keys.Rename):
			cur, ok := m.np.Current()
			if !ok {
				return m, nil
			}
			m.focus = focusRename
			m.ti.SetValue(cur.Name)
			m.ti.CursorEnd()
			cmd := m.ti.Focus()
			return m, cmd
		case key.Matches(km, m.keys.Delete):
			if cur, ok := m.np.Current(); ok {
				m.np.Delete(m.ctx, cur.ID)
				m.refresh()
			}
			return m, nil
		case key.Matches(km, m.keys.Bigger):
			m.np.SetFontSize(m.ctx, m.np.FontSize()+1)
			return m, nil
		case key.Matches(km, m.keys.Smaller):
			m.np.SetFontSize(m.ctx, m.np.FontSize()-1)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	m.syncSelection()
	return m, cmd
}

func (m Model) View() string {
	listPane, editorPane := paneStyle, paneStyle
	if m.focus == focusEditor {
		editorPane = focusedPaneStyle
	} else {
		listPane = focusedPaneStyle
	}

	right := mutedStyle.Render("No note selected. Press n to create one.")
	if _, ok := m.np.Current(); ok {
		right = m.editor.View()
	}
	content := lipgloss.JoinHorizontal(lipgloss.Top,
		listPane.Render(m.list.View()),
		editorPane.Render(right),
	)

	if m.focus == focusRename {
		bar := paneStyle.Render(accentStyle.Render("Rename note") + "\n" + m.ti.View())
		content += "\n" + bar
	}
	return content + "\n" + m.statusLine()
}

func (m Model) statusLine() string {
	size := m.np.FontSize()
	saved := "Never"
	if cur, ok := m.np.Current(); ok {
		saved = lastSaved(cur)
	}
	line := fmt.Sprintf("Text size: %s %dpx   Last saved: %s",
		ui.Gauge(size, model.MinFontSize, model.MaxFontSize, 20), size, saved)
	if err := m.np.Err(); err != nil {
		line += "   " + errorStyle.Render("not saved: "+err.Error())
	}
	return helpStyle.Render(line)
}

func lastSaved(n model.Note) string {
	if n.LastModified.IsZero() {
		return "Never"
	}
	return n.LastModified.In(time.Local).Format(savedLayout)
}

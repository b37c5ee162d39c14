package ui

import (
	"fmt"
	"log"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"todolist/internal/config"
	"todolist/internal/list"
)

type mode int

const (
	modeList mode = iota
	modeAdd
	modeDrag
)

// Screen rows above the first item: title, blank, input, blank.
const (
	inputRow = 2
	listTop  = 4
)

const (
	handleGlyph   = "⠿"
	deleteGlyph   = "✕"
	addButton     = "[+]"
	boxUnchecked  = "[ ]"
	boxChecked    = "[x]"
	deleteSpacing = 2
	ellipsis      = "…"
)

// dragState tracks a gesture between pick-up and drop. dest is an index into
// the list with the dragged item removed, which is also where the item sits
// in the preview.
type dragState struct {
	source int
	dest   int
	over   bool
	mouse  bool
}

type Model struct {
	editor     *list.Editor
	cfg        config.Config
	keys       keyMap
	help       help.Model
	styles     styles
	width      int
	cursor     int
	mode       mode
	input      textinput.Model
	status     string
	confirmDel bool
	pendingDel *list.Item
	drag       *dragState
}

func New(editor *list.Editor, cfg config.Config) Model {
	ti := textinput.New()
	ti.Placeholder = cfg.Placeholder
	ti.CharLimit = cfg.CharLimit
	ti.Width = 40
	ti.SetValue(editor.Draft())

	return Model{
		editor: editor,
		cfg:    cfg,
		keys:   newKeyMap(cfg.Keys),
		help:   help.New(),
		styles: newStyles(cfg.Theme),
		cursor: clampCursor(0, editor.Len()),
		mode:   modeList,
		input:  ti,
		status: fmt.Sprintf("Press '%s' to add, '%s' to move, '%s' to delete.", cfg.Keys.Add, cfg.Keys.Grab, cfg.Keys.Delete),
	}
}

func Run(editor *list.Editor, cfg config.Config, configPath string, firstLaunch bool) error {
	m := New(editor, cfg)
	if firstLaunch {
		m.status = "Wrote default config to " + configPath
	}
	program := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := program.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.confirmDel {
			return m.updateDeleteConfirm(msg.String())
		}
		switch m.mode {
		case modeAdd:
			return m.updateAddMode(msg)
		case modeDrag:
			return m.updateDragMode(msg)
		}
		return m.updateListMode(msg)
	case tea.MouseMsg:
		if m.confirmDel {
			return m, nil
		}
		return m.updateMouse(msg)
	case tea.WindowSizeMsg:
		if w := msg.Width - 10 - lipgloss.Width(addButton); w > 0 {
			m.input.Width = w
		}
		m.help.Width = msg.Width
		m.width = msg.Width
	}
	return m, nil
}

func (m Model) updateAddMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.String() == "ctrl+c":
		return m, tea.Quit
	case key.Matches(msg, m.keys.Cancel):
		m.mode = modeList
		m.input.Blur()
		m.status = ""
		return m, nil
	case key.Matches(msg, m.keys.Confirm):
		if m.commitDraft() {
			m.mode = modeList
			m.input.Blur()
		}
		return m, nil
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		m.editor.SetDraft(m.input.Value())
		return m, cmd
	}
}

// commitDraft adds the draft as a new item. A blank draft is ignored without
// touching the status line.
func (m *Model) commitDraft() bool {
	it, ok := m.editor.Add()
	if !ok {
		return false
	}
	log.Printf("add id=%s", it.ID)
	m.input.SetValue(m.editor.Draft())
	m.cursor = clampCursor(m.editor.Len()-1, m.editor.Len())
	m.status = "Added todo"
	return true
}

func (m Model) updateListMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Down):
		if m.editor.Len() == 0 {
			return m, nil
		}
		m.cursor = clampCursor(m.cursor+1, m.editor.Len())
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor = clampCursor(m.cursor-1, m.editor.Len())
		}
	case key.Matches(msg, m.keys.Add):
		m.mode = modeAdd
		m.status = "Type a todo and press " + m.cfg.Keys.Confirm
		return m, m.input.Focus()
	case key.Matches(msg, m.keys.Delete):
		if m.editor.Len() == 0 {
			return m, nil
		}
		m.requestDelete(m.editor.At(m.cursor))
	case key.Matches(msg, m.keys.Grab):
		if m.editor.Len() == 0 {
			return m, nil
		}
		m.startDrag(m.cursor, false)
	}
	return m, nil
}

// requestDelete deletes it, or asks first when confirm_delete is set.
func (m *Model) requestDelete(it list.Item) {
	if m.cfg.ConfirmDelete {
		m.confirmDel = true
		m.pendingDel = &it
		m.status = fmt.Sprintf("Delete \"%s\"? y/n", it.Text)
		return
	}
	m.deleteItem(it.ID)
}

func (m *Model) deleteItem(id string) {
	if m.editor.Delete(id) {
		log.Printf("delete id=%s", id)
		m.status = "Deleted todo"
	}
	m.cursor = clampCursor(m.cursor, m.editor.Len())
}

func (m Model) updateDeleteConfirm(k string) (tea.Model, tea.Cmd) {
	switch k {
	case "n", "N", m.cfg.Keys.Cancel:
		m.status = "Delete cancelled"
	case "y", "Y":
		if m.pendingDel != nil {
			m.deleteItem(m.pendingDel.ID)
		}
	default:
		return m, nil
	}
	m.confirmDel = false
	m.pendingDel = nil
	return m, nil
}

func (m *Model) startDrag(row int, mouse bool) {
	m.drag = &dragState{source: row, dest: row, over: true, mouse: mouse}
	m.cursor = row
	m.mode = modeDrag
	m.status = fmt.Sprintf("Moving \"%s\"", m.editor.At(row).Text)
}

func (m Model) updateDragMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.String() == "ctrl+c":
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		m.drag.dest = clampCursor(m.drag.dest-1, m.editor.Len())
		m.drag.over = true
	case key.Matches(msg, m.keys.Down):
		m.drag.dest = clampCursor(m.drag.dest+1, m.editor.Len())
		m.drag.over = true
	case key.Matches(msg, m.keys.Confirm), key.Matches(msg, m.keys.Grab):
		m.endDrag(true)
	case key.Matches(msg, m.keys.Cancel):
		m.endDrag(false)
	}
	return m, nil
}

// endDrag reports the gesture to the editor. A drop outside the rows or an
// explicit cancel carries no destination.
func (m *Model) endDrag(drop bool) {
	d := m.drag
	m.drag = nil
	m.mode = modeList
	if d == nil {
		return
	}
	res := list.DragResult{Source: list.Location{Index: d.source}}
	if drop && d.over {
		res.Destination = &list.Location{Index: d.dest}
	}
	m.editor.Reorder(res)
	if res.Destination == nil {
		m.cursor = clampCursor(d.source, m.editor.Len())
		m.status = "Move cancelled"
		return
	}
	log.Printf("reorder from=%d to=%d", d.source, d.dest)
	m.cursor = d.dest
	m.status = "Moved todo"
}

func (m Model) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	row, onRow := m.rowAt(msg.Y)

	switch msg.Action { //nolint:exhaustive
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if m.drag != nil {
			return m, nil
		}
		if msg.Y == inputRow {
			return m.pressInputRow(msg.X)
		}
		if !onRow {
			return m, nil
		}
		if m.mode == modeAdd {
			m.mode = modeList
			m.input.Blur()
		}
		if it := m.editor.At(row); m.onDelete(it, msg.X) {
			m.cursor = row
			m.requestDelete(it)
			return m, nil
		}
		m.startDrag(row, true)

	case tea.MouseActionMotion:
		if m.drag == nil || !m.drag.mouse {
			return m, nil
		}
		m.drag.over = onRow
		if onRow {
			m.drag.dest = row
		}

	case tea.MouseActionRelease:
		if m.drag == nil || !m.drag.mouse {
			return m, nil
		}
		m.drag.over = onRow
		if onRow {
			m.drag.dest = row
		}
		m.endDrag(true)
	}
	return m, nil
}

func (m Model) pressInputRow(x int) (tea.Model, tea.Cmd) {
	col := lipgloss.Width(m.input.View()) + 1
	if x >= col && x < col+lipgloss.Width(addButton) {
		if m.commitDraft() && m.mode == modeAdd {
			m.mode = modeList
			m.input.Blur()
		}
		return m, nil
	}
	if m.mode != modeAdd {
		m.mode = modeAdd
		m.status = "Type a todo and press " + m.cfg.Keys.Confirm
		return m, m.input.Focus()
	}
	return m, nil
}

// rowAt maps a screen line to a row index.
func (m Model) rowAt(y int) (int, bool) {
	i := y - listTop
	if i < 0 || i >= m.editor.Len() {
		return 0, false
	}
	return i, true
}

func (m Model) onDelete(it list.Item, x int) bool {
	col := m.deleteColumn(it)
	return x >= col && x < col+lipgloss.Width(deleteGlyph)
}

func rowPrefixWidth(it list.Item) int {
	box := boxUnchecked
	if it.Completed {
		box = boxChecked
	}
	return lipgloss.Width(fmt.Sprintf("> %s %s ", handleGlyph, box))
}

// label is the item text cut to fit the window so the delete control stays
// on screen. Before the first WindowSizeMsg the text is left whole.
func (m Model) label(it list.Item) string {
	if m.width <= 0 {
		return it.Text
	}
	room := m.width - rowPrefixWidth(it) - deleteSpacing - lipgloss.Width(deleteGlyph)
	if room < 1 {
		room = 1
	}
	return ansi.Truncate(it.Text, room, ellipsis)
}

// deleteColumn is the screen column of a row's delete control. It mirrors
// the layout produced by renderRow.
func (m Model) deleteColumn(it list.Item) int {
	return rowPrefixWidth(it) + lipgloss.Width(m.label(it)) + deleteSpacing
}

// rows returns the items in display order; during a drag the dragged item is
// shown at its drop position.
func (m Model) rows() []list.Item {
	items := m.editor.Items()
	if m.drag == nil || !m.drag.over {
		return items
	}
	it := items[m.drag.source]
	items = slices.Delete(items, m.drag.source, m.drag.source+1)
	return slices.Insert(items, m.drag.dest, it)
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render(m.cfg.Title))
	b.WriteString("\n\n")

	b.WriteString(m.styles.Input.Render(m.input.View()))
	b.WriteString(" ")
	b.WriteString(m.styles.AddBtn.Render(addButton))
	b.WriteString("\n\n")

	if m.editor.Len() == 0 {
		b.WriteString(m.styles.Empty.Render(fmt.Sprintf("No todos yet. Press '%s' to add one.", m.cfg.Keys.Add)))
		b.WriteString("\n")
	} else {
		b.WriteString(m.renderList())
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Status.Render(m.status))
	b.WriteString("\n")
	b.WriteString(m.help.View(modeHelp{keys: m.keys, mode: m.mode}))

	return b.String()
}

func (m Model) renderList() string {
	var b strings.Builder
	var dragID string
	if m.drag != nil {
		dragID = m.editor.At(m.drag.source).ID
	}
	for i, it := range m.rows() {
		selected := m.cursor == i && m.mode != modeAdd
		dragged := it.ID == dragID
		if m.drag != nil {
			selected = dragged
		}
		b.WriteString(m.renderRow(it, selected, dragged))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderRow(it list.Item, selected, dragged bool) string {
	marker := " "
	if selected {
		marker = ">"
	}
	box := m.styles.Box.Render(boxUnchecked)
	if it.Completed {
		box = m.styles.BoxDone.Render(boxChecked)
	}
	label := m.styles.Label
	if selected {
		label = m.styles.Selected
	}
	row := fmt.Sprintf("%s %s %s %s%s%s",
		marker,
		m.styles.Handle.Render(handleGlyph),
		box,
		label.Render(m.label(it)),
		strings.Repeat(" ", deleteSpacing),
		m.styles.Delete.Render(deleteGlyph),
	)
	if dragged {
		return m.styles.Dragged.Render(row)
	}
	return row
}

func clampCursor(cur, n int) int {
	if n <= 0 {
		return 0
	}
	if cur < 0 {
		return 0
	}
	if cur >= n {
		return n - 1
	}
	return cur
}

package tui

import (
	"fmt"
	"io"
	"os"
	"strings"
	"syscall"
	"unsafe"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aylinkr/todo/internal/manager"
	"github.com/aylinkr/todo/internal/model"
	"github.com/aylinkr/todo/internal/ui"
)

// listItem adapts model.Todo to bubbles/list.Item. The wrapped todo keeps
// its id through toggles and edits.
type listItem struct {
	todo model.Todo
}

func (i listItem) titleText() string {
	t := ui.Current()
	box := t.BoxUnchecked
	if i.todo.Done {
		box = t.BoxChecked
	}
	return fmt.Sprintf("%s %s", box, i.todo.Title)
}

// Implement list.Item interface
func (i listItem) Title() string       { return i.titleText() }
func (i listItem) Description() string { return "" }
func (i listItem) FilterValue() string { return i.todo.Title }

type screen struct {
	list    list.Model
	changed bool

	// Inline add
	adding bool            // true when inline add is active
	ti     textinput.Model // shared text input model (used for add & edit)
	addErr string          // last add validation error (shown briefly)

	// Inline edit
	editing   bool // true when inline edit is active
	editIndex int  // index of item being edited
	editErr   string

	// Undo support (single-level)
	canUndo   bool
	undoIndex int
	undoItem  *listItem
}

// Custom delegate to control how items render (single line)
type itemDelegate struct{}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	t := ui.Current()
	it, _ := item.(listItem)

	box := t.Muted.Render(t.BoxUnchecked)
	text := it.todo.Title
	if it.todo.Done {
		box = t.Success.Render(t.BoxChecked)
		text = t.Done.Render(text)
	}

	line := fmt.Sprintf("%s %s", box, text)
	prefix := "  "
	if index == m.Index() {
		prefix = t.Selected.Render("> ")
	}
	fmt.Fprintln(w, prefix+line)
}

// Run starts the Bubble Tea list and writes changes back through the
// manager when quitting.
func Run(mgr *manager.Manager) error {
	items := mgr.List()
	li := make([]list.Item, 0, len(items))
	for _, it := range items {
		li = append(li, listItem{todo: it})
	}

	t := ui.Current()
	l := list.New(li, itemDelegate{}, 0, 0)

	// Header title with live counts
	dn, pn := stats(items)
	l.Title = fmt.Sprintf("%s   %s %d  %s %d  %s %d",
		t.Title.Render("Todos"),
		t.Success.Render(t.SymOK), dn,
		t.Pending.Render("•"), pn,
		t.Accent.Render("Total"), len(items),
	)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = t.Title
	l.Styles.HelpStyle = t.Help
	l.Styles.PaginationStyle = t.Help
	l.FilterInput.Prompt = "/ "
	l.SetStatusBarItemName("item", "items")

	// Extend help with Add / Edit / Undo bindings
	addBind := key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add"))
	editBind := key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit"))
	undoBind := key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "undo"))
	l.AdditionalShortHelpKeys = func() []key.Binding { return []key.Binding{addBind, editBind, undoBind} }
	l.AdditionalFullHelpKeys = func() []key.Binding { return []key.Binding{addBind, editBind, undoBind} }

	s := screen{list: l}
	s.ti = textinput.New()
	s.ti.Prompt = "> "
	s.ti.Placeholder = "New item title..."
	s.ti.CharLimit = 200

	p := tea.NewProgram(s, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return err
	}
	fs, okModel := finalModel.(screen)
	if !okModel {
		return nil
	}

	// Write the list state back through the manager, which persists it.
	if fs.changed {
		out := make([]model.Todo, 0, len(fs.list.Items()))
		for _, it := range fs.list.Items() {
			if li, ok := it.(listItem); ok {
				out = append(out, li.todo)
			}
		}
		mgr.Replace(out)
		ui.OK("saved")
	}
	return nil
}

func (s screen) Init() tea.Cmd { return nil }

func (s screen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// add mode
	if s.adding {
		var cmd tea.Cmd
		switch x := msg.(type) {
		case tea.KeyMsg:
			switch x.String() {
			case "enter":
				title := strings.TrimSpace(s.ti.Value())
				if title == "" {
					s.addErr = "Title cannot be empty"
					return s, nil
				}
				s.list.InsertItem(s.list.Index()+1, listItem{todo: model.New(title)})
				s.changed = true
				s.ti.SetValue("")
				s.ti.Blur()
				s.adding = false
				return s, nil
			case "esc":
				s.adding = false
				s.ti.SetValue("")
				s.ti.Blur()
				return s, nil
			}
		}
		s.ti, cmd = s.ti.Update(msg)
		return s, cmd
	}

	// edit mode
	if s.editing {
		var cmd tea.Cmd
		switch x := msg.(type) {
		case tea.KeyMsg:
			switch x.String() {
			case "enter":
				title := strings.TrimSpace(s.ti.Value())
				if title == "" {
					s.editErr = "Title cannot be empty"
					return s, nil
				}
				if s.editIndex >= 0 && s.editIndex < len(s.list.Items()) {
					if li, ok := s.list.Items()[s.editIndex].(listItem); ok {
						li.todo.Title = title
						s.list.SetItem(s.editIndex, li)
						s.changed = true
					}
				}
				s.ti.SetValue("")
				s.ti.Blur()
				s.editing = false
				return s, nil
			case "esc":
				s.editing = false
				s.ti.SetValue("")
				s.ti.Blur()
				return s, nil
			}
		}
		s.ti, cmd = s.ti.Update(msg)
		return s, cmd
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc":
			return s, tea.Quit
		case " ":
			i := s.list.Index()
			if i >= 0 && i < len(s.list.Items()) {
				if li, ok := s.list.Items()[i].(listItem); ok {
					li.todo.Done = !li.todo.Done
					s.list.SetItem(i, li)
					s.changed = true
				}
			}
			return s, nil
		case "d":
			i := s.list.Index()
			if i >= 0 && i < len(s.list.Items()) {
				if li, ok := s.list.Items()[i].(listItem); ok {
					tmp := li
					s.undoItem = &tmp
					s.undoIndex = i
					s.canUndo = true
				}
				s.list.RemoveItem(i)
				s.changed = true
			}
			return s, nil
		case "a":
			s.adding = true
			s.ti.SetValue("")
			s.ti.Placeholder = "New item title..."
			s.ti.Focus()
			return s, nil
		case "e":
			i := s.list.Index()
			if i >= 0 && i < len(s.list.Items()) {
				if li, ok := s.list.Items()[i].(listItem); ok {
					s.editing = true
					s.editIndex = i
					s.ti.SetValue(li.todo.Title)
					s.ti.CursorEnd()
					s.ti.Placeholder = "Edit item title..."
					s.ti.Focus()
					return s, nil
				}
			}
			return s, nil
		case "u":
			if s.canUndo && s.undoItem != nil {
				idx := s.undoIndex
				if idx < 0 {
					idx = 0
				}
				if idx > len(s.list.Items()) {
					idx = len(s.list.Items())
				}
				s.list.InsertItem(idx, *s.undoItem)
				s.changed = true
				s.canUndo = false
				s.undoItem = nil
			}
			return s, nil
		}
	}
	var cmd tea.Cmd
	s.list, cmd = s.list.Update(msg)
	return s, cmd
}

func (s screen) View() string {
	w, h := widthHeight()
	listHeight := h - 4
	if s.adding || s.editing {
		listHeight = h - 6
	}
	s.list.SetSize(w-2, listHeight)

	t := ui.Current()
	content := s.list.View()
	if s.adding || s.editing {
		bar := lipgloss.NewStyle().Border(t.Border).BorderForeground(lipgloss.Color("8")).Padding(0, 1)
		title := "Add new item"
		if s.editing {
			title = "Edit item"
		}
		if s.addErr != "" && s.adding {
			title += " — " + t.Error.Render(s.addErr)
		}
		if s.editErr != "" && s.editing {
			title += " — " + t.Error.Render(s.editErr)
		}
		inputLine := title + "\n" + s.ti.View()
		content = content + "\n" + bar.Render(inputLine)
	}
	return ui.PanelString(content)
}

func widthHeight() (int, int) {
	w, h := 80, 24
	if tw, th, err := termSize(); err == nil {
		w, h = tw, th
	}
	return w, h
}

// portable terminal size
func termSize() (int, int, error) {
	fd := int(os.Stdout.Fd())
	type winsize struct {
		Row, Col, Xpixel, Ypixel uint16
	}
	ws := &winsize{}
	_, _, err := syscall.Syscall(syscall.SYS_IOCTL,
		uintptr(fd), uintptr(syscall.TIOCGWINSZ), uintptr(unsafe.Pointer(ws)))
	if err != 0 {
		return 0, 0, fmt.Errorf("ioctl: %v", err)
	}
	return int(ws.Col), int(ws.Row), nil
}

// small list stats used for the header
func stats(items []model.Todo) (done, pending int) {
	for _, it := range items {
		if it.Done {
			done++
		} else {
			pending++
		}
	}
	return
}

package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// csvItem is a pickable CSV file (implements list.Item).
type csvItem struct {
	name string
}

func (f csvItem) Title() string       { return f.name }
func (f csvItem) Description() string { return "" }
func (f csvItem) FilterValue() string { return f.name }

type csvItemDelegate struct{}

func (d csvItemDelegate) Height() int  { return 1 }
func (d csvItemDelegate) Spacing() int { return 0 }
func (d csvItemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}
func (d csvItemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	entry, ok := item.(csvItem)
	if !ok {
		return
	}
	prefix := "  "
	if index == m.Index() {
		prefix = cursorStyle.Render("> ")
	}
	line := fmt.Sprintf("%s%s", prefix, entry.name)
	fmt.Fprint(w, padRight(line, m.Width()))
}

func newCSVList() list.Model {
	listModel := list.New([]list.Item{}, csvItemDelegate{}, 0, 0)
	listModel.Title = "Pick a CSV to label"
	listModel.Styles.Title = titleStyle
	listModel.Styles.NoItems = lipgloss.NewStyle()
	listModel.SetShowStatusBar(false)
	listModel.SetFilteringEnabled(false)
	listModel.SetShowHelp(false)
	listModel.DisableQuitKeybindings()
	return listModel
}

// loadCSVFilesCmd lists *.csv under base for the picker.
func loadCSVFilesCmd(base string) tea.Cmd {
	return func() tea.Msg {
		entries, err := os.ReadDir(base)
		if err != nil {
			return filesLoadedMsg{err: err}
		}
		var names []string
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			if strings.EqualFold(filepath.Ext(e.Name()), ".csv") {
				names = append(names, e.Name())
			}
		}
		sort.Strings(names)
		items := make([]list.Item, 0, len(names))
		for _, n := range names {
			items = append(items, csvItem{name: n})
		}
		return filesLoadedMsg{items: items}
	}
}

func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	w := ansi.StringWidth(s)
	if w >= width {
		return ansi.Truncate(s, width, "")
	}
	return s + strings.Repeat(" ", width-w)
}

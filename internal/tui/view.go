package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mvickers/rowtally/internal/session"
)

func (a App) View() string {
	if a.width == 0 {
		return "loading..."
	}
	if a.state == statePick {
		return a.viewPicker()
	}
	return a.viewAnnotate()
}

func (a App) viewPicker() string {
	body := a.fileList.View()
	footer := renderFooter(a.pickerKeys.ShortHelp(), a.width)
	status := renderStatusBar(a.status, a.statusErr, a.width)
	return appStyle.Render(lipgloss.JoinVertical(lipgloss.Left, body, status, footer))
}

func (a App) viewAnnotate() string {
	header := a.renderHeader()
	var body string
	if a.sess.Exhausted() {
		body = a.renderTerminal()
	} else {
		body = a.renderRow()
	}
	status := renderStatusBar(a.status, a.statusErr, a.width)
	footer := renderFooter(a.keys.ShortHelp(), a.width)

	content := lipgloss.JoinVertical(lipgloss.Left, header, body)
	if a.height > 0 {
		content = clipHeight(content, a.height-2)
		gap := a.height - 2 - lipgloss.Height(content)
		if gap > 0 {
			content += strings.Repeat("\n", gap)
		}
	}
	return appStyle.Render(lipgloss.JoinVertical(lipgloss.Left, content, status, footer))
}

func (a App) renderHeader() string {
	done, total := a.sess.Position()
	pos := fmt.Sprintf("row %d/%d", done, total)
	if a.sess.Exhausted() {
		pos = fmt.Sprintf("done (%d rows)", total)
	}
	line := headerAppStyle.Render(appName) + "  " + a.sourceName + "  " + pos
	return renderBar(headerBarStyle, max(1, a.width), line, colorMantle)
}

// renderTerminal is the view once the pagination sequence is spent.
func (a App) renderTerminal() string {
	msg := lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render("No more rows to compare."),
		"",
		radioOffStyle.Render(fmt.Sprintf("%d measurements recorded", len(a.sess.Export()))),
		radioOffStyle.Render("press q to export and quit"),
	)
	box := terminalBoxStyle.Render(msg)
	return lipgloss.Place(max(1, a.width), max(1, a.height-4), lipgloss.Center, lipgloss.Center, box)
}

// renderRow lays out the current record: one bordered box per selected
// column (header, clipped value, optional radio group) plus the
// overall judgment group underneath.
func (a App) renderRow() string {
	row, ok := a.sess.Current()
	if !ok {
		return ""
	}
	rec, _ := a.sess.Source().Row(row)
	m := a.sess.Measures()
	groups := a.groups()

	cw := a.cfg.UI.MaxCellWidth
	if cw <= 0 {
		cw = 40
	}
	ch := a.cfg.UI.MaxCellHeight
	if ch <= 0 {
		ch = 6
	}
	if avail := (a.width - 4) / max(1, len(a.sess.Columns())); avail > 8 && avail < cw+4 {
		cw = avail - 4
	}

	boxes := make([]string, 0, len(a.sess.Columns()))
	for _, col := range a.sess.Columns() {
		parts := []string{columnTitleStyle.Render(col)}
		value := cellValueStyle.Width(cw).Render(rec[col])
		parts = append(parts, clipHeight(value, ch))
		if len(m.Each) > 0 {
			parts = append(parts, "", a.renderRadio(col))
		}
		box := columnBoxStyle
		if len(groups) > 0 && groups[a.focus] == col {
			box = columnBoxFocusStyle
		}
		boxes = append(boxes, box.Render(lipgloss.JoinVertical(lipgloss.Left, parts...)))
	}
	grid := lipgloss.JoinHorizontal(lipgloss.Top, boxes...)

	if len(m.Overall) == 0 {
		return grid
	}
	overall := []string{columnTitleStyle.Render("Overall"), a.renderRadio(session.Overall)}
	box := overallBoxStyle
	if len(groups) > 0 && groups[a.focus] == session.Overall {
		box = columnBoxFocusStyle
	}
	return lipgloss.JoinVertical(lipgloss.Left, grid, box.Render(lipgloss.JoinVertical(lipgloss.Left, overall...)))
}

// renderRadio draws one radio group. Index 0 is the unset option, so
// an annotator can always back out of a judgment before submitting.
func (a App) renderRadio(group string) string {
	idx := a.choice[group]
	lines := make([]string, 0, len(a.vocabFor(group))+1)
	for i, label := range append([]string{"none"}, a.vocabFor(group)...) {
		marker, style := "( ) ", radioOffStyle
		if i == idx {
			marker, style = "(x) ", radioOnStyle
		}
		if i == 0 && i != idx {
			style = radioUnsetStyle
		}
		lines = append(lines, style.Render(marker+label))
	}
	return strings.Join(lines, "\n")
}

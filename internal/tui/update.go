package tui

import (
	"path/filepath"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mvickers/rowtally/internal/dataset"
	"github.com/mvickers/rowtally/internal/session"
)

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.fileList.SetSize(msg.Width-4, max(4, msg.Height-6))
		return a, nil

	case filesLoadedMsg:
		if msg.err != nil {
			a.setError(msg.err)
			return a, nil
		}
		a.fileList.SetItems(msg.items)
		if len(msg.items) == 0 {
			a.setStatus("no CSV files in %s", a.basePath)
		}
		return a, nil

	case sourceLoadedMsg:
		if msg.err != nil {
			a.setError(msg.err)
			return a, nil
		}
		if err := a.startSession(msg.src, msg.name); err != nil {
			a.setError(err)
			return a, nil
		}
		a.setStatus("labeling %s", msg.name)
		return a, nil

	case saveDoneMsg:
		if msg.err != nil {
			a.setError(msg.err)
		}
		return a, nil

	case tea.KeyMsg:
		if key.Matches(msg, a.keys.Quit) {
			return a, tea.Quit
		}
		if a.state == statePick {
			return a.updatePicker(msg)
		}
		return a.updateAnnotate(msg)
	}
	return a, nil
}

func (a App) updatePicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, a.pickerKeys.Enter) {
		item, ok := a.fileList.SelectedItem().(csvItem)
		if !ok {
			return a, nil
		}
		return a, openSourceCmd(a.basePath, item.name)
	}
	var cmd tea.Cmd
	a.fileList, cmd = a.fileList.Update(msg)
	return a, cmd
}

func (a App) updateAnnotate(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.sess == nil {
		return a, nil
	}

	if a.sess.Exhausted() {
		// Only quitting makes sense here; retreat past the end of the
		// sequence is a no-op by contract.
		if key.Matches(msg, a.keys.Prev) {
			a.setStatus("no more rows; q exports and quits")
		}
		return a, nil
	}

	groups := a.groups()

	switch {
	case key.Matches(msg, a.keys.UpDown):
		if len(groups) == 0 {
			return a, nil
		}
		g := groups[a.focus]
		switch msg.String() {
		case "down", "j":
			if a.choice[g] < len(a.vocabFor(g)) {
				a.choice[g]++
			}
		case "up", "k":
			if a.choice[g] > 0 {
				a.choice[g]--
			}
		}
		return a, nil

	case key.Matches(msg, a.keys.NextGroup):
		if len(groups) > 0 {
			a.focus = (a.focus + 1) % len(groups)
		}
		return a, nil

	case key.Matches(msg, a.keys.PrevGroup):
		if len(groups) > 0 {
			a.focus = (a.focus - 1 + len(groups)) % len(groups)
		}
		return a, nil

	case key.Matches(msg, a.keys.Submit):
		if err := a.sess.Apply(session.ActionSubmit, a.selections()); err != nil {
			a.setError(err)
			return a, nil
		}
		a.setStatus("saved (%d measurements total)", len(a.sess.Export()))
		return a, a.saveRunCmd()

	case key.Matches(msg, a.keys.SubmitNext):
		if err := a.sess.Apply(session.ActionSubmitAndNext, a.selections()); err != nil {
			a.setError(err)
			return a, nil
		}
		a.seedChoices()
		done, total := a.sess.Position()
		if a.sess.Exhausted() {
			a.setStatus("all %d rows visited", total)
		} else {
			a.setStatus("row %d of %d", done, total)
		}
		return a, a.saveRunCmd()

	case key.Matches(msg, a.keys.Prev):
		if err := a.sess.Apply(session.ActionPrevious, nil); err != nil {
			a.setError(err)
			return a, nil
		}
		a.seedChoices()
		done, total := a.sess.Position()
		a.setStatus("row %d of %d", done, total)
		return a, nil
	}
	return a, nil
}

// openSourceCmd loads a picked CSV off the update loop.
func openSourceCmd(base, name string) tea.Cmd {
	return func() tea.Msg {
		src, err := dataset.OpenCSV(filepath.Join(base, name))
		return sourceLoadedMsg{src: src, name: name, err: err}
	}
}

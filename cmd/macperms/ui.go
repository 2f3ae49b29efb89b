package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/tmc/macperms"
)

var (
	accent = lipgloss.Color("#22c55e")
	subtle = lipgloss.Color("#666666")
	danger = lipgloss.Color("#ef4444")
	info   = lipgloss.Color("#06b6d4")
)

// styles renders for a specific writer so that colors are only emitted when
// that writer is a terminal.
type styles struct {
	title, ok, bad, muted, name lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		title: r.NewStyle().Foreground(accent).Bold(true),
		ok:    r.NewStyle().Foreground(accent),
		bad:   r.NewStyle().Foreground(danger),
		muted: r.NewStyle().Foreground(subtle),
		name:  r.NewStyle().Foreground(info).Width(18),
	}
}

func (s styles) mark(granted bool) string {
	if granted {
		return s.ok.Render("✓")
	}
	return s.bad.Render("✗")
}

func (s styles) header(w io.Writer, text string) {
	fmt.Fprintln(w, s.title.Render(text))
}

var errNothingChosen = errors.New("no permissions selected")

func choosePermissions(offered []macperms.Permission) ([]macperms.Permission, error) {
	opts := make([]huh.Option[macperms.Permission], 0, len(offered))
	for _, p := range offered {
		label := fmt.Sprintf("%s - %s", p.Title(), p.Description())
		opts = append(opts, huh.NewOption(label, p).Selected(true))
	}

	var picked []macperms.Permission
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[macperms.Permission]().
				Title("Request which permissions?").
				Description("Space to toggle, enter to confirm").
				Options(opts...).
				Value(&picked),
		),
	)
	if err := form.Run(); err != nil {
		return nil, err
	}
	if len(picked) == 0 {
		return nil, errNothingChosen
	}
	return picked, nil
}

package cmd

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// printMarkdown renders md for the terminal, or prints it as is in raw mode or
// when it cannot be rendered.
func (a *App) printMarkdown(md string) {
	if a.Raw {
		fmt.Fprint(a.Out, md)
		return
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(120),
	)
	if err != nil {
		a.Log.Debug().Err(err).Msg("cannot create markdown renderer")
		fmt.Fprint(a.Out, md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		a.Log.Debug().Err(err).Msg("cannot render markdown")
		fmt.Fprint(a.Out, md)
		return
	}
	fmt.Fprint(a.Out, out)
}

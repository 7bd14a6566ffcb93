package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/arthur-debert/coinscribe/cmd/coinscribe"
	"github.com/arthur-debert/coinscribe/pkg/ui"
	"github.com/arthur-debert/coinscribe/pkg/ui/render"
)

func main() {
	rootCmd := coinscribe.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		// Fatal errors carry a fully built report; this is the one place
		// that renders it and terminates.
		var fatal *ui.FatalError
		if errors.As(err, &fatal) {
			styled := ui.Styled(ui.FormatAuto, os.Stderr)
			_ = render.New(os.Stderr, styled).Render(fatal.Doc)
			os.Exit(1)
		}

		errorStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}

package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/srlehn/dghost/resize"
	"github.com/srlehn/dghost/sys"
)

func init() {
	rootCmd.AddCommand(displaysCmd)
}

var displaysCmd = &cobra.Command{
	Use:   `displays`,
	Short: `list the available displays, ttys and resizers`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		run(func() error {
			fmt.Print(implementations())
			return nil
		})
	},
}

var headerStyle = lipgloss.NewStyle().Bold(true).Underline(true)

func implementations() string {
	var sb strings.Builder
	for _, sec := range []struct {
		title string
		names []string
	}{
		{`displays`, sys.Displays()},
		{`ttys`, sys.TTYs()},
		{`resizers`, resize.Names()},
	} {
		sb.WriteString(headerStyle.Render(sec.title) + "\n")
		for _, n := range sec.names {
			sb.WriteString(`  ` + n + "\n")
		}
	}
	return sb.String()
}

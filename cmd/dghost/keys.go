package main

import (
	"context"
	"fmt"
	"os"
	"slices"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/srlehn/dghost"
	"github.com/srlehn/dghost/app"
	"github.com/srlehn/dghost/internal/consts"
	"github.com/srlehn/dghost/sys"
)

func init() {
	keysFlags.register(keysCmd.Flags())
	rootCmd.AddCommand(keysCmd)
}

var keysCmd = &cobra.Command{
	Use:   `keys`,
	Short: `print key codes`,
	Long:  `print the codes ReadKey delivers until a quit key (q, Q or ^C) is pressed`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		run(keysFunc(cmd.Context()))
	},
}

var keysFlags hostFlags

var (
	keyStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(`212`))
	codeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(`241`))
)

func keysFunc(ctx context.Context) func() error {
	return func() (err error) {
		if ctx == nil {
			ctx = context.Background()
		}
		cfg, err := keysFlags.config()
		if err != nil {
			return err
		}
		// keys only, no frames
		cfg.Display = consts.DisplayNullName
		cfg.KeyPolicy = sys.Blocking
		h, err := dghost.New(cfg)
		if err != nil {
			return err
		}
		defer func() {
			if errClose := h.Close(); errClose != nil && err == nil {
				err = errClose
			}
		}()
		fmt.Fprint(os.Stdout, "press q, Q or ^C to quit\r\n")
		for {
			k, ok, err := h.ReadKey(ctx)
			if err != nil {
				return err
			}
			if !ok {
				continue
			}
			// the terminal is in raw mode
			fmt.Fprintf(os.Stdout, "%s %s\r\n", keyStyle.Render(k.String()), codeStyle.Render(fmt.Sprintf(`%d`, int32(k))))
			if isQuitKey(k) {
				return nil
			}
		}
	}
}

// isQuitKey matches the keys ending the run command.
func isQuitKey(k sys.Key) bool { return slices.Contains(app.DefaultQuitKeys, k) }

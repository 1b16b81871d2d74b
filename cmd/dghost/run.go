package main

import (
	"context"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/srlehn/dghost"
	"github.com/srlehn/dghost/app"
	"github.com/srlehn/dghost/internal/errors"
)

func init() {
	runFlags.register(runCmd.Flags())
	runCmd.Flags().IntVar(&widthFlag, `width`, 320, `frame width`)
	runCmd.Flags().IntVar(&heightFlag, `height`, 200, `frame height`)
	runCmd.Flags().StringVarP(&patternFlag, `pattern`, `p`, `gradient`, `test pattern (gradient, fire)`)
	runCmd.Flags().DurationVar(&animateFlag, `animate`, 0, `redraw interval while no key is pending, 0 draws once`)
	runCmd.Flags().StringVar(&overlayFlag, `overlay`, ``, `status bar text`)
	rootCmd.AddCommand(runCmd)
}

var runCmd = &cobra.Command{
	Use:   `run`,
	Short: `run the test pattern application`,
	Long:  `present a test pattern and poll keys until q, Q or ^C is pressed`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		run(runFunc(cmd.Context()))
	},
}

var (
	runFlags    hostFlags
	widthFlag   int
	heightFlag  int
	patternFlag string
	animateFlag time.Duration
	overlayFlag string
)

func runFunc(ctx context.Context) func() error {
	return func() (err error) {
		if ctx == nil {
			ctx = context.Background()
		}
		ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
		defer stop()

		pattern, ok := app.PatternByName(patternFlag)
		if !ok {
			return errors.Errorf(`unknown pattern %q`, patternFlag)
		}
		cfg, err := runFlags.config()
		if err != nil {
			return err
		}
		h, err := dghost.New(cfg)
		if err != nil {
			return err
		}
		defer func() {
			if errClose := h.Close(); errClose != nil && err == nil {
				err = errClose
			}
		}()
		opts := []app.Option{app.WithPattern(pattern)}
		if animateFlag > 0 {
			opts = append(opts, app.WithAnimate(animateFlag))
		}
		if len(overlayFlag) > 0 {
			opts = append(opts, app.WithOverlay(overlayFlag))
		}
		l, err := app.New(h, widthFlag, heightFlag, opts...)
		if err != nil {
			return err
		}
		if err := l.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	}
}

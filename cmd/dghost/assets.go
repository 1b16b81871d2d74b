package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/srlehn/dghost"
	"github.com/srlehn/dghost/abi"
	"github.com/srlehn/dghost/app"
	"github.com/srlehn/dghost/asset"
	"github.com/srlehn/dghost/internal/consts"
	"github.com/srlehn/dghost/internal/errors"
	"github.com/srlehn/dghost/sys"
)

func init() {
	assetsFlags.register(assetsCmd.PersistentFlags())
	assetsCatCmd.Flags().BoolVar(&catABIFlag, `abi`, false, `read through the integer calls OpenWAD / ReadWAD / CloseWAD`)
	assetsCmd.AddCommand(assetsListCmd, assetsCatCmd)
	rootCmd.AddCommand(assetsCmd)
}

var (
	assetsFlags hostFlags
	catABIFlag  bool
)

var assetsCmd = &cobra.Command{
	Use:   `assets`,
	Short: `inspect the asset namespace`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
		os.Exit(1)
	},
}

var assetsListCmd = &cobra.Command{
	Use:   `list`,
	Short: `list assets with their sizes`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		run(assetsListFunc)
	},
}

var assetsCatCmd = &cobra.Command{
	Use:   `cat path`,
	Short: `write an asset to stdout`,
	Long:  `read an asset through OpenAsset / ReadAsset / CloseAsset (with --abi: OpenWAD / ReadWAD / CloseWAD) and write it to stdout`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		run(func() error { return assetsCatFunc(cmd.Context(), args[0]) })
	},
}

var (
	nameStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(`39`))
	sizeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(`241`)).Align(lipgloss.Right)
)

func assetsListFunc() error {
	if len(assetsFlags.assets) == 0 {
		return errors.Errorf(`no asset namespace, use --assets or $%s`, consts.EnvAssets)
	}
	store, err := asset.Open(assetsFlags.assets)
	if err != nil {
		return err
	}
	defer store.Close()
	infos, err := store.List()
	if err != nil {
		return err
	}
	width := 0
	for _, info := range infos {
		width = max(width, len(fmt.Sprint(info.Size)))
	}
	var sb strings.Builder
	for _, info := range infos {
		sb.WriteString(sizeStyle.Width(width).Render(fmt.Sprint(info.Size)))
		sb.WriteString(`  `)
		sb.WriteString(nameStyle.Render(`/` + info.Name))
		sb.WriteString("\n")
	}
	_, err = os.Stdout.WriteString(sb.String())
	return err
}

func assetsCatFunc(ctx context.Context, path string) (err error) {
	cfg, err := assetsFlags.config()
	if err != nil {
		return err
	}
	cfg.Display = consts.DisplayNullName
	cfg.TTY = dghost.TTYNone
	h, err := dghost.New(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if errClose := h.Close(); errClose != nil && err == nil {
			err = errClose
		}
	}()
	b, err := catAsset(ctx, h, path, catABIFlag)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(b)
	return err
}

func catAsset(ctx context.Context, s sys.Syscalls, path string, viaABI bool) ([]byte, error) {
	if viaABI {
		return abi.NewTable(ctx, s).ReadAll(path)
	}
	return app.ReadAll(s, path)
}

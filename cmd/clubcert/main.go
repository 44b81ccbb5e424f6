package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/SeakMengs/ClubCert/internal/config"
	"github.com/SeakMengs/ClubCert/internal/env"
	"github.com/SeakMengs/ClubCert/internal/fetcher"
	"github.com/SeakMengs/ClubCert/internal/util"
	"github.com/SeakMengs/ClubCert/pkg/badge"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func init() {
	env.LoadEnv(".env")
}

func main() {
	cfg := config.GetConfig()
	logger := util.NewLogger(cfg.ENV, cfg.LogFile)
	defer logger.Sync()

	root := &cobra.Command{
		Use:           "clubcert",
		Short:         "Compose club badges offline",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newComposeCmd(cfg, logger), newQRCmd(), newFontsCmd(logger))

	if err := root.Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

func newComposeCmd(cfg config.Config, logger *zap.SugaredLogger) *cobra.Command {
	var clubName, qrURL, logo, out, layoutPath string

	cmd := &cobra.Command{
		Use:   "compose",
		Short: "Compose a badge pdf locally without uploading it",
		RunE: func(cmd *cobra.Command, args []string) error {
			if out == "" {
				out = util.ToBadgeObjectName(clubName)
			}

			layout, err := badge.LoadLayout(layoutPath)
			if err != nil {
				return err
			}

			badgeCfg := newBadgeConfig(cfg.Badge, layout)

			qr, err := badge.GenerateQRCode(qrURL)
			if err != nil {
				return err
			}

			doc, err := badge.NewComposer(badgeCfg).Open(clubName)
			if err != nil {
				return err
			}
			defer doc.Close()

			logoBytes, err := readLogo(cmd.Context(), logo, cfg.Fetch)
			if err != nil {
				return fmt.Errorf("fetch logo: %w", err)
			}

			if err := doc.PlaceLogo(logoBytes); err != nil {
				return fmt.Errorf("layout logo: %w", err)
			}
			if err := doc.PlaceQR(qr); err != nil {
				return fmt.Errorf("layout qr: %w", err)
			}

			path, err := doc.Save()
			if err != nil {
				return err
			}
			if err := badge.CopyFile(path, out); err != nil {
				return fmt.Errorf("failed to write %s: %w", out, err)
			}

			logger.Infof("Badge for %q written to %s", clubName, out)
			return nil
		},
	}

	cmd.Flags().StringVar(&clubName, "club-name", "", "Club name printed on the badge")
	cmd.Flags().StringVar(&qrURL, "qr-url", "", "Link encoded in the QR code")
	cmd.Flags().StringVar(&logo, "logo", "", "Logo image, a local file or an http(s) URL")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output pdf, defaults to the sanitized club name")
	cmd.Flags().StringVar(&layoutPath, "layout", cfg.Badge.LayoutPath, "Optional yaml layout file")
	for _, name := range []string{"club-name", "qr-url", "logo"} {
		_ = cmd.MarkFlagRequired(name)
	}

	return cmd
}

func newQRCmd() *cobra.Command {
	var link, out string

	cmd := &cobra.Command{
		Use:   "qr",
		Short: "Write the badge QR code for a link as png",
		RunE: func(cmd *cobra.Command, args []string) error {
			png, err := badge.GenerateQRCode(link)
			if err != nil {
				return err
			}
			return os.WriteFile(out, png, 0644)
		},
	}

	cmd.Flags().StringVar(&link, "url", "", "Link to encode")
	cmd.Flags().StringVarP(&out, "out", "o", "qr.png", "Output png")
	_ = cmd.MarkFlagRequired("url")

	return cmd
}

func newFontsCmd(logger *zap.SugaredLogger) *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "fonts",
		Short: "List the font families found in a directory as json",
		RunE: func(cmd *cobra.Command, args []string) error {
			fonts, err := badge.ScanFontDir(dir, func(path string, err error) {
				logger.Warnf("Skipping %q: %v", path, err)
			})
			if err != nil {
				return fmt.Errorf("failed to scan font directory: %w", err)
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(fonts)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "fonts", "Directory to scan")

	return cmd
}

func readLogo(ctx context.Context, logo string, cfg config.FetchConfig) ([]byte, error) {
	if strings.HasPrefix(logo, "http://") || strings.HasPrefix(logo, "https://") {
		return fetcher.NewHTTPFetcher(cfg.Timeout).Fetch(ctx, logo)
	}
	return os.ReadFile(logo)
}

func newBadgeConfig(cfg config.BadgeConfig, layout badge.Layout) *badge.Config {
	badgeCfg := badge.NewDefaultConfig()
	badgeCfg.TemplatePath = cfg.TemplatePath
	badgeCfg.FontPath = cfg.FontPath
	badgeCfg.Layout = layout
	if cfg.TmpDir != "" {
		badgeCfg.TmpDir = cfg.TmpDir
	}
	return badgeCfg
}

package coinscribe

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/coinscribe/internal/version"
	"github.com/arthur-debert/coinscribe/pkg/cobrax/topics"
	"github.com/arthur-debert/coinscribe/pkg/doc"
	"github.com/arthur-debert/coinscribe/pkg/errors"
	"github.com/arthur-debert/coinscribe/pkg/logging"
	"github.com/arthur-debert/coinscribe/pkg/report"
	"github.com/arthur-debert/coinscribe/pkg/ui"
	"github.com/arthur-debert/coinscribe/pkg/ui/render"
	"github.com/arthur-debert/coinscribe/pkg/ui/styles"
	"github.com/arthur-debert/coinscribe/pkg/wallet"
)

//go:embed topics
var topicFiles embed.FS

// rootOptions carries the resolved persistent flags.
type rootOptions struct {
	format ui.Format
	unit   wallet.Unit
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	var (
		verbosity int
		outputStr string
		unitStr   string
		themePath string
		opts      rootOptions
	)

	rootCmd := &cobra.Command{
		Use:     "coinscribe",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")

			format, err := ui.ParseFormat(outputStr)
			if err != nil {
				return ui.Fatalf("%v", err)
			}
			unit, err := wallet.ParseUnit(unitStr)
			if err != nil {
				return ui.Fatalf("%v", err)
			}
			opts = rootOptions{format: format, unit: unit}

			if themePath != "" {
				if err := styles.LoadTheme(themePath); err != nil {
					return errors.Wrap(err, errors.ErrThemeLoad, "theme")
				}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand: show help but flag the invocation as wrong.
			_ = cmd.Help()
			return fmt.Errorf("no command specified")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&outputStr, "output", "auto", MsgFlagOutput)
	rootCmd.PersistentFlags().StringVar(&unitStr, "unit", "btc", MsgFlagUnit)
	rootCmd.PersistentFlags().StringVar(&themePath, "theme", "", MsgFlagTheme)

	// Define command groups
	rootCmd.AddGroup(&cobra.Group{
		ID:    "reports",
		Title: "REPORTS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	rootCmd.AddCommand(newAccountCmd(&opts))
	rootCmd.AddCommand(newBalanceCmd(&opts))
	rootCmd.AddCommand(newAddressesCmd(&opts))
	rootCmd.AddCommand(newTxsCmd(&opts))
	rootCmd.AddCommand(newBackupCmd(&opts))
	rootCmd.AddCommand(newVersionCmd())

	// Topic-based help from the embedded docs, markdown through glamour.
	if sub, err := fs.Sub(topicFiles, "topics"); err == nil {
		topicOpts := topics.Options{
			Extensions: []string{".txt", ".md"},
			Renderer:   topics.NewGlamourRenderer(),
		}
		if err := topics.Initialize(rootCmd, sub, topicOpts); err != nil {
			log.Warn().Err(err).Msg("Failed to initialize help topics")
		}
	}

	return rootCmd
}

// runReport loads a snapshot and renders the built document to stdout.
// Load failures become fatal reports handled at the process boundary.
func runReport(cmd *cobra.Command, path string, opts *rootOptions,
	build func(*wallet.Snapshot) doc.Doc) error {

	snap, err := wallet.Load(path)
	if err != nil {
		return ui.Fatal(report.LoadFailure(path, err))
	}

	d := build(snap)
	r := render.New(cmd.OutOrStdout(), ui.Styled(opts.format, os.Stdout))
	return r.Render(d)
}

func newAccountCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "account <snapshot>",
		Short:   MsgAccountShort,
		Example: MsgAccountExample,
		GroupID: "reports",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd, args[0], opts, report.Account)
		},
	}
}

func newBalanceCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "balance <snapshot>",
		Short:   MsgBalanceShort,
		Example: MsgBalanceExample,
		GroupID: "reports",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd, args[0], opts, func(s *wallet.Snapshot) doc.Doc {
				d := report.Balance(s, opts.unit)
				if doc.IsEmpty(d) {
					return doc.Static(MsgNoBalance)
				}
				return d
			})
		},
	}
}

func newAddressesCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "addresses <snapshot>",
		Aliases: []string{"addrs"},
		Short:   MsgAddressesShort,
		GroupID: "reports",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd, args[0], opts, func(s *wallet.Snapshot) doc.Doc {
				d := report.Addresses(s)
				if doc.IsEmpty(d) {
					return doc.Static(MsgNoAddresses)
				}
				return d
			})
		},
	}
}

func newTxsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "txs <snapshot>",
		Aliases: []string{"transactions"},
		Short:   MsgTxsShort,
		Example: MsgTxsExample,
		GroupID: "reports",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd, args[0], opts, func(s *wallet.Snapshot) doc.Doc {
				d := report.Transactions(s, opts.unit)
				if doc.IsEmpty(d) {
					return doc.Static(MsgNoTxs)
				}
				return d
			})
		},
	}
}

func newBackupCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "backup <snapshot>",
		Short:   MsgBackupShort,
		Long:    MsgBackupLong,
		GroupID: "reports",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := wallet.Load(args[0])
			if err != nil {
				return ui.Fatal(report.LoadFailure(args[0], err))
			}
			words := strings.Fields(snap.Mnemonic)
			if len(words) == 0 {
				return ui.Fatalf(MsgNoMnemonic)
			}
			r := render.New(cmd.OutOrStdout(), ui.Styled(opts.format, os.Stdout))
			return r.Render(report.Backup(snap, words))
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "coinscribe version %s\n", version.Version)
			fmt.Fprintf(cmd.OutOrStdout(), "  commit: %s\n", version.Commit)
			fmt.Fprintf(cmd.OutOrStdout(), "  built:  %s\n", version.Date)
		},
	}
}

package main

import (
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"lingotree/internal/adapters/tui"
	"lingotree/internal/application"
	"lingotree/internal/config"
	"lingotree/internal/infrastructure/catalog"
	"lingotree/internal/infrastructure/clipboard"
	"lingotree/internal/infrastructure/i18n"
	"lingotree/internal/ports/output"
)

var flags config.Flags

var rootCmd = &cobra.Command{
	Use:   "lingotree SOURCE",
	Short: "Interactive terminal editor for nested translation catalogs",
	Long: `lingotree opens a nested JSON string catalog and lets you translate
it key by key in a tree view. Translations are written to the output
document on save; only translated keys are emitted.`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(args[0])
	},
}

func init() {
	rootCmd.Flags().StringVarP(&flags.Out, "out", "o", "", "output file (default: source basename prefixed with the locale tag)")
	rootCmd.Flags().StringVarP(&flags.Locale, "locale", "l", "", "target locale tag used for the default output name")
	rootCmd.Flags().StringVar(&flags.UILanguage, "ui-lang", "", "locale of the editor interface")
	rootCmd.Flags().BoolVar(&flags.NoColor, "no-color", false, "disable colors")
	rootCmd.Flags().StringVar(&flags.ConfigPath, "config", "", "path to the TOML config file")
}

func run(sourcePath string) error {
	cfg, err := config.Load(sourcePath, flags)
	if err != nil {
		return err
	}

	// stdout is the UI; anything logged while it runs would corrupt
	// the screen, so logs go to a file or nowhere.
	if cfg.Debug {
		f, err := tea.LogToFile("lingotree.log", "debug")
		if err != nil {
			return err
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	// All load failures are fatal here, before any UI is shown.
	repo := catalog.NewFileRepository(cfg.SourcePath, cfg.OutputPath)
	source, err := repo.LoadSource()
	if err != nil {
		return err
	}
	target, err := repo.LoadTarget()
	if err != nil {
		return err
	}

	store := application.NewStore()
	store.Merge(source, target)

	var clip output.Clipboard = clipboard.NewSystem()
	if !clipboard.Supported() {
		clip = clipboard.NewNoop()
	}

	session := application.NewSession(store, repo, clip)
	translator := i18n.NewTranslator(cfg.UILanguage)

	model := tui.New(session, translator, cfg)
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run editor: %w", err)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

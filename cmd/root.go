// Package cmd wires the command line interface: config loading, theme
// application, language resolution, and the Bubble Tea program.
package cmd

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/blacktop/asmview/internal/config"
	"github.com/blacktop/asmview/internal/log"
	"github.com/blacktop/asmview/internal/syntax"
	"github.com/blacktop/asmview/internal/ui/styles"
	"github.com/blacktop/asmview/internal/ui/viewer"
	"github.com/blacktop/asmview/internal/watcher"
)

//go:embed testdata/demo.s
var demoSource []byte

func init() {
	// Force lipgloss/termenv to query terminal background color BEFORE
	// any Bubble Tea program starts. This prevents the terminal's OSC 11
	// response from racing with Bubble Tea's input loop and appearing as
	// garbage text in input fields.
	//
	// See: https://github.com/charmbracelet/bubbletea/issues/1036
	_ = lipgloss.HasDarkBackground()
}

var (
	version = "dev"
	cfgFile string
	cfg     config.Config

	debugLog   string
	themeFlag  string
	noAutoFlag bool
	plainNums  bool
)

var rootCmd = &cobra.Command{
	Use:     "asmview [file]",
	Short:   "A terminal viewer for ARM64 assembly with syntax highlighting",
	Long: `A terminal viewer for ARM64 assembly sources. Highlights mnemonics,
registers, immediates, labels, directives and comments, re-highlights when
the file changes on disk, and scrolls large listings without re-rendering
the whole document. Run without arguments to view a built-in demo.`,
	Version: version,
	Args:    cobra.MaximumNArgs(1),
	RunE:    runViewer,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/asmview/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&debugLog, "debug-log", "",
		"write debug logs to the given file")
	rootCmd.Flags().StringVarP(&themeFlag, "theme", "t", "",
		"color theme preset (default, one-light, high-contrast)")
	rootCmd.Flags().BoolVar(&noAutoFlag, "no-auto-refresh", false,
		"disable re-highlighting when the file changes on disk")
	rootCmd.Flags().BoolVar(&plainNums, "no-line-numbers", false,
		"hide the line number gutter")

	_ = viper.BindPFlag("theme.preset", rootCmd.Flags().Lookup("theme"))
}

func initConfig() {
	defaults := config.Defaults()
	viper.SetDefault("language", defaults.Language)
	viper.SetDefault("auto_refresh", defaults.AutoRefresh)
	viper.SetDefault("auto_refresh_debounce", defaults.AutoRefreshDebounce)
	viper.SetDefault("ui.show_line_numbers", defaults.UI.ShowLineNumbers)
	viper.SetDefault("ui.show_status_bar", defaults.UI.ShowStatusBar)
	viper.SetDefault("ui.tab_width", defaults.UI.TabWidth)
	viper.SetDefault("theme.preset", defaults.Theme.Preset)
	viper.SetDefault("theme.mode", defaults.Theme.Mode)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Config lookup order:
		// 1. .asmview/config.yaml (current directory)
		// 2. ~/.config/asmview/config.yaml (user config)
		if _, err := os.Stat(".asmview/config.yaml"); err == nil {
			viper.SetConfigFile(".asmview/config.yaml")
		} else {
			home, _ := os.UserHomeDir()
			viper.AddConfigPath(filepath.Join(home, ".config", "asmview"))
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		// No config file found anywhere - create default at ~/.config/asmview
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			home, homeErr := os.UserHomeDir()
			if homeErr == nil {
				defaultPath := filepath.Join(home, ".config", "asmview", "config.yaml")
				if writeErr := config.WriteDefaultConfig(defaultPath); writeErr == nil {
					viper.SetConfigFile(defaultPath)
					_ = viper.ReadInConfig()
				}
			}
			// If write fails, just continue with defaults (no config file)
		}
	}

	_ = viper.Unmarshal(&cfg)
}

func runViewer(cmd *cobra.Command, args []string) error {
	logPath := debugLog
	if logPath == "" {
		logPath = os.Getenv("ASMVIEW_DEBUG")
	}
	var logs *log.LogListener
	if logPath != "" {
		cleanup, err := log.InitWithTeaLog(logPath, "asmview")
		if err != nil {
			return fmt.Errorf("initializing debug log: %w", err)
		}
		defer cleanup()

		logCtx, logCancel := context.WithCancel(context.Background())
		defer logCancel()
		logs = log.NewListener(logCtx)
	}

	if err := styles.ApplyTheme(styles.ThemeConfig{
		Preset: cfg.Theme.Preset,
		Mode:   cfg.Theme.Mode,
		Colors: cfg.Theme.Colors,
	}); err != nil {
		return fmt.Errorf("applying theme: %w", err)
	}

	if noAutoFlag {
		cfg.AutoRefresh = false
	}
	if plainNums {
		cfg.UI.ShowLineNumbers = false
	}

	registry := syntax.NewRegistry()
	syntax.RegisterAssembly(registry)

	opts, err := resolveSource(registry, args)
	if err != nil {
		return err
	}

	// Watch the file's directory so re-highlighting follows editors that
	// replace the file on save
	var fw *watcher.Watcher
	if opts.Path != "" && cfg.AutoRefresh {
		fw, err = watcher.New(watcher.Config{
			Path:        opts.Path,
			DebounceDur: cfg.RefreshDebounce(),
		})
		if err != nil {
			return fmt.Errorf("creating file watcher: %w", err)
		}
		changes, err := fw.Start()
		if err != nil {
			return fmt.Errorf("watching %s: %w", opts.Path, err)
		}
		opts.Changes = changes
	}
	opts.Logs = logs

	model := viewer.New(registry, cfg, opts)
	p := tea.NewProgram(model, tea.WithAltScreen())

	_, err = p.Run()

	if fw != nil {
		if stopErr := fw.Stop(); stopErr != nil && err == nil {
			err = stopErr
		}
	}

	if err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

// resolveSource decides what to display and which grammar to use.
// With a file argument the language is matched from the path, falling back
// to the configured language; without one the embedded demo is shown.
func resolveSource(registry *syntax.Registry, args []string) (viewer.Options, error) {
	if len(args) == 0 {
		return viewer.Options{
			DisplayName: "demo.s",
			Source:      demoSource,
			Language:    syntax.AsmLanguageName,
			GrammarID:   syntax.AsmGrammarID,
		}, nil
	}

	path := args[0]
	if _, err := os.Stat(path); err != nil {
		return viewer.Options{}, fmt.Errorf("opening %s: %w", path, err)
	}

	lang, err := registry.LanguageForFile(path)
	if errors.Is(err, syntax.ErrLanguageUnavailable) {
		// Unrecognized extension: fall back to the configured language
		lang, err = registry.Language(cfg.Language)
	}
	if err != nil {
		return viewer.Options{}, fmt.Errorf("resolving language for %s: %w", path, err)
	}

	return viewer.Options{
		Path:        path,
		DisplayName: filepath.Base(path),
		Language:    lang.Config.Name,
		GrammarID:   lang.Config.GrammarID,
	}, nil
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

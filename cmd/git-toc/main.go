// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the git-toc CLI, which prints a
// markdown table of contents for the headers of a document.
// Implements: docs/ARCHITECTURE § Configuration (CLI surface).
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/pdiddy/git-toc/internal/logging"
	"github.com/pdiddy/git-toc/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// app carries the state shared by the commands of one invocation.
type app struct {
	v   *viper.Viper
	log *zap.Logger
}

// newRootCmd builds the command tree. Settings are resolved through v, so
// flags, GIT_TOC_* environment variables, and a config file all apply.
func newRootCmd(v *viper.Viper) *cobra.Command {
	a := &app{v: v, log: zap.NewNop()}

	rootCmd := &cobra.Command{
		Use:   "git-toc",
		Short: "Print a table of contents for a markdown file",
		Long: `git-toc reads a markdown file, collects every line that starts with '#',
and prints a nested bullet list of links to those headers. Paste the output
into the document where the table of contents should appear.

Headers deeper than --max-depth (zero-based, default 3) are left out. The
file itself is never modified.`,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.log.Sync()
		},
		RunE: a.runTOC,
	}

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./git-toc.yaml or ~/.config/git-toc/git-toc.yaml)")
	rootCmd.PersistentFlags().String("log-level", string(types.LogNormal), "diagnostic output on stderr: none, normal, or debug")

	rootCmd.Flags().String("md-file", "", "markdown file to extract the table of contents from, e.g. 'git_dir/README.md'")
	rootCmd.Flags().Int("max-depth", types.DefaultMaxDepth, "deepest header level to include, starting at 0")
	rootCmd.Flags().String("format", string(types.FormatText), "output format: text, markdown, yaml, or json")

	// Accept --md_file and --max_depth as aliases of the dashed names.
	rootCmd.SetGlobalNormalizationFunc(func(f *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})

	bindFlag(v, "log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	bindFlag(v, "md_file", rootCmd.Flags().Lookup("md-file"))
	bindFlag(v, "max_depth", rootCmd.Flags().Lookup("max-depth"))
	bindFlag(v, "format", rootCmd.Flags().Lookup("format"))

	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

func bindFlag(v *viper.Viper, key string, f *pflag.Flag) {
	if err := v.BindPFlag(key, f); err != nil {
		panic(fmt.Sprintf("binding flag %s: %v", key, err))
	}
}

// setup reads the config file and builds the logger before any command runs.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	if err := readConfig(a.v, cfgFile); err != nil {
		return err
	}

	log, err := logging.New(types.LogLevel(a.v.GetString("log_level")), zapcore.AddSync(cmd.ErrOrStderr()))
	if err != nil {
		return err
	}
	a.log = log

	if used := a.v.ConfigFileUsed(); used != "" {
		a.log.Debug("Using config file", zap.String("path", used))
	}
	return nil
}

// readConfig loads cfgFile, or looks for git-toc.yaml in the working
// directory and ~/.config/git-toc/git-toc.yaml. A missing default config is
// not an error.
func readConfig(v *viper.Viper, cfgFile string) error {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("git-toc")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "git-toc"))
		}
	}

	v.SetEnvPrefix("GIT_TOC")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("reading config: %w", err)
	}
	return nil
}

// tocConfig collects the resolved settings for a run. A max_depth that is
// not an integer is an error rather than a silent 0.
func (a *app) tocConfig() (types.TOCConfig, error) {
	maxDepth, err := cast.ToIntE(a.v.Get("max_depth"))
	if err != nil {
		return types.TOCConfig{}, fmt.Errorf("invalid max_depth %q: must be a non-negative integer", a.v.GetString("max_depth"))
	}
	return types.TOCConfig{
		MDFile:   a.v.GetString("md_file"),
		MaxDepth: maxDepth,
		Format:   types.OutputFormat(strings.ToLower(a.v.GetString("format"))),
		LogLevel: types.LogLevel(a.v.GetString("log_level")),
	}, nil
}

func main() {
	if err := newRootCmd(viper.New()).Execute(); err != nil {
		os.Exit(1)
	}
}

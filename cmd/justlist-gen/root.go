package main

import (
	"context"
	"io"
	"os"
	"strings"
	"time"

	"github.com/atomicstack/justlist/internal/generator"
	"github.com/atomicstack/justlist/internal/logging"
	"github.com/atomicstack/justlist/internal/logging/events"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "JUSTLIST"

// stdinIsTerminal reports whether r is an interactive terminal. Generators
// started at the head of a pipeline see a terminal and start from an empty
// catalog.
var stdinIsTerminal = func(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// settings resolves flag values with JUSTLIST_* environment fallbacks. Flag
// "max-pages" maps to JUSTLIST_MAX_PAGES.
type settings struct {
	v *viper.Viper
}

func newSettings() *settings {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return &settings{v: v}
}

func (s *settings) bind(flags *pflag.FlagSet) error {
	return s.v.BindPFlags(flags)
}

func (s *settings) String(key string) string { return s.v.GetString(key) }
func (s *settings) Bool(key string) bool { return s.v.GetBool(key) }
func (s *settings) Int(key string) int { return s.v.GetInt(key) }
func (s *settings) Duration(key string) time.Duration { return s.v.GetDuration(key) }

func newRootCmd() *cobra.Command {
	cfg := newSettings()
	root := &cobra.Command{
		Use:   "justlist-gen",
		Short: "Generate catalogs for the justlist picker.",
		Long: `justlist-gen appends groups to a catalog read on stdin and writes the
result to stdout. When stdin is a terminal the input catalog is empty.

Every flag can also be set with a JUSTLIST_ environment variable, for example
JUSTLIST_TOKEN or JUSTLIST_MAX_PAGES.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.bind(cmd.Flags()); err != nil {
				return err
			}
			logging.Configure(cfg.String("log-file"))
			logging.SetTraceEnabled(cfg.Bool("trace"))
			events.App.Start(map[string]interface{}{
				"command": cmd.Name(),
				"args":    args,
			})
			return nil
		},
	}
	flags := root.PersistentFlags()
	flags.String("log-file", "", "path to log file")
	flags.Bool("trace", false, "enable verbose structured logging")
	flags.Duration("timeout", generator.DefaultTimeout, "timeout for network requests")
	flags.BoolP("verbose", "v", false, "report filesystem errors on stderr")

	root.AddCommand(
		newSearchCmd(cfg),
		newGitReposCmd(cfg),
		newBookmarksCmd(cfg),
		newPullRequestsCmd(cfg),
		newShowCmd(),
	)
	return root
}

// runStage executes one generator stage against the command's streams.
func runStage(cmd *cobra.Command, cfg *settings, aug generator.Augmenter) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if timeout := cfg.Duration("timeout"); timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	in := cmd.InOrStdin()
	return generator.Run(ctx, generator.Stdio{
		In:           in,
		InIsTerminal: stdinIsTerminal(in),
		Out:          cmd.OutOrStdout(),
		Err:          cmd.ErrOrStderr(),
	}, aug)
}

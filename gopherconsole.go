// This file is part of Gopherconsole.
//
// Gopherconsole is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopherconsole is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopherconsole.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"

	"github.com/jetsetilly/gopherconsole/config"
	"github.com/jetsetilly/gopherconsole/paths"
	"github.com/jetsetilly/gopherconsole/prefs"
	"github.com/jetsetilly/gopherconsole/sdlinput"
	"github.com/jetsetilly/gopherconsole/session"
	"github.com/jetsetilly/gopherconsole/statsview"
	"github.com/jetsetilly/gopherconsole/terminal"
	"github.com/jetsetilly/gopherconsole/terminal/colorterm"
	"github.com/jetsetilly/gopherconsole/terminal/linerterm"
	"github.com/jetsetilly/gopherconsole/terminal/plainterm"
	"github.com/jetsetilly/gopherconsole/version"
	"github.com/spf13/cobra"
)

// the name of the prefs file in the resource directory when the config file
// does not name one.
const defaultPrefsFile = "prefs"

// options shared by all commands.
type options struct {
	configFile string
	terminal   string
	prefs      string
	log        bool
	statsview  bool
}

func init() {
	// SDL requires that events are serviced on the main thread
	runtime.LockOSThread()
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "* error: %v\n", err)
		os.Exit(10)
	}
}

func newRootCommand() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "gopherconsole",
		Short: "An interactive command console",
		Long: `Gopherconsole is an interactive command console. Commands are read from
the terminal, from script files, from key bindings and from remote clients.

Commands are defined by the configuration file and by the builtin commands.
Type "help" in the console for a list of commands.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(cmd.Context(), opts, args, false)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&opts.configFile, "config", "", "configuration file (toml or yaml)")
	pf.StringVar(&opts.terminal, "terminal", "", "terminal type: plain, color or liner")
	pf.StringVar(&opts.prefs, "prefs", "", "set variables for this session only (eg. 'volume::5; name::foo')")
	pf.BoolVar(&opts.log, "log", false, "echo log entries to the terminal")
	pf.BoolVar(&opts.statsview, "statsview", false, "launch the runtime statistics server")

	root.AddCommand(
		&cobra.Command{
			Use:   "run [script...]",
			Short: "Run an interactive console session",
			Long:  "Run an interactive console session. Scripts are executed after the autoexec scripts.",
			RunE: func(cmd *cobra.Command, args []string) error {
				return runInteractive(cmd.Context(), opts, args, false)
			},
		},
		&cobra.Command{
			Use:   "play [script...]",
			Short: "Run an interactive console session with a window for key bindings",
			RunE: func(cmd *cobra.Command, args []string) error {
				return runInteractive(cmd.Context(), opts, args, true)
			},
		},
		newExecCommand(opts),
		&cobra.Command{
			Use:   "version",
			Short: "Print version information",
			Args:  cobra.NoArgs,
			Run: func(cmd *cobra.Command, _ []string) {
				v, r, _ := version.Version()
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", version.ApplicationName, v)
				fmt.Fprintf(cmd.OutOrStdout(), "%s\n", r)
			},
		},
	)

	return root
}

func newExecCommand(opts *options) *cobra.Command {
	var lines []string

	cmd := &cobra.Command{
		Use:   "exec [script...]",
		Short: "Execute scripts and commands without an interactive session",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}

			sess, err := session.NewSession(cfg, plainterm.NewPlainTerminal(nil, nil))
			if err != nil {
				return err
			}
			if opts.log {
				sess.EchoLog()
			}

			return sess.RunScripts(args, lines)
		},
	}

	cmd.Flags().StringArrayVarP(&lines, "execute", "e", nil, "command line to execute after the scripts (repeatable)")

	return cmd
}

func loadConfig(opts *options) (config.Config, error) {
	cfg := config.Default()

	if opts.configFile != "" {
		var err error
		cfg, err = config.Load(opts.configFile)
		if err != nil {
			return config.Config{}, err
		}
	}

	if opts.terminal != "" {
		cfg.Terminal = opts.terminal
	}

	if cfg.Prefs == "" {
		var err error
		cfg.Prefs, err = paths.ResourcePath("", defaultPrefsFile)
		if err != nil {
			return config.Config{}, err
		}
	}

	if opts.prefs != "" {
		prefs.PushCommandLineStack(opts.prefs)
	}

	return cfg, cfg.Validate()
}

func newTerminal(typ string) terminal.Terminal {
	switch typ {
	case config.TerminalPlain:
		return plainterm.NewPlainTerminal(nil, nil)
	case config.TerminalLiner:
		return linerterm.NewLinerTerminal()
	}
	return colorterm.NewColorTerminal(os.Stdin, os.Stdout)
}

func runInteractive(ctx context.Context, opts *options, scripts []string, window bool) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}
	cfg.Autoexec = append(cfg.Autoexec, scripts...)

	term := newTerminal(cfg.Terminal)

	sess, err := session.NewSession(cfg, term)
	if err != nil {
		return err
	}
	if opts.log {
		sess.EchoLog()
	}

	if opts.statsview {
		stop := statsview.Launch("", func(s string) {
			term.TermPrintLine(terminal.StyleFeedback, s)
		})
		defer stop()
	}

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt)
	defer cancel()

	if !window {
		return sess.Run(ctx)
	}

	wnd, err := sdlinput.NewWindow(version.ApplicationName, sess)
	if err != nil {
		return err
	}
	defer wnd.Destroy()

	done := make(chan error, 1)
	go func() {
		done <- sess.Run(ctx)
		cancel()
	}()

	// the window must be serviced by the main thread
	wnd.Service(ctx)
	cancel()

	return <-done
}

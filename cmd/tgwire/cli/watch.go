package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/fatih/color"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

var watchTarget string

var watchCmd = &cobra.Command{
	Use:   "watch <file>",
	Short: "Re-decode a payload, or re-run a suite, every time it is saved",
	Long: `Watch a file and decode it again whenever it changes.

A .yaml or .yml file is run as a suite (see "tgwire check"); the suite is
re-run when any file next to it changes, so editing a fixture is picked
up too. Any other file is decoded as the --target payload.

Stop with Ctrl-C.`,
	Example: `  tgwire watch -t message message.json
  tgwire watch testdata/suite.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		path := args[0]
		run, err := watchAction(cmd.OutOrStdout(), path)
		if err != nil {
			return err
		}
		run()
		return watchFile(ctx, path, isSuite(path), run)
	},
}

func init() {
	watchCmd.Flags().StringVarP(&watchTarget, "target", "t", "update", "What the payload holds")
}

func isSuite(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

// watchAction returns what to run on every change of path. Failures are
// printed, not returned, so the watch keeps going.
func watchAction(w io.Writer, path string) (func(), error) {
	bold := color.New(color.Bold)
	red := color.New(color.FgRed)

	if isSuite(path) {
		return func() {
			bold.Fprintf(w, "--- %s\n", path)
			s, err := LoadSuite(path)
			if err != nil {
				red.Fprintln(w, err)
				return
			}
			s.Run().Print(w)
		}, nil
	}

	tgt, err := lookupTarget(watchTarget)
	if err != nil {
		return nil, err
	}
	return func() {
		bold.Fprintf(w, "--- %s\n", path)
		data, err := os.ReadFile(path)
		if err != nil {
			red.Fprintln(w, err)
			return
		}
		_ = printDecode(w, tgt, data, false)
	}, nil
}

// watchFile calls onChange each time path is written or re-created, or,
// with anyInDir, when any file in its directory is. It returns nil when
// ctx is done.
//
// The directory is watched rather than the file: editors that save by
// renaming a temp file over the original would otherwise drop the watch.
func watchFile(ctx context.Context, path string, anyInDir bool, onChange func()) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if _, err := os.Stat(abs); err != nil {
		return err
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("start watcher: %w", err)
	}
	defer func() {
		_ = w.Close()
	}()
	if err := w.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}
	logger.Debug("watching", "path", abs, "dir", anyInDir)

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if !anyInDir && filepath.Clean(ev.Name) != abs {
				continue
			}
			logger.Debug("change", "file", ev.Name, "op", ev.Op.String())
			onChange()
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error", "error", err)
		}
	}
}

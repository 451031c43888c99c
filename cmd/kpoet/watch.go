package main

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/syssam/kpoet/compiler/gen"
	"github.com/syssam/kpoet/compiler/load"
)

func newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch [flags] <path> [path...]",
		Short: "Render declaration files and render them again whenever they change",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runWatch,
	}
	addOutputFlags(cmd)
	cmd.Flags().Duration("debounce", 200*time.Millisecond, "quiet period before rendering again")
	return cmd
}

func runWatch(cmd *cobra.Command, args []string) error {
	opts, err := options(cmd, true)
	if err != nil {
		return err
	}
	cfg, err := gen.NewConfig(opts...)
	if err != nil {
		return err
	}
	g, err := gen.NewGenerator(cfg)
	if err != nil {
		return err
	}
	debounce, _ := cmd.Flags().GetDuration("debounce")
	w := &watcher{
		paths:    args,
		gen:      g,
		log:      logger(cmd),
		debounce: debounce,
	}
	return w.run(cmd.Context())
}

// watcher renders the watched paths on start and after every change.
type watcher struct {
	paths    []string
	gen      *gen.Generator
	log      *slog.Logger
	debounce time.Duration
}

func (w *watcher) run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: creating watcher: %w", err)
	}
	defer fw.Close()
	for _, p := range w.paths {
		dirs, err := watchDirs(p)
		if err != nil {
			return fmt.Errorf("watch: %w", err)
		}
		for _, d := range dirs {
			if err := fw.Add(d); err != nil {
				return fmt.Errorf("watch: adding %s: %w", d, err)
			}
		}
	}
	w.render(ctx)

	// A nil channel blocks until the first change arms the timer.
	var fire <-chan time.Time
	var timer *time.Timer
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !isDocument(ev.Name) || !ev.Has(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) {
				continue
			}
			w.log.Debug("declaration changed", "file", ev.Name, "op", ev.Op.String())
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.log.Warn("watch error", "error", err)
		case <-fire:
			fire = nil
			w.render(ctx)
		}
	}
}

// render loads and generates every watched file. Failures are logged so
// that the next change can fix them.
func (w *watcher) render(ctx context.Context) {
	paths, err := expand(w.paths)
	if err != nil {
		w.log.Error("listing declarations failed", "error", err)
		return
	}
	files, err := load.LoadFiles(paths...)
	if err != nil {
		w.log.Error("loading declarations failed", "error", err)
		return
	}
	if err := w.gen.Generate(ctx, files...); err != nil {
		w.log.Error("generation failed", "error", err)
	}
}

// watchDirs returns the directories to watch for path: a directory and its
// subdirectories, or the directory holding a file. Editors replace files on
// save, so single files are watched through their directory.
func watchDirs(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{filepath.Dir(path)}, nil
	}
	var dirs []string
	err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			dirs = append(dirs, p)
		}
		return nil
	})
	return dirs, err
}

package cli

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/syssam/specgen/compiler/gen"
	"github.com/syssam/specgen/compiler/load"
)

// DefaultDebounce is the quiet period before a change triggers generation.
const DefaultDebounce = 200 * time.Millisecond

// WatchOptions holds the flags of the watch command.
type WatchOptions struct {
	GenerateOptions
	Debounce time.Duration
}

// NewWatchCommand creates the watch command.
func NewWatchCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &WatchOptions{}
	cmd := &cobra.Command{
		Use:   "watch [packages]",
		Short: "Regenerate the specification files on change",
		Long: `Generate the specification files, then watch the directories of the
entities and regenerate whenever a Go source or descriptor file changes.
Generated files are ignored. Stop with Ctrl-C.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd, rootOpts, opts, args)
		},
	}
	opts.GenerateOptions.register(cmd)
	cmd.Flags().DurationVar(&opts.Debounce, "debounce", DefaultDebounce, "quiet period before regenerating")
	return cmd
}

func runWatch(cmd *cobra.Command, rootOpts *RootOptions, opts *WatchOptions, patterns []string) error {
	cfg, err := rootOpts.config(opts.options()...)
	if err != nil {
		return err
	}
	build := func(ctx context.Context) ([]string, error) {
		es, err := entities(ctx, cfg, opts.Descriptors, patterns)
		if err != nil {
			return nil, err
		}
		dirs := make([]string, 0, len(es)+len(opts.Descriptors))
		for _, path := range opts.Descriptors {
			dirs = append(dirs, filepath.Dir(path))
		}
		dirs = append(dirs, entityDirs(es)...)
		g := gen.NewGenerator(cfg)
		if err := g.Generate(ctx, es); err != nil {
			return dirs, err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "generated %d file(s)\n", g.Metrics().FilesGenerated)
		return dirs, nil
	}
	w, err := newWatcher(rootOpts.Logger(), opts.Debounce, build)
	if err != nil {
		return err
	}
	defer w.Close()
	return w.run(cmd.Context())
}

// entityDirs returns the distinct source directories of the entities.
func entityDirs(es []*load.Entity) []string {
	var dirs []string
	for _, e := range es {
		if e.Dir != "" && !slices.Contains(dirs, e.Dir) {
			dirs = append(dirs, e.Dir)
		}
	}
	return dirs
}

// watcher runs a build function once, then again after every burst of
// relevant file changes in the directories the build reports.
type watcher struct {
	fs       *fsnotify.Watcher
	log      *slog.Logger
	debounce time.Duration
	build    func(context.Context) ([]string, error)
	watched  map[string]bool
}

func newWatcher(log *slog.Logger, debounce time.Duration, build func(context.Context) ([]string, error)) (*watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &watcher{
		fs:       fw,
		log:      log,
		debounce: debounce,
		build:    build,
		watched:  make(map[string]bool),
	}, nil
}

// Close releases the file system watcher.
func (w *watcher) Close() error {
	return w.fs.Close()
}

// run blocks until the context is done. It fails only when the first build
// fails without reporting any directory to watch.
func (w *watcher) run(ctx context.Context) error {
	if err := w.rebuild(ctx); err != nil && len(w.watched) == 0 {
		return err
	}
	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.fs.Events:
			if !ok {
				return nil
			}
			if !relevant(ev) {
				continue
			}
			w.log.Debug("change detected", "file", ev.Name, "op", ev.Op.String())
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C
		case err, ok := <-w.fs.Errors:
			if !ok {
				return nil
			}
			w.log.Error("watch error", "error", err)
		case <-fire:
			fire = nil
			_ = w.rebuild(ctx)
		}
	}
}

// rebuild runs the build and starts watching the directories it reports.
// Build errors are logged and returned; watching goes on.
func (w *watcher) rebuild(ctx context.Context) error {
	dirs, err := w.build(ctx)
	for _, dir := range dirs {
		if w.watched[dir] {
			continue
		}
		if err := w.fs.Add(dir); err != nil {
			w.log.Warn("cannot watch directory", "dir", dir, "error", err)
			continue
		}
		w.watched[dir] = true
		w.log.Debug("watching directory", "dir", dir)
	}
	if err != nil {
		w.log.Error("generation failed", "error", err)
	}
	return err
}

// relevant reports if a file event should trigger a build. Generated and
// debug files are ignored so that writing them does not loop.
func relevant(ev fsnotify.Event) bool {
	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Remove) && !ev.Has(fsnotify.Rename) {
		return false
	}
	name := filepath.Base(ev.Name)
	switch {
	case strings.HasPrefix(name, "."), strings.HasSuffix(name, "_spec.go"), strings.HasSuffix(name, "_test.go"):
		return false
	}
	switch filepath.Ext(name) {
	case ".go", ".json", ".yaml", ".yml", ".msgpack", ".mpk":
		return true
	default:
		return false
	}
}

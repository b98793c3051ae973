package cli

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/mvp-joe/pyoutline/internal/discovery"
	"github.com/mvp-joe/pyoutline/internal/watcher"
)

// watchCmd re-prints outlines as files change.
var watchCmd = &cobra.Command{
	Use:   "watch [dir]",
	Short: "Re-print the outline of Python files as they change",
	Long: `Watch a directory (default: the current one) and print the outline of
every Python file that is written or created, after a short quiet period
(watch.debounce_ms). Stop with Ctrl+C.

Example:
  pyoutline watch src`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}

	root, cfg, outliner, err := loadProject(dir)
	if err != nil {
		return err
	}
	defer outliner.Close()

	fd, err := discovery.NewFileDiscovery(root, cfg.Paths.Include, cfg.Paths.Ignore)
	if err != nil {
		return err
	}

	debounce := time.Duration(cfg.Watch.DebounceMs) * time.Millisecond
	fw, err := watcher.NewFileWatcher(root, fd.Matches, fd.ShouldIgnore, debounce)
	if err != nil {
		return err
	}
	defer fw.Stop()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	out := cmd.OutOrStdout()
	if err := fw.Start(ctx, func(files []string) {
		outlineChanged(out, root, outliner, files)
	}); err != nil {
		return err
	}

	log.Printf("Watching %s for changes (Ctrl+C to stop)...", root)
	<-ctx.Done()

	hits, misses := outliner.Stats()
	log.Printf("Stopped watching (cache: %d hits, %d misses)", hits, misses)
	return nil
}

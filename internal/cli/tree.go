package cli

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mvp-joe/pyoutline/internal/config"
	"github.com/mvp-joe/pyoutline/internal/discovery"
	"github.com/mvp-joe/pyoutline/internal/outline"
)

var treeVerbose bool

// treeCmd outlines every Python file under a directory.
var treeCmd = &cobra.Command{
	Use:   "tree [dir]",
	Short: "Outline every Python file under a directory",
	Long: `Outline every Python file under a directory (default: the current one).

Files are selected by paths.include minus paths.ignore from
.pyoutline/config.yml. Each outline is printed under a "# ==> path <=="
banner. Files that fail to outline are reported and skipped; the command
then exits non-zero.

Examples:
  pyoutline tree
  pyoutline tree src --verbose`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runTree,
}

func init() {
	rootCmd.AddCommand(treeCmd)
	treeCmd.Flags().BoolVarP(&treeVerbose, "verbose", "v", false, "Show a progress bar on stderr")
}

func runTree(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}

	root, cfg, outliner, err := loadProject(dir)
	if err != nil {
		return err
	}
	defer outliner.Close()

	var reporter ProgressReporter = noOpProgressReporter{}
	if treeVerbose {
		reporter = NewCLIProgressReporter(cmd.ErrOrStderr())
	}

	failed, err := outlineTree(cmd.OutOrStdout(), root, cfg, outliner, reporter)
	if err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%d file(s) could not be outlined", failed)
	}
	return nil
}

// outlineTree writes the outline of every discovered file to w and returns
// how many files failed.
func outlineTree(w io.Writer, root string, cfg *config.Config, outliner outline.Outliner, reporter ProgressReporter) (int, error) {
	fd, err := discovery.NewFileDiscovery(root, cfg.Paths.Include, cfg.Paths.Ignore)
	if err != nil {
		return 0, fmt.Errorf("failed to compile path patterns: %w", err)
	}

	files, err := fd.Discover()
	if err != nil {
		return 0, fmt.Errorf("failed to discover files: %w", err)
	}
	reporter.OnDiscoveryComplete(len(files))

	failed := 0
	written := 0
	for _, path := range files {
		out, err := outline.File(outliner, path)
		reporter.OnFileProcessed(path)
		if err != nil {
			log.Printf("Warning: %v", err)
			failed++
			continue
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			rel = path
		}
		if written > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, banner(rel))
		fmt.Fprintln(w, out)
		written++
	}

	reporter.OnComplete(len(files)-failed, failed)
	return failed, nil
}

// outlineChanged prints the outline of each changed file, or a note when the
// file is gone.
func outlineChanged(w io.Writer, root string, outliner outline.Outliner, files []string) {
	for _, path := range files {
		rel, err := filepath.Rel(root, path)
		if err != nil {
			rel = path
		}

		if _, err := os.Stat(path); os.IsNotExist(err) {
			log.Printf("%s removed", rel)
			continue
		}

		out, err := outline.File(outliner, path)
		if err != nil {
			log.Printf("Warning: %v", err)
			continue
		}
		fmt.Fprintln(w, banner(rel))
		fmt.Fprintln(w, out)
		fmt.Fprintln(w)
	}
}

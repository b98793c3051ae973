package cli

import (
	"fmt"
	"path/filepath"

	"github.com/mvp-joe/pyoutline/internal/cache"
	"github.com/mvp-joe/pyoutline/internal/config"
	"github.com/mvp-joe/pyoutline/internal/outline"
)

// loadProject loads the configuration rooted at dir and builds the cached
// outliner the long-running commands share.
func loadProject(dir string) (string, *config.Config, *cache.Outliner, error) {
	root, err := filepath.Abs(dir)
	if err != nil {
		return "", nil, nil, fmt.Errorf("failed to resolve %s: %w", dir, err)
	}

	cfg, err := config.LoadConfigFromDir(root)
	if err != nil {
		return "", nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	outliner, err := cache.NewOutliner(outline.New(), cfg.Cache.MaxEntries)
	if err != nil {
		return "", nil, nil, err
	}

	return root, cfg, outliner, nil
}

// banner heads each file in multi-file output.
func banner(relPath string) string {
	return fmt.Sprintf("# ==> %s <==", filepath.ToSlash(relPath))
}

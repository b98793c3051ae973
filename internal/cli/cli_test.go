package cli

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvp-joe/pyoutline/internal/config"
	"github.com/mvp-joe/pyoutline/internal/outline"
)

// Test Plan for CLI:
// - Root command prints the outline of one file
// - Root command fails on a syntax error and on a missing file
// - version prints the build information
// - outlineTree prints every matching file under a banner, sorted
// - outlineTree skips and counts files that fail
// - outlineTree honors ignore patterns
// - outlineChanged prints changed files and skips removed ones
// - banner uses forward slashes
//
// Commands share the global rootCmd, so these tests do not run in parallel.

const stub = `"(implementation not shown)"`

type recordingReporter struct {
	discovered int
	processed  []string
	done       [2]int
}

func (r *recordingReporter) OnDiscoveryComplete(files int)    { r.discovered = files }
func (r *recordingReporter) OnFileProcessed(fileName string)  { r.processed = append(r.processed, fileName) }
func (r *recordingReporter) OnComplete(processed, failed int) { r.done = [2]int{processed, failed} }

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return out.String(), err
}

func TestRootCommand_OutlinesFile(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		"mod.py": "\"\"\"Doc.\"\"\"\nimport os\n\ndef f(x):\n    return x\n",
	})

	out, err := execute(t, filepath.Join(root, "mod.py"))
	require.NoError(t, err)
	assert.Equal(t, "\"\"\"Doc.\"\"\"\n\ndef f(x):\n    "+stub+"\n", out)
}

func TestRootCommand_Errors(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		"bad.py": "def f(:\n",
	})

	_, err := execute(t, filepath.Join(root, "bad.py"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid syntax")

	_, err = execute(t, filepath.Join(root, "missing.py"))
	assert.Error(t, err)
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "pyoutline "+Version)
	assert.Contains(t, out, "Git commit: "+GitCommit)
}

func TestOutlineTree(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		"b.py":             "def b():\n    pass\n",
		"pkg/a.py":         "class A:\n    def m(self):\n        pass\n",
		"pkg/broken.py":    "def broken(:\n",
		"notes.txt":        "def skipped():\n    pass\n",
		".venv/lib/dep.py": "def dep():\n    pass\n",
	})

	var out bytes.Buffer
	reporter := &recordingReporter{}
	failed, err := outlineTree(&out, root, config.Default(), outline.New(), reporter)
	require.NoError(t, err)

	assert.Equal(t, 1, failed)
	assert.Equal(t, 3, reporter.discovered)
	assert.Len(t, reporter.processed, 3)
	assert.Equal(t, [2]int{2, 1}, reporter.done)

	want := "# ==> b.py <==\n" +
		"def b():\n    " + stub + "\n" +
		"\n" +
		"# ==> pkg/a.py <==\n" +
		"class A:\n\n    def m(self):\n        " + stub + "\n"
	assert.Equal(t, want, out.String())
}

func TestOutlineTree_IgnorePatterns(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		"keep.py":           "def keep():\n    pass\n",
		"tests/test_x.py":   "def test_x():\n    pass\n",
		"generated/pb2.pyi": "def stub(): ...\n",
	})

	cfg := config.Default()
	cfg.Paths.Ignore = append(cfg.Paths.Ignore, "tests/**", "generated/**")

	var out bytes.Buffer
	failed, err := outlineTree(&out, root, cfg, outline.New(), noOpProgressReporter{})
	require.NoError(t, err)
	assert.Zero(t, failed)
	assert.Equal(t, "# ==> keep.py <==\ndef keep():\n    "+stub+"\n", out.String())
}

func TestOutlineTree_InvalidPattern(t *testing.T) {
	cfg := config.Default()
	cfg.Paths.Include = []string{"[unclosed"}

	_, err := outlineTree(&bytes.Buffer{}, t.TempDir(), cfg, outline.New(), noOpProgressReporter{})
	assert.Error(t, err)
}

func TestOutlineChanged(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		"mod.py": "def f():\n    pass\n",
	})

	var out bytes.Buffer
	outlineChanged(&out, root, outline.New(), []string{
		filepath.Join(root, "gone.py"),
		filepath.Join(root, "mod.py"),
	})
	assert.Equal(t, "# ==> mod.py <==\ndef f():\n    "+stub+"\n\n", out.String())
}

func TestBanner(t *testing.T) {
	assert.Equal(t, "# ==> pkg/mod.py <==", banner(filepath.Join("pkg", "mod.py")))
}

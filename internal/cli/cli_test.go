package cli_test

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/board"
	"github.com/katalvlaran/gridpath/internal/cli"
)

const ringBoard = `
layout:
  - "S.."
  - ".#."
  - "..T"
`

// run executes the command tree with args and returns stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := cli.BuildCLI()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestSolve_Text(t *testing.T) {
	file := writeFile(t, "ring.yaml", ringBoard)

	out, _, err := run(t, "solve", "-f", file)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "S..\n*#.\n**T\n"), out)
	assert.Contains(t, out, "path found: 4 steps")

	out, _, err = run(t, "solve", "-f", file, "--visits")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Soo\n*#o\n**T\n"), out)
}

func TestSolve_HCLNoPath(t *testing.T) {
	file := writeFile(t, "wall.hcl", `
layout = [
  "S#.",
  "##.",
  "..T",
]
`)
	out, _, err := run(t, "solve", "--file", file)
	require.NoError(t, err)
	assert.Contains(t, out, "no path exists: 1 cells dequeued, board has 2 open regions")
}

func TestSolve_Errors(t *testing.T) {
	_, _, err := run(t, "solve")
	assert.Error(t, err, "--file is required")

	_, _, err = run(t, "solve", "-f", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, _, err = run(t, "solve", "-f", writeFile(t, "b.txt", ringBoard))
	assert.ErrorIs(t, err, board.ErrUnknownFormat)

	_, _, err = run(t, "--log-level", "loud", "solve", "-f", writeFile(t, "r.yaml", ringBoard))
	assert.ErrorContains(t, err, "log level")
}

func TestSolve_PNG(t *testing.T) {
	file := writeFile(t, "ring.yaml", ringBoard)
	img := filepath.Join(t.TempDir(), "ring.png")

	_, stderr, err := run(t, "--log-level", "debug", "solve", "-f", file, "--png", img, "--cell-pixels", "10")
	require.NoError(t, err)
	assert.Contains(t, stderr, "image written")
	assert.Contains(t, stderr, "component=pathfinder")

	f, err := os.Open(img)
	require.NoError(t, err)
	defer f.Close()
	decoded, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 30, decoded.Bounds().Dx())
	assert.Equal(t, 30, decoded.Bounds().Dy())
}

func TestConfigFile(t *testing.T) {
	conf := writeFile(t, "gridpath.yaml", `
log_level: warn
search:
  strict_visits: true
render:
  cell_pixels: 8
metrics:
  enabled: true
  port: 0
`)
	file := writeFile(t, "ring.yaml", ringBoard)
	img := filepath.Join(t.TempDir(), "ring.png")

	out, stderr, err := run(t, "-c", conf, "solve", "-f", file, "--png", img)
	require.NoError(t, err)
	assert.Contains(t, out, "path found: 4 steps")
	assert.NotContains(t, stderr, "search finished", "info records are below warn")

	f, err := os.Open(img)
	require.NoError(t, err)
	defer f.Close()
	decoded, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 24, decoded.Bounds().Dx())

	_, _, err = run(t, "-c", writeFile(t, "bad.yaml", "colour: red\n"), "version")
	assert.ErrorContains(t, err, "parse config")
}

func TestLoadConfig(t *testing.T) {
	cfg, err := cli.LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, cli.DefaultConfig(), cfg)

	cfg, err = cli.LoadConfig(writeFile(t, "empty.yaml", ""))
	require.NoError(t, err)
	assert.Equal(t, cli.DefaultConfig(), cfg)

	cfg, err = cli.LoadConfig(writeFile(t, "part.yaml", "render:\n  cell_pixels: 12\n"))
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.Render.CellPixels)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestRandom_Deterministic(t *testing.T) {
	a, _, err := run(t, "random", "--size", "12", "--seed", "42", "--density", "0.2")
	require.NoError(t, err)
	b, _, err := run(t, "random", "--size", "12", "--seed", "42", "--density", "0.2")
	require.NoError(t, err)
	assert.Equal(t, a, b)

	lines := strings.Split(strings.TrimSpace(a), "\n")
	require.Len(t, lines, 13)
	assert.Equal(t, 1, strings.Count(a, "S"))
	assert.Equal(t, 1, strings.Count(a, "T"))
}

func TestRandom_Save(t *testing.T) {
	saved := filepath.Join(t.TempDir(), "board.yaml")
	first, _, err := run(t, "random", "--size", "8", "--seed", "5", "--save", saved)
	require.NoError(t, err)

	again, _, err := run(t, "solve", "-f", saved)
	require.NoError(t, err)
	assert.Equal(t, first, again, "a saved board solves the same way")
}

func TestRandom_Errors(t *testing.T) {
	_, _, err := run(t, "random", "--size", "0")
	assert.Error(t, err)
	_, _, err = run(t, "random", "--size", "1")
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "gridpath "+cli.Version+"\n", out)
}

package main

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/basins/basin"
	"github.com/katalvlaran/basins/heightmap"
	"github.com/katalvlaran/basins/internal/config"
)

const sample = `2199943210
3987894921
9856789892
8767896789
9899965678
`

func init() {
	log.SetOutput(io.Discard)
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// TestRun_TextFromFile prints both parts for the sample map.
func TestRun_TextFromFile(t *testing.T) {
	path := writeFile(t, "input.txt", sample)
	var out bytes.Buffer
	require.NoError(t, run([]string{"-input", path}, nil, &out))
	assert.Equal(t, "Part 1: 15\nPart 2: 1134\n", out.String())
}

// TestRun_YAML emits a YAML report tagged with a run id.
func TestRun_YAML(t *testing.T) {
	path := writeFile(t, "input.txt", sample)
	var out bytes.Buffer
	err := run([]string{"-input", path, "-format", "yaml"}, nil, &out)
	require.NoError(t, err)

	var doc struct {
		RunID      string           `yaml:"runId"`
		Input      string           `yaml:"input"`
		RiskSum    int              `yaml:"riskSum"`
		Sizes      []int            `yaml:"basinSizes"`
		TopProduct int              `yaml:"topProduct"`
		LowPoints  []basin.LowPoint `yaml:"lowPoints"`
	}
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &doc), out.String())
	_, err = uuid.Parse(doc.RunID)
	assert.NoError(t, err)
	assert.Equal(t, path, doc.Input)
	assert.Equal(t, 15, doc.RiskSum)
	assert.Equal(t, []int{14, 9, 9, 3}, doc.Sizes)
	assert.Equal(t, 1134, doc.TopProduct)
	require.Len(t, doc.LowPoints, 4)
	assert.Equal(t, heightmap.Point{X: 9, Y: 0}, doc.LowPoints[1].Pos)
}

// TestRun_ConfigFile reads settings from YAML and lets flags override them.
func TestRun_ConfigFile(t *testing.T) {
	input := writeFile(t, "input.txt", sample)
	cfgPath := writeFile(t, "basins.yaml", "input: "+input+"\ntopK: 2\nformat: yaml\n")

	var out bytes.Buffer
	require.NoError(t, run([]string{"-config", cfgPath, "-format", "text"}, nil, &out))
	assert.Equal(t, "Part 1: 15\nPart 2: 126\n", out.String())
}

// TestRun_Stdin reads the map from standard input.
func TestRun_Stdin(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run([]string{"-input", "-", "-v"}, strings.NewReader(sample), &out))
	assert.Equal(t, "Part 1: 15\nPart 2: 1134\n", out.String())
}

// TestRun_InsufficientBasins still prints the risk sum before failing.
func TestRun_InsufficientBasins(t *testing.T) {
	var out bytes.Buffer
	err := run([]string{"-input", "-"}, strings.NewReader("19\n99\n"), &out)
	require.ErrorIs(t, err, basin.ErrInsufficientBasins)
	assert.Equal(t, "Part 1: 2\n", out.String())
}

// TestRun_Errors covers bad flags, bad config values and malformed input.
func TestRun_Errors(t *testing.T) {
	var out bytes.Buffer

	err := run([]string{"-format", "json"}, nil, &out)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	err = run([]string{"-input", "-"}, strings.NewReader("12\n3x\n"), &out)
	assert.ErrorIs(t, err, heightmap.ErrInvalidHeight)

	err = run([]string{"-input", filepath.Join(t.TempDir(), "missing.txt")}, nil, &out)
	assert.ErrorIs(t, err, os.ErrNotExist)

	err = run([]string{"-no-such-flag"}, nil, &out)
	assert.Error(t, err)
}

// failWriter rejects every write.
type failWriter struct{ err error }

func (w failWriter) Write([]byte) (int, error) { return 0, w.err }

// TestRun_WriteError surfaces output failures in both formats.
func TestRun_WriteError(t *testing.T) {
	boom := errors.New("disk full")
	for _, format := range []string{config.FormatText, config.FormatYAML} {
		err := run([]string{"-input", "-", "-format", format}, strings.NewReader(sample), failWriter{boom})
		assert.ErrorIs(t, err, boom, format)
	}
}

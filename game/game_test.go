package game

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateReplayFilename(t *testing.T) {
	when := time.Date(2021, 3, 4, 5, 6, 7, 0, time.UTC)
	config := NewGameConfig()

	tests := []struct {
		name     string
		play     func(*Board)
		expected string
	}{
		{"ongoing", func(*Board) {}, "20210304_050607_other.yaml"},
		{"lost", func(b *Board) { b.Reveal(0, 0) }, "20210304_050607_loss.yaml"},
		{"won", func(b *Board) { b.Reveal(1, 1); b.ToggleFlag(0, 0) }, "20210304_050607_win.yaml"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			board := newLayoutBoard(t, "*.", "..")
			test.play(board)
			assert.Equal(t, test.expected, config.generateReplayFilename(board, when))
		})
	}
}

func TestRun(t *testing.T) {
	config := NewGameConfig()
	config.Snapshot = layoutSnapshot(
		"...",
		"...",
		"..*",
	)
	config.LoadSnapshotFresh = false
	config.SavedSnapshotsDir = filepath.Join(t.TempDir(), "snapshots")

	in := strings.NewReader(strings.Join([]string{
		"r 0 0",
		"d 1 1",
		"f 9 9",
		"r one 1",
		"r 1",
		"",
		"bogus",
		"r 2 2",
		"q",
		"r 0 0",
	}, "\n"))
	var out bytes.Buffer

	require.NoError(t, Run(config, in, &out))
	output := out.String()

	assert.Contains(t, output, "# # #\n# # #\n# # #\nflags 0/1  cleared 0%\n")
	assert.Contains(t, output, ". . .\n. 1 1\n. 1 #\nflags 0/1  cleared 100%\n")
	assert.Contains(t, output, "empty tile\n1 mine nearby\ndiscovered\n")
	assert.Contains(t, output, "(9, 9) is outside of the 3x3 board")
	assert.Contains(t, output, `invalid row "one"`)
	assert.Contains(t, output, "expected a row and a column")
	assert.Contains(t, output, helpText)
	assert.Contains(t, output, "mine!\n")
	assert.True(t, strings.HasSuffix(output, "flags 0/1  cleared 100%  game over\n"))

	entries, err := os.ReadDir(config.SavedSnapshotsDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, strings.HasSuffix(entries[0].Name(), "_loss.yaml"))

	saved, err := os.ReadFile(filepath.Join(config.SavedSnapshotsDir, entries[0].Name()))
	require.NoError(t, err)
	snapshot, err := LoadSnapshot(string(saved))
	require.NoError(t, err)
	assert.Equal(t, "lost", snapshot.State)
	assert.Equal(t, 8, snapshot.Discovered)
}

func TestRunSnapshotCommand(t *testing.T) {
	config := NewGameConfig()
	config.Snapshot = layoutSnapshot("*.", "..")
	config.LoadSnapshotFresh = false

	var out bytes.Buffer
	require.NoError(t, Run(config, strings.NewReader("r 1 1\ns\n"), &out))

	output := out.String()
	assert.Contains(t, output, "seed: 1\n")
	assert.Contains(t, output, "*#.#")
	assert.Contains(t, output, ".#._")
}

func TestRunNewGame(t *testing.T) {
	config := NewGameConfig()
	config.Width, config.Height, config.NumMines = 5, 4, 3
	config.Seed = 1

	var out bytes.Buffer
	require.NoError(t, Run(config, strings.NewReader("r 2 2\nn\n"), &out))

	assert.Equal(t, 2, strings.Count(out.String(), "# # # # #\n# # # # #\n# # # # #\n# # # # #\n"))
}

func TestRunNewGameAfterSnapshot(t *testing.T) {
	config := NewGameConfig()
	config.Snapshot = layoutSnapshot(
		"....",
		"....",
		"....",
		"...*",
	)

	var out bytes.Buffer
	require.NoError(t, Run(config, strings.NewReader("s\nn\ns\n"), &out))
	output := out.String()

	first := strings.Index(output, "generated: true")
	second := strings.Index(output, "generated: false")
	require.NotEqual(t, -1, first)
	require.NotEqual(t, -1, second)
	assert.Less(t, first, second)
	assert.Contains(t, output[second:], "mines: 1\n")
	assert.Equal(t, 2, strings.Count(output, "# # # #\n# # # #\n# # # #\n# # # #\n"))
}

func TestRunInvalidConfig(t *testing.T) {
	config := NewGameConfig()
	config.Width = 0

	err := Run(config, strings.NewReader(""), &bytes.Buffer{})
	assert.Equal(t, ErrInvalidConfig, errors.Cause(err))
}

type scriptedDirector struct {
	actions []CellAction
	inits   int
	ends    int
}

func (director *scriptedDirector) Init(*Board) {
	director.inits++
}

func (director *scriptedDirector) Act() (CellAction, bool) {
	if len(director.actions) == 0 {
		return CellAction{}, false
	}
	action := director.actions[0]
	director.actions = director.actions[1:]
	return action, true
}

func (director *scriptedDirector) End() {
	director.ends++
}

func TestRunDirector(t *testing.T) {
	director := &scriptedDirector{actions: []CellAction{
		{X: 0, Y: 0, Action: RevealCell},
		{X: 2, Y: 2, Action: FlagCell},
		{X: 0, Y: 1, Action: RevealCell},
	}}

	config := NewGameConfig()
	config.Snapshot = layoutSnapshot(
		"...",
		"...",
		"..*",
	)
	config.LoadSnapshotFresh = true
	config.Director = director

	var out bytes.Buffer
	require.NoError(t, Run(config, strings.NewReader("q\n"), &out))

	assert.Equal(t, 1, director.inits)
	assert.Equal(t, 1, director.ends)
	// The game was won by the flag, the last action was never asked for
	assert.Len(t, director.actions, 1)
	assert.Equal(t, ". . .\n. 1 1\n. 1 F\nflags 1/1  cleared 100%  you won!\n", out.String())
}

func TestRunDirectorMoveLimit(t *testing.T) {
	director := &scriptedDirector{}
	for i := 0; i < 10; i++ {
		director.actions = append(director.actions, CellAction{X: 1, Y: 1, Action: FlagCell})
	}

	config := NewGameConfig()
	config.Snapshot = layoutSnapshot("*.", "..")
	config.Director = director
	config.MaxDirectorMoves = 3

	require.NoError(t, Run(config, strings.NewReader(""), &bytes.Buffer{}))
	assert.Len(t, director.actions, 7)
}

func TestSaveSnapshotIntoFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0666))

	config := NewGameConfig()
	config.SavedSnapshotsDir = path
	config.saveSnapshot(newLayoutBoard(t, "*."))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "x", string(content))
}

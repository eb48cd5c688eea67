package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/nbtrock"
	"github.com/arloliu/nbtrock/tag"
	"github.com/arloliu/nbtrock/tree"
)

// writeTestFile encodes a small level-like tree into a temp file
func writeTestFile(t *testing.T, framed bool) string {
	t.Helper()

	tr := nbtrock.New("Test")
	require.NoError(t, tr.Set("key", tag.Int(3)))
	require.NoError(t, tr.Set("abilities/flySpeed", tag.Float(0.05)))
	require.NoError(t, tr.Set("abilities/mayfly", tag.Byte(0)))
	require.NoError(t, tr.Set("LevelName", tag.String("My World")))
	require.NoError(t, tr.Set("ids", tag.List{tag.Int(1), tag.Int(2)}))

	data, err := nbtrock.Encode(tr, framed)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "level.dat")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	return path
}

// readTestFile decodes path, reporting whether it is framed
func readTestFile(t *testing.T, path string) (*tree.Tree, bool) {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	tr, err := nbtrock.Decode(data)
	require.NoError(t, err)

	return tr, nbtrock.IsFramed(data)
}

// resetFlags restores every global and command flag to its default
func resetFlags() {
	verbose, quiet, jsonOut, noColor, bigEndian = false, false, false, true, false
	dumpFormat, dumpNoHeader = "text", false
	getFormat = "text"
	setType, setOutput = "String", ""
	rmOutput = ""
	convertFramed, convertToBigEndian = false, false
}

// captureOutput captures stdout while running a function
func captureOutput(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	origStdout := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	done := make(chan []byte)
	go func() {
		var buf bytes.Buffer
		_, _ = buf.ReadFrom(r)
		done <- buf.Bytes()
	}()

	fnErr := fn()

	w.Close()
	os.Stdout = origStdout

	return string(<-done), fnErr
}

package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// The "-h" (help) flag should cause cli.Parse to return `shouldExit=true`.
	args := []string{"-h"}
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}

	// --- Act ---
	// The run function should see `shouldExit=true` and return a nil error.
	err := run(out, errOut, args)

	// --- Assert ---
	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// Providing an unknown flag will cause cli.Parse to return an error.
	args := []string{"--this-is-not-a-valid-flag"}
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}

	// --- Act ---
	// The run function should propagate the error from cli.Parse.
	err := run(out, errOut, args)

	// --- Assert ---
	require.Error(t, err, "run() should return an error when argument parsing fails")
	require.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
	require.Empty(t, out.String(), "parse failures must not leak onto the report stream")
}

func TestRun_ScansDirectoryEndToEnd(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "x.cpp"), []byte("a\nb\nc\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sub", "y.hpp"), []byte("1\n2\n3\n4\n5\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "readme.md"), []byte("skip me\n"), 0o644))

	args := []string{dir}
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}

	// --- Act ---
	err := run(out, errOut, args)

	// --- Assert ---
	require.NoError(t, err)
	require.Contains(t, out.String(), fmt.Sprintf("== Scanning '%s' ==", dir))
	require.Contains(t, out.String(), fmt.Sprintf("%s: 3 lines", filepath.Join(dir, "x.cpp")))
	require.Contains(t, out.String(), fmt.Sprintf("%s: 5 lines", filepath.Join(dir, "sub", "y.hpp")))
	require.NotContains(t, out.String(), "readme.md")
	require.Contains(t, out.String(), fmt.Sprintf("Summary for '%s': .cpp=3 .hpp=5 sum=8", dir))
	require.Empty(t, errOut.String())
}

func TestRun_InvalidRootStillSucceeds(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// A missing root is reported on the error stream but never fails the
	// process; the observed behavior is a zero exit once every root has
	// been attempted.
	missing := filepath.Join(t.TempDir(), "nope")
	args := []string{missing}
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}

	// --- Act ---
	err := run(out, errOut, args)

	// --- Assert ---
	require.NoError(t, err)
	require.Contains(t, errOut.String(), fmt.Sprintf("Error: '%s' is not a directory", missing))
}

/*
File    : sketch/cmd/sketch/root_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureStdout redirects os.Stdout for the duration of fn and returns
// everything written to it.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	r, w, err := os.Pipe()
	require.NoError(t, err)
	orig := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = orig }()

	fn()

	require.NoError(t, w.Close())
	out, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(out)
}

func writeScript(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "prog.sk")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestRunFile_PrintsEvaluatedOutput(t *testing.T) {
	dir := t.TempDir()
	path := writeScript(t, dir, `prepare x as 2 + 3 * 4
print(x)`)

	out := captureStdout(t, func() {
		err := runFile(path)
		require.NoError(t, err)
	})
	assert.Equal(t, "14\n", out)
}

func TestRunFile_MissingFileFails(t *testing.T) {
	err := runFile(filepath.Join(t.TempDir(), "does-not-exist.sk"))
	assert.Error(t, err)
}

func TestRunFile_ParseErrorFails(t *testing.T) {
	dir := t.TempDir()
	path := writeScript(t, dir, `prepare as`)

	err := runFile(path)
	assert.Error(t, err)
}

func TestRunFile_RuntimeErrorFails(t *testing.T) {
	dir := t.TempDir()
	path := writeScript(t, dir, `print(1 / 0)`)

	err := runFile(path)
	assert.Error(t, err)
}

func TestRunFile_DbgWritesTokensAndAST(t *testing.T) {
	dir := t.TempDir()
	path := writeScript(t, dir, `prepare x as 1`)

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer func() { require.NoError(t, os.Chdir(wd)) }()

	dbg = true
	defer func() { dbg = false }()

	captureStdout(t, func() {
		require.NoError(t, runFile(path))
	})

	assert.FileExists(t, filepath.Join(dir, "tokens.txt"))
	assert.FileExists(t, filepath.Join(dir, "ast.txt"))
}

func TestNewRootCmd_NoArgsExitsCleanly(t *testing.T) {
	cmd := NewRootCmd()
	cmd.SetArgs([]string{})
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	assert.NoError(t, cmd.Execute())
}

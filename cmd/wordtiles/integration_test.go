package main

import (
	"context"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/csheth/wordtiles/internal/tuitest"
)

func TestWordTilesDragIntoSentence(t *testing.T) {
	t.Parallel()

	cmdDir := moduleDir(t)
	binary := buildBinary(t, cmdDir)

	// With the default layout the sentence area starts on row 3 and the word
	// bank on row 9; "alpha" occupies columns 2-8 of the bank.
	steps := []tuitest.Step{{Delay: time.Second}}
	steps = append(steps, tuitest.DragSteps(3, 9, 5, 3, 200*time.Millisecond)...)
	steps = append(steps,
		tuitest.Step{Delay: 500 * time.Millisecond, Input: tuitest.KeyQuit},
	)

	rec, err := tuitest.Run(context.Background(), tuitest.Config{
		Command: []string{binary, "-no-alt-screen", "-config", filepath.Join(cmdDir, "testdata", "wordtiles.toml"), "-words", "alpha beta gamma"},
		Dir:     cmdDir,
		Env:     []string{"WORDTILES_LOG="},
		Width:   80,
		Height:  32,
		Steps:   steps,
		Timeout: 8 * time.Second,
	})
	if err != nil {
		t.Fatalf("run CLI: %v", err)
	}

	for _, want := range []string{"Your sentence", "Word bank", "sentence 0  •  bank 3", "sentence 1  •  bank 2"} {
		if !rec.Contains(want) {
			t.Fatalf("session never rendered %q\n---- output ----\n%s", want, rec.PlainText())
		}
	}
}

func moduleDir(t *testing.T) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatalf("runtime caller unavailable")
	}
	return filepath.Dir(file)
}

func buildBinary(t *testing.T, cmdDir string) string {
	t.Helper()
	tmp := t.TempDir()
	name := "wordtiles-integration"
	if runtime.GOOS == "windows" {
		name += ".exe"
	}
	binPath := filepath.Join(tmp, name)
	cmd := exec.Command("go", "build", "-o", binPath, ".")
	cmd.Dir = cmdDir
	if output, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("build CLI: %v\n%s", err, output)
	}
	return binPath
}

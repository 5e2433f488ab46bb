package console

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() { SetOutput(os.Stderr) })
	return &buf
}

func TestPlainOutputWhenNotATerminal(t *testing.T) {
	buf := capture(t)
	Warnf("map %s rejected: %d errors", "start.txt", 2)
	got := buf.String()
	if !strings.Contains(got, "warning: map start.txt rejected: 2 errors") {
		t.Fatalf("output = %q", got)
	}
	if strings.Contains(got, "\x1b[") {
		t.Fatalf("unexpected escape codes in %q", got)
	}
}

func TestFatalfExits(t *testing.T) {
	buf := capture(t)
	code := -1
	exit = func(c int) { code = c }
	defer func() { exit = defaultExit }()

	Fatalf("load %s", "tiles.png")
	if code != 1 {
		t.Fatalf("exit code = %d", code)
	}
	if !strings.Contains(buf.String(), "fatal: load tiles.png") {
		t.Fatalf("output = %q", buf.String())
	}
}

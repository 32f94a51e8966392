package logs

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func withLogger(t *testing.T) {
	t.Helper()
	prev := std
	t.Cleanup(func() { std = prev })
}

func TestParseLevel(t *testing.T) {
	cases := map[string]logrus.Level{
		"debug":   logrus.DebugLevel,
		" WARN ":  logrus.WarnLevel,
		"warning": logrus.WarnLevel,
		"error":   logrus.ErrorLevel,
		"":        logrus.InfoLevel,
		"verbose": logrus.InfoLevel,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestBuildWriter_Unsupported(t *testing.T) {
	if _, err := buildWriter(Options{}, "syslog"); err == nil {
		t.Fatal("expected error for unsupported output")
	}
	if _, err := buildWriter(Options{}, "file"); err == nil {
		t.Fatal("expected error when file output has no path")
	}
}

func TestInit_FileOutput(t *testing.T) {
	withLogger(t)

	path := filepath.Join(t.TempDir(), "logs", "convert.log")
	if err := Init(Options{Level: "debug", Output: "file", File: path}); err != nil {
		t.Fatalf("Init: %v", err)
	}

	ctx := SetLogID(context.Background(), "run-1")
	CtxDebug(ctx, "wrote %s", "SKILL.md")

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	line := string(raw)
	for _, part := range []string{"DEBUG", "run-1", "wrote SKILL.md", "logs/logs_test.go:"} {
		if !strings.Contains(line, part) {
			t.Fatalf("log line %q missing %q", line, part)
		}
	}
	if strings.Contains(line, "\x1b[") {
		t.Fatalf("file output must not contain colour codes: %q", line)
	}
}

func TestLevelFilter(t *testing.T) {
	withLogger(t)

	var buf bytes.Buffer
	std = newLogger(&buf)
	std.SetFormatter(&lineFormatter{})
	std.SetLevel(logrus.WarnLevel)

	CtxInfo(context.Background(), "hidden")
	Warn("shown %d", 1)

	out := buf.String()
	if strings.Contains(out, "hidden") || !strings.Contains(out, "WARNING") || !strings.Contains(out, "shown 1") {
		t.Fatalf("output = %q", out)
	}
}

func TestTeeWriter_StripsColour(t *testing.T) {
	var console, file bytes.Buffer
	w := &teeWriter{console: &console, file: &file}
	if _, err := w.Write([]byte("\x1b[32mINFO\x1b[0m done")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if file.String() != "INFO done" || !strings.Contains(console.String(), "\x1b[32m") {
		t.Fatalf("console=%q file=%q", console.String(), file.String())
	}
}

func TestLogID_RoundTrip(t *testing.T) {
	id := NewLogID()
	if id == "" {
		t.Fatal("NewLogID returned empty id")
	}
	ctx := SetLogID(context.Background(), id)
	if got := GetLogID(ctx); got != id {
		t.Fatalf("GetLogID = %q, want %q", got, id)
	}
	if got := GetLogID(context.Background()); got != "" {
		t.Fatalf("GetLogID without id = %q", got)
	}
}

func TestShortFilePath(t *testing.T) {
	if got := shortFilePath("/a/b/convert/runner.go"); got != "convert/runner.go" {
		t.Fatalf("shortFilePath = %q", got)
	}
	if got := shortFilePath("runner.go"); got != "runner.go" {
		t.Fatalf("shortFilePath bare = %q", got)
	}
}

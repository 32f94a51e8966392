package logs

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/fatih/color"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	stderr io.Writer = os.Stderr

	ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*m`)
)

func buildWriter(opts Options, output string) (io.Writer, error) {
	switch output {
	case "stderr":
		return stderr, nil
	case "stdout":
		return os.Stdout, nil
	case "file", "both":
		file, err := newRotateWriter(opts)
		if err != nil {
			return nil, err
		}
		if output == "file" {
			return file, nil
		}
		return &teeWriter{console: stderr, file: file}, nil
	default:
		return nil, fmt.Errorf("unsupported log output: %s", output)
	}
}

// teeWriter copies console lines into the log file without colour codes.
type teeWriter struct {
	console io.Writer
	file    io.Writer
}

func (w *teeWriter) Write(p []byte) (int, error) {
	if _, err := w.console.Write(p); err != nil {
		return 0, err
	}
	if _, err := w.file.Write(stripANSI(p)); err != nil {
		return 0, err
	}
	return len(p), nil
}

func newRotateWriter(opts Options) (io.Writer, error) {
	if strings.TrimSpace(opts.File) == "" {
		return nil, fmt.Errorf("log file is required when output includes file")
	}
	if dir := filepath.Dir(opts.File); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create log dir failed: %w", err)
		}
	}

	maxSize := opts.MaxSize
	if maxSize <= 0 {
		maxSize = 100
	}
	return &lumberjack.Logger{
		Filename:   opts.File,
		MaxSize:    maxSize,
		MaxBackups: max(opts.MaxBackups, 0),
		MaxAge:     max(opts.MaxAge, 0),
		Compress:   opts.Compress,
	}, nil
}

func stripANSI(p []byte) []byte {
	return ansiPattern.ReplaceAll(p, nil)
}

// shouldColorize is false for file-only output and for terminals fatih/color
// has already ruled out.
func shouldColorize(output string) bool {
	return output != "file" && !color.NoColor
}

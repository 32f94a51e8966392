package logs

import (
	"bytes"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
)

var levelColors = map[logrus.Level]*color.Color{
	logrus.DebugLevel: color.New(color.FgCyan),
	logrus.InfoLevel:  color.New(color.FgGreen),
	logrus.WarnLevel:  color.New(color.FgYellow),
	logrus.ErrorLevel: color.New(color.FgRed),
}

// lineFormatter renders "LEVEL time dir/file.go:line logid message".
type lineFormatter struct {
	color bool
}

func (f *lineFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	level := strings.ToUpper(entry.Level.String())
	if c, ok := levelColors[entry.Level]; ok && f.color {
		level = c.Sprint(level)
	}

	caller, _ := entry.Data[callerField].(string)

	var buf bytes.Buffer
	buf.WriteString(level)
	buf.WriteByte(' ')
	buf.WriteString(entry.Time.Format("2006-01-02 15:04:05,000"))
	buf.WriteByte(' ')
	buf.WriteString(caller)
	if id := GetLogID(entry.Context); id != "" {
		buf.WriteByte(' ')
		buf.WriteString(id)
	}
	buf.WriteByte(' ')
	buf.WriteString(entry.Message)
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// shortFilePath keeps the last directory and the file name.
func shortFilePath(fullPath string) string {
	dir, file := filepath.Split(fullPath)
	if dir == "" {
		return file
	}
	return filepath.Base(filepath.Clean(dir)) + "/" + file
}

package dev

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

const defaultLogPath = "pgr.log"

var (
	debugSet  = os.Getenv("PGR_DEBUG")
	debugPath = os.Getenv("PGR_DEBUG_PATH")

	openLogger = sync.OnceValue(func() *log.Logger {
		return newLogger(debugPath)
	})
)

// Enabled reports whether PGR_DEBUG is set
func Enabled() bool {
	return debugSet != ""
}

// newLogger appends to path, or to pgr.log when path is empty. If the file can't be opened the messages are dropped
// rather than taking the terminal down with them
func newLogger(path string) *log.Logger {
	if path == "" {
		path = defaultLogPath
	}
	var w io.Writer = io.Discard
	if f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666); err == nil {
		w = f
	}
	return log.New(w, "", log.Ldate|log.Lmicroseconds)
}

// Debug writes msg to the debug log when PGR_DEBUG is set. The file is opened on first use and kept open
func Debug(msg string) {
	if !Enabled() {
		return
	}
	openLogger().Printf("%q", msg)
}

func DebugUpdateMsg(component string, msg tea.Msg) {
	if !Enabled() {
		return
	}
	Debug("--")
	Debug(fmt.Sprintf("Update %s: %T", component, msg))
	switch msg := msg.(type) {
	case tea.KeyMsg:
		Debug(fmt.Sprintf("  Key: '%v'", msg.String()))
	case tea.WindowSizeMsg:
		Debug(fmt.Sprintf("  Size: %dx%d", msg.Width, msg.Height))
	}
}

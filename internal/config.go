package internal

import (
	"github.com/pgrterm/pgr/internal/keymap"
)

type Config struct {
	KeyMap         keymap.KeyMap
	Contents       string
	Width          int
	Height         int
	HighlightColor string
	AltScreen      bool
	Version        string
}

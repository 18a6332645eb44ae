package internal

import (
	"fmt"

	"github.com/pgrterm/pgr/internal/dev"
	"github.com/pgrterm/pgr/internal/style"
	"github.com/pgrterm/pgr/internal/viewport"
)

func initializedModel(m Model) Model {
	dev.Debug("initializing")
	defer dev.Debug("done initializing")
	dev.Debug("------------")

	dev.Debug(fmt.Sprintf("pgr %s, %d bytes of input, %dx%d", m.config.Version, len(m.config.Contents), m.config.Width, m.config.Height))
	m.styles = style.NewStyles(m.config.HighlightColor)
	m.viewport = viewport.New(m.config.Width, m.config.Height, m.config.Contents)

	// draw the first frame so View has something to show before any message arrives
	return m.render()
}

package loop

import (
	"fmt"
	"time"

	"github.com/tomz197/invaders/internal/draw"
	"github.com/tomz197/invaders/internal/loop/config"
	"github.com/tomz197/invaders/internal/object"
)

// drawFrame draws the current frame.
func (g *Game) drawFrame() error {
	cw := g.chunkWriter
	cw.WriteString("\033[H\033[2J")
	g.canvas.Clear()

	if g.level != nil && (g.gameState == GameStatePlaying || g.gameState == GameStateOver) {
		ctx := object.DrawContext{
			Canvas: g.canvas,
			Writer: cw,
		}
		if err := g.level.Draw(ctx); err != nil {
			return err
		}
	}

	// Render canvas to terminal
	g.canvas.Render(cw)

	// Draw border when terminal exceeds the render area
	g.canvas.RenderBorder(cw)

	// Draw UI overlay
	g.drawUI()

	return cw.Flush()
}

// drawUI draws the scene overlay.
func (g *Game) drawUI() {
	termWidth := g.canvas.TerminalWidth()
	termHeight := g.canvas.TerminalHeight()
	centerX := termWidth / 2
	centerY := termHeight / 2

	if g.gameState == GameStateShutdown {
		g.drawShutdownScreen(centerX, centerY)
		return
	}

	if g.isInactive {
		g.drawInactivityScreen(centerX, centerY)
		return
	}

	switch g.gameState {
	case GameStateStart:
		g.drawStartScreen(centerX, centerY)
	case GameStatePlaying:
		g.drawPlayingHUD(termWidth, termHeight)
	case GameStateOver:
		g.drawOverScreen(centerX, centerY)
	}
}

// drawInactivityScreen draws the inactivity warning screen.
func (g *Game) drawInactivityScreen(centerX, centerY int) {
	cw := g.chunkWriter
	cw.WriteCentered(centerX, centerY-2, "INACTIVITY WARNING")

	msg := fmt.Sprintf(
		"You have been inactive for too long. You will be disconnected in %d seconds.",
		int(config.InactivityDisconnectUser-time.Since(g.lastInput).Seconds()),
	)
	cw.WriteCentered(centerX, centerY, msg)
	cw.WriteCentered(centerX, centerY+2, "Press any key to continue")
}

// drawStartScreen draws the title screen.
func (g *Game) drawStartScreen(centerX, centerY int) {
	// ASCII art title (figlet "small" font)
	titleArt := []string{
		`  ___ _  ___   ___   ___  ___ ___  ___ `,
		` |_ _| \| \ \ / /_\ |   \| __| _ \/ __|`,
		`  | || .  |\ V / _ \| |) | _||   /\__ \`,
		` |___|_|\_| \_/_/ \_\___/|___|_|_\|___/`,
		`                                       `,
	}

	titleWidth := 0
	for _, line := range titleArt {
		titleWidth = max(titleWidth, len(line))
	}

	cw := g.chunkWriter
	titleStartY := centerY - 7
	for i, line := range titleArt {
		cw.WriteColored(centerX-titleWidth/2, titleStartY+i, draw.ColorBrightGreen, line)
	}

	cw.WriteCentered(centerX, titleStartY+len(titleArt)+1, "~ Space Invaders in your terminal ~")

	controlsY := titleStartY + len(titleArt) + 3
	cw.WriteCentered(centerX, controlsY, "Controls")
	controlLines := []string{
		"A D / < >  . . .  Move",
		"SPACE / Up  . .  Shoot",
		"Q  . . . . . . .  Quit",
	}
	for i, line := range controlLines {
		cw.WriteCentered(centerX, controlsY+1+i, line)
	}

	if g.session.Best > 0 {
		cw.WriteCentered(centerX, controlsY+len(controlLines)+2, fmt.Sprintf("Best: %d", g.session.Best))
	}

	// Blinking start prompt
	if time.Now().UnixMilli()/600%2 == 0 {
		cw.WriteCentered(centerX, controlsY+len(controlLines)+4, ">>  Press SPACE to Start  <<")
	}
}

// drawPlayingHUD draws the in-game HUD.
func (g *Game) drawPlayingHUD(termWidth, termHeight int) {
	cw := g.chunkWriter
	cw.WriteAt(2, 1, fmt.Sprintf("Score: %-6d", g.session.Score))

	hpText := fmt.Sprintf("HP: %d", g.level.HP())
	cw.WriteAt(termWidth-len(hpText)-1, 1, hpText)

	if g.debug {
		debugText := fmt.Sprintf("DEBUG aliens:%d", g.level.AliensLeft())
		cw.WriteColored(2, termHeight, draw.ColorBrightRed, debugText)
	}
}

// drawOverScreen draws the game over screen.
func (g *Game) drawOverScreen(centerX, centerY int) {
	titleArt := []string{
		`   ___   _   __  __ ___    _____   _____ ___  `,
		`  / __| /_\ |  \/  | __|  / _ \ \ / / __| _ \ `,
		` | (_ |/ _ \| |\/| | _|  | (_) \ V /| _||   / `,
		`  \___/_/ \_\_|  |_|___|  \___/ \_/ |___|_|_\ `,
		`                                              `,
	}

	titleWidth := 0
	for _, line := range titleArt {
		titleWidth = max(titleWidth, len(line))
	}

	cw := g.chunkWriter
	titleStartY := centerY - 6
	for i, line := range titleArt {
		cw.WriteColored(centerX-titleWidth/2, titleStartY+i, draw.ColorBold+draw.ColorBrightGreen, line)
	}

	y := titleStartY + len(titleArt) + 1
	cw.WriteCentered(centerX, y, fmt.Sprintf("You %s", g.session.Outcome))
	cw.WriteCentered(centerX, y+2, fmt.Sprintf("Score: %d", g.session.Score))

	best := fmt.Sprintf("Best: %d", g.session.Best)
	if g.session.NewBest {
		best += "  NEW BEST!"
	}
	cw.WriteCentered(centerX, y+3, best)

	if time.Now().UnixMilli()/600%2 == 0 {
		cw.WriteCentered(centerX, y+5, ">>  Press ENTER to Restart  <<")
	}
}

// drawShutdownScreen draws the server shutdown notification screen.
func (g *Game) drawShutdownScreen(centerX, centerY int) {
	cw := g.chunkWriter
	cw.WriteCentered(centerX, centerY-3, "SERVER SHUTTING DOWN")
	cw.WriteCentered(centerX, centerY-1, "The server is restarting for maintenance.")
	cw.WriteCentered(centerX, centerY, "Please reconnect in a moment.")

	remaining := int(g.shutdownTimer) + 1
	cw.WriteCentered(centerX, centerY+2, fmt.Sprintf("Disconnecting in %d seconds...", remaining))
	cw.WriteCentered(centerX, centerY+4, "Press Q to disconnect now")
}

package loop

import (
	"fmt"
	"time"

	"github.com/tomz197/asteroids-ufo/internal/draw"
	"github.com/tomz197/asteroids-ufo/internal/object"
	"github.com/tomz197/asteroids-ufo/internal/phase"
)

// drawFrame renders the world and the UI of the current phase as one write.
func drawFrame(g *Game, canvas *draw.Canvas, cw *draw.ChunkWriter) error {
	cw.WriteString("\033[H\033[2J")
	canvas.Clear()

	termWidth := canvas.TerminalWidth()
	termHeight := canvas.TerminalHeight()
	centerX := termWidth / 2
	centerY := termHeight / 2

	if g.State() == phase.Boss {
		drawBossScreen(cw, termWidth, termHeight)
		return cw.Flush()
	}

	g.world.Draw(object.DrawContext{Canvas: canvas, HalfW: g.half.X(), HalfH: g.half.Y()})
	if err := canvas.Render(cw); err != nil {
		return err
	}

	switch g.State() {
	case phase.Starting:
		drawStartScreen(g, cw, centerX, centerY)
	case phase.GetReady:
		drawHUD(g, cw, termWidth)
		drawGetReady(g, cw, centerX, centerY)
	case phase.Playing:
		drawHUD(g, cw, termWidth)
	case phase.GameOver:
		drawHUD(g, cw, termWidth)
		drawGameOver(g, cw, centerX, centerY)
	}

	return cw.Flush()
}

var titleArt = []string{
	`    _   ___ _____ ___ ___  ___ ___ ___  ___ `,
	`   /_\ / __|_   _| __| _ \/ _ \_ _|   \/ __|`,
	`  / _ \\__ \ | | | _||   / (_) | || |) \__ \`,
	` /_/ \_\___/ |_| |___|_|_\\___/___|___/|___/`,
}

var controlLines = []string{
	"W / Up  . . . . Thrust",
	"A D / < >  . .  Rotate",
	"SPACE  . . . . . Shoot",
	"ENTER  . . .  Teleport",
	"B  . . . . . .  Boss!",
	"Q  . . . . . . .  Quit",
}

func drawStartScreen(g *Game, cw *draw.ChunkWriter, centerX, centerY int) {
	top := centerY - 8
	for i, line := range titleArt {
		object.Centered(centerX, top+i, line).Draw(cw)
	}

	row := top + len(titleArt) + 1
	object.Centered(centerX, row, fmt.Sprintf("High score: %d", g.board.High)).Draw(cw)

	row += 2
	for i, line := range controlLines {
		object.Centered(centerX, row+i, line).Draw(cw)
	}

	if time.Now().UnixMilli()/600%2 == 0 {
		object.Centered(centerX, row+len(controlLines)+1, ">>  Press SPACE to Start  <<").Draw(cw)
	}
}

// drawHUD draws score and high score. Fields are padded so shorter values
// fully overwrite longer ones.
func drawHUD(g *Game, cw *draw.ChunkWriter, termWidth int) {
	object.Text{Col: 2, Row: 1, Value: fmt.Sprintf("Score: %-8d", g.board.Score)}.Draw(cw)
	high := fmt.Sprintf("High: %-8d", g.board.High)
	object.Text{Col: termWidth - len(high), Row: 1, Value: high}.Draw(cw)
}

func drawGetReady(g *Game, cw *draw.ChunkWriter, centerX, centerY int) {
	object.Centered(centerX, centerY-2, "GET READY").Draw(cw)
	object.Centered(centerX, centerY, fmt.Sprintf("%d", g.Countdown())).Draw(cw)
	object.Centered(centerX, centerY+2, fmt.Sprintf("Wave of %d asteroids", g.asteroidCount)).Draw(cw)
}

func drawGameOver(g *Game, cw *draw.ChunkWriter, centerX, centerY int) {
	object.Centered(centerX, centerY-2, "GAME OVER").Draw(cw)
	object.Centered(centerX, centerY, fmt.Sprintf("Score: %d   High score: %d", g.board.Score, g.board.High)).Draw(cw)
	object.Centered(centerX, centerY+2, "Press SPACE to play again").Draw(cw)
}

var bossLines = []string{
	"  PID USER      PR  NI    VIRT    RES  %CPU %MEM     TIME+ COMMAND",
	"    1 root      20   0  168492  12980   0.0  0.1   0:04.12 systemd",
	"  412 root      20   0   47612  14336   0.0  0.2   0:00.91 systemd-journal",
	"  988 www-data  20   0  931024  81220   1.3  1.0  12:41.07 nginx",
	" 1207 postgres  20   0  402352  56110   0.7  0.7   3:18.55 postgres",
	" 2291 build     20   0 2210456 803004  97.4  9.8  41:02.33 cc1plus",
	" 2295 build     20   0 2198764 799312  96.9  9.7  40:57.18 cc1plus",
	" 3018 build     20   0   12504   4096   0.3  0.0   0:01.02 make",
}

// drawBossScreen shows a process list instead of the game.
func drawBossScreen(cw *draw.ChunkWriter, termWidth, termHeight int) {
	now := time.Now().Format("15:04:05")
	header := fmt.Sprintf("top - %s up 12 days,  3:41,  2 users,  load average: 1.92, 1.87, 1.80", now)
	object.Text{Col: 1, Row: 1, Value: clip(header, termWidth)}.Draw(cw)
	object.Text{Col: 1, Row: 2, Value: clip("Tasks: 213 total,   3 running, 210 sleeping,   0 stopped,   0 zombie", termWidth)}.Draw(cw)
	for i, line := range bossLines {
		if 4+i > termHeight {
			break
		}
		object.Text{Col: 1, Row: 4 + i, Value: clip(line, termWidth)}.Draw(cw)
	}
}

func clip(s string, width int) string {
	if width > 0 && len(s) > width {
		return s[:width]
	}
	return s
}

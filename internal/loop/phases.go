package loop

import (
	"go.uber.org/zap"

	"github.com/tomz197/asteroids-ufo/internal/loop/config"
	"github.com/tomz197/asteroids-ufo/internal/phase"
	"github.com/tomz197/asteroids-ufo/internal/score"
)

// fire feeds a trigger to the phase machine and runs the exit and enter
// hooks of the resulting transition. Boss toggles skip the hooks so the
// hidden game resumes exactly where it left off.
func (g *Game) fire(t phase.Trigger) bool {
	tr, ok := g.machine.Fire(t)
	if !ok {
		return false
	}
	g.log.Debug("phase transition",
		zap.Stringer("trigger", t),
		zap.Stringer("from", tr.From),
		zap.Stringer("to", tr.To))

	if tr.Side {
		if tr.To == phase.Boss {
			g.audio.SetThrust(false)
			g.thrusting = false
			score.SaveHighScore(g.store, g.board.High, g.log)
			g.log.Info("game hidden", zap.Stringer("paused", g.machine.BeforeBoss()))
		} else {
			g.log.Info("game resumed", zap.Stringer("phase", tr.To))
		}
		return true
	}

	g.exit(tr.From)
	g.enter(tr.To)
	return true
}

func (g *Game) exit(s phase.State) {
	switch s {
	case phase.Starting:
		g.world.Clear()
		g.board.Reset()
	case phase.Playing:
		score.SaveHighScore(g.store, g.board.High, g.log)
	case phase.GameOver:
		g.world.Clear()
		g.asteroidCount = g.cfg.InitialAsteroids
		g.board.Reset()
	}
}

func (g *Game) enter(s phase.State) {
	switch s {
	case phase.Starting:
		g.world.Clear()
		g.spawnWave(config.TitleWaveAsteroids)
	case phase.GetReady:
		g.spawnShip()
		g.world.ClearBullets()
		g.removeUFO()
		g.spawnWave(g.asteroidCount)
		g.countdown.Reset()
		g.ufoTimer.Reset()
		g.log.Debug("wave ready", zap.Int("asteroids", g.asteroidCount))
	case phase.GameOver:
		g.restartArm.Reset()
		g.log.Info("game over", zap.Uint32("score", g.board.Score), zap.Uint32("high_score", g.board.High))
	}
}

// bossKeySystem toggles the boss screen, at most once per BossToggleGuard
// so a held key does not flicker between the two.
func bossKeySystem(g *Game, dt float64) {
	g.bossCooldown -= dt
	if g.bossCooldown > 0 || !g.pressed(keyBoss) {
		return
	}
	if g.fire(phase.BossKey) {
		g.bossCooldown = config.BossToggleGuard.Seconds()
	}
}

// startKeySystem starts a game on Space. After game over it waits for
// RestartArmDelay so fire held while the ship died does not restart at once.
func startKeySystem(g *Game, dt float64) {
	if g.State() == phase.GameOver {
		g.restartArm.Tick(dt)
		if !g.restartArm.Finished() {
			return
		}
	}
	if g.pressed(keySpace) {
		g.fire(phase.SpacePressed)
	}
}

func countdownSystem(g *Game, dt float64) {
	if g.countdown.Tick(dt) {
		g.fire(phase.CountdownFinished)
	}
}

func shipLostSystem(g *Game, _ float64) {
	if g.world.Ship() == nil {
		g.fire(phase.ShipLost)
	}
}

func waveClearedSystem(g *Game, _ float64) {
	if g.world.AsteroidCount() == 0 {
		g.asteroidCount++
		g.fire(phase.WaveCleared)
	}
}

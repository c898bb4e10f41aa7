// Package loop runs one player's game: input, level updates, scenes and
// rendering, until the player quits or the context ends.
package loop

import (
	"bufio"
	"context"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/invaders/internal/draw"
	"github.com/tomz197/invaders/internal/input"
	"github.com/tomz197/invaders/internal/loop/config"
	"github.com/tomz197/invaders/internal/object"
	"github.com/tomz197/invaders/internal/score"
)

// Options configures a game.
type Options struct {
	TermSizeFunc draw.TermSizeFunc
	Logger       *log.Logger
	Scores       *score.Store // nil keeps the best score for this game only
	Tuning       config.Tuning
	Debug        bool  // allow the debug toggle and start with it on
	Seed         int64 // 0 seeds from the clock
}

// Game handles rendering and input for a single player.
type Game struct {
	opts        Options
	logger      *log.Logger
	canvas      *draw.Canvas
	chunkWriter *draw.ChunkWriter // Accumulates one frame of output
	writer      io.Writer
	inputStream *input.Stream
	rng         *rand.Rand

	session   Session
	level     *Level
	input     object.Input
	gameState GameState
	running   bool
	debug     bool
	debugHeld bool

	delta         time.Duration
	lastInput     time.Time
	isInactive    bool
	shutdownTimer float64 // Countdown before auto-disconnect on shutdown
}

// NewGame creates a game reading keys from r and drawing to w.
func NewGame(r *bufio.Reader, w io.Writer, opts Options) *Game {
	if opts.TermSizeFunc == nil {
		opts.TermSizeFunc = draw.DefaultTermSizeFunc
	}
	if opts.Tuning == (config.Tuning{}) {
		opts.Tuning = config.Default()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	termWidth, termHeight, _ := draw.TerminalSizeWith(opts.TermSizeFunc)
	renderWidth, renderHeight, offsetCol, offsetRow := fitTermSize(termWidth, termHeight)
	canvas := draw.NewScaledCanvas(renderWidth, renderHeight, config.PlayfieldWidth, config.PlayfieldHeight)
	canvas.SetOffset(offsetCol, offsetRow)

	g := &Game{
		opts:        opts,
		logger:      logger,
		canvas:      canvas,
		chunkWriter: draw.NewChunkWriter(w, offsetCol, offsetRow),
		writer:      w,
		inputStream: input.StartStream(r),
		rng:         rand.New(rand.NewSource(seed)),
		gameState:   GameStateStart,
		running:     true,
		debug:       opts.Debug,
		lastInput:   time.Now(),
	}
	if opts.Scores != nil {
		g.session.Best = opts.Scores.Best()
	}
	return g
}

// Run starts the game and blocks until the player quits, the input ends, or
// ctx is cancelled and the shutdown notice has been shown.
func Run(ctx context.Context, r *bufio.Reader, w io.Writer, opts Options) error {
	return NewGame(r, w, opts).Run(ctx)
}

// Run starts the game loop with the standard Input → Update → Draw cycle.
func (g *Game) Run(ctx context.Context) error {
	draw.HideCursor(g.writer)
	defer draw.ShowCursor(g.writer)
	draw.ClearScreen(g.writer)

	lastTime := time.Now()

	for g.running {
		frameStart := time.Now()
		g.delta = frameStart.Sub(lastTime)
		lastTime = frameStart

		if ctx.Err() != nil && g.gameState != GameStateShutdown {
			g.gameState = GameStateShutdown
			g.shutdownTimer = config.ShutdownDisplaySeconds
		}

		// ===== INPUT PHASE =====
		g.processInput()

		// ===== UPDATE PHASE =====
		g.updateScreen()

		switch g.gameState {
		case GameStateStart:
			g.updateStartState()
		case GameStatePlaying:
			if err := g.updatePlayingState(); err != nil {
				return err
			}
		case GameStateOver:
			g.updateOverState()
		case GameStateShutdown:
			g.updateShutdownState()
		}

		// ===== DRAW PHASE =====
		if err := g.drawFrame(); err != nil {
			return err
		}

		// ===== FRAME TIMING =====
		elapsed := time.Since(frameStart)
		if elapsed < config.ClientTargetFrameTime {
			time.Sleep(config.ClientTargetFrameTime - elapsed)
		}
	}

	draw.ClearScreen(g.writer)
	return nil
}

// processInput reads pending input and handles quit, inactivity and the
// debug toggle.
func (g *Game) processInput() {
	in, closed := input.ReadInput(g.inputStream)
	g.input = in

	if closed {
		g.running = false
	}

	if len(in.Pressed) > 0 {
		g.lastInput = time.Now()
		g.isInactive = false
	} else if time.Since(g.lastInput).Seconds() > config.InactivityDisconnectUser {
		g.logger.Info("disconnecting inactive player")
		g.running = false
	} else if time.Since(g.lastInput).Seconds() > config.InactivityWarnUser {
		g.isInactive = true
	}

	if in.Quit {
		g.running = false
	}

	g.handleDebugKey(in.Debug)
}

// handleDebugKey flips debug mode on the press, not while the key repeats.
// It does nothing unless the game was started with Debug.
func (g *Game) handleDebugKey(held bool) {
	if held && !g.debugHeld && g.opts.Debug {
		g.debug = !g.debug
		if g.level != nil {
			g.level.SetDebug(g.debug)
		}
	}
	g.debugHeld = held
}

// updateScreen handles terminal resize, keeping the playfield's aspect ratio.
func (g *Game) updateScreen() {
	termWidth, termHeight, err := draw.TerminalSizeWith(g.opts.TermSizeFunc)
	if err != nil {
		return
	}
	renderWidth, renderHeight, offsetCol, offsetRow := fitTermSize(termWidth, termHeight)

	g.canvas.Resize(renderWidth, renderHeight)
	g.canvas.SetOffset(offsetCol, offsetRow)
	g.chunkWriter.SetOffset(offsetCol, offsetRow)
}

// fitTermSize picks the largest render area that fits the terminal, stays
// within the max render resolution and keeps the playfield's 4:3 shape.
// Each cell holds two square-ish pixels, so 4:3 is 8 columns per 3 rows.
func fitTermSize(termWidth, termHeight int) (renderWidth, renderHeight, offsetCol, offsetRow int) {
	renderHeight = min(termHeight, config.MaxTermHeight, termWidth*3/8)
	if renderHeight < 1 {
		renderHeight = 1
	}
	renderWidth = max(renderHeight*8/3, 1)
	offsetCol = max((termWidth-renderWidth)/2, 0)
	offsetRow = max((termHeight-renderHeight)/2, 0)
	return
}

// updateStartState handles the title screen.
func (g *Game) updateStartState() {
	if g.input.Fire || g.input.Enter {
		g.startGame()
	}
}

// updatePlayingState advances the level and ends it on an outcome.
func (g *Game) updatePlayingState() error {
	if err := g.level.Update(g.delta, g.input); err != nil {
		return err
	}
	if g.level.Done() {
		g.finishGame()
	}
	return nil
}

// updateOverState waits for Enter to restart.
func (g *Game) updateOverState() {
	if g.input.Enter {
		g.startGame()
	}
}

// startGame starts or restarts a level.
func (g *Game) startGame() {
	input.ResetKeyInput(g.inputStream)

	g.level = NewLevel(&g.session, g.opts.Tuning, g.rng)
	g.level.SetDebug(g.debug)
	g.gameState = GameStatePlaying
	g.logger.Info("level started", "best", g.session.Best, "debug", g.debug)
}

// finishGame records the score and switches to the game over screen.
func (g *Game) finishGame() {
	input.ResetKeyInput(g.inputStream)

	if g.opts.Scores != nil {
		best, improved, err := g.opts.Scores.Submit(g.session.Score)
		if err != nil {
			g.logger.Warn("failed to save best score", "score", g.session.Score, "err", err)
		}
		g.session.Best = best
		g.session.NewBest = improved
	} else if g.session.Score > g.session.Best {
		g.session.Best = g.session.Score
		g.session.NewBest = true
	}

	g.gameState = GameStateOver
	g.logger.Info("level finished",
		"outcome", g.session.Outcome,
		"score", g.session.Score,
		"best", g.session.Best,
		"new_best", g.session.NewBest,
	)
}

// updateShutdownState handles the shutdown screen countdown.
func (g *Game) updateShutdownState() {
	g.shutdownTimer -= g.delta.Seconds()
	if g.shutdownTimer <= 0 {
		g.running = false
	}
}

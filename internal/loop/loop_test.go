package loop

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/tomz197/invaders/internal/draw"
	"github.com/tomz197/invaders/internal/object"
	"github.com/tomz197/invaders/internal/score"
)

func fixedSize(w, h int) draw.TermSizeFunc {
	return func() (int, int, error) { return w, h, nil }
}

func newTestGame(t *testing.T, w io.Writer, opts Options) *Game {
	t.Helper()
	if opts.TermSizeFunc == nil {
		opts.TermSizeFunc = fixedSize(120, 40)
	}
	opts.Seed = 7
	return NewGame(bufio.NewReader(strings.NewReader("")), w, opts)
}

func TestFitTermSize(t *testing.T) {
	tests := []struct {
		name                           string
		termW, termH                   int
		wantW, wantH, wantCol, wantRow int
	}{
		{"small terminal", 80, 24, 64, 24, 8, 0},
		{"large terminal is capped", 200, 80, 160, 60, 20, 10},
		{"narrow terminal", 30, 40, 29, 11, 0, 14},
		{"degenerate", 0, 0, 2, 1, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h, col, row := fitTermSize(tt.termW, tt.termH)
			if w != tt.wantW || h != tt.wantH || col != tt.wantCol || row != tt.wantRow {
				t.Errorf("fitTermSize(%d, %d) = (%d, %d, %d, %d), want (%d, %d, %d, %d)",
					tt.termW, tt.termH, w, h, col, row, tt.wantW, tt.wantH, tt.wantCol, tt.wantRow)
			}
		})
	}
}

func TestRunEndsWhenInputCloses(t *testing.T) {
	var out bytes.Buffer
	g := newTestGame(t, &out, Options{})

	if err := g.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !strings.Contains(out.String(), "Controls") {
		t.Error("title screen was never drawn")
	}
	if !strings.HasSuffix(out.String(), "\033[?25h") {
		t.Error("cursor should be restored on exit")
	}
}

func TestGameFlow(t *testing.T) {
	store := score.NewStore(nil)
	var out bytes.Buffer
	g := newTestGame(t, &out, Options{Scores: store})

	g.input = object.Input{Enter: true}
	g.updateStartState()
	if g.gameState != GameStatePlaying || g.level == nil {
		t.Fatalf("state = %v, want playing with a level", g.gameState)
	}

	g.session.Score = 7
	g.session.Outcome = OutcomeWon
	if err := g.updatePlayingState(); err != nil {
		t.Fatalf("updatePlayingState() error = %v", err)
	}
	if g.gameState != GameStateOver {
		t.Fatalf("state = %v, want game over", g.gameState)
	}
	if g.session.Best != 7 || !g.session.NewBest || store.Best() != 7 {
		t.Errorf("best not recorded: session=%+v store=%d", g.session, store.Best())
	}

	out.Reset()
	if err := g.drawFrame(); err != nil {
		t.Fatalf("drawFrame() error = %v", err)
	}
	for _, want := range []string{"You won", "Score: 7", "Best: 7", "NEW BEST!"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("game over screen missing %q", want)
		}
	}

	g.input = object.Input{Fire: true}
	g.updateOverState()
	if g.gameState != GameStateOver {
		t.Error("fire should not restart from the game over screen")
	}

	g.input = object.Input{Enter: true}
	g.updateOverState()
	if g.gameState != GameStatePlaying {
		t.Fatalf("state = %v, want playing after Enter", g.gameState)
	}
	if g.session.Score != 0 || g.session.Outcome != OutcomeNone || g.session.Best != 7 {
		t.Errorf("session after restart = %+v", g.session)
	}
}

func TestLowerScoreKeepsBest(t *testing.T) {
	g := newTestGame(t, io.Discard, Options{})
	g.session.Best = 20

	g.startGame()
	g.session.Score = 3
	g.session.Outcome = OutcomeLost
	g.finishGame()

	if g.session.Best != 20 || g.session.NewBest {
		t.Errorf("session = %+v, want best 20 without a new best", g.session)
	}
}

func TestDebugToggle(t *testing.T) {
	g := newTestGame(t, io.Discard, Options{Debug: true})
	g.startGame()
	if !g.level.debug {
		t.Fatal("debug option should start the level in debug mode")
	}

	g.handleDebugKey(true)
	g.handleDebugKey(true)
	if g.level.debug {
		t.Error("holding the key should toggle once")
	}
	g.handleDebugKey(false)
	g.handleDebugKey(true)
	if !g.level.debug {
		t.Error("second press should toggle back")
	}
}

func TestDebugKeyIgnoredWithoutOption(t *testing.T) {
	g := newTestGame(t, io.Discard, Options{})
	g.startGame()
	g.handleDebugKey(true)
	if g.debug || g.level.debug {
		t.Error("debug toggle should be disabled without the Debug option")
	}
}

func TestOutcomeString(t *testing.T) {
	tests := map[Outcome]string{OutcomeNone: "none", OutcomeWon: "won", OutcomeLost: "lost"}
	for o, want := range tests {
		if got := o.String(); got != want {
			t.Errorf("Outcome(%d).String() = %q, want %q", o, got, want)
		}
	}
}

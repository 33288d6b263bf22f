package game

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/treasurehunt/internal/logger"
	"github.com/samdwyer/treasurehunt/internal/ui"
)

// Atlas marker blink period.
const blinkInterval = 400 * time.Millisecond

// Game drives a Session from the terminal.
type Game struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	session  *Session
	blink    bool
}

// New creates a new game on the real terminal.
func New(ctx context.Context, cfg Config) (*Game, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewWithScreen(ctx, cfg, screen)
}

// NewWithScreen creates a game on an already initialized screen.
func NewWithScreen(ctx context.Context, cfg Config, screen *ui.Screen) (*Game, error) {
	session, err := NewSession(ctx, cfg)
	if err != nil {
		screen.Close()
		return nil, err
	}
	palette, err := ui.LoadPalette(session.Seed())
	if err != nil {
		screen.Close()
		_ = session.Close()
		return nil, err
	}
	return &Game{
		screen:   screen,
		renderer: ui.NewRenderer(screen, palette),
		session:  session,
	}, nil
}

// Session returns the session being played.
func (g *Game) Session() *Session {
	return g.session
}

// Run executes the main game loop until the player quits.
func (g *Game) Run(ctx context.Context) error {
	defer g.screen.Close()

	ticker := time.NewTicker(blinkInterval)
	defer ticker.Stop()
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			select {
			case <-ticker.C:
				g.screen.Interrupt()
			case <-done:
				return
			}
		}
	}()

	for !g.session.Quit() {
		g.renderer.Render(g.session.View(g.blink))

		switch ev := g.screen.PollEvent().(type) {
		case *tcell.EventKey:
			in, ok := IntentFromKey(ev)
			if !ok {
				continue
			}
			if err := g.session.Step(ctx, in); err != nil {
				logger.Log.WithError(err).Error("step failed")
				return err
			}
		case *tcell.EventInterrupt:
			g.blink = !g.blink
		case *tcell.EventResize:
			g.screen.Sync()
		case nil:
			return g.session.Close()
		}
	}
	return g.session.Close()
}

// View describes the session for the renderer.
func (s *Session) View(blink bool) ui.View {
	v := ui.View{
		Variant: s.avatar.Active,
		Grid:    s.Grid(),
		Player:  s.avatar.Position(),
		Quest:   s.quest,
		Title:   s.overlay.Title,
		Text:    s.overlay.Text,
		Prompt:  s.overlay.Prompt,
		Message: s.message,
		Blink:   blink,
	}
	switch s.state {
	case StateDialogue:
		v.Mode = ui.ModeDialogue
	case StateMerchant:
		v.Mode = ui.ModeMerchant
	case StateInventory:
		v.Mode = ui.ModeInventory
	case StateAtlas:
		v.Mode = ui.ModeAtlas
	case StateWon:
		v.Mode = ui.ModeCredits
		v.Credits = s.dialogue.Credits()
	}
	return v
}

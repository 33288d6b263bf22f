package game

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/treasurehunt/internal/entity"
	"github.com/samdwyer/treasurehunt/internal/gamedata"
	"github.com/samdwyer/treasurehunt/internal/journal"
	"github.com/samdwyer/treasurehunt/internal/logger"
	"github.com/samdwyer/treasurehunt/internal/quest"
	"github.com/samdwyer/treasurehunt/internal/telemetry"
	"github.com/samdwyer/treasurehunt/internal/tuning"
	"github.com/samdwyer/treasurehunt/internal/world"
)

// Dialogue is the text an overlay shows.
type Dialogue struct {
	Title string
	Text  string
	// Prompt is set while the merchant waits for y/n.
	Prompt bool
}

// Session is one playthrough: both worlds, the avatar and quest state.
// It is driven one Intent at a time and is not safe for concurrent use.
type Session struct {
	seed       int64
	thresholds tuning.Thresholds
	grids      [2]*world.Grid
	avatar     *entity.Avatar
	quest      quest.State
	dialogue   *gamedata.DialogueRegistry
	tracer     trace.Tracer
	journal    *journal.Writer

	state   State
	overlay Dialogue
	offer   quest.Result
	message string
	frame   uint64
	quit    bool
}

// NewSession loads tuning, builds both worlds and opens the journal if
// one is configured.
func NewSession(ctx context.Context, cfg Config) (*Session, error) {
	th, err := tuning.Load(cfg.TuningPath)
	if err != nil {
		return nil, err
	}
	s, err := newSession(ctx, resolveSeed(cfg.Seed), th, telemetry.Tracer("game"))
	if err != nil {
		return nil, err
	}
	if cfg.JournalPath != "" {
		w, err := journal.Create(cfg.JournalPath, journal.NewHeader(s.seed, th))
		if err != nil {
			return nil, err
		}
		s.journal = w
		logger.Log.WithFields(logrus.Fields{
			"path":    cfg.JournalPath,
			"session": w.Header().Session,
		}).Info("recording journal")
	}
	return s, nil
}

func newSession(ctx context.Context, seed int64, th tuning.Thresholds, tracer trace.Tracer) (*Session, error) {
	ctx, span := tracer.Start(ctx, "game.init")
	defer span.End()

	dialogue, err := gamedata.LoadDialogueRegistry()
	if err != nil {
		return nil, fmt.Errorf("load dialogue: %w", err)
	}

	s := &Session{
		seed:       seed,
		thresholds: th,
		avatar:     entity.NewAvatar(),
		dialogue:   dialogue,
		tracer:     tracer,
		state:      StateExplore,
	}
	for _, v := range []world.Variant{world.Overworld, world.Underworld} {
		s.grids[v] = world.Build(ctx, world.NewGenerator(v, th, seed))
	}

	start := s.avatar.Position()
	span.SetAttributes(
		attribute.Int64("game.seed", seed),
		attribute.String("avatar.start", start.String()),
	)
	logger.Log.WithFields(logrus.Fields{
		"seed":  seed,
		"start": start.String(),
	}).Info("session started")
	return s, nil
}

// Step applies one intent. The only error source is the journal.
func (s *Session) Step(ctx context.Context, in Intent) error {
	s.frame++
	if s.journal != nil {
		if err := s.journal.Write(s.frame, in); err != nil {
			return fmt.Errorf("journal frame %d: %w", s.frame, err)
		}
	}
	s.apply(ctx, in)
	return nil
}

func (s *Session) apply(ctx context.Context, in Intent) {
	if in.Kind == IntentQuit {
		s.quit = true
		return
	}
	switch {
	case s.state == StateWon:
	case !s.state.Overlay():
		s.explore(ctx, in)
	case s.state == StateMerchant:
		s.haggle(ctx, in)
	case in.closesOverlay():
		s.closeOverlay()
	}
}

func (s *Session) explore(ctx context.Context, in Intent) {
	s.message = ""
	switch in.Kind {
	case IntentMove:
		s.move(ctx, world.Delta{DX: in.DX, DY: in.DY})
	case IntentAction:
		s.act(ctx)
	case IntentInventory:
		s.state = StateInventory
	case IntentAtlas:
		if s.quest.HasAtlas {
			s.state = StateAtlas
		}
	}
}

func (s *Session) move(ctx context.Context, d world.Delta) {
	grid := s.Grid()
	from := s.avatar.Position()
	landWalk := s.quest.LandWalk

	mv := world.Navigate(from, d, grid, landWalk)
	pos := mv.Pos
	if tile, err := grid.Tile(pos); err != nil {
		pos = from
	} else if !landWalk {
		switch {
		case tile.Has(world.FeatureBazar):
			pos = from
			s.openMerchant()
		case !tile.IsWater():
			pos = from
		}
	}

	if out := s.quest.TickLandWalk(!d.IsZero()); out.Result == quest.ResultLandWalkEnded {
		s.message = s.dialogue.Line(out.Result.String())
		logger.Log.WithField("pos", pos.String()).Info("land-walk ended")
	}
	s.avatar.MoveTo(pos)

	tile, err := grid.Tile(pos)
	if err != nil {
		return
	}
	if out := s.quest.PickUpCoin(tile); out.Changed {
		s.message = s.dialogue.Line(out.Result.String())
	}
	if tile.Has(world.FeatureGoal) {
		s.win(ctx)
	}
}

func (s *Session) act(ctx context.Context) {
	tile, err := s.Grid().Tile(s.avatar.Position())
	if err != nil {
		return
	}
	switch {
	case tile.Has(world.FeatureHole) && s.avatar.Active == world.Overworld:
		s.descend(ctx)
	case tile.Has(world.FeatureHermanos) && s.quest.Pole:
		out := s.quest.MeetHermanos(tile)
		npc := s.dialogue.NPCForStage(out.Stage)
		if npc == nil {
			return
		}
		s.openDialogue(Dialogue{Title: npc.Name, Text: npc.Line})
		logger.Log.WithFields(logrus.Fields{
			"npc":   npc.ID,
			"stage": s.quest.Stage,
		}).Info("met a talking fish")
	default:
		out := s.quest.Cast(tile)
		s.openDialogue(Dialogue{Text: s.dialogue.Line(out.Result.String())})
	}
}

func (s *Session) descend(ctx context.Context) {
	_, span := s.tracer.Start(ctx, "game.portal")
	defer span.End()

	s.avatar.Descend()
	s.quest.EndLandWalk()
	span.SetAttributes(attribute.String("avatar.pos", s.avatar.Position().String()))
	logger.Log.WithField("pos", s.avatar.Position().String()).Info("descended to the underworld")

	if tile, err := s.Grid().Tile(s.avatar.Position()); err == nil && tile.Has(world.FeatureGoal) {
		s.win(ctx)
	}
}

func (s *Session) win(ctx context.Context) {
	_, span := s.tracer.Start(ctx, "game.goal")
	defer span.End()

	s.state = StateWon
	span.SetAttributes(
		attribute.Int64("game.frame", int64(s.frame)),
		attribute.Int("quest.stage", s.quest.Stage),
	)
	logger.Log.WithFields(logrus.Fields{
		"frame": s.frame,
		"pos":   s.avatar.Position().String(),
	}).Info("goal reached")
}

func (s *Session) openDialogue(d Dialogue) {
	s.state = StateDialogue
	s.overlay = d
}

func (s *Session) openMerchant() {
	s.offer = s.quest.MerchantOffer()
	s.state = StateMerchant
	s.overlay = Dialogue{
		Title:  s.dialogue.Merchant(),
		Text:   s.dialogue.Line(s.offer.String()),
		Prompt: s.offer == quest.ResultPoleOffer || s.offer == quest.ResultPotionOffer,
	}
}

func (s *Session) haggle(ctx context.Context, in Intent) {
	if in.closesOverlay() {
		s.closeOverlay()
		return
	}
	if !s.overlay.Prompt {
		return
	}
	var out quest.Outcome
	switch in.Kind {
	case IntentConfirm:
		out = s.purchase(ctx)
	case IntentCancel:
		out = s.quest.Decline()
	default:
		return
	}
	s.overlay.Text = s.dialogue.Line(out.Result.String())
	s.overlay.Prompt = false
}

func (s *Session) purchase(ctx context.Context) quest.Outcome {
	_, span := s.tracer.Start(ctx, "quest.purchase")
	defer span.End()

	out := s.quest.Buy()
	span.SetAttributes(
		attribute.String("purchase.result", out.Result.String()),
		attribute.Int("quest.stage", s.quest.Stage),
		attribute.Int("quest.gold", s.quest.Gold),
	)
	logger.Log.WithFields(logrus.Fields{
		"result": out.Result.String(),
		"stage":  s.quest.Stage,
		"gold":   s.quest.Gold,
	}).Info("purchase")
	return out
}

func (s *Session) closeOverlay() {
	s.quest.ResetCounter()
	s.state = StateExplore
	s.overlay = Dialogue{}
	s.offer = quest.ResultNone
}

// Close flushes the journal, if any.
func (s *Session) Close() error {
	if s.journal == nil {
		return nil
	}
	err := s.journal.Close()
	s.journal = nil
	return err
}

// Seed returns the resolved world seed.
func (s *Session) Seed() int64 { return s.seed }

// State returns the current game state.
func (s *Session) State() State { return s.state }

// Quit reports whether the player asked to leave.
func (s *Session) Quit() bool { return s.quit }

// Quest returns a copy of the quest state.
func (s *Session) Quest() quest.State { return s.quest }

// Avatar returns the avatar.
func (s *Session) Avatar() *entity.Avatar { return s.avatar }

// Grid returns the grid of the world the avatar is in.
func (s *Session) Grid() *world.Grid { return s.grids[s.avatar.Active] }

// Overlay returns the dialogue currently shown.
func (s *Session) Overlay() Dialogue { return s.overlay }

// Message returns the status line for the last step.
func (s *Session) Message() string { return s.message }

// Snapshot is the comparable end state of a session.
type Snapshot struct {
	Frame     uint64
	State     State
	Quest     quest.State
	Active    world.Variant
	Positions [2]world.Position
}

// Snapshot captures the session's current state.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Frame:     s.frame,
		State:     s.state,
		Quest:     s.quest,
		Active:    s.avatar.Active,
		Positions: s.avatar.Positions,
	}
}

// Replay rebuilds a session from a journal without recording a new one.
func Replay(ctx context.Context, path string) (*Session, error) {
	r, err := journal.Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	h := r.Header()
	s, err := newSession(ctx, h.Seed, h.Thresholds, telemetry.NoopTracer())
	if err != nil {
		return nil, err
	}
	for {
		e, err := r.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("replay frame %d: %w", s.frame+1, err)
		}
		var in Intent
		if err := json.Unmarshal(e.Payload, &in); err != nil {
			return nil, fmt.Errorf("replay frame %d: %w", e.Frame, err)
		}
		if err := s.Step(ctx, in); err != nil {
			return nil, err
		}
	}
	logger.Log.WithFields(logrus.Fields{
		"session": h.Session,
		"frames":  s.frame,
	}).Info("replay finished")
	return s, nil
}

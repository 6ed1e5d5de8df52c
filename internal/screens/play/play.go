// Package play hosts a game session inside the Bubble Tea update loop.
package play

import (
	"context"
	"log/slog"
	"time"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"

	"github.com/abhisek/swipemath/internal/game"
	"github.com/abhisek/swipemath/internal/questions"
	"github.com/abhisek/swipemath/internal/router"
	"github.com/abhisek/swipemath/internal/screen"
	"github.com/abhisek/swipemath/internal/screens/history"
	"github.com/abhisek/swipemath/internal/store"
	"github.com/abhisek/swipemath/internal/ui/layout"
)

// Cosmetic animation lengths, in ticks.
const (
	leanTicks  = 2
	flashTicks = 4
	noteTicks  = 25
	timeTicks  = 8

	leanOffset = 4
)

// Deps are the collaborators a PlayScreen needs. EventRepo and Logger may
// be nil.
type Deps struct {
	Source       questions.Source
	EventRepo    store.EventRepo
	Settings     game.Settings
	TickInterval time.Duration
	// SourceName is recorded with each game, e.g. "llm" or "local".
	SourceName string
	Logger     *slog.Logger
}

// PlayScreen implements screen.Screen for one game at a time.
type PlayScreen struct {
	deps    Deps
	session *game.Session
	journal *store.Journal
	spinner spinner.Model
	logger  *slog.Logger

	lean       int
	leanLeft   int
	flash      game.Feedback
	flashLeft  int
	note       string
	noteLeft   int
	lastDelta  int
	summary    *game.Summary
	persistErr bool

	// gameCtx scopes the current game's refill requests.
	gameCtx    context.Context
	cancelGame context.CancelFunc
}

var _ screen.Screen = (*PlayScreen)(nil)
var _ screen.KeyHintProvider = (*PlayScreen)(nil)
var _ screen.StatusProvider = (*PlayScreen)(nil)
var _ screen.Closer = (*PlayScreen)(nil)

// New creates a PlayScreen. The game starts when the screen is initialized.
func New(deps Deps) *PlayScreen {
	if deps.TickInterval <= 0 {
		deps.TickInterval = game.DefaultTickInterval
	}
	logger := deps.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &PlayScreen{
		deps:    deps,
		session: game.NewSession(deps.Settings),
		journal: store.NewJournal(deps.EventRepo),
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
		logger:  logger.With("component", "play"),
	}
}

func (p *PlayScreen) Init() tea.Cmd {
	return p.start()
}

func (p *PlayScreen) Title() string {
	return "Play"
}

func (p *PlayScreen) Status() string {
	if p.session.Phase == game.PhaseMenu {
		return ""
	}
	return "SCORE " + itoa(p.session.Score)
}

func (p *PlayScreen) KeyHints() []layout.KeyHint {
	switch p.session.Phase {
	case game.PhasePlaying:
		return []layout.KeyHint{
			{Key: "←/h", Description: "False"},
			{Key: "→/l", Description: "True"},
			{Key: "Esc", Description: "Quit game"},
		}
	case game.PhaseGameOver:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Play again"},
			{Key: "H", Description: "History"},
			{Key: "Esc", Description: "Home"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
		}
	}
}

// Session exposes the live session for inspection.
func (p *PlayScreen) Session() *game.Session {
	return p.session
}

func (p *PlayScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		return p, p.handleTick(msg)

	case refillMsg:
		p.handleRefill(msg)
		return p, nil

	case spinner.TickMsg:
		if p.session.Phase != game.PhaseLoading {
			return p, nil
		}
		var cmd tea.Cmd
		p.spinner, cmd = p.spinner.Update(msg)
		return p, cmd

	case tea.KeyMsg:
		return p.handleKey(msg)
	}
	return p, nil
}

// start resets the session for a fresh game and schedules the opening
// batch, the first tick and the loading spinner.
func (p *PlayScreen) start() tea.Cmd {
	p.stopRefills()
	p.gameCtx, p.cancelGame = context.WithCancel(context.Background())

	req := p.session.Start(uuid.New().String())
	p.summary = nil
	p.lean, p.leanLeft = 0, 0
	p.flash, p.flashLeft = game.FeedbackNone, 0
	p.note, p.noteLeft = "", 0

	p.logger.Info("game started", "session_id", p.session.ID, "source", p.deps.SourceName)
	p.logPersist("game start", p.journal.Start(context.Background(), p.session.ID, p.deps.SourceName))

	return tea.Batch(
		p.refillCmd(req),
		p.tickCmd(),
		p.spinner.Tick,
	)
}

func (p *PlayScreen) tickCmd() tea.Cmd {
	id, gen := p.session.ID, p.session.Generation
	return tea.Tick(p.deps.TickInterval, func(time.Time) tea.Msg {
		return tickMsg{SessionID: id, Generation: gen}
	})
}

func (p *PlayScreen) refillCmd(req game.RefillRequest) tea.Cmd {
	id := p.session.ID
	source := p.deps.Source
	ctx := p.gameCtx
	return func() tea.Msg {
		qs := source.Generate(ctx, req.Count, req.Level)
		return refillMsg{SessionID: id, Req: req, Questions: qs}
	}
}

func (p *PlayScreen) current(id string, gen uint64) bool {
	return id == p.session.ID && gen == p.session.Generation
}

func (p *PlayScreen) handleTick(msg tickMsg) tea.Cmd {
	if !p.current(msg.SessionID, msg.Generation) {
		return nil
	}
	switch p.session.Phase {
	case game.PhaseLoading:
		return p.tickCmd()
	case game.PhasePlaying:
	default:
		return nil
	}

	p.decayCosmetics()

	res := p.session.Tick()
	if res.GameOver {
		p.finish()
		return nil
	}

	var cmds []tea.Cmd
	if res.Timeout != nil {
		cmds = append(cmds, p.applyOutcome(*res.Timeout))
	}
	cmds = append(cmds, p.tickCmd())
	return tea.Batch(cmds...)
}

func (p *PlayScreen) handleRefill(msg refillMsg) {
	if msg.SessionID != p.session.ID {
		return
	}
	if !p.session.ApplyRefill(msg.Req, msg.Questions) {
		p.logger.Debug("dropped refill", "reason", msg.Req.Reason.String(), "phase", p.session.Phase.String())
	}
}

func (p *PlayScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch p.session.Phase {
	case game.PhasePlaying:
		switch {
		case key.Matches(msg, keys.Affirm):
			return p, p.judge(game.Affirm)
		case key.Matches(msg, keys.Deny):
			return p, p.judge(game.Deny)
		}

	case game.PhaseGameOver:
		switch {
		case key.Matches(msg, keys.Restart):
			return p, p.start()
		case key.Matches(msg, keys.History) && p.deps.EventRepo != nil:
			repo := p.deps.EventRepo
			return p, func() tea.Msg {
				return router.ReplaceScreenMsg{Screen: history.New(repo)}
			}
		}
	}
	return p, nil
}

func (p *PlayScreen) judge(dir game.Direction) tea.Cmd {
	out := p.session.Judge(dir)
	if !out.Applied {
		return nil
	}
	p.lean, p.leanLeft = leanOffset, leanTicks
	if dir == game.Deny {
		p.lean = -leanOffset
	}
	return p.applyOutcome(out)
}

// applyOutcome records a judgment, updates the cosmetic feedback and
// returns the refill command it asks for, if any.
func (p *PlayScreen) applyOutcome(out game.JudgmentOutcome) tea.Cmd {
	p.lastDelta = out.ScoreDelta
	if out.Feedback != game.FeedbackNone {
		p.flash, p.flashLeft = out.Feedback, flashTicks
	} else if out.Direction == game.Timeout {
		// Timeouts show a note instead of the failure flash.
		p.note, p.noteLeft = timeoutNote, timeTicks
	}

	p.logPersist("judgment", p.journal.Judgment(context.Background(), p.session.ID, out))

	if lc := out.LevelChange; lc != nil {
		p.note, p.noteLeft = levelNote(*lc), noteTicks
		p.logger.Info("level changed",
			"session_id", p.session.ID,
			"from", lc.From, "to", lc.To,
			"accuracy", lc.Accuracy, "round", lc.Round)
	}

	if out.Refill != nil {
		return p.refillCmd(*out.Refill)
	}
	return nil
}

func (p *PlayScreen) finish() {
	sum := p.session.Summary()
	p.summary = &sum
	p.lean, p.leanLeft = 0, 0
	p.stopRefills()

	p.logger.Info("game over",
		"session_id", sum.ID,
		"score", sum.Score,
		"answered", sum.TotalAnswered,
		"accuracy", sum.Accuracy(),
		"highest_level", sum.HighestLevel)

	p.logPersist("game end", p.journal.End(context.Background(), sum))
}

// Close abandons the current game's in-flight refills. The router calls it
// when the screen leaves the stack.
func (p *PlayScreen) Close() {
	p.stopRefills()
}

func (p *PlayScreen) stopRefills() {
	if p.cancelGame != nil {
		p.cancelGame()
		p.cancelGame = nil
	}
}

func (p *PlayScreen) decayCosmetics() {
	if p.leanLeft > 0 {
		p.leanLeft--
		if p.leanLeft == 0 {
			p.lean = 0
		}
	}
	if p.flashLeft > 0 {
		p.flashLeft--
		if p.flashLeft == 0 {
			p.flash = game.FeedbackNone
		}
	}
	if p.noteLeft > 0 {
		p.noteLeft--
		if p.noteLeft == 0 {
			p.note = ""
		}
	}
}

// logPersist logs a failed event write. Persistence never interrupts play.
func (p *PlayScreen) logPersist(what string, err error) {
	if err == nil {
		return
	}
	p.persistErr = true
	p.logger.Warn("persist event failed", "event", what, "session_id", p.session.ID, "error", err)
}

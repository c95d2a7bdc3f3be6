package server

import (
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/nexivibe/spider/internal/engine"
)

// Settings are the per-process game defaults a session starts from.
type Settings struct {
	DefaultSuits     int
	DefaultMode      engine.Mode
	DailyLocation    *time.Location
	StrictInvariants bool
}

type messageWriter interface {
	WriteJSON(v interface{}) error
}

// Session owns one game for one connection. All intents go through mu, so
// the engine only ever sees one caller at a time.
type Session struct {
	mu        sync.Mutex
	id        string
	game      *engine.Game
	actionIds map[string]bool
	conn      messageWriter
	settings  Settings
	clock     engine.Clock
	log       *zap.Logger
}

func NewSession(settings Settings, clock engine.Clock, logger *zap.Logger) *Session {
	if clock == nil {
		clock = engine.RealClock{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if settings.DailyLocation == nil {
		settings.DailyLocation = time.UTC
	}
	id := uuid.NewString()
	return &Session{
		id:        id,
		actionIds: map[string]bool{},
		settings:  settings,
		clock:     clock,
		log:       logger.With(zap.String("session_id", id)),
	}
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) HandleConnection(conn *websocket.Conn) {
	s.attach(conn)
	s.log.Info("session connected")
	defer s.log.Info("session closed")

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.log.Warn("read failed", zap.Error(err))
			}
			return
		}
		var msg ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			s.sendError("bad_request", "invalid json")
			continue
		}
		s.handleMessage(msg)
	}
}

func (s *Session) attach(w messageWriter) {
	s.mu.Lock()
	s.conn = w
	s.mu.Unlock()
}

type ClientMessage struct {
	Type      string     `json:"type"`
	ActionId  string     `json:"actionId,omitempty"`
	Action    *ActionDTO `json:"action,omitempty"`
	Config    *ConfigDTO `json:"config,omitempty"`
	RequestId string     `json:"requestId,omitempty"`
}

type ServerMessage struct {
	Type   string      `json:"type"`
	State  *GameView   `json:"state,omitempty"`
	Events []Event     `json:"events,omitempty"`
	Error  *ErrorView  `json:"error,omitempty"`
	Result *ResultView `json:"result,omitempty"`
	Delta  *DeltaView  `json:"delta,omitempty"`
}

type ErrorView struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type Event struct {
	Type string      `json:"type"`
	Data interface{} `json:"data,omitempty"`
}

func (s *Session) handleMessage(msg ClientMessage) {
	switch msg.Type {
	case "join_session", "request_state":
		s.sendState(nil)
	case "start_game":
		s.startGame(msg.Config)
	case "retry_game":
		s.retryGame()
	case "player_action":
		s.applyAction(msg.ActionId, msg.Action)
	default:
		s.sendError("unknown_type", "unknown message type")
	}
}

func (s *Session) resolveConfig(dto *ConfigDTO) (engine.Config, error) {
	mode := s.settings.DefaultMode
	suits := s.settings.DefaultSuits
	var seed *int64
	if dto != nil {
		switch dto.Mode {
		case "":
		case "solo":
			mode = engine.ModeSoloPractice
		case "daily":
			mode = engine.ModeDailyGrind
		default:
			return engine.Config{}, errors.New("unknown mode")
		}
		if dto.Suits != 0 {
			suits = dto.Suits
		}
		seed = dto.Seed
	}
	if seed != nil {
		return engine.NewConfig(mode, suits, *seed), nil
	}
	if mode == engine.ModeDailyGrind {
		return engine.DailyGrind(suits, s.clock.Now().In(s.settings.DailyLocation)), nil
	}
	return engine.SoloPractice(suits, s.clock), nil
}

func (s *Session) gameOptions() []engine.Option {
	opts := []engine.Option{engine.WithClock(s.clock)}
	if s.settings.StrictInvariants {
		opts = append(opts, engine.WithStrictInvariants())
	}
	return opts
}

func (s *Session) startGame(dto *ConfigDTO) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cfg, err := s.resolveConfig(dto)
	if err != nil {
		s.sendErrorLocked("bad_config", err.Error())
		return
	}
	s.game = engine.NewGame(cfg, s.gameOptions()...)
	s.actionIds = map[string]bool{}
	s.log.Info("game started",
		zap.String("mode", cfg.Mode.String()),
		zap.Int("suits", cfg.NumSuits),
		zap.Int64("seed", cfg.Seed))
	s.sendStateLocked(nil)
}

func (s *Session) retryGame() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.game == nil {
		s.sendErrorLocked("not_started", "game not started")
		return
	}
	s.game = s.game.Retry()
	s.actionIds = map[string]bool{}
	s.log.Info("game retried", zap.Int64("seed", s.game.Config().Seed))
	s.sendStateLocked(nil)
}

func (s *Session) applyAction(actionId string, dto *ActionDTO) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.game == nil {
		s.sendErrorLocked("not_started", "game not started")
		return
	}
	if actionId == "" {
		s.sendErrorLocked("missing_action_id", "actionId required")
		return
	}
	if s.actionIds[actionId] {
		s.sendStateLocked(nil)
		return
	}

	action, err := dto.ToEngine()
	if err != nil {
		s.sendErrorLocked("bad_action", err.Error())
		return
	}
	// Ids live until the next start or retry; a game is at most a few
	// thousand intents.
	s.actionIds[actionId] = true
	prev := s.game.CurrentState()
	if err := engine.Apply(s.game, action); err != nil {
		s.log.Debug("intent rejected", zap.String("action", action.Type.String()), zap.Error(err))
		s.sendErrorLocked(errorCode(err), err.Error())
		return
	}
	events := buildEvents(prev, s.game.CurrentState(), action)
	s.sendStateLocked(events)

	if result, over := s.game.Result(); over {
		s.log.Info("game over",
			zap.String("outcome", result.Outcome.String()),
			zap.Int("score", result.Score),
			zap.Int("moves", result.Moves),
			zap.Int("completed_suits", result.CompletedSuits))
		s.sendResultLocked(result)
	}
}

func errorCode(err error) string {
	switch {
	case errors.Is(err, engine.ErrIllegalMove):
		return "illegal_move"
	case errors.Is(err, engine.ErrDealBlocked):
		return "deal_blocked"
	case errors.Is(err, engine.ErrStockEmpty):
		return "stock_empty"
	case errors.Is(err, engine.ErrNothingToUndo):
		return "nothing_to_undo"
	case errors.Is(err, engine.ErrNoAutoMoveTarget):
		return "no_target"
	case errors.Is(err, engine.ErrGameOver):
		return "game_over"
	default:
		return "apply_failed"
	}
}

func (s *Session) sendState(events []Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sendStateLocked(events)
}

func (s *Session) sendStateLocked(events []Event) {
	if s.conn == nil {
		return
	}
	if s.game == nil {
		s.writeLocked(ServerMessage{Type: "state"})
		return
	}
	s.writeLocked(ServerMessage{
		Type:   "state",
		State:  BuildGameView(s.game.CurrentState(), s.id),
		Events: events,
	})
}

func (s *Session) sendResultLocked(r engine.GameResult) {
	msg := ServerMessage{Type: "result", Result: BuildResultView(r)}
	if prior, ok := s.game.PriorResult(); ok {
		msg.Delta = BuildDeltaView(engine.Compare(r, prior))
	}
	s.writeLocked(msg)
}

func (s *Session) sendError(code, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sendErrorLocked(code, message)
}

func (s *Session) sendErrorLocked(code, message string) {
	s.writeLocked(ServerMessage{
		Type:  "error",
		Error: &ErrorView{Code: code, Message: message},
	})
}

func (s *Session) writeLocked(msg ServerMessage) {
	if s.conn == nil {
		return
	}
	if err := s.conn.WriteJSON(msg); err != nil {
		s.log.Warn("write failed", zap.String("type", msg.Type), zap.Error(err))
	}
}

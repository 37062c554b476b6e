package table

import (
	"sync"

	jsoniter "github.com/json-iterator/go"
	"github.com/looplab/fsm"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"cardroom.io/tableview/internal/gamestate"
	"cardroom.io/tableview/internal/transport"
	"cardroom.io/tableview/internal/util"
	"cardroom.io/tableview/logging"
)

// View lifecycle states. There is no partial-update or reconciliation state:
// a snapshot either has not arrived yet, or the latest one is live.
const (
	ViewState__UNINITIALIZED = "UNINITIALIZED"
	ViewState__LIVE          = "LIVE"
	ViewState__CLOSED        = "CLOSED"
)

const (
	ViewEvent__STATE_RECEIVED = "state_received"
	ViewEvent__CLOSE          = "close"
)

// Config is the viewer identity and capability flags supplied by the hosting
// shell at construction time. Never mutated by the view.
type Config struct {
	PlayerID string
	RoomCode string
	Admin    bool
	Table    Dimensions
}

// Projection is everything a renderer needs for one frame, derived from the
// latest snapshot plus the viewer identity and container geometry.
type Projection struct {
	Screen         Screen                  `json:"screen"`
	Seats          []SeatAssignment        `json:"seats"`
	IsOwner        bool                    `json:"isOwner"`
	ShowSettings   bool                    `json:"showSettings"`
	HostName       string                  `json:"hostName"`
	Standing       bool                    `json:"standing"`
	Pot            int                     `json:"pot"`
	CommunityCards []gamestate.PlayingCard `json:"communityCards,omitempty"`
	Actions        *gamestate.PlayerAction `json:"actions,omitempty"`
	Settings       *gamestate.GameSettings `json:"settings,omitempty"`
	Table          Dimensions              `json:"table"`
}

// Observer is called synchronously on the view loop after every recompute.
type Observer func(p Projection)

// TableView holds the latest snapshot and recomputes the projection whenever
// the transport replaces the state or the container is resized. Both triggers
// are funneled into a single loop goroutine, so projection and predicate
// derivation never race.
type TableView struct {
	logger *zerolog.Logger
	config Config

	sm   *fsm.FSM
	feed transport.Feed
	sub  transport.Subscription

	// Latest authoritative snapshot. nil until the first gameState message.
	state *gamestate.GameState
	dims  Dimensions

	// Only touched on the transport goroutine.
	seenMsgIDs *util.RecentIDs

	chState  chan *gamestate.GameState
	chResize chan Dimensions
	end      chan bool

	mu         sync.Mutex
	projection Projection
	observers  []Observer
	closed     bool
}

func NewTableView(config Config, feed transport.Feed) *TableView {
	logger := logging.GetZeroLogger("table::view", nil).With().
		Str(logging.RoomCodeKey, config.RoomCode).
		Str(logging.PlayerIDKey, config.PlayerID).Logger()

	tv := &TableView{
		logger:     &logger,
		config:     config,
		feed:       feed,
		dims:       config.Table,
		seenMsgIDs: util.NewRecentIDs(10),
		chState:    make(chan *gamestate.GameState, 10),
		chResize:   make(chan Dimensions, 10),
		end:        make(chan bool),
	}
	tv.sm = fsm.NewFSM(
		ViewState__UNINITIALIZED,
		fsm.Events{
			{
				Name: ViewEvent__STATE_RECEIVED,
				Src:  []string{ViewState__UNINITIALIZED, ViewState__LIVE},
				Dst:  ViewState__LIVE,
			},
			{
				Name: ViewEvent__CLOSE,
				Src:  []string{ViewState__UNINITIALIZED, ViewState__LIVE},
				Dst:  ViewState__CLOSED,
			},
		},
		fsm.Callbacks{
			"enter_state": func(e *fsm.Event) {
				tv.logger.Debug().Msgf("[%s] ===> [%s]", e.Src, e.Dst)
			},
		},
	)

	// The first (empty) projection is valid before any snapshot arrives.
	tv.projection = tv.project()
	return tv
}

// OnUpdate registers an observer. Registration must happen before Open; the
// callback is invoked on the view loop.
func (tv *TableView) OnUpdate(observer Observer) {
	tv.mu.Lock()
	defer tv.mu.Unlock()
	tv.observers = append(tv.observers, observer)
}

// Open subscribes to the snapshot feed and starts the view loop.
func (tv *TableView) Open() error {
	sub, err := tv.feed.Subscribe(tv.handleMessage)
	if err != nil {
		return errors.Wrap(err, "Unable to subscribe to the game state feed")
	}
	tv.sub = sub
	go tv.viewLoop()
	return nil
}

// Close unsubscribes from the feed and stops the loop. Safe to call more than
// once and regardless of how teardown was triggered.
func (tv *TableView) Close() error {
	tv.mu.Lock()
	if tv.closed {
		tv.mu.Unlock()
		return nil
	}
	tv.closed = true
	tv.observers = nil
	tv.mu.Unlock()

	var err error
	if tv.sub != nil {
		err = tv.sub.Unsubscribe()
		tv.sub = nil
	}
	tv.event(ViewEvent__CLOSE)
	close(tv.end)
	if err != nil {
		return errors.Wrap(err, "Error while unsubscribing from the game state feed")
	}
	return nil
}

// Resize injects a new container measurement and re-projects. The snapshot is
// untouched; only the geometry consumers see a difference.
func (tv *TableView) Resize(dims Dimensions) {
	select {
	case tv.chResize <- dims:
	case <-tv.end:
	}
}

// Projection returns the most recently computed projection.
func (tv *TableView) Projection() Projection {
	tv.mu.Lock()
	defer tv.mu.Unlock()
	return tv.projection
}

// Snapshot returns the latest sanitized snapshot, or nil before the first
// gameState message.
func (tv *TableView) Snapshot() *gamestate.GameState {
	tv.mu.Lock()
	defer tv.mu.Unlock()
	return tv.state
}

// State reports the lifecycle state (UNINITIALIZED, LIVE, CLOSED).
func (tv *TableView) State() string {
	return tv.sm.Current()
}

// Config returns the construction-time viewer context.
func (tv *TableView) Config() Config {
	return tv.config
}

func (tv *TableView) handleMessage(msg *transport.Message) {
	if msg.Name != gamestate.MsgGameState {
		tv.logger.Debug().Str(logging.MsgTypeKey, msg.Name).Msg("Ignoring message not addressed to the table view")
		return
	}
	if msg.MessageID != "" && tv.seenMsgIDs.Seen(msg.MessageID) {
		// Duplicate message potentially due to server restart. Ignore it.
		tv.logger.Info().Msgf("Ignoring duplicate game state message ID: %s", msg.MessageID)
		return
	}

	var gs gamestate.GameState
	err := jsoniter.Unmarshal(msg.Data, &gs)
	if err != nil {
		tv.logger.Error().Msgf("Error [%s] while unmarshalling game state message [%s]", err, string(msg.Data))
		return
	}
	// Scrub hidden card attributes once, at ingestion.
	gs.Sanitize()

	select {
	case tv.chState <- &gs:
	case <-tv.end:
	}
}

func (tv *TableView) viewLoop() {
	for {
		select {
		case <-tv.end:
			return
		case gs := <-tv.chState:
			tv.applySnapshot(gs)
		case dims := <-tv.chResize:
			tv.dims = dims
			tv.refresh()
		}
	}
}

// applySnapshot replaces the previous state wholesale. Fields present only in
// an earlier snapshot never leak into the projection.
func (tv *TableView) applySnapshot(gs *gamestate.GameState) {
	tv.mu.Lock()
	tv.state = gs
	tv.mu.Unlock()
	tv.event(ViewEvent__STATE_RECEIVED)
	tv.refresh()
}

func (tv *TableView) refresh() {
	p := tv.project()

	tv.mu.Lock()
	tv.projection = p
	observers := make([]Observer, len(tv.observers))
	copy(observers, tv.observers)
	tv.mu.Unlock()

	for _, observer := range observers {
		observer(p)
	}
}

func (tv *TableView) project() Projection {
	gs := tv.state
	viewerID := tv.config.PlayerID

	var players []gamestate.Player
	if gs != nil {
		players = gs.Players
	}

	p := Projection{
		Screen:       CurrentScreen(gs),
		Seats:        AssignSeats(players, viewerID),
		IsOwner:      IsOwner(gs, viewerID),
		ShowSettings: CanShowSettings(gs, viewerID),
		HostName:     HostDisplayName(gs),
		Standing:     IsStanding(gs, viewerID),
		Table:        tv.dims,
	}
	if gs != nil {
		p.Actions = gs.Actions
		if p.ShowSettings {
			p.Settings = gs.GameSettings
		}
		if gs.CurrentRound != nil {
			p.Pot = gs.CurrentRound.Pot
			p.CommunityCards = gs.CurrentRound.CommunityCards
		}
	}
	return p
}

func (tv *TableView) event(event string) {
	err := tv.sm.Event(event)
	if err != nil {
		tv.logger.Warn().Msgf("Error from state machine: %s", err.Error())
	}
}

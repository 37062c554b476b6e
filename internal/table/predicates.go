package table

import (
	"fmt"

	"cardroom.io/tableview/internal/gamestate"
)

// Screen selects which top-level view the renderer shows.
type Screen string

const (
	ScreenWaiting  Screen = "WAITING"
	ScreenRound    Screen = "ROUND"
	ScreenShowdown Screen = "SHOWDOWN"
)

// The predicates below are total functions over (snapshot, viewer id). The
// renderer calls them unconditionally on every state replacement, including
// before the first snapshot has arrived (gs == nil), so they only ever fall
// back to a default, never fail.

func IsOwner(gs *gamestate.GameState, viewerID string) bool {
	return gs != nil && gs.OwnerID == viewerID
}

func CanShowSettings(gs *gamestate.GameState, viewerID string) bool {
	return IsOwner(gs, viewerID) && gs.GameSettings != nil
}

// OwnerPlayer resolves the room owner from the player list.
func OwnerPlayer(gs *gamestate.GameState) (gamestate.Player, bool) {
	if gs == nil {
		return gamestate.Player{}, false
	}
	return findPlayer(gs.Players, gs.OwnerID)
}

// LocalPlayer resolves the viewer from the player list. Not found is a valid
// state (spectator, or not yet joined).
func LocalPlayer(gs *gamestate.GameState, viewerID string) (gamestate.Player, bool) {
	if gs == nil {
		return gamestate.Player{}, false
	}
	return findPlayer(gs.Players, viewerID)
}

func HostDisplayName(gs *gamestate.GameState) string {
	owner, ok := OwnerPlayer(gs)
	if !ok {
		return ""
	}
	return owner.Name
}

func IsStanding(gs *gamestate.GameState, viewerID string) bool {
	local, ok := LocalPlayer(gs, viewerID)
	return ok && local.Standing
}

func HasActiveRound(gs *gamestate.GameState) bool {
	return gs != nil && gs.CurrentRound != nil
}

func IsShowdown(gs *gamestate.GameState) bool {
	return HasActiveRound(gs) && gs.CurrentRound.Showdown != nil
}

func CurrentScreen(gs *gamestate.GameState) Screen {
	if IsShowdown(gs) {
		return ScreenShowdown
	}
	if HasActiveRound(gs) {
		return ScreenRound
	}
	return ScreenWaiting
}

// WaitingMessage is the line shown on the waiting screen.
func WaitingMessage(gs *gamestate.GameState) string {
	return fmt.Sprintf("Waiting on %s to start a round.", HostDisplayName(gs))
}

func findPlayer(players []gamestate.Player, playerID string) (gamestate.Player, bool) {
	if playerID == "" {
		return gamestate.Player{}, false
	}
	for _, p := range players {
		if p.ID == playerID {
			return p, true
		}
	}
	return gamestate.Player{}, false
}

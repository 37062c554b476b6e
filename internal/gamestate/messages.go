package gamestate

// MsgGameState is the inbound message carrying a full state snapshot.
const MsgGameState string = "gameState"

// Round control messages (host/admin surface)
const (
	ActionStartRound string = "start_round"
	ActionEndRound   string = "end_round"
	ActionAddAI      string = "add_ai"
)

// Seat messages
const (
	ActionSit   string = "action_sit"
	ActionStand string = "action_stand"
)

// In-round action messages
const (
	ActionCall           string = "action_call"
	ActionCheck          string = "action_check"
	ActionFold           string = "action_fold"
	ActionRaise          string = "action_raise"
	ActionReveal         string = "action_reveal"
	ActionMuck           string = "action_muck"
	ActionWaitForPlayers string = "wait_for_players"
)

// Owner-only messages. The server is the enforcement point; the client only
// decides whether to offer the control.
const (
	ActionOwnerChangeGameSettings string = "action_owner_change_game_settings"
	ActionOwnerGiveChips          string = "action_owner_give_chips"
	ActionOwnerTakeChips          string = "action_owner_take_chips"
)

package gamestate

import (
	jsoniter "github.com/json-iterator/go"
)

// GameState is the complete, authoritative room state pushed by the game
// server. Every inbound snapshot fully replaces the previous one; the client
// never merges partial updates.
type GameState struct {
	Players      []Player      `json:"players"`
	DealerID     string        `json:"dealerId,omitempty"`
	OwnerID      string        `json:"ownerId,omitempty"`
	CurrentRound *Round        `json:"currentRound,omitempty"`
	GameSettings *GameSettings `json:"gameSettings,omitempty"`
	Actions      *PlayerAction `json:"actions,omitempty"`
}

// Player as reported by the server. The round-participation fields are only
// populated while the player is in a hand.
type Player struct {
	ID             string        `json:"id"`
	Name           string        `json:"name"`
	Chips          int           `json:"chips"`
	Connected      bool          `json:"connected"`
	Standing       bool          `json:"standing"`
	InCurrentRound bool          `json:"inCurrentRound,omitempty"`
	Folded         bool          `json:"folded,omitempty"`
	CurrentBet     int           `json:"currentBet,omitempty"`
	Hand           []PlayingCard `json:"hand,omitempty"`
	Winnings       int           `json:"winnings,omitempty"`
	HandName       string        `json:"handName,omitempty"`
}

// ActionHistoryItem is one entry of the round's append-only action log. Data
// is an opaque display payload owned by the server; it is passed through
// verbatim.
type ActionHistoryItem struct {
	PlayerID string              `json:"playerId"`
	Action   string              `json:"action"`
	Data     jsoniter.RawMessage `json:"data,omitempty"`
	ID       int64               `json:"id"`
}

type Round struct {
	ActionHistory       []ActionHistoryItem `json:"actionHistory"`
	CurrentActionID     string              `json:"currentActionId"`
	BettingRoundStarted bool                `json:"bettingRoundStarted"`
	Showdown            *Showdown           `json:"showdown,omitempty"`
	Pot                 int                 `json:"pot"`
	CommunityCards      []PlayingCard       `json:"communityCards,omitempty"`
}

type Showdown struct {
	Players         []Player `json:"players"`
	CurrentActionID string   `json:"currentActionId"`
}

// GameSettings is present only when the viewer is allowed to see it (room
// owner) or when a round needs it for display scaling.
type GameSettings struct {
	ChipValue        float64 `json:"chipValue"`
	SmallBlindAmount int     `json:"smallBlindAmount"`
	BigBlindAmount   int     `json:"bigBlindAmount"`
}

// PlayerAction describes the choices the server is currently offering the
// viewer. ActionMetadata is opaque to the client.
type PlayerAction struct {
	ActionList     []string            `json:"actionList"`
	ActionMetadata jsoniter.RawMessage `json:"actionMetadata,omitempty"`
}

type PlayingCard struct {
	Description string `json:"description,omitempty"`
	Suit        string `json:"suit,omitempty"`
	Sort        int    `json:"sort,omitempty"`
	FaceDown    bool   `json:"facedown,omitempty"`
}

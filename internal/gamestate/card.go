package gamestate

// Sanitized returns a copy of the card that is safe to hand to any renderer.
// A face-down card must not carry its hidden attributes even if the server
// included them in the payload; the facedown flag is the authoritative signal
// to suppress disclosure.
func (c PlayingCard) Sanitized() PlayingCard {
	if !c.FaceDown {
		return c
	}
	return PlayingCard{FaceDown: true}
}

func sanitizeCards(cards []PlayingCard) {
	for i := range cards {
		cards[i] = cards[i].Sanitized()
	}
}

func sanitizePlayers(players []Player) {
	for i := range players {
		sanitizeCards(players[i].Hand)
	}
}

// Sanitize scrubs hidden attributes from every face-down card in the
// snapshot. The view applies it once at ingestion so that no downstream
// consumer can leak a hidden card.
func (gs *GameState) Sanitize() {
	sanitizePlayers(gs.Players)
	if gs.CurrentRound != nil {
		sanitizeCards(gs.CurrentRound.CommunityCards)
		if gs.CurrentRound.Showdown != nil {
			sanitizePlayers(gs.CurrentRound.Showdown.Players)
		}
	}
}

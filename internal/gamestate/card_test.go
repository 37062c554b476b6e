package gamestate

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSanitizedFaceDownCard(t *testing.T) {
	testCases := []struct {
		card     PlayingCard
		expected PlayingCard
	}{
		{
			card:     PlayingCard{Description: "A", Suit: "spades", Sort: 14},
			expected: PlayingCard{Description: "A", Suit: "spades", Sort: 14},
		},
		{
			card:     PlayingCard{FaceDown: true},
			expected: PlayingCard{FaceDown: true},
		},
		{
			// A buggy snapshot may include hidden attributes on a face-down
			// card. They must not survive sanitization.
			card:     PlayingCard{Description: "K", Suit: "hearts", Sort: 13, FaceDown: true},
			expected: PlayingCard{FaceDown: true},
		},
	}

	for _, tc := range testCases {
		got := tc.card.Sanitized()
		if diff := cmp.Diff(tc.expected, got); diff != "" {
			t.Errorf("Sanitized() mismatch (-expected +got):\n%s", diff)
		}
	}
}

func TestSanitizeSnapshot(t *testing.T) {
	gs := GameState{
		Players: []Player{
			{
				ID: "p1",
				Hand: []PlayingCard{
					{Description: "A", Suit: "spades", FaceDown: true},
					{Description: "K", Suit: "spades", FaceDown: true},
				},
			},
			{
				ID:   "p2",
				Hand: []PlayingCard{{Description: "2", Suit: "clubs"}},
			},
		},
		CurrentRound: &Round{
			CommunityCards: []PlayingCard{
				{Description: "T", Suit: "diamonds"},
				{Description: "9", Suit: "diamonds", FaceDown: true},
			},
			Showdown: &Showdown{
				Players: []Player{
					{ID: "p1", Hand: []PlayingCard{{Description: "Q", Suit: "hearts", FaceDown: true}}},
				},
			},
		},
	}

	gs.Sanitize()

	for _, card := range gs.Players[0].Hand {
		if card.Description != "" || card.Suit != "" {
			t.Errorf("face-down hand card leaked attributes: %+v", card)
		}
	}
	if diff := cmp.Diff([]PlayingCard{{Description: "2", Suit: "clubs"}}, gs.Players[1].Hand); diff != "" {
		t.Errorf("face-up hand should be untouched (-expected +got):\n%s", diff)
	}
	if gs.CurrentRound.CommunityCards[0].Description != "T" {
		t.Errorf("face-up community card should be untouched: %+v", gs.CurrentRound.CommunityCards[0])
	}
	if gs.CurrentRound.CommunityCards[1].Description != "" {
		t.Errorf("face-down community card leaked attributes: %+v", gs.CurrentRound.CommunityCards[1])
	}
	if gs.CurrentRound.Showdown.Players[0].Hand[0].Suit != "" {
		t.Errorf("face-down showdown card leaked attributes: %+v", gs.CurrentRound.Showdown.Players[0].Hand[0])
	}
}

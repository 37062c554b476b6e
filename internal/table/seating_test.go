package table

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	"cardroom.io/tableview/internal/gamestate"
)

func makePlayers(ids ...string) []gamestate.Player {
	players := make([]gamestate.Player, len(ids))
	for i, id := range ids {
		players[i] = gamestate.Player{ID: id, Name: "player " + id}
	}
	return players
}

func seatByID(seats []SeatAssignment) map[string]int {
	m := make(map[string]int)
	for _, s := range seats {
		m[s.Player.ID] = s.Seat
	}
	return m
}

func TestAssignSeatsViewerAnchored(t *testing.T) {
	testCases := []struct {
		players  []gamestate.Player
		viewerID string
		expected map[string]int
	}{
		{
			players:  makePlayers("p1"),
			viewerID: "p1",
			expected: map[string]int{"p1": 0},
		},
		{
			players:  makePlayers("p1", "p2", "p3"),
			viewerID: "p1",
			expected: map[string]int{"p1": 0, "p2": 1, "p3": 2},
		},
		{
			players:  makePlayers("p1", "p2", "p3"),
			viewerID: "p2",
			expected: map[string]int{"p2": 0, "p3": 1, "p1": 2},
		},
		{
			players:  makePlayers("p1", "p2", "p3", "p4", "p5"),
			viewerID: "p5",
			expected: map[string]int{"p5": 0, "p1": 1, "p2": 2, "p3": 3, "p4": 4},
		},
	}

	for i, tc := range testCases {
		seats := AssignSeats(tc.players, tc.viewerID)
		if diff := cmp.Diff(tc.expected, seatByID(seats)); diff != "" {
			t.Errorf("case %d: seat assignment mismatch (-expected +got):\n%s", i, diff)
		}
	}
}

// For every viewer position k in a list of N players, the viewer must land on
// seat 0, every other player at position i on seat (N+(i-k))%N, and the seats
// must form a permutation of [0, N).
func TestAssignSeatsRotationProperty(t *testing.T) {
	for n := 1; n <= 9; n++ {
		ids := make([]string, n)
		for i := range ids {
			ids[i] = fmt.Sprintf("p%d", i)
		}
		players := makePlayers(ids...)

		for k := 0; k < n; k++ {
			seats := AssignSeats(players, players[k].ID)
			if len(seats) != n {
				t.Fatalf("n=%d k=%d: expected %d assignments, got %d", n, k, n, len(seats))
			}
			used := make(map[int]bool)
			for i, s := range seats {
				expected := (n + (i - k)) % n
				if s.Seat != expected {
					t.Errorf("n=%d k=%d i=%d: expected seat %d, got %d", n, k, i, expected, s.Seat)
				}
				if s.Seat < 0 || s.Seat >= n || used[s.Seat] {
					t.Errorf("n=%d k=%d: seat %d out of range or reused", n, k, s.Seat)
				}
				used[s.Seat] = true
			}
			if seats[k].Seat != ViewerSeat {
				t.Errorf("n=%d k=%d: viewer not on seat %d", n, k, ViewerSeat)
			}
		}
	}
}

func TestAssignSeatsEmptyList(t *testing.T) {
	seats := AssignSeats(nil, "p1")
	if len(seats) != 0 {
		t.Errorf("expected empty assignment, got %v", seats)
	}
}

// A spectator or admin whose id is not in the list gets the identity
// ordering; there is no anchor to rotate around.
func TestAssignSeatsSpectatorFallback(t *testing.T) {
	players := makePlayers("p1", "p2", "p3")
	seats := AssignSeats(players, "spectator")
	for i, s := range seats {
		if s.Seat != i {
			t.Errorf("expected identity seat %d for %s, got %d", i, s.Player.ID, s.Seat)
		}
	}
}

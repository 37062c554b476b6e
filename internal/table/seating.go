package table

import (
	"cardroom.io/tableview/internal/gamestate"
)

// ViewerSeat is the fixed seat index of the local viewer (rendered bottom
// center of the table).
const ViewerSeat = 0

// SeatAssignment pairs a player with the table seat the renderer should place
// them in.
type SeatAssignment struct {
	Player gamestate.Player
	Seat   int
}

// AssignSeats maps the server-ordered player list onto table seats so that
// the viewer always lands on seat 0 while everyone else keeps their relative
// circular order. If the viewer is not in the list (spectator/admin), the
// seat assignment degrades to identity ordering since there is no local
// anchor to rotate around.
func AssignSeats(players []gamestate.Player, viewerID string) []SeatAssignment {
	n := len(players)
	if n == 0 {
		return []SeatAssignment{}
	}

	localIndex := -1
	for i, p := range players {
		if p.ID == viewerID {
			localIndex = i
			break
		}
	}

	seats := make([]SeatAssignment, n)
	for i, p := range players {
		seat := i
		if localIndex >= 0 {
			seat = (n + (i - localIndex)) % n
		}
		seats[i] = SeatAssignment{Player: p, Seat: seat}
	}
	return seats
}

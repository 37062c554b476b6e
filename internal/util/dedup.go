package util

// RecentIDs remembers the most recent server message IDs for deduplicating
// replayed messages (e.g., after a server restart). Oldest entries are
// evicted once the container is full.
type RecentIDs struct {
	data    []string
	maxSize int
}

func NewRecentIDs(maxSize int) *RecentIDs {
	return &RecentIDs{
		data:    make([]string, 0),
		maxSize: maxSize,
	}
}

// Seen reports whether the id was remembered and remembers it if not.
func (r *RecentIDs) Seen(id string) bool {
	for _, s := range r.data {
		if s == id {
			return true
		}
	}
	r.data = append(r.data, id)
	if len(r.data) > r.maxSize {
		r.data = r.data[1:]
	}
	return false
}

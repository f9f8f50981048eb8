package domain

// Session is one player's (or one channel's) progress against a puzzle:
// the words gotten so far plus caller-owned metadata. The session references
// its puzzle by day; the puzzle record itself lives in the puzzle table.
type Session struct {
	ID          string         // opaque unique identifier
	Day         string         // day of the puzzle this session plays
	GottenWords WordSet        // grows monotonically; mutated only by good guesses
	Metadata    map[string]any // opaque to the engine, serialized as a JSON object
}

// NewSession creates a session record for the given puzzle day. A nil seed
// starts the session empty; the seed is cloned so the caller keeps ownership
// of its own set.
func NewSession(id, day string, seed WordSet, metadata map[string]any) *Session {
	gotten := make(WordSet)
	if seed != nil {
		gotten = seed.Clone()
	}
	if metadata == nil {
		metadata = make(map[string]any)
	}
	return &Session{
		ID:          id,
		Day:         day,
		GottenWords: gotten,
		Metadata:    metadata,
	}
}

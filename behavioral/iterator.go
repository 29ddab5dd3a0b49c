package behavioral

// Playlist is an insertion-ordered collection exposing a cursor.
type Playlist struct {
	tracks []string
}

// Append adds a track at the end.
func (p *Playlist) Append(track string) { p.tracks = append(p.tracks, track) }

// Iterator returns a fresh cursor positioned before the first track.
// Cursors are independent: advancing one does not move another.
func (p *Playlist) Iterator() *TrackIterator {
	return &TrackIterator{tracks: p.tracks}
}

// TrackIterator walks a playlist in insertion order.
type TrackIterator struct {
	tracks []string
	pos    int
}

// HasNext reports whether Next will succeed.
func (it *TrackIterator) HasNext() bool { return it.pos < len(it.tracks) }

// Next returns the next track and advances the cursor.
// Returns ErrExhausted past the end.
func (it *TrackIterator) Next() (string, error) {
	if !it.HasNext() {
		return "", ErrExhausted
	}
	track := it.tracks[it.pos]
	it.pos++

	return track, nil
}

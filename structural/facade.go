package structural

// codec, buffer, and audioOut are the subsystems the facade hides.
// Clients never touch them directly.

type codec struct{}

func (codec) decode(track string) string { return "pcm(" + track + ")" }

type buffer struct{}

func (buffer) fill(frames string) string { return "buffered " + frames }

type audioOut struct{}

func (audioOut) play(buffered string) string { return "playing " + buffered }

// PlayerFacade exposes the whole decode→buffer→output pipeline as one
// call.
type PlayerFacade struct {
	c codec
	b buffer
	o audioOut
}

// NewPlayerFacade wires the subsystems together.
func NewPlayerFacade() *PlayerFacade { return &PlayerFacade{} }

// Play runs the full pipeline for one track: decode, buffer, output.
func (p *PlayerFacade) Play(track string) string {
	frames := p.c.decode(track)
	buffered := p.b.fill(frames)

	return p.o.play(buffered)
}

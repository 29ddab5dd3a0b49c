package structural

import "fmt"

// Glyph carries only intrinsic state: the rune and its face. It is
// shared and cached across all uses; position never lives here.
type Glyph struct {
	Char rune
	Face string
}

// Draw renders the glyph at an extrinsic position supplied per call.
func (g *Glyph) Draw(x, y int) string {
	return fmt.Sprintf("%c[%s]@(%d,%d)", g.Char, g.Face, x, y)
}

// GlyphFactory interns glyphs by intrinsic key. Repeated requests for
// the same (char, face) pair return the same pointer.
type GlyphFactory struct {
	pool map[string]*Glyph
}

// NewGlyphFactory returns an empty intern pool.
func NewGlyphFactory() *GlyphFactory {
	return &GlyphFactory{pool: make(map[string]*Glyph)}
}

// Glyph returns the interned flyweight for (char, face), creating it on
// first request.
func (f *GlyphFactory) Glyph(char rune, face string) *Glyph {
	key := string(char) + "/" + face
	if g, ok := f.pool[key]; ok {
		return g
	}
	g := &Glyph{Char: char, Face: face}
	f.pool[key] = g

	return g
}

// PoolSize reports how many distinct flyweights are interned.
func (f *GlyphFactory) PoolSize() int { return len(f.pool) }

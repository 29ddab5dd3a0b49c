package structural

import (
	"errors"
	"fmt"
)

// ErrAccessDenied indicates the proxy caller lacks the required role.
var ErrAccessDenied = errors.New("structural: access denied")

// Image is the capability shared by the real subject and its proxy.
type Image interface {
	Display() (string, error)
}

// diskImage is the expensive real subject; loading it is the cost the
// proxy defers.
type diskImage struct {
	path   string
	loaded bool
}

func (d *diskImage) load() { d.loaded = true }

func (d *diskImage) Display() (string, error) {
	return "showing " + d.path, nil
}

// ImageProxy defers loading until the first Display and guards access by
// role. The underlying image is loaded at most once.
type ImageProxy struct {
	path string
	role string
	real *diskImage

	// Loads counts real loads; exposed so tests can assert laziness.
	Loads int
}

// NewImageProxy returns a proxy for path that admits only callers with
// the given role.
func NewImageProxy(path, role string) *ImageProxy {
	return &ImageProxy{path: path, role: role}
}

// DisplayAs checks the caller's role, lazily loads the real image on
// first use, and delegates. Returns ErrAccessDenied for any other role.
func (p *ImageProxy) DisplayAs(role string) (string, error) {
	if role != p.role {
		return "", fmt.Errorf("%w: role %q, need %q", ErrAccessDenied, role, p.role)
	}
	if p.real == nil {
		p.real = &diskImage{path: p.path}
		p.real.load()
		p.Loads++
	}

	return p.real.Display()
}

// Display delegates with the proxy's own role; it satisfies Image so a
// proxy can stand wherever the real subject is expected.
func (p *ImageProxy) Display() (string, error) { return p.DisplayAs(p.role) }

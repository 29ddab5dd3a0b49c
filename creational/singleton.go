package creational

import "sync"

// Config is the payload guarded by the Lazy cell: any expensive,
// share-everywhere object would do, a parsed configuration is the
// traditional example.
type Config struct {
	Env      string
	Settings map[string]string
}

// Lazy owns the one permitted Config instance. The cell itself is
// explicitly constructed and explicitly passed (no hidden package-level
// instance), but within one cell the classic singleton contract holds:
// the instance is created on the first Get and reused for every
// subsequent Get, with no teardown or reset.
type Lazy struct {
	once     sync.Once
	build    func() *Config
	instance *Config
}

// NewLazy returns a cell that will build its instance with build on the
// first call to Get. The build function runs at most once.
func NewLazy(build func() *Config) *Lazy {
	return &Lazy{build: build}
}

// Get returns the single instance, constructing it on first access.
// Safe for concurrent use; all callers observe the same pointer.
func (l *Lazy) Get() *Config {
	l.once.Do(func() { l.instance = l.build() })
	return l.instance
}

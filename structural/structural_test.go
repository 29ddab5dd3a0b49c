package structural_test

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/katalvlaran/patterns/structural"
)

// TestSensorAdapter verifies the Celsius→Fahrenheit conversion through
// the adapted capability.
func TestSensorAdapter(t *testing.T) {
	sensor := &structural.CelsiusSensor{Reading: 100}
	var reader structural.FahrenheitReader = structural.SensorAdapter{Sensor: sensor}

	if got := reader.Fahrenheit(); math.Abs(got-212) > 1e-9 {
		t.Errorf("Fahrenheit() = %v; want 212", got)
	}

	// the adapter reads the adaptee live, not a cached value
	sensor.Reading = 0
	if got := reader.Fahrenheit(); math.Abs(got-32) > 1e-9 {
		t.Errorf("Fahrenheit() after update = %v; want 32", got)
	}
}

// TestBridge_IndependentVariation draws both shapes through both renderers.
func TestBridge_IndependentVariation(t *testing.T) {
	cases := []struct {
		name string
		draw func() string
		want string
	}{
		{"vector circle", structural.CircleShape{Radius: 2, Renderer: structural.VectorRenderer{}}.Draw, "vector circle r=2.0"},
		{"raster circle", structural.CircleShape{Radius: 2, Renderer: structural.RasterRenderer{}}.Draw, "raster circle r=2.0"},
		{"vector square", structural.SquareShape{Side: 3, Renderer: structural.VectorRenderer{}}.Draw, "vector square side=3.0"},
		{"raster square", structural.SquareShape{Side: 3, Renderer: structural.RasterRenderer{}}.Draw, "raster square side=3.0"},
	}
	for _, tc := range cases {
		if got := tc.draw(); got != tc.want {
			t.Errorf("%s: got %q; want %q", tc.name, got, tc.want)
		}
	}
}

// TestComposite_SizeAggregation checks recursive Size over a nested tree.
func TestComposite_SizeAggregation(t *testing.T) {
	root := structural.NewDir("root").
		Add(structural.NewFile("a.txt", 10)).
		Add(structural.NewDir("sub").
			Add(structural.NewFile("b.bin", 20)).
			Add(structural.NewFile("c.bin", 30)))

	if got := root.Size(); got != 60 {
		t.Errorf("Size() = %d; want 60", got)
	}
	if got := structural.NewDir("empty").Size(); got != 0 {
		t.Errorf("empty dir Size() = %d; want 0", got)
	}
}

// TestComposite_InsertionOrder verifies children iterate in Add order.
func TestComposite_InsertionOrder(t *testing.T) {
	d := structural.NewDir("d").
		Add(structural.NewFile("first", 1)).
		Add(structural.NewFile("second", 2))

	var names []string
	for _, c := range d.Children() {
		names = append(names, c.Name())
	}
	if want := []string{"first", "second"}; !reflect.DeepEqual(names, want) {
		t.Errorf("Children order = %v; want %v", names, want)
	}
}

// TestDecorator_Stacking stacks two decorators and checks delivery order.
func TestDecorator_Stacking(t *testing.T) {
	var n structural.Notifier = structural.EmailNotifier{Address: "ops@example.com"}
	n = structural.SMSDecorator{Wrapped: n, Number: "+100"}
	n = structural.SlackDecorator{Wrapped: n, Channel: "#alerts"}

	got := n.Notify("disk full")
	want := []string{
		"email to ops@example.com: disk full",
		"sms to +100: disk full",
		"slack to #alerts: disk full",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Notify() = %v; want %v", got, want)
	}
}

// TestFacade_Play checks the full pipeline behind one call.
func TestFacade_Play(t *testing.T) {
	p := structural.NewPlayerFacade()
	if got, want := p.Play("song.flac"), "playing buffered pcm(song.flac)"; got != want {
		t.Errorf("Play() = %q; want %q", got, want)
	}
}

// TestFlyweight_Interning verifies identical intrinsic state is shared
// and distinct state is not.
func TestFlyweight_Interning(t *testing.T) {
	f := structural.NewGlyphFactory()

	a1 := f.Glyph('a', "mono")
	a2 := f.Glyph('a', "mono")
	b := f.Glyph('b', "mono")
	aSerif := f.Glyph('a', "serif")

	if a1 != a2 {
		t.Error("same intrinsic key must return the same pointer")
	}
	if a1 == b || a1 == aSerif {
		t.Error("distinct intrinsic keys must not share a flyweight")
	}
	if got := f.PoolSize(); got != 3 {
		t.Errorf("PoolSize() = %d; want 3", got)
	}

	// extrinsic state is per-call
	if got, want := a1.Draw(1, 2), "a[mono]@(1,2)"; got != want {
		t.Errorf("Draw() = %q; want %q", got, want)
	}
}

// TestProxy_LazyLoadAndGuard covers lazy loading, caching, and the
// access guard.
func TestProxy_LazyLoadAndGuard(t *testing.T) {
	p := structural.NewImageProxy("photo.png", "admin")

	if p.Loads != 0 {
		t.Fatalf("image loaded before first Display")
	}
	if _, err := p.DisplayAs("guest"); !errors.Is(err, structural.ErrAccessDenied) {
		t.Errorf("guest access: want ErrAccessDenied, got %v", err)
	}
	if p.Loads != 0 {
		t.Error("denied access must not trigger a load")
	}

	out, err := p.DisplayAs("admin")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "showing photo.png" {
		t.Errorf("Display = %q", out)
	}
	if _, err = p.DisplayAs("admin"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Loads != 1 {
		t.Errorf("Loads = %d; want 1 (load once, reuse afterwards)", p.Loads)
	}
}

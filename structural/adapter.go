package structural

// FahrenheitReader is the capability modern clients expect.
type FahrenheitReader interface {
	Fahrenheit() float64
}

// CelsiusSensor is the legacy component: it only speaks Celsius and must
// not be modified.
type CelsiusSensor struct {
	Reading float64
}

// Celsius returns the raw legacy reading.
func (s *CelsiusSensor) Celsius() float64 { return s.Reading }

// SensorAdapter adapts a CelsiusSensor to the FahrenheitReader
// capability. The adapter owns no state beyond the adaptee reference.
type SensorAdapter struct {
	Sensor *CelsiusSensor
}

// Fahrenheit converts the adaptee's Celsius reading on every call.
func (a SensorAdapter) Fahrenheit() float64 {
	return a.Sensor.Celsius()*9/5 + 32
}

package scenario

// Range is a scientifically accepted parameter window.
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Contains reports whether v lies inside the window (inclusive).
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Paleoclimatic parameter windows used by the preset validator. The
// eccentricity and tilt windows cover the Quaternary orbital
// solutions; the PETM CO₂ window follows proxy reconstructions.
var (
	EccentricityRange = Range{Min: 0.0034, Max: 0.058}
	AxialTiltRange    = Range{Min: 22.1, Max: 24.5}
	PrecessionRange   = Range{Min: 0, Max: 360}
	PETMCO2Range      = Range{Min: 1000, Max: 2000}
)

// Reference CO₂ concentrations in ppm.
const (
	CO2Preindustrial = 280.0
	CO2Glacial       = 180.0
	CO2Modern        = 420.0
)

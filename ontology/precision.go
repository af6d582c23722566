package ontology

// Precision indicates whether a recognized value is exact or approximate.
type Precision string

const (
	// PrecisionExact marks a value recognized without hedging.
	PrecisionExact Precision = "Exact"

	// PrecisionApproximate marks a value hedged in the source text
	// ("around 5€", "ungefähr").
	PrecisionApproximate Precision = "Approximate"
)

// IsValid checks whether p is a known precision.
func (p Precision) IsValid() bool {
	return p == PrecisionExact || p == PrecisionApproximate
}

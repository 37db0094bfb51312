package neat

// Settings holds the tunable rates and coefficients that govern mutation,
// crossover, speciation and reproduction. Construct with New and customize
// with the fluent setters; all fields have NEAT-standard defaults.
type Settings struct {
	Inputs  uint32
	Outputs uint32
	PopSize uint32

	ConnMutRate  float64
	NodeMutRate  float64
	WtMutRate    float64
	WtShiftRate  float64

	OffGeneOnRate   float64
	OffInBothOnRate float64
	OnlyMutRate     float64

	DisjointCoeff    float64
	ExcessCoeff      float64
	WeightCoeff      float64
	ActivationCoeff  float64
	SpeciationThresh float64
	AllowedStagnancy uint32
}

// New returns Settings configured with the canonical NEAT defaults for a
// population of pop_size genomes evolving the given input/output arity.
func New(inputs, outputs, popSize uint32) *Settings {
	return &Settings{
		Inputs:  inputs,
		Outputs: outputs,
		PopSize: popSize,

		ConnMutRate: 0.05,
		NodeMutRate: 0.03,
		WtMutRate:   0.8,
		WtShiftRate: 0.9,

		OffGeneOnRate:   0.25,
		OffInBothOnRate: 0.01,
		OnlyMutRate:     0.25,

		DisjointCoeff:    1.0,
		ExcessCoeff:      1.0,
		WeightCoeff:      0.4,
		ActivationCoeff:  1.0,
		SpeciationThresh: 3.0,
		AllowedStagnancy: 15,
	}
}

// WithConnMutRate sets the probability of attempting to add a new connection during mutation.
func (s *Settings) WithConnMutRate(rate float64) *Settings { s.ConnMutRate = rate; return s }

// WithNodeMutRate sets the probability of attempting to split a connection with a new node during mutation.
func (s *Settings) WithNodeMutRate(rate float64) *Settings { s.NodeMutRate = rate; return s }

// WithWtMutRate sets the probability that any given connection's weight is mutated.
func (s *Settings) WithWtMutRate(rate float64) *Settings { s.WtMutRate = rate; return s }

// WithWtShiftRate sets the probability that a weight mutation perturbs rather than replaces the weight.
func (s *Settings) WithWtShiftRate(rate float64) *Settings { s.WtShiftRate = rate; return s }

// WithOffGeneOnRate sets the probability a crossover gene disabled in exactly one parent is re-enabled.
func (s *Settings) WithOffGeneOnRate(rate float64) *Settings { s.OffGeneOnRate = rate; return s }

// WithOffInBothOnRate sets the probability a crossover gene disabled in both parents is re-enabled.
func (s *Settings) WithOffInBothOnRate(rate float64) *Settings { s.OffInBothOnRate = rate; return s }

// WithOnlyMutRate sets the probability an offspring slot is filled by cloning rather than crossover.
func (s *Settings) WithOnlyMutRate(rate float64) *Settings { s.OnlyMutRate = rate; return s }

// WithDisjointCoeff sets the compatibility-distance disjoint-gene coefficient.
func (s *Settings) WithDisjointCoeff(coeff float64) *Settings { s.DisjointCoeff = coeff; return s }

// WithExcessCoeff sets the compatibility-distance excess-gene coefficient.
func (s *Settings) WithExcessCoeff(coeff float64) *Settings { s.ExcessCoeff = coeff; return s }

// WithWeightCoeff sets the compatibility-distance matching-weight-difference coefficient.
func (s *Settings) WithWeightCoeff(coeff float64) *Settings { s.WeightCoeff = coeff; return s }

// WithActivationCoeff sets the compatibility-distance activation-mismatch coefficient.
func (s *Settings) WithActivationCoeff(coeff float64) *Settings { s.ActivationCoeff = coeff; return s }

// WithSpeciationThreshold sets the compatibility-distance threshold below which genomes speciate together.
func (s *Settings) WithSpeciationThreshold(threshold float64) *Settings {
	s.SpeciationThresh = threshold
	return s
}

// WithAllowedStagnancy sets the number of generations without improvement before a species is culled.
func (s *Settings) WithAllowedStagnancy(stagnancy uint32) *Settings {
	s.AllowedStagnancy = stagnancy
	return s
}

// HyperSettings configures the HyperNEAT substrate weight scaler.
type HyperSettings struct {
	MinWeight float64
	MaxWeight float64
}

// NewHyperSettings returns HyperSettings with the canonical defaults: a
// dead band below 0.2 and a ceiling magnitude of 3.0.
func NewHyperSettings() *HyperSettings {
	return &HyperSettings{MinWeight: 0.2, MaxWeight: 3.0}
}

// WithMinWeight sets the minimum CPPN output magnitude below which the scaled weight is zero.
func (h *HyperSettings) WithMinWeight(w float64) *HyperSettings { h.MinWeight = w; return h }

// WithMaxWeight sets the maximum magnitude a scaled substrate weight can take.
func (h *HyperSettings) WithMaxWeight(w float64) *HyperSettings { h.MaxWeight = w; return h }

// ScaledWeight maps a raw CPPN output w onto a substrate connection weight.
// Outputs with magnitude below MinWeight are pruned to exactly zero;
// otherwise the magnitude is rescaled linearly from [MinWeight, MaxWeight]
// onto [0, MaxWeight], magnitudes beyond MaxWeight are capped at MaxWeight,
// and the sign of w is preserved. The ratio is computed from |w| rather than w
// itself so the scaler is odd outside the dead band (ScaledWeight(-w) ==
// -ScaledWeight(w)); computing it from the signed w, as the reference
// implementation this was grounded on does, breaks that symmetry whenever
// MinWeight is nonzero.
func (h *HyperSettings) ScaledWeight(w float64) float64 {
	mag := absf(w)
	if mag < h.MinWeight {
		return 0.
	}

	ratio := (mag - h.MinWeight) / (h.MaxWeight - h.MinWeight)
	magnitude := absf(h.MaxWeight * ratio)
	if magnitude > h.MaxWeight {
		magnitude = h.MaxWeight
	}

	if w < 0. {
		return -magnitude
	}
	return magnitude
}

func absf(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

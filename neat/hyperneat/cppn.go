package hyperneat

import "github.com/vspecky/hyper-darwin/neat"

// CPPN is the structural interface hyperneat requires of a compositional
// pattern-producing network. *genetics.Genome satisfies it without
// hyperneat needing to import the genetics package.
type CPPN interface {
	// InputCount reports the CPPN's declared input arity (4 or 6).
	InputCount() int
	// FeedForwardVector evaluates the CPPN over input, returning its raw output vector.
	FeedForwardVector(input []float64) ([]float64, error)
}

// ThirdParamFunc computes the optional third input fed to a 6-input CPPN
// for a substrate coordinate (x, y), in addition to the coordinate itself.
type ThirdParamFunc func(x, y float64) float64

// Evaluate queries cppn as a substrate weight generator over substrate's
// coordinate grid. cppn must declare exactly 4 inputs (with f nil) or
// exactly 6 inputs (with f non-nil); any other combination is
// ErrHyperArity.
//
// The grid spans the canonical HyperNEAT [-1, +1] square in both axes,
// with steps 2/(m-1) and 2/(n-1) — the corrected spacing, not the
// reference implementation's (m-1)/2, (n-1)/2 step this engine's design
// review flagged as almost certainly a bug (it produces a grid far wider
// than [-1,+1] for anything but tiny substrates).
//
// For every pair of source cell (x1,y1) and destination cell (x2,y2), the
// CPPN is queried on [x1,y1,x2,y2] (4-input) or
// [x1,y1,f(x1,y1),x2,y2,f(x2,y2)] (6-input); its scalar output is passed
// through hset.ScaledWeight, multiplied by the source cell's value, and
// accumulated into the destination cell of the returned tensor.
func Evaluate(cppn CPPN, substrate *HyperTensor, hset *neat.HyperSettings, f ThirdParamFunc) (*HyperTensor, error) {
	inputs := cppn.InputCount()
	switch {
	case inputs == 4 && f == nil:
	case inputs == 6 && f != nil:
	default:
		return nil, ErrHyperArity
	}

	m, n := substrate.Dims()
	out, err := Zeros(m, n)
	if err != nil {
		return nil, err
	}

	coordY := gridCoord(m)
	coordX := gridCoord(n)

	for y1 := 0; y1 < m; y1++ {
		cy1 := coordY(y1)
		for x1 := 0; x1 < n; x1++ {
			cx1 := coordX(x1)
			srcVal := substrate.At(y1, x1)

			for y2 := 0; y2 < m; y2++ {
				cy2 := coordY(y2)
				for x2 := 0; x2 < n; x2++ {
					cx2 := coordX(x2)

					var input []float64
					if inputs == 4 {
						input = []float64{cx1, cy1, cx2, cy2}
					} else {
						input = []float64{cx1, cy1, f(cx1, cy1), cx2, cy2, f(cx2, cy2)}
					}

					res, err := cppn.FeedForwardVector(input)
					if err != nil {
						return nil, err
					}

					w := hset.ScaledWeight(res[0])
					out.Set(y2, x2, out.At(y2, x2)+w*srcVal)
				}
			}
		}
	}

	return out, nil
}

// gridCoord returns a function mapping a grid index in [0, count) onto the
// canonical HyperNEAT coordinate axis spanning [-1, +1].
func gridCoord(count int) func(i int) float64 {
	step := 2. / float64(count-1)
	return func(i int) float64 { return -1 + float64(i)*step }
}

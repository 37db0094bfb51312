package hyperneat

import (
	"io"

	"github.com/pkg/errors"
	"github.com/sbinet/npyio/npz"
)

const substrateKey = "substrate"

// SaveTensor writes t's values to w as a single-entry .npz archive under
// the key "substrate", grounded on the same npz.Writer/mat.Dense pairing
// this engine's retrieval pack uses to export trial statistics. This
// persists one substrate evaluation result for external inspection; it is
// unrelated to population-state persistence, which remains out of scope.
func SaveTensor(w io.Writer, t *HyperTensor) error {
	out := npz.NewWriter(w)
	if err := out.Write(substrateKey, t.values); err != nil {
		return errors.Wrap(err, "failed to write substrate tensor to npz archive")
	}
	return out.Close()
}

// LoadTensor reads a HyperTensor previously written by SaveTensor from an
// .npz archive exposed by r (which must support io.ReaderAt, e.g. an
// *os.File or bytes.Reader), sized size bytes.
func LoadTensor(r readerAt, size int64) (*HyperTensor, error) {
	reader, err := npz.NewReader(r, size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open npz archive")
	}

	var rows [][]float64
	if err = reader.Read(substrateKey, &rows); err != nil {
		return nil, errors.Wrapf(err, "failed to read %q from npz archive", substrateKey)
	}

	return New(rows)
}

// readerAt is the minimal surface LoadTensor needs from its input,
// satisfied by *os.File and *bytes.Reader.
type readerAt interface {
	io.ReaderAt
}

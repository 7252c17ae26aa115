package shakebytes

import (
	"golang.org/x/crypto/sha3"
)

// XOF is a SHAKE256 extendable-output state. Input is absorbed until
// the first squeeze; after that the state only produces output.
type XOF struct {
	h         sha3.ShakeHash
	squeezing bool
}

func NewXOF() *XOF {
	return &XOF{h: sha3.NewShake256()}
}

// Absorb feeds p into the state.
func (x *XOF) Absorb(p []byte) error {
	if x.squeezing {
		return ErrAbsorbAfterSqueeze
	}
	// ShakeHash.Write never returns an error.
	x.h.Write(p)
	return nil
}

// Squeeze returns the next n bytes of the output stream.
func (x *XOF) Squeeze(n uint64) []byte {
	out := make([]byte, n)
	x.squeezeInto(out)
	return out
}

// Read fills p with the next len(p) bytes of the output stream.
func (x *XOF) Read(p []byte) (int, error) {
	x.squeezeInto(p)
	return len(p), nil
}

func (x *XOF) squeezeInto(p []byte) {
	x.squeezing = true
	// ShakeHash.Read never returns an error or a short read.
	x.h.Read(p)
}

func (x *XOF) Clone() *XOF {
	return &XOF{h: x.h.Clone(), squeezing: x.squeezing}
}

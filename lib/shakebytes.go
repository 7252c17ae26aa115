// shakebytes.go - print SHAKE256 output bytes as decimal lines.
//
// To the extent possible under law, Ivan Markin waived all copyright
// and related or neighboring rights to this module of shakebytes, using the creative
// commons "cc0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package shakebytes

import (
	"bufio"
	"encoding/hex"
	"io"
	"strconv"
	"unicode/utf8"

	"github.com/inconshreveable/log15"
	"github.com/nogoegst/byteqr"
	"github.com/pkg/errors"
	"rsc.io/qr"
)

const (
	chunkSize = 4096
	// MaxQRCount is the largest output that still fits a QR code as hex.
	MaxQRCount = 512
)

type Parameters struct {
	Message string
	Count   uint64
	QR      bool
	Logger  log15.Logger
}

// ParseCount parses a non-negative decimal byte count.
func ParseCount(s string) (uint64, error) {
	if s == "" {
		return 0, errors.Wrap(ErrUsage, "missing byte count")
	}
	if s[0] < '0' || s[0] > '9' {
		return 0, errors.Wrapf(ErrUsage, "byte count %q is not a non-negative integer", s)
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, errors.Wrapf(ErrUsage, "byte count %q is not a non-negative integer", s)
	}
	return n, nil
}

func newXOF(message string) (*XOF, error) {
	if !utf8.ValidString(message) {
		return nil, ErrEncoding
	}
	x := NewXOF()
	if err := x.Absorb([]byte(message)); err != nil {
		return nil, err
	}
	return x, nil
}

// Squeeze returns the first n bytes of SHAKE256(message).
func Squeeze(message string, n uint64) ([]byte, error) {
	x, err := newXOF(message)
	if err != nil {
		return nil, err
	}
	return x.Squeeze(n), nil
}

// WriteDecimal writes each byte of out as an unsigned decimal, one per line.
func WriteDecimal(w io.Writer, out []byte) error {
	line := make([]byte, 0, 4)
	for _, b := range out {
		line = strconv.AppendUint(line[:0], uint64(b), 10)
		line = append(line, '\n')
		if _, err := w.Write(line); err != nil {
			return err
		}
	}
	return nil
}

// WriteQR renders the hex encoding of out as a QR code into w.
func WriteQR(w io.Writer, out []byte) error {
	return byteqr.Write(w, hex.EncodeToString(out), qr.L, nil, nil)
}

// Run squeezes p.Count bytes of SHAKE256(p.Message) into stdout as decimal
// lines. If p.QR is set, the hex of the same bytes goes to qrOut as a QR code.
// Input is validated before anything is written.
func Run(p Parameters, stdout, qrOut io.Writer) error {
	log := p.Logger
	if log == nil {
		log = log15.New()
		log.SetHandler(log15.DiscardHandler())
	}
	if p.QR && p.Count > MaxQRCount {
		return errors.Wrapf(ErrUsage, "-qr supports at most %d bytes, got %d", MaxQRCount, p.Count)
	}
	x, err := newXOF(p.Message)
	if err != nil {
		return err
	}
	log.Debug("absorbed message", "len", len(p.Message), "count", p.Count)

	var qrBuf []byte
	bw := bufio.NewWriter(stdout)
	buf := make([]byte, chunkSize)
	for remaining := p.Count; remaining > 0; {
		chunk := buf
		if remaining < uint64(len(chunk)) {
			chunk = chunk[:remaining]
		}
		x.squeezeInto(chunk)
		if err := WriteDecimal(bw, chunk); err != nil {
			return errors.Wrap(err, "write output")
		}
		if p.QR {
			qrBuf = append(qrBuf, chunk...)
		}
		remaining -= uint64(len(chunk))
	}
	if err := bw.Flush(); err != nil {
		return errors.Wrap(err, "write output")
	}
	log.Debug("squeezed output", "bytes", p.Count)

	if p.QR && len(qrBuf) > 0 {
		if err := WriteQR(qrOut, qrBuf); err != nil {
			return errors.Wrap(err, "write QR code")
		}
	}
	return nil
}

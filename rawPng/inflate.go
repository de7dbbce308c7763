package rawPng

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/zlib"
	"github.com/pkg/errors"
)

// Inflater turns the concatenated IDAT stream back into raw scanline bytes.
// It is called once, on the fully buffered compressed payload.
type Inflater interface {
	Inflate(compressed []byte) ([]byte, error)
}

// zlibInflater is the default Inflater. IDAT data is a zlib-wrapped
// DEFLATE stream.
type zlibInflater struct{}

func (zlibInflater) Inflate(compressed []byte) ([]byte, error) {
	zr, err := zlib.NewReader(bytes.NewReader(compressed))
	if err != nil {
		return nil, errors.Wrap(ErrDecompression, err.Error())
	}
	defer zr.Close()
	raw, err := io.ReadAll(zr)
	if err != nil {
		return nil, errors.Wrap(ErrDecompression, err.Error())
	}
	return raw, nil
}

package rawPng

import (
	bst "github.com/mixcode/binarystruct"
	"github.com/pkg/errors"
)

var iHDRLength uint32 = 13

// Color type, as per the PNG spec.
const (
	ctGrayscale      = 0
	ctTrueColor      = 2
	ctPaletted       = 3
	ctGrayscaleAlpha = 4
	ctTrueColorAlpha = 6
)

// Interlace type.
const (
	itNone  = 0
	itAdam7 = 1
)

// ImageHeader is the decoded 13-byte IHDR payload.
// IHDR: http://www.libpng.org/pub/png/spec/1.2/PNG-Chunks.html#C.IHDR
//
// width:              4 bytes
// height:             4 bytes
// Bit depth:          1 byte
// Color type:         1 byte
// Compression method: 1 byte
// Filter method:      1 byte
// Interlace method:   1 byte
type ImageHeader struct {
	Width             uint32 `binary:"uint32"`
	Height            uint32 `binary:"uint32"`
	BitDepth          uint8  `binary:"uint8"`
	ColorType         uint8  `binary:"uint8"`
	CompressionMethod uint8  `binary:"uint8"`
	FilterMethod      uint8  `binary:"uint8"`
	InterlaceMethod   uint8  `binary:"uint8"`
}

// Marshal re-encodes the header into the 13 IHDR payload bytes it was
// parsed from.
func (h ImageHeader) Marshal() ([]byte, error) {
	return bst.Marshal(h, bst.BigEndian)
}

// parseIHDR decodes and validates an IHDR chunk.
// Malformed headers are rejected outright rather than zero-filled.
func parseIHDR(iHDR *Chunk) (ImageHeader, error) {
	var h ImageHeader
	if iHDR.Length != iHDRLength {
		return h, errors.Errorf("invalid IHDR length: got %d - expected %d",
			iHDR.Length, iHDRLength)
	}
	if _, err := bst.Unmarshal(iHDR.Data, bst.BigEndian, &h); err != nil {
		return h, errors.Wrap(err, "IHDR")
	}

	if h.Width == 0 {
		return h, errors.Errorf("invalid width in IHDR - got %x", iHDR.Data[0:4])
	}
	if h.Height == 0 {
		return h, errors.Errorf("invalid height in IHDR - got %x", iHDR.Data[4:8])
	}

	// A cb is a combination of color type and bit depth.
	cbValid := false
	switch h.ColorType {
	case ctGrayscale:
		cbValid = h.BitDepth == 1 || h.BitDepth == 2 || h.BitDepth == 4 || h.BitDepth == 8 || h.BitDepth == 16
	case ctPaletted:
		cbValid = h.BitDepth == 1 || h.BitDepth == 2 || h.BitDepth == 4 || h.BitDepth == 8
	case ctTrueColor, ctGrayscaleAlpha, ctTrueColorAlpha:
		cbValid = h.BitDepth == 8 || h.BitDepth == 16
	}
	if !cbValid {
		return h, errors.Errorf("bit depth %d, color type %d", h.BitDepth, h.ColorType)
	}

	// Only compression method 0 is supported
	if h.CompressionMethod != 0 {
		return h, errors.Errorf("invalid compression method - expected 0 - got %x",
			h.CompressionMethod)
	}
	// Only filter method 0 is supported
	if h.FilterMethod != 0 {
		return h, errors.Errorf("invalid filter method - expected 0 - got %x",
			h.FilterMethod)
	}
	// Only interlace methods 0 and 1 are supported
	if h.InterlaceMethod != itNone && h.InterlaceMethod != itAdam7 {
		return h, errors.Errorf("invalid interlace method - expected 0 or 1 - got %x",
			h.InterlaceMethod)
	}
	return h, nil
}

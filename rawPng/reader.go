package rawPng

import (
	"fmt"
	"io"
	"sort"

	"github.com/pkg/errors"
)

// 89 50 4E 47 0D 0A 1A 0A
var pngHeader = "\x89\x50\x4E\x47\x0D\x0A\x1A\x0A"

const (
	tagIHDR = "IHDR"
	tagPLTE = "PLTE"
	tagIDAT = "IDAT"
	tagIEND = "IEND"
)

// RGB is one palette entry from a PLTE chunk.
type RGB struct {
	R, G, B uint8
}

// DecodedImage is the parse result: header metadata, the palette when one is
// present, the decompressed image data, and every chunk that was carried
// through without interpretation.
type DecodedImage struct {
	Header  ImageHeader
	Palette []RGB
	RawData []byte
	// Ancillary keys uninterpreted chunks by their position among all
	// chunks read, so the original order survives.
	Ancillary map[int]*Chunk
}

type decoder struct {
	r        io.Reader
	inflater Inflater
	img      DecodedImage
	idat     []byte
	count    int // occurrence index of the chunk being handled
	seenIEND bool
}

// Decode reads a PNG stream from r and returns the parsed image.
// The reader is consumed; it must not be shared with anything else while the
// parse runs.
func Decode(r io.Reader) (*DecodedImage, error) {
	return DecodeWith(r, zlibInflater{})
}

// DecodeWith is Decode with a caller-supplied decompressor.
func DecodeWith(r io.Reader, inflater Inflater) (*DecodedImage, error) {
	d := &decoder{r: r, inflater: inflater}
	d.img.Ancillary = make(map[int]*Chunk)
	if err := d.checkHeader(); err != nil {
		return nil, err
	}
	for !d.seenIEND {
		c := &Chunk{}
		err := c.Populate(d.r)
		if err == io.EOF {
			// Clean end at a chunk boundary.
			break
		}
		if err != nil {
			return nil, err
		}
		if err := d.parseChunk(c); err != nil {
			return nil, err
		}
		d.count++
	}
	if !d.seenIEND {
		return nil, errors.WithStack(ErrMissingIEND)
	}
	return &d.img, nil
}

func (d *decoder) checkHeader() error {
	buf := make([]byte, len(pngHeader))
	if _, err := io.ReadFull(d.r, buf); err != nil {
		return errors.Wrap(ErrSignatureMismatch, err.Error())
	}
	if string(buf) != pngHeader {
		return errors.WithStack(ErrSignatureMismatch)
	}
	return nil
}

func (d *decoder) parseChunk(c *Chunk) error {
	if d.count == 0 && c.CType != tagIHDR {
		return errors.Wrapf(ErrChunkOrder, "first chunk is %q", c.CType)
	}
	switch c.CType {
	case tagIHDR:
		if d.count != 0 {
			return errors.Wrap(ErrChunkOrder, "IHDR must be the first chunk")
		}
		h, err := parseIHDR(c)
		if err != nil {
			return err
		}
		d.img.Header = h
	case tagIDAT:
		// IDAT payloads are slices of one compressed stream and must be
		// concatenated in file order before inflating.
		d.idat = append(d.idat, c.Data...)
	case tagPLTE:
		return d.parsePLTE(c)
	case tagIEND:
		if len(d.idat) == 0 {
			return errors.WithStack(ErrEmptyImageData)
		}
		raw, err := d.inflater.Inflate(d.idat)
		if err != nil {
			return err
		}
		d.img.RawData = raw
		d.seenIEND = true
	default: // not parsed, kept verbatim
		d.img.Ancillary[d.count] = c
	}
	return nil
}

func (d *decoder) parsePLTE(c *Chunk) error {
	// Grayscale images have no use for a palette; PLTE there is a
	// protocol violation.
	if ct := d.img.Header.ColorType; ct == ctGrayscale || ct == ctGrayscaleAlpha {
		return errors.Wrapf(ErrChunkOrder, "PLTE with color type %d", ct)
	}
	if len(c.Data)%3 != 0 {
		return errors.Wrapf(ErrPaletteLength, "%d bytes", len(c.Data))
	}
	for i := 0; i+3 <= len(c.Data); i += 3 {
		d.img.Palette = append(d.img.Palette, RGB{c.Data[i], c.Data[i+1], c.Data[i+2]})
	}
	return nil
}

// Summary returns a printable report: header fields, data sizes and one line
// per uninterpreted chunk in the order they appeared in the file.
func (img *DecodedImage) Summary() string {
	var output string
	output += fmt.Sprintf("width:%d height:%d bit depth:%d color type:%d\n",
		img.Header.Width, img.Header.Height, img.Header.BitDepth, img.Header.ColorType)
	output += fmt.Sprintf("raw data: %d bytes\n", len(img.RawData))
	if len(img.Palette) > 0 {
		output += fmt.Sprintf("palette: %d entries\n", len(img.Palette))
	}
	output += fmt.Sprintf("ancillary chunks: %d\n", len(img.Ancillary))

	indexes := make([]int, 0, len(img.Ancillary))
	for i := range img.Ancillary {
		indexes = append(indexes, i)
	}
	sort.Ints(indexes)
	for _, i := range indexes {
		c := img.Ancillary[i]
		output += fmt.Sprintf("chunk:\t index:%d length:%d type:%v\n", i, c.Length, c.CType)
	}
	return output
}

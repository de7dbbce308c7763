package rawPng

import "github.com/pkg/errors"

// Parse failures are wrapped around one of these so callers can tell the
// kinds apart with errors.Is or errors.Cause.
var (
	ErrSignatureMismatch = errors.New("not a PNG file")
	ErrTruncatedChunk    = errors.New("truncated chunk")
	ErrCrcMismatch       = errors.New("invalid chunk checksum")
	ErrChunkOrder        = errors.New("chunk out of order")
	ErrPaletteLength     = errors.New("palette length not a multiple of 3")
	ErrEmptyImageData    = errors.New("no image data before IEND")
	ErrMissingIEND       = errors.New("missing IEND chunk")
	ErrDecompression     = errors.New("corrupt image data stream")
)

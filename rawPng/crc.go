package rawPng

import "sync"

// Bit-reversed polynomial of the PNG/zlib CRC-32.
const crcPoly = 0xedb88320

var (
	crcTable     [256]uint32
	crcTableOnce sync.Once
)

// makeCrcTable fills the 256-entry lookup table. Guarded by a Once so the
// table is built exactly once and only read afterwards.
func makeCrcTable() {
	crcTableOnce.Do(func() {
		for n := range crcTable {
			c := uint32(n)
			for k := 0; k < 8; k++ {
				if c&1 != 0 {
					c = crcPoly ^ (c >> 1)
				} else {
					c >>= 1
				}
			}
			crcTable[n] = c
		}
	})
}

// UpdateCrc feeds buf into a running CRC. The running value must start at
// 0xffffffff; the transmitted CRC is the one's complement of the final value.
func UpdateCrc(crc uint32, buf []byte) uint32 {
	makeCrcTable()
	for _, b := range buf {
		crc = crcTable[byte(crc)^b] ^ (crc >> 8)
	}
	return crc
}

// Crc returns the PNG CRC-32 of buf.
func Crc(buf []byte) uint32 {
	return UpdateCrc(0xffffffff, buf) ^ 0xffffffff
}

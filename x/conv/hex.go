package conv

const hexd = "0123456789ABCDEF"

// AppendByteHex appends two uppercase hex digits for b, zero-padded, no 0x.
func AppendByteHex(dst []byte, b uint8) []byte {
	return append(dst, hexd[b>>4], hexd[b&0xF])
}

package conv

// AppendInt appends the base-10 representation of n to dst and returns the
// extended slice. Negative numbers supported.
// No allocations beyond dst growth; no fmt/strconv dependency.
func AppendInt(dst []byte, n int64) []byte {
	var tmp [20]byte
	i := len(tmp)
	neg := n < 0
	var u uint64
	if neg {
		u = uint64(-n)
	} else {
		u = uint64(n)
	}
	// Write digits backwards.
	if u == 0 {
		i--
		tmp[i] = '0'
	} else {
		for u > 0 {
			i--
			tmp[i] = byte('0' + u%10)
			u /= 10
		}
	}
	if neg {
		i--
		tmp[i] = '-'
	}
	return append(dst, tmp[i:]...)
}

// AppendBool appends "true" or "false" to dst.
func AppendBool(dst []byte, v bool) []byte {
	if v {
		return append(dst, "true"...)
	}
	return append(dst, "false"...)
}

package ber

// EncodeInteger produces the minimal two's-complement big-endian encoding
// of v (1..4 bytes, high bit of the first byte reflecting the sign).
func EncodeInteger(v int32) []byte {
	return encodeTLV(TagInteger, minimalTwosComplement(v))
}

// DecodeInteger reads an INTEGER from the front of data, sign-extending
// its content. Overlong (non-minimal) encodings are accepted.
func DecodeInteger(data []byte) (v int32, rest []byte, err error) {
	content, rest, err := decodeTLV(data, TagInteger)
	if err != nil {
		return 0, nil, err
	}
	if len(content) == 0 || len(content) > 4 {
		return 0, nil, ErrInvalidInteger
	}

	if content[0]&0x80 != 0 {
		v = -1
	}
	for _, b := range content {
		v = v<<8 | int32(b)
	}
	return v, rest, nil
}

func minimalTwosComplement(v int32) []byte {
	b := []byte{byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v)}
	for len(b) > 1 {
		if b[0] == 0x00 && b[1]&0x80 == 0 {
			b = b[1:]
			continue
		}
		if b[0] == 0xFF && b[1]&0x80 != 0 {
			b = b[1:]
			continue
		}
		break
	}
	return b
}

package util

import (
	"encoding/binary"
	"fmt"
	"strings"
	"unicode/utf8"
)

// This file contains small varint/string binary encoding helpers shared by
// every MarshalBinary/UnmarshalBinary implementation that feeds
// github.com/dekarrin/rezi's EncBinary/DecBinary.

// EncInt encodes i as a fixed 8-byte varint block.
func EncInt(i int) []byte {
	enc := make([]byte, 8)
	binary.PutVarint(enc, int64(i))
	return enc
}

// DecInt decodes an int encoded by EncInt. It always consumes 8 bytes.
func DecInt(data []byte) (int, int, error) {
	if len(data) < 8 {
		return 0, 0, fmt.Errorf("data does not contain 8 bytes")
	}
	val, read := binary.Varint(data[:8])
	if read == 0 {
		return 0, 0, fmt.Errorf("input buffer too small, should never happen")
	} else if read < 0 {
		return 0, 0, fmt.Errorf("input buffer contains value larger than 64 bits, should never happen")
	}
	return int(val), 8, nil
}

// EncString encodes s as a rune count (EncInt) followed by its UTF-8 bytes.
func EncString(s string) []byte {
	enc := make([]byte, 0, len(s))
	chCount := 0
	for _, ch := range s {
		chBuf := make([]byte, utf8.UTFMax)
		byteLen := utf8.EncodeRune(chBuf, ch)
		enc = append(enc, chBuf[:byteLen]...)
		chCount++
	}
	return append(EncInt(chCount), enc...)
}

// DecString decodes a string encoded by EncString, returning the string and
// the number of bytes consumed.
func DecString(data []byte) (string, int, error) {
	runeCount, _, err := DecInt(data)
	if err != nil {
		return "", 0, fmt.Errorf("decoding string rune count: %w", err)
	}
	data = data[8:]
	if runeCount < 0 {
		return "", 0, fmt.Errorf("string rune count < 0")
	}

	readBytes := 8
	var sb strings.Builder
	for i := 0; i < runeCount; i++ {
		ch, bytesRead := utf8.DecodeRune(data)
		if ch == utf8.RuneError {
			if bytesRead == 0 {
				return "", 0, fmt.Errorf("unexpected end of data in string")
			} else if bytesRead == 1 {
				return "", 0, fmt.Errorf("invalid UTF-8 encoding in string")
			}
			return "", 0, fmt.Errorf("invalid unicode replacement character in rune")
		}
		sb.WriteRune(ch)
		readBytes += bytesRead
		data = data[bytesRead:]
	}
	return sb.String(), readBytes, nil
}

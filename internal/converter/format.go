package converter

import (
	"path/filepath"
	"strings"
)

const (
	bytesPerLine = 16
	indent       = "    "
	hexDigits    = "0123456789abcdef"

	// literalWidth is len("0xHH, ").
	literalWidth = 6
)

// Identifier returns the array name for inputPath: the base name with its
// final extension removed. Leading dots do not start an extension, so
// ".hidden" stays ".hidden". The result is not sanitized.
func Identifier(inputPath string) string {
	base := filepath.Base(inputPath)
	dot := strings.LastIndexByte(base, '.')
	if dot <= 0 {
		return base
	}
	if strings.TrimLeft(base[:dot], ".") == "" {
		return base
	}
	return base[:dot]
}

// OutputName returns the header file name generated for inputPath.
func OutputName(inputPath string) string {
	return Identifier(inputPath) + ".h"
}

// Render returns the C header declaring data as a const unsigned char array.
func Render(identifier string, data []byte) string {
	var b strings.Builder
	lines := (len(data) + bytesPerLine - 1) / bytesPerLine
	b.Grow(len("const unsigned char [] = {\n\n};") + len(identifier) +
		lines*(1+len(indent)) + len(data)*literalWidth)

	b.WriteString("const unsigned char ")
	b.WriteString(identifier)
	b.WriteString("[] = {\n")
	for i, v := range data {
		if i%bytesPerLine == 0 {
			b.WriteByte('\n')
			b.WriteString(indent)
		}
		writeLiteral(&b, v)
	}
	b.WriteString("\n};")
	return b.String()
}

// writeLiteral writes v as "0xhh, ".
func writeLiteral(b *strings.Builder, v byte) {
	b.WriteString("0x")
	b.WriteByte(hexDigits[v>>4])
	b.WriteByte(hexDigits[v&0x0f])
	b.WriteString(", ")
}

package rj

import (
	"fmt"
	"strconv"
	"strings"
)

// indentWidth is the canonical indentation step.
const indentWidth = 2

// Format parses input and re-emits it in the canonical layout:
// two-space indentation, one member or element per line.
func Format(input string) (string, error) {
	v, err := Parse(input)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	writeIndented(&b, v, 0)
	return b.String(), nil
}

// Stringify emits the compact single-line form of v.
func Stringify(v Value) string {
	var b strings.Builder
	writeCompact(&b, v)
	return b.String()
}

func writeIndented(b *strings.Builder, v Value, depth int) {
	switch v := v.(type) {
	case Object:
		if len(v) == 0 {
			b.WriteString("{}")
			return
		}
		b.WriteString("{\n")
		for i, m := range v {
			writeIndent(b, depth+1)
			writeQuoted(b, m.Key)
			b.WriteString(": ")
			writeIndented(b, m.Value, depth+1)
			if i < len(v)-1 {
				b.WriteByte(',')
			}
			b.WriteByte('\n')
		}
		writeIndent(b, depth)
		b.WriteByte('}')
	case Array:
		if len(v) == 0 {
			b.WriteString("[]")
			return
		}
		b.WriteString("[\n")
		for i, e := range v {
			writeIndent(b, depth+1)
			writeIndented(b, e, depth+1)
			if i < len(v)-1 {
				b.WriteByte(',')
			}
			b.WriteByte('\n')
		}
		writeIndent(b, depth)
		b.WriteByte(']')
	default:
		writeCompact(b, v)
	}
}

func writeCompact(b *strings.Builder, v Value) {
	switch v := v.(type) {
	case String:
		writeQuoted(b, string(v))
	case Number:
		b.WriteString(formatNumber(float64(v)))
	case Boolean:
		b.WriteString(strconv.FormatBool(bool(v)))
	case Null:
		b.WriteString("null")
	case Array:
		b.WriteByte('[')
		for i, e := range v {
			if i > 0 {
				b.WriteByte(',')
			}
			writeCompact(b, e)
		}
		b.WriteByte(']')
	case Object:
		b.WriteByte('{')
		for i, m := range v {
			if i > 0 {
				b.WriteByte(',')
			}
			writeQuoted(b, m.Key)
			b.WriteByte(':')
			writeCompact(b, m.Value)
		}
		b.WriteByte('}')
	}
}

func writeIndent(b *strings.Builder, depth int) {
	for i := 0; i < depth*indentWidth; i++ {
		b.WriteByte(' ')
	}
}

func formatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}

// writeQuoted emits s as a JSON string literal, escaping the two
// mandatory characters and all controls below 0x20.
func writeQuoted(b *strings.Builder, s string) {
	b.WriteByte('"')
	for _, c := range s {
		switch c {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\x08':
			b.WriteString(`\b`)
		case '\x0c':
			b.WriteString(`\f`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if c < 0x20 {
				fmt.Fprintf(b, `\u%04x`, c)
			} else {
				b.WriteRune(c)
			}
		}
	}
	b.WriteByte('"')
}

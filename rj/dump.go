package rj

import (
	"strconv"
	"strings"
)

// Dump renders the structure of v with explicit variant names, the
// output of the type-and-parse mode. Numbers always carry a fractional
// part so a parsed 800 reads as Number(800.0).
func Dump(v Value) string {
	var b strings.Builder
	writeDump(&b, v, 0)
	return b.String()
}

func writeDump(b *strings.Builder, v Value, depth int) {
	switch v := v.(type) {
	case String:
		b.WriteString("String(")
		writeQuoted(b, string(v))
		b.WriteByte(')')
	case Number:
		b.WriteString("Number(")
		b.WriteString(dumpNumber(float64(v)))
		b.WriteByte(')')
	case Boolean:
		b.WriteString("Boolean(")
		b.WriteString(strconv.FormatBool(bool(v)))
		b.WriteByte(')')
	case Null:
		b.WriteString("Null")
	case Array:
		if len(v) == 0 {
			b.WriteString("Array[]")
			return
		}
		b.WriteString("Array[\n")
		for _, e := range v {
			writeIndent(b, depth+1)
			writeDump(b, e, depth+1)
			b.WriteString(",\n")
		}
		writeIndent(b, depth)
		b.WriteByte(']')
	case Object:
		if len(v) == 0 {
			b.WriteString("Object{}")
			return
		}
		b.WriteString("Object{\n")
		for _, m := range v {
			writeIndent(b, depth+1)
			writeQuoted(b, m.Key)
			b.WriteString(": ")
			writeDump(b, m.Value, depth+1)
			b.WriteString(",\n")
		}
		writeIndent(b, depth)
		b.WriteByte('}')
	}
}

func dumpNumber(n float64) string {
	s := strconv.FormatFloat(n, 'f', -1, 64)
	if !strings.ContainsAny(s, ".") {
		s += ".0"
	}
	return s
}

package rj

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/rjkit/jsonpad/errors"
)

// whitespace per RFC 8259: space, horizontal tab, line feed, carriage return
const whitespace = "\x20\x09\x0a\x0d"

// Parse parses input as a single JSON value. Anything other than
// trailing whitespace after the value is an error.
func Parse(input string) (Value, error) {
	v, rest, err := value(input)
	if err != nil {
		return nil, err
	}
	if rest := eatWhitespace(rest); rest != "" {
		return nil, errors.TrailingChars(rest)
	}
	return v, nil
}

// value parses one value and returns it with the unconsumed remainder.
func value(input string) (Value, string, error) {
	input = eatWhitespace(input)

	if rest, ok := strings.CutPrefix(input, "false"); ok {
		return Boolean(false), rest, nil
	}
	if rest, ok := strings.CutPrefix(input, "null"); ok {
		return Null{}, rest, nil
	}
	if rest, ok := strings.CutPrefix(input, "true"); ok {
		return Boolean(true), rest, nil
	}
	if strings.HasPrefix(input, "{") {
		return object(input)
	}
	if strings.HasPrefix(input, "[") {
		return array(input)
	}
	if strings.HasPrefix(input, `"`) {
		return str(input)
	}
	if strings.HasPrefix(input, "-") || (input != "" && input[0] >= '0' && input[0] <= '9') {
		return number(input)
	}

	return nil, "", errors.UnexpectedToken(fmt.Sprintf("unexpected token: '%s'", input))
}

func eatWhitespace(input string) string {
	return strings.TrimLeft(input, whitespace)
}

func object(input string) (Value, string, error) {
	cur, ok := strings.CutPrefix(eatWhitespace(input), "{")
	if !ok {
		return nil, "", errors.MissingChar('{', input)
	}

	if rest, ok := strings.CutPrefix(eatWhitespace(cur), "}"); ok {
		return Object{}, rest, nil
	}

	var obj Object
	for {
		k, rest, err := str(eatWhitespace(cur))
		if err != nil {
			return nil, "", err
		}
		key := string(k.(String))

		cur, ok = strings.CutPrefix(eatWhitespace(rest), ":")
		if !ok {
			return nil, "", errors.MissingChar(':', rest)
		}

		v, rest, err := value(cur)
		if err != nil {
			return nil, "", err
		}
		obj = obj.set(key, v)

		if next, ok := strings.CutPrefix(eatWhitespace(rest), ","); ok {
			cur = next
		} else if next, ok := strings.CutPrefix(eatWhitespace(rest), "}"); ok {
			cur = next
			break
		} else {
			return nil, "", errors.UnexpectedToken(fmt.Sprintf("expected ',' or '}' after object value. Found: '%s'", rest))
		}
	}

	return obj, cur, nil
}

func array(input string) (Value, string, error) {
	cur, ok := strings.CutPrefix(eatWhitespace(input), "[")
	if !ok {
		return nil, "", errors.MissingChar('[', input)
	}

	if rest, ok := strings.CutPrefix(eatWhitespace(cur), "]"); ok {
		return Array{}, rest, nil
	}

	var values Array
	v, rest, err := value(cur)
	if err != nil {
		return nil, "", err
	}
	values = append(values, v)
	cur = rest

	for {
		rest, ok := strings.CutPrefix(eatWhitespace(cur), ",")
		if !ok {
			break
		}
		v, rest, err := value(rest)
		if err != nil {
			return nil, "", err
		}
		values = append(values, v)
		cur = rest
	}

	cur, ok = strings.CutPrefix(eatWhitespace(cur), "]")
	if !ok {
		return nil, "", errors.MissingChar(']', cur)
	}

	return values, cur, nil
}

func str(input string) (Value, string, error) {
	cur, ok := strings.CutPrefix(eatWhitespace(input), `"`)
	if !ok {
		return nil, "", errors.MissingChar('"', input)
	}

	if rest, ok := strings.CutPrefix(eatWhitespace(cur), `"`); ok {
		return String(""), rest, nil
	}

	var b strings.Builder
	i := 0
	for {
		if i >= len(cur) {
			return nil, "", errors.UnterminatedString()
		}
		c, size := utf8.DecodeRuneInString(cur[i:])
		i += size

		switch {
		case c == '"':
			return String(b.String()), cur[i:], nil

		case c == '\\':
			if i >= len(cur) {
				return nil, "", errors.InvalidEscape(`invalid escape sequence: '\' at end of string`)
			}
			esc, size := utf8.DecodeRuneInString(cur[i:])
			i += size

			switch esc {
			case '"':
				b.WriteByte('"') // quotation mark
			case '\\':
				b.WriteByte('\\') // reverse solidus
			case '/':
				b.WriteByte('/') // solidus
			case 'b':
				b.WriteByte('\x08') // backspace
			case 'f':
				b.WriteByte('\x0c') // form feed
			case 'n':
				b.WriteByte('\n') // line feed
			case 'r':
				b.WriteByte('\r') // carriage return
			case 't':
				b.WriteByte('\t') // tab
			case 'u':
				var hex rune
				for k := 0; k < 4; k++ {
					if i >= len(cur) {
						return nil, "", errors.InvalidUnicode()
					}
					d, ok := hexDigit(cur[i])
					if !ok {
						return nil, "", errors.InvalidUnicode()
					}
					hex = hex<<4 | d
					i++
				}
				if !utf8.ValidRune(hex) {
					return nil, "", errors.InvalidUnicode()
				}
				b.WriteRune(hex)
			default:
				return nil, "", errors.InvalidEscape(fmt.Sprintf(`invalid escape sequence: '\%c'`, esc))
			}

		case c == '\n' || c == '\r' || c == '\t':
			return nil, "", errors.UnexpectedToken(fmt.Sprintf("unescaped control character in string: '%c'", c))

		default:
			b.WriteRune(c)
		}
	}
}

func hexDigit(c byte) (rune, bool) {
	switch {
	case c >= '0' && c <= '9':
		return rune(c - '0'), true
	case c >= 'a' && c <= 'f':
		return rune(c-'a') + 10, true
	case c >= 'A' && c <= 'F':
		return rune(c-'A') + 10, true
	}
	return 0, false
}

func number(input string) (Value, string, error) {
	cur := eatWhitespace(input)

	minus := false
	if rest, ok := strings.CutPrefix(cur, "-"); ok {
		minus = true
		cur = rest
	}

	end := 0
	enableSign := false
scan:
	for ; end < len(cur); end++ {
		switch c := cur[end]; {
		case c >= '0' && c <= '9', c == '.':
		case c == 'e' || c == 'E':
			enableSign = true
		case c == '-' || c == '+':
			if !enableSign {
				return nil, "", errors.InvalidNumber("sign only allowed at the beginning of the number or immediately after 'e' or 'E' for exponents")
			}
			enableSign = false
		default:
			break scan // the char is not part of the number
		}
	}

	buf, rest := cur[:end], cur[end:]
	n, err := strconv.ParseFloat(buf, 64)
	if err != nil {
		return nil, "", errors.InvalidNumber(fmt.Sprintf("invalid number literal: '%s'", buf))
	}
	if minus {
		n = -n
	}
	return Number(n), rest, nil
}

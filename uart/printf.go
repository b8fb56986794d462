package uart

import (
	"github.com/ucycg/neorv32/errcode"
	"github.com/ucycg/neorv32/x/conv"
)

// Printf writes format expanded with args. Scanning is a single
// left-to-right pass that streams straight to the wire, so anything written
// before an argument error has already gone out. Literal text, %s and %c
// go through the line discipline, so '\n' still becomes "\r\n".
//
// Directives:
//
//	%s   string or []byte
//	%c   byte or rune, narrowed to one byte
//	%d   signed 32-bit decimal (also %i)
//	%u   unsigned 32-bit decimal
//	%x   unsigned 32-bit as 8 lowercase hex digits (also %p)
//	%X   like %x, uppercase
//	%%   literal '%'
//
// A '%' followed by any other byte is not an error; the two bytes are
// written out verbatim. Arguments are consumed in directive order; a
// missing argument or one whose dynamic type does not fit the directive
// stops the scan with an errcode error.
func (u *UART) Printf(format string, args ...any) error {
	var scratch [11]byte
	ai := 0

	for i := 0; i < len(format); i++ {
		c := format[i]
		if c != '%' {
			if c == '\n' {
				u.PutByte('\r')
			}
			u.PutByte(c)
			continue
		}

		i++
		if i >= len(format) {
			u.PutByte('%') // lone trailing '%'
			break
		}
		verb := format[i]

		if verb == '%' {
			u.PutByte('%')
			continue
		}
		if !isVerb(verb) {
			// Unsupported directive: pass through verbatim.
			u.PutByte('%')
			u.PutByte(verb)
			continue
		}

		if ai >= len(args) {
			return &errcode.E{C: errcode.MissingArg, Op: "uart.Printf", Msg: "no argument for %" + string(verb)}
		}
		arg := args[ai]
		ai++

		switch verb {
		case 's':
			switch v := arg.(type) {
			case string:
				u.PutString(v)
			case []byte:
				u.putText(v)
			default:
				return argTypeErr(verb)
			}

		case 'c':
			switch v := arg.(type) {
			case byte:
				u.PutByte(v)
			case rune:
				u.PutByte(byte(v))
			default:
				return argTypeErr(verb)
			}

		case 'd', 'i':
			n, ok := signed32(arg)
			if !ok {
				return argTypeErr(verb)
			}
			mag := uint32(n)
			if n < 0 {
				u.PutByte('-')
				// 64-bit negation so the minimum value keeps its
				// two's-complement magnitude.
				mag = uint32(-int64(n))
			}
			u.putText(conv.Utoa(scratch[:], mag))

		case 'u':
			v, ok := unsigned32(arg)
			if !ok {
				return argTypeErr(verb)
			}
			u.putText(conv.Utoa(scratch[:], v))

		case 'x', 'X', 'p':
			v, ok := word32(arg)
			if !ok {
				return argTypeErr(verb)
			}
			h := conv.Hex32(scratch[:], v)
			if verb == 'X' {
				conv.UpperASCII(h)
			}
			u.putText(h)
		}
	}
	return nil
}

func isVerb(b byte) bool {
	switch b {
	case 's', 'c', 'd', 'i', 'u', 'x', 'X', 'p':
		return true
	}
	return false
}

func argTypeErr(verb byte) error {
	return &errcode.E{C: errcode.ArgType, Op: "uart.Printf", Msg: "bad argument for %" + string(verb)}
}

func signed32(a any) (int32, bool) {
	switch v := a.(type) {
	case int:
		return int32(v), true
	case int8:
		return int32(v), true
	case int16:
		return int32(v), true
	case int32:
		return v, true
	}
	return 0, false
}

func unsigned32(a any) (uint32, bool) {
	switch v := a.(type) {
	case uint:
		return uint32(v), true
	case uint8:
		return uint32(v), true
	case uint16:
		return uint32(v), true
	case uint32:
		return v, true
	}
	return 0, false
}

// word32 accepts everything unsigned32 does plus uintptr, for %p.
func word32(a any) (uint32, bool) {
	if v, ok := unsigned32(a); ok {
		return v, true
	}
	if v, ok := a.(uintptr); ok {
		return uint32(v), true
	}
	return 0, false
}

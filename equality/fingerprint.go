package equality

import (
	"bytes"
	"math"
	"reflect"
	"sort"
	"strconv"

	"golang.org/x/crypto/blake2b"
)

// Fingerprint returns the BLAKE2b-256 digest of a canonical serialisation of
// v. If Deep(a, b) then Fingerprint(a) == Fingerprint(b); the converse holds
// only up to hash collisions and to the coarser encodings used for values
// compared through an Equal method.
func Fingerprint(v any) [32]byte {
	var buf bytes.Buffer
	canonical(&buf, reflect.ValueOf(v))
	return blake2b.Sum256(buf.Bytes())
}

func canonical(buf *bytes.Buffer, v reflect.Value) {
	v = resolve(v)
	if !v.IsValid() {
		buf.WriteByte('z')
		return
	}
	if hasEqualMethod(v) {
		// Equal decides; only the type is stable across equal values.
		buf.WriteString("E")
		writeString(buf, v.Type().String())
		return
	}

	switch classOf(v) {
	case classNumber:
		buf.WriteByte('n')
		writeString(buf, canonicalNumber(v))
	case classString:
		buf.WriteByte('s')
		writeString(buf, v.String())
	case classBool:
		if v.Bool() {
			buf.WriteByte('t')
		} else {
			buf.WriteByte('f')
		}
	case classComplex:
		buf.WriteByte('c')
		writeString(buf, strconv.FormatComplex(v.Complex(), 'g', -1, 128))
	case classList:
		buf.WriteByte('[')
		writeString(buf, strconv.Itoa(v.Len()))
		for i := 0; i < v.Len(); i++ {
			canonical(buf, v.Index(i))
		}
		buf.WriteByte(']')
	case classMap:
		digests := make([][32]byte, 0, v.Len())
		iter := v.MapRange()
		for iter.Next() {
			var entry bytes.Buffer
			canonical(&entry, iter.Key())
			canonical(&entry, iter.Value())
			digests = append(digests, blake2b.Sum256(entry.Bytes()))
		}
		sort.Slice(digests, func(i, j int) bool {
			return bytes.Compare(digests[i][:], digests[j][:]) < 0
		})
		buf.WriteByte('{')
		writeString(buf, strconv.Itoa(len(digests)))
		for _, d := range digests {
			buf.Write(d[:])
		}
		buf.WriteByte('}')
	case classStruct:
		buf.WriteByte('S')
		writeString(buf, v.Type().String())
		for i := 0; i < v.NumField(); i++ {
			canonical(buf, v.Field(i))
		}
	case classFunc:
		buf.WriteByte('F')
		writeString(buf, v.Type().String())
		if !v.IsNil() {
			// Non-nil funcs are never Deep-equal; keep them apart.
			writeString(buf, strconv.FormatUint(uint64(v.Pointer()), 16))
		}
	case classRef:
		buf.WriteByte('r')
		writeString(buf, v.Type().String())
		writeString(buf, strconv.FormatUint(uint64(v.Pointer()), 16))
	default:
		buf.WriteByte('?')
		writeString(buf, v.Type().String())
	}
}

// canonicalNumber formats every numeric kind through float64 so that values
// equal under numbersEqual share a representation.
func canonicalNumber(v reflect.Value) string {
	f := toFloat(v)
	switch {
	case math.IsNaN(f):
		return "nan"
	case f == 0:
		return "0"
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func writeString(buf *bytes.Buffer, s string) {
	buf.WriteString(strconv.Itoa(len(s)))
	buf.WriteByte(':')
	buf.WriteString(s)
}

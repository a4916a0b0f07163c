// If you are AI: This file holds a test-only AMF3 encoder and a random value
// generator. The library ships no encoder; round-trip tests need one that is
// independent of the decoder's table bookkeeping, so every value is written
// inline without references.
package amf

import (
	"encoding/binary"
	"fmt"
	"math"
	"math/rand"
	"time"
	"unicode/utf16"
)

// amf3Writer accumulates the AMF3 encoding of test values.
type amf3Writer struct {
	buf []byte
}

// envelopeWithAMF3 wraps one AMF3 value into a complete payload: three null
// AMF0 fields followed by the AVM+ switch carrying the value as data.
func envelopeWithAMF3(value Value) []byte {
	w := &amf3Writer{buf: []byte{markerAMF0Null, markerAMF0Null, markerAMF0Null, markerAMF0AVMPlus}}
	w.writeValue(value)
	return w.buf
}

// writeU29 writes the canonical variable-length form of a 29-bit value.
func (w *amf3Writer) writeU29(v uint32) {
	switch {
	case v < 0x80:
		w.buf = append(w.buf, byte(v))
	case v < 0x4000:
		w.buf = append(w.buf, byte(v>>7)|0x80, byte(v&0x7F))
	case v < 0x200000:
		w.buf = append(w.buf, byte(v>>14)|0x80, byte(v>>7)&0x7F|0x80, byte(v&0x7F))
	default:
		w.buf = append(w.buf, byte(v>>22)|0x80, byte(v>>15)&0x7F|0x80, byte(v>>8)&0x7F|0x80, byte(v))
	}
}

// writeFloat64 writes an IEEE-754 double, most significant byte first.
func (w *amf3Writer) writeFloat64(f float64) {
	var raw [8]byte
	binary.BigEndian.PutUint64(raw[:], math.Float64bits(f))
	w.buf = append(w.buf, raw[:]...)
}

// writeString writes a U29 length tag followed by modified UTF-8 bytes.
func (w *amf3Writer) writeString(s string) {
	raw := encodeModifiedUTF8(s)
	w.writeU29(uint32(len(raw))<<1 | 1)
	w.buf = append(w.buf, raw...)
}

// writeValue writes one marker-tagged AMF3 value.
func (w *amf3Writer) writeValue(value Value) {
	switch t := value.(type) {
	case nil:
		w.buf = append(w.buf, markerAMF3Null)
	case bool:
		if t {
			w.buf = append(w.buf, markerAMF3True)
		} else {
			w.buf = append(w.buf, markerAMF3False)
		}
	case int32:
		w.buf = append(w.buf, markerAMF3Integer)
		w.writeU29(uint32(t) & 0x1FFFFFFF)
	case float64:
		w.buf = append(w.buf, markerAMF3Double)
		w.writeFloat64(t)
	case string:
		w.buf = append(w.buf, markerAMF3String)
		w.writeString(t)
	case []byte:
		w.buf = append(w.buf, markerAMF3ByteArray)
		w.writeU29(uint32(len(t))<<1 | 1)
		w.buf = append(w.buf, t...)
	case time.Time:
		w.buf = append(w.buf, markerAMF3Date)
		w.writeU29(0x01)
		w.writeFloat64(float64(t.UnixMilli()))
	case Array:
		w.buf = append(w.buf, markerAMF3Array)
		w.writeU29(uint32(len(t))<<1 | 1)
		w.writeU29(0x01) // empty key ends the associative part
		for _, element := range t {
			w.writeValue(element)
		}
	case *TypedObject:
		w.buf = append(w.buf, markerAMF3Object)
		keys := t.Keys()
		// inline object, inline traits, sealed property-list encoding
		w.writeU29(uint32(len(keys))<<4 | 0x03)
		w.writeString(t.ClassName)
		for _, key := range keys {
			w.writeString(key)
		}
		for _, key := range keys {
			field, _ := t.Get(key)
			w.writeValue(field)
		}
	default:
		panic(fmt.Sprintf("amf3Writer: unsupported test value %T", value))
	}
}

// encodeModifiedUTF8 converts a string into Java-style modified UTF-8:
// 1-3 byte sequences only, NUL as C0 80, supplementary code points as
// surrogate pairs of two 3-byte sequences.
func encodeModifiedUTF8(s string) []byte {
	var out []byte
	for _, r := range s {
		switch {
		case r > 0 && r < 0x80:
			out = append(out, byte(r))
		case r < 0x800:
			out = append(out, 0xC0|byte(r>>6), 0x80|byte(r&0x3F))
		case r < 0x10000:
			out = append(out, 0xE0|byte(r>>12), 0x80|byte(r>>6&0x3F), 0x80|byte(r&0x3F))
		default:
			hi, lo := utf16.EncodeRune(r)
			for _, half := range [2]rune{hi, lo} {
				out = append(out, 0xE0|byte(half>>12), 0x80|byte(half>>6&0x3F), 0x80|byte(half&0x3F))
			}
		}
	}
	return out
}

// stringAlphabet mixes 1-, 2- and 3-byte sequences plus a surrogate pair.
var stringAlphabet = []rune{'a', 'b', 'z', '0', ' ', '_', 'é', 'ß', '✓', '漢', '😀'}

// randomString builds a short string from the mixed-width alphabet.
func randomString(r *rand.Rand) string {
	length := r.Intn(8)
	runes := make([]rune, length)
	for i := range runes {
		runes[i] = stringAlphabet[r.Intn(len(stringAlphabet))]
	}
	return string(runes)
}

// randomValue builds a bounded-depth tree of decodable AMF3 values.
func randomValue(r *rand.Rand, depth int) Value {
	kinds := 7
	if depth < 3 {
		kinds = 9 // composites only above the depth floor
	}
	switch r.Intn(kinds) {
	case 0:
		return nil
	case 1:
		return r.Intn(2) == 0
	case 2:
		return int32(r.Int31n(1<<29)) - 1<<28
	case 3:
		return float64(r.Int63n(1<<40)) / 8
	case 4:
		return randomString(r)
	case 5:
		raw := make([]byte, r.Intn(12))
		r.Read(raw)
		return raw
	case 6:
		return time.UnixMilli(r.Int63n(4102444800000)).UTC()
	case 7:
		array := make(Array, r.Intn(4))
		for i := range array {
			array[i] = randomValue(r, depth+1)
		}
		return array
	default:
		object := NewTypedObject("")
		if r.Intn(2) == 0 {
			object.ClassName = "com.riotgames.platform.test.Payload" + randomString(r)
		}
		for i, n := 0, r.Intn(4); i < n; i++ {
			object.Set(fmt.Sprintf("property%d", i), randomValue(r, depth+1))
		}
		return object
	}
}

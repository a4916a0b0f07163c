// If you are AI: This file lists the AMF0 and AMF3 type markers and their
// classic names used in traces and errors.

package amf

// AMF0 type markers.
const (
	markerAMF0Number      = 0x00
	markerAMF0Boolean     = 0x01
	markerAMF0String      = 0x02
	markerAMF0Object      = 0x03
	markerAMF0MovieClip   = 0x04
	markerAMF0Null        = 0x05
	markerAMF0Undefined   = 0x06
	markerAMF0Reference   = 0x07
	markerAMF0MixedArray  = 0x08
	markerAMF0ObjectEnd   = 0x09
	markerAMF0Array       = 0x0A
	markerAMF0Date        = 0x0B
	markerAMF0LongString  = 0x0C
	markerAMF0Unsupported = 0x0D
	markerAMF0RecordSet   = 0x0E
	markerAMF0XML         = 0x0F
	markerAMF0TypedObject = 0x10
	markerAMF0AVMPlus     = 0x11
)

// AMF3 type markers.
const (
	markerAMF3Undefined    = 0x00
	markerAMF3Null         = 0x01
	markerAMF3False        = 0x02
	markerAMF3True         = 0x03
	markerAMF3Integer      = 0x04
	markerAMF3Double       = 0x05
	markerAMF3String       = 0x06
	markerAMF3XMLDoc       = 0x07
	markerAMF3Date         = 0x08
	markerAMF3Array        = 0x09
	markerAMF3Object       = 0x0A
	markerAMF3XML          = 0x0B
	markerAMF3ByteArray    = 0x0C
	markerAMF3VectorInt    = 0x0D
	markerAMF3VectorUint   = 0x0E
	markerAMF3VectorDouble = 0x0F
	markerAMF3VectorObject = 0x10
	markerAMF3Dictionary   = 0x11
)

// amf0TypeName returns the classic name of an AMF0 marker.
func amf0TypeName(marker byte) string {
	switch marker {
	case markerAMF0Number:
		return "number"
	case markerAMF0Boolean:
		return "boolean"
	case markerAMF0String:
		return "string"
	case markerAMF0Object:
		return "object"
	case markerAMF0MovieClip:
		return "movieclip"
	case markerAMF0Null:
		return "null"
	case markerAMF0Undefined:
		return "undefined"
	case markerAMF0Reference:
		return "reference"
	case markerAMF0MixedArray:
		return "mixed array"
	case markerAMF0ObjectEnd:
		return "object end"
	case markerAMF0Array:
		return "array"
	case markerAMF0Date:
		return "date"
	case markerAMF0LongString:
		return "long string"
	case markerAMF0Unsupported:
		return "unsupported"
	case markerAMF0RecordSet:
		return "recordset"
	case markerAMF0XML:
		return "xml"
	case markerAMF0TypedObject:
		return "typed object"
	case markerAMF0AVMPlus:
		return "avmplus"
	}
	return "unknown"
}

// amf3TypeName returns the classic name of an AMF3 marker.
func amf3TypeName(marker byte) string {
	switch marker {
	case markerAMF3Undefined:
		return "undefined"
	case markerAMF3Null:
		return "null"
	case markerAMF3False:
		return "false"
	case markerAMF3True:
		return "true"
	case markerAMF3Integer:
		return "integer"
	case markerAMF3Double:
		return "double"
	case markerAMF3String:
		return "string"
	case markerAMF3XMLDoc:
		return "xml document"
	case markerAMF3Date:
		return "date"
	case markerAMF3Array:
		return "array"
	case markerAMF3Object:
		return "object"
	case markerAMF3XML:
		return "xml"
	case markerAMF3ByteArray:
		return "byte array"
	case markerAMF3VectorInt:
		return "vector int"
	case markerAMF3VectorUint:
		return "vector uint"
	case markerAMF3VectorDouble:
		return "vector double"
	case markerAMF3VectorObject:
		return "vector object"
	case markerAMF3Dictionary:
		return "dictionary"
	}
	return "unknown"
}

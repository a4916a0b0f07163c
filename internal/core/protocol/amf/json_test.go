// If you are AI: This file tests the JSON-wrapped externalizable bodies the
// Riot notification classes carry.
package amf

import (
	"encoding/binary"
	"errors"
	"reflect"
	"strings"
	"testing"
)

// jsonBody appends a u32-length JSON blob to the writer.
func jsonBody(w *amf3Writer, blob string) {
	var size [4]byte
	binary.BigEndian.PutUint32(size[:], uint32(len(blob)))
	w.buf = append(w.buf, size[:]...)
	w.buf = append(w.buf, blob...)
}

// TestJSONExternalizable parses a u32-length JSON body and binds its fields
// in sorted key order.
func TestJSONExternalizable(t *testing.T) {
	payload := externalizable(classBroadcast, func(w *amf3Writer) {
		jsonBody(w, `{"count": 1, "broadcastMessages": [{"message": "hi", "active": true}]}`)
	})
	object, err := decodeExternalizable(t, payload, nil)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if object.ClassName != classBroadcast {
		t.Errorf("class = %q, want %q", object.ClassName, classBroadcast)
	}
	if !reflect.DeepEqual(object.Keys(), []string{"broadcastMessages", "count"}) {
		t.Errorf("keys = %v, want sorted [broadcastMessages count]", object.Keys())
	}
	if count, _ := object.GetFloat64("count"); count != 1 {
		t.Errorf("count = %v, want 1", count)
	}
	messages, ok := object.GetArray("broadcastMessages")
	if !ok || len(messages) != 1 {
		t.Fatalf("broadcastMessages = %v (present=%t), want one element", messages, ok)
	}
	message := messages[0].(*TypedObject)
	if text, _ := message.GetString("message"); text != "hi" {
		t.Errorf("message = %q, want \"hi\"", text)
	}
	if active, _ := message.GetBool("active"); !active {
		t.Error("active = false, want true")
	}
}

// TestJSONExternalizableRejectsNonObject fails when the blob is not a JSON
// object.
func TestJSONExternalizableRejectsNonObject(t *testing.T) {
	payload := externalizable(classSystemStates, func(w *amf3Writer) {
		jsonBody(w, `[1, 2, 3]`)
	})
	_, err := decodeExternalizable(t, payload, nil)
	if err == nil || !strings.Contains(err.Error(), "want object") {
		t.Fatalf("err = %v, want JSON object complaint", err)
	}
}

// TestJSONExternalizableBadBlob surfaces JSON syntax errors with the class
// name.
func TestJSONExternalizableBadBlob(t *testing.T) {
	payload := externalizable(classGameTypeConfig, func(w *amf3Writer) {
		jsonBody(w, `{"count":`)
	})
	_, err := decodeExternalizable(t, payload, nil)
	if err == nil || !strings.Contains(err.Error(), classGameTypeConfig) {
		t.Fatalf("err = %v, want parse failure naming the class", err)
	}
}

// TestJSONExternalizableTruncatedBlob fails with EOF when the declared length
// runs past the payload.
func TestJSONExternalizableTruncatedBlob(t *testing.T) {
	payload := externalizable(classSummonerCatalog, func(w *amf3Writer) {
		var size [4]byte
		binary.BigEndian.PutUint32(size[:], 64)
		w.buf = append(w.buf, size[:]...)
		w.buf = append(w.buf, '{')
	})
	_, err := decodeExternalizable(t, payload, nil)
	if !errors.Is(err, ErrUnexpectedEOF) {
		t.Fatalf("err = %v, want ErrUnexpectedEOF", err)
	}
}

// If you are AI: This file binds decoded AMF invocation responses onto typed
// envelope structs.

package message

import (
	"fmt"

	"github.com/mitchellh/mapstructure"

	"github.com/hawolt/league-of-legends-rtmp/internal/core/protocol/amf"
)

// Envelope mirrors the four-field invocation response the platform sends for
// every client call, plus the version byte when the payload carries one.
type Envelope struct {
	Version     int         `mapstructure:"version"`
	Result      string      `mapstructure:"result"`
	InvokeID    int         `mapstructure:"invokeId"`
	ServiceCall interface{} `mapstructure:"serviceCall"`
	Data        interface{} `mapstructure:"data"`
}

// FromObject binds a decoded object onto out, a pointer to a struct with
// mapstructure tags. Numbers bind weakly since AMF delivers them as float64
// or int32 depending on the encoding.
func FromObject(object *amf.TypedObject, out interface{}) error {
	return bindNative(amf.ToNative(object), out)
}

// bindNative runs a weakly typed mapstructure decode of a plain value tree.
func bindNative(native interface{}, out interface{}) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return fmt.Errorf("build binder: %w", err)
	}
	return decoder.Decode(native)
}

// ParseEnvelope binds a decoded invocation response onto an Envelope.
func ParseEnvelope(object *amf.TypedObject) (*Envelope, error) {
	envelope := &Envelope{}
	if err := FromObject(object, envelope); err != nil {
		return nil, fmt.Errorf("bind envelope: %w", err)
	}
	return envelope, nil
}

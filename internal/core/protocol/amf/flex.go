// If you are AI: This file decodes the Flex and Riot externalizable classes
// observed on the League of Legends RTMP channel. The class names are the
// literal aliases used on the wire.

package amf

import (
	"fmt"
)

// Riot platform classes whose externalizable body is a u32-length JSON blob.
const (
	classSystemStates    = "com.riotgames.platform.systemstate.ClientSystemStatesNotification"
	classBroadcast       = "com.riotgames.platform.broadcast.BroadcastNotification"
	classSummonerCatalog = "com.riotgames.platform.summoner.SummonerCatalog"
	classGameTypeConfig  = "com.riotgames.platform.game.GameTypeConfigDTO"
)

// dsaFields maps bits 0..6 of the first flag byte to async message fields.
var dsaFields = [7]string{"body", "clientId", "destination", "headers", "messageId", "timeStamp", "timeToLive"}

// readExternalizable fills object from the externalizable body of its class.
// The object is already stored in the object table; handlers mutate it in
// place so back-references observe the populated object.
func (d *Decoder) readExternalizable(object *TypedObject) error {
	switch object.ClassName {
	case "DSK":
		return d.readDSK(object)
	case "DSA":
		return d.readDSA(object)
	case "flex.messaging.io.ArrayCollection":
		return d.readArrayCollection(object)
	case classSystemStates, classBroadcast, classSummonerCatalog, classGameTypeConfig:
		return d.readJSONBody(object)
	default:
		return &UnknownExternalizableError{Class: object.ClassName, Raw: d.data}
	}
}

// readArrayCollection wraps one decoded AMF3 array under the "array" field.
func (d *Decoder) readArrayCollection(object *TypedObject) error {
	value, err := d.decodeAMF3()
	if err != nil {
		return err
	}
	array, ok := value.(Array)
	if !ok {
		return fmt.Errorf("ArrayCollection body is %T, want array", value)
	}
	object.Set("array", array)
	return nil
}

// readDSA decodes a Flex async message: two flag blocks. The first block's
// leading flag byte selects the seven standard fields, its second flag byte
// replaces clientId and messageId with UUID text decoded from byte arrays.
// The second block carries correlationId the same two ways.
func (d *Decoder) readDSA(object *TypedObject) error {
	flags, err := d.readFlagBytes()
	if err != nil {
		return err
	}
	for i, flag := range flags {
		bits := uint(0)
		switch i {
		case 0:
			for bit, name := range dsaFields {
				if flag&(1<<uint(bit)) == 0 {
					continue
				}
				value, err := d.decodeAMF3()
				if err != nil {
					return err
				}
				object.Set(name, value)
			}
			bits = 7
		case 1:
			if flag&0x01 != 0 {
				id, err := d.readUUIDOverride()
				if err != nil {
					return err
				}
				object.Set("clientId", id)
			}
			if flag&0x02 != 0 {
				id, err := d.readUUIDOverride()
				if err != nil {
					return err
				}
				object.Set("messageId", id)
			}
			bits = 2
		}
		if err := d.discardRemaining(flag, bits); err != nil {
			return err
		}
	}
	flags, err = d.readFlagBytes()
	if err != nil {
		return err
	}
	for i, flag := range flags {
		bits := uint(0)
		if i == 0 {
			if flag&0x01 != 0 {
				value, err := d.decodeAMF3()
				if err != nil {
					return err
				}
				object.Set("correlationId", value)
			}
			if flag&0x02 != 0 {
				ignored, err := d.readByte()
				if err != nil {
					return err
				}
				d.tracer.Infof("ignoring byte 0x%02x", ignored)
				raw, err := d.readByteArrayAMF3()
				if err != nil {
					return err
				}
				id, err := uuidFromBytes(raw)
				if err != nil {
					return err
				}
				object.Set("correlationId", id)
			}
			bits = 2
		}
		if err := d.discardRemaining(flag, bits); err != nil {
			return err
		}
	}
	return nil
}

// readDSK decodes a Flex acknowledge message: a DSA body followed by one
// more flag block whose fields are all discarded.
func (d *Decoder) readDSK(object *TypedObject) error {
	if err := d.readDSA(object); err != nil {
		return err
	}
	flags, err := d.readFlagBytes()
	if err != nil {
		return err
	}
	for _, flag := range flags {
		if err := d.discardRemaining(flag, 0); err != nil {
			return err
		}
	}
	return nil
}

// readUUIDOverride decodes an AMF3 byte array value and converts it to UUID
// text.
func (d *Decoder) readUUIDOverride() (string, error) {
	value, err := d.decodeAMF3()
	if err != nil {
		return "", err
	}
	raw, ok := value.([]byte)
	if !ok {
		return "", fmt.Errorf("UUID override is %T, want byte array", value)
	}
	return uuidFromBytes(raw)
}

// readFlagBytes reads one flag block: bytes chain while bit 7 is set.
func (d *Decoder) readFlagBytes() ([]byte, error) {
	var flags []byte
	for {
		flag, err := d.readByte()
		if err != nil {
			return nil, err
		}
		flags = append(flags, flag)
		if flag&0x80 == 0 {
			return flags, nil
		}
	}
}

// discardRemaining drains flag bits the decoder does not assign a field to.
// Each set bit in positions bits..5 carries one AMF3 value; bit 6 is never
// assigned and bit 7 is the continuation marker.
func (d *Decoder) discardRemaining(flag byte, bits uint) error {
	if flag>>bits == 0 {
		return nil
	}
	for i := bits; i < 6; i++ {
		if flag>>i&0x01 == 0 {
			continue
		}
		value, err := d.decodeAMF3()
		if err != nil {
			return err
		}
		d.tracer.Infof("ignoring AMF3 %s", renderValue(value))
	}
	return nil
}

// uuidFromBytes renders a 16-byte array as canonical lowercase UUID text.
func uuidFromBytes(raw []byte) (string, error) {
	if len(raw) != 16 {
		return "", &UUIDLengthError{Len: len(raw)}
	}
	return fmt.Sprintf("%x-%x-%x-%x-%x", raw[0:4], raw[4:6], raw[6:8], raw[8:10], raw[10:16]), nil
}

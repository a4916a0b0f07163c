// If you are AI: This file decodes AMF3 objects: traits resolution, sealed
// and dynamic bodies, and the hand-off to externalizable handlers.

package amf

// readObjectAMF3 parses a U29-tagged object. The low bit selects between an
// object back-reference and an inline object; inline objects resolve their
// traits, enter the object table before any body reads, then decode their
// body according to the traits.
func (d *Decoder) readObjectAMF3() (Value, error) {
	tag, err := d.readU29()
	if err != nil {
		return nil, err
	}
	if tag&0x01 == 0 {
		return d.storedObjectAMF3(int(tag >> 1))
	}
	definition, err := d.readTraitsAMF3(tag)
	if err != nil {
		return nil, err
	}
	object := NewTypedObject(definition.ClassName)
	d.storeObjectAMF3(object)
	if definition.Externalizable {
		// Handlers fill the stored object in place so back-references
		// observe the populated fields.
		if err := d.readExternalizable(object); err != nil {
			return nil, err
		}
		return object, nil
	}
	for _, name := range definition.Properties {
		value, err := d.decodeAMF3()
		if err != nil {
			return nil, err
		}
		object.Set(name, value)
	}
	if definition.Dynamic() {
		for {
			key, err := d.readStringAMF3()
			if err != nil {
				return nil, err
			}
			if key == "" {
				break
			}
			value, err := d.decodeAMF3()
			if err != nil {
				return nil, err
			}
			object.Set(key, value)
		}
	}
	return object, nil
}

// readTraitsAMF3 resolves the class definition for an inline object tag.
// Bit 1 clear means a traits back-reference with index tag>>2; otherwise the
// traits are inline: externalizable and encoding share the two bits above
// the reference bits, and tag>>4 counts the sealed property names that
// follow the class name. Inline traits enter the traits table.
func (d *Decoder) readTraitsAMF3(tag uint32) (*ClassDefinition, error) {
	if tag&0x02 == 0 {
		return d.storedTraitsAMF3(int(tag >> 2))
	}
	count := int(tag >> 4)
	if count > d.remaining() {
		return nil, ErrUnexpectedEOF
	}
	definition := &ClassDefinition{
		Externalizable: (tag>>2)&0x01 != 0,
		Encoding:       byte((tag >> 2) & 0x03),
		Properties:     make([]string, count),
	}
	name, err := d.readStringAMF3()
	if err != nil {
		return nil, err
	}
	definition.ClassName = name
	for i := range definition.Properties {
		if definition.Properties[i], err = d.readStringAMF3(); err != nil {
			return nil, err
		}
	}
	d.storeTraitsAMF3(definition)
	return definition, nil
}

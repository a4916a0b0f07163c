// If you are AI: This file exports decoded values to plain Go types so they
// can be rendered as JSON or bound onto structs.

package amf

// ClassKey is the map key ToNative stores a typed object's class name under.
const ClassKey = "__class"

// cycleToken replaces values that reference one of their own ancestors.
const cycleToken = "__cycle"

// ToNative converts a decoded value into plain Go types: typed objects
// become map[string]interface{} (class name under ClassKey when present),
// arrays become []interface{}, scalars pass through. Values that reference
// an ancestor are cut with a cycle marker so the result is always finite.
func ToNative(value Value) interface{} {
	return exportValue(value, make(map[*TypedObject]bool), make(map[*Value]bool))
}

// exportValue walks one value while tracking the objects and arrays on the
// current path.
func exportValue(value Value, objects map[*TypedObject]bool, arrays map[*Value]bool) interface{} {
	switch t := value.(type) {
	case *TypedObject:
		if objects[t] {
			return cycleToken
		}
		objects[t] = true
		out := make(map[string]interface{}, t.Len()+1)
		if t.ClassName != "" {
			out[ClassKey] = t.ClassName
		}
		for _, key := range t.Keys() {
			field, _ := t.Get(key)
			out[key] = exportValue(field, objects, arrays)
		}
		delete(objects, t)
		return out
	case Array:
		// Arrays are identified by the address of their first element;
		// an empty array cannot participate in a cycle.
		var anchor *Value
		if len(t) > 0 {
			anchor = &t[0]
			if arrays[anchor] {
				return cycleToken
			}
			arrays[anchor] = true
		}
		out := make([]interface{}, len(t))
		for i, element := range t {
			out[i] = exportValue(element, objects, arrays)
		}
		if anchor != nil {
			delete(arrays, anchor)
		}
		return out
	default:
		return value
	}
}

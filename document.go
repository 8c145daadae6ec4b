package jsoncore

// Document owns the node and string arenas produced by a single successful
// parse. It is immutable after Parse returns: readers may traverse it
// concurrently from any number of goroutines without synchronization
// (spec §5, "frozen after parse"), but the Document itself must not
// outlive a call to Release, and nothing supports mutating it in place.
type Document struct {
	nodes *nodeArena
	strs  *stringArena
	root  nodeRef
}

// Root returns the document's single root value.
func (d *Document) Root() Value {
	return Value{doc: d, ref: d.root}
}

// ValueCount returns the number of nodes reachable from root (spec
// invariant 7). Every node the parser allocates during a successful parse
// is linked into the tree, so this is simply the arena's live node count.
func (d *Document) ValueCount() int {
	return d.nodes.len()
}

// Release drops the document's arenas. After Release, any Value obtained
// from this Document must not be used.
func (d *Document) Release() {
	d.nodes = nil
	d.strs = nil
}

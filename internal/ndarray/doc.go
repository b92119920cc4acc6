// Package ndarray implements the layout and iteration engine behind the
// public ndarray package: the strided layout descriptor, the subscript
// cursors that turn layouts into flat buffer positions, the array handle
// over a shared element buffer, and the traversal-driven operators built
// on top of them.
//
// Every operation in this package reduces to the same scheme: derive a
// layout, open one or two cursors over it, and apply a per-element
// function at the positions the cursors yield. The cursor is the only
// place subscript-to-position arithmetic lives.
package ndarray

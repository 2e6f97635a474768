package list

import (
	"github.com/cockroachdb/errors"
)

// ErrCorruptRing signals a violation of the structural invariants of a list.
var ErrCorruptRing = errors.New("list: corrupt ring")

// Check validates the structural invariants of l: the ring closes at the
// sentinel, every link is mirrored by a back-link, and every arena slot is
// either linked into the ring or on the free list.
//
// Check is meant to be used in tests.
func (l *List[T]) Check() error {
	if l.nodes == nil {
		if len(l.free) != 0 {
			return errors.Wrap(ErrCorruptRing, "free slots without arena")
		}
		return nil
	}
	linked := 0
	cur := sentinel
	for steps := 0; ; steps++ {
		if steps > len(l.nodes) {
			return errors.Wrapf(ErrCorruptRing, "ring does not close after %d steps", steps)
		}
		next := l.nodes[cur].next
		if next < 0 || next >= len(l.nodes) {
			return errors.Wrapf(ErrCorruptRing, "node %d links to invalid slot %d", cur, next)
		}
		if l.nodes[next].prev != cur {
			return errors.Wrapf(ErrCorruptRing, "node %d: back-link is %d, expected %d",
				next, l.nodes[next].prev, cur)
		}
		if next == sentinel {
			break
		}
		linked++
		cur = next
	}
	for _, i := range l.free {
		if i <= sentinel || i >= len(l.nodes) || l.nodes[i].next != unlinked {
			return errors.Wrapf(ErrCorruptRing, "free slot %d is invalid or still linked", i)
		}
	}
	if linked+len(l.free)+1 != len(l.nodes) {
		return errors.Wrapf(ErrCorruptRing, "%d linked + %d free slots do not account for arena of %d",
			linked, len(l.free), len(l.nodes))
	}
	return nil
}

package datastructure

import (
	"strings"

	"github.com/lintang-b-s/Transitx/pkg/util"
	"golang.org/x/exp/slices"
)

// ParetoFront. immutable set of mutually non-dominated criteria, sorted ascending with payloads masked.
type ParetoFront struct {
	packedCriteria []PackedCriteria
}

var EmptyParetoFront = &ParetoFront{packedCriteria: []PackedCriteria{}}

func (pf *ParetoFront) Size() int {
	return len(pf.packedCriteria)
}

// Get returns the tuple with the given arrival minutes and number of changes.
func (pf *ParetoFront) Get(arrMins, changes int) (PackedCriteria, error) {
	if pf.Size() == 0 {
		return 0, util.NewErrorf(util.ErrNotFound, "no criteria with arrival %d and %d changes in empty front", arrMins, changes)
	}

	if !pf.packedCriteria[0].HasDepMins() {
		key, err := NewPackedCriteria(arrMins, changes, 0)
		if err != nil {
			return 0, util.WrapErrorf(err, util.ErrNotFound, "no criteria with arrival %d and %d changes", arrMins, changes)
		}
		i, found := slices.BinarySearchFunc(pf.packedCriteria, key, func(e, t PackedCriteria) int {
			e = e.WithPayload(0)
			switch {
			case e < t:
				return -1
			case e > t:
				return 1
			}
			return 0
		})
		if found {
			return pf.packedCriteria[i], nil
		}
	} else {
		// departure minutes lead the ordering, (arr, changes) is unordered here
		for _, c := range pf.packedCriteria {
			if c.ArrMins() == arrMins && c.Changes() == changes {
				return c, nil
			}
		}
	}

	return 0, util.NewErrorf(util.ErrNotFound, "no criteria with arrival %d and %d changes", arrMins, changes)
}

func (pf *ParetoFront) ForEach(fn func(c PackedCriteria)) {
	for _, c := range pf.packedCriteria {
		fn(c)
	}
}

// Criteria returns a copy of the tuples in sort order.
func (pf *ParetoFront) Criteria() []PackedCriteria {
	return slices.Clone(pf.packedCriteria)
}

func (pf *ParetoFront) String() string {
	return frontString("ParetoFront", pf.packedCriteria)
}

func frontString(title string, cs []PackedCriteria) string {
	var sb strings.Builder
	sb.WriteString(title)
	sb.WriteString(":\n")
	for _, c := range cs {
		sb.WriteString(c.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

const (
	initialFrontCapacity = 2
	frontGrowthNum       = 3
	frontGrowthDen       = 2
)

// ParetoFrontBuilder. mutable pareto front, not safe for concurrent use.
type ParetoFrontBuilder struct {
	frontier []PackedCriteria
}

func NewParetoFrontBuilder() *ParetoFrontBuilder {
	return &ParetoFrontBuilder{
		frontier: make([]PackedCriteria, 0, initialFrontCapacity),
	}
}

// Copy returns a builder with its own copy of the tuples.
func (b *ParetoFrontBuilder) Copy() *ParetoFrontBuilder {
	frontier := make([]PackedCriteria, len(b.frontier), cap(b.frontier))
	copy(frontier, b.frontier)
	return &ParetoFrontBuilder{frontier: frontier}
}

func (b *ParetoFrontBuilder) Size() int {
	return len(b.frontier)
}

func (b *ParetoFrontBuilder) IsEmpty() bool {
	return len(b.frontier) == 0
}

// Clear empties the builder and keeps its capacity.
func (b *ParetoFrontBuilder) Clear() *ParetoFrontBuilder {
	b.frontier = b.frontier[:0]
	return b
}

/*
Add. insert c unless some tuple already dominates or equals it.

scan: tuples sorted before c are the only candidates that can dominate it, the first tuple sorting
after c is the insertion point.
prune: from the insertion point on, drop every tuple c dominates or equals and compact the survivors.
write: shift the survivors by one and put c at the insertion point, growing by 1.5x when full.
*/
func (b *ParetoFrontBuilder) Add(c PackedCriteria) *ParetoFrontBuilder {
	key := c.WithPayload(0)
	n := len(b.frontier)

	insertAt := 0
	for ; insertAt < n; insertAt++ {
		cur := b.frontier[insertAt].WithPayload(0)
		if cur.DominatesOrIsEqual(key) {
			return b
		}
		if cur > key {
			break
		}
	}

	end := insertAt
	for src := insertAt; src < n; src++ {
		if key.DominatesOrIsEqual(b.frontier[src].WithPayload(0)) {
			continue
		}
		b.frontier[end] = b.frontier[src]
		end++
	}

	newSize := end + 1
	if newSize > cap(b.frontier) {
		b.grow(newSize)
	}
	b.frontier = b.frontier[:newSize]
	copy(b.frontier[insertAt+1:newSize], b.frontier[insertAt:end])
	b.frontier[insertAt] = c
	return b
}

func (b *ParetoFrontBuilder) grow(minCap int) {
	newCap := cap(b.frontier) * frontGrowthNum / frontGrowthDen
	if newCap < minCap {
		newCap = minCap
	}
	frontier := make([]PackedCriteria, len(b.frontier), newCap)
	copy(frontier, b.frontier)
	b.frontier = frontier
}

func (b *ParetoFrontBuilder) AddCriteria(arrMins, changes int, payload uint32) (*ParetoFrontBuilder, error) {
	c, err := NewPackedCriteria(arrMins, changes, payload)
	if err != nil {
		return b, err
	}
	return b.Add(c), nil
}

func (b *ParetoFrontBuilder) AddAll(other *ParetoFrontBuilder) *ParetoFrontBuilder {
	for _, c := range other.frontier {
		b.Add(c)
	}
	return b
}

// FullyDominates reports whether every tuple of other, given departure depMins, is dominated or equalled by a
// tuple of b. The tuples of b must carry departure minutes.
func (b *ParetoFrontBuilder) FullyDominates(other *ParetoFrontBuilder, depMins int) (bool, error) {
	if !checkMins(depMins) {
		return false, util.NewErrorf(util.ErrBadParamInput, "departure minutes %d out of range [%d, %d)", depMins, MIN_MINS, MAX_MINS)
	}

	for _, oc := range other.frontier {
		forced := oc.withDepMins(depMins)
		dominated := false
		for _, c := range b.frontier {
			if c.DominatesOrIsEqual(forced) {
				dominated = true
				break
			}
		}
		if !dominated {
			return false, nil
		}
	}
	return true, nil
}

func (b *ParetoFrontBuilder) ForEach(fn func(c PackedCriteria)) {
	for _, c := range b.frontier {
		fn(c)
	}
}

func (b *ParetoFrontBuilder) Build() *ParetoFront {
	if len(b.frontier) == 0 {
		return EmptyParetoFront
	}
	return &ParetoFront{packedCriteria: slices.Clone(b.frontier)}
}

func (b *ParetoFrontBuilder) String() string {
	return frontString("Builder", b.frontier)
}

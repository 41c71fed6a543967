package datastructure

import (
	"fmt"

	"github.com/lintang-b-s/Transitx/pkg/util"
)

/*
PackedCriteria. one optimization tuple packed in 64 bits, most to least significant:

	bit 63      departure present flag
	bits 51-62  departure minutes, stored reversed (later departure = smaller value)
	bits 39-50  arrival minutes + 240
	bits 32-38  number of changes
	bits 0-31   payload

with the payload masked out, numeric order is lexicographic order on (departure desc, arrival, changes),
so every tuple that dominates another sorts before it.
*/
type PackedCriteria uint64

const (
	MIN_MINS = -240
	MAX_MINS = 2880 // exclusive

	MAX_CHANGES = 1<<changesBits - 1

	payloadBits = 32
	changesBits = 7
	minsBits    = 12

	changesShift = payloadBits
	arrShift     = changesShift + changesBits
	depShift     = arrShift + minsBits
	depFlagShift = depShift + minsBits

	payloadMask = 1<<payloadBits - 1
	changesMask = 1<<changesBits - 1
	minsMask    = 1<<minsBits - 1

	depRange = MAX_MINS - MIN_MINS

	// everything below the departure field
	withoutDepMask PackedCriteria = 1<<depShift - 1
)

func checkMins(mins int) bool {
	return mins >= MIN_MINS && mins < MAX_MINS
}

// NewPackedCriteria packs arrival minutes, number of changes and a payload without departure minutes.
func NewPackedCriteria(arrMins, changes int, payload uint32) (PackedCriteria, error) {
	if !checkMins(arrMins) {
		return 0, util.NewErrorf(util.ErrBadParamInput, "arrival minutes %d out of range [%d, %d)", arrMins, MIN_MINS, MAX_MINS)
	}
	if changes < 0 || changes > MAX_CHANGES {
		return 0, util.NewErrorf(util.ErrBadParamInput, "changes %d out of range [0, %d]", changes, MAX_CHANGES)
	}

	arr := PackedCriteria(arrMins-MIN_MINS) & minsMask
	ch := PackedCriteria(changes) & changesMask
	return arr<<arrShift | ch<<changesShift | PackedCriteria(payload), nil
}

func MustPackCriteria(arrMins, changes int, payload uint32) PackedCriteria {
	c, err := NewPackedCriteria(arrMins, changes, payload)
	if err != nil {
		panic(err)
	}
	return c
}

func (c PackedCriteria) HasDepMins() bool {
	return c>>depFlagShift&1 == 1
}

func (c PackedCriteria) DepMins() (int, error) {
	if !c.HasDepMins() {
		return 0, util.NewErrorf(util.ErrBadParamInput, "criteria %#x has no departure minutes", uint64(c))
	}
	stored := int(c >> depShift & minsMask)
	return MAX_MINS - stored, nil
}

// mustDepMins is used only after HasDepMins has been checked.
func (c PackedCriteria) mustDepMins() int {
	return MAX_MINS - int(c>>depShift&minsMask)
}

func (c PackedCriteria) ArrMins() int {
	return int(c>>arrShift&minsMask) + MIN_MINS
}

func (c PackedCriteria) Changes() int {
	return int(c >> changesShift & changesMask)
}

func (c PackedCriteria) Payload() uint32 {
	return uint32(c & payloadMask)
}

func (c PackedCriteria) WithDepMins(depMins int) (PackedCriteria, error) {
	if !checkMins(depMins) {
		return 0, util.NewErrorf(util.ErrBadParamInput, "departure minutes %d out of range [%d, %d)", depMins, MIN_MINS, MAX_MINS)
	}
	return c.withDepMins(depMins), nil
}

func (c PackedCriteria) withDepMins(depMins int) PackedCriteria {
	stored := PackedCriteria(MAX_MINS-depMins) & minsMask
	return c.WithoutDepMins() | 1<<depFlagShift | stored<<depShift
}

func (c PackedCriteria) WithoutDepMins() PackedCriteria {
	return c & withoutDepMask
}

func (c PackedCriteria) WithAdditionalChange() (PackedCriteria, error) {
	changes := c.Changes() + 1
	if changes > MAX_CHANGES {
		return 0, util.NewErrorf(util.ErrBadParamInput, "too many changes: %d", changes)
	}
	return c&^(changesMask<<changesShift) | PackedCriteria(changes)<<changesShift, nil
}

func (c PackedCriteria) WithPayload(payload uint32) PackedCriteria {
	return c&^payloadMask | PackedCriteria(payload)
}

// DominatesOrIsEqual reports whether c is no worse than other in every criterion.
// Both tuples must agree on the presence of departure minutes, it panics otherwise.
func (c PackedCriteria) DominatesOrIsEqual(other PackedCriteria) bool {
	hasDep := c.HasDepMins()
	if hasDep != other.HasDepMins() {
		panic(fmt.Sprintf("criteria %#x and %#x disagree on departure minutes", uint64(c), uint64(other)))
	}
	if c.ArrMins() > other.ArrMins() || c.Changes() > other.Changes() {
		return false
	}
	return !hasDep || c.mustDepMins() >= other.mustDepMins()
}

// StrictlyDominates is DominatesOrIsEqual minus equality of all criteria, the payload is ignored.
func (c PackedCriteria) StrictlyDominates(other PackedCriteria) bool {
	return c.DominatesOrIsEqual(other) && c.WithPayload(0) != other.WithPayload(0)
}

func (c PackedCriteria) String() string {
	if c.HasDepMins() {
		return fmt.Sprintf("[dep %s, arr %s, changes %d, payload %#x]",
			util.FormatMinutes(c.mustDepMins()), util.FormatMinutes(c.ArrMins()), c.Changes(), c.Payload())
	}
	return fmt.Sprintf("[arr %s, changes %d, payload %#x]",
		util.FormatMinutes(c.ArrMins()), c.Changes(), c.Payload())
}

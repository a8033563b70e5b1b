package systems

import (
	"github.com/automoto/godofsky/components"
	"github.com/automoto/godofsky/shared/gamemath"
	"github.com/automoto/godofsky/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Query returns the entities tagged tag whose boxes touch box. Resolv only
// narrows the search to nearby cells; the result is decided by the exact
// closed-interval test, so touching edges count.
func Query(w donburi.World, box gamemath.AABB, tag string) []*donburi.Entry {
	spaceEntry, ok := components.Space.First(w)
	if !ok {
		return nil
	}
	lvl := level(w)
	if lvl == nil {
		return nil
	}
	space := components.Space.Get(spaceEntry)

	// Cell lookups treat the far edge as exclusive, so pad by one unit.
	probe := resolv.NewObject(box.X-lvl.OriginX-1, box.Y-lvl.OriginY-1, box.W+2, box.H+2, tags.ResolvProbe)
	space.Add(probe)
	defer space.Remove(probe)

	check := probe.Check(0, 0, tag)
	if check == nil {
		return nil
	}

	var found []*donburi.Entry
	seen := make(map[donburi.Entity]bool)
	for _, obj := range check.ObjectsByTags(tag) {
		entry, ok := obj.Data.(*donburi.Entry)
		if !ok || entry == nil || !entry.Valid() || seen[entry.Entity()] {
			continue
		}
		seen[entry.Entity()] = true
		if gamemath.Overlaps(box, *components.Box.Get(entry)) {
			found = append(found, entry)
		}
	}
	return found
}

// Boxes returns the boxes of entries in order.
func Boxes(entries []*donburi.Entry) []gamemath.AABB {
	boxes := make([]gamemath.AABB, len(entries))
	for i, e := range entries {
		boxes[i] = *components.Box.Get(e)
	}
	return boxes
}

// Destroy removes an entity along with its broadphase object.
func Destroy(w donburi.World, e *donburi.Entry) {
	if !e.Valid() {
		return
	}
	if e.HasComponent(components.Object) {
		if obj := components.Object.Get(e); obj.Object != nil && obj.Space != nil {
			obj.Space.Remove(obj.Object)
		}
	}
	w.Remove(e.Entity())
}

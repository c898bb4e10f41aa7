package physics

// Quadtree limits. A node is treated as a leaf once it holds at most
// LeafCapacity colliders or sits MaxDepth levels below the root.
const (
	LeafCapacity = 6
	MaxDepth     = 6
)

// PairFunc receives an overlapping collider pair.
type PairFunc func(a, b *Collider)

// pairKey identifies an unordered pair by input position, lo < hi.
type pairKey struct {
	lo, hi int
}

// detection holds everything one Detect call needs. It is allocated per call
// and dropped on return, so no state survives between ticks.
type detection struct {
	colliders []*Collider
	boxes     []Rect // AABB per collider, computed once
	reported  map[pairKey]struct{}
	onPair    PairFunc
}

// Detect finds every pair of overlapping colliders and calls onPair exactly
// once per pair.
//
// The region is split recursively into quadrants. A collider is assigned to
// every quadrant its bounding box touches, so pairs across a seam are not
// lost; pairs seen in more than one leaf are reported only the first time.
// Colliders outside bounds are still tested: the root region grows to cover
// them. Nil entries and repeated pointers are ignored, so a collider is never
// paired with itself. A collider moved to a non-finite position is skipped.
//
// onPair may record colliders for removal but must not mutate the slice
// being traversed.
func Detect(colliders []*Collider, bounds Rect, onPair PairFunc) {
	if len(colliders) < 2 || onPair == nil {
		return
	}

	d := detection{
		colliders: make([]*Collider, 0, len(colliders)),
		boxes:     make([]Rect, 0, len(colliders)),
		reported:  make(map[pairKey]struct{}),
		onPair:    onPair,
	}

	root := NewRect(bounds.Min, bounds.Max)
	seen := make(map[*Collider]struct{}, len(colliders))
	for _, c := range colliders {
		if c == nil {
			continue
		}
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}

		box := c.shape.Bounds()
		if !box.Min.finite() || !box.Max.finite() {
			continue
		}
		d.colliders = append(d.colliders, c)
		d.boxes = append(d.boxes, box)
		root = root.Union(box)
	}

	items := make([]int, len(d.colliders))
	for i := range items {
		items[i] = i
	}
	d.visit(root, items, 0)
}

// visit partitions items (ascending input indices) within region.
func (d *detection) visit(region Rect, items []int, depth int) {
	if len(items) <= LeafCapacity || depth >= MaxDepth {
		d.narrowPhase(items)
		return
	}

	for _, quad := range region.Quadrants() {
		var child []int
		for _, i := range items {
			if quad.Intersects(d.boxes[i]) {
				child = append(child, i)
			}
		}
		// A single collider cannot form a pair.
		if len(child) > 1 {
			d.visit(quad, child, depth+1)
		}
	}
}

// narrowPhase runs the exact circle test on every pair in a leaf.
func (d *detection) narrowPhase(items []int) {
	for a := 0; a < len(items); a++ {
		i := items[a]
		ci := d.colliders[i]
		for b := a + 1; b < len(items); b++ {
			j := items[b]
			cj := d.colliders[j]
			if !ci.shape.Overlaps(cj.shape) {
				continue
			}
			key := pairKey{lo: i, hi: j}
			if _, done := d.reported[key]; done {
				continue
			}
			d.reported[key] = struct{}{}
			d.onPair(ci, cj)
		}
	}
}

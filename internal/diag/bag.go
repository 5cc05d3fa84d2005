package diag

import "sort"

// Bag collects diagnostics in insertion order.
type Bag struct {
	items []Diagnostic
}

func NewBag() *Bag {
	return &Bag{}
}

func (b *Bag) Add(d Diagnostic) {
	b.items = append(b.items, d)
}

func (b *Bag) Len() int {
	return len(b.items)
}

// Items returns the collected diagnostics. The slice points at the bag's
// internal storage; callers must not modify it.
func (b *Bag) Items() []Diagnostic {
	return b.items
}

// Merge appends all diagnostics from other.
func (b *Bag) Merge(other *Bag) {
	b.items = append(b.items, other.items...)
}

// Sort orders diagnostics by file, start position, then code, so output is
// deterministic regardless of how bags were merged.
func (b *Bag) Sort() {
	sort.SliceStable(b.items, func(i, j int) bool {
		di, dj := b.items[i], b.items[j]
		if di.Filepath != dj.Filepath {
			return di.Filepath < dj.Filepath
		}
		if di.Range.Start.Line != dj.Range.Start.Line {
			return di.Range.Start.Line < dj.Range.Start.Line
		}
		if di.Range.Start.Col != dj.Range.Start.Col {
			return di.Range.Start.Col < dj.Range.Start.Col
		}
		return di.Code < dj.Code
	})
}

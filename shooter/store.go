package shooter

import "github.com/samber/lo"

// Removable is implemented by anything that can sit in an entity store and
// be dropped by the compaction pass.
type Removable interface {
	Removed() bool
}

// Mark is embedded by entities that are removed by flag. Once marked, an
// entity takes part in no further collision checks and is dropped by the
// next Compact.
type Mark struct {
	marked bool
}

func (m *Mark) MarkForDeletion() {
	m.marked = true
}

func (m *Mark) Removed() bool {
	return m.marked
}

// Compact returns the items that have not been removed, preserving order.
func Compact[T Removable](items []T) []T {
	return lo.Filter(items, func(item T, _ int) bool {
		return !item.Removed()
	})
}

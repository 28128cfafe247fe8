// Package collection holds the id and list conventions shared by every
// stored collection. All functions return fresh slices and never mutate
// their input.
package collection

type Identifiable interface {
	GetID() uint
}

// NextID is max(ids)+1, or 1 for an empty collection.
func NextID[T Identifiable](items []T) uint {
	var max uint
	for _, it := range items {
		if id := it.GetID(); id > max {
			max = id
		}
	}
	return max + 1
}

func Find[T Identifiable](items []T, id uint) (T, bool) {
	for _, it := range items {
		if it.GetID() == id {
			return it, true
		}
	}
	var zero T
	return zero, false
}

func Append[T any](items []T, item T) []T {
	out := make([]T, 0, len(items)+1)
	out = append(out, items...)
	return append(out, item)
}

// Replace swaps the element carrying item's id, keeping order.
// The second return is false when no element matched.
func Replace[T Identifiable](items []T, item T) ([]T, bool) {
	out := make([]T, len(items))
	found := false
	for i, it := range items {
		if it.GetID() == item.GetID() {
			out[i] = item
			found = true
			continue
		}
		out[i] = it
	}
	return out, found
}

func Remove[T Identifiable](items []T, id uint) ([]T, bool) {
	out := make([]T, 0, len(items))
	found := false
	for _, it := range items {
		if it.GetID() == id {
			found = true
			continue
		}
		out = append(out, it)
	}
	return out, found
}

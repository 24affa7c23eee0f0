package containertest

import (
	"github.com/pkg/errors"

	"github.com/denismitr/collections/container"
)

// VerifySet runs the membership storage contract against a and b, which
// must both arrive empty; they may be different implementations. The
// four elements must be pairwise distinct. Both sets are left empty on
// success.
func VerifySet[T comparable](a, b container.Set[T], x1, x2, x3, x4 T) error {
	for _, x := range []T{x2, x3, x4} {
		if x1 == x {
			return errors.New("containertest: elements must be pairwise distinct")
		}
	}
	if x2 == x3 || x2 == x4 || x3 == x4 {
		return errors.New("containertest: elements must be pairwise distinct")
	}
	if !a.IsEmpty() || !b.IsEmpty() {
		return errors.New("sets must start empty")
	}

	if err := verifySetMembership(a, x1, x2); err != nil {
		return err
	}
	a.Clear()
	if a.Len() != 0 || !a.IsEmpty() {
		return errors.New("set not empty after Clear")
	}

	return verifySetAlgebra(a, b, x1, x2, x3, x4)
}

func verifySetMembership[T comparable](s container.Set[T], x1, x2 T) error {
	if s.Contains(x1) {
		return errors.New("empty set claims membership")
	}
	if !s.Insert(x1) {
		return errors.New("first Insert of a fresh element must return true")
	}
	if s.Insert(x1) {
		return errors.New("Insert of a present element must return false")
	}
	if !s.Contains(x1) || s.Len() != 1 {
		return errors.New("membership broken after Insert")
	}

	if s.Remove(x2) {
		return errors.New("Remove of an absent element must return false")
	}
	if !s.Remove(x1) {
		return errors.New("Remove of a present element must return true")
	}
	if s.Remove(x1) {
		return errors.New("second Remove of the same element must return false")
	}
	if s.Contains(x1) || s.Len() != 0 {
		return errors.New("membership broken after Remove")
	}

	return nil
}

func verifySetAlgebra[T comparable](a, b container.Set[T], x1, x2, x3, x4 T) error {
	// a = {x1, x2, x3}, b = {x2, x3, x4}
	for _, x := range []T{x1, x2, x3} {
		a.Insert(x)
	}
	for _, x := range []T{x2, x3, x4} {
		b.Insert(x)
	}

	checks := []struct {
		name  string
		visit func(container.ItemVisitor[T]) bool
		want  map[T]bool
	}{
		{
			name:  "intersection",
			visit: func(f container.ItemVisitor[T]) bool { return a.Intersection(b, f) },
			want:  map[T]bool{x2: true, x3: true},
		},
		{
			name:  "difference",
			visit: func(f container.ItemVisitor[T]) bool { return a.Difference(b, f) },
			want:  map[T]bool{x1: true},
		},
		{
			name:  "symmetric difference",
			visit: func(f container.ItemVisitor[T]) bool { return a.SymmetricDifference(b, f) },
			want:  map[T]bool{x1: true, x4: true},
		},
		{
			name:  "union",
			visit: func(f container.ItemVisitor[T]) bool { return a.Union(b, f) },
			want:  map[T]bool{x1: true, x2: true, x3: true, x4: true},
		},
	}

	for _, check := range checks {
		seen := make(map[T]bool)
		completed := check.visit(func(item T) bool {
			seen[item] = true
			return true
		})
		if !completed {
			return errors.Errorf("%s: uninterrupted traversal must report completion", check.name)
		}
		if len(seen) != len(check.want) {
			return errors.Errorf("%s visited %d elements, want %d", check.name, len(seen), len(check.want))
		}
		for x := range check.want {
			if !seen[x] {
				return errors.Errorf("%s missed element %v", check.name, x)
			}
		}

		total := 0
		check.visit(func(T) bool {
			total++
			return true
		})
		if total != len(check.want) {
			return errors.Errorf("%s visited an element twice", check.name)
		}

		visited := 0
		if completed := check.visit(func(T) bool {
			visited++
			return false
		}); completed || visited != 1 {
			return errors.Errorf("%s did not honor early termination", check.name)
		}
	}

	if a.IsDisjoint(b) {
		return errors.New("overlapping sets reported disjoint")
	}
	if a.IsSubset(b) {
		return errors.Errorf("IsSubset must be false when %v is missing from the other set", x1)
	}
	if !a.IsSubset(a) {
		return errors.New("IsSubset must be reflexive")
	}
	if !a.IsSuperset(a) {
		return errors.New("IsSuperset must be reflexive")
	}

	b.Remove(x4)
	// b = {x2, x3} now, a proper subset of a
	if !b.IsSubset(a) || !a.IsSuperset(b) {
		return errors.New("subset relation broken for a proper subset")
	}
	if a.IsSubset(b) {
		return errors.New("IsSubset must be false for a proper superset")
	}

	a.Clear()
	b.Clear()
	a.Insert(x1)
	b.Insert(x4)
	if !a.IsDisjoint(b) {
		return errors.New("non-overlapping sets reported not disjoint")
	}
	if completed := a.Intersection(b, func(T) bool { return false }); !completed {
		return errors.New("intersection of disjoint sets visited an element")
	}

	a.Clear()
	b.Clear()
	return nil
}

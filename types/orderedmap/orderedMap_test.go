package orderedmap

import "testing"

func TestOrderedMapPreservesInsertionOrder(t *testing.T) {
	om := New[string, int]()
	om.Set("--foo", 1)
	om.Set("--bar", 2)
	om.Set("--baz", 3)

	if got := om.Keys(); len(got) != 3 || got[0] != "--foo" || got[1] != "--bar" || got[2] != "--baz" {
		t.Fatalf("Keys() = %v, want declaration order", got)
	}

	if v, ok := om.Get("--bar"); !ok || v != 2 {
		t.Fatalf("Get(--bar) = %v, %v", v, ok)
	}

	om.Set("--bar", 20)
	if v, ok := om.Get("--bar"); !ok || v != 20 {
		t.Fatalf("overwrite Get(--bar) = %v, %v", v, ok)
	}
	if got := om.Keys(); len(got) != 3 || got[1] != "--bar" {
		t.Fatalf("overwrite must not move key position, got %v", got)
	}
}

func TestOrderedMapDelete(t *testing.T) {
	om := New[string, int]()
	om.Set("a", 1)
	om.Set("b", 2)
	om.Delete("a")

	if _, ok := om.Get("a"); ok {
		t.Fatal("expected a to be deleted")
	}
	if om.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", om.Len())
	}

	var seen []string
	om.Range(func(k string, v int) bool {
		seen = append(seen, k)
		return true
	})
	if len(seen) != 1 || seen[0] != "b" {
		t.Fatalf("Range after delete = %v", seen)
	}
}

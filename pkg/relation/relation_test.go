package relation_test

import (
	"reflect"
	"testing"

	"github.com/JaimeStill/market-api/pkg/relation"
)

type link struct {
	id   int
	leaf string
}

type leaf struct {
	id   string
	name string
}

func linkLeaf(l link) string { return l.leaf }
func leafKey(l leaf) string  { return l.id }

func TestResolve_DedupPreservesOrder(t *testing.T) {
	links := []link{{1, "A"}, {2, "B"}, {3, "A"}, {4, "C"}}
	leaves := []leaf{{"C", "Carol"}, {"A", "Alice"}, {"B", "Bob"}}

	got := relation.Resolve(links, linkLeaf, leaves, leafKey)

	want := []leaf{{"A", "Alice"}, {"B", "Bob"}, {"C", "Carol"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Resolve() = %v, want %v", got, want)
	}
}

func TestResolve_NoLinks(t *testing.T) {
	got := relation.Resolve(nil, linkLeaf, []leaf{{"A", "Alice"}}, leafKey)

	if got == nil {
		t.Fatal("Resolve() = nil, want empty slice")
	}

	if len(got) != 0 {
		t.Errorf("len(Resolve()) = %d, want 0", len(got))
	}
}

func TestResolve_MissingLeafSkipped(t *testing.T) {
	links := []link{{1, "A"}, {2, "Z"}, {3, "B"}}
	leaves := []leaf{{"A", "Alice"}, {"B", "Bob"}}

	got := relation.Resolve(links, linkLeaf, leaves, leafKey)

	want := []leaf{{"A", "Alice"}, {"B", "Bob"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Resolve() = %v, want %v", got, want)
	}
}

func TestKeys(t *testing.T) {
	links := []link{{1, "A"}, {2, "B"}, {3, "A"}, {4, "C"}, {5, "B"}}

	got := relation.Keys(links, linkLeaf)

	want := []string{"A", "B", "C"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
}

func TestDistinct(t *testing.T) {
	tests := []struct {
		name  string
		items []int
		want  []int
	}{
		{"empty", nil, []int{}},
		{"no duplicates", []int{3, 1, 2}, []int{3, 1, 2}},
		{"duplicates keep first", []int{1, 2, 1, 3, 2}, []int{1, 2, 3}},
		{"all same", []int{7, 7, 7}, []int{7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := relation.Distinct(tt.items, func(i int) int { return i })
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Distinct() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDistinct_DoesNotAliasInput(t *testing.T) {
	items := []int{1, 2, 3}
	got := relation.Distinct(items, func(i int) int { return i })

	got[0] = 99
	if items[0] != 1 {
		t.Error("Distinct() result aliases the input slice")
	}
}

package Trees

import (
	"errors"
	"strings"
	"testing"

	"github.com/kylelemons/godebug/pretty"
)

var fixture = []int{5, 3, 8, 1, 4, 7, 9}

func build(t *testing.T, p Policy, vs ...int) *SearchTree[int, uint8] {
	t.Helper()
	tr := New[int, uint8](uint8(len(vs)), p)
	for _, v := range vs {
		if !tr.Insert(v) {
			t.Fatalf("failed to insert key %v", v)
		}
		if err := tr.Verify(); err != nil {
			t.Fatalf("after inserting %v: %v", v, err)
		}
	}
	return tr
}

func TestFixture_OrderStatistics(t *testing.T) {
	for _, p := range policies {
		tr := build(t, p, fixture...)
		if v, ok := tr.KthSmallest(3); !ok || v != 4 {
			t.Errorf("%v: 3rd smallest is %d,%t, want 4", p, v, ok)
		}
		if v, ok := tr.Successor(5); !ok || v != 7 {
			t.Errorf("%v: successor of 5 is %d,%t, want 7", p, v, ok)
		}
		if v, ok := tr.Successor(9); ok {
			t.Errorf("%v: maximum 9 has successor %d", p, v)
		}
		if v, ok := tr.Successor(6); ok {
			t.Errorf("%v: absent 6 has successor %d", p, v)
		}
		if _, ok := tr.KthSmallest(8); ok {
			t.Errorf("%v: found an 8th smallest in 7 values", p)
		}
		if tr.Height() != 3 || tr.Size() != 7 {
			t.Errorf("%v: height %d size %d, want 3 and 7", p, tr.Height(), tr.Size())
		}
		if tr.Insert(4) {
			t.Errorf("%v: inserted duplicate 4", p)
		}
		if tr.Size() != 7 {
			t.Errorf("%v: duplicate insert changed the size to %d", p, tr.Size())
		}
	}
}

func TestFixture_Remove(t *testing.T) {
	tests := []struct {
		desc   string
		remove []int
		levels [][]int
	}{
		{
			desc:   "leaf",
			remove: []int{1},
			levels: [][]int{{5}, {3, 8}, {4, 7, 9}},
		},
		{
			desc:   "one child",
			remove: []int{1, 3},
			levels: [][]int{{5}, {4, 8}, {7, 9}},
		},
		{
			desc:   "two children takes the predecessor",
			remove: []int{5},
			levels: [][]int{{4}, {3, 8}, {1, 7, 9}},
		},
		{
			desc:   "absent",
			remove: []int{6},
			levels: [][]int{{5}, {3, 8}, {1, 4, 7, 9}},
		},
	}
	for _, p := range policies {
		for _, test := range tests {
			tr := build(t, p, fixture...)
			for _, v := range test.remove {
				tr.Remove(v)
				if err := tr.Verify(); err != nil {
					t.Fatalf("%v %s: after removing %v: %v", p, test.desc, v, err)
				}
			}
			if diff := pretty.Compare(test.levels, tr.Levels()); diff != "" {
				t.Errorf("%v %s: levels -want/+got:\n%s", p, test.desc, diff)
			}
		}
	}

	tr := build(t, Unbalanced, fixture...)
	tr.Remove(5)
	if diff := pretty.Compare([]int{1, 3, 4, 7, 8, 9}, collect(tr)); diff != "" {
		t.Errorf("in order after removing 5 -want/+got:\n%s", diff)
	}
}

func TestFixture_RoundTrip(t *testing.T) {
	for _, p := range policies {
		tr := build(t, p, fixture...)
		before, levels := collect(tr), tr.Levels()
		for _, v := range []int{0, 2, 6, 10} {
			tr.Insert(v)
			tr.Remove(v)
			if tr.Size() != 7 || tr.CountNodes() != 7 {
				t.Errorf("%v: size %d nodes %d after inserting and removing %d", p, tr.Size(), tr.CountNodes(), v)
			}
			if diff := pretty.Compare(before, collect(tr)); diff != "" {
				t.Errorf("%v: in order after inserting and removing %d -want/+got:\n%s", p, v, diff)
			}
			if diff := pretty.Compare(levels, tr.Levels()); diff != "" {
				t.Errorf("%v: shape after inserting and removing %d -want/+got:\n%s", p, v, diff)
			}
		}
	}
}

func TestAVL_InsertRotations(t *testing.T) {
	tests := []struct {
		desc   string
		insert []int
	}{
		{"left left", []int{3, 2, 1}},
		{"right right", []int{1, 2, 3}},
		{"left right", []int{3, 1, 2}},
		{"right left", []int{1, 3, 2}},
	}
	for _, test := range tests {
		tr := build(t, AVL, test.insert...)
		if diff := pretty.Compare([][]int{{2}, {1, 3}}, tr.Levels()); diff != "" {
			t.Errorf("%s: levels -want/+got:\n%s", test.desc, diff)
		}
		if tr.ns[tr.root].p != 0 {
			t.Errorf("%s: new root keeps a parent", test.desc)
		}
	}
	tr := build(t, Unbalanced, 3, 2, 1)
	if diff := pretty.Compare([][]int{{3}, {2}, {1}}, tr.Levels()); diff != "" {
		t.Errorf("unbalanced: levels -want/+got:\n%s", diff)
	}
}

func TestAVL_RemoveRotations(t *testing.T) {
	tests := []struct {
		desc   string
		insert []int
		remove int
		levels [][]int
	}{
		{"right right", []int{2, 1, 3, 4}, 1, [][]int{{3}, {2, 4}}},
		{"right left", []int{2, 1, 4, 3}, 1, [][]int{{3}, {2, 4}}},
		{"left left", []int{3, 2, 4, 1}, 4, [][]int{{2}, {1, 3}}},
		{"left right", []int{3, 1, 4, 2}, 4, [][]int{{2}, {1, 3}}},
		{"balanced child", []int{2, 1, 4, 3, 5}, 1, [][]int{{4}, {2, 5}, {3}}},
		{
			"cascades to the root",
			[]int{5, 3, 8, 2, 4, 7, 10, 1, 6, 9, 11, 12},
			4,
			[][]int{{8}, {5, 10}, {2, 7, 9, 11}, {1, 3, 6, 12}},
		},
	}
	for _, test := range tests {
		tr := build(t, AVL, test.insert...)
		tr.Remove(test.remove)
		if err := tr.Verify(); err != nil {
			t.Fatalf("%s: %v", test.desc, err)
		}
		if diff := pretty.Compare(test.levels, tr.Levels()); diff != "" {
			t.Errorf("%s: levels -want/+got:\n%s", test.desc, diff)
		}
	}
}

func TestVerify(t *testing.T) {
	tests := []struct {
		desc    string
		corrupt func(tr *SearchTree[int, uint8])
		want    Violation
		at      any
	}{
		{"height", func(tr *SearchTree[int, uint8]) { tr.ns[1].h = 5 }, HeightViolation, 1},
		{"parent", func(tr *SearchTree[int, uint8]) { tr.ns[3].p = 1 }, ParentViolation, 2},
		{"root parent", func(tr *SearchTree[int, uint8]) { tr.ns[2].p = 3 }, ParentViolation, 2},
		{"order", func(tr *SearchTree[int, uint8]) { tr.ns[1].v = 4 }, OrderViolation, 2},
		{"size", func(tr *SearchTree[int, uint8]) { tr.sz = 5 }, SizeViolation, nil},
		{"leak", func(tr *SearchTree[int, uint8]) { tr.ns = append(tr.ns, node[int, uint8]{}) }, SizeViolation, nil},
	}
	for _, test := range tests {
		tr, err := From[int, uint8]([]int{1, 2, 3}, AVL)
		if err != nil {
			t.Fatal(err)
		}
		if err := tr.Verify(); err != nil {
			t.Fatalf("%s: fresh tree: %v", test.desc, err)
		}
		test.corrupt(tr)
		var ce *CorruptError
		if err := tr.Verify(); !errors.As(err, &ce) {
			t.Errorf("%s: Verify returned %v, want a CorruptError", test.desc, err)
		} else if ce.Violation != test.want || ce.Value != test.at {
			t.Errorf("%s: Verify found %v at %v, want %v at %v", test.desc, ce.Violation, ce.Value, test.want, test.at)
		}
		if !tr.Corrupt() {
			t.Errorf("%s: Corrupt is false", test.desc)
		}
	}

	tr := build(t, Unbalanced, 1, 2, 3)
	if err := tr.Verify(); err != nil {
		t.Errorf("unbalanced chain: %v", err)
	}
	tr.policy = AVL
	var ce *CorruptError
	if err := tr.Verify(); !errors.As(err, &ce) || ce.Violation != BalanceViolation || ce.Value != 1 {
		t.Errorf("chain checked as avl: %v", err)
	}
}

func TestPrint(t *testing.T) {
	var b strings.Builder
	if err := build(t, AVL, 1, 2, 3).Print(&b); err != nil {
		t.Fatal(err)
	}
	want := "" +
		"       /------+ 3\n" +
		"|------+ 2\n" +
		"       \\------+ 1\n"
	if diff := pretty.Compare(want, b.String()); diff != "" {
		t.Errorf("print -want/+got:\n%s", diff)
	}

	b.Reset()
	if err := build(t, AVL, fixture...).Print(&b); err != nil {
		t.Fatal(err)
	}
	want = "" +
		"              /------+ 9\n" +
		"       /------+ 8\n" +
		"       |      \\------+ 7\n" +
		"|------+ 5\n" +
		"       |      /------+ 4\n" +
		"       \\------+ 3\n" +
		"              \\------+ 1\n"
	if diff := pretty.Compare(want, b.String()); diff != "" {
		t.Errorf("print -want/+got:\n%s", diff)
	}

	b.Reset()
	if err := New[int, uint8](0, AVL).Print(&b); err != nil || b.Len() != 0 {
		t.Errorf("empty tree printed %q, %v", b.String(), err)
	}
}

func TestLevels(t *testing.T) {
	if lv := New[int, uint8](0, AVL).Levels(); lv != nil {
		t.Errorf("empty tree has levels %v", lv)
	}
	tr, _ := From[int, uint8]([]int{1, 2, 3, 4, 5, 6, 7, 8}, Unbalanced)
	want := [][]int{{4}, {2, 6}, {1, 3, 5, 7}, {8}}
	if diff := pretty.Compare(want, tr.Levels()); diff != "" {
		t.Errorf("levels -want/+got:\n%s", diff)
	}
}

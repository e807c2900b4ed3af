package path

import "testing"

func p(steps ...Step) Path { return New(steps...) }

func TestIndicates(t *testing.T) {
	cases := []struct {
		name string
		a, b Path
		want bool
	}{
		{"root indicates first value", p(), p(1), true},
		{"root does not indicate itself", p(), p(), false},
		{"root does not indicate bare extension", p(), p(0), false},
		{"root indicates second value", p(), p(0, 1), true},
		{"root indicates nested value", p(), p(1, 1), true},
		{"path does not indicate itself", p(0), p(0), false},
		{"extension indicates its value", p(0), p(0, 1), true},
		{"extension does not indicate sibling", p(0), p(1), false},
		{"extension does not indicate deeper extension", p(0), p(0, 0), false},
		{"value indicates nested value", p(1), p(1, 1), true},
		{"value does not indicate nested extension", p(1), p(1, 0), false},
		{"value indicates nested second value", p(1), p(1, 0, 1), true},
		{"longer path never indicates shorter", p(0, 1), p(0), false},
		{"diverging prefix does not indicate", p(1), p(0, 1), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Indicates(tc.b); got != tc.want {
				t.Errorf("%v.Indicates(%v) = %v, want %v", tc.a, tc.b, got, tc.want)
			}
		})
	}
}

func TestDirectlyIndicates(t *testing.T) {
	cases := []struct {
		a, b Path
		want bool
	}{
		{p(), p(1), true},
		{p(), p(0), false},
		{p(), p(1, 1), false},
		{p(), p(0, 1), false},
		{p(0), p(0, 1), true},
		{p(0), p(1), false},
		{p(0, 0), p(0, 0, 1), true},
		{p(1), p(1, 1), true},
	}
	for _, tc := range cases {
		if got := tc.a.DirectlyIndicates(tc.b); got != tc.want {
			t.Errorf("%v.DirectlyIndicates(%v) = %v, want %v", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestIndirectlyIndicates(t *testing.T) {
	cases := []struct {
		a, b Path
		want bool
	}{
		{p(), p(1, 1), true},
		{p(), p(1, 0), false},
		{p(), p(1, 0, 1), true},
		{p(), p(1), true}, // direct implies indirect
		{p(), p(0, 1), false},
		{p(0), p(0, 1, 1), true},
		{p(0), p(0, 0, 1), false},
	}
	for _, tc := range cases {
		if got := tc.a.IndirectlyIndicates(tc.b); got != tc.want {
			t.Errorf("%v.IndirectlyIndicates(%v) = %v, want %v", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestClassify(t *testing.T) {
	cases := []struct {
		a, b Path
		want Relation
		ok   bool
	}{
		{p(), p(1), Direct, true},
		{p(), p(1, 1), Indirect, true},
		{p(), p(1, 0, 1), Indirect, true},
		{p(), p(0, 1), Reduction, true},
		{p(), p(0, 0, 1), Reduction, true},
		{p(), p(0), 0, false},
		{p(), p(), 0, false},
		{p(0), p(0, 1), Direct, true},
		{p(0), p(0, 1, 1), Indirect, true},
		{p(0), p(0, 0, 1), Reduction, true},
		{p(0), p(1), 0, false},
	}
	for _, tc := range cases {
		got, ok := tc.a.Classify(tc.b)
		if ok != tc.ok {
			t.Fatalf("%v.Classify(%v) ok = %v, want %v", tc.a, tc.b, ok, tc.ok)
		}
		if ok && got != tc.want {
			t.Errorf("%v.Classify(%v) = %v, want %v", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestReduceIndicateAreFunctional(t *testing.T) {
	base := p(0)
	r := base.Reduce()
	i := base.Indicate()
	if !base.Equal(p(0)) {
		t.Fatalf("base mutated: %v", base)
	}
	if !r.Equal(p(0, 0)) {
		t.Errorf("Reduce = %v, want [0,0]", r)
	}
	if !i.Equal(p(0, 1)) {
		t.Errorf("Indicate = %v, want [0,1]", i)
	}
	// Appending to one result must not bleed into the other.
	_ = r.Indicate()
	if !i.Equal(p(0, 1)) {
		t.Errorf("sibling append corrupted %v", i)
	}
}

func TestCompareWalkOrder(t *testing.T) {
	// Positions in the order a chain walk visits them.
	order := []Path{
		p(1),
		p(1, 1),
		p(1, 0, 1),
		p(0, 1),
		p(0, 1, 1),
		p(0, 0, 1),
	}
	for i := range order {
		for j := range order {
			want := 0
			if i < j {
				want = -1
			} else if i > j {
				want = 1
			}
			if got := Compare(order[i], order[j]); got != want {
				t.Errorf("Compare(%v, %v) = %d, want %d", order[i], order[j], got, want)
			}
		}
	}
}

package flow

import (
	"reflect"
	"testing"
)

func sized(sizes ...Size) []Item {
	items := make([]Item, len(sizes))
	for i, s := range sizes {
		items[i] = Item{Index: i, Size: s}
	}
	return items
}

func TestComputeWraps(t *testing.T) {
	items := sized(Size{50, 20}, Size{50, 20}, Size{50, 20})
	res := Compute(items, Options{ContainerWidth: 120, ItemSpacing: 10, LineSpacing: 5})

	wantPos := []Point{{0, 0}, {60, 0}, {0, 25}}
	if !reflect.DeepEqual(res.Positions, wantPos) {
		t.Fatalf("positions mismatch: got %v want %v", res.Positions, wantPos)
	}
	wantLines := []Line{{BottomY: 20, Height: 20}, {BottomY: 45, Height: 20}}
	if !reflect.DeepEqual(res.Lines, wantLines) {
		t.Fatalf("lines mismatch: got %v want %v", res.Lines, wantLines)
	}
	if res.Size != (Size{Width: 110, Height: 45}) {
		t.Fatalf("size mismatch: got %v", res.Size)
	}
}

func TestComputeCases(t *testing.T) {
	cases := []struct {
		name      string
		items     []Item
		opts      Options
		positions []Point
		lines     int
		size      Size
	}{
		{
			name:      "empty",
			items:     nil,
			opts:      Options{ContainerWidth: 100, ItemSpacing: 4, LineSpacing: 4},
			positions: []Point{},
			size:      Size{},
		},
		{
			name:      "exact fit stays on line",
			items:     sized(Size{50, 10}, Size{50, 10}),
			opts:      Options{ContainerWidth: 100},
			positions: []Point{{0, 0}, {50, 0}},
			lines:     1,
			size:      Size{100, 10},
		},
		{
			name:      "oversized item takes its own line",
			items:     sized(Size{300, 10}, Size{20, 10}, Size{300, 12}),
			opts:      Options{ContainerWidth: 100, ItemSpacing: 2, LineSpacing: 3},
			positions: []Point{{0, 0}, {0, 13}, {0, 26}},
			lines:     3,
			size:      Size{300, 38},
		},
		{
			name:      "zero width container",
			items:     sized(Size{10, 5}, Size{10, 5}),
			opts:      Options{ContainerWidth: 0, ItemSpacing: 1, LineSpacing: 1},
			positions: []Point{{0, 0}, {0, 6}},
			lines:     2,
			size:      Size{10, 11},
		},
		{
			name:      "line height is tallest item",
			items:     sized(Size{10, 5}, Size{10, 9}, Size{10, 3}),
			opts:      Options{ContainerWidth: 25, ItemSpacing: 0, LineSpacing: 1},
			positions: []Point{{0, 0}, {10, 0}, {0, 10}},
			lines:     2,
			size:      Size{20, 13},
		},
		{
			name:      "zero height items record no final line",
			items:     sized(Size{10, 0}),
			opts:      Options{ContainerWidth: 100},
			positions: []Point{{0, 0}},
			lines:     0,
			size:      Size{10, 0},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := Compute(tc.items, tc.opts)
			if !reflect.DeepEqual(res.Positions, tc.positions) {
				t.Fatalf("positions mismatch: got %v want %v", res.Positions, tc.positions)
			}
			if len(res.Lines) != tc.lines {
				t.Fatalf("line count mismatch: got %d want %d (%v)", len(res.Lines), tc.lines, res.Lines)
			}
			if res.Size != tc.size {
				t.Fatalf("size mismatch: got %v want %v", res.Size, tc.size)
			}
		})
	}
}

func TestComputeSkipsDuplicateFinalLine(t *testing.T) {
	// A negative line spacing equal to the line height stacks the second line
	// exactly on the first, so its geometry must not be recorded twice.
	items := sized(Size{60, 10}, Size{60, 10})
	res := Compute(items, Options{ContainerWidth: 100, LineSpacing: -10})
	if len(res.Lines) != 1 {
		t.Fatalf("expected a single line, got %v", res.Lines)
	}
	if res.Lines[0] != (Line{BottomY: 10, Height: 10}) {
		t.Fatalf("unexpected line: %v", res.Lines[0])
	}
}

func TestLineSameTolerance(t *testing.T) {
	base := Line{BottomY: 20, Height: 10}
	if !base.Same(Line{BottomY: 20.05, Height: 9.95}) {
		t.Fatal("lines within tolerance should match")
	}
	if base.Same(Line{BottomY: 20.2, Height: 10}) {
		t.Fatal("lines outside tolerance should differ")
	}
}

func TestComputeIsDeterministic(t *testing.T) {
	items := sized(Size{13, 3}, Size{40, 1}, Size{7, 2}, Size{90, 4}, Size{22, 1}, Size{5, 5})
	opts := Options{ContainerWidth: 64, ItemSpacing: 1.5, LineSpacing: 0.5}
	first := Compute(items, opts)
	for i := 0; i < 10; i++ {
		if next := Compute(items, opts); !reflect.DeepEqual(first, next) {
			t.Fatalf("run %d differs: %v vs %v", i, first, next)
		}
	}
}

func TestGhost(t *testing.T) {
	opts := Options{ContainerWidth: 30, ItemSpacing: 0, LineSpacing: 1}
	res := Ghost(4, Size{Width: 30, Height: 1}, opts)
	if len(res.Lines) != 4 {
		t.Fatalf("expected 4 reserved lines, got %v", res.Lines)
	}
	if res.Size.Height != 7 {
		t.Fatalf("reserved height mismatch: got %v want 7", res.Size.Height)
	}
	if empty := Ghost(0, Size{Width: 1, Height: 1}, opts); len(empty.Lines) != 0 || empty.Size != (Size{}) {
		t.Fatalf("empty ghost should reserve nothing: %+v", empty)
	}
}

func TestUnderlines(t *testing.T) {
	opts := Options{ContainerWidth: 80, LineSpacing: 4}
	bars := Underlines([]Line{{BottomY: 10, Height: 10}, {BottomY: 24, Height: 10}}, opts, 2)
	want := []Bar{{Y: 11, Width: 80, Thickness: 2}, {Y: 25, Width: 80, Thickness: 2}}
	if !reflect.DeepEqual(bars, want) {
		t.Fatalf("bars mismatch: got %v want %v", bars, want)
	}
}

func TestBoundsAndHitTest(t *testing.T) {
	items := sized(Size{5, 1}, Size{5, 1}, Size{5, 1})
	res := Compute(items, Options{ContainerWidth: 11, ItemSpacing: 1, LineSpacing: 1})
	rects := Bounds(res, items)
	cases := []struct {
		x, y float64
		want int
		ok   bool
	}{
		{0, 0, 0, true},
		{4.9, 0, 0, true},
		{5, 0, -1, false},
		{6, 0, 1, true},
		{0, 1, -1, false},
		{2, 2, 2, true},
		{7, 2, -1, false},
	}
	for _, tc := range cases {
		got, ok := HitTest(rects, tc.x, tc.y)
		if got != tc.want || ok != tc.ok {
			t.Fatalf("hit (%v,%v): got %d/%v want %d/%v", tc.x, tc.y, got, ok, tc.want, tc.ok)
		}
	}
}

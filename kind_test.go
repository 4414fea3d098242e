package trtc

import (
	"errors"
	"testing"
)

func TestTuple_Kind(t *testing.T) {
	tests := []struct {
		name string
		t    Tuple
		want Kind
	}{
		{"point", Point(1, 2, 3), KindPoint},
		{"vector", Vector(1, 2, 3), KindVector},
		{"near point", Tuple{0, 0, 0, 1.000001}, KindPoint},
		{"w=2", Tuple{0, 0, 0, 2}, KindOther},
		{"w=-1", Tuple{0, 0, 0, -1}, KindOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.t.Kind(); got != tt.want {
				t.Errorf("%v.Kind() = %v, want %v", tt.t, got, tt.want)
			}
		})
	}
}

func TestKind_String(t *testing.T) {
	for k, want := range map[Kind]string{KindPoint: "point", KindVector: "vector", KindOther: "other"} {
		if got := k.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", k, got, want)
		}
	}
}

func TestStrictAdd(t *testing.T) {
	tests := []struct {
		name    string
		a, b    Tuple
		want    Tuple
		wantErr error
	}{
		{"point+vector", Point(3, -2, 5), Vector(-2, 3, 1), Point(1, 1, 6), nil},
		{"vector+point", Vector(-2, 3, 1), Point(3, -2, 5), Point(1, 1, 6), nil},
		{"vector+vector", Vector(3, -2, 5), Vector(-2, 3, 1), Vector(1, 1, 6), nil},
		{"point+point", Point(3, -2, 5), Point(-2, 3, 1), Tuple{}, ErrInvalidCombination},
		{"unclassified left", Tuple{0, 0, 0, 2}, Vector(1, 1, 1), Tuple{}, ErrUnclassified},
		{"unclassified right", Point(1, 1, 1), Tuple{0, 0, 0, 0.5}, Tuple{}, ErrUnclassified},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := StrictAdd(tt.a, tt.b)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("StrictAdd() error = %v, want %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("StrictAdd() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStrictSub(t *testing.T) {
	tests := []struct {
		name    string
		a, b    Tuple
		want    Tuple
		wantErr error
	}{
		{"point-point", Point(3, 2, 1), Point(5, 6, 7), Vector(-2, -4, -6), nil},
		{"point-vector", Point(3, 2, 1), Vector(5, 6, 7), Point(-2, -4, -6), nil},
		{"vector-vector", Vector(3, 2, 1), Vector(5, 6, 7), Vector(-2, -4, -6), nil},
		{"vector-point", Vector(5, 6, 7), Point(3, 2, 1), Tuple{}, ErrInvalidCombination},
		{"unclassified", Tuple{0, 0, 0, 3}, Point(1, 1, 1), Tuple{}, ErrUnclassified},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := StrictSub(tt.a, tt.b)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("StrictSub() error = %v, want %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("StrictSub() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStrictAdd_ExactW(t *testing.T) {
	// The lenient Add would report w = 1.000002 here.
	got, err := StrictAdd(Tuple{0, 0, 0, 1.000001}, Tuple{0, 0, 0, 0.000001})
	if err != nil {
		t.Fatalf("StrictAdd() error = %v", err)
	}
	if got.W != 1 {
		t.Errorf("StrictAdd() w = %v, want exactly 1", got.W)
	}
}

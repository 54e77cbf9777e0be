package game

import "testing"

func TestResolverOnContact(t *testing.T) {
	reg := NewRegistry(nil)
	for _, e := range []Entity{
		{ID: 1, Kind: KindMarker},
		{ID: 2, Kind: KindMarker},
		{ID: 3, Kind: KindObstacle},
		{ID: 4, Kind: KindObstacle},
	} {
		if err := reg.Add(e); err != nil {
			t.Fatal(err)
		}
	}

	tests := []struct {
		name string
		a, b EntityID
		hit  bool
	}{
		{"marker then obstacle", 1, 3, true},
		{"obstacle then marker", 4, 2, true},
		{"two markers", 1, 2, false},
		{"two obstacles", 3, 4, false},
		{"unknown first", 9, 3, false},
		{"unknown second", 1, 9, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			hits := 0
			r := NewResolver(reg, func() { hits++ })
			if got := r.OnContact(tc.a, tc.b); got != tc.hit {
				t.Errorf("OnContact(%d, %d) = %v, expected %v", tc.a, tc.b, got, tc.hit)
			}
			expected := 0
			if tc.hit {
				expected = 1
			}
			if hits != expected {
				t.Errorf("onHit called %d times, expected %d", hits, expected)
			}
		})
	}
}

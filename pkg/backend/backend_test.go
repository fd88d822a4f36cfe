package backend

import "testing"

func TestReverse(t *testing.T) {
	loop := []Oriented{Fwd(1), Rev(2), Fwd(3)}
	got := Reverse(loop)
	want := []Oriented{Rev(3), Fwd(2), Rev(1)}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Reverse()[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
	if loop[0] != Fwd(1) {
		t.Error("Reverse mutated its input")
	}
}

func TestRegionDim(t *testing.T) {
	tests := []struct {
		name string
		r    Region
		want Dim
	}{
		{"curves", Region{Label: "b", Curves: []CurveID{1, 2}}, DimCurve},
		{"surfaces", Region{Label: "s", Surfaces: []SurfaceID{0}}, DimSurface},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.Dim(); got != tt.want {
				t.Errorf("Dim() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDimString(t *testing.T) {
	tests := []struct {
		d    Dim
		want string
	}{
		{DimCurve, "curve"},
		{DimSurface, "surface"},
		{Dim(7), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.d.String(); got != tt.want {
			t.Errorf("Dim(%d).String() = %q, want %q", int(tt.d), got, tt.want)
		}
	}
}

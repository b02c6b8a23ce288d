package rail

import (
	"reflect"
	"testing"

	"github.com/paulmach/orb"
)

func TestReverse(t *testing.T) {
	seg := lineSegment("A", "B", [][][2]float64{{{10, 0}, {5, 1}, {0, 0}}})
	rev := Reverse(seg)

	correct := [][]orb.Point{{{0, 0}, {5, 1}, {10, 0}}}
	if !reflect.DeepEqual(rev.Path, correct) {
		t.Errorf("Reversed path should be %v, but got %v", correct, rev.Path)
	}
	correctEsri := [][][2]float64{{{0, 0}, {5, 1}, {10, 0}}}
	if !reflect.DeepEqual(rev.Feature.Geometry.Paths, correctEsri) {
		t.Errorf("Reversed feature geometry should be %v, but got %v", correctEsri, rev.Feature.Geometry.Paths)
	}
}

func TestReverseKeepsAttributes(t *testing.T) {
	seg := lineSegment("A", "B", [][][2]float64{{{10, 0}, {0, 0}}})
	seg.Feature.Attributes["OBJECTID"] = float64(7)

	rev := Reverse(seg)
	if rev.Code1 != "A" || rev.Code2 != "B" {
		t.Errorf("Codes should stay A/B, but got %s/%s", rev.Code1, rev.Code2)
	}
	if rev.Feature.Attributes["OBJECTID"] != float64(7) {
		t.Errorf("OBJECTID should round-trip unchanged, got %v", rev.Feature.Attributes["OBJECTID"])
	}
	if rev.Feature.Attributes["code1"] != "A" || rev.Feature.Attributes["code2"] != "B" {
		t.Errorf("Attribute codes should stay unchanged, got %v", rev.Feature.Attributes)
	}
	// original segment untouched
	if seg.Path[0][0] != (orb.Point{10, 0}) {
		t.Errorf("Reverse must not mutate its input, got %v", seg.Path)
	}
}

func TestReverseKeepsPartOrder(t *testing.T) {
	seg := lineSegment("A", "B", [][][2]float64{
		{{10, 0}, {6, 0}},
		{{4, 0}, {0, 0}},
	})
	rev := Reverse(seg)
	correct := [][]orb.Point{
		{{6, 0}, {10, 0}},
		{{0, 0}, {4, 0}},
	}
	if !reflect.DeepEqual(rev.Path, correct) {
		t.Errorf("Only point order within parts should flip, expected %v but got %v", correct, rev.Path)
	}
}

func TestReverseIsInvolutive(t *testing.T) {
	seg := lineSegment("A", "B", [][][2]float64{
		{{10, 0}, {5, 1}, {0, 0}},
		{{3, 3}, {2, 2}},
	})
	twice := Reverse(Reverse(seg))
	if !reflect.DeepEqual(twice.Path, seg.Path) {
		t.Errorf("Double reversal should restore the path, expected %v but got %v", seg.Path, twice.Path)
	}
}

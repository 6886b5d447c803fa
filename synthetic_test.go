package whatif

import "testing"

func TestGenerateSeriesAlwaysPositive(t *testing.T) {
	g := NewSeededGenerator(1, 2)
	rng := NewRange(NewDate(2015, 1, 1), NewDate(2018, 12, 31))

	for assetID := range walkTable {
		s := g.GenerateSeries(assetID, rng)
		if s.Len() != rng.To.Sub(rng.From)+1 {
			t.Fatalf("%s: Len() = %d want one point per day", assetID, s.Len())
		}
		for p := range s.Points() {
			if p.Price <= 0 {
				t.Fatalf("%s: non-positive price %v on %v", assetID, p.Price, p.Date)
			}
			if p.Volume < 100000 {
				t.Fatalf("%s: volume %d below the synthetic floor", assetID, p.Volume)
			}
		}
	}
}

func TestGenerateSeriesSingleDay(t *testing.T) {
	g := NewSeededGenerator(3, 4)
	day := NewDate(2020, 2, 29)

	s := g.GenerateSeries("dogecoin", NewRange(day, day))
	if s.Len() != 1 {
		t.Fatalf("Len() = %d want 1", s.Len())
	}
	p, _ := s.First()
	if p.Date != day || p.Price <= 0 {
		t.Errorf("point = %+v", p)
	}
}

func TestGenerateSeriesUnknownAssetStillSucceeds(t *testing.T) {
	g := NewSeededGenerator(5, 6)
	s := g.GenerateSeries("beanie-babies", NewRange(NewDate(2020, 1, 1), NewDate(2020, 1, 10)))
	if s.Len() != 10 {
		t.Errorf("Len() = %d want 10", s.Len())
	}
}

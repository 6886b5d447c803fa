package cmd

import (
	"testing"

	"github.com/contrafactum/whatif"
)

func TestLotsFlag(t *testing.T) {
	var lots lotsFlag
	for _, v := range []string{"2020-01-15:500", "2020-6-1:250.50"} {
		if err := lots.Set(v); err != nil {
			t.Fatalf("Set(%q): %v", v, err)
		}
	}
	if len(lots) != 2 {
		t.Fatalf("len = %d want 2", len(lots))
	}
	if lots[0].Date != whatif.NewDate(2020, 1, 15) || !lots[0].Amount.Equal(whatif.USD(500)) {
		t.Errorf("first lot = %+v", lots[0])
	}
	if !lots[1].Amount.Equal(whatif.USD(250.50)) {
		t.Errorf("second lot amount = %v", lots[1].Amount)
	}

	for _, bad := range []string{"2020-01-15", "not-a-date:100", "2020-01-15:lots"} {
		if err := lots.Set(bad); err == nil {
			t.Errorf("Set(%q) accepted an invalid lot", bad)
		}
	}
}

func TestParseFrequency(t *testing.T) {
	if f, err := parseFrequency("weekly"); err != nil || f != whatif.Weekly {
		t.Errorf("weekly = %v, %v", f, err)
	}
	if f, err := parseFrequency("monthly"); err != nil || f != whatif.Monthly {
		t.Errorf("monthly = %v, %v", f, err)
	}
	if _, err := parseFrequency("fortnightly"); err == nil {
		t.Error("expected an error for an unknown cadence")
	}
}

func TestParseRange(t *testing.T) {
	from, to, err := parseRange("2020-01-01", "2021-01-01")
	if err != nil {
		t.Fatal(err)
	}
	if from != whatif.NewDate(2020, 1, 1) || to != whatif.NewDate(2021, 1, 1) {
		t.Errorf("range = [%v, %v]", from, to)
	}

	// Empty -to defaults to today.
	_, to, err = parseRange("2020-01-01", "")
	if err != nil {
		t.Fatal(err)
	}
	if to != whatif.Today() {
		t.Errorf("default to = %v want today", to)
	}

	if _, _, err := parseRange("", "2021-01-01"); err == nil {
		t.Error("expected an error for a missing -from")
	}
}

func TestTipOfDay(t *testing.T) {
	day := whatif.NewDate(2024, 1, 1)
	first := tipOfDay(day)
	if first.ID != whatif.DailyTips[0].ID {
		t.Errorf("epoch tip = %q", first.ID)
	}
	// The rotation wraps after the whole catalog.
	if got := tipOfDay(day.Add(len(whatif.DailyTips))); got.ID != first.ID {
		t.Errorf("wrapped tip = %q want %q", got.ID, first.ID)
	}
	if got := tipOfDay(day.Add(1)); got.ID == first.ID {
		t.Error("consecutive days should rotate to a different tip")
	}
}

func TestFindScenario(t *testing.T) {
	if _, ok := findScenario("bitcoin-2011"); !ok {
		t.Error("bitcoin-2011 must exist")
	}
	if _, ok := findScenario("tulip-mania"); ok {
		t.Error("unknown scenario must not be found")
	}
}

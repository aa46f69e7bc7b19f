package nehody

import (
	"path/filepath"
	"reflect"
	"testing"
)

// statsTable builds a small two-region merged table.
func statsTable(t *testing.T) *Table {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "datagis-rok-2021.zip")
	writeArchive(t, path, map[string][]string{
		"00.csv": {
			testRow(t, map[string]string{
				"Datum":              "2020-01-05",
				"Usmrceno osob":      "1",
				"Tezce zraneno osob": "2",
				"Lehce zraneno osob": "3",
				"Celkova skoda":      "300",
				"Hlavni priciny":     "204",
				"Stav povrchu":       "1",
			}),
			testRow(t, map[string]string{
				"Datum":              "2021-07-10",
				"Usmrceno osob":      "0",
				"Tezce zraneno osob": "0",
				"Lehce zraneno osob": "1",
				"Celkova skoda":      "600",
				"Hlavni priciny":     "999",
				"Stav povrchu":       "3",
			}),
		},
		"05.csv": {
			testRow(t, map[string]string{
				"Datum":              "2020-03-03",
				"Usmrceno osob":      "0",
				"Tezce zraneno osob": "1",
				"Lehce zraneno osob": "0",
				"Celkova skoda":      "12000",
				"Hlavni priciny":     "100",
				"Stav povrchu":       "8",
			}),
		},
	})

	pha, err := parseArchive(path, "PHA", discardLogger())
	if err != nil {
		t.Fatalf("parseArchive PHA: %v", err)
	}
	hhk, err := parseArchive(path, "HHK", discardLogger())
	if err != nil {
		t.Fatalf("parseArchive HHK: %v", err)
	}
	merged, err := Concat(pha, hhk)
	if err != nil {
		t.Fatalf("Concat: %v", err)
	}
	return merged
}

func TestCountByYearRegion(t *testing.T) {
	got := CountByYearRegion(statsTable(t))
	want := map[string]map[string]int{
		"2020": {"PHA": 1, "HHK": 1},
		"2021": {"PHA": 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("CountByYearRegion = %v, want %v", got, want)
	}
}

func TestConsequences(t *testing.T) {
	got := Consequences(statsTable(t))
	want := []RegionConsequences{
		{Region: "PHA", Deaths: 1, Severe: 2, Light: 4, Total: 2},
		{Region: "HHK", Deaths: 0, Severe: 1, Light: 0, Total: 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Consequences = %v, want %v", got, want)
	}
}

func TestDamageBreakdown(t *testing.T) {
	got := DamageBreakdown(statsTable(t))
	// The 2021 PHA row has cause 999, outside every category, and is
	// excluded from the breakdown.
	want := []DamageCell{
		{Region: "PHA", Damage: "< 50", Cause: "Neprimerena rychlost jizdy", Count: 1},
		{Region: "HHK", Damage: "> 1000", Cause: "Nezavinena ridicem", Count: 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("DamageBreakdown = %v, want %v", got, want)
	}
}

func TestSurfaceCounts(t *testing.T) {
	got := SurfaceCounts(statsTable(t))
	want := []SurfaceCount{
		{Region: "PHA", Surface: "Suchy neznecisteny", Count: 1},
		{Region: "PHA", Surface: "Mokry", Count: 1},
		{Region: "HHK", Surface: "Souvisly snih", Count: 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SurfaceCounts = %v, want %v", got, want)
	}
}

func TestStatsOnEmptyTable(t *testing.T) {
	empty := emptyTable()
	if got := CountByYearRegion(empty); len(got) != 0 {
		t.Errorf("CountByYearRegion(empty) = %v, want empty", got)
	}
	if got := Consequences(empty); len(got) != 0 {
		t.Errorf("Consequences(empty) = %v, want empty", got)
	}
	if got := DamageBreakdown(empty); len(got) != 0 {
		t.Errorf("DamageBreakdown(empty) = %v, want empty", got)
	}
	if got := SurfaceCounts(empty); len(got) != 0 {
		t.Errorf("SurfaceCounts(empty) = %v, want empty", got)
	}
}

package nehody

import (
	"sort"
)

// Aggregations over a merged table. These consume the catalog's output and
// never touch archives or caches themselves.

// CountByYearRegion counts accidents per year (taken from the first four
// characters of the Datum column) per region.
func CountByYearRegion(t *Table) map[string]map[string]int {
	counts := make(map[string]map[string]int)
	dates, ok1 := t.Col("Datum")
	regions, ok2 := t.Col("Region")
	if !ok1 || !ok2 {
		return counts
	}

	for i := 0; i < t.Rows(); i++ {
		date := dates.String(i)
		if len(date) < 4 {
			continue
		}
		year := date[:4]
		if counts[year] == nil {
			counts[year] = make(map[string]int)
		}
		counts[year][regions.String(i)]++
	}
	return counts
}

// RegionConsequences summarizes accident outcomes for one region.
type RegionConsequences struct {
	Region string
	Deaths int
	Severe int
	Light  int
	Total  int
}

// Consequences sums deaths, severe and light injuries per region, sorted by
// total accident count descending.
func Consequences(t *Table) []RegionConsequences {
	deaths, _ := t.Col("Usmrceno osob")
	severe, _ := t.Col("Tezce zraneno osob")
	light, _ := t.Col("Lehce zraneno osob")
	regions, ok := t.Col("Region")
	if !ok {
		return nil
	}

	byRegion := make(map[string]*RegionConsequences)
	var order []string
	for i := 0; i < t.Rows(); i++ {
		code := regions.String(i)
		rc := byRegion[code]
		if rc == nil {
			rc = &RegionConsequences{Region: code}
			byRegion[code] = rc
			order = append(order, code)
		}
		rc.Deaths += deaths.Int(i)
		rc.Severe += severe.Int(i)
		rc.Light += light.Int(i)
		rc.Total++
	}

	out := make([]RegionConsequences, 0, len(order))
	for _, code := range order {
		out = append(out, *byRegion[code])
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Total > out[j].Total })
	return out
}

// Damage bin edges in hundreds of CZK, left-closed, matching the upstream
// breakdown; the labels are in thousands.
var damageBins = []struct {
	Label string
	Low   int
	High  int // exclusive, -1 for unbounded
}{
	{"< 50", 0, 500},
	{"50-200", 500, 2000},
	{"200-500", 2000, 5000},
	{"500-1000", 5000, 10000},
	{"> 1000", 10000, -1},
}

// Main cause code ranges, both ends inclusive.
var causeRanges = []struct {
	Label string
	Low   int
	High  int
}{
	{"Nezavinena ridicem", 100, 100},
	{"Neprimerena rychlost jizdy", 201, 209},
	{"Nespravne predjizdeni", 301, 311},
	{"Nedani prednosti v jizde", 401, 414},
	{"Nespravny zpusob jizdy", 501, 516},
	{"Technicka zavada vozidla", 601, 615},
}

// DamageCell is one damage-bin x cause-category count for a region.
type DamageCell struct {
	Region string
	Damage string
	Cause  string
	Count  int
}

// DamageBreakdown cross-tabulates accidents by total-damage bin and main
// cause category per region. Rows whose cause code falls outside every
// category are excluded, as in the upstream breakdown.
func DamageBreakdown(t *Table) []DamageCell {
	damage, ok1 := t.Col("Celkova skoda")
	cause, ok2 := t.Col("Hlavni priciny")
	regions, ok3 := t.Col("Region")
	if !ok1 || !ok2 || !ok3 {
		return nil
	}

	counts := make(map[[3]string]int)
	var order [][3]string
	for i := 0; i < t.Rows(); i++ {
		causeLabel := ""
		for _, cr := range causeRanges {
			if c := cause.Int(i); c >= cr.Low && c <= cr.High {
				causeLabel = cr.Label
				break
			}
		}
		if causeLabel == "" {
			continue
		}
		damageLabel := ""
		for _, db := range damageBins {
			if d := damage.Int(i); d >= db.Low && (db.High < 0 || d < db.High) {
				damageLabel = db.Label
				break
			}
		}
		if damageLabel == "" {
			continue
		}

		key := [3]string{regions.String(i), damageLabel, causeLabel}
		if _, seen := counts[key]; !seen {
			order = append(order, key)
		}
		counts[key]++
	}

	out := make([]DamageCell, 0, len(order))
	for _, key := range order {
		out = append(out, DamageCell{Region: key[0], Damage: key[1], Cause: key[2], Count: counts[key]})
	}
	return out
}

// surfaceLabels maps the Stav povrchu code to its human-readable condition.
var surfaceLabels = map[int]string{
	0: "Jiny stav",
	1: "Suchy neznecisteny",
	2: "Suchy znecisteny",
	3: "Mokry",
	4: "Blato",
	5: "Naledi, ujety snih - posypane",
	6: "Naledi, ujety snih - neposypane",
	7: "Rozlity olej, nafta apod.",
	8: "Souvisly snih",
	9: "Nahla zmena stavu",
}

// SurfaceCount is the number of accidents on one road-surface condition in
// one region.
type SurfaceCount struct {
	Region  string
	Surface string
	Count   int
}

// SurfaceCounts counts accidents per road-surface condition per region.
// Unknown condition codes fall under "Jiny stav".
func SurfaceCounts(t *Table) []SurfaceCount {
	surface, ok1 := t.Col("Stav povrchu")
	regions, ok2 := t.Col("Region")
	if !ok1 || !ok2 {
		return nil
	}

	counts := make(map[[2]string]int)
	var order [][2]string
	for i := 0; i < t.Rows(); i++ {
		label, ok := surfaceLabels[surface.Int(i)]
		if !ok {
			label = surfaceLabels[0]
		}
		key := [2]string{regions.String(i), label}
		if _, seen := counts[key]; !seen {
			order = append(order, key)
		}
		counts[key]++
	}

	out := make([]SurfaceCount, 0, len(order))
	for _, key := range order {
		out = append(out, SurfaceCount{Region: key[0], Surface: key[1], Count: counts[key]})
	}
	return out
}

package nehody

import (
	"sort"

	"github.com/agnivade/levenshtein"
)

// Kind identifies the storage type of a column.
type Kind uint8

const (
	// KindString is a fixed-width string column; Width caps the rune count.
	KindString Kind = iota
	// KindInt8 is an 8-bit signed integer column.
	KindInt8
	// KindInt16 is a 16-bit signed integer column.
	KindInt16
)

// IsInt reports whether the kind is one of the integer kinds.
func (k Kind) IsInt() bool {
	return k == KindInt8 || k == KindInt16
}

// ColumnSpec describes one column of the upstream CSV layout.
type ColumnSpec struct {
	Name  string
	Kind  Kind
	Width int // maximum rune count, string columns only
}

// columnSchema is the fixed layout of the 64 data columns present in every
// per-region CSV. The order matches the upstream file exactly; the region
// marker column is appended by the parser and is not part of this table.
var columnSchema = []ColumnSpec{
	{Name: "ID", Kind: KindString, Width: 12},
	{Name: "Druh komunikace", Kind: KindInt8},
	{Name: "Cislo komunikace", Kind: KindString, Width: 3},
	{Name: "Datum", Kind: KindString, Width: 10},
	{Name: "Den", Kind: KindInt8},
	{Name: "Cas", Kind: KindString, Width: 5},
	{Name: "Druh nehody", Kind: KindInt8},
	{Name: "Druh srazky", Kind: KindInt8},
	{Name: "Druh prekazky", Kind: KindInt8},
	{Name: "Charakter", Kind: KindInt8},
	{Name: "Zavineni", Kind: KindInt8},
	{Name: "Alkohol pritomen", Kind: KindInt8},
	{Name: "Hlavni priciny", Kind: KindInt16},
	{Name: "Usmrceno osob", Kind: KindInt8},
	{Name: "Tezce zraneno osob", Kind: KindInt8},
	{Name: "Lehce zraneno osob", Kind: KindInt8},
	{Name: "Celkova skoda", Kind: KindInt16},
	{Name: "Druh povrchu", Kind: KindInt8},
	{Name: "Stav povrchu", Kind: KindInt8},
	{Name: "Stav komunikace", Kind: KindInt8},
	{Name: "Povetrnostni podminky", Kind: KindInt8},
	{Name: "Viditelnost", Kind: KindInt8},
	{Name: "Rozhledove pomery", Kind: KindInt8},
	{Name: "Deleni komunikace", Kind: KindInt8},
	{Name: "Situovani", Kind: KindInt8},
	{Name: "Rizeni provozu", Kind: KindInt8},
	{Name: "Mistni uprava", Kind: KindInt8},
	{Name: "Specificka mista", Kind: KindInt8},
	{Name: "Smerove pomery", Kind: KindInt8},
	{Name: "Pocet vozidel", Kind: KindInt8},
	{Name: "Misto nehody", Kind: KindInt8},
	{Name: "Druh krizujici komunikace", Kind: KindInt8},
	{Name: "Druh vozidla", Kind: KindInt8},
	{Name: "Vyrobni znacka vozidla", Kind: KindInt8},
	{Name: "Rok vyroby", Kind: KindInt8},
	{Name: "Charakteristika vozidla", Kind: KindInt8},
	{Name: "Smyk", Kind: KindInt8},
	{Name: "Vozidlo po nehode", Kind: KindInt8},
	{Name: "Unik hmot", Kind: KindInt8},
	{Name: "Zpusob vyprosteni", Kind: KindInt8},
	{Name: "Smer jizdy vozidla", Kind: KindInt8},
	{Name: "Skoda na vozidle", Kind: KindInt16},
	{Name: "Kategorie ridice", Kind: KindInt8},
	{Name: "Stav ridice", Kind: KindInt8},
	{Name: "Vnejsi ovlivneni ridice", Kind: KindInt8},
	{Name: "a", Kind: KindString, Width: 16},
	{Name: "b", Kind: KindString, Width: 16},
	{Name: "d", Kind: KindString, Width: 16},
	{Name: "e", Kind: KindString, Width: 16},
	{Name: "f", Kind: KindString, Width: 16},
	{Name: "g", Kind: KindString, Width: 16},
	{Name: "h", Kind: KindString, Width: 50},
	{Name: "i", Kind: KindString, Width: 25},
	{Name: "j", Kind: KindString, Width: 16},
	{Name: "k", Kind: KindString, Width: 20},
	{Name: "l", Kind: KindString, Width: 16},
	{Name: "n", Kind: KindString, Width: 16},
	{Name: "o", Kind: KindString, Width: 16},
	{Name: "p", Kind: KindString, Width: 20},
	{Name: "q", Kind: KindString, Width: 16},
	{Name: "r", Kind: KindString, Width: 6},
	{Name: "s", Kind: KindString, Width: 6},
	{Name: "t", Kind: KindString, Width: 20},
	{Name: "Lokalita", Kind: KindString, Width: 20},
}

// regionColumn is the marker column appended as the 65th column of every
// parsed table.
var regionColumn = ColumnSpec{Name: "Region", Kind: KindString, Width: 3}

// regionFiles maps each of the 14 region codes to its fixed CSV entry name
// inside every archive. The mapping never changes at runtime.
var regionFiles = map[string]string{
	"PHA": "00.csv",
	"STC": "01.csv",
	"JHC": "02.csv",
	"PLK": "03.csv",
	"ULK": "04.csv",
	"HHK": "05.csv",
	"JHM": "06.csv",
	"MSK": "07.csv",
	"OLK": "14.csv",
	"ZLK": "15.csv",
	"VYS": "16.csv",
	"PAK": "17.csv",
	"LBK": "18.csv",
	"KVK": "19.csv",
}

// Regions returns all known region codes in a stable (sorted) order.
func Regions() []string {
	codes := make([]string, 0, len(regionFiles))
	for code := range regionFiles {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// allRegions is the default request order for GetList, matching the upstream
// publication order rather than alphabetical order.
var allRegions = []string{
	"PHA", "STC", "JHC", "PLK", "ULK",
	"HHK", "JHM", "MSK", "OLK", "ZLK",
	"VYS", "PAK", "LBK", "KVK",
}

// RegionFile returns the CSV entry name for a region code.
func RegionFile(region string) (string, bool) {
	name, ok := regionFiles[region]
	return name, ok
}

// Header returns the fixed 65-entry column header: the 64 data column names
// followed by the region marker. The result is a fresh slice on every call so
// callers cannot mutate the schema.
func Header() []string {
	h := make([]string, 0, len(columnSchema)+1)
	for _, spec := range columnSchema {
		h = append(h, spec.Name)
	}
	return append(h, regionColumn.Name)
}

// SuggestRegion returns the known region code closest to the given unknown
// code by edit distance, for use in warnings. Returns "" when nothing is
// within two edits.
func SuggestRegion(code string) string {
	best := ""
	bestDist := 3
	for _, known := range Regions() {
		if d := levenshtein.ComputeDistance(code, known); d < bestDist {
			best = known
			bestDist = d
		}
	}
	return best
}

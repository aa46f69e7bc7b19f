package nehody

import "regexp"

// archivePattern matches upstream archive names: the literal "datagis"
// marker, an optional period tag ("MM-" month prefix or the "-rok-"
// whole-year form), and a four-digit year before the ".zip" suffix.
// Submatch 1 is the period tag, submatch 2 the year.
var archivePattern = regexp.MustCompile(`^.*datagis.*([0-1]\d-|-rok-)?(\d{4})\.zip`)

// MatchesArchive reports whether a link or filename names a data archive.
func MatchesArchive(name string) bool {
	return archivePattern.MatchString(name)
}

// LatestArchives scans candidate links in order and returns the subset
// identified as the latest archive per reporting period.
//
// The selection is a single pass holding one current-best candidate.
// Non-matching links are skipped. When a candidate's year is greater than
// the held one's, the held candidate is emitted if it sorts after the new
// one (by period tag when both carry one, otherwise by the whole matched
// string), which surfaces listings whose filename order is not monotonic
// with time. The final held candidate is always emitted.
//
// The pass deliberately compares adjacent matches only and does not sort,
// so a year may legitimately yield more than one entry when the ordering
// stays ambiguous across the tie-break.
func LatestArchives(links []string) []string {
	var selected []string
	var last []string

	for _, link := range links {
		m := archivePattern.FindStringSubmatch(link)
		if m == nil {
			continue
		}
		if last == nil {
			last = m
			continue
		}

		// Year change: decide whether the held candidate is out of order
		// and must be surfaced before being replaced.
		if last[2] < m[2] {
			if last[1] != "" && m[1] != "" && last[1] > m[1] {
				selected = append(selected, last[0])
			} else if last[0] > m[0] {
				selected = append(selected, last[0])
			}
		}
		last = m
	}

	if last != nil {
		selected = append(selected, last[0])
	}
	return selected
}

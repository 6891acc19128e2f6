package domain

import "sort"

// LabelStat holds the summed impressions of one custom label value.
type LabelStat struct {
	Label       string `json:"label"`
	Impressions int64  `json:"impressions"`
}

// LabelPair is one row correlating a primary label with a secondary label.
type LabelPair struct {
	Primary     string `json:"primary"`
	Secondary   string `json:"secondary"`
	Impressions int64  `json:"impressions"`
}

// SortLabelStats orders by impressions descending, ties by label ascending.
func SortLabelStats(stats []LabelStat) {
	sort.SliceStable(stats, func(i, j int) bool {
		if stats[i].Impressions != stats[j].Impressions {
			return stats[i].Impressions > stats[j].Impressions
		}
		return stats[i].Label < stats[j].Label
	})
}

// LabelStatsFromMap builds the ranked list from a label -> impressions map.
func LabelStatsFromMap(totals map[string]int64) []LabelStat {
	stats := make([]LabelStat, 0, len(totals))
	for label, impressions := range totals {
		stats = append(stats, LabelStat{Label: label, Impressions: impressions})
	}
	SortLabelStats(stats)
	return stats
}

// LabelSet returns the labels as a set.
func LabelSet(stats []LabelStat) map[string]struct{} {
	set := make(map[string]struct{}, len(stats))
	for _, s := range stats {
		set[s.Label] = struct{}{}
	}
	return set
}

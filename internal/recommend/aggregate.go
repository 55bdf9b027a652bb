// Animerec - Hybrid Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package recommend

import "sort"

// AggregateReport lists what Aggregate skipped so callers can log it.
type AggregateReport struct {
	// SkippedNeighbors are neighbours without any ratings.
	SkippedNeighbors []int

	// Dropped maps candidate names to the reason they were left out after ranking.
	Dropped map[string]error
}

// Aggregate merges the preferences of neighbour users into a ranked candidate list.
//
// Each neighbour contributes its top-quartile items minus the names in target.
// Candidates are ranked by how many neighbours contributed them; equal counts keep
// the order in which the names were first met (neighbour order, then preference
// order). The top n names are enriched with id, genres and synopsis. A name whose
// metadata or synopsis is missing is dropped, so fewer than n items may come back.
func Aggregate(neighbors []int, target PreferenceSet, ratings *RatingTable, catalog *Catalog, n int) ([]RecommendedItem, AggregateReport) {
	report := AggregateReport{Dropped: make(map[string]error)}
	if n <= 0 {
		return []RecommendedItem{}, report
	}

	counts := make(map[string]int)
	var order []string

	for _, userID := range neighbors {
		prefs, err := UserTopItems(userID, ratings, catalog)
		if err != nil {
			// ErrNoRatings is the only failure UserTopItems reports for a known table.
			report.SkippedNeighbors = append(report.SkippedNeighbors, userID)
			continue
		}

		for _, p := range prefs {
			if target.Contains(p.Name) {
				continue
			}
			if _, seen := counts[p.Name]; !seen {
				order = append(order, p.Name)
			}
			counts[p.Name]++
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if len(order) > n {
		order = order[:n]
	}

	out := make([]RecommendedItem, 0, len(order))
	for _, name := range order {
		item, err := catalog.ItemByName(name)
		if err != nil {
			report.Dropped[name] = err
			continue
		}
		syn, err := catalog.Synopsis(ByID(item.ID))
		if err != nil {
			report.Dropped[name] = err
			continue
		}
		out = append(out, RecommendedItem{
			Support:  counts[name],
			ItemID:   item.ID,
			Name:     name,
			Genres:   item.Genres,
			Synopsis: syn.Text,
		})
	}

	return out, report
}

// droppedList returns the dropped names sorted, for stable reporting.
func (r AggregateReport) droppedList() []LookupMiss {
	if len(r.Dropped) == 0 {
		return nil
	}
	out := make([]LookupMiss, 0, len(r.Dropped))
	for name, err := range r.Dropped {
		out = append(out, LookupMiss{Name: name, Reason: err.Error()})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})
	return out
}

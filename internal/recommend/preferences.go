// Animerec - Hybrid Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package recommend

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// TopQuartile is the percentile a rating must reach to count as a preference.
const TopQuartile = 75.0

// Percentile returns the p-th percentile (0-100) of values using linear interpolation
// between closest ranks: rank = p/100 * (n-1).
//
// When every value is equal it returns that value together with ErrDegenerateRange;
// callers treat the collapsed threshold as valid. values is not modified.
func Percentile(values []float64, p float64) (float64, error) {
	if len(values) == 0 {
		return 0, fmt.Errorf("percentile of empty set: %w", ErrNoRatings)
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	lo, hi := sorted[0], sorted[len(sorted)-1]
	if lo == hi {
		return lo, ErrDegenerateRange
	}

	switch {
	case p <= 0:
		return lo, nil
	case p >= 100:
		return hi, nil
	}

	rank := p / 100 * float64(len(sorted)-1)
	below := math.Floor(rank)
	frac := rank - below
	i := int(below)
	if frac == 0 || i+1 >= len(sorted) {
		return sorted[i], nil
	}
	return sorted[i] + (sorted[i+1]-sorted[i])*frac, nil
}

// UserTopItems returns the user's top-quartile items as display name and genres.
func UserTopItems(userID int, ratings *RatingTable, catalog *Catalog) ([]Preference, error) {
	return UserTopItemsAt(userID, ratings, catalog, TopQuartile)
}

// UserTopItemsAt returns the items the user rated at or above the p-th percentile of
// their own ratings, highest rating first (record order breaks ties).
//
// Items missing from the catalog or lacking a display name are dropped. A name is
// reported once even if the user rated several records that resolve to it.
// Fails with ErrNoRatings when the user has no ratings at all.
func UserTopItemsAt(userID int, ratings *RatingTable, catalog *Catalog, p float64) ([]Preference, error) {
	records := ratings.ForUser(userID)
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: user %d", ErrNoRatings, userID)
	}

	values := make([]float64, len(records))
	for i, r := range records {
		values[i] = r.Value
	}

	threshold, err := Percentile(values, p)
	if err != nil && !errors.Is(err, ErrDegenerateRange) {
		return nil, fmt.Errorf("user %d: %w", userID, err)
	}

	kept := records[:0]
	for _, r := range records {
		if r.Value >= threshold {
			kept = append(kept, r)
		}
	}
	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].Value > kept[j].Value
	})

	prefs := make([]Preference, 0, len(kept))
	seen := make(map[string]struct{}, len(kept))
	for _, r := range kept {
		item, err := catalog.Item(r.ItemID)
		if err != nil {
			continue
		}
		name, ok := item.DisplayName()
		if !ok {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		prefs = append(prefs, Preference{
			ItemID: item.ID,
			Name:   name,
			Genres: item.Genres,
			Rating: r.Value,
		})
	}

	return prefs, nil
}

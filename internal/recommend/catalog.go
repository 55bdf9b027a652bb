// Animerec - Hybrid Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package recommend

import "fmt"

// RatingTable indexes rating records by user. It is immutable after construction.
type RatingTable struct {
	records []Rating
	byUser  map[int][]int
}

// NewRatingTable indexes ratings by user, preserving record order within each user.
func NewRatingTable(records []Rating) *RatingTable {
	t := &RatingTable{
		records: records,
		byUser:  make(map[int][]int),
	}
	for i, r := range records {
		t.byUser[r.UserID] = append(t.byUser[r.UserID], i)
	}
	return t
}

// ForUser returns the user's ratings in record order. The slice is a fresh copy.
func (t *RatingTable) ForUser(userID int) []Rating {
	idx := t.byUser[userID]
	if len(idx) == 0 {
		return nil
	}
	out := make([]Rating, len(idx))
	for i, j := range idx {
		out[i] = t.records[j]
	}
	return out
}

// Len returns the number of rating records.
func (t *RatingTable) Len() int {
	return len(t.records)
}

// Users returns the number of distinct users.
func (t *RatingTable) Users() int {
	return len(t.byUser)
}

// Catalog holds item metadata and synopses, indexed by id and by display name.
// Lookups return the first matching record in table order.
type Catalog struct {
	items     []ItemMetadata
	byID      map[int]int
	byName    map[string]int
	synopses  map[int]Synopsis
	synByName map[string]Synopsis
	synCount  int
}

// NewCatalog indexes the metadata and synopsis tables.
// Items without a display name stay reachable by id but never by name.
func NewCatalog(items []ItemMetadata, synopses []Synopsis) *Catalog {
	c := &Catalog{
		items:     items,
		byID:      make(map[int]int, len(items)),
		byName:    make(map[string]int, len(items)),
		synopses:  make(map[int]Synopsis, len(synopses)),
		synByName: make(map[string]Synopsis, len(synopses)),
		synCount:  len(synopses),
	}
	for i := range items {
		if _, ok := c.byID[items[i].ID]; !ok {
			c.byID[items[i].ID] = i
		}
		name, ok := items[i].DisplayName()
		if !ok {
			continue
		}
		if _, seen := c.byName[name]; !seen {
			c.byName[name] = i
		}
	}
	for _, s := range synopses {
		if _, ok := c.synopses[s.ItemID]; !ok {
			c.synopses[s.ItemID] = s
		}
		if s.Name == "" {
			continue
		}
		if _, ok := c.synByName[s.Name]; !ok {
			c.synByName[s.Name] = s
		}
	}
	return c
}

// Len returns the number of metadata records.
func (c *Catalog) Len() int {
	return len(c.items)
}

// SynopsisCount returns the number of synopsis records.
func (c *Catalog) SynopsisCount() int {
	return c.synCount
}

// Item returns the metadata of an item id.
func (c *Catalog) Item(id int) (ItemMetadata, error) {
	i, ok := c.byID[id]
	if !ok {
		return ItemMetadata{}, fmt.Errorf("%w: item %d", ErrMissingMetadata, id)
	}
	return c.items[i], nil
}

// ItemByName returns the first item whose display name equals name.
func (c *Catalog) ItemByName(name string) (ItemMetadata, error) {
	i, ok := c.byName[name]
	if !ok {
		return ItemMetadata{}, fmt.Errorf("%w: %q", ErrNameResolutionFailed, name)
	}
	return c.items[i], nil
}

// Resolve looks up the item an ItemRef points at.
func (c *Catalog) Resolve(ref ItemRef) (ItemMetadata, error) {
	if id, ok := ref.ID(); ok {
		return c.Item(id)
	}
	if name, ok := ref.Name(); ok {
		return c.ItemByName(name)
	}
	return ItemMetadata{}, fmt.Errorf("%w: empty reference", ErrNameResolutionFailed)
}

// DisplayName returns the display name of an item id.
func (c *Catalog) DisplayName(id int) (string, error) {
	item, err := c.Item(id)
	if err != nil {
		return "", err
	}
	name, ok := item.DisplayName()
	if !ok {
		return "", fmt.Errorf("%w: item %d has no name", ErrNameResolutionFailed, id)
	}
	return name, nil
}

// Synopsis returns the synopsis an ItemRef points at. Ids are matched against the
// synopsis item id, names against the synopsis name column.
func (c *Catalog) Synopsis(ref ItemRef) (Synopsis, error) {
	if id, ok := ref.ID(); ok {
		s, found := c.synopses[id]
		if !found {
			return Synopsis{}, fmt.Errorf("%w: no synopsis for item %d", ErrMissingMetadata, id)
		}
		return s, nil
	}
	if name, ok := ref.Name(); ok {
		s, found := c.synByName[name]
		if !found {
			return Synopsis{}, fmt.Errorf("%w: no synopsis named %q", ErrNameResolutionFailed, name)
		}
		return s, nil
	}
	return Synopsis{}, fmt.Errorf("%w: empty reference", ErrNameResolutionFailed)
}

// Detail resolves an item and attaches its synopsis when one exists.
func (c *Catalog) Detail(ref ItemRef) (ItemDetail, error) {
	item, err := c.Resolve(ref)
	if err != nil {
		return ItemDetail{}, err
	}
	name, ok := item.DisplayName()
	if !ok {
		return ItemDetail{}, fmt.Errorf("%w: item %d has no name", ErrNameResolutionFailed, item.ID)
	}
	detail := ItemDetail{ItemMetadata: item, DisplayName: name}
	if s, err := c.Synopsis(ByID(item.ID)); err == nil {
		detail.Synopsis = s.Text
	}
	return detail, nil
}

package view

import (
	"slices"
	"strings"

	"github.com/MKhiriev/salestrak-pa/models"
)

// ItemCutoff is the number of most recent items shown before "see more".
const ItemCutoff = 5

// GroupedItems is the item pane of the dashboard.
type GroupedItems struct {
	// Groups are the visible items regrouped by header, in order of the
	// header's first appearance in the visible list.
	Groups []models.HeaderGroup
	// Total counts every item across all headers.
	Total int
	// Hidden counts the items left out by the cutoff.
	Hidden int
	// Empty is set when there is no item at all.
	Empty bool
}

// GroupItems flattens groups into one list tagged with the owning header,
// orders it by ID descending (most recent first) and, unless showAll is set,
// keeps only the first ItemCutoff items. The visible items are then put back
// into per-header buckets.
func GroupItems(groups []models.HeaderGroup, showAll bool) GroupedItems {
	flat := flatten(groups)

	result := GroupedItems{Total: len(flat), Empty: len(flat) == 0}
	if result.Empty {
		return result
	}

	slices.SortStableFunc(flat, func(a, b models.Item) int {
		switch {
		case a.ID > b.ID:
			return -1
		case a.ID < b.ID:
			return 1
		default:
			return 0
		}
	})

	visible := flat
	if !showAll && len(flat) > ItemCutoff {
		visible = flat[:ItemCutoff]
		result.Hidden = len(flat) - ItemCutoff
	}

	result.Groups = regroup(visible)
	return result
}

func flatten(groups []models.HeaderGroup) []models.Item {
	var flat []models.Item
	for _, g := range groups {
		for _, it := range g.Items {
			it.HeaderID = g.HeaderID
			it.HeaderName = g.HeaderName
			flat = append(flat, it)
		}
	}
	return flat
}

func regroup(items []models.Item) []models.HeaderGroup {
	var groups []models.HeaderGroup
	index := make(map[int64]int)

	for _, it := range items {
		i, ok := index[it.HeaderID]
		if !ok {
			i = len(groups)
			index[it.HeaderID] = i
			groups = append(groups, models.HeaderGroup{HeaderID: it.HeaderID, HeaderName: it.HeaderName})
		}
		groups[i].Items = append(groups[i].Items, it)
	}
	return groups
}

// FilterItems returns the items whose title or header name contains term,
// ignoring case. Each item is tagged with its header. An empty term yields
// nil: the screen shows its "enter a search term" state instead.
func FilterItems(groups []models.HeaderGroup, term string) []models.Item {
	if term == "" {
		return nil
	}
	needle := strings.ToLower(term)

	matches := []models.Item{}
	for _, it := range flatten(groups) {
		if strings.Contains(strings.ToLower(it.Title), needle) ||
			strings.Contains(strings.ToLower(it.HeaderName), needle) {
			matches = append(matches, it)
		}
	}
	return matches
}

// FilterDocuments returns the documents whose display name contains term,
// ignoring case. An empty term yields nil.
func FilterDocuments(docs []models.Document, term string) []models.Document {
	if term == "" {
		return nil
	}
	needle := strings.ToLower(term)

	matches := []models.Document{}
	for _, d := range docs {
		if strings.Contains(strings.ToLower(d.Name), needle) {
			matches = append(matches, d)
		}
	}
	return matches
}

package progress

import "github.com/abhisek/sysdesign/internal/catalog"

// Catalog is the read-only node source statistics are computed over.
// *catalog.Catalog satisfies it.
type Catalog interface {
	Each(fn func(catalog.TopicNode))
}

// CategoryStats counts the nodes of one category.
type CategoryStats struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
}

// Percent returns the completed fraction in [0, 1]; an empty category is 0.
func (c CategoryStats) Percent() float64 {
	if c.Total == 0 {
		return 0
	}
	return float64(c.Completed) / float64(c.Total)
}

// ProgressStats is a snapshot of derived counts. It is never cached.
type ProgressStats struct {
	Total      int                                `json:"total"`
	ByStatus   map[NodeStatus]int                 `json:"byStatus"`
	ByCategory map[catalog.Category]CategoryStats `json:"byCategory"`
}

// Percent returns the overall completed fraction in [0, 1].
func (p ProgressStats) Percent() float64 {
	if p.Total == 0 {
		return 0
	}
	return float64(p.ByStatus[StatusCompleted]) / float64(p.Total)
}

// Compute walks the catalog once and tallies each node's status from r.
// Record entries for ids outside the catalog contribute nothing.
func Compute(r Record, c Catalog) ProgressStats {
	stats := ProgressStats{
		ByStatus:   make(map[NodeStatus]int, 4),
		ByCategory: make(map[catalog.Category]CategoryStats, 4),
	}
	for _, s := range AllStatuses() {
		stats.ByStatus[s] = 0
	}
	for _, cat := range catalog.AllCategories() {
		stats.ByCategory[cat] = CategoryStats{}
	}

	c.Each(func(n catalog.TopicNode) {
		status := r.Lookup(n.ID)
		stats.Total++
		stats.ByStatus[status]++

		cs := stats.ByCategory[n.Category]
		cs.Total++
		if status == StatusCompleted {
			cs.Completed++
		}
		stats.ByCategory[n.Category] = cs
	})
	return stats
}

package model

import (
	"regexp"
	"sort"
	"time"

	"gorm.io/datatypes"
)

// SubtopicEntry is a named unit of study within a week.
type SubtopicEntry struct {
	Subtopic    string `json:"subtopic"`
	Description string `json:"description"`
	Time        string `json:"time"`
}

// WeekPlan groups the subtopics planned for one week of a roadmap.
type WeekPlan struct {
	Topic     string          `json:"topic"`
	Subtopics []SubtopicEntry `json:"subtopics"`
}

// RoadmapData is the wire and storage shape of a generated roadmap: a mapping
// keyed by the literal label "Week {n}". Key iteration order carries no
// meaning; consumers must order weeks with SortedWeekKeys.
type RoadmapData map[string]WeekPlan

var weekKeyPattern = regexp.MustCompile(`^Week (\d+)$`)

// WeekNumber extracts the numeric suffix from a "Week {n}" label.
func WeekNumber(key string) (int, bool) {
	m := weekKeyPattern.FindStringSubmatch(key)
	if m == nil {
		return 0, false
	}
	n := 0
	for _, ch := range m[1] {
		n = n*10 + int(ch-'0')
	}
	return n, true
}

// SortedWeekKeys returns the week labels ordered by their numeric suffix.
func (d RoadmapData) SortedWeekKeys() []string {
	keys := make([]string, 0, len(d))
	for k := range d {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		ni, _ := WeekNumber(keys[i])
		nj, _ := WeekNumber(keys[j])
		return ni < nj
	})
	return keys
}

// SubtopicCount totals the subtopics across all weeks.
func (d RoadmapData) SubtopicCount() int {
	total := 0
	for _, w := range d {
		total += len(w.Subtopics)
	}
	return total
}

// Roadmap persists one generated roadmap per (user, topic). Topic matching is
// exact and case-sensitive: "Python" and "python" are two distinct roadmaps.
type Roadmap struct {
	ID             uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID         uint           `gorm:"not null;uniqueIndex:idx_roadmaps_user_topic" json:"-"`
	Topic          string         `gorm:"size:255;not null;uniqueIndex:idx_roadmaps_user_topic" json:"topic"`
	Time           string         `gorm:"size:50;not null" json:"time"`
	KnowledgeLevel string         `gorm:"size:50;not null" json:"knowledgeLevel"`
	RoadmapData    datatypes.JSON `gorm:"not null" json:"roadmapData"`
	CreatedAt      time.Time      `json:"createdAt"`
}

func (Roadmap) TableName() string {
	return "roadmaps"
}

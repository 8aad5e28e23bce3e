package planner

import (
	"time"

	"github.com/javiermolinar/twine/internal/content"
	"github.com/javiermolinar/twine/internal/dateutil"
)

// SampleBlocks returns the starter blocks scheduled around today.
func SampleBlocks(today time.Time) []content.NewBlock {
	day := func(offset int) string {
		return dateutil.FormatDay(dateutil.Day(today).AddDate(0, 0, offset))
	}

	return []content.NewBlock{
		{
			Type:     content.TypeText,
			Title:    "Morning Motivation",
			Text:     "Morning motivation post about pursuing your creative dreams.",
			Tags:     []string{"Encourage Dreams"},
			Date:     day(0),
			TimeSlot: content.SlotMorning,
		},
		{
			Type:     content.TypeCreative,
			Title:    "Design Process Reveal",
			Text:     "Behind the scenes of my latest design project.",
			Tags:     []string{"Behind the Scenes", "Process"},
			Date:     day(0),
			TimeSlot: content.SlotEvening,
		},
		{
			Type:     content.TypeRecycled,
			Title:    "Best of Last Month",
			Text:     "Throwback to one of my most popular posts.",
			Tags:     []string{"Evergreen"},
			IsDone:   true,
			Date:     day(1),
			TimeSlot: content.SlotAfternoon,
		},
		{
			Type:     content.TypeFlexible,
			Title:    "Design Trends Hot Take",
			Text:     "Quick take on the latest design trends.",
			Tags:     []string{"Trending Topic"},
			Date:     day(2),
			TimeSlot: content.SlotMorning,
		},
		{
			Type:          content.TypeText,
			Title:         "Course Launch Announcement",
			Text:          "New course announcement! Early bird pricing available.",
			Tags:          []string{"Share Insight"},
			IsPromotional: true,
			Date:          day(2),
			TimeSlot:      content.SlotEvening,
		},
	}
}

// Seed adds the sample blocks when the store is empty.
// Returns the number of blocks added.
func (s *Store) Seed(today time.Time) int {
	if s.Count() > 0 {
		return 0
	}
	samples := SampleBlocks(today)
	for _, nb := range samples {
		s.AddBlock(nb)
	}
	return len(samples)
}

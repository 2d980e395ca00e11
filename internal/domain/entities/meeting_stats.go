package entities

import (
	"sort"
	"time"
)

// TopParticipantsLimit caps the most-frequent participant list
const TopParticipantsLimit = 5

// MeetingStats is the per-user meetings statistics view
type MeetingStats struct {
	GeneralStats        GeneralMeetingStats `json:"generalStats"`
	TopParticipants     []ParticipantCount  `json:"topParticipants"`
	MeetingsByDayOfWeek []WeekdayCount      `json:"meetingsByDayOfWeek"`
}

// GeneralMeetingStats holds totals and participant extremes
type GeneralMeetingStats struct {
	TotalMeetings       int64 `json:"totalMeetings"`
	TotalParticipants   int64 `json:"totalParticipants"`
	AverageParticipants int64 `json:"averageParticipants"`
	MinParticipants     int64 `json:"minParticipants"`
	MaxParticipants     int64 `json:"maxParticipants"`
}

// ParticipantCount is the number of meetings a participant appears in
type ParticipantCount struct {
	Participant  string `json:"participant"`
	MeetingCount int64  `json:"meetingCount"`
}

// WeekdayCount is one slot of the ISO day-of-week histogram (1 = Monday ... 7 = Sunday)
type WeekdayCount struct {
	DayOfWeek int   `json:"dayOfWeek"`
	Count     int64 `json:"count"`
}

// ISOWeekday maps a time to 1 (Monday) .. 7 (Sunday)
func ISOWeekday(t time.Time) int {
	wd := int(t.UTC().Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}

// NewWeekdayHistogram expands sparse weekday counts into a 7-slot, zero-filled histogram
func NewWeekdayHistogram(counts map[int]int64) []WeekdayCount {
	out := make([]WeekdayCount, 7)
	for i := range out {
		out[i] = WeekdayCount{DayOfWeek: i + 1, Count: counts[i+1]}
	}
	return out
}

// NewGeneralMeetingStats derives totals and extremes from per-meeting participant counts
func NewGeneralMeetingStats(participantCounts []int) GeneralMeetingStats {
	stats := GeneralMeetingStats{TotalMeetings: int64(len(participantCounts))}
	for i, n := range participantCounts {
		c := int64(n)
		stats.TotalParticipants += c
		if i == 0 || c < stats.MinParticipants {
			stats.MinParticipants = c
		}
		if c > stats.MaxParticipants {
			stats.MaxParticipants = c
		}
	}
	if stats.TotalMeetings > 0 {
		stats.AverageParticipants = stats.TotalParticipants / stats.TotalMeetings
	}
	return stats
}

// TopParticipants ranks participants by the number of meetings they appear in.
// Equal counts are ordered by name.
func TopParticipants(meetings []*Meeting, limit int) []ParticipantCount {
	counts := make(map[string]int64)
	for _, m := range meetings {
		seen := make(map[string]struct{}, len(m.Participants))
		for _, p := range m.Participants {
			if _, dup := seen[p]; dup {
				continue
			}
			seen[p] = struct{}{}
			counts[p]++
		}
	}

	ranked := make([]ParticipantCount, 0, len(counts))
	for p, n := range counts {
		ranked = append(ranked, ParticipantCount{Participant: p, MeetingCount: n})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].MeetingCount != ranked[j].MeetingCount {
			return ranked[i].MeetingCount > ranked[j].MeetingCount
		}
		return ranked[i].Participant < ranked[j].Participant
	})
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

package service

import (
	"time"

	"github.com/bagdasarian/timetrack/internal/domain"
)

// SegmentByDay разбивает [start, end) на отрезки, каждый из которых лежит в одних календарных сутках.
// Отрезки идут подряд без разрывов. Вызывающий гарантирует end > start; при start == end
// возвращается один пустой отрезок.
func SegmentByDay(start, end time.Time) []domain.TimeRange {
	end = end.In(start.Location())

	segments := make([]domain.TimeRange, 0, 1)
	cursor := start
	for dateOf(cursor).Before(dateOf(end)) {
		midnight := nextMidnight(cursor)
		segments = append(segments, domain.TimeRange{Start: cursor, End: midnight})
		cursor = midnight
	}

	if cursor.Before(end) {
		segments = append(segments, domain.TimeRange{Start: cursor, End: end})
	}

	if len(segments) == 0 {
		segments = append(segments, domain.TimeRange{Start: cursor, End: end})
	}

	return segments
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func nextMidnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d+1, 0, 0, 0, 0, t.Location())
}

package mappers

import "time"

// Storage uses unix milliseconds for all timestamps.

func toMilli(t time.Time) int64 {
	return t.UnixMilli()
}

func toMilliPtr(t *time.Time) *int64 {
	if t == nil {
		return nil
	}
	ms := t.UnixMilli()
	return &ms
}

func fromMilli(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}

func fromMilliPtr(ms *int64) *time.Time {
	if ms == nil {
		return nil
	}
	t := time.UnixMilli(*ms).UTC()
	return &t
}

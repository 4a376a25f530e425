package genchi

import "time"

// DateLayout is the calendar-day format used by every rate provider.
const DateLayout = "2006-01-02"

type (
	// RatePoint is one day in a rate time series.
	RatePoint struct {
		Date string  `json:"date"`
		Rate float64 `json:"rate"`
	}

	// Series is an ascending-by-date sequence of rate points. Synthetic
	// marks series generated locally when no provider had real data.
	Series struct {
		Points    []RatePoint
		Synthetic bool
	}

	// DateRange is an inclusive calendar-day range.
	DateRange struct {
		Start time.Time
		End   time.Time
	}

	// HistoryEntry is one saved conversion. ID is assigned once on
	// append and is the sole key for delete/reorder correlation; the
	// display fields never change afterwards.
	HistoryEntry struct {
		ID    int64  `json:"id"`
		Date  string `json:"date"`
		Left  string `json:"left"`
		Right string `json:"right"`
		Memo  string `json:"memo,omitempty"`
	}

	// HistoryList is the user's saved conversions in display order.
	HistoryList []HistoryEntry
)

// RangeFromDays returns the last days calendar days including today.
func RangeFromDays(days int) DateRange {
	end := time.Now()
	return DateRange{Start: end.AddDate(0, 0, -(days - 1)), End: end}
}

// Days enumerates every day in the range ascending, formatted with
// DateLayout.
func (r DateRange) Days() []string {
	s := midnightUTC(r.Start)
	e := midnightUTC(r.End)

	var out []string
	for d := s; !d.After(e); d = d.AddDate(0, 0, 1) {
		out = append(out, d.Format(DateLayout))
	}

	return out
}

func midnightUTC(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

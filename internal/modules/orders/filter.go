package orders

import "time"

// DateRange bounds on calendar days; time-of-day on From/To is ignored and
// recomputed on every evaluation.
type DateRange struct {
	From time.Time
	To   time.Time
}

// FilterOptions selects the visible subset. An empty Status means all.
// The date filter only applies when both bounds are set. An inverted range
// (From after To) is not rejected; it simply never matches.
type FilterOptions struct {
	DateRange DateRange
	Status    string
}

// Visible computes the filtered subset. Status and date filters compose
// with AND. Pure: the input slice and the caller's filter values are never
// mutated, so applying the same filters twice yields the same result.
func Visible(orders []Order, f FilterOptions) []Order {
	out := make([]Order, 0, len(orders))

	useDates := !f.DateRange.From.IsZero() && !f.DateRange.To.IsZero()
	var from, to time.Time
	if useDates {
		// Bounds are rebuilt from the supplied values each call: start of
		// the From day through the last instant of the To day, inclusive.
		from = startOfDay(f.DateRange.From)
		to = endOfDay(f.DateRange.To)
	}

	for _, o := range orders {
		if f.Status != "" && o.Status != f.Status {
			continue
		}
		if useDates && (o.RawDate.Before(from) || o.RawDate.After(to)) {
			continue
		}
		out = append(out, o)
	}
	return out
}

// StatusCounts are derived from the unfiltered collection so the tab badges
// always show totals. Unrecognized statuses count toward All but never
// toward a named bucket.
type StatusCounts struct {
	All        int
	Pending    int
	Processing int
	Shipped    int
	Delivered  int
	Cancelled  int
}

func Counts(orders []Order) StatusCounts {
	c := StatusCounts{All: len(orders)}
	for _, o := range orders {
		switch o.Status {
		case StatusPending:
			c.Pending++
		case StatusProcessing:
			c.Processing++
		case StatusShipped:
			c.Shipped++
		case StatusDelivered:
			c.Delivered++
		case StatusCancelled:
			c.Cancelled++
		}
	}
	return c
}

// CurrentMonthRange is the default filter range on page load: the first
// through the last day of now's calendar month.
func CurrentMonthRange(now time.Time) DateRange {
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	last := first.AddDate(0, 1, -1)
	return DateRange{From: first, To: last}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(999*time.Millisecond), t.Location())
}

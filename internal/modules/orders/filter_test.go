package orders

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

func order(id, status string, placed time.Time) Order {
	return Order{ID: id, OrderID: "#" + id, Status: status, RawDate: placed}
}

func TestVisible_StatusFilter(t *testing.T) {
	list := []Order{
		order("a1", StatusPending, day(2024, 11, 1)),
		order("b2", StatusShipped, day(2024, 11, 15)),
		order("c3", StatusDelivered, day(2024, 11, 20)),
	}

	got := Visible(list, FilterOptions{Status: StatusDelivered})
	require.Len(t, got, 1)
	assert.Equal(t, "c3", got[0].ID)

	// empty status means no status filtering
	got = Visible(list, FilterOptions{})
	assert.Len(t, got, 3)
}

func TestVisible_StatusAndDateCompose(t *testing.T) {
	list := []Order{
		order("a", StatusPending, day(2024, 11, 1)),
		order("b", StatusShipped, day(2024, 11, 15)),
	}
	f := FilterOptions{
		Status: StatusShipped,
		DateRange: DateRange{
			From: day(2024, 11, 1),
			To:   day(2024, 11, 30),
		},
	}

	got := Visible(list, f)
	require.Len(t, got, 1)
	assert.Equal(t, "b", got[0].ID)

	counts := Counts(list)
	assert.Equal(t, 2, counts.All)
	assert.Equal(t, 1, counts.Pending)
	assert.Equal(t, 1, counts.Shipped)
	assert.Equal(t, 0, counts.Processing)
	assert.Equal(t, 0, counts.Delivered)
	assert.Equal(t, 0, counts.Cancelled)
}

func TestVisible_DateBoundsAreInclusiveWholeDays(t *testing.T) {
	tests := []struct {
		name    string
		placed  time.Time
		visible bool
	}{
		{"first instant of from day", time.Date(2024, 11, 1, 0, 0, 0, 0, time.UTC), true},
		{"last instant of to day", time.Date(2024, 11, 30, 23, 59, 59, int(999 * time.Millisecond), time.UTC), true},
		{"just before from day", time.Date(2024, 10, 31, 23, 59, 59, 0, time.UTC), false},
		{"start of day after to", time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC), false},
	}

	// range supplied with arbitrary times of day; bounds must still snap to
	// whole calendar days
	f := FilterOptions{DateRange: DateRange{
		From: time.Date(2024, 11, 1, 17, 30, 0, 0, time.UTC),
		To:   time.Date(2024, 11, 30, 6, 15, 0, 0, time.UTC),
	}}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Visible([]Order{order("x", StatusPending, tt.placed)}, f)
			if tt.visible {
				assert.Len(t, got, 1)
			} else {
				assert.Empty(t, got)
			}
		})
	}
}

func TestVisible_PartialRangeIgnored(t *testing.T) {
	list := []Order{order("a", StatusPending, day(2030, 1, 1))}

	// only one bound set: the date filter must not apply at all
	got := Visible(list, FilterOptions{DateRange: DateRange{From: day(2024, 11, 1)}})
	assert.Len(t, got, 1)

	got = Visible(list, FilterOptions{DateRange: DateRange{To: day(2024, 11, 30)}})
	assert.Len(t, got, 1)
}

func TestVisible_InvertedRangeMatchesNothing(t *testing.T) {
	list := []Order{order("a", StatusPending, day(2024, 11, 15))}
	f := FilterOptions{DateRange: DateRange{From: day(2024, 11, 30), To: day(2024, 11, 1)}}
	assert.Empty(t, Visible(list, f))
}

func TestVisible_PureAndIdempotent(t *testing.T) {
	list := []Order{
		order("a", StatusPending, day(2024, 11, 1)),
		order("b", StatusShipped, day(2024, 11, 15)),
		order("c", StatusPending, day(2024, 11, 20)),
	}
	f := FilterOptions{Status: StatusPending}

	first := Visible(list, f)
	second := Visible(list, f)
	assert.Equal(t, first, second)

	// the source slice is untouched
	require.Len(t, list, 3)
	assert.Equal(t, "b", list[1].ID)
}

func TestCounts_UnknownStatusOnlyInAll(t *testing.T) {
	list := []Order{
		order("a", StatusPending, day(2024, 11, 1)),
		order("b", "refunded", day(2024, 11, 2)),
	}
	c := Counts(list)
	assert.Equal(t, 2, c.All)
	assert.Equal(t, 1, c.Pending)
	assert.Equal(t, 0, c.Processing+c.Shipped+c.Delivered+c.Cancelled)
}

func TestCurrentMonthRange(t *testing.T) {
	r := CurrentMonthRange(time.Date(2024, 11, 18, 9, 30, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2024, 11, 1, 0, 0, 0, 0, time.UTC), r.From)
	assert.Equal(t, time.Date(2024, 11, 30, 0, 0, 0, 0, time.UTC), r.To)

	// leap February
	r = CurrentMonthRange(time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, 29, r.To.Day())
}

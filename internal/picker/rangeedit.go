package picker

import (
	"fmt"
	"time"
)

// Endpoint names one side of a Range.
type Endpoint int

const (
	// EndpointStart is the range start.
	EndpointStart Endpoint = iota

	// EndpointEnd is the range end.
	EndpointEnd
)

func (e Endpoint) String() string {
	if e == EndpointEnd {
		return "end"
	}
	return "start"
}

// SetStart replaces the start of r and keeps its end.
func SetStart(r Range, start time.Time) Range {
	r.Start = start
	return r
}

// SetEnd replaces the end of r and keeps its start.
func SetEnd(r Range, end time.Time) Range {
	r.End = end
	return r
}

// FromQuarter seeds a range from a quarter shortcut. Only the start is set;
// it is the anchor the visible month is resolved from.
func FromQuarter(quarterStart time.Time) Range {
	return Range{Start: quarterStart}
}

// Ordered swaps the endpoints of a full range whose end lies before its start.
func Ordered(r Range) Range {
	if r.Full() && r.End.Before(r.Start) {
		r.Start, r.End = r.End, r.Start
	}
	return r
}

// ProposePair turns an endpoint drop at date d into a candidate range.
// Dropping one endpoint past the other reorders the pair.
func ProposePair(r Range, e Endpoint, d time.Time) Range {
	if e == EndpointEnd {
		return Ordered(SetEnd(r, d))
	}
	return Ordered(SetStart(r, d))
}

// Quarter is a calendar quarter offered as a range shortcut.
type Quarter struct {
	Year   int
	Number int
	Start  time.Time
	End    time.Time
}

// QuarterFor returns quarter n (1-4) of year in loc. Start and End are the
// first and last day of the quarter at midnight.
func QuarterFor(year, n int, loc *time.Location) Quarter {
	start := time.Date(year, time.Month((n-1)*3+1), 1, 0, 0, 0, 0, loc)
	return Quarter{
		Year:   year,
		Number: n,
		Start:  start,
		End:    start.AddDate(0, 3, -1),
	}
}

// Quarters returns the quarters of year that overlap the bounds.
func Quarters(year int, b Bounds) []Quarter {
	var quarters []Quarter
	for n := 1; n <= 4; n++ {
		q := QuarterFor(year, n, b.Min.Location())
		if EndOfDay(q.End).Before(b.Min) || q.Start.After(b.Max) {
			continue
		}
		quarters = append(quarters, q)
	}
	return quarters
}

// Range returns the pair the quarter shortcut emits.
func (q Quarter) Range() Range {
	return Range{Start: q.Start, End: q.End}
}

// Label is the short display name, for example "Q2 2024".
func (q Quarter) Label() string {
	return fmt.Sprintf("Q%d %d", q.Number, q.Year)
}

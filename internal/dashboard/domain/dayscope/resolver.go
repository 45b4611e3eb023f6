// Package dayscope вычисляет границы локального календарного дня.
package dayscope

import "time"

// KeyLayout формат ключа дня.
const KeyLayout = "2006-01-02"

// Boundary полуоткрытый интервал [Start, End) одного локального дня.
type Boundary struct {
	Start time.Time
	End   time.Time
}

// Contains проверяет попадание момента в интервал. Start входит, End нет.
func (b Boundary) Contains(t time.Time) bool {
	return !t.Before(b.Start) && t.Before(b.End)
}

// Key возвращает день в формате YYYY-MM-DD.
func (b Boundary) Key() string {
	return b.Start.Format(KeyLayout)
}

// Remaining время до конца дня, не меньше нуля.
func (b Boundary) Remaining(now time.Time) time.Duration {
	if d := b.End.Sub(now); d > 0 {
		return d
	}
	return 0
}

// Resolver считает "сегодня" в заданном часовом поясе.
// Границы вычисляются при каждом вызове и нигде не кэшируются.
type Resolver struct {
	now func() time.Time
	loc *time.Location
}

// NewResolver создает Resolver. nil loc означает time.Local, nil clock означает time.Now.
func NewResolver(loc *time.Location, clock func() time.Time) *Resolver {
	if loc == nil {
		loc = time.Local
	}
	if clock == nil {
		clock = time.Now
	}
	return &Resolver{now: clock, loc: loc}
}

// Now текущее время в часовом поясе резолвера.
func (r *Resolver) Now() time.Time {
	return r.now().In(r.loc)
}

// Location часовой пояс резолвера.
func (r *Resolver) Location() *time.Location {
	return r.loc
}

// Today границы текущего дня.
func (r *Resolver) Today() Boundary {
	return r.DayOf(r.now())
}

// DayOf границы дня, которому принадлежит t.
// End берется как полночь следующей календарной даты, поэтому дни перехода
// на летнее время длятся 23 или 25 часов.
func (r *Resolver) DayOf(t time.Time) Boundary {
	local := t.In(r.loc)
	y, m, d := local.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, r.loc)
	return Boundary{Start: start, End: time.Date(y, m, d+1, 0, 0, 0, 0, r.loc)}
}

// DayKey ключ дня, которому принадлежит t.
func (r *Resolver) DayKey(t time.Time) string {
	return t.In(r.loc).Format(KeyLayout)
}

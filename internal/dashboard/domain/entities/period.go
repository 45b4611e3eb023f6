package entities

import (
	"errors"
	"fmt"
	"strings"
)

// Period часть дня, к которой привязан TimeSlot.
type Period int

const (
	PeriodUnknown Period = iota
	PeriodMorning
	PeriodNoon
	PeriodEvening
)

// ErrUnknownPeriod возвращается при разборе неизвестного значения.
var ErrUnknownPeriod = errors.New("unknown period")

// periodTable единственное место, где задано соответствие между
// ключом представления, значением в хранилище и заголовком.
var periodTable = [...]struct {
	period  Period
	key     string
	stored  string
	heading string
}{
	{PeriodMorning, "morning", "Morning", "Morning Tasks"},
	{PeriodNoon, "noon", "Noon", "Afternoon Tasks"},
	{PeriodEvening, "evening", "Evening", "Evening Tasks"},
}

// Periods возвращает все периоды в порядке дня.
func Periods() []Period {
	out := make([]Period, 0, len(periodTable))
	for _, row := range periodTable {
		out = append(out, row.period)
	}
	return out
}

// ParsePeriod разбирает ключ представления ("morning"). Регистр не важен.
func ParsePeriod(s string) (Period, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for _, row := range periodTable {
		if row.key == key {
			return row.period, nil
		}
	}
	return PeriodUnknown, fmt.Errorf("%w: %q", ErrUnknownPeriod, s)
}

// PeriodFromStorage разбирает значение колонки time_slots.period. Регистр важен.
func PeriodFromStorage(s string) (Period, error) {
	for _, row := range periodTable {
		if row.stored == s {
			return row.period, nil
		}
	}
	return PeriodUnknown, fmt.Errorf("%w in storage: %q", ErrUnknownPeriod, s)
}

// Valid сообщает, является ли значение одним из трех периодов.
func (p Period) Valid() bool {
	return p >= PeriodMorning && p <= PeriodEvening
}

// String возвращает ключ представления.
func (p Period) String() string {
	if !p.Valid() {
		return "unknown"
	}
	return periodTable[p-1].key
}

// StorageValue возвращает значение для колонки time_slots.period.
func (p Period) StorageValue() string {
	if !p.Valid() {
		return ""
	}
	return periodTable[p-1].stored
}

// Heading заголовок панели задач периода.
func (p Period) Heading() string {
	if !p.Valid() {
		return ""
	}
	return periodTable[p-1].heading
}

// MarshalText implements encoding.TextMarshaler.
func (p Period) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownPeriod, int(p))
	}
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Period) UnmarshalText(b []byte) error {
	parsed, err := ParsePeriod(string(b))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

package entities

import (
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// SlotTextMaxLen ограничение длины текста задачи.
const SlotTextMaxLen = 32

// Todo дневной агрегат задач пользователя. Один на (UserID, Day).
type Todo struct {
	ID        string      `json:"id"`
	UserID    string      `json:"user_id"`
	Day       string      `json:"day"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
	Slots     []*TimeSlot `json:"slots"`
}

// TimeSlot одна отмечаемая задача внутри периода.
type TimeSlot struct {
	ID        string    `json:"id"`
	TodoID    string    `json:"todo_id"`
	Period    Period    `json:"period"`
	Text      string    `json:"text"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"created_at"`
}

// SlotInput данные новой задачи.
type SlotInput struct {
	Period Period `json:"period"`
	Text   string `json:"text"`
}

// Normalize обрезает пробелы текста.
func (in SlotInput) Normalize() SlotInput {
	in.Text = strings.TrimSpace(in.Text)
	return in
}

// Validate implements validation.Validatable.
func (in SlotInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Period, validation.By(func(any) error {
			if !in.Period.Valid() {
				return validation.NewError("validation_period", "must be morning, noon or evening")
			}
			return nil
		})),
		validation.Field(&in.Text, validation.Required, validation.RuneLength(1, SlotTextMaxLen)),
	)
}

// Buckets задачи дня, разложенные по периодам в порядке вставки.
// Все три корзины всегда присутствуют, пустая корзина это пустой срез.
type Buckets struct {
	Morning []*TimeSlot `json:"morning"`
	Noon    []*TimeSlot `json:"noon"`
	Evening []*TimeSlot `json:"evening"`
}

// NewBuckets раскладывает слоты по периодам, сохраняя их порядок.
func NewBuckets(slots []*TimeSlot) Buckets {
	b := Buckets{
		Morning: []*TimeSlot{},
		Noon:    []*TimeSlot{},
		Evening: []*TimeSlot{},
	}
	for _, s := range slots {
		switch s.Period {
		case PeriodMorning:
			b.Morning = append(b.Morning, s)
		case PeriodNoon:
			b.Noon = append(b.Noon, s)
		case PeriodEvening:
			b.Evening = append(b.Evening, s)
		}
	}
	return b
}

// Get возвращает корзину периода.
func (b Buckets) Get(p Period) []*TimeSlot {
	switch p {
	case PeriodMorning:
		return b.Morning
	case PeriodNoon:
		return b.Noon
	case PeriodEvening:
		return b.Evening
	default:
		return nil
	}
}

// Find ищет слот по id во всех корзинах.
func (b Buckets) Find(slotID string) (*TimeSlot, bool) {
	for _, p := range Periods() {
		for _, s := range b.Get(p) {
			if s.ID == slotID {
				return s, true
			}
		}
	}
	return nil, false
}

// Progress процент выполненных задач периода. 0 из 0 дает 0.
func Progress(slots []*TimeSlot) (done, total, percent int) {
	total = len(slots)
	for _, s := range slots {
		if s.Completed {
			done++
		}
	}
	if total == 0 {
		return 0, 0, 0
	}
	return done, total, done * 100 / total
}

// Summary сводка дня: заметки, задачи и уровень пользователя.
type Summary struct {
	Day     string  `json:"day"`
	Notes   []*Note `json:"notes"`
	TodoID  string  `json:"todo_id"`
	Buckets Buckets `json:"buckets"`
	Level   int     `json:"level"`
}

package entities

import (
	"strings"
	"time"
	"unicode/utf8"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Ограничения полей заметки.
const (
	NoteTitleMaxLen       = 16
	NoteDescriptionMaxLen = 256
	NoteContentMaxLen     = 20000
)

// Note дневная заметка пользователя.
type Note struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Content     string    `json:"content"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NoteInput изменяемые поля заметки.
type NoteInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Content     string `json:"content"`
}

// Normalize обрезает пробелы по краям заголовка и описания.
func (in NoteInput) Normalize() NoteInput {
	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)
	return in
}

// Validate implements validation.Validatable. Длина считается в символах.
func (in NoteInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Title, validation.Required, validation.RuneLength(1, NoteTitleMaxLen)),
		validation.Field(&in.Description, validation.RuneLength(0, NoteDescriptionMaxLen)),
		validation.Field(&in.Content, validation.By(maxRunes(NoteContentMaxLen))),
	)
}

// NewNote собирает заметку для вставки.
func NewNote(userID string, in NoteInput) *Note {
	return &Note{
		UserID:      userID,
		Title:       in.Title,
		Description: in.Description,
		Content:     in.Content,
	}
}

func maxRunes(limit int) validation.RuleFunc {
	return func(value any) error {
		s, _ := value.(string)
		if utf8.RuneCountInString(s) > limit {
			return validation.NewError("validation_too_long", "is too long")
		}
		return nil
	}
}

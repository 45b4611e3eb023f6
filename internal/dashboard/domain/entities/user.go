package entities

import (
	"strings"
	"time"
	"unicode"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Ограничения профиля.
const (
	NameMinLen      = 4
	NameMaxLen      = 16
	UsernameMinLen  = 4
	UsernameMaxLen  = 12
	PunchcardMinLen = 32
	PasswordMinLen  = 6
	PasswordMaxLen  = 12
)

// User владелец заметок и задач.
type User struct {
	ID              string    `json:"id"`
	Username        string    `json:"username"`
	PasswordHash    string    `json:"-"`
	Name            string    `json:"name"`
	Punchcard       string    `json:"punchcard"`
	Level           int       `json:"level"`
	NotesVisible    bool      `json:"notes_visible"`
	ActivityVisible bool      `json:"activity_visible"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// ProfileInput редактируемые поля профиля.
type ProfileInput struct {
	Name      string `json:"name"`
	Username  string `json:"username"`
	Punchcard string `json:"punchcard"`
}

// Validate implements validation.Validatable.
func (in ProfileInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Name, validation.Required, validation.RuneLength(NameMinLen, NameMaxLen)),
		usernameRules(&in.Username),
		validation.Field(&in.Punchcard, validation.Required, validation.RuneLength(PunchcardMinLen, 0)),
	)
}

// RegisterInput данные регистрации.
type RegisterInput struct {
	Username        string `json:"username"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

// Validate implements validation.Validatable.
func (in RegisterInput) Validate() error {
	return validation.ValidateStruct(&in,
		usernameRules(&in.Username),
		validation.Field(&in.Password, validation.Required, validation.RuneLength(PasswordMinLen, PasswordMaxLen)),
		validation.Field(&in.ConfirmPassword, validation.Required,
			validation.In(in.Password).Error("passwords do not match")),
	)
}

func usernameRules(username *string) *validation.FieldRules {
	return validation.Field(username,
		validation.Required,
		validation.RuneLength(UsernameMinLen, UsernameMaxLen),
		validation.By(func(any) error {
			if strings.IndexFunc(*username, unicode.IsSpace) >= 0 {
				return validation.NewError("validation_whitespace", "must not contain whitespace")
			}
			return nil
		}),
	)
}

// Package dto содержит объекты передачи данных HTTP API.
package dto

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"daynote/internal/dashboard/domain/entities"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate проверяет теги validate и сводит ошибки в одну строку.
func Validate(req any) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		if fe.Param() != "" {
			msgs = append(msgs, fmt.Sprintf("%s: failed on %s=%s", fe.Field(), fe.Tag(), fe.Param()))
			continue
		}
		msgs = append(msgs, fmt.Sprintf("%s: failed on %s", fe.Field(), fe.Tag()))
	}
	return errors.New(strings.Join(msgs, "; "))
}

// RegisterRequest данные регистрации.
type RegisterRequest struct {
	Username        string `json:"username" validate:"required,min=4,max=12,excludesall= \t\n"`
	Password        string `json:"password" validate:"required,min=6,max=12"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
}

// ToInput переводит запрос во входные данные use case.
func (r RegisterRequest) ToInput() entities.RegisterInput {
	return entities.RegisterInput{Username: r.Username, Password: r.Password, ConfirmPassword: r.ConfirmPassword}
}

// LoginRequest данные входа.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RegisterResponse ответ регистрации.
type RegisterResponse struct {
	UserID string `json:"user_id"`
}

// TokenResponse ответ входа.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// NoteRequest создание и изменение заметки.
type NoteRequest struct {
	Title       string `json:"title" validate:"required,max=16"`
	Description string `json:"description" validate:"max=256"`
	Content     string `json:"content" validate:"max=20000"`
}

// ToInput переводит запрос во входные данные use case.
func (r NoteRequest) ToInput() entities.NoteInput {
	return entities.NoteInput{Title: r.Title, Description: r.Description, Content: r.Content}
}

// SlotRequest новая задача.
type SlotRequest struct {
	Period entities.Period `json:"period" validate:"required"`
	Text   string          `json:"text" validate:"required,max=32"`
}

// ToInput переводит запрос во входные данные use case.
func (r SlotRequest) ToInput() entities.SlotInput {
	return entities.SlotInput{Period: r.Period, Text: r.Text}
}

// ToggleRequest последнее известное клиенту состояние задачи.
type ToggleRequest struct {
	Completed *bool `json:"completed" validate:"required"`
}

// ProfileRequest изменение профиля.
type ProfileRequest struct {
	Name      string `json:"name" validate:"required,min=4,max=16"`
	Username  string `json:"username" validate:"required,min=4,max=12,excludesall= \t\n"`
	Punchcard string `json:"punchcard" validate:"required,min=32"`
}

// ToInput переводит запрос во входные данные use case.
func (r ProfileRequest) ToInput() entities.ProfileInput {
	return entities.ProfileInput{Name: r.Name, Username: r.Username, Punchcard: r.Punchcard}
}

// VisibilityRequest настройки приватности; nil поле не меняется.
type VisibilityRequest struct {
	NotesVisible    *bool `json:"notes_visible"`
	ActivityVisible *bool `json:"activity_visible" validate:"required_without=NotesVisible"`
}

// LevelResponse уровень пользователя.
type LevelResponse struct {
	Level int `json:"level"`
}

// DaysResponse дни с заметками.
type DaysResponse struct {
	Days []string `json:"days"`
}

// ErrorResponse тело ответа с ошибкой.
type ErrorResponse struct {
	Error string `json:"error"`
}

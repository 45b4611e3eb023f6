// Package view держит состояние экранов заметок и задач поверх use case.
// После каждой успешной мутации view перечитывает данные с сервера.
// Результат загрузки применяется, только если он последний по порядку запуска
// и view еще не закрыт.
package view

import (
	"errors"
	"sync"
)

// ErrClosed операция над закрытым view.
var ErrClosed = errors.New("view is closed")

// loadState общая часть обоих view: счетчик загрузок, флаги и последняя ошибка.
type loadState struct {
	mu      sync.Mutex
	seq     uint64
	loading bool
	closed  bool
	err     error
}

// begin отмечает старт загрузки и возвращает ее номер.
func (s *loadState) begin() (uint64, bool) {
	if s.closed {
		return 0, false
	}
	s.seq++
	s.loading = true
	return s.seq, true
}

// current true, если загрузка seq последняя и view открыт.
func (s *loadState) current(seq uint64) bool {
	return !s.closed && seq == s.seq
}

// Loading идет ли загрузка.
func (s *loadState) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Err последняя ошибка загрузки или мутации.
func (s *loadState) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Close останавливает применение результатов.
func (s *loadState) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.loading = false
}

func (s *loadState) isClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

func (s *loadState) fail(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.closed {
		s.err = err
	}
}

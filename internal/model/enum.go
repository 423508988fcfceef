package model

import (
	"errors"
	"fmt"
)

// ErrInvalidEnumValue возвращается, если строка не соответствует ни одному значению перечисления.
var ErrInvalidEnumValue = errors.New("invalid enum value")

// InvalidEnumValueError описывает неудачную попытку разобрать значение перечисления.
type InvalidEnumValueError struct {
	Enum  string
	Value string
}

func (e *InvalidEnumValueError) Error() string {
	return fmt.Sprintf("%s: %q is not a valid %s", ErrInvalidEnumValue, e.Value, e.Enum)
}

// Is позволяет сравнивать ошибку с ErrInvalidEnumValue через errors.Is.
func (e *InvalidEnumValueError) Is(target error) bool {
	return target == ErrInvalidEnumValue
}

// Badge-классы, допустимые для отображения значений перечислений.
const (
	BadgeSuccess   = "success"
	BadgeWarning   = "warning"
	BadgeDanger    = "danger"
	BadgeInfo      = "info"
	BadgePrimary   = "primary"
	BadgeSecondary = "secondary"
	BadgeLight     = "light"
	BadgeDark      = "dark"
)

// Option описывает значение перечисления для выпадающих списков.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Badge string `json:"badge,omitempty"`
}

type enumMember[T ~string] struct {
	value T
	label string
	badge string
}

// enumSet хранит таблицу значений одного перечисления в порядке объявления.
type enumSet[T ~string] struct {
	name    string
	members []enumMember[T]
	index   map[T]int
}

func newEnumSet[T ~string](name string, members ...enumMember[T]) *enumSet[T] {
	s := &enumSet[T]{
		name:    name,
		members: members,
		index:   make(map[T]int, len(members)),
	}
	for i, m := range members {
		if _, dup := s.index[m.value]; dup {
			panic(fmt.Sprintf("%s: duplicate value %q", name, m.value))
		}
		s.index[m.value] = i
	}
	return s
}

func (s *enumSet[T]) parse(v string) (T, error) {
	if _, ok := s.index[T(v)]; !ok {
		var zero T
		return zero, &InvalidEnumValueError{Enum: s.name, Value: v}
	}
	return T(v), nil
}

func (s *enumSet[T]) valid(v T) bool {
	_, ok := s.index[v]
	return ok
}

func (s *enumSet[T]) label(v T) string {
	if i, ok := s.index[v]; ok {
		return s.members[i].label
	}
	return ""
}

func (s *enumSet[T]) badge(v T) string {
	if i, ok := s.index[v]; ok {
		return s.members[i].badge
	}
	return ""
}

func (s *enumSet[T]) values() []T {
	res := make([]T, 0, len(s.members))
	for _, m := range s.members {
		res = append(res, m.value)
	}
	return res
}

func (s *enumSet[T]) options() []Option {
	res := make([]Option, 0, len(s.members))
	for _, m := range s.members {
		res = append(res, Option{Value: string(m.value), Label: m.label, Badge: m.badge})
	}
	return res
}

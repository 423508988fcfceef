// Package validation содержит проверки полей сущностей перед сохранением.
package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// ErrValidationFailed возвращается, если сущность нарушает хотя бы одно ограничение.
var ErrValidationFailed = errors.New("validation failed")

// Violation описывает нарушение ограничения одного поля.
type Violation struct {
	Field   string
	Message string
}

func (v Violation) String() string {
	return v.Field + ": " + v.Message
}

// Error содержит все нарушения, найденные при проверке сущности.
type Error struct {
	Entity     string
	Violations []Violation
}

func (e *Error) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, v.String())
	}
	return fmt.Sprintf("%s: %s: %s", ErrValidationFailed, e.Entity, strings.Join(parts, "; "))
}

// Is позволяет сравнивать ошибку с ErrValidationFailed через errors.Is.
func (e *Error) Is(target error) bool {
	return target == ErrValidationFailed
}

// Field возвращает сообщения нарушений для указанного поля.
func (e *Error) Field(name string) []string {
	var res []string
	for _, v := range e.Violations {
		if v.Field == name {
			res = append(res, v.Message)
		}
	}
	return res
}

// Стандартные сообщения об ошибках.
const (
	msgNotBlank    = "This value should not be blank."
	msgNotNull     = "This value should not be null."
	msgTooLong     = "This value is too long. It should have %d characters or less."
	msgEmail       = "This value is not a valid email address."
	msgRange       = "This value should be between %d and %d."
	msgPositiveOr0 = "This value should be either positive or zero."
	msgChoice      = "The value you selected is not a valid choice."
	msgMoney       = "This value should have at most %d integer digits and %d decimal places."
)

// Денежные поля хранятся как NUMERIC(15,2).
const (
	moneyPrecision = 15
	moneyScale     = 2
)

var (
	validate = validator.New()

	moneyLimit = decimal.New(1, moneyPrecision-moneyScale)
)

// checker накапливает нарушения для одной сущности.
type checker struct {
	entity     string
	violations []Violation
}

func newChecker(entity string) *checker {
	return &checker{entity: entity}
}

func (c *checker) add(field, message string) {
	c.violations = append(c.violations, Violation{Field: field, Message: message})
}

func (c *checker) notBlank(field, value, message string) {
	if value == "" {
		c.add(field, pick(message, msgNotBlank))
	}
}

func (c *checker) notNull(field string, present bool) {
	if !present {
		c.add(field, msgNotNull)
	}
}

// maxLen считает длину в символах, а не в байтах.
func (c *checker) maxLen(field, value string, limit int, message string) {
	if validate.Var(value, fmt.Sprintf("max=%d", limit)) != nil {
		c.add(field, pick(message, fmt.Sprintf(msgTooLong, limit)))
	}
}

// email пропускает пустое значение: поле необязательное.
func (c *checker) email(field, value string) {
	if validate.Var(value, "omitempty,email") != nil {
		c.add(field, msgEmail)
	}
}

func (c *checker) intRange(field string, value *int, lo, hi int) {
	if value != nil && (*value < lo || *value > hi) {
		c.add(field, fmt.Sprintf(msgRange, lo, hi))
	}
}

func (c *checker) nonNegative(field string, value decimal.Decimal, message string) {
	if value.IsNegative() {
		c.add(field, pick(message, msgPositiveOr0))
	}
}

// money проверяет, что значение помещается в NUMERIC(15,2) без округления.
func (c *checker) money(field string, value decimal.Decimal) {
	if !value.Equal(value.Round(moneyScale)) || value.Abs().GreaterThanOrEqual(moneyLimit) {
		c.add(field, fmt.Sprintf(msgMoney, moneyPrecision-moneyScale, moneyScale))
	}
}

func (c *checker) choice(field string, valid bool, message string) {
	if !valid {
		c.add(field, pick(message, msgChoice))
	}
}

func (c *checker) err() error {
	if len(c.violations) == 0 {
		return nil
	}
	return &Error{Entity: c.entity, Violations: c.violations}
}

func pick(custom, def string) string {
	if custom != "" {
		return custom
	}
	return def
}

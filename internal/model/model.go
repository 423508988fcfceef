// Package model содержит доменные сущности CRM: клиентов, контакты, лиды, сделки, заказы и товары.
package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Timestamps содержит время создания и последнего изменения записи.
type Timestamps struct {
	CreateTime time.Time
	UpdateTime time.Time
}

// Touch проставляет время создания при первом сохранении и время изменения при каждом.
func (t *Timestamps) Touch(now time.Time) {
	if t.CreateTime.IsZero() {
		t.CreateTime = now
	}
	t.UpdateTime = now
}

// Timestamped реализуется сущностями, для которых ведутся метки времени.
type Timestamped interface {
	Touch(now time.Time)
}

// Blame содержит идентификаторы пользователей, создавших и изменивших запись.
type Blame struct {
	CreatedBy string
	UpdatedBy string
}

// Stamp проставляет автора записи при первом сохранении и автора изменения при каждом.
func (b *Blame) Stamp(actor string) {
	if b.CreatedBy == "" {
		b.CreatedBy = actor
	}
	b.UpdatedBy = actor
}

// Blameable реализуется сущностями, для которых ведётся авторство изменений.
type Blameable interface {
	Stamp(actor string)
}

// FormatAmount форматирует денежную сумму с двумя знаками после запятой.
func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/mmeshcher/jdcrm/internal/audit"
	"github.com/mmeshcher/jdcrm/internal/model"
)

// write описывает отложенную операцию записи.
// check повторно проверяет сущность перед Flush: она могла измениться после постановки в очередь.
// apply возвращает функцию отката изменений сущности в памяти на случай отмены транзакции.
type write struct {
	desc  string
	check func() error
	apply func(ctx context.Context, st Store) (undo func(), err error)
}

// Session накапливает операции записи и применяет их к хранилищу при вызове Flush.
// Чтение всегда выполняется из хранилища, поэтому отложенные записи не видны до Flush.
type Session struct {
	store  Store
	logger *zap.Logger
	now    func() time.Time

	mu      sync.Mutex
	pending []write
}

// NewSession создаёт сессию поверх указанного хранилища.
func NewSession(store Store, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

// SetClock заменяет источник времени для меток создания и изменения.
func (s *Session) SetClock(now func() time.Time) {
	s.now = now
}

// Fork создаёт пустую сессию с тем же хранилищем, журналом и источником времени.
func (s *Session) Fork() *Session {
	return &Session{
		store:  s.store,
		logger: s.logger,
		now:    s.now,
	}
}

// Store возвращает хранилище сессии.
func (s *Session) Store() Store {
	return s.store
}

// Pending возвращает количество отложенных операций.
func (s *Session) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// Discard отбрасывает отложенные операции.
func (s *Session) Discard() {
	s.mu.Lock()
	s.pending = nil
	s.mu.Unlock()
}

// stamp вызывается перед постановкой записи в очередь: проставляет метки времени и автора.
func (s *Session) stamp(ctx context.Context, entity any) {
	if t, ok := entity.(model.Timestamped); ok {
		t.Touch(s.now())
	}
	if b, ok := entity.(model.Blameable); ok {
		b.Stamp(audit.ActorOrSystem(ctx))
	}
}

func (s *Session) enqueue(ctx context.Context, w write, flush bool) error {
	s.mu.Lock()
	s.pending = append(s.pending, w)
	s.mu.Unlock()

	if flush {
		return s.Flush(ctx)
	}
	return nil
}

// Flush проверяет все отложенные сущности и применяет операции в одной транзакции.
// Очередь очищается в любом случае; при ошибке идентификаторы вставленных сущностей сбрасываются.
func (s *Session) Flush(ctx context.Context) error {
	s.mu.Lock()
	pending := s.pending
	s.pending = nil
	s.mu.Unlock()

	if len(pending) == 0 {
		return nil
	}

	for _, w := range pending {
		if w.check == nil {
			continue
		}
		if err := w.check(); err != nil {
			s.logger.Warn("flush rejected", zap.Int("writes", len(pending)), zap.Error(err))
			return fmt.Errorf("%s: %w", w.desc, err)
		}
	}

	var undos []func()
	err := s.store.WithinTx(ctx, func(tx Store) error {
		for _, w := range pending {
			undo, err := w.apply(ctx, tx)
			if err != nil {
				return fmt.Errorf("%s: %w", w.desc, err)
			}
			if undo != nil {
				undos = append(undos, undo)
			}
		}
		return nil
	})
	if err != nil {
		for i := len(undos) - 1; i >= 0; i-- {
			undos[i]()
		}
		s.logger.Warn("flush failed", zap.Int("writes", len(pending)), zap.Error(err))
		return err
	}

	s.logger.Debug("flush completed", zap.Int("writes", len(pending)))
	return nil
}

// upsert описывает вставку новой сущности или обновление существующей.
func upsert(id *int64, insert, update func() error) (func(), error) {
	if *id != 0 {
		return nil, update()
	}
	if err := insert(); err != nil {
		*id = 0
		return nil, err
	}
	return func() { *id = 0 }, nil
}

// remove описывает удаление сущности; несохранённая сущность пропускается.
// После удаления идентификатор обнуляется, и повторный Save вставляет сущность заново.
func remove(id *int64, del func() error) (func(), error) {
	if *id == 0 {
		return nil, nil
	}
	if err := del(); err != nil {
		return nil, err
	}
	prev := *id
	*id = 0
	return func() { *id = prev }, nil
}

// Registry объединяет сессию и репозитории всех сущностей.
type Registry struct {
	Session       *Session
	Customers     *CustomerRepository
	Contacts      *ContactRepository
	Leads         *LeadRepository
	Opportunities *OpportunityRepository
	Orders        *OrderRepository
	Products      *ProductRepository
}

// NewRegistry создаёт репозитории, разделяющие одну сессию.
func NewRegistry(sess *Session) *Registry {
	return &Registry{
		Session:       sess,
		Customers:     NewCustomerRepository(sess),
		Contacts:      NewContactRepository(sess),
		Leads:         NewLeadRepository(sess),
		Opportunities: NewOpportunityRepository(sess),
		Orders:        NewOrderRepository(sess),
		Products:      NewProductRepository(sess),
	}
}

// Flush применяет отложенные операции сессии.
func (r *Registry) Flush(ctx context.Context) error {
	return r.Session.Flush(ctx)
}

package repository

import (
	"context"

	"github.com/mmeshcher/jdcrm/internal/model"
	"github.com/mmeshcher/jdcrm/internal/validation"
)

// CustomerRepository предоставляет доступ к клиентам.
type CustomerRepository struct {
	sess *Session
}

// NewCustomerRepository создаёт репозиторий клиентов.
func NewCustomerRepository(sess *Session) *CustomerRepository {
	return &CustomerRepository{sess: sess}
}

// FindByCustomerCode возвращает клиента по коду.
func (r *CustomerRepository) FindByCustomerCode(ctx context.Context, code string) (*model.Customer, error) {
	return r.sess.store.CustomerByCode(ctx, code)
}

// FindByJdCustomerID возвращает клиента по идентификатору во внешней системе.
func (r *CustomerRepository) FindByJdCustomerID(ctx context.Context, jdID string) (*model.Customer, error) {
	return r.sess.store.CustomerByJdID(ctx, jdID)
}

// FindActive возвращает активных клиентов, упорядоченных по имени.
func (r *CustomerRepository) FindActive(ctx context.Context) ([]model.Customer, error) {
	return r.sess.store.CustomersByStatus(ctx, model.CustomerStatusActive)
}

// FindByStatus возвращает клиентов с указанным статусом, упорядоченных по имени.
func (r *CustomerRepository) FindByStatus(ctx context.Context, status model.CustomerStatus) ([]model.Customer, error) {
	return r.sess.store.CustomersByStatus(ctx, status)
}

// FindByType возвращает клиентов указанного типа, упорядоченных по имени.
func (r *CustomerRepository) FindByType(ctx context.Context, typ model.CustomerType) ([]model.Customer, error) {
	return r.sess.store.CustomersByType(ctx, typ)
}

// Save проверяет клиента и ставит его запись в очередь; при flush очередь сразу применяется.
func (r *CustomerRepository) Save(ctx context.Context, c *model.Customer, flush bool) error {
	if err := validation.Customer(c); err != nil {
		return err
	}
	r.sess.stamp(ctx, c)

	return r.sess.enqueue(ctx, write{
		desc:  "save customer " + c.CustomerCode,
		check: func() error { return validation.Customer(c) },
		apply: func(ctx context.Context, st Store) (func(), error) {
			return upsert(&c.ID,
				func() error { return st.InsertCustomer(ctx, c) },
				func() error { return st.UpdateCustomer(ctx, c) },
			)
		},
	}, flush)
}

// Remove ставит удаление клиента в очередь.
func (r *CustomerRepository) Remove(ctx context.Context, c *model.Customer, flush bool) error {
	return r.sess.enqueue(ctx, write{
		desc:  "remove customer " + c.CustomerCode,
		apply: func(ctx context.Context, st Store) (func(), error) {
			return remove(&c.ID, func() error { return st.DeleteCustomer(ctx, c.ID) })
		},
	}, flush)
}

// ContactRepository предоставляет доступ к контактам.
type ContactRepository struct {
	sess *Session
}

// NewContactRepository создаёт репозиторий контактов.
func NewContactRepository(sess *Session) *ContactRepository {
	return &ContactRepository{sess: sess}
}

// FindByCustomer возвращает контакты клиента: сначала основной, затем по имени.
func (r *ContactRepository) FindByCustomer(ctx context.Context, customerID int64) ([]model.Contact, error) {
	return r.sess.store.ContactsByCustomer(ctx, customerID)
}

// FindPrimaryByCustomer возвращает основной контакт клиента.
// Если основных контактов несколько, возвращается первый по идентификатору.
func (r *ContactRepository) FindPrimaryByCustomer(ctx context.Context, customerID int64) (*model.Contact, error) {
	return r.sess.store.PrimaryContact(ctx, customerID)
}

// FindActive возвращает активные контакты, упорядоченные по имени.
func (r *ContactRepository) FindActive(ctx context.Context) ([]model.Contact, error) {
	return r.sess.store.ContactsByStatus(ctx, model.ContactStatusActive)
}

// FindByStatus возвращает контакты с указанным статусом, упорядоченные по имени.
func (r *ContactRepository) FindByStatus(ctx context.Context, status model.ContactStatus) ([]model.Contact, error) {
	return r.sess.store.ContactsByStatus(ctx, status)
}

// FindByEmail возвращает контакт по адресу почты.
func (r *ContactRepository) FindByEmail(ctx context.Context, email string) (*model.Contact, error) {
	return r.sess.store.ContactByEmail(ctx, email)
}

// FindByPhone возвращает контакт, у которого телефон или мобильный совпадает с указанным номером.
func (r *ContactRepository) FindByPhone(ctx context.Context, phone string) (*model.Contact, error) {
	return r.sess.store.ContactByPhone(ctx, phone)
}

// Save проверяет контакт и ставит его запись в очередь.
func (r *ContactRepository) Save(ctx context.Context, c *model.Contact, flush bool) error {
	if err := validation.Contact(c); err != nil {
		return err
	}
	r.sess.stamp(ctx, c)

	return r.sess.enqueue(ctx, write{
		desc:  "save contact " + c.Name,
		check: func() error { return validation.Contact(c) },
		apply: func(ctx context.Context, st Store) (func(), error) {
			c.ResolveRefs()
			return upsert(&c.ID,
				func() error { return st.InsertContact(ctx, c) },
				func() error { return st.UpdateContact(ctx, c) },
			)
		},
	}, flush)
}

// Remove ставит удаление контакта в очередь.
func (r *ContactRepository) Remove(ctx context.Context, c *model.Contact, flush bool) error {
	return r.sess.enqueue(ctx, write{
		desc:  "remove contact " + c.Name,
		apply: func(ctx context.Context, st Store) (func(), error) {
			return remove(&c.ID, func() error { return st.DeleteContact(ctx, c.ID) })
		},
	}, flush)
}

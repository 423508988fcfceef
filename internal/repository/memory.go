package repository

import (
	"cmp"
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mmeshcher/jdcrm/internal/model"
)

// Имена внешних ключей, совпадающие со схемой базы данных.
const (
	fkContactCustomer     = "fk_contact_customer"
	fkOpportunityCustomer = "fk_opportunity_customer"
	fkOrderCustomer       = "fk_order_customer"
	fkOrderOpportunity    = "fk_order_opportunity"
	fkProductChange       = "fk_product_change_product"
)

type memData struct {
	seq           map[string]int64
	customers     map[int64]model.Customer
	contacts      map[int64]model.Contact
	leads         map[int64]model.Lead
	opportunities map[int64]model.Opportunity
	orders        map[int64]model.Order
	products      map[int64]model.Product
	changes       map[int64]model.ProductChange
}

func newMemData() *memData {
	return &memData{
		seq:           make(map[string]int64),
		customers:     make(map[int64]model.Customer),
		contacts:      make(map[int64]model.Contact),
		leads:         make(map[int64]model.Lead),
		opportunities: make(map[int64]model.Opportunity),
		orders:        make(map[int64]model.Order),
		products:      make(map[int64]model.Product),
		changes:       make(map[int64]model.ProductChange),
	}
}

// Сохранённые значения не изменяются на месте, поэтому поверхностной копии карт достаточно.
func (d *memData) clone() *memData {
	return &memData{
		seq:           maps.Clone(d.seq),
		customers:     maps.Clone(d.customers),
		contacts:      maps.Clone(d.contacts),
		leads:         maps.Clone(d.leads),
		opportunities: maps.Clone(d.opportunities),
		orders:        maps.Clone(d.orders),
		products:      maps.Clone(d.products),
		changes:       maps.Clone(d.changes),
	}
}

func (d *memData) next(table string) int64 {
	d.seq[table]++
	return d.seq[table]
}

// MemoryStore хранит данные в памяти процесса.
// Проверяет те же ограничения уникальности и внешние ключи, что и схема PostgreSQL.
type MemoryStore struct {
	mu   sync.Mutex
	data *memData
	inTx bool
}

// NewMemoryStore создаёт пустое хранилище в памяти.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: newMemData()}
}

// WithinTx выполняет fn над копией данных и публикует её только при успехе.
func (s *MemoryStore) WithinTx(ctx context.Context, fn func(tx Store) error) error {
	if s.inTx {
		return fn(s)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	tx := &MemoryStore{data: s.data.clone(), inTx: true}
	if err := fn(tx); err != nil {
		return err
	}
	s.data = tx.data
	return nil
}

// Close ничего не делает.
func (s *MemoryStore) Close() error {
	return nil
}

// list возвращает отфильтрованные значения, упорядоченные по order, а при равенстве по идентификатору.
func list[T any](m map[int64]T, keep func(*T) bool, order func(a, b *T) int, copyOut func(T) T) []T {
	out := make([]T, 0)
	for _, id := range slices.Sorted(maps.Keys(m)) {
		v := m[id]
		if keep(&v) {
			out = append(out, copyOut(v))
		}
	}
	if order != nil {
		slices.SortStableFunc(out, func(a, b T) int { return order(&a, &b) })
	}
	return out
}

// first возвращает подходящее значение с наименьшим идентификатором.
func first[T any](m map[int64]T, match func(*T) bool, copyOut func(T) T) (*T, error) {
	found := list(m, match, nil, copyOut)
	if len(found) == 0 {
		return nil, ErrNotFound
	}
	return &found[0], nil
}

func desc[T cmp.Ordered](a, b T) int {
	return cmp.Compare(b, a)
}

func descTime(a, b time.Time) int {
	return b.Compare(a)
}

func ascTime(a, b time.Time) int {
	return a.Compare(b)
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func identity[T any](v T) T { return v }

func fkError(constraint string) error {
	return fmt.Errorf("%w: %s", ErrForeignKey, constraint)
}

func (s *MemoryStore) lock() func() {
	s.mu.Lock()
	return s.mu.Unlock
}

// --- customers ---

func (d *memData) checkCustomerUnique(c *model.Customer) error {
	for id, other := range d.customers {
		if id == c.ID {
			continue
		}
		if other.CustomerCode == c.CustomerCode {
			return &DuplicateKeyError{Constraint: ConstraintCustomerCode}
		}
		if c.JdCustomerID != "" && other.JdCustomerID == c.JdCustomerID {
			return &DuplicateKeyError{Constraint: ConstraintJdCustomerID}
		}
	}
	return nil
}

// InsertCustomer сохраняет нового клиента и присваивает ему идентификатор.
func (s *MemoryStore) InsertCustomer(_ context.Context, c *model.Customer) error {
	defer s.lock()()

	if err := s.data.checkCustomerUnique(c); err != nil {
		return err
	}
	c.ID = s.data.next("customer")
	s.data.customers[c.ID] = *c
	return nil
}

// UpdateCustomer обновляет клиента.
func (s *MemoryStore) UpdateCustomer(_ context.Context, c *model.Customer) error {
	defer s.lock()()

	if _, ok := s.data.customers[c.ID]; !ok {
		return ErrNotFound
	}
	if err := s.data.checkCustomerUnique(c); err != nil {
		return err
	}
	s.data.customers[c.ID] = *c
	return nil
}

// DeleteCustomer удаляет клиента.
func (s *MemoryStore) DeleteCustomer(_ context.Context, id int64) error {
	defer s.lock()()

	if _, ok := s.data.customers[id]; !ok {
		return ErrNotFound
	}
	for _, c := range s.data.contacts {
		if c.CustomerID == id {
			return fkError(fkContactCustomer)
		}
	}
	for _, o := range s.data.opportunities {
		if o.CustomerID == id {
			return fkError(fkOpportunityCustomer)
		}
	}
	for _, o := range s.data.orders {
		if o.CustomerID == id {
			return fkError(fkOrderCustomer)
		}
	}
	delete(s.data.customers, id)
	return nil
}

// CustomerByID возвращает клиента по идентификатору.
func (s *MemoryStore) CustomerByID(_ context.Context, id int64) (*model.Customer, error) {
	defer s.lock()()

	c, ok := s.data.customers[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &c, nil
}

// CustomerByCode возвращает клиента по коду.
func (s *MemoryStore) CustomerByCode(_ context.Context, code string) (*model.Customer, error) {
	defer s.lock()()
	return first(s.data.customers, func(c *model.Customer) bool { return c.CustomerCode == code }, identity)
}

// CustomerByJdID возвращает клиента по внешнему идентификатору.
func (s *MemoryStore) CustomerByJdID(_ context.Context, jdID string) (*model.Customer, error) {
	defer s.lock()()
	if jdID == "" {
		return nil, ErrNotFound
	}
	return first(s.data.customers, func(c *model.Customer) bool { return c.JdCustomerID == jdID }, identity)
}

func customersByName(a, b *model.Customer) int { return cmp.Compare(a.Name, b.Name) }

// CustomersByStatus возвращает клиентов с указанным статусом.
func (s *MemoryStore) CustomersByStatus(_ context.Context, status model.CustomerStatus) ([]model.Customer, error) {
	defer s.lock()()
	return list(s.data.customers, func(c *model.Customer) bool { return c.Status == status }, customersByName, identity), nil
}

// CustomersByType возвращает клиентов указанного типа.
func (s *MemoryStore) CustomersByType(_ context.Context, typ model.CustomerType) ([]model.Customer, error) {
	defer s.lock()()
	return list(s.data.customers, func(c *model.Customer) bool { return c.Type == typ }, customersByName, identity), nil
}

// --- contacts ---

func copyContact(c model.Contact) model.Contact {
	c.Customer = nil
	return c
}

// InsertContact сохраняет новый контакт.
func (s *MemoryStore) InsertContact(_ context.Context, c *model.Contact) error {
	defer s.lock()()

	if _, ok := s.data.customers[c.CustomerID]; !ok {
		return fkError(fkContactCustomer)
	}
	c.ID = s.data.next("contact")
	s.data.contacts[c.ID] = copyContact(*c)
	return nil
}

// UpdateContact обновляет контакт.
func (s *MemoryStore) UpdateContact(_ context.Context, c *model.Contact) error {
	defer s.lock()()

	if _, ok := s.data.contacts[c.ID]; !ok {
		return ErrNotFound
	}
	if _, ok := s.data.customers[c.CustomerID]; !ok {
		return fkError(fkContactCustomer)
	}
	s.data.contacts[c.ID] = copyContact(*c)
	return nil
}

// DeleteContact удаляет контакт.
func (s *MemoryStore) DeleteContact(_ context.Context, id int64) error {
	defer s.lock()()

	if _, ok := s.data.contacts[id]; !ok {
		return ErrNotFound
	}
	delete(s.data.contacts, id)
	return nil
}

func contactsByName(a, b *model.Contact) int { return cmp.Compare(a.Name, b.Name) }

// ContactsByCustomer возвращает контакты клиента.
func (s *MemoryStore) ContactsByCustomer(_ context.Context, customerID int64) ([]model.Contact, error) {
	defer s.lock()()

	primaryFirst := func(a, b *model.Contact) int {
		if a.IsPrimary != b.IsPrimary {
			if a.IsPrimary {
				return -1
			}
			return 1
		}
		return contactsByName(a, b)
	}
	return list(s.data.contacts, func(c *model.Contact) bool { return c.CustomerID == customerID }, primaryFirst, copyContact), nil
}

// PrimaryContact возвращает основной контакт клиента.
func (s *MemoryStore) PrimaryContact(_ context.Context, customerID int64) (*model.Contact, error) {
	defer s.lock()()
	return first(s.data.contacts, func(c *model.Contact) bool {
		return c.CustomerID == customerID && c.IsPrimary
	}, copyContact)
}

// ContactsByStatus возвращает контакты с указанным статусом.
func (s *MemoryStore) ContactsByStatus(_ context.Context, status model.ContactStatus) ([]model.Contact, error) {
	defer s.lock()()
	return list(s.data.contacts, func(c *model.Contact) bool { return c.Status == status }, contactsByName, copyContact), nil
}

// ContactByEmail возвращает контакт по адресу почты.
func (s *MemoryStore) ContactByEmail(_ context.Context, email string) (*model.Contact, error) {
	defer s.lock()()
	if email == "" {
		return nil, ErrNotFound
	}
	return first(s.data.contacts, func(c *model.Contact) bool { return c.Email == email }, copyContact)
}

// ContactByPhone возвращает контакт по телефону или мобильному номеру.
func (s *MemoryStore) ContactByPhone(_ context.Context, phone string) (*model.Contact, error) {
	defer s.lock()()
	if phone == "" {
		return nil, ErrNotFound
	}
	return first(s.data.contacts, func(c *model.Contact) bool {
		return c.Phone == phone || c.Mobile == phone
	}, copyContact)
}

// --- leads ---

func copyLead(l model.Lead) model.Lead {
	l.Score = clonePtr(l.Score)
	return l
}

func (d *memData) checkLeadUnique(l *model.Lead) error {
	for id, other := range d.leads {
		if id != l.ID && other.LeadCode == l.LeadCode {
			return &DuplicateKeyError{Constraint: ConstraintLeadCode}
		}
	}
	return nil
}

// InsertLead сохраняет новый лид.
func (s *MemoryStore) InsertLead(_ context.Context, l *model.Lead) error {
	defer s.lock()()

	if err := s.data.checkLeadUnique(l); err != nil {
		return err
	}
	l.ID = s.data.next("lead")
	s.data.leads[l.ID] = copyLead(*l)
	return nil
}

// UpdateLead обновляет лид.
func (s *MemoryStore) UpdateLead(_ context.Context, l *model.Lead) error {
	defer s.lock()()

	if _, ok := s.data.leads[l.ID]; !ok {
		return ErrNotFound
	}
	if err := s.data.checkLeadUnique(l); err != nil {
		return err
	}
	s.data.leads[l.ID] = copyLead(*l)
	return nil
}

// DeleteLead удаляет лид.
func (s *MemoryStore) DeleteLead(_ context.Context, id int64) error {
	defer s.lock()()

	if _, ok := s.data.leads[id]; !ok {
		return ErrNotFound
	}
	delete(s.data.leads, id)
	return nil
}

// LeadByCode возвращает лид по коду.
func (s *MemoryStore) LeadByCode(_ context.Context, code string) (*model.Lead, error) {
	defer s.lock()()
	return first(s.data.leads, func(l *model.Lead) bool { return l.LeadCode == code }, copyLead)
}

func leadsNewestFirst(a, b *model.Lead) int { return descTime(a.CreateTime, b.CreateTime) }

// LeadsByStatus возвращает лиды с указанным статусом.
func (s *MemoryStore) LeadsByStatus(_ context.Context, status model.LeadStatus) ([]model.Lead, error) {
	defer s.lock()()
	return list(s.data.leads, func(l *model.Lead) bool { return l.Status == status }, leadsNewestFirst, copyLead), nil
}

// LeadsByAssignee возвращает лиды ответственного.
func (s *MemoryStore) LeadsByAssignee(_ context.Context, assignee string) ([]model.Lead, error) {
	defer s.lock()()
	return list(s.data.leads, func(l *model.Lead) bool { return l.AssignedTo == assignee }, leadsNewestFirst, copyLead), nil
}

// LeadsByCompanyName возвращает лиды по фрагменту названия компании.
func (s *MemoryStore) LeadsByCompanyName(_ context.Context, fragment string) ([]model.Lead, error) {
	defer s.lock()()
	return list(s.data.leads, func(l *model.Lead) bool {
		return strings.Contains(l.CompanyName, fragment)
	}, leadsNewestFirst, copyLead), nil
}

// LeadsByScoreRange возвращает лиды с оценкой в заданных границах.
func (s *MemoryStore) LeadsByScoreRange(_ context.Context, minScore, maxScore *int) ([]model.Lead, error) {
	defer s.lock()()

	keep := func(l *model.Lead) bool {
		if minScore != nil && (l.Score == nil || *l.Score < *minScore) {
			return false
		}
		if maxScore != nil && (l.Score == nil || *l.Score > *maxScore) {
			return false
		}
		return true
	}
	byScore := func(a, b *model.Lead) int {
		switch {
		case a.Score == nil && b.Score == nil:
		case a.Score == nil:
			return 1
		case b.Score == nil:
			return -1
		case *a.Score != *b.Score:
			return desc(*a.Score, *b.Score)
		}
		return leadsNewestFirst(a, b)
	}
	return list(s.data.leads, keep, byScore, copyLead), nil
}

// --- opportunities ---

func copyOpportunity(o model.Opportunity) model.Opportunity {
	o.Customer = nil
	o.Probability = clonePtr(o.Probability)
	o.ExpectedCloseDate = clonePtr(o.ExpectedCloseDate)
	return o
}

func (d *memData) checkOpportunity(o *model.Opportunity) error {
	for id, other := range d.opportunities {
		if id != o.ID && other.OpportunityCode == o.OpportunityCode {
			return &DuplicateKeyError{Constraint: ConstraintOpportunityCode}
		}
	}
	if _, ok := d.customers[o.CustomerID]; !ok {
		return fkError(fkOpportunityCustomer)
	}
	return nil
}

// InsertOpportunity сохраняет новую сделку.
func (s *MemoryStore) InsertOpportunity(_ context.Context, o *model.Opportunity) error {
	defer s.lock()()

	if err := s.data.checkOpportunity(o); err != nil {
		return err
	}
	o.ID = s.data.next("opportunity")
	s.data.opportunities[o.ID] = copyOpportunity(*o)
	return nil
}

// UpdateOpportunity обновляет сделку.
func (s *MemoryStore) UpdateOpportunity(_ context.Context, o *model.Opportunity) error {
	defer s.lock()()

	if _, ok := s.data.opportunities[o.ID]; !ok {
		return ErrNotFound
	}
	if err := s.data.checkOpportunity(o); err != nil {
		return err
	}
	s.data.opportunities[o.ID] = copyOpportunity(*o)
	return nil
}

// DeleteOpportunity удаляет сделку.
func (s *MemoryStore) DeleteOpportunity(_ context.Context, id int64) error {
	defer s.lock()()

	if _, ok := s.data.opportunities[id]; !ok {
		return ErrNotFound
	}
	for _, o := range s.data.orders {
		if o.OpportunityID == id {
			return fkError(fkOrderOpportunity)
		}
	}
	delete(s.data.opportunities, id)
	return nil
}

// OpportunityByCode возвращает сделку по коду.
func (s *MemoryStore) OpportunityByCode(_ context.Context, code string) (*model.Opportunity, error) {
	defer s.lock()()
	return first(s.data.opportunities, func(o *model.Opportunity) bool { return o.OpportunityCode == code }, copyOpportunity)
}

func opportunitiesByCloseDate(a, b *model.Opportunity) int {
	switch {
	case a.ExpectedCloseDate == nil && b.ExpectedCloseDate == nil:
		return 0
	case a.ExpectedCloseDate == nil:
		return 1
	case b.ExpectedCloseDate == nil:
		return -1
	}
	return ascTime(*a.ExpectedCloseDate, *b.ExpectedCloseDate)
}

// OpportunitiesByStatus возвращает сделки с указанным статусом.
func (s *MemoryStore) OpportunitiesByStatus(_ context.Context, status model.OpportunityStatus) ([]model.Opportunity, error) {
	defer s.lock()()
	return list(s.data.opportunities, func(o *model.Opportunity) bool {
		return o.Status == status
	}, opportunitiesByCloseDate, copyOpportunity), nil
}

// OpportunitiesByStage возвращает сделки на указанном этапе.
func (s *MemoryStore) OpportunitiesByStage(_ context.Context, stage model.OpportunityStage) ([]model.Opportunity, error) {
	defer s.lock()()
	return list(s.data.opportunities, func(o *model.Opportunity) bool {
		return o.Stage == stage
	}, opportunitiesByCloseDate, copyOpportunity), nil
}

// OpportunitiesByAssignee возвращает сделки ответственного.
func (s *MemoryStore) OpportunitiesByAssignee(_ context.Context, assignee string) ([]model.Opportunity, error) {
	defer s.lock()()
	return list(s.data.opportunities, func(o *model.Opportunity) bool {
		return o.AssignedTo == assignee
	}, opportunitiesByCloseDate, copyOpportunity), nil
}

// OpportunitiesByCustomer возвращает сделки клиента.
func (s *MemoryStore) OpportunitiesByCustomer(_ context.Context, customerID int64) ([]model.Opportunity, error) {
	defer s.lock()()
	return list(s.data.opportunities, func(o *model.Opportunity) bool {
		return o.CustomerID == customerID
	}, func(a, b *model.Opportunity) int { return descTime(a.CreateTime, b.CreateTime) }, copyOpportunity), nil
}

// --- orders ---

func copyOrder(o model.Order) model.Order {
	o.Customer = nil
	o.Opportunity = nil
	return o
}

func (d *memData) checkOrder(o *model.Order) error {
	for id, other := range d.orders {
		if id != o.ID && other.OrderNumber == o.OrderNumber {
			return &DuplicateKeyError{Constraint: ConstraintOrderNumber}
		}
	}
	if _, ok := d.customers[o.CustomerID]; !ok {
		return fkError(fkOrderCustomer)
	}
	if o.OpportunityID != 0 {
		if _, ok := d.opportunities[o.OpportunityID]; !ok {
			return fkError(fkOrderOpportunity)
		}
	}
	return nil
}

// InsertOrder сохраняет новый заказ.
func (s *MemoryStore) InsertOrder(_ context.Context, o *model.Order) error {
	defer s.lock()()

	if err := s.data.checkOrder(o); err != nil {
		return err
	}
	o.ID = s.data.next("order")
	s.data.orders[o.ID] = copyOrder(*o)
	return nil
}

// UpdateOrder обновляет заказ.
func (s *MemoryStore) UpdateOrder(_ context.Context, o *model.Order) error {
	defer s.lock()()

	if _, ok := s.data.orders[o.ID]; !ok {
		return ErrNotFound
	}
	if err := s.data.checkOrder(o); err != nil {
		return err
	}
	s.data.orders[o.ID] = copyOrder(*o)
	return nil
}

// DeleteOrder удаляет заказ.
func (s *MemoryStore) DeleteOrder(_ context.Context, id int64) error {
	defer s.lock()()

	if _, ok := s.data.orders[id]; !ok {
		return ErrNotFound
	}
	delete(s.data.orders, id)
	return nil
}

// OrderByNumber возвращает заказ по номеру.
func (s *MemoryStore) OrderByNumber(_ context.Context, number string) (*model.Order, error) {
	defer s.lock()()
	return first(s.data.orders, func(o *model.Order) bool { return o.OrderNumber == number }, copyOrder)
}

// OrderByJdID возвращает заказ по внешнему идентификатору.
func (s *MemoryStore) OrderByJdID(_ context.Context, jdID string) (*model.Order, error) {
	defer s.lock()()
	if jdID == "" {
		return nil, ErrNotFound
	}
	return first(s.data.orders, func(o *model.Order) bool { return o.JdOrderID == jdID }, copyOrder)
}

func ordersNewestFirst(a, b *model.Order) int { return descTime(a.OrderDate, b.OrderDate) }

// OrdersByCustomer возвращает заказы клиента.
func (s *MemoryStore) OrdersByCustomer(_ context.Context, customerID int64) ([]model.Order, error) {
	defer s.lock()()
	return list(s.data.orders, func(o *model.Order) bool { return o.CustomerID == customerID }, ordersNewestFirst, copyOrder), nil
}

// OrdersByOpportunity возвращает заказы по сделке.
func (s *MemoryStore) OrdersByOpportunity(_ context.Context, opportunityID int64) ([]model.Order, error) {
	defer s.lock()()
	return list(s.data.orders, func(o *model.Order) bool { return o.OpportunityID == opportunityID }, ordersNewestFirst, copyOrder), nil
}

// OrdersByStatus возвращает заказы с указанным статусом.
func (s *MemoryStore) OrdersByStatus(_ context.Context, status model.OrderStatus) ([]model.Order, error) {
	defer s.lock()()
	return list(s.data.orders, func(o *model.Order) bool { return o.Status == status }, ordersNewestFirst, copyOrder), nil
}

// OrdersByDateRange возвращает заказы с датой в интервале включительно.
func (s *MemoryStore) OrdersByDateRange(_ context.Context, from, to time.Time) ([]model.Order, error) {
	defer s.lock()()
	return list(s.data.orders, func(o *model.Order) bool {
		return !o.OrderDate.Before(from) && !o.OrderDate.After(to)
	}, ordersNewestFirst, copyOrder), nil
}

// SumOrderTotals возвращает сумму заказов клиента в указанных статусах.
func (s *MemoryStore) SumOrderTotals(_ context.Context, customerID int64, statuses []model.OrderStatus) (decimal.Decimal, error) {
	defer s.lock()()

	total := decimal.Zero
	for _, o := range s.data.orders {
		if o.CustomerID == customerID && slices.Contains(statuses, o.Status) {
			total = total.Add(o.TotalAmount)
		}
	}
	return total, nil
}

// --- products ---

func (d *memData) checkProductUnique(p *model.Product) error {
	for id, other := range d.products {
		if id != p.ID && other.ProductCode == p.ProductCode {
			return &DuplicateKeyError{Constraint: ConstraintProductCode}
		}
	}
	return nil
}

// InsertProduct сохраняет новый товар.
func (s *MemoryStore) InsertProduct(_ context.Context, p *model.Product) error {
	defer s.lock()()

	if err := s.data.checkProductUnique(p); err != nil {
		return err
	}
	p.ID = s.data.next("product")
	s.data.products[p.ID] = *p
	return nil
}

// UpdateProduct обновляет товар.
func (s *MemoryStore) UpdateProduct(_ context.Context, p *model.Product) error {
	defer s.lock()()

	if _, ok := s.data.products[p.ID]; !ok {
		return ErrNotFound
	}
	if err := s.data.checkProductUnique(p); err != nil {
		return err
	}
	s.data.products[p.ID] = *p
	return nil
}

// DeleteProduct удаляет товар вместе с журналом его изменений.
func (s *MemoryStore) DeleteProduct(_ context.Context, id int64) error {
	defer s.lock()()

	if _, ok := s.data.products[id]; !ok {
		return ErrNotFound
	}
	maps.DeleteFunc(s.data.changes, func(_ int64, ch model.ProductChange) bool {
		return ch.ProductID == id
	})
	delete(s.data.products, id)
	return nil
}

// ProductByID возвращает товар по идентификатору.
func (s *MemoryStore) ProductByID(_ context.Context, id int64) (*model.Product, error) {
	defer s.lock()()

	p, ok := s.data.products[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &p, nil
}

// ProductByCode возвращает товар по коду.
func (s *MemoryStore) ProductByCode(_ context.Context, code string) (*model.Product, error) {
	defer s.lock()()
	return first(s.data.products, func(p *model.Product) bool { return p.ProductCode == code }, identity)
}

func productsByName(a, b *model.Product) int { return cmp.Compare(a.Name, b.Name) }

// ProductsByCategory возвращает товары категории.
func (s *MemoryStore) ProductsByCategory(_ context.Context, category string) ([]model.Product, error) {
	defer s.lock()()
	return list(s.data.products, func(p *model.Product) bool { return p.Category == category }, productsByName, identity), nil
}

// ProductsByStatus возвращает товары с указанным статусом.
func (s *MemoryStore) ProductsByStatus(_ context.Context, status model.ProductStatus) ([]model.Product, error) {
	defer s.lock()()
	return list(s.data.products, func(p *model.Product) bool { return p.Status == status }, productsByName, identity), nil
}

// InsertProductChanges записывает изменения товара и присваивает им идентификаторы.
func (s *MemoryStore) InsertProductChanges(_ context.Context, changes []model.ProductChange) error {
	defer s.lock()()

	for _, ch := range changes {
		if _, ok := s.data.products[ch.ProductID]; !ok {
			return fkError(fkProductChange)
		}
	}
	for i := range changes {
		changes[i].ID = s.data.next("product_change")
		s.data.changes[changes[i].ID] = changes[i]
	}
	return nil
}

// ProductChanges возвращает журнал изменений товара.
func (s *MemoryStore) ProductChanges(_ context.Context, productID int64) ([]model.ProductChange, error) {
	defer s.lock()()
	return list(s.data.changes, func(ch *model.ProductChange) bool {
		return ch.ProductID == productID
	}, func(a, b *model.ProductChange) int { return ascTime(a.ChangedAt, b.ChangedAt) }, identity), nil
}

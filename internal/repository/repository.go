// Package repository содержит хранилища сущностей CRM и типизированные репозитории поверх них.
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mmeshcher/jdcrm/internal/model"
)

// ErrNotFound возвращается, если запись с указанным ключом не найдена.
var (
	ErrNotFound = errors.New("not found")
	// ErrDuplicateKey возвращается при нарушении ограничения уникальности.
	ErrDuplicateKey = errors.New("duplicate key")
	// ErrForeignKey возвращается при ссылке на несуществующую запись или удалении записи, на которую ссылаются.
	ErrForeignKey = errors.New("foreign key violation")
)

// Имена ограничений уникальности.
const (
	ConstraintCustomerCode    = "customer_code_uniq"
	ConstraintJdCustomerID    = "jd_customer_id_uniq"
	ConstraintLeadCode        = "uniq_lead_code"
	ConstraintOpportunityCode = "opportunity_code_uniq"
	ConstraintOrderNumber     = "order_number_uniq"
	ConstraintProductCode     = "uk_product_code"
)

// DuplicateKeyError описывает нарушение конкретного ограничения уникальности.
type DuplicateKeyError struct {
	Constraint string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("%s: %s", ErrDuplicateKey, e.Constraint)
}

// Is позволяет сравнивать ошибку с ErrDuplicateKey через errors.Is.
func (e *DuplicateKeyError) Is(target error) bool {
	return target == ErrDuplicateKey
}

// CustomerStore описывает хранение клиентов.
type CustomerStore interface {
	InsertCustomer(ctx context.Context, c *model.Customer) error
	UpdateCustomer(ctx context.Context, c *model.Customer) error
	DeleteCustomer(ctx context.Context, id int64) error
	CustomerByID(ctx context.Context, id int64) (*model.Customer, error)
	CustomerByCode(ctx context.Context, code string) (*model.Customer, error)
	CustomerByJdID(ctx context.Context, jdID string) (*model.Customer, error)
	CustomersByStatus(ctx context.Context, status model.CustomerStatus) ([]model.Customer, error)
	CustomersByType(ctx context.Context, typ model.CustomerType) ([]model.Customer, error)
}

// ContactStore описывает хранение контактов.
type ContactStore interface {
	InsertContact(ctx context.Context, c *model.Contact) error
	UpdateContact(ctx context.Context, c *model.Contact) error
	DeleteContact(ctx context.Context, id int64) error
	ContactsByCustomer(ctx context.Context, customerID int64) ([]model.Contact, error)
	PrimaryContact(ctx context.Context, customerID int64) (*model.Contact, error)
	ContactsByStatus(ctx context.Context, status model.ContactStatus) ([]model.Contact, error)
	ContactByEmail(ctx context.Context, email string) (*model.Contact, error)
	ContactByPhone(ctx context.Context, phone string) (*model.Contact, error)
}

// LeadStore описывает хранение лидов.
type LeadStore interface {
	InsertLead(ctx context.Context, l *model.Lead) error
	UpdateLead(ctx context.Context, l *model.Lead) error
	DeleteLead(ctx context.Context, id int64) error
	LeadByCode(ctx context.Context, code string) (*model.Lead, error)
	LeadsByStatus(ctx context.Context, status model.LeadStatus) ([]model.Lead, error)
	LeadsByAssignee(ctx context.Context, assignee string) ([]model.Lead, error)
	LeadsByCompanyName(ctx context.Context, fragment string) ([]model.Lead, error)
	LeadsByScoreRange(ctx context.Context, minScore, maxScore *int) ([]model.Lead, error)
}

// OpportunityStore описывает хранение сделок.
type OpportunityStore interface {
	InsertOpportunity(ctx context.Context, o *model.Opportunity) error
	UpdateOpportunity(ctx context.Context, o *model.Opportunity) error
	DeleteOpportunity(ctx context.Context, id int64) error
	OpportunityByCode(ctx context.Context, code string) (*model.Opportunity, error)
	OpportunitiesByStatus(ctx context.Context, status model.OpportunityStatus) ([]model.Opportunity, error)
	OpportunitiesByStage(ctx context.Context, stage model.OpportunityStage) ([]model.Opportunity, error)
	OpportunitiesByAssignee(ctx context.Context, assignee string) ([]model.Opportunity, error)
	OpportunitiesByCustomer(ctx context.Context, customerID int64) ([]model.Opportunity, error)
}

// OrderStore описывает хранение заказов.
type OrderStore interface {
	InsertOrder(ctx context.Context, o *model.Order) error
	UpdateOrder(ctx context.Context, o *model.Order) error
	DeleteOrder(ctx context.Context, id int64) error
	OrderByNumber(ctx context.Context, number string) (*model.Order, error)
	OrderByJdID(ctx context.Context, jdID string) (*model.Order, error)
	OrdersByCustomer(ctx context.Context, customerID int64) ([]model.Order, error)
	OrdersByOpportunity(ctx context.Context, opportunityID int64) ([]model.Order, error)
	OrdersByStatus(ctx context.Context, status model.OrderStatus) ([]model.Order, error)
	OrdersByDateRange(ctx context.Context, from, to time.Time) ([]model.Order, error)
	SumOrderTotals(ctx context.Context, customerID int64, statuses []model.OrderStatus) (decimal.Decimal, error)
}

// ProductStore описывает хранение товаров и журнала их изменений.
type ProductStore interface {
	InsertProduct(ctx context.Context, p *model.Product) error
	UpdateProduct(ctx context.Context, p *model.Product) error
	DeleteProduct(ctx context.Context, id int64) error
	ProductByID(ctx context.Context, id int64) (*model.Product, error)
	ProductByCode(ctx context.Context, code string) (*model.Product, error)
	ProductsByCategory(ctx context.Context, category string) ([]model.Product, error)
	ProductsByStatus(ctx context.Context, status model.ProductStatus) ([]model.Product, error)
	InsertProductChanges(ctx context.Context, changes []model.ProductChange) error
	ProductChanges(ctx context.Context, productID int64) ([]model.ProductChange, error)
}

// Store объединяет хранилища всех сущностей.
type Store interface {
	CustomerStore
	ContactStore
	LeadStore
	OpportunityStore
	OrderStore
	ProductStore

	// WithinTx выполняет fn в одной транзакции; при ошибке изменения откатываются.
	WithinTx(ctx context.Context, fn func(tx Store) error) error
	Close() error
}

package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Lead описывает потенциального клиента.
type Lead struct {
	ID          int64
	LeadCode    string
	CompanyName string
	ContactName string
	Title       string
	Email       string
	Phone       string
	Source      LeadSource
	Status      LeadStatus
	// Score содержит оценку от 0 до 100, nil если не выставлена.
	Score      *int
	Notes      string
	AssignedTo string
	Timestamps
}

// NewLead создаёт лид в статусе «новый».
func NewLead() *Lead {
	return &Lead{
		Status: LeadStatusNew,
	}
}

func (l *Lead) String() string {
	return fmt.Sprintf("%s (%s)", l.CompanyName, l.ContactName)
}

// Opportunity описывает сделку с клиентом.
type Opportunity struct {
	ID              int64
	OpportunityCode string
	CustomerID      int64
	Customer        *Customer
	Name            string
	Description     string
	Stage           OpportunityStage
	Amount          decimal.NullDecimal
	Probability     *int
	// ExpectedCloseDate хранит только дату.
	ExpectedCloseDate *time.Time
	AssignedTo        string
	Source            string
	Status            OpportunityStatus
	Timestamps
}

// NewOpportunity создаёт активную сделку на этапе выявления потребностей.
func NewOpportunity() *Opportunity {
	return &Opportunity{
		Stage:  OpportunityStageIdentifyNeeds,
		Status: OpportunityStatusActive,
	}
}

// SetCustomer привязывает сделку к клиенту.
func (o *Opportunity) SetCustomer(customer *Customer) {
	o.Customer = customer
	o.CustomerID = customer.ID
}

// ResolveRefs переносит идентификаторы связанных сущностей из ссылок.
func (o *Opportunity) ResolveRefs() {
	if o.Customer != nil && o.Customer.ID != 0 {
		o.CustomerID = o.Customer.ID
	}
}

// HasCustomer сообщает, задан ли клиент сделки.
func (o *Opportunity) HasCustomer() bool {
	return o.CustomerID != 0 || o.Customer != nil
}

func (o *Opportunity) String() string {
	return fmt.Sprintf("Opportunity[%d]: %s (%s) - %s",
		o.ID, orDefault(o.Name, "Unnamed"), orDefault(o.OpportunityCode, "No Code"), o.Stage.Label())
}

// Order описывает заказ клиента.
type Order struct {
	ID          int64
	OrderNumber string
	CustomerID  int64
	Customer    *Customer
	// OpportunityID равен 0, если заказ не связан со сделкой.
	OpportunityID   int64
	Opportunity     *Opportunity
	Status          OrderStatus
	TotalAmount     decimal.Decimal
	PaidAmount      decimal.Decimal
	DiscountAmount  decimal.Decimal
	OrderDate       time.Time
	PaymentMethod   string
	ShippingAddress string
	JdOrderID       string
	Notes           string
	Timestamps
}

// NewOrder создаёт заказ, ожидающий оплаты, с датой заказа равной текущему моменту.
func NewOrder() *Order {
	return &Order{
		Status:         OrderStatusPendingPayment,
		TotalAmount:    decimal.Zero,
		PaidAmount:     decimal.Zero,
		DiscountAmount: decimal.Zero,
		OrderDate:      time.Now(),
	}
}

// SetCustomer привязывает заказ к клиенту.
func (o *Order) SetCustomer(customer *Customer) {
	o.Customer = customer
	o.CustomerID = customer.ID
}

// SetOpportunity привязывает заказ к сделке; nil снимает привязку.
func (o *Order) SetOpportunity(opp *Opportunity) {
	o.Opportunity = opp
	if opp == nil {
		o.OpportunityID = 0
		return
	}
	o.OpportunityID = opp.ID
}

// ResolveRefs переносит идентификаторы связанных сущностей из ссылок.
func (o *Order) ResolveRefs() {
	if o.Customer != nil && o.Customer.ID != 0 {
		o.CustomerID = o.Customer.ID
	}
	if o.Opportunity != nil && o.Opportunity.ID != 0 {
		o.OpportunityID = o.Opportunity.ID
	}
}

// HasCustomer сообщает, задан ли клиент заказа.
func (o *Order) HasCustomer() bool {
	return o.CustomerID != 0 || o.Customer != nil
}

// OpenBalance возвращает неоплаченный остаток: итог минус оплата и скидка.
// Результат может быть отрицательным, соотношение сумм не проверяется.
func (o *Order) OpenBalance() decimal.Decimal {
	return o.TotalAmount.Sub(o.PaidAmount).Sub(o.DiscountAmount)
}

func (o *Order) String() string {
	return fmt.Sprintf("Order[%d]: %s - %s (¥%s)",
		o.ID, orDefault(o.OrderNumber, "No Number"), o.Status.Label(), FormatAmount(o.TotalAmount))
}

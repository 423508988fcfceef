package model

import "fmt"

// Customer описывает клиента.
type Customer struct {
	ID           int64
	CustomerCode string
	JdCustomerID string
	Name         string
	Type         CustomerType
	Email        string
	Phone        string
	Address      string
	Status       CustomerStatus
	Timestamps
}

// NewCustomer создаёт клиента со значениями по умолчанию: частное лицо, активен.
func NewCustomer() *Customer {
	return &Customer{
		Type:   CustomerTypeIndividual,
		Status: CustomerStatusActive,
	}
}

func (c *Customer) String() string {
	return fmt.Sprintf("Customer[%d]: %s (%s)", c.ID, orDefault(c.Name, "Unnamed"), orDefault(c.CustomerCode, "No Code"))
}

// Contact описывает контактное лицо клиента.
type Contact struct {
	ID         int64
	CustomerID int64
	// Customer задаёт ссылку на ещё не сохранённого клиента; ID берётся в момент записи.
	Customer  *Customer
	Name      string
	Title     string
	Email     string
	Phone     string
	Mobile    string
	IsPrimary bool
	Status    ContactStatus
	Timestamps
}

// NewContact создаёт активный неосновной контакт.
func NewContact() *Contact {
	return &Contact{
		Status: ContactStatusActive,
	}
}

// SetCustomer привязывает контакт к клиенту.
func (c *Contact) SetCustomer(customer *Customer) {
	c.Customer = customer
	c.CustomerID = customer.ID
}

// ResolveRefs переносит идентификаторы связанных сущностей из ссылок.
func (c *Contact) ResolveRefs() {
	if c.Customer != nil && c.Customer.ID != 0 {
		c.CustomerID = c.Customer.ID
	}
}

// HasCustomer сообщает, задан ли клиент контакта.
func (c *Contact) HasCustomer() bool {
	return c.CustomerID != 0 || c.Customer != nil
}

func (c *Contact) String() string {
	return fmt.Sprintf("%s (%s)", c.Name, orDefault(c.Title, "无职位"))
}

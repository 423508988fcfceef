package repository

import (
	"context"

	"github.com/mmeshcher/jdcrm/internal/model"
)

const customerColumns = `id, customer_code, COALESCE(jd_customer_id, ''), name, type,
	COALESCE(email, ''), COALESCE(phone, ''), COALESCE(address, ''), status, create_time, update_time`

func scanCustomer(row scanner) (model.Customer, error) {
	var (
		c      model.Customer
		typ    string
		status string
	)
	err := row.Scan(&c.ID, &c.CustomerCode, &c.JdCustomerID, &c.Name, &typ,
		&c.Email, &c.Phone, &c.Address, &status, &c.CreateTime, &c.UpdateTime)
	if err != nil {
		return c, err
	}
	if c.Type, err = model.ParseCustomerType(typ); err != nil {
		return c, err
	}
	c.Status, err = model.ParseCustomerStatus(status)
	return c, err
}

// InsertCustomer сохраняет нового клиента и присваивает ему идентификатор.
func (s *PostgresStore) InsertCustomer(ctx context.Context, c *model.Customer) error {
	return s.insert(ctx, "insert customer",
		`INSERT INTO jingdong_crm_customer
			(customer_code, jd_customer_id, name, type, email, phone, address, status, create_time, update_time)
		 VALUES ($1, NULLIF($2, ''), $3, $4, NULLIF($5, ''), NULLIF($6, ''), NULLIF($7, ''), $8, $9, $10)
		 RETURNING id`,
		&c.ID,
		c.CustomerCode, c.JdCustomerID, c.Name, string(c.Type), c.Email, c.Phone, c.Address,
		string(c.Status), c.CreateTime, c.UpdateTime,
	)
}

// UpdateCustomer обновляет клиента.
func (s *PostgresStore) UpdateCustomer(ctx context.Context, c *model.Customer) error {
	return s.exec(ctx, "update customer",
		`UPDATE jingdong_crm_customer
		 SET customer_code = $2, jd_customer_id = NULLIF($3, ''), name = $4, type = $5,
			 email = NULLIF($6, ''), phone = NULLIF($7, ''), address = NULLIF($8, ''), status = $9,
			 create_time = $10, update_time = $11
		 WHERE id = $1`,
		c.ID, c.CustomerCode, c.JdCustomerID, c.Name, string(c.Type), c.Email, c.Phone, c.Address,
		string(c.Status), c.CreateTime, c.UpdateTime,
	)
}

// DeleteCustomer удаляет клиента.
func (s *PostgresStore) DeleteCustomer(ctx context.Context, id int64) error {
	return s.exec(ctx, "delete customer", `DELETE FROM jingdong_crm_customer WHERE id = $1`, id)
}

// CustomerByID возвращает клиента по идентификатору.
func (s *PostgresStore) CustomerByID(ctx context.Context, id int64) (*model.Customer, error) {
	return queryOne(ctx, s.q, "get customer", scanCustomer,
		`SELECT `+customerColumns+` FROM jingdong_crm_customer WHERE id = $1`, id)
}

// CustomerByCode возвращает клиента по коду.
func (s *PostgresStore) CustomerByCode(ctx context.Context, code string) (*model.Customer, error) {
	return queryOne(ctx, s.q, "get customer", scanCustomer,
		`SELECT `+customerColumns+` FROM jingdong_crm_customer WHERE customer_code = $1`, code)
}

// CustomerByJdID возвращает клиента по внешнему идентификатору.
func (s *PostgresStore) CustomerByJdID(ctx context.Context, jdID string) (*model.Customer, error) {
	return queryOne(ctx, s.q, "get customer", scanCustomer,
		`SELECT `+customerColumns+` FROM jingdong_crm_customer WHERE jd_customer_id = $1`, jdID)
}

// CustomersByStatus возвращает клиентов с указанным статусом.
func (s *PostgresStore) CustomersByStatus(ctx context.Context, status model.CustomerStatus) ([]model.Customer, error) {
	return queryList(ctx, s.q, "select customers", scanCustomer,
		`SELECT `+customerColumns+` FROM jingdong_crm_customer WHERE status = $1 ORDER BY name, id`,
		string(status))
}

// CustomersByType возвращает клиентов указанного типа.
func (s *PostgresStore) CustomersByType(ctx context.Context, typ model.CustomerType) ([]model.Customer, error) {
	return queryList(ctx, s.q, "select customers", scanCustomer,
		`SELECT `+customerColumns+` FROM jingdong_crm_customer WHERE type = $1 ORDER BY name, id`,
		string(typ))
}

const contactColumns = `id, customer_id, name, COALESCE(title, ''), COALESCE(email, ''),
	COALESCE(phone, ''), COALESCE(mobile, ''), is_primary, status, create_time, update_time`

func scanContact(row scanner) (model.Contact, error) {
	var (
		c      model.Contact
		status string
	)
	err := row.Scan(&c.ID, &c.CustomerID, &c.Name, &c.Title, &c.Email,
		&c.Phone, &c.Mobile, &c.IsPrimary, &status, &c.CreateTime, &c.UpdateTime)
	if err != nil {
		return c, err
	}
	c.Status, err = model.ParseContactStatus(status)
	return c, err
}

// InsertContact сохраняет новый контакт.
func (s *PostgresStore) InsertContact(ctx context.Context, c *model.Contact) error {
	return s.insert(ctx, "insert contact",
		`INSERT INTO jingdong_crm_contact
			(customer_id, name, title, email, phone, mobile, is_primary, status, create_time, update_time)
		 VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''), NULLIF($5, ''), NULLIF($6, ''), $7, $8, $9, $10)
		 RETURNING id`,
		&c.ID,
		c.CustomerID, c.Name, c.Title, c.Email, c.Phone, c.Mobile, c.IsPrimary,
		string(c.Status), c.CreateTime, c.UpdateTime,
	)
}

// UpdateContact обновляет контакт.
func (s *PostgresStore) UpdateContact(ctx context.Context, c *model.Contact) error {
	return s.exec(ctx, "update contact",
		`UPDATE jingdong_crm_contact
		 SET customer_id = $2, name = $3, title = NULLIF($4, ''), email = NULLIF($5, ''),
			 phone = NULLIF($6, ''), mobile = NULLIF($7, ''), is_primary = $8, status = $9,
			 create_time = $10, update_time = $11
		 WHERE id = $1`,
		c.ID, c.CustomerID, c.Name, c.Title, c.Email, c.Phone, c.Mobile, c.IsPrimary,
		string(c.Status), c.CreateTime, c.UpdateTime,
	)
}

// DeleteContact удаляет контакт.
func (s *PostgresStore) DeleteContact(ctx context.Context, id int64) error {
	return s.exec(ctx, "delete contact", `DELETE FROM jingdong_crm_contact WHERE id = $1`, id)
}

// ContactsByCustomer возвращает контакты клиента.
func (s *PostgresStore) ContactsByCustomer(ctx context.Context, customerID int64) ([]model.Contact, error) {
	return queryList(ctx, s.q, "select contacts", scanContact,
		`SELECT `+contactColumns+` FROM jingdong_crm_contact
		 WHERE customer_id = $1
		 ORDER BY is_primary DESC, name, id`,
		customerID)
}

// PrimaryContact возвращает основной контакт клиента.
func (s *PostgresStore) PrimaryContact(ctx context.Context, customerID int64) (*model.Contact, error) {
	return queryOne(ctx, s.q, "get primary contact", scanContact,
		`SELECT `+contactColumns+` FROM jingdong_crm_contact
		 WHERE customer_id = $1 AND is_primary
		 ORDER BY id
		 LIMIT 1`,
		customerID)
}

// ContactsByStatus возвращает контакты с указанным статусом.
func (s *PostgresStore) ContactsByStatus(ctx context.Context, status model.ContactStatus) ([]model.Contact, error) {
	return queryList(ctx, s.q, "select contacts", scanContact,
		`SELECT `+contactColumns+` FROM jingdong_crm_contact WHERE status = $1 ORDER BY name, id`,
		string(status))
}

// ContactByEmail возвращает контакт по адресу почты.
func (s *PostgresStore) ContactByEmail(ctx context.Context, email string) (*model.Contact, error) {
	return queryOne(ctx, s.q, "get contact", scanContact,
		`SELECT `+contactColumns+` FROM jingdong_crm_contact WHERE email = $1 ORDER BY id LIMIT 1`,
		email)
}

// ContactByPhone возвращает контакт по телефону или мобильному номеру.
func (s *PostgresStore) ContactByPhone(ctx context.Context, phone string) (*model.Contact, error) {
	return queryOne(ctx, s.q, "get contact", scanContact,
		`SELECT `+contactColumns+` FROM jingdong_crm_contact
		 WHERE phone = $1 OR mobile = $1
		 ORDER BY id
		 LIMIT 1`,
		phone)
}

package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mmeshcher/jdcrm/internal/model"
)

const leadColumns = `id, lead_code, company_name, contact_name, COALESCE(title, ''), COALESCE(email, ''),
	COALESCE(phone, ''), source, status, score, COALESCE(notes, ''), COALESCE(assigned_to, ''),
	create_time, update_time`

func scanLead(row scanner) (model.Lead, error) {
	var (
		l      model.Lead
		source string
		status string
	)
	err := row.Scan(&l.ID, &l.LeadCode, &l.CompanyName, &l.ContactName, &l.Title, &l.Email,
		&l.Phone, &source, &status, &l.Score, &l.Notes, &l.AssignedTo, &l.CreateTime, &l.UpdateTime)
	if err != nil {
		return l, err
	}
	if l.Source, err = model.ParseLeadSource(source); err != nil {
		return l, err
	}
	l.Status, err = model.ParseLeadStatus(status)
	return l, err
}

// InsertLead сохраняет новый лид.
func (s *PostgresStore) InsertLead(ctx context.Context, l *model.Lead) error {
	return s.insert(ctx, "insert lead",
		`INSERT INTO jingdong_crm_lead
			(lead_code, company_name, contact_name, title, email, phone, source, status, score,
			 notes, assigned_to, create_time, update_time)
		 VALUES ($1, $2, $3, NULLIF($4, ''), NULLIF($5, ''), NULLIF($6, ''), $7, $8, $9,
			 NULLIF($10, ''), NULLIF($11, ''), $12, $13)
		 RETURNING id`,
		&l.ID,
		l.LeadCode, l.CompanyName, l.ContactName, l.Title, l.Email, l.Phone,
		string(l.Source), string(l.Status), l.Score, l.Notes, l.AssignedTo, l.CreateTime, l.UpdateTime,
	)
}

// UpdateLead обновляет лид.
func (s *PostgresStore) UpdateLead(ctx context.Context, l *model.Lead) error {
	return s.exec(ctx, "update lead",
		`UPDATE jingdong_crm_lead
		 SET lead_code = $2, company_name = $3, contact_name = $4, title = NULLIF($5, ''),
			 email = NULLIF($6, ''), phone = NULLIF($7, ''), source = $8, status = $9, score = $10,
			 notes = NULLIF($11, ''), assigned_to = NULLIF($12, ''), create_time = $13, update_time = $14
		 WHERE id = $1`,
		l.ID, l.LeadCode, l.CompanyName, l.ContactName, l.Title, l.Email, l.Phone,
		string(l.Source), string(l.Status), l.Score, l.Notes, l.AssignedTo, l.CreateTime, l.UpdateTime,
	)
}

// DeleteLead удаляет лид.
func (s *PostgresStore) DeleteLead(ctx context.Context, id int64) error {
	return s.exec(ctx, "delete lead", `DELETE FROM jingdong_crm_lead WHERE id = $1`, id)
}

// LeadByCode возвращает лид по коду.
func (s *PostgresStore) LeadByCode(ctx context.Context, code string) (*model.Lead, error) {
	return queryOne(ctx, s.q, "get lead", scanLead,
		`SELECT `+leadColumns+` FROM jingdong_crm_lead WHERE lead_code = $1`, code)
}

// LeadsByStatus возвращает лиды с указанным статусом.
func (s *PostgresStore) LeadsByStatus(ctx context.Context, status model.LeadStatus) ([]model.Lead, error) {
	return queryList(ctx, s.q, "select leads", scanLead,
		`SELECT `+leadColumns+` FROM jingdong_crm_lead WHERE status = $1 ORDER BY create_time DESC, id`,
		string(status))
}

// LeadsByAssignee возвращает лиды ответственного.
func (s *PostgresStore) LeadsByAssignee(ctx context.Context, assignee string) ([]model.Lead, error) {
	return queryList(ctx, s.q, "select leads", scanLead,
		`SELECT `+leadColumns+` FROM jingdong_crm_lead WHERE assigned_to = $1 ORDER BY create_time DESC, id`,
		assignee)
}

// LeadsByCompanyName возвращает лиды по фрагменту названия компании.
func (s *PostgresStore) LeadsByCompanyName(ctx context.Context, fragment string) ([]model.Lead, error) {
	return queryList(ctx, s.q, "select leads", scanLead,
		`SELECT `+leadColumns+` FROM jingdong_crm_lead
		 WHERE strpos(company_name, $1) > 0
		 ORDER BY create_time DESC, id`,
		fragment)
}

// LeadsByScoreRange возвращает лиды с оценкой в заданных границах.
func (s *PostgresStore) LeadsByScoreRange(ctx context.Context, minScore, maxScore *int) ([]model.Lead, error) {
	return queryList(ctx, s.q, "select leads", scanLead,
		`SELECT `+leadColumns+` FROM jingdong_crm_lead
		 WHERE ($1::int IS NULL OR score >= $1) AND ($2::int IS NULL OR score <= $2)
		 ORDER BY score DESC NULLS LAST, create_time DESC, id`,
		minScore, maxScore)
}

const opportunityColumns = `id, opportunity_code, customer_id, name, COALESCE(description, ''), stage,
	amount, probability, expected_close_date, COALESCE(assigned_to, ''), COALESCE(source, ''), status,
	create_time, update_time`

func scanOpportunity(row scanner) (model.Opportunity, error) {
	var (
		o      model.Opportunity
		stage  string
		status string
	)
	err := row.Scan(&o.ID, &o.OpportunityCode, &o.CustomerID, &o.Name, &o.Description, &stage,
		&o.Amount, &o.Probability, &o.ExpectedCloseDate, &o.AssignedTo, &o.Source, &status,
		&o.CreateTime, &o.UpdateTime)
	if err != nil {
		return o, err
	}
	if o.Stage, err = model.ParseOpportunityStage(stage); err != nil {
		return o, err
	}
	o.Status, err = model.ParseOpportunityStatus(status)
	return o, err
}

// InsertOpportunity сохраняет новую сделку.
func (s *PostgresStore) InsertOpportunity(ctx context.Context, o *model.Opportunity) error {
	return s.insert(ctx, "insert opportunity",
		`INSERT INTO jingdong_crm_opportunity
			(opportunity_code, customer_id, name, description, stage, amount, probability,
			 expected_close_date, assigned_to, source, status, create_time, update_time)
		 VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6, $7, $8, NULLIF($9, ''), NULLIF($10, ''), $11, $12, $13)
		 RETURNING id`,
		&o.ID,
		o.OpportunityCode, o.CustomerID, o.Name, o.Description, string(o.Stage), o.Amount,
		o.Probability, o.ExpectedCloseDate, o.AssignedTo, o.Source, string(o.Status),
		o.CreateTime, o.UpdateTime,
	)
}

// UpdateOpportunity обновляет сделку.
func (s *PostgresStore) UpdateOpportunity(ctx context.Context, o *model.Opportunity) error {
	return s.exec(ctx, "update opportunity",
		`UPDATE jingdong_crm_opportunity
		 SET opportunity_code = $2, customer_id = $3, name = $4, description = NULLIF($5, ''),
			 stage = $6, amount = $7, probability = $8, expected_close_date = $9,
			 assigned_to = NULLIF($10, ''), source = NULLIF($11, ''), status = $12,
			 create_time = $13, update_time = $14
		 WHERE id = $1`,
		o.ID, o.OpportunityCode, o.CustomerID, o.Name, o.Description, string(o.Stage), o.Amount,
		o.Probability, o.ExpectedCloseDate, o.AssignedTo, o.Source, string(o.Status),
		o.CreateTime, o.UpdateTime,
	)
}

// DeleteOpportunity удаляет сделку.
func (s *PostgresStore) DeleteOpportunity(ctx context.Context, id int64) error {
	return s.exec(ctx, "delete opportunity", `DELETE FROM jingdong_crm_opportunity WHERE id = $1`, id)
}

// OpportunityByCode возвращает сделку по коду.
func (s *PostgresStore) OpportunityByCode(ctx context.Context, code string) (*model.Opportunity, error) {
	return queryOne(ctx, s.q, "get opportunity", scanOpportunity,
		`SELECT `+opportunityColumns+` FROM jingdong_crm_opportunity WHERE opportunity_code = $1`, code)
}

func (s *PostgresStore) opportunitiesWhere(ctx context.Context, cond string, arg any) ([]model.Opportunity, error) {
	return queryList(ctx, s.q, "select opportunities", scanOpportunity,
		`SELECT `+opportunityColumns+` FROM jingdong_crm_opportunity
		 WHERE `+cond+`
		 ORDER BY expected_close_date ASC NULLS LAST, id`,
		arg)
}

// OpportunitiesByStatus возвращает сделки с указанным статусом.
func (s *PostgresStore) OpportunitiesByStatus(ctx context.Context, status model.OpportunityStatus) ([]model.Opportunity, error) {
	return s.opportunitiesWhere(ctx, "status = $1", string(status))
}

// OpportunitiesByStage возвращает сделки на указанном этапе.
func (s *PostgresStore) OpportunitiesByStage(ctx context.Context, stage model.OpportunityStage) ([]model.Opportunity, error) {
	return s.opportunitiesWhere(ctx, "stage = $1", string(stage))
}

// OpportunitiesByAssignee возвращает сделки ответственного.
func (s *PostgresStore) OpportunitiesByAssignee(ctx context.Context, assignee string) ([]model.Opportunity, error) {
	return s.opportunitiesWhere(ctx, "assigned_to = $1", assignee)
}

// OpportunitiesByCustomer возвращает сделки клиента.
func (s *PostgresStore) OpportunitiesByCustomer(ctx context.Context, customerID int64) ([]model.Opportunity, error) {
	return queryList(ctx, s.q, "select opportunities", scanOpportunity,
		`SELECT `+opportunityColumns+` FROM jingdong_crm_opportunity
		 WHERE customer_id = $1
		 ORDER BY create_time DESC, id`,
		customerID)
}

const orderColumns = `id, order_number, customer_id, COALESCE(opportunity_id, 0), status,
	total_amount, paid_amount, discount_amount, order_date, COALESCE(payment_method, ''),
	COALESCE(shipping_address, ''), COALESCE(jd_order_id, ''), COALESCE(notes, ''),
	create_time, update_time`

func scanOrder(row scanner) (model.Order, error) {
	var (
		o      model.Order
		status string
	)
	err := row.Scan(&o.ID, &o.OrderNumber, &o.CustomerID, &o.OpportunityID, &status,
		&o.TotalAmount, &o.PaidAmount, &o.DiscountAmount, &o.OrderDate, &o.PaymentMethod,
		&o.ShippingAddress, &o.JdOrderID, &o.Notes, &o.CreateTime, &o.UpdateTime)
	if err != nil {
		return o, err
	}
	o.Status, err = model.ParseOrderStatus(status)
	return o, err
}

// InsertOrder сохраняет новый заказ.
func (s *PostgresStore) InsertOrder(ctx context.Context, o *model.Order) error {
	return s.insert(ctx, "insert order",
		`INSERT INTO jingdong_crm_order
			(order_number, customer_id, opportunity_id, status, total_amount, paid_amount,
			 discount_amount, order_date, payment_method, shipping_address, jd_order_id, notes,
			 create_time, update_time)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NULLIF($9, ''), NULLIF($10, ''), NULLIF($11, ''),
			 NULLIF($12, ''), $13, $14)
		 RETURNING id`,
		&o.ID,
		o.OrderNumber, o.CustomerID, nullID(o.OpportunityID), string(o.Status), o.TotalAmount,
		o.PaidAmount, o.DiscountAmount, o.OrderDate, o.PaymentMethod, o.ShippingAddress,
		o.JdOrderID, o.Notes, o.CreateTime, o.UpdateTime,
	)
}

// UpdateOrder обновляет заказ.
func (s *PostgresStore) UpdateOrder(ctx context.Context, o *model.Order) error {
	return s.exec(ctx, "update order",
		`UPDATE jingdong_crm_order
		 SET order_number = $2, customer_id = $3, opportunity_id = $4, status = $5,
			 total_amount = $6, paid_amount = $7, discount_amount = $8, order_date = $9,
			 payment_method = NULLIF($10, ''), shipping_address = NULLIF($11, ''),
			 jd_order_id = NULLIF($12, ''), notes = NULLIF($13, ''), create_time = $14, update_time = $15
		 WHERE id = $1`,
		o.ID, o.OrderNumber, o.CustomerID, nullID(o.OpportunityID), string(o.Status), o.TotalAmount,
		o.PaidAmount, o.DiscountAmount, o.OrderDate, o.PaymentMethod, o.ShippingAddress,
		o.JdOrderID, o.Notes, o.CreateTime, o.UpdateTime,
	)
}

// DeleteOrder удаляет заказ.
func (s *PostgresStore) DeleteOrder(ctx context.Context, id int64) error {
	return s.exec(ctx, "delete order", `DELETE FROM jingdong_crm_order WHERE id = $1`, id)
}

// OrderByNumber возвращает заказ по номеру.
func (s *PostgresStore) OrderByNumber(ctx context.Context, number string) (*model.Order, error) {
	return queryOne(ctx, s.q, "get order", scanOrder,
		`SELECT `+orderColumns+` FROM jingdong_crm_order WHERE order_number = $1`, number)
}

// OrderByJdID возвращает заказ по внешнему идентификатору.
func (s *PostgresStore) OrderByJdID(ctx context.Context, jdID string) (*model.Order, error) {
	return queryOne(ctx, s.q, "get order", scanOrder,
		`SELECT `+orderColumns+` FROM jingdong_crm_order WHERE jd_order_id = $1 ORDER BY id LIMIT 1`, jdID)
}

func (s *PostgresStore) ordersWhere(ctx context.Context, cond string, args ...any) ([]model.Order, error) {
	return queryList(ctx, s.q, "select orders", scanOrder,
		`SELECT `+orderColumns+` FROM jingdong_crm_order
		 WHERE `+cond+`
		 ORDER BY order_date DESC, id`,
		args...)
}

// OrdersByCustomer возвращает заказы клиента.
func (s *PostgresStore) OrdersByCustomer(ctx context.Context, customerID int64) ([]model.Order, error) {
	return s.ordersWhere(ctx, "customer_id = $1", customerID)
}

// OrdersByOpportunity возвращает заказы по сделке.
func (s *PostgresStore) OrdersByOpportunity(ctx context.Context, opportunityID int64) ([]model.Order, error) {
	return s.ordersWhere(ctx, "opportunity_id = $1", opportunityID)
}

// OrdersByStatus возвращает заказы с указанным статусом.
func (s *PostgresStore) OrdersByStatus(ctx context.Context, status model.OrderStatus) ([]model.Order, error) {
	return s.ordersWhere(ctx, "status = $1", string(status))
}

// OrdersByDateRange возвращает заказы с датой в интервале включительно.
func (s *PostgresStore) OrdersByDateRange(ctx context.Context, from, to time.Time) ([]model.Order, error) {
	return s.ordersWhere(ctx, "order_date BETWEEN $1 AND $2", from, to)
}

// SumOrderTotals возвращает сумму заказов клиента в указанных статусах.
func (s *PostgresStore) SumOrderTotals(ctx context.Context, customerID int64, statuses []model.OrderStatus) (decimal.Decimal, error) {
	codes := make([]string, len(statuses))
	for i, st := range statuses {
		codes[i] = string(st)
	}

	var total decimal.Decimal
	err := s.q.QueryRow(ctx,
		`SELECT COALESCE(SUM(total_amount), 0)
		 FROM jingdong_crm_order
		 WHERE customer_id = $1 AND status = ANY($2)`,
		customerID, codes,
	).Scan(&total)
	if err != nil {
		return decimal.Zero, classify("sum order totals", err)
	}
	return total, nil
}

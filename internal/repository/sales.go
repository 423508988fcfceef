package repository

import (
	"context"
	"time"

	"github.com/mmeshcher/jdcrm/internal/model"
	"github.com/mmeshcher/jdcrm/internal/validation"
)

// HighScoreThreshold задаёт минимальную оценку «горячего» лида.
const HighScoreThreshold = 80

// LeadRepository предоставляет доступ к лидам.
type LeadRepository struct {
	sess *Session
}

// NewLeadRepository создаёт репозиторий лидов.
func NewLeadRepository(sess *Session) *LeadRepository {
	return &LeadRepository{sess: sess}
}

// FindByLeadCode возвращает лид по коду.
func (r *LeadRepository) FindByLeadCode(ctx context.Context, code string) (*model.Lead, error) {
	return r.sess.store.LeadByCode(ctx, code)
}

// FindByStatus возвращает лиды с указанным статусом, новые первыми.
func (r *LeadRepository) FindByStatus(ctx context.Context, status model.LeadStatus) ([]model.Lead, error) {
	return r.sess.store.LeadsByStatus(ctx, status)
}

// FindByAssignedTo возвращает лиды ответственного, новые первыми.
func (r *LeadRepository) FindByAssignedTo(ctx context.Context, assignee string) ([]model.Lead, error) {
	return r.sess.store.LeadsByAssignee(ctx, assignee)
}

// FindByCompanyName возвращает лиды, в названии компании которых встречается fragment.
func (r *LeadRepository) FindByCompanyName(ctx context.Context, fragment string) ([]model.Lead, error) {
	return r.sess.store.LeadsByCompanyName(ctx, fragment)
}

// FindByScoreRange возвращает лиды с оценкой в заданных границах включительно; nil снимает границу.
// Сортировка по оценке по убыванию, затем по времени создания по убыванию.
func (r *LeadRepository) FindByScoreRange(ctx context.Context, minScore, maxScore *int) ([]model.Lead, error) {
	return r.sess.store.LeadsByScoreRange(ctx, minScore, maxScore)
}

// FindHighScore возвращает лиды с оценкой от HighScoreThreshold.
func (r *LeadRepository) FindHighScore(ctx context.Context) ([]model.Lead, error) {
	threshold := HighScoreThreshold
	return r.sess.store.LeadsByScoreRange(ctx, &threshold, nil)
}

// Save проверяет лид и ставит его запись в очередь.
func (r *LeadRepository) Save(ctx context.Context, l *model.Lead, flush bool) error {
	if err := validation.Lead(l); err != nil {
		return err
	}
	r.sess.stamp(ctx, l)

	return r.sess.enqueue(ctx, write{
		desc:  "save lead " + l.LeadCode,
		check: func() error { return validation.Lead(l) },
		apply: func(ctx context.Context, st Store) (func(), error) {
			return upsert(&l.ID,
				func() error { return st.InsertLead(ctx, l) },
				func() error { return st.UpdateLead(ctx, l) },
			)
		},
	}, flush)
}

// Remove ставит удаление лида в очередь.
func (r *LeadRepository) Remove(ctx context.Context, l *model.Lead, flush bool) error {
	return r.sess.enqueue(ctx, write{
		desc:  "remove lead " + l.LeadCode,
		apply: func(ctx context.Context, st Store) (func(), error) {
			return remove(&l.ID, func() error { return st.DeleteLead(ctx, l.ID) })
		},
	}, flush)
}

// OpportunityRepository предоставляет доступ к сделкам.
type OpportunityRepository struct {
	sess *Session
}

// NewOpportunityRepository создаёт репозиторий сделок.
func NewOpportunityRepository(sess *Session) *OpportunityRepository {
	return &OpportunityRepository{sess: sess}
}

// FindByOpportunityCode возвращает сделку по коду.
func (r *OpportunityRepository) FindByOpportunityCode(ctx context.Context, code string) (*model.Opportunity, error) {
	return r.sess.store.OpportunityByCode(ctx, code)
}

// FindActive возвращает активные сделки по ближайшей ожидаемой дате закрытия.
func (r *OpportunityRepository) FindActive(ctx context.Context) ([]model.Opportunity, error) {
	return r.sess.store.OpportunitiesByStatus(ctx, model.OpportunityStatusActive)
}

// FindByStatus возвращает сделки с указанным статусом по ближайшей ожидаемой дате закрытия.
func (r *OpportunityRepository) FindByStatus(ctx context.Context, status model.OpportunityStatus) ([]model.Opportunity, error) {
	return r.sess.store.OpportunitiesByStatus(ctx, status)
}

// FindByStage возвращает сделки на указанном этапе по ближайшей ожидаемой дате закрытия.
func (r *OpportunityRepository) FindByStage(ctx context.Context, stage model.OpportunityStage) ([]model.Opportunity, error) {
	return r.sess.store.OpportunitiesByStage(ctx, stage)
}

// FindByAssignedTo возвращает сделки ответственного по ближайшей ожидаемой дате закрытия.
func (r *OpportunityRepository) FindByAssignedTo(ctx context.Context, assignee string) ([]model.Opportunity, error) {
	return r.sess.store.OpportunitiesByAssignee(ctx, assignee)
}

// FindByCustomer возвращает сделки клиента, новые первыми.
func (r *OpportunityRepository) FindByCustomer(ctx context.Context, customerID int64) ([]model.Opportunity, error) {
	return r.sess.store.OpportunitiesByCustomer(ctx, customerID)
}

// Save проверяет сделку и ставит её запись в очередь.
func (r *OpportunityRepository) Save(ctx context.Context, o *model.Opportunity, flush bool) error {
	if err := validation.Opportunity(o); err != nil {
		return err
	}
	r.sess.stamp(ctx, o)

	return r.sess.enqueue(ctx, write{
		desc:  "save opportunity " + o.OpportunityCode,
		check: func() error { return validation.Opportunity(o) },
		apply: func(ctx context.Context, st Store) (func(), error) {
			o.ResolveRefs()
			return upsert(&o.ID,
				func() error { return st.InsertOpportunity(ctx, o) },
				func() error { return st.UpdateOpportunity(ctx, o) },
			)
		},
	}, flush)
}

// Remove ставит удаление сделки в очередь.
func (r *OpportunityRepository) Remove(ctx context.Context, o *model.Opportunity, flush bool) error {
	return r.sess.enqueue(ctx, write{
		desc:  "remove opportunity " + o.OpportunityCode,
		apply: func(ctx context.Context, st Store) (func(), error) {
			return remove(&o.ID, func() error { return st.DeleteOpportunity(ctx, o.ID) })
		},
	}, flush)
}

// RevenueStatuses перечисляет статусы заказов, учитываемые в выручке.
var RevenueStatuses = []model.OrderStatus{
	model.OrderStatusPaid,
	model.OrderStatusShipping,
	model.OrderStatusCompleted,
}

// OrderRepository предоставляет доступ к заказам.
type OrderRepository struct {
	sess *Session
}

// NewOrderRepository создаёт репозиторий заказов.
func NewOrderRepository(sess *Session) *OrderRepository {
	return &OrderRepository{sess: sess}
}

// FindByOrderNumber возвращает заказ по номеру.
func (r *OrderRepository) FindByOrderNumber(ctx context.Context, number string) (*model.Order, error) {
	return r.sess.store.OrderByNumber(ctx, number)
}

// FindByJdOrderID возвращает заказ по идентификатору во внешней системе.
func (r *OrderRepository) FindByJdOrderID(ctx context.Context, jdID string) (*model.Order, error) {
	return r.sess.store.OrderByJdID(ctx, jdID)
}

// FindByCustomer возвращает заказы клиента, новые первыми.
func (r *OrderRepository) FindByCustomer(ctx context.Context, customerID int64) ([]model.Order, error) {
	return r.sess.store.OrdersByCustomer(ctx, customerID)
}

// FindByOpportunity возвращает заказы по сделке, новые первыми.
func (r *OrderRepository) FindByOpportunity(ctx context.Context, opportunityID int64) ([]model.Order, error) {
	return r.sess.store.OrdersByOpportunity(ctx, opportunityID)
}

// FindByStatus возвращает заказы с указанным статусом, новые первыми.
func (r *OrderRepository) FindByStatus(ctx context.Context, status model.OrderStatus) ([]model.Order, error) {
	return r.sess.store.OrdersByStatus(ctx, status)
}

// FindByDateRange возвращает заказы с датой в интервале [from, to], новые первыми.
func (r *OrderRepository) FindByDateRange(ctx context.Context, from, to time.Time) ([]model.Order, error) {
	return r.sess.store.OrdersByDateRange(ctx, from, to)
}

// FindPending возвращает заказы, ожидающие оплаты.
func (r *OrderRepository) FindPending(ctx context.Context) ([]model.Order, error) {
	return r.FindByStatus(ctx, model.OrderStatusPendingPayment)
}

// FindCompleted возвращает завершённые заказы.
func (r *OrderRepository) FindCompleted(ctx context.Context) ([]model.Order, error) {
	return r.FindByStatus(ctx, model.OrderStatusCompleted)
}

// TotalAmountByCustomer возвращает сумму заказов клиента в статусах RevenueStatuses
// с двумя знаками после запятой; при отсутствии заказов возвращается "0.00".
func (r *OrderRepository) TotalAmountByCustomer(ctx context.Context, customerID int64) (string, error) {
	total, err := r.sess.store.SumOrderTotals(ctx, customerID, RevenueStatuses)
	if err != nil {
		return "", err
	}
	return model.FormatAmount(total), nil
}

// Save проверяет заказ и ставит его запись в очередь.
func (r *OrderRepository) Save(ctx context.Context, o *model.Order, flush bool) error {
	if err := validation.Order(o); err != nil {
		return err
	}
	r.sess.stamp(ctx, o)

	return r.sess.enqueue(ctx, write{
		desc:  "save order " + o.OrderNumber,
		check: func() error { return validation.Order(o) },
		apply: func(ctx context.Context, st Store) (func(), error) {
			o.ResolveRefs()
			return upsert(&o.ID,
				func() error { return st.InsertOrder(ctx, o) },
				func() error { return st.UpdateOrder(ctx, o) },
			)
		},
	}, flush)
}

// Remove ставит удаление заказа в очередь.
func (r *OrderRepository) Remove(ctx context.Context, o *model.Order, flush bool) error {
	return r.sess.enqueue(ctx, write{
		desc:  "remove order " + o.OrderNumber,
		apply: func(ctx context.Context, st Store) (func(), error) {
			return remove(&o.ID, func() error { return st.DeleteOrder(ctx, o.ID) })
		},
	}, flush)
}

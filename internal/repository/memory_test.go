package repository

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmeshcher/jdcrm/internal/model"
)

func intPtr(v int) *int { return &v }

func timePtr(t time.Time) *time.Time { return &t }

func at(reg *Registry, t time.Time) {
	reg.Session.SetClock(func() time.Time { return t })
}

func TestCustomerRepository_Finders(t *testing.T) {
	ctx := context.Background()
	reg := newTestRegistry(t)

	zeta := testCustomer("CUS-Z", "Zeta")
	alpha := testCustomer("CUS-A", "Alpha")
	alpha.Type = model.CustomerTypeEnterprise
	closed := testCustomer("CUS-C", "Closed")
	closed.Status = model.CustomerStatusClosed
	for _, c := range []*model.Customer{zeta, alpha, closed} {
		require.NoError(t, reg.Customers.Save(ctx, c, false))
	}
	require.NoError(t, reg.Flush(ctx))

	active, err := reg.Customers.FindActive(ctx)
	require.NoError(t, err)
	require.Len(t, active, 2)
	assert.Equal(t, "Alpha", active[0].Name)
	assert.Equal(t, "Zeta", active[1].Name)

	byStatus, err := reg.Customers.FindByStatus(ctx, model.CustomerStatusClosed)
	require.NoError(t, err)
	require.Len(t, byStatus, 1)
	assert.Equal(t, closed.ID, byStatus[0].ID)

	byType, err := reg.Customers.FindByType(ctx, model.CustomerTypeEnterprise)
	require.NoError(t, err)
	require.Len(t, byType, 1)
	assert.Equal(t, alpha.ID, byType[0].ID)

	_, err = reg.Customers.FindByJdCustomerID(ctx, "")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCustomerRepository_UniqueJdID(t *testing.T) {
	ctx := context.Background()
	reg := newTestRegistry(t)

	require.NoError(t, reg.Customers.Save(ctx, testCustomer("CUS-1", "One"), true))

	dup := testCustomer("CUS-2", "Two")
	dup.JdCustomerID = "JD-CUS-1"
	err := reg.Customers.Save(ctx, dup, true)
	require.ErrorIs(t, err, ErrDuplicateKey)
	assert.Contains(t, err.Error(), ConstraintJdCustomerID)
}

func TestCustomerRepository_RemoveReferencedCustomer(t *testing.T) {
	ctx := context.Background()
	reg := newTestRegistry(t)

	c := testCustomer("CUS-1", "One")
	require.NoError(t, reg.Customers.Save(ctx, c, true))
	o := testOrder("ORD-1", c, model.OrderStatusPaid, "10.00")
	require.NoError(t, reg.Orders.Save(ctx, o, true))

	err := reg.Customers.Remove(ctx, c, true)
	require.ErrorIs(t, err, ErrForeignKey)

	require.NoError(t, reg.Orders.Remove(ctx, o, false))
	require.NoError(t, reg.Customers.Remove(ctx, c, false))
	require.NoError(t, reg.Flush(ctx))

	_, err = reg.Customers.FindByCustomerCode(ctx, "CUS-1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestContactRepository_Finders(t *testing.T) {
	ctx := context.Background()
	reg := newTestRegistry(t)

	c := testCustomer("CUS-1", "One")
	require.NoError(t, reg.Customers.Save(ctx, c, true))

	mk := func(name string, primary bool, phone, mobile, email string) *model.Contact {
		ct := model.NewContact()
		ct.SetCustomer(c)
		ct.Name = name
		ct.IsPrimary = primary
		ct.Phone = phone
		ct.Mobile = mobile
		ct.Email = email
		return ct
	}
	wang := mk("Wang", false, "010-1111", "", "wang@example.com")
	li := mk("Li", false, "", "13800000000", "")
	zhao := mk("Zhao", true, "", "", "zhao@example.com")
	inactive := mk("Bai", false, "", "", "")
	inactive.Status = model.ContactStatusInactive
	for _, ct := range []*model.Contact{wang, li, zhao, inactive} {
		require.NoError(t, reg.Contacts.Save(ctx, ct, false))
	}
	require.NoError(t, reg.Flush(ctx))

	all, err := reg.Contacts.FindByCustomer(ctx, c.ID)
	require.NoError(t, err)
	require.Len(t, all, 4)
	assert.Equal(t, []string{"Zhao", "Bai", "Li", "Wang"}, []string{all[0].Name, all[1].Name, all[2].Name, all[3].Name})

	primary, err := reg.Contacts.FindPrimaryByCustomer(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, zhao.ID, primary.ID)

	active, err := reg.Contacts.FindActive(ctx)
	require.NoError(t, err)
	assert.Len(t, active, 3)

	byEmail, err := reg.Contacts.FindByEmail(ctx, "wang@example.com")
	require.NoError(t, err)
	assert.Equal(t, wang.ID, byEmail.ID)

	byMobile, err := reg.Contacts.FindByPhone(ctx, "13800000000")
	require.NoError(t, err)
	assert.Equal(t, li.ID, byMobile.ID)

	byPhone, err := reg.Contacts.FindByPhone(ctx, "010-1111")
	require.NoError(t, err)
	assert.Equal(t, wang.ID, byPhone.ID)

	_, err = reg.Contacts.FindByPhone(ctx, "000")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestContactRepository_PrimaryMissing(t *testing.T) {
	ctx := context.Background()
	reg := newTestRegistry(t)

	c := testCustomer("CUS-1", "One")
	require.NoError(t, reg.Customers.Save(ctx, c, true))

	_, err := reg.Contacts.FindPrimaryByCustomer(ctx, c.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestContactRepository_UnknownCustomer(t *testing.T) {
	ctx := context.Background()
	reg := newTestRegistry(t)

	ct := model.NewContact()
	ct.Name = "Ghost"
	ct.CustomerID = 42
	err := reg.Contacts.Save(ctx, ct, true)
	require.ErrorIs(t, err, ErrForeignKey)
	assert.Zero(t, ct.ID)
}

func testLead(code, company string, score *int) *model.Lead {
	l := model.NewLead()
	l.LeadCode = code
	l.CompanyName = company
	l.ContactName = "Contact " + code
	l.Source = model.LeadSourceWebsite
	l.Score = score
	return l
}

func TestLeadRepository_Finders(t *testing.T) {
	ctx := context.Background()
	reg := newTestRegistry(t)

	leads := []*model.Lead{
		testLead("L-1", "北京科技有限公司", intPtr(85)),
		testLead("L-2", "上海贸易公司", intPtr(60)),
		testLead("L-3", "深圳科技集团", intPtr(92)),
		testLead("L-4", "杭州电商", nil),
		testLead("L-5", "广州科技", intPtr(85)),
	}
	leads[1].AssignedTo = "sales01"
	leads[4].AssignedTo = "sales01"
	leads[3].Status = model.LeadStatusInProgress
	for i, l := range leads {
		at(reg, baseTime.Add(time.Duration(i)*time.Hour))
		require.NoError(t, reg.Leads.Save(ctx, l, false))
	}
	require.NoError(t, reg.Flush(ctx))

	codes := func(ls []model.Lead) []string {
		res := make([]string, 0, len(ls))
		for _, l := range ls {
			res = append(res, l.LeadCode)
		}
		return res
	}

	found, err := reg.Leads.FindByLeadCode(ctx, "L-3")
	require.NoError(t, err)
	assert.Equal(t, 92, *found.Score)

	byStatus, err := reg.Leads.FindByStatus(ctx, model.LeadStatusNew)
	require.NoError(t, err)
	assert.Equal(t, []string{"L-5", "L-3", "L-2", "L-1"}, codes(byStatus))

	byAssignee, err := reg.Leads.FindByAssignedTo(ctx, "sales01")
	require.NoError(t, err)
	assert.Equal(t, []string{"L-5", "L-2"}, codes(byAssignee))

	byCompany, err := reg.Leads.FindByCompanyName(ctx, "科技")
	require.NoError(t, err)
	assert.Equal(t, []string{"L-5", "L-3", "L-1"}, codes(byCompany))

	high, err := reg.Leads.FindHighScore(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"L-3", "L-5", "L-1"}, codes(high))

	ranged, err := reg.Leads.FindByScoreRange(ctx, intPtr(60), intPtr(85))
	require.NoError(t, err)
	assert.Equal(t, []string{"L-5", "L-1", "L-2"}, codes(ranged))

	all, err := reg.Leads.FindByScoreRange(ctx, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"L-3", "L-5", "L-1", "L-2", "L-4"}, codes(all))
}

func TestLeadRepository_ReturnedCopiesAreDetached(t *testing.T) {
	ctx := context.Background()
	reg := newTestRegistry(t)

	l := testLead("L-1", "Acme", intPtr(50))
	require.NoError(t, reg.Leads.Save(ctx, l, true))

	*l.Score = 99
	found, err := reg.Leads.FindByLeadCode(ctx, "L-1")
	require.NoError(t, err)
	assert.Equal(t, 50, *found.Score)
}

func TestOpportunityRepository_Finders(t *testing.T) {
	ctx := context.Background()
	reg := newTestRegistry(t)

	c := testCustomer("CUS-1", "One")
	require.NoError(t, reg.Customers.Save(ctx, c, false))

	mk := func(code string, closeDate *time.Time) *model.Opportunity {
		o := model.NewOpportunity()
		o.OpportunityCode = code
		o.Name = "Deal " + code
		o.SetCustomer(c)
		o.AssignedTo = "sales02"
		o.ExpectedCloseDate = closeDate
		o.Amount = decimal.NewNullDecimal(decimal.RequireFromString("1000.00"))
		return o
	}
	later := mk("OPP-1", timePtr(baseTime.AddDate(0, 2, 0)))
	undated := mk("OPP-2", nil)
	sooner := mk("OPP-3", timePtr(baseTime.AddDate(0, 1, 0)))
	won := mk("OPP-4", timePtr(baseTime))
	won.Stage = model.OpportunityStageClosedWon
	won.Status = model.OpportunityStatusWon
	for i, o := range []*model.Opportunity{later, undated, sooner, won} {
		at(reg, baseTime.Add(time.Duration(i)*time.Hour))
		require.NoError(t, reg.Opportunities.Save(ctx, o, false))
	}
	require.NoError(t, reg.Flush(ctx))

	codes := func(os []model.Opportunity) []string {
		res := make([]string, 0, len(os))
		for _, o := range os {
			res = append(res, o.OpportunityCode)
		}
		return res
	}

	active, err := reg.Opportunities.FindActive(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"OPP-3", "OPP-1", "OPP-2"}, codes(active))

	byStage, err := reg.Opportunities.FindByStage(ctx, model.OpportunityStageClosedWon)
	require.NoError(t, err)
	assert.Equal(t, []string{"OPP-4"}, codes(byStage))

	byStatus, err := reg.Opportunities.FindByStatus(ctx, model.OpportunityStatusWon)
	require.NoError(t, err)
	assert.Equal(t, []string{"OPP-4"}, codes(byStatus))

	byAssignee, err := reg.Opportunities.FindByAssignedTo(ctx, "sales02")
	require.NoError(t, err)
	assert.Equal(t, []string{"OPP-4", "OPP-3", "OPP-1", "OPP-2"}, codes(byAssignee))

	byCustomer, err := reg.Opportunities.FindByCustomer(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"OPP-4", "OPP-3", "OPP-2", "OPP-1"}, codes(byCustomer))

	found, err := reg.Opportunities.FindByOpportunityCode(ctx, "OPP-1")
	require.NoError(t, err)
	assert.True(t, found.Amount.Valid)
	assert.Equal(t, "1000.00", model.FormatAmount(found.Amount.Decimal))
}

func TestOpportunityRepository_RemoveReferencedByOrder(t *testing.T) {
	ctx := context.Background()
	reg := newTestRegistry(t)

	c := testCustomer("CUS-1", "One")
	opp := model.NewOpportunity()
	opp.OpportunityCode = "OPP-1"
	opp.Name = "Deal"
	opp.SetCustomer(c)
	o := testOrder("ORD-1", c, model.OrderStatusPaid, "1.00")
	o.SetOpportunity(opp)

	require.NoError(t, reg.Customers.Save(ctx, c, false))
	require.NoError(t, reg.Opportunities.Save(ctx, opp, false))
	require.NoError(t, reg.Orders.Save(ctx, o, false))
	require.NoError(t, reg.Flush(ctx))
	assert.Equal(t, opp.ID, o.OpportunityID)

	byOpp, err := reg.Orders.FindByOpportunity(ctx, opp.ID)
	require.NoError(t, err)
	require.Len(t, byOpp, 1)
	assert.Equal(t, o.ID, byOpp[0].ID)

	err = reg.Opportunities.Remove(ctx, opp, true)
	assert.ErrorIs(t, err, ErrForeignKey)
}

func TestOrderRepository_Finders(t *testing.T) {
	ctx := context.Background()
	reg := newTestRegistry(t)

	c := testCustomer("CUS-1", "One")
	require.NoError(t, reg.Customers.Save(ctx, c, false))

	jan := testOrder("ORD-JAN", c, model.OrderStatusCompleted, "100.00")
	jan.OrderDate = time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	jan.JdOrderID = "JD-ORD-1"
	feb := testOrder("ORD-FEB", c, model.OrderStatusPendingPayment, "200.00")
	feb.OrderDate = time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	mar := testOrder("ORD-MAR", c, model.OrderStatusPendingPayment, "300.00")
	mar.OrderDate = time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	for _, o := range []*model.Order{jan, feb, mar} {
		require.NoError(t, reg.Orders.Save(ctx, o, false))
	}
	require.NoError(t, reg.Flush(ctx))

	numbers := func(os []model.Order) []string {
		res := make([]string, 0, len(os))
		for _, o := range os {
			res = append(res, o.OrderNumber)
		}
		return res
	}

	byCustomer, err := reg.Orders.FindByCustomer(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"ORD-MAR", "ORD-FEB", "ORD-JAN"}, numbers(byCustomer))

	pending, err := reg.Orders.FindPending(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"ORD-MAR", "ORD-FEB"}, numbers(pending))

	completed, err := reg.Orders.FindCompleted(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"ORD-JAN"}, numbers(completed))

	ranged, err := reg.Orders.FindByDateRange(ctx, jan.OrderDate, feb.OrderDate)
	require.NoError(t, err)
	assert.Equal(t, []string{"ORD-FEB", "ORD-JAN"}, numbers(ranged))

	byJd, err := reg.Orders.FindByJdOrderID(ctx, "JD-ORD-1")
	require.NoError(t, err)
	assert.Equal(t, jan.ID, byJd.ID)

	byNumber, err := reg.Orders.FindByOrderNumber(ctx, "ORD-FEB")
	require.NoError(t, err)
	assert.Equal(t, "200.00", model.FormatAmount(byNumber.TotalAmount))

	dup := testOrder("ORD-FEB", c, model.OrderStatusPaid, "1.00")
	err = reg.Orders.Save(ctx, dup, true)
	assert.ErrorIs(t, err, ErrDuplicateKey)
}

func TestProductRepository_Finders(t *testing.T) {
	ctx := context.Background()
	reg := newTestRegistry(t)

	mk := func(code, name, category string, status model.ProductStatus) *model.Product {
		p := model.NewProduct()
		p.ProductCode = code
		p.Name = name
		p.Category = category
		p.Status = status
		return p
	}
	for _, p := range []*model.Product{
		mk("P-3", "Phone", "mobile", model.ProductStatusOnSale),
		mk("P-1", "Laptop", "computer", model.ProductStatusOnSale),
		mk("P-2", "Desktop", "computer", model.ProductStatusOffShelf),
	} {
		require.NoError(t, reg.Products.Save(ctx, p, false))
	}
	require.NoError(t, reg.Flush(ctx))

	names := func(ps []model.Product) []string {
		res := make([]string, 0, len(ps))
		for _, p := range ps {
			res = append(res, p.Name)
		}
		return res
	}

	onSale, err := reg.Products.FindOnSale(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Laptop", "Phone"}, names(onSale))

	computers, err := reg.Products.FindByCategory(ctx, "computer")
	require.NoError(t, err)
	assert.Equal(t, []string{"Desktop", "Laptop"}, names(computers))

	offShelf, err := reg.Products.FindByStatus(ctx, model.ProductStatusOffShelf)
	require.NoError(t, err)
	assert.Equal(t, []string{"Desktop"}, names(offShelf))

	dup := mk("P-1", "Other", "", model.ProductStatusOnSale)
	err = reg.Products.Save(ctx, dup, true)
	require.ErrorIs(t, err, ErrDuplicateKey)
	assert.Contains(t, err.Error(), ConstraintProductCode)
}

func TestMemoryStore_WithinTxRollsBack(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()

	err := st.WithinTx(ctx, func(tx Store) error {
		require.NoError(t, tx.InsertCustomer(ctx, testCustomer("CUS-1", "One")))
		return ErrNotFound
	})
	require.ErrorIs(t, err, ErrNotFound)

	_, err = st.CustomerByCode(ctx, "CUS-1")
	assert.ErrorIs(t, err, ErrNotFound)

	err = st.WithinTx(ctx, func(tx Store) error {
		return tx.WithinTx(ctx, func(inner Store) error {
			return inner.InsertCustomer(ctx, testCustomer("CUS-2", "Two"))
		})
	})
	require.NoError(t, err)

	got, err := st.CustomerByCode(ctx, "CUS-2")
	require.NoError(t, err)
	assert.Equal(t, "Two", got.Name)
}

func TestMemoryStore_UpdateMissing(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()

	c := testCustomer("CUS-1", "One")
	c.ID = 7
	assert.ErrorIs(t, st.UpdateCustomer(ctx, c), ErrNotFound)
	assert.ErrorIs(t, st.DeleteCustomer(ctx, 7), ErrNotFound)
}

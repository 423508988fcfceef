package fixtures

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmeshcher/jdcrm/internal/model"
	"github.com/mmeshcher/jdcrm/internal/repository"
)

var now = time.Date(2024, 6, 10, 15, 30, 0, 0, time.UTC)

func newRegistry() *repository.Registry {
	sess := repository.NewSession(repository.NewMemoryStore(), nil)
	sess.SetClock(func() time.Time { return now })
	return repository.NewRegistry(sess)
}

func TestLoad(t *testing.T) {
	ctx := context.Background()
	reg := newRegistry()

	set, err := Load(ctx, reg, now)
	require.NoError(t, err)
	assert.Len(t, set.Customers, 5)
	assert.Len(t, set.Contacts, 5)
	assert.Len(t, set.Leads, 5)
	assert.Len(t, set.Opportunities, 5)
	assert.Len(t, set.Orders, 5)
	assert.Len(t, set.Products, 5)
	assert.Equal(t, 0, reg.Session.Pending())

	active, err := reg.Customers.FindActive(ctx)
	require.NoError(t, err)
	assert.Len(t, active, 4)

	tech, err := reg.Customers.FindByCustomerCode(ctx, "CUS-TECH-001")
	require.NoError(t, err)

	primary, err := reg.Contacts.FindPrimaryByCustomer(ctx, tech.ID)
	require.NoError(t, err)
	assert.Equal(t, "王志强", primary.Name)

	total, err := reg.Orders.TotalAmountByCustomer(ctx, tech.ID)
	require.NoError(t, err)
	assert.Equal(t, "125000.00", total)

	// Отменённый заказ не учитывается.
	zhang := set.Customers["CUS-IND-001"]
	total, err = reg.Orders.TotalAmountByCustomer(ctx, zhang.ID)
	require.NoError(t, err)
	assert.Equal(t, "49995.00", total)

	digital := set.Customers["CUS-DIGITAL-001"]
	total, err = reg.Orders.TotalAmountByCustomer(ctx, digital.ID)
	require.NoError(t, err)
	assert.Equal(t, "0.00", total)

	high, err := reg.Leads.FindHighScore(ctx)
	require.NoError(t, err)
	require.Len(t, high, 2)
	assert.Equal(t, "LEAD-2024-003", high[0].LeadCode)
	assert.Equal(t, "LEAD-2024-001", high[1].LeadCode)

	active2, err := reg.Opportunities.FindActive(ctx)
	require.NoError(t, err)
	require.Len(t, active2, 3)
	assert.Equal(t, "OPP-IND-001", active2[0].OpportunityCode)
	assert.Equal(t, "OPP-DIGITAL-001", active2[1].OpportunityCode)
	assert.Equal(t, "OPP-TECH-001", active2[2].OpportunityCode)

	onSale, err := reg.Products.FindOnSale(ctx)
	require.NoError(t, err)
	assert.Len(t, onSale, 3)

	cancelled, err := reg.Orders.FindByStatus(ctx, model.OrderStatusCancelled)
	require.NoError(t, err)
	require.Len(t, cancelled, 1)
	assert.Zero(t, cancelled[0].OpportunityID)
}

func TestLoad_LinksOrdersToOpportunities(t *testing.T) {
	ctx := context.Background()
	reg := newRegistry()

	set, err := Load(ctx, reg, now)
	require.NoError(t, err)

	opp := set.Opportunities["OPP-IND-002"]
	orders, err := reg.Orders.FindByOpportunity(ctx, opp.ID)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "ORD-2024-001", orders[0].OrderNumber)
	assert.Equal(t, now.Add(-week), orders[0].OrderDate)
}

func TestLoad_Twice(t *testing.T) {
	ctx := context.Background()
	reg := newRegistry()

	_, err := Load(ctx, reg, now)
	require.NoError(t, err)

	_, err = Load(ctx, reg, now)
	require.ErrorIs(t, err, repository.ErrDuplicateKey)
	assert.Equal(t, 0, reg.Session.Pending())
}

func TestBuild_RelativeDates(t *testing.T) {
	set := Build(now)
	today := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, today.Add(-week), *set.Opportunities["OPP-IND-002"].ExpectedCloseDate)
	assert.Equal(t, today.Add(3*week), *set.Opportunities["OPP-IND-001"].ExpectedCloseDate)

	for _, o := range set.Orders {
		if o.OrderNumber == "ORD-2024-004" {
			assert.Equal(t, today, o.OrderDate)
		}
	}
}

func TestLoad_KeepsCallerPendingWrites(t *testing.T) {
	ctx := context.Background()
	reg := newRegistry()

	c := model.NewCustomer()
	c.CustomerCode = "CUS-EXTRA-001"
	c.JdCustomerID = "JD-CUS-100"
	c.Name = "广州贸易公司"
	require.NoError(t, reg.Customers.Save(ctx, c, false))

	_, err := Load(ctx, reg, now)
	require.NoError(t, err)
	assert.Equal(t, 1, reg.Session.Pending())
	assert.Zero(t, c.ID)

	_, err = Load(ctx, reg, now)
	require.ErrorIs(t, err, repository.ErrDuplicateKey)
	assert.Equal(t, 1, reg.Session.Pending())

	require.NoError(t, reg.Flush(ctx))
	found, err := reg.Customers.FindByCustomerCode(ctx, "CUS-EXTRA-001")
	require.NoError(t, err)
	assert.Equal(t, c.ID, found.ID)
}

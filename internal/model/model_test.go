package model

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type enumCase struct {
	name    string
	values  []string
	labels  []string
	badges  []string
	parse   func(string) (string, error)
	options []Option
}

func collect[T ~string](values []T, label, badge func(T) string) ([]string, []string, []string) {
	var vs, ls, bs []string
	for _, v := range values {
		vs = append(vs, string(v))
		ls = append(ls, label(v))
		bs = append(bs, badge(v))
	}
	return vs, ls, bs
}

func parser[T ~string](fn func(string) (T, error)) func(string) (string, error) {
	return func(s string) (string, error) {
		v, err := fn(s)
		return string(v), err
	}
}

func allEnums() []enumCase {
	var cases []enumCase
	add := func(name string, vs, ls, bs []string, p func(string) (string, error), opts []Option) {
		cases = append(cases, enumCase{name: name, values: vs, labels: ls, badges: bs, parse: p, options: opts})
	}

	vs, ls, bs := collect(ContactStatusValues(), ContactStatus.Label, ContactStatus.Badge)
	add(ContactStatusName, vs, ls, bs, parser(ParseContactStatus), ContactStatusOptions())
	vs, ls, bs = collect(CustomerTypeValues(), CustomerType.Label, CustomerType.Badge)
	add(CustomerTypeName, vs, ls, bs, parser(ParseCustomerType), CustomerTypeOptions())
	vs, ls, bs = collect(CustomerStatusValues(), CustomerStatus.Label, CustomerStatus.Badge)
	add(CustomerStatusName, vs, ls, bs, parser(ParseCustomerStatus), CustomerStatusOptions())
	vs, ls, bs = collect(LeadSourceValues(), LeadSource.Label, LeadSource.Badge)
	add(LeadSourceName, vs, ls, bs, parser(ParseLeadSource), LeadSourceOptions())
	vs, ls, bs = collect(LeadStatusValues(), LeadStatus.Label, LeadStatus.Badge)
	add(LeadStatusName, vs, ls, bs, parser(ParseLeadStatus), LeadStatusOptions())
	vs, ls, bs = collect(OpportunityStageValues(), OpportunityStage.Label, OpportunityStage.Badge)
	add(OpportunityStageName, vs, ls, bs, parser(ParseOpportunityStage), OpportunityStageOptions())
	vs, ls, bs = collect(OpportunityStatusValues(), OpportunityStatus.Label, OpportunityStatus.Badge)
	add(OpportunityStatusName, vs, ls, bs, parser(ParseOpportunityStatus), OpportunityStatusOptions())
	vs, ls, bs = collect(OrderStatusValues(), OrderStatus.Label, OrderStatus.Badge)
	add(OrderStatusName, vs, ls, bs, parser(ParseOrderStatus), OrderStatusOptions())
	vs, ls, bs = collect(ProductStatusValues(), ProductStatus.Label, ProductStatus.Badge)
	add(ProductStatusName, vs, ls, bs, parser(ParseProductStatus), ProductStatusOptions())

	return cases
}

func TestEnums_RoundTrip(t *testing.T) {
	for _, ec := range allEnums() {
		t.Run(ec.name, func(t *testing.T) {
			for _, v := range ec.values {
				got, err := ec.parse(v)
				require.NoError(t, err)
				assert.Equal(t, v, got)
			}

			for _, invalid := range []string{"invalid_value", "", "null", "unknown", "ACTIVE"} {
				_, err := ec.parse(invalid)
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidEnumValue), "error %v must match ErrInvalidEnumValue", err)

				var enumErr *InvalidEnumValueError
				require.True(t, errors.As(err, &enumErr))
				assert.Equal(t, ec.name, enumErr.Enum)
				assert.Equal(t, invalid, enumErr.Value)
			}
		})
	}
}

func TestEnums_UniqueValuesAndLabels(t *testing.T) {
	for _, ec := range allEnums() {
		t.Run(ec.name, func(t *testing.T) {
			seenValues := map[string]bool{}
			seenLabels := map[string]bool{}
			for i, v := range ec.values {
				assert.False(t, seenValues[v], "duplicate value %q", v)
				assert.False(t, seenLabels[ec.labels[i]], "duplicate label %q", ec.labels[i])
				assert.NotEmpty(t, ec.labels[i])
				seenValues[v] = true
				seenLabels[ec.labels[i]] = true
			}
		})
	}
}

func TestEnums_BadgesAreValid(t *testing.T) {
	valid := map[string]bool{
		BadgeSuccess: true, BadgeWarning: true, BadgeDanger: true, BadgeInfo: true,
		BadgePrimary: true, BadgeSecondary: true, BadgeLight: true, BadgeDark: true,
	}
	for _, ec := range allEnums() {
		t.Run(ec.name, func(t *testing.T) {
			for i, b := range ec.badges {
				if ec.name == ContactStatusName {
					assert.Empty(t, b, "contact status carries no badge")
					continue
				}
				assert.True(t, valid[b], "badge %q of %q is not valid", b, ec.values[i])
			}
		})
	}
}

func TestEnums_Options(t *testing.T) {
	for _, ec := range allEnums() {
		t.Run(ec.name, func(t *testing.T) {
			require.Len(t, ec.options, len(ec.values))
			for i, o := range ec.options {
				assert.Equal(t, ec.values[i], o.Value)
				assert.Equal(t, ec.labels[i], o.Label)
				assert.Equal(t, ec.badges[i], o.Badge)
			}
		})
	}
}

func TestEnums_Labels(t *testing.T) {
	assert.Equal(t, "暂停", CustomerStatusSuspended.Label())
	assert.Equal(t, BadgeWarning, CustomerStatusSuspended.Badge())
	assert.Equal(t, "合同签署", OpportunityStageContractSigning.Label())
	assert.Equal(t, BadgeLight, OpportunityStageContractSigning.Badge())
	assert.Equal(t, "已退款", OrderStatusRefunded.Label())
	assert.Equal(t, "", OrderStatus("bogus").Label())
	assert.False(t, OrderStatus("bogus").Valid())
	assert.Equal(t, "pending_payment", OrderStatusPendingPayment.String())
}

func TestNewCustomer_Defaults(t *testing.T) {
	c := NewCustomer()
	assert.Equal(t, CustomerTypeIndividual, c.Type)
	assert.Equal(t, CustomerStatusActive, c.Status)
	assert.Zero(t, c.ID)
	assert.Equal(t, "Customer[0]: Unnamed (No Code)", c.String())

	c.ID = 7
	c.Name = "张明"
	c.CustomerCode = "CUS-IND-001"
	assert.Equal(t, "Customer[7]: 张明 (CUS-IND-001)", c.String())
}

func TestNewContact_Primary(t *testing.T) {
	c := NewContact()
	assert.False(t, c.IsPrimary)
	assert.Equal(t, ContactStatusActive, c.Status)

	c.IsPrimary = true
	assert.True(t, c.IsPrimary)
	c.IsPrimary = false
	assert.False(t, c.IsPrimary)

	c.Name = "王志强"
	assert.Equal(t, "王志强 (无职位)", c.String())
	c.Title = "首席执行官"
	assert.Equal(t, "王志强 (首席执行官)", c.String())
}

func TestContact_ResolveRefs(t *testing.T) {
	customer := NewCustomer()
	c := NewContact()
	c.SetCustomer(customer)
	assert.True(t, c.HasCustomer())
	assert.Zero(t, c.CustomerID)

	customer.ID = 42
	c.ResolveRefs()
	assert.Equal(t, int64(42), c.CustomerID)
}

func TestNewLead_Defaults(t *testing.T) {
	l := NewLead()
	assert.Equal(t, LeadStatusNew, l.Status)
	assert.Nil(t, l.Score)

	l.CompanyName = "深圳贸易有限公司"
	l.ContactName = "林总监"
	assert.Equal(t, "深圳贸易有限公司 (林总监)", l.String())
}

func TestNewOpportunity_Defaults(t *testing.T) {
	o := NewOpportunity()
	assert.Equal(t, OpportunityStageIdentifyNeeds, o.Stage)
	assert.Equal(t, OpportunityStatusActive, o.Status)
	assert.False(t, o.Amount.Valid)
	assert.Equal(t, "Opportunity[0]: Unnamed (No Code) - 识别需求", o.String())

	o.Stage = OpportunityStageClosedWon
	o.Stage = OpportunityStageIdentifyNeeds
	assert.Equal(t, OpportunityStageIdentifyNeeds, o.Stage, "stage transitions are not guarded")
}

func TestNewOrder_Defaults(t *testing.T) {
	before := time.Now()
	o := NewOrder()
	after := time.Now()

	assert.Equal(t, OrderStatusPendingPayment, o.Status)
	assert.Equal(t, "0.00", FormatAmount(o.PaidAmount))
	assert.Equal(t, "0.00", FormatAmount(o.DiscountAmount))
	assert.False(t, o.OrderDate.Before(before))
	assert.False(t, o.OrderDate.After(after))
	assert.Equal(t, "Order[0]: No Number - 待支付 (¥0.00)", o.String())
}

func TestOrder_OpenBalance(t *testing.T) {
	o := NewOrder()
	o.TotalAmount = decimal.RequireFromString("49995.00")
	o.PaidAmount = decimal.RequireFromString("40000.10")
	o.DiscountAmount = decimal.RequireFromString("500.00")

	assert.Equal(t, "9494.90", FormatAmount(o.OpenBalance()))
}

func TestProduct_String(t *testing.T) {
	p := NewProduct()
	assert.Equal(t, "", p.String())
	assert.Equal(t, "0.00", FormatAmount(p.Price))
	assert.True(t, p.IsOnSale())

	p.ProductCode = "JD-LAPTOP-001"
	assert.Equal(t, "JD-LAPTOP-001", p.String())

	p.Name = "ThinkPad X1 Carbon 商务笔记本"
	assert.Equal(t, "ThinkPad X1 Carbon 商务笔记本", p.String())

	p.Status = ProductStatusOutOfStock
	assert.True(t, p.IsOutOfStock())
	assert.False(t, p.IsOffShelf())
}

func TestDiffProduct(t *testing.T) {
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	prev := NewProduct()
	prev.ID = 3
	prev.ProductCode = "JD-PHONE-001"
	prev.Name = "iPhone 14 Pro"
	prev.Price = decimal.RequireFromString("7999")

	next := *prev
	next.Price = decimal.RequireFromString("7499.00")
	next.Status = ProductStatusOffShelf
	next.Description = "untracked"
	next.UpdatedBy = "admin"
	next.UpdateTime = now

	changes := DiffProduct(prev, &next)
	require.Len(t, changes, 2)
	assert.Equal(t, ProductChange{
		ProductID: 3, Field: ProductFieldPrice, OldValue: "7999.00", NewValue: "7499.00",
		ChangedBy: "admin", ChangedAt: now,
	}, changes[0])
	assert.Equal(t, ProductFieldStatus, changes[1].Field)
	assert.Equal(t, "on_sale", changes[1].OldValue)
	assert.Equal(t, "off_shelf", changes[1].NewValue)
}

func TestTimestampsAndBlame(t *testing.T) {
	t1 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Hour)

	p := NewProduct()
	p.Touch(t1)
	p.Stamp("alice")
	p.Touch(t2)
	p.Stamp("bob")

	assert.Equal(t, t1, p.CreateTime)
	assert.Equal(t, t2, p.UpdateTime)
	assert.Equal(t, "alice", p.CreatedBy)
	assert.Equal(t, "bob", p.UpdatedBy)
}

package validation

import "github.com/mmeshcher/jdcrm/internal/model"

// Customer проверяет поля клиента.
func Customer(c *model.Customer) error {
	ch := newChecker("customer")

	ch.notBlank("customerCode", c.CustomerCode, "")
	ch.maxLen("customerCode", c.CustomerCode, 100, "")
	ch.notBlank("name", c.Name, "")
	ch.maxLen("name", c.Name, 255, "")
	ch.choice("type", c.Type.Valid(), "")
	ch.email("email", c.Email)
	ch.maxLen("email", c.Email, 255, "")
	ch.maxLen("phone", c.Phone, 50, "")
	ch.maxLen("address", c.Address, 1000, "")
	ch.choice("status", c.Status.Valid(), "")
	ch.notBlank("jdCustomerId", c.JdCustomerID, "")
	ch.maxLen("jdCustomerId", c.JdCustomerID, 100, "")

	return ch.err()
}

// Contact проверяет поля контакта.
func Contact(c *model.Contact) error {
	ch := newChecker("contact")

	ch.notNull("customer", c.HasCustomer())
	ch.notBlank("name", c.Name, "")
	ch.maxLen("name", c.Name, 100, "")
	ch.maxLen("title", c.Title, 100, "")
	ch.email("email", c.Email)
	ch.maxLen("email", c.Email, 255, "")
	ch.maxLen("phone", c.Phone, 20, "")
	ch.maxLen("mobile", c.Mobile, 20, "")
	ch.choice("status", c.Status.Valid(), "")

	return ch.err()
}

// Lead проверяет поля лида.
func Lead(l *model.Lead) error {
	ch := newChecker("lead")

	ch.notBlank("leadCode", l.LeadCode, "")
	ch.maxLen("leadCode", l.LeadCode, 50, "")
	ch.notBlank("companyName", l.CompanyName, "")
	ch.maxLen("companyName", l.CompanyName, 200, "")
	ch.notBlank("contactName", l.ContactName, "")
	ch.maxLen("contactName", l.ContactName, 100, "")
	ch.maxLen("title", l.Title, 100, "")
	ch.email("email", l.Email)
	ch.maxLen("email", l.Email, 255, "")
	ch.maxLen("phone", l.Phone, 20, "")
	if l.Source == "" {
		ch.notNull("source", false)
	} else {
		ch.choice("source", l.Source.Valid(), "")
	}
	ch.choice("status", l.Status.Valid(), "")
	ch.intRange("score", l.Score, 0, 100)
	ch.maxLen("notes", l.Notes, 65535, "")
	ch.maxLen("assignedTo", l.AssignedTo, 100, "")

	return ch.err()
}

// Opportunity проверяет поля сделки.
func Opportunity(o *model.Opportunity) error {
	ch := newChecker("opportunity")

	ch.notBlank("opportunityCode", o.OpportunityCode, "")
	ch.maxLen("opportunityCode", o.OpportunityCode, 100, "")
	ch.notNull("customer", o.HasCustomer())
	ch.notBlank("name", o.Name, "")
	ch.maxLen("name", o.Name, 255, "")
	ch.maxLen("description", o.Description, 2000, "")
	ch.choice("stage", o.Stage.Valid(), "")
	if o.Amount.Valid {
		ch.nonNegative("amount", o.Amount.Decimal, "")
		ch.money("amount", o.Amount.Decimal)
	}
	ch.intRange("probability", o.Probability, 0, 100)
	ch.maxLen("assignedTo", o.AssignedTo, 100, "")
	ch.maxLen("source", o.Source, 100, "")
	ch.choice("status", o.Status.Valid(), "")

	return ch.err()
}

// Order проверяет поля заказа.
func Order(o *model.Order) error {
	ch := newChecker("order")

	ch.notBlank("orderNumber", o.OrderNumber, "")
	ch.maxLen("orderNumber", o.OrderNumber, 100, "")
	ch.notNull("customer", o.HasCustomer())
	ch.choice("status", o.Status.Valid(), "")
	ch.nonNegative("totalAmount", o.TotalAmount, "")
	ch.nonNegative("paidAmount", o.PaidAmount, "")
	ch.nonNegative("discountAmount", o.DiscountAmount, "")
	ch.money("totalAmount", o.TotalAmount)
	ch.money("paidAmount", o.PaidAmount)
	ch.money("discountAmount", o.DiscountAmount)
	ch.notNull("orderDate", !o.OrderDate.IsZero())
	ch.maxLen("paymentMethod", o.PaymentMethod, 100, "")
	ch.maxLen("shippingAddress", o.ShippingAddress, 1000, "")
	ch.maxLen("jdOrderId", o.JdOrderID, 100, "")
	ch.maxLen("notes", o.Notes, 65535, "")

	return ch.err()
}

// Product проверяет поля товара.
func Product(p *model.Product) error {
	ch := newChecker("product")

	ch.notBlank("productCode", p.ProductCode, "产品编码不能为空")
	ch.maxLen("productCode", p.ProductCode, 100, "产品编码长度不能超过100个字符")
	ch.notBlank("name", p.Name, "产品名称不能为空")
	ch.maxLen("name", p.Name, 200, "产品名称长度不能超过200个字符")
	ch.maxLen("category", p.Category, 100, "产品分类长度不能超过100个字符")
	ch.maxLen("description", p.Description, 5000, "产品描述长度不能超过5000个字符")
	ch.nonNegative("price", p.Price, "价格必须大于或等于0")
	ch.money("price", p.Price)
	ch.maxLen("unit", p.Unit, 50, "单位长度不能超过50个字符")
	ch.choice("status", p.Status.Valid(), "状态值无效")
	ch.maxLen("jdProductId", p.JdProductID, 100, "京东产品ID长度不能超过100个字符")

	return ch.err()
}

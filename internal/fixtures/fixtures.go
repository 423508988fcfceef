// Package fixtures содержит демонстрационный набор данных CRM.
package fixtures

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mmeshcher/jdcrm/internal/model"
	"github.com/mmeshcher/jdcrm/internal/repository"
)

// Set содержит созданные сущности, индексированные по кодам.
type Set struct {
	Customers     map[string]*model.Customer
	Contacts      []*model.Contact
	Leads         []*model.Lead
	Opportunities map[string]*model.Opportunity
	Orders        []*model.Order
	Products      []*model.Product
}

type customerRow struct {
	code, jdID, name      string
	typ                   model.CustomerType
	email, phone, address string
	status                model.CustomerStatus
}

var customerRows = []customerRow{
	{"CUS-TECH-001", "JD-CUS-001", "北京科技有限公司", model.CustomerTypeEnterprise,
		"contact@tech-corp.com", "010-12345678", "北京市海淀区中关村大街123号科技大厦15层", model.CustomerStatusActive},
	{"CUS-DIGITAL-001", "JD-CUS-002", "上海数字化解决方案集团", model.CustomerTypeEnterprise,
		"business@digital-solutions.com", "021-87654321", "上海市浦东新区陆家嘴金融贸易区世纪大道1000号", model.CustomerStatusActive},
	{"CUS-IND-001", "JD-CUS-003", "张明", model.CustomerTypeIndividual,
		"zhangming@email.com", "138-0000-1234", "广东省深圳市南山区科技园南区", model.CustomerStatusActive},
	{"CUS-STARTUP-001", "JD-CUS-004", "杭州创新科技创业公司", model.CustomerTypeEnterprise,
		"info@startup-inc.com", "0571-23456789", "浙江省杭州市西湖区文三路创业大厦", model.CustomerStatusSuspended},
	{"CUS-IND-002", "JD-CUS-005", "李小红", model.CustomerTypeIndividual,
		"lixiaohong@email.com", "186-5555-6789", "四川省成都市高新区天府大道软件园", model.CustomerStatusActive},
}

type contactRow struct {
	customer, name, title, email, phone, mobile string
	primary                                     bool
	status                                      model.ContactStatus
}

var contactRows = []contactRow{
	{"CUS-TECH-001", "王志强", "首席执行官", "ceo@tech-corp.com", "010-12345678", "138-1234-5678", true, model.ContactStatusActive},
	{"CUS-TECH-001", "李技术", "首席技术官", "cto@tech-corp.com", "010-12345679", "138-1234-5679", false, model.ContactStatusActive},
	{"CUS-DIGITAL-001", "陈总经理", "总经理", "md@digital-solutions.com", "021-87654321", "139-8765-4321", true, model.ContactStatusActive},
	{"CUS-DIGITAL-001", "赵项目", "项目经理", "pm@digital-solutions.com", "021-87654322", "139-8765-4322", false, model.ContactStatusActive},
	{"CUS-STARTUP-001", "孙创始人", "创始人兼CEO", "founder@startup-inc.com", "0571-23456789", "158-2345-6789", true, model.ContactStatusInactive},
}

type leadRow struct {
	code, company, contact, title, email, phone string
	source                                      model.LeadSource
	status                                      model.LeadStatus
	score                                       int
	notes, assignee                             string
}

var leadRows = []leadRow{
	{"LEAD-2024-001", "深圳贸易有限公司", "林总监", "技术总监", "linzj@sz-trade.com", "0755-12345678",
		model.LeadSourceWebsite, model.LeadStatusNew, 85, "客户需要搭建B2B电商平台，预算100万，预计6个月内启动项目", "销售经理张三"},
	{"LEAD-2024-002", "广州科技创新公司", "刘产品经理", "产品经理", "liupm@gz-tech.com", "020-87654321",
		model.LeadSourceReferral, model.LeadStatusInProgress, 70, "需要开发配送管理移动应用，已进行初步沟通", "销售经理李四"},
	{"LEAD-2024-003", "武汉制造集团", "吴副总", "副总经理", "wuvp@wh-manufacturing.com", "027-23456789",
		model.LeadSourceAdvertisement, model.LeadStatusConverted, 90, "大型制造企业，需要完整的数字化转型方案，项目预算500万", "高级销售顾问王五"},
	{"LEAD-2024-004", "个人工作室", "周设计师", "自由设计师", "zhoudesigner@email.com", "185-3333-4444",
		model.LeadSourcePhone, model.LeadStatusClosed, 25, "个人客户，项目规模较小，预算有限", "客服专员赵六"},
	{"LEAD-2024-005", "成都金融服务公司", "钱IT总监", "IT总监", "qianit@cd-finance.com", "028-12345678",
		model.LeadSourceOther, model.LeadStatusClosed, 60, "云迁移项目，最终选择了其他供应商", "技术销售孙七"},
}

type opportunityRow struct {
	code, customer, name, description string
	stage                             model.OpportunityStage
	amount                            string
	probability                       int
	closeIn                           time.Duration
	assignee, source                  string
	status                            model.OpportunityStatus
}

const (
	day  = 24 * time.Hour
	week = 7 * day
)

var opportunityRows = []opportunityRow{
	{"OPP-TECH-001", "CUS-TECH-001", "企业ERP系统升级改造项目",
		"为北京科技有限公司提供全套ERP系统升级改造服务，包括需求分析、系统设计、开发实施和培训支持",
		model.OpportunityStageBusinessNegotiation, "800000.00", 75, 60 * day, "高级销售经理张经理", "客户主动询价", model.OpportunityStatusActive},
	{"OPP-DIGITAL-001", "CUS-DIGITAL-001", "大数据分析平台建设",
		"构建企业级大数据分析平台，支持实时数据处理和智能分析",
		model.OpportunityStageContractSigning, "1200000.00", 90, 30 * day, "技术总监李总监", "合作伙伴推荐", model.OpportunityStatusActive},
	{"OPP-IND-001", "CUS-IND-001", "高端商务笔记本采购",
		"采购5台ThinkPad X1 Carbon笔记本用于团队办公",
		model.OpportunityStageSolutionDesign, "49995.00", 60, 3 * week, "销售代表王代表", "线上查询", model.OpportunityStatusActive},
	{"OPP-STARTUP-001", "CUS-STARTUP-001", "技术架构咨询服务",
		"为创业公司提供技术架构设计和系统规划咨询服务",
		model.OpportunityStageIdentifyNeeds, "180000.00", 30, 6 * week, "技术顾问赵顾问", "会展推广", model.OpportunityStatusLost},
	{"OPP-IND-002", "CUS-IND-002", "iPhone 14 Pro 采购",
		"采购2台iPhone 14 Pro，256GB版本",
		model.OpportunityStageClosedWon, "15998.00", 100, -week, "销售专员孙专员", "朋友推荐", model.OpportunityStatusWon},
}

type orderRow struct {
	number, customer, opportunity string
	status                        model.OrderStatus
	total, paid, discount         string
	age                           time.Duration
	payment, address, jdID, notes string
}

var orderRows = []orderRow{
	{"ORD-2024-001", "CUS-IND-002", "OPP-IND-002", model.OrderStatusCompleted, "15998.00", "15998.00", "0.00", week,
		"支付宝", "四川省成都市高新区天府大道软件园A座1205室", "JD202401001", "客户要求原装正品，已按时发货并送达"},
	{"ORD-2024-002", "CUS-IND-001", "OPP-IND-001", model.OrderStatusShipping, "49995.00", "49995.00", "500.00", 3 * day,
		"银行转账", "广东省深圳市南山区科技园南区B栋802室", "JD202401002", "批量采购，享受企业客户折扣，正在配送中"},
	{"ORD-2024-003", "CUS-TECH-001", "OPP-TECH-001", model.OrderStatusPaid, "125000.00", "125000.00", "5000.00", day,
		"对公转账", "北京市海淀区中关村大街123号科技大厦15层", "JD202401003", "企业级采购，包含服务器、网络设备等，等待安排发货"},
	{"ORD-2024-004", "CUS-DIGITAL-001", "OPP-DIGITAL-001", model.OrderStatusPendingPayment, "580000.00", "0.00", "20000.00", 0,
		"银行承兑汇票", "上海市浦东新区陆家嘴金融贸易区世纪大道1000号", "JD202401004", "大型软件许可采购，客户正在走审批流程"},
	{"ORD-2024-005", "CUS-IND-001", "", model.OrderStatusCancelled, "1999.00", "0.00", "0.00", 5 * day,
		"微信支付", "广东省深圳市南山区科技园南区B栋802室", "JD202401005", "客户取消订单，原因：找到更优惠的价格"},
}

type productRow struct {
	code, name, category, description, price, unit string
	status                                         model.ProductStatus
	jdID                                           string
}

var productRows = []productRow{
	{"JD-LAPTOP-001", "ThinkPad X1 Carbon 商务笔记本", "电脑数码",
		"轻薄商务笔记本，14英寸高清屏幕，第11代Intel酷睿处理器，16GB内存，512GB固态硬盘", "9999.00", "台", model.ProductStatusOnSale, "JD100012345678"},
	{"JD-PHONE-001", "iPhone 14 Pro 智能手机", "手机通讯",
		"6.1英寸Super Retina XDR显示屏，A16仿生芯片，专业级摄像头系统", "7999.00", "部", model.ProductStatusOnSale, "JD100087654321"},
	{"JD-TABLET-001", "iPad Air 平板电脑", "电脑数码",
		"10.9英寸Liquid视网膜显示屏，M1芯片，全天候电池续航", "4399.00", "台", model.ProductStatusOnSale, "JD100011223344"},
	{"JD-HEADPHONES-001", "AirPods Pro 无线降噪耳机", "数码配件",
		"主动降噪，通透模式，空间音频，最长6小时聆听时间", "1999.00", "副", model.ProductStatusOutOfStock, "JD100055667788"},
	{"JD-CAMERA-001", "Sony A7 III 全画幅微单相机", "摄影摄像",
		"2420万有效像素，5轴防抖，4K视频录制，693个对焦点", "12999.00", "台", model.ProductStatusOffShelf, "JD100099887766"},
}

// Build создаёт сущности демонстрационного набора; даты отсчитываются от now.
func Build(now time.Time) *Set {
	set := &Set{
		Customers:     make(map[string]*model.Customer, len(customerRows)),
		Opportunities: make(map[string]*model.Opportunity, len(opportunityRows)),
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	for _, r := range customerRows {
		c := model.NewCustomer()
		c.CustomerCode = r.code
		c.JdCustomerID = r.jdID
		c.Name = r.name
		c.Type = r.typ
		c.Email = r.email
		c.Phone = r.phone
		c.Address = r.address
		c.Status = r.status
		set.Customers[r.code] = c
	}

	for _, r := range contactRows {
		ct := model.NewContact()
		ct.SetCustomer(set.Customers[r.customer])
		ct.Name = r.name
		ct.Title = r.title
		ct.Email = r.email
		ct.Phone = r.phone
		ct.Mobile = r.mobile
		ct.IsPrimary = r.primary
		ct.Status = r.status
		set.Contacts = append(set.Contacts, ct)
	}

	for _, r := range leadRows {
		l := model.NewLead()
		l.LeadCode = r.code
		l.CompanyName = r.company
		l.ContactName = r.contact
		l.Title = r.title
		l.Email = r.email
		l.Phone = r.phone
		l.Source = r.source
		l.Status = r.status
		score := r.score
		l.Score = &score
		l.Notes = r.notes
		l.AssignedTo = r.assignee
		set.Leads = append(set.Leads, l)
	}

	for _, r := range opportunityRows {
		o := model.NewOpportunity()
		o.OpportunityCode = r.code
		o.SetCustomer(set.Customers[r.customer])
		o.Name = r.name
		o.Description = r.description
		o.Stage = r.stage
		o.Amount = decimal.NewNullDecimal(decimal.RequireFromString(r.amount))
		probability := r.probability
		o.Probability = &probability
		closeDate := today.Add(r.closeIn)
		o.ExpectedCloseDate = &closeDate
		o.AssignedTo = r.assignee
		o.Source = r.source
		o.Status = r.status
		set.Opportunities[r.code] = o
	}

	for _, r := range orderRows {
		o := model.NewOrder()
		o.OrderNumber = r.number
		o.SetCustomer(set.Customers[r.customer])
		if r.opportunity != "" {
			o.SetOpportunity(set.Opportunities[r.opportunity])
		}
		o.Status = r.status
		o.TotalAmount = decimal.RequireFromString(r.total)
		o.PaidAmount = decimal.RequireFromString(r.paid)
		o.DiscountAmount = decimal.RequireFromString(r.discount)
		if r.age == 0 {
			o.OrderDate = today
		} else {
			o.OrderDate = now.Add(-r.age)
		}
		o.PaymentMethod = r.payment
		o.ShippingAddress = r.address
		o.JdOrderID = r.jdID
		o.Notes = r.notes
		set.Orders = append(set.Orders, o)
	}

	for _, r := range productRows {
		p := model.NewProduct()
		p.ProductCode = r.code
		p.Name = r.name
		p.Category = r.category
		p.Description = r.description
		p.Price = decimal.RequireFromString(r.price)
		p.Unit = r.unit
		p.Status = r.status
		p.JdProductID = r.jdID
		set.Products = append(set.Products, p)
	}

	return set
}

// Load ставит в очередь весь демонстрационный набор и применяет его одной транзакцией.
// Набор загружается через отдельную сессию, поэтому отложенные записи reg не затрагиваются.
func Load(ctx context.Context, reg *repository.Registry, now time.Time) (*Set, error) {
	set := Build(now)
	own := repository.NewRegistry(reg.Session.Fork())

	if err := stage(ctx, own, set); err != nil {
		return nil, err
	}

	if err := own.Flush(ctx); err != nil {
		return nil, fmt.Errorf("flush fixtures: %w", err)
	}

	return set, nil
}

func stage(ctx context.Context, reg *repository.Registry, set *Set) error {
	for _, r := range customerRows {
		if err := reg.Customers.Save(ctx, set.Customers[r.code], false); err != nil {
			return fmt.Errorf("stage customer %s: %w", r.code, err)
		}
	}
	for _, c := range set.Contacts {
		if err := reg.Contacts.Save(ctx, c, false); err != nil {
			return fmt.Errorf("stage contact %s: %w", c.Name, err)
		}
	}
	for _, l := range set.Leads {
		if err := reg.Leads.Save(ctx, l, false); err != nil {
			return fmt.Errorf("stage lead %s: %w", l.LeadCode, err)
		}
	}
	for _, r := range opportunityRows {
		if err := reg.Opportunities.Save(ctx, set.Opportunities[r.code], false); err != nil {
			return fmt.Errorf("stage opportunity %s: %w", r.code, err)
		}
	}
	for _, o := range set.Orders {
		if err := reg.Orders.Save(ctx, o, false); err != nil {
			return fmt.Errorf("stage order %s: %w", o.OrderNumber, err)
		}
	}
	for _, p := range set.Products {
		if err := reg.Products.Save(ctx, p, false); err != nil {
			return fmt.Errorf("stage product %s: %w", p.ProductCode, err)
		}
	}
	return nil
}

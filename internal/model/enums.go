package model

// ContactStatus описывает статус контакта.
type ContactStatus string

const (
	ContactStatusActive   ContactStatus = "active"
	ContactStatusInactive ContactStatus = "inactive"
)

var contactStatusSet = newEnumSet(ContactStatusName,
	enumMember[ContactStatus]{ContactStatusActive, "活跃", ""},
	enumMember[ContactStatus]{ContactStatusInactive, "非活跃", ""},
)

// ParseContactStatus разбирает сохранённое строковое значение.
func ParseContactStatus(s string) (ContactStatus, error) { return contactStatusSet.parse(s) }

func (v ContactStatus) String() string { return string(v) }

// Label возвращает отображаемое название значения.
func (v ContactStatus) Label() string { return contactStatusSet.label(v) }

// Badge возвращает класс бейджа для интерфейса.
func (v ContactStatus) Badge() string { return contactStatusSet.badge(v) }

// Valid сообщает, входит ли значение в перечисление.
func (v ContactStatus) Valid() bool { return contactStatusSet.valid(v) }

// ContactStatusValues возвращает все значения в порядке объявления.
func ContactStatusValues() []ContactStatus { return contactStatusSet.values() }

// ContactStatusOptions возвращает значения для выпадающих списков.
func ContactStatusOptions() []Option { return contactStatusSet.options() }

// CustomerType описывает тип клиента.
type CustomerType string

const (
	CustomerTypeIndividual CustomerType = "individual"
	CustomerTypeEnterprise CustomerType = "enterprise"
)

var customerTypeSet = newEnumSet(CustomerTypeName,
	enumMember[CustomerType]{CustomerTypeIndividual, "个人", BadgeInfo},
	enumMember[CustomerType]{CustomerTypeEnterprise, "企业", BadgePrimary},
)

// ParseCustomerType разбирает сохранённое строковое значение.
func ParseCustomerType(s string) (CustomerType, error) { return customerTypeSet.parse(s) }

func (v CustomerType) String() string { return string(v) }

// Label возвращает отображаемое название значения.
func (v CustomerType) Label() string { return customerTypeSet.label(v) }

// Badge возвращает класс бейджа для интерфейса.
func (v CustomerType) Badge() string { return customerTypeSet.badge(v) }

// Valid сообщает, входит ли значение в перечисление.
func (v CustomerType) Valid() bool { return customerTypeSet.valid(v) }

// CustomerTypeValues возвращает все значения в порядке объявления.
func CustomerTypeValues() []CustomerType { return customerTypeSet.values() }

// CustomerTypeOptions возвращает значения для выпадающих списков.
func CustomerTypeOptions() []Option { return customerTypeSet.options() }

// CustomerStatus описывает статус клиента.
type CustomerStatus string

const (
	CustomerStatusActive    CustomerStatus = "active"
	CustomerStatusSuspended CustomerStatus = "suspended"
	CustomerStatusClosed    CustomerStatus = "closed"
)

var customerStatusSet = newEnumSet(CustomerStatusName,
	enumMember[CustomerStatus]{CustomerStatusActive, "活跃", BadgeSuccess},
	enumMember[CustomerStatus]{CustomerStatusSuspended, "暂停", BadgeWarning},
	enumMember[CustomerStatus]{CustomerStatusClosed, "关闭", BadgeDanger},
)

// ParseCustomerStatus разбирает сохранённое строковое значение.
func ParseCustomerStatus(s string) (CustomerStatus, error) { return customerStatusSet.parse(s) }

func (v CustomerStatus) String() string { return string(v) }

// Label возвращает отображаемое название значения.
func (v CustomerStatus) Label() string { return customerStatusSet.label(v) }

// Badge возвращает класс бейджа для интерфейса.
func (v CustomerStatus) Badge() string { return customerStatusSet.badge(v) }

// Valid сообщает, входит ли значение в перечисление.
func (v CustomerStatus) Valid() bool { return customerStatusSet.valid(v) }

// CustomerStatusValues возвращает все значения в порядке объявления.
func CustomerStatusValues() []CustomerStatus { return customerStatusSet.values() }

// CustomerStatusOptions возвращает значения для выпадающих списков.
func CustomerStatusOptions() []Option { return customerStatusSet.options() }

// LeadSource описывает источник лида.
type LeadSource string

const (
	LeadSourceWebsite       LeadSource = "website"
	LeadSourcePhone         LeadSource = "phone"
	LeadSourceAdvertisement LeadSource = "advertisement"
	LeadSourceReferral      LeadSource = "referral"
	LeadSourceOther         LeadSource = "other"
)

var leadSourceSet = newEnumSet(LeadSourceName,
	enumMember[LeadSource]{LeadSourceWebsite, "网站", BadgePrimary},
	enumMember[LeadSource]{LeadSourcePhone, "电话", BadgeInfo},
	enumMember[LeadSource]{LeadSourceAdvertisement, "广告", BadgeWarning},
	enumMember[LeadSource]{LeadSourceReferral, "推荐", BadgeSuccess},
	enumMember[LeadSource]{LeadSourceOther, "其他", BadgeSecondary},
)

// ParseLeadSource разбирает сохранённое строковое значение.
func ParseLeadSource(s string) (LeadSource, error) { return leadSourceSet.parse(s) }

func (v LeadSource) String() string { return string(v) }

// Label возвращает отображаемое название значения.
func (v LeadSource) Label() string { return leadSourceSet.label(v) }

// Badge возвращает класс бейджа для интерфейса.
func (v LeadSource) Badge() string { return leadSourceSet.badge(v) }

// Valid сообщает, входит ли значение в перечисление.
func (v LeadSource) Valid() bool { return leadSourceSet.valid(v) }

// LeadSourceValues возвращает все значения в порядке объявления.
func LeadSourceValues() []LeadSource { return leadSourceSet.values() }

// LeadSourceOptions возвращает значения для выпадающих списков.
func LeadSourceOptions() []Option { return leadSourceSet.options() }

// LeadStatus описывает статус лида.
type LeadStatus string

const (
	LeadStatusNew        LeadStatus = "new"
	LeadStatusInProgress LeadStatus = "in_progress"
	LeadStatusConverted  LeadStatus = "converted"
	LeadStatusClosed     LeadStatus = "closed"
)

var leadStatusSet = newEnumSet(LeadStatusName,
	enumMember[LeadStatus]{LeadStatusNew, "新建", BadgeInfo},
	enumMember[LeadStatus]{LeadStatusInProgress, "跟进中", BadgeWarning},
	enumMember[LeadStatus]{LeadStatusConverted, "已转化", BadgeSuccess},
	enumMember[LeadStatus]{LeadStatusClosed, "已关闭", BadgeSecondary},
)

// ParseLeadStatus разбирает сохранённое строковое значение.
func ParseLeadStatus(s string) (LeadStatus, error) { return leadStatusSet.parse(s) }

func (v LeadStatus) String() string { return string(v) }

// Label возвращает отображаемое название значения.
func (v LeadStatus) Label() string { return leadStatusSet.label(v) }

// Badge возвращает класс бейджа для интерфейса.
func (v LeadStatus) Badge() string { return leadStatusSet.badge(v) }

// Valid сообщает, входит ли значение в перечисление.
func (v LeadStatus) Valid() bool { return leadStatusSet.valid(v) }

// LeadStatusValues возвращает все значения в порядке объявления.
func LeadStatusValues() []LeadStatus { return leadStatusSet.values() }

// LeadStatusOptions возвращает значения для выпадающих списков.
func LeadStatusOptions() []Option { return leadStatusSet.options() }

// OpportunityStage описывает этап сделки.
type OpportunityStage string

const (
	OpportunityStageIdentifyNeeds       OpportunityStage = "identify_needs"
	OpportunityStageSolutionDesign      OpportunityStage = "solution_design"
	OpportunityStageBusinessNegotiation OpportunityStage = "business_negotiation"
	OpportunityStageContractSigning     OpportunityStage = "contract_signing"
	OpportunityStageClosedWon           OpportunityStage = "closed_won"
	OpportunityStageClosedLost          OpportunityStage = "closed_lost"
)

var opportunityStageSet = newEnumSet(OpportunityStageName,
	enumMember[OpportunityStage]{OpportunityStageIdentifyNeeds, "识别需求", BadgeInfo},
	enumMember[OpportunityStage]{OpportunityStageSolutionDesign, "方案制作", BadgePrimary},
	enumMember[OpportunityStage]{OpportunityStageBusinessNegotiation, "商务谈判", BadgeWarning},
	enumMember[OpportunityStage]{OpportunityStageContractSigning, "合同签署", BadgeLight},
	enumMember[OpportunityStage]{OpportunityStageClosedWon, "已成交", BadgeSuccess},
	enumMember[OpportunityStage]{OpportunityStageClosedLost, "已关闭", BadgeDanger},
)

// ParseOpportunityStage разбирает сохранённое строковое значение.
func ParseOpportunityStage(s string) (OpportunityStage, error) { return opportunityStageSet.parse(s) }

func (v OpportunityStage) String() string { return string(v) }

// Label возвращает отображаемое название значения.
func (v OpportunityStage) Label() string { return opportunityStageSet.label(v) }

// Badge возвращает класс бейджа для интерфейса.
func (v OpportunityStage) Badge() string { return opportunityStageSet.badge(v) }

// Valid сообщает, входит ли значение в перечисление.
func (v OpportunityStage) Valid() bool { return opportunityStageSet.valid(v) }

// OpportunityStageValues возвращает все значения в порядке объявления.
func OpportunityStageValues() []OpportunityStage { return opportunityStageSet.values() }

// OpportunityStageOptions возвращает значения для выпадающих списков.
func OpportunityStageOptions() []Option { return opportunityStageSet.options() }

// OpportunityStatus описывает статус сделки.
type OpportunityStatus string

const (
	OpportunityStatusActive OpportunityStatus = "active"
	OpportunityStatusWon    OpportunityStatus = "won"
	OpportunityStatusLost   OpportunityStatus = "lost"
)

var opportunityStatusSet = newEnumSet(OpportunityStatusName,
	enumMember[OpportunityStatus]{OpportunityStatusActive, "进行中", BadgePrimary},
	enumMember[OpportunityStatus]{OpportunityStatusWon, "赢单", BadgeSuccess},
	enumMember[OpportunityStatus]{OpportunityStatusLost, "败单", BadgeDanger},
)

// ParseOpportunityStatus разбирает сохранённое строковое значение.
func ParseOpportunityStatus(s string) (OpportunityStatus, error) { return opportunityStatusSet.parse(s) }

func (v OpportunityStatus) String() string { return string(v) }

// Label возвращает отображаемое название значения.
func (v OpportunityStatus) Label() string { return opportunityStatusSet.label(v) }

// Badge возвращает класс бейджа для интерфейса.
func (v OpportunityStatus) Badge() string { return opportunityStatusSet.badge(v) }

// Valid сообщает, входит ли значение в перечисление.
func (v OpportunityStatus) Valid() bool { return opportunityStatusSet.valid(v) }

// OpportunityStatusValues возвращает все значения в порядке объявления.
func OpportunityStatusValues() []OpportunityStatus { return opportunityStatusSet.values() }

// OpportunityStatusOptions возвращает значения для выпадающих списков.
func OpportunityStatusOptions() []Option { return opportunityStatusSet.options() }

// OrderStatus описывает статус заказа.
type OrderStatus string

const (
	OrderStatusPendingPayment OrderStatus = "pending_payment"
	OrderStatusPaid           OrderStatus = "paid"
	OrderStatusShipping       OrderStatus = "shipping"
	OrderStatusCompleted      OrderStatus = "completed"
	OrderStatusCancelled      OrderStatus = "cancelled"
	OrderStatusRefunded       OrderStatus = "refunded"
)

var orderStatusSet = newEnumSet(OrderStatusName,
	enumMember[OrderStatus]{OrderStatusPendingPayment, "待支付", BadgeWarning},
	enumMember[OrderStatus]{OrderStatusPaid, "已支付", BadgeInfo},
	enumMember[OrderStatus]{OrderStatusShipping, "配送中", BadgePrimary},
	enumMember[OrderStatus]{OrderStatusCompleted, "已完成", BadgeSuccess},
	enumMember[OrderStatus]{OrderStatusCancelled, "已取消", BadgeSecondary},
	enumMember[OrderStatus]{OrderStatusRefunded, "已退款", BadgeDanger},
)

// ParseOrderStatus разбирает сохранённое строковое значение.
func ParseOrderStatus(s string) (OrderStatus, error) { return orderStatusSet.parse(s) }

func (v OrderStatus) String() string { return string(v) }

// Label возвращает отображаемое название значения.
func (v OrderStatus) Label() string { return orderStatusSet.label(v) }

// Badge возвращает класс бейджа для интерфейса.
func (v OrderStatus) Badge() string { return orderStatusSet.badge(v) }

// Valid сообщает, входит ли значение в перечисление.
func (v OrderStatus) Valid() bool { return orderStatusSet.valid(v) }

// OrderStatusValues возвращает все значения в порядке объявления.
func OrderStatusValues() []OrderStatus { return orderStatusSet.values() }

// OrderStatusOptions возвращает значения для выпадающих списков.
func OrderStatusOptions() []Option { return orderStatusSet.options() }

// ProductStatus описывает статус товара.
type ProductStatus string

const (
	ProductStatusOnSale     ProductStatus = "on_sale"
	ProductStatusOffShelf   ProductStatus = "off_shelf"
	ProductStatusOutOfStock ProductStatus = "out_of_stock"
)

var productStatusSet = newEnumSet(ProductStatusName,
	enumMember[ProductStatus]{ProductStatusOnSale, "在售", BadgeSuccess},
	enumMember[ProductStatus]{ProductStatusOffShelf, "下架", BadgeSecondary},
	enumMember[ProductStatus]{ProductStatusOutOfStock, "缺货", BadgeWarning},
)

// ParseProductStatus разбирает сохранённое строковое значение.
func ParseProductStatus(s string) (ProductStatus, error) { return productStatusSet.parse(s) }

func (v ProductStatus) String() string { return string(v) }

// Label возвращает отображаемое название значения.
func (v ProductStatus) Label() string { return productStatusSet.label(v) }

// Badge возвращает класс бейджа для интерфейса.
func (v ProductStatus) Badge() string { return productStatusSet.badge(v) }

// Valid сообщает, входит ли значение в перечисление.
func (v ProductStatus) Valid() bool { return productStatusSet.valid(v) }

// ProductStatusValues возвращает все значения в порядке объявления.
func ProductStatusValues() []ProductStatus { return productStatusSet.values() }

// ProductStatusOptions возвращает значения для выпадающих списков.
func ProductStatusOptions() []Option { return productStatusSet.options() }

// Имена перечислений, используемые в сообщениях об ошибках.
const (
	ContactStatusName     = "ContactStatus"
	CustomerTypeName      = "CustomerType"
	CustomerStatusName    = "CustomerStatus"
	LeadSourceName        = "LeadSource"
	LeadStatusName        = "LeadStatus"
	OpportunityStageName  = "OpportunityStage"
	OpportunityStatusName = "OpportunityStatus"
	OrderStatusName       = "OrderStatus"
	ProductStatusName     = "ProductStatus"
)

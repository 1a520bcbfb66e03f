package models

import "time"

// Category определяет вариант актива и правило его оценки
type Category string

const (
	CategoryFD          Category = "FD"
	CategoryMutualFund  Category = "MutualFund"
	CategoryStocks      Category = "Stocks"
	CategoryGold        Category = "Gold"
	CategoryProperty    Category = "Property"
	CategoryCrypto      Category = "Crypto"
	CategoryOther       Category = "Other"
	CategoryBankAccount Category = "BankAccount"
)

// Categories перечисляет все известные категории в порядке отображения
var Categories = []Category{
	CategoryFD,
	CategoryMutualFund,
	CategoryStocks,
	CategoryGold,
	CategoryProperty,
	CategoryCrypto,
	CategoryOther,
	CategoryBankAccount,
}

// Asset представляет актив пользователя. Заполняется ровно одна секция
// деталей, соответствующая Category; отсутствующие поля считаются нулями.
type Asset struct {
	ID              string     `json:"id" yaml:"id"`
	Name            string     `json:"name" yaml:"name"`
	Category        Category   `json:"category" yaml:"category"`
	Active          bool       `json:"isActive" yaml:"active"`
	Liquidated      bool       `json:"isLiquidated,omitempty" yaml:"liquidated,omitempty"`
	LiquidatedValue float64    `json:"liquidatedValue,omitempty" yaml:"liquidated_value,omitempty"`
	LiquidatedAt    *time.Time `json:"liquidatedDate,omitempty" yaml:"liquidated_at,omitempty"`
	LocalRule       *LocalRule `json:"localRule,omitempty" yaml:"local_rule,omitempty"`
	Notes           string     `json:"notes,omitempty" yaml:"notes,omitempty"`

	FD          *FixedDeposit `json:"fd,omitempty" yaml:"fd,omitempty"`
	MutualFund  *MutualFund   `json:"mutualFund,omitempty" yaml:"mutual_fund,omitempty"`
	Stocks      *Holding      `json:"stocks,omitempty" yaml:"stocks,omitempty"`
	Gold        *Gold         `json:"gold,omitempty" yaml:"gold,omitempty"`
	Property    *Property     `json:"property,omitempty" yaml:"property,omitempty"`
	Crypto      *Holding      `json:"crypto,omitempty" yaml:"crypto,omitempty"`
	Other       *Plain        `json:"other,omitempty" yaml:"other,omitempty"`
	BankAccount *Plain        `json:"bankAccount,omitempty" yaml:"bank_account,omitempty"`
}

// FixedDeposit - срочный вклад
type FixedDeposit struct {
	Value                float64 `json:"value" yaml:"value"`
	BankName             string  `json:"bankName,omitempty" yaml:"bank_name,omitempty"`
	ExpectedReturn       float64 `json:"expectedReturn,omitempty" yaml:"expected_return,omitempty"`
	CompoundingFrequency string  `json:"compoundingFrequency,omitempty" yaml:"compounding_frequency,omitempty"`
	AutoRenewal          bool    `json:"autoRenewal,omitempty" yaml:"auto_renewal,omitempty"`
}

// MutualFund - паевой фонд (SIP или разовая покупка)
type MutualFund struct {
	Value          float64 `json:"value" yaml:"value"`
	TotalInvested  float64 `json:"totalInvested" yaml:"total_invested"`
	MonthlySIP     float64 `json:"monthlySIP,omitempty" yaml:"monthly_sip,omitempty"`
	InvestmentType string  `json:"investmentType,omitempty" yaml:"investment_type,omitempty"`
	TaxSaver       bool    `json:"isTaxSaver,omitempty" yaml:"tax_saver,omitempty"`
}

// Holding - позиция в штуках (акции, криптовалюта)
type Holding struct {
	Symbol       string  `json:"symbol,omitempty" yaml:"symbol,omitempty"`
	Units        float64 `json:"units" yaml:"units"`
	BuyPrice     float64 `json:"buyPrice" yaml:"buy_price"`
	CurrentPrice float64 `json:"currentPrice" yaml:"current_price"`
}

// Gold - золото по весу
type Gold struct {
	Kind                string  `json:"goldType,omitempty" yaml:"kind,omitempty"`
	WeightGrams         float64 `json:"weight" yaml:"weight_grams"`
	BuyPricePerGram     float64 `json:"goldBuyPrice" yaml:"buy_price_per_gram"`
	CurrentPricePerGram float64 `json:"goldCurrentPrice" yaml:"current_price_per_gram"`
}

// Property - недвижимость с долей владения
type Property struct {
	Kind             string  `json:"propertyType,omitempty" yaml:"kind,omitempty"`
	Location         string  `json:"location,omitempty" yaml:"location,omitempty"`
	MarketValue      float64 `json:"marketValue" yaml:"market_value"`
	PurchasePrice    float64 `json:"purchasePrice" yaml:"purchase_price"`
	OwnershipPercent float64 `json:"ownershipPercent" yaml:"ownership_percent"`
	RentalIncome     float64 `json:"rentalIncome,omitempty" yaml:"rental_income,omitempty"`
}

// Plain - актив, заданный одной суммой
type Plain struct {
	Value       float64 `json:"value" yaml:"value"`
	Description string  `json:"description,omitempty" yaml:"description,omitempty"`
}

// RuleFrequency - периодичность применения локального правила
type RuleFrequency string

const (
	FrequencyMonthly RuleFrequency = "monthly"
	FrequencyYearly  RuleFrequency = "yearly"
)

// LocalRule переопределяет рост стоимости отдельного актива или обязательства
type LocalRule struct {
	Enabled    bool          `json:"enabled" yaml:"enabled"`
	ChangeRate float64       `json:"changeRate" yaml:"change_rate"`
	Frequency  RuleFrequency `json:"frequency" yaml:"frequency"`
}

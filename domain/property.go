package domain

// PropertyInfo is display-only metadata about the property.
type PropertyInfo struct {
	PropertyType string  `json:"propertyType" yaml:"propertyType"`
	Street       string  `json:"street" yaml:"street"`
	City         string  `json:"city" yaml:"city"`
	State        string  `json:"state" yaml:"state"`
	ZipCode      string  `json:"zipCode" yaml:"zipCode"`
	Sqft         float64 `json:"sqft" yaml:"sqft"`
}

type Unit struct {
	ID    int64   `json:"id" yaml:"id"`
	Beds  float64 `json:"beds" yaml:"beds"`
	Baths float64 `json:"baths" yaml:"baths"`
	Rent  float64 `json:"rent" yaml:"rent"`
}

// PropertyInputs is the full input snapshot for one calculation.
// Percentages are stored as whole-number percent (6.75 means 6.75%).
type PropertyInputs struct {
	PropertyInfo PropertyInfo `json:"propertyInfo" yaml:"propertyInfo"`
	Units        []Unit       `json:"units" yaml:"units"`

	PurchasePrice       float64 `json:"purchasePrice" yaml:"purchasePrice"`
	ClosingCost         float64 `json:"closingCost" yaml:"closingCost"`
	InitialImprovements float64 `json:"initialImprovements" yaml:"initialImprovements"`

	DownPaymentPercent  float64 `json:"downPaymentPercent" yaml:"downPaymentPercent"`
	InterestRatePercent float64 `json:"interestRatePercent" yaml:"interestRatePercent"`
	LoanTermYears       float64 `json:"loanTermYears" yaml:"loanTermYears"`

	PropertyTaxYear     float64 `json:"propertyTaxYear" yaml:"propertyTaxYear"`
	InsuranceMonth      float64 `json:"insuranceMonth" yaml:"insuranceMonth"`
	PropertyMgmtPercent float64 `json:"propertyMgmtPercent" yaml:"propertyMgmtPercent"`
	VacancyPercent      float64 `json:"vacancyPercent" yaml:"vacancyPercent"`
	MaintenancePercent  float64 `json:"maintenancePercent" yaml:"maintenancePercent"`
	HOAMonth            float64 `json:"hoaMonth" yaml:"hoaMonth"`
	SewerMonth          float64 `json:"sewerMonth" yaml:"sewerMonth"`
	GarbageMonth        float64 `json:"garbageMonth" yaml:"garbageMonth"`
	WaterMonth          float64 `json:"waterMonth" yaml:"waterMonth"`
	GasMonth            float64 `json:"gasMonth" yaml:"gasMonth"`
	ElectricMonth       float64 `json:"electricMonth" yaml:"electricMonth"`

	AppreciationPercent      float64 `json:"appreciationPercent" yaml:"appreciationPercent"`
	RentIncreasePercent      float64 `json:"rentIncreasePercent" yaml:"rentIncreasePercent"`
	ExpenseIncreasePercent   float64 `json:"expenseIncreasePercent" yaml:"expenseIncreasePercent"`
	InsuranceIncreasePercent float64 `json:"insuranceIncreasePercent" yaml:"insuranceIncreasePercent"`
	UtilitiesIncreasePercent float64 `json:"utilitiesIncreasePercent" yaml:"utilitiesIncreasePercent"`
	SalesCostPercent         float64 `json:"salesCostPercent" yaml:"salesCostPercent"`
	IncomeTaxRatePercent     float64 `json:"incomeTaxRatePercent" yaml:"incomeTaxRatePercent"`
	CapitalGainsRatePercent  float64 `json:"capitalGainsRatePercent" yaml:"capitalGainsRatePercent"`
	DepreciationYears        float64 `json:"depreciationYears" yaml:"depreciationYears"`
}

// MonthlyUtilities sums the five utility lines.
func (in PropertyInputs) MonthlyUtilities() float64 {
	return in.SewerMonth + in.GarbageMonth + in.WaterMonth + in.GasMonth + in.ElectricMonth
}

// DefaultInputs returns the seed scenario shown to a new user.
func DefaultInputs() PropertyInputs {
	return PropertyInputs{
		PropertyInfo: PropertyInfo{
			PropertyType: "House",
			Street:       "123 Main St",
			City:         "Anytown",
			State:        "CA",
			ZipCode:      "90210",
			Sqft:         1500,
		},
		Units: []Unit{
			{ID: 1, Beds: 3, Baths: 2, Rent: 4000},
		},
		PurchasePrice:            300000,
		ClosingCost:              6000,
		InitialImprovements:      0,
		DownPaymentPercent:       20,
		InterestRatePercent:      6.75,
		LoanTermYears:            30,
		PropertyTaxYear:          7000,
		InsuranceMonth:           150,
		PropertyMgmtPercent:      0,
		VacancyPercent:           5,
		MaintenancePercent:       10,
		HOAMonth:                 50,
		AppreciationPercent:      2,
		RentIncreasePercent:      2,
		ExpenseIncreasePercent:   2,
		InsuranceIncreasePercent: 2,
		UtilitiesIncreasePercent: 2,
		SalesCostPercent:         8,
		IncomeTaxRatePercent:     22,
		CapitalGainsRatePercent:  15,
		DepreciationYears:        27.5,
	}
}

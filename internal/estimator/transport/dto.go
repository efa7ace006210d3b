package transport

// ApplianceInput is one appliance line from the public calculator form.
type ApplianceInput struct {
	Name       string   `json:"name" validate:"max=100"`
	Wattage    *float64 `json:"wattage" validate:"required,gt=0,lte=100000"`
	Count      *int     `json:"count" validate:"required,min=1,max=1000"`
	DailyHours *float64 `json:"dailyHours" validate:"required,gte=0,lte=24"`
}

// EstimateRequest is the public calculator submission: contact details,
// current energy spend, and the appliance inventory to size against.
type EstimateRequest struct {
	Name            string           `json:"name" validate:"required,min=2,max=120"`
	Email           string           `json:"email" validate:"required,email,max=254"`
	Phone           string           `json:"phone" validate:"required,min=7,max=20"`
	MonthlyGridBill *int64           `json:"monthlyGridBill" validate:"required,min=0"`
	MonthlyFuelCost *int64           `json:"monthlyFuelCost" validate:"required,min=0"`
	Appliances      []ApplianceInput `json:"appliances" validate:"max=100,dive"`
}

// ComponentResponse is a recommended equipment line in the estimate.
type ComponentResponse struct {
	Name         string  `json:"name"`
	Count        int     `json:"count"`
	UnitPrice    int64   `json:"unitPrice"`
	SpecCapacity float64 `json:"specCapacity"`
	SpecUnit     string  `json:"specUnit"`
}

// EstimateResponse is the sizing recommendation returned to the calculator.
// PaybackYears is omitted when annual savings is zero.
type EstimateResponse struct {
	LeadID string `json:"leadId"`

	DailyEnergyKWh  float64 `json:"dailyEnergyKwh"`
	PeakLoadWatts   float64 `json:"peakLoadWatts"`
	SystemSizeLabel string  `json:"systemSizeLabel"`

	Panels    ComponentResponse `json:"panels"`
	Inverters ComponentResponse `json:"inverters"`
	Batteries ComponentResponse `json:"batteries"`

	EquipmentCost      int64    `json:"equipmentCost"`
	InstallationCost   int64    `json:"installationCost"`
	TotalCost          int64    `json:"totalCost"`
	TotalAnnualSavings float64  `json:"totalAnnualSavings"`
	PaybackYears       *float64 `json:"paybackYears,omitempty"`
	CO2MitigatedTons   float64  `json:"co2MitigatedTons"`
}

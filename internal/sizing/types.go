// Package sizing converts a household's appliance inventory and utility
// spend into a recommended solar system: panel, inverter, and battery counts
// plus cost and return-on-investment figures. The package is pure computation
// with no I/O; catalog and lead persistence live in their own modules.
package sizing

// ItemKind identifies the purchasable component a catalog entry prices.
type ItemKind string

const (
	KindPanel        ItemKind = "panel"
	KindInverter     ItemKind = "inverter"
	KindBattery      ItemKind = "battery"
	KindInstallation ItemKind = "installation"
)

// CatalogItem is one entry of the externally owned price list. SpecCapacity
// is watts for panels, volt-amps for inverters, and watt-hours for batteries;
// installation entries carry only a price. SpecUnit is a display label with
// no computational effect. UnitPrice is in whole currency units.
type CatalogItem struct {
	Name         string
	Kind         ItemKind
	UnitPrice    int64
	SpecCapacity float64
	SpecUnit     string
}

// ApplianceDemand is one selected appliance line: rated wattage, quantity,
// and hours of use per day.
type ApplianceDemand struct {
	Wattage    float64
	Count      int
	DailyHours float64
}

// SizingRequest aggregates everything one calculation needs. The catalog
// slice must be an immutable snapshot in the store's display order; battery
// and panel selection take the first item of their kind, so order is part of
// the contract.
type SizingRequest struct {
	MonthlyGridBill int64
	MonthlyFuelCost int64
	Appliances      []ApplianceDemand
	Catalog         []CatalogItem
}

// Selection is a chosen catalog item and how many of it the system needs.
type Selection struct {
	Item  CatalogItem
	Count int
}

// SizingResult is the immutable output of one calculation.
// PaybackYears is nil when annual savings is zero; callers must treat nil as
// "undefined" rather than rendering an infinity.
type SizingResult struct {
	DailyEnergyWh         float64
	PeakLoadWatts         float64
	DesignedPeakLoadWatts float64
	RequiredInverterVA    float64
	RequiredStorageWh     float64
	RequiredPanelWatts    float64

	Panels    Selection
	Inverters Selection
	Batteries Selection

	EquipmentCost      int64
	InstallationCost   int64
	TotalCost          int64
	TotalAnnualSavings float64
	PaybackYears       *float64
	CO2MitigatedTons   float64
}

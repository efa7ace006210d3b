package sizing

import (
	"fmt"
	"math"
	"strconv"
)

// Sizing constants. The diversity factor and peak-sun-hours figure are fixed
// empirical approximations, not a geographic irradiance model.
const (
	// DiversityFactor scales summed rated power down because not all
	// appliances draw rated load simultaneously.
	DiversityFactor = 0.7
	// InverterHeadroom is the safety margin over the designed peak load.
	InverterHeadroom = 1.2
	// AutonomyFraction is the share of daily energy the battery bank stores.
	AutonomyFraction = 0.6
	// PeakSunHours is the assumed full-intensity sunlight hours per day.
	PeakSunHours = 4.5
	// PanelLossMargin compensates for wiring, temperature, and dust losses.
	PanelLossMargin = 1.3
	// FuelOffsetFactor discounts generator-fuel savings for retained use.
	FuelOffsetFactor = 0.9
	// CO2FactorKgPerWh approximates displaced emissions per watt-hour.
	CO2FactorKgPerWh = 0.4
)

// Fallback specs and pricing used when the catalog is missing a kind.
// Counts are still computed against the fallback spec; the cost contribution
// of a fallback item is zero except for installation.
const (
	FallbackInverterVA   = 5000
	FallbackBatteryWh    = 4800
	FallbackPanelWatts   = 550
	FallbackInstallPrice = 150000
)

// aggregateLoad sums daily energy (Wh) and rated peak load (W) over the
// appliance list. Addition is commutative, so list order never matters.
func aggregateLoad(appliances []ApplianceDemand) (dailyEnergyWh, peakLoadWatts float64) {
	for _, a := range appliances {
		dailyEnergyWh += a.Wattage * float64(a.Count) * a.DailyHours
		peakLoadWatts += a.Wattage * float64(a.Count)
	}
	return dailyEnergyWh, peakLoadWatts
}

// selectInverter picks the lowest-capacity inverter that covers the required
// volt-amps. If none is large enough it falls back to the first inverter in
// the catalog, and if the catalog has no inverter at all it synthesizes a
// zero-cost entry at the fallback rating.
func selectInverter(catalog []CatalogItem, requiredVA float64) CatalogItem {
	var best *CatalogItem
	var first *CatalogItem
	for i := range catalog {
		item := &catalog[i]
		if item.Kind != KindInverter {
			continue
		}
		if first == nil {
			first = item
		}
		if item.SpecCapacity >= requiredVA && (best == nil || item.SpecCapacity < best.SpecCapacity) {
			best = item
		}
	}
	if best != nil {
		return *best
	}
	if first != nil {
		return *first
	}
	return CatalogItem{Name: "Standard inverter", Kind: KindInverter, SpecCapacity: FallbackInverterVA, SpecUnit: "VA"}
}

// firstOfKind returns the first catalog item of the given kind in store
// order. Battery and panel selection deliberately take the first entry
// rather than capacity-matching; the catalog's ordering is the merchant's
// preference ranking.
func firstOfKind(catalog []CatalogItem, kind ItemKind) (CatalogItem, bool) {
	for _, item := range catalog {
		if item.Kind == kind {
			return item, true
		}
	}
	return CatalogItem{}, false
}

// unitCount converts a required capacity into a whole number of units.
// Zero required capacity yields zero units.
func unitCount(required, unitSpec float64) int {
	if required <= 0 || unitSpec <= 0 {
		return 0
	}
	return int(math.Ceil(required / unitSpec))
}

// Size runs the full sizing computation. It is pure and deterministic:
// identical requests produce identical results, and no structurally valid
// input fails. Degenerate inputs (empty appliance list, catalog missing a
// kind, zero savings) resolve through documented fallbacks.
func Size(req SizingRequest) SizingResult {
	dailyEnergyWh, peakLoadWatts := aggregateLoad(req.Appliances)
	designedPeak := peakLoadWatts * DiversityFactor

	requiredVA := designedPeak * InverterHeadroom
	inverter := selectInverter(req.Catalog, requiredVA)
	inverterCount := unitCount(requiredVA, inverter.SpecCapacity)
	if inverterCount < 1 && peakLoadWatts > 0 {
		inverterCount = 1
	}

	requiredStorageWh := dailyEnergyWh * AutonomyFraction
	battery, batteryFound := firstOfKind(req.Catalog, KindBattery)
	if !batteryFound {
		battery = CatalogItem{Name: "Standard battery", Kind: KindBattery, SpecCapacity: FallbackBatteryWh, SpecUnit: "Wh"}
	}
	batteryCount := unitCount(requiredStorageWh, battery.SpecCapacity)

	requiredPanelWatts := (dailyEnergyWh / PeakSunHours) * PanelLossMargin
	panel, panelFound := firstOfKind(req.Catalog, KindPanel)
	if !panelFound {
		panel = CatalogItem{Name: "Standard panel", Kind: KindPanel, SpecCapacity: FallbackPanelWatts, SpecUnit: "W"}
	}
	panelCount := unitCount(requiredPanelWatts, panel.SpecCapacity)

	equipmentCost := int64(inverterCount)*inverter.UnitPrice +
		int64(batteryCount)*battery.UnitPrice +
		int64(panelCount)*panel.UnitPrice

	installCost := int64(FallbackInstallPrice)
	if install, ok := firstOfKind(req.Catalog, KindInstallation); ok {
		installCost = install.UnitPrice
	}
	totalCost := equipmentCost + installCost

	annualSavings := float64(req.MonthlyGridBill*12) + float64(req.MonthlyFuelCost*12)*FuelOffsetFactor

	var payback *float64
	if annualSavings > 0 {
		years := float64(totalCost) / annualSavings
		payback = &years
	}

	co2Tons := dailyEnergyWh * CO2FactorKgPerWh * 365 / 1000

	return SizingResult{
		DailyEnergyWh:         dailyEnergyWh,
		PeakLoadWatts:         peakLoadWatts,
		DesignedPeakLoadWatts: designedPeak,
		RequiredInverterVA:    requiredVA,
		RequiredStorageWh:     requiredStorageWh,
		RequiredPanelWatts:    requiredPanelWatts,
		Panels:                Selection{Item: panel, Count: panelCount},
		Inverters:             Selection{Item: inverter, Count: inverterCount},
		Batteries:             Selection{Item: battery, Count: batteryCount},
		EquipmentCost:         equipmentCost,
		InstallationCost:      installCost,
		TotalCost:             totalCost,
		TotalAnnualSavings:    annualSavings,
		PaybackYears:          payback,
		CO2MitigatedTons:      co2Tons,
	}
}

// SystemSizeLabel renders the chosen inverter rating as a kVA label for
// display and lead records, e.g. "5kVA" or "7.5kVA".
func (r SizingResult) SystemSizeLabel() string {
	kva := r.Inverters.Item.SpecCapacity / 1000
	return strconv.FormatFloat(kva, 'f', -1, 64) + "kVA"
}

// DailyEnergyKWh returns the daily consumption rounded to one decimal in
// kilowatt-hours, the figure persisted on lead records.
func (r SizingResult) DailyEnergyKWh() float64 {
	return math.Round(r.DailyEnergyWh/1000*10) / 10
}

// String summarizes the recommendation for logs.
func (r SizingResult) String() string {
	return fmt.Sprintf("%dx %s, %dx %s, %dx %s (total %d)",
		r.Panels.Count, r.Panels.Item.Name,
		r.Inverters.Count, r.Inverters.Item.Name,
		r.Batteries.Count, r.Batteries.Item.Name,
		r.TotalCost,
	)
}

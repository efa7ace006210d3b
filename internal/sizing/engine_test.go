package sizing

import (
	"math"
	"testing"
)

func testCatalog() []CatalogItem {
	return []CatalogItem{
		{Name: "Mono 550W", Kind: KindPanel, UnitPrice: 120000, SpecCapacity: 550, SpecUnit: "W"},
		{Name: "Hybrid 5kVA", Kind: KindInverter, UnitPrice: 650000, SpecCapacity: 5000, SpecUnit: "VA"},
		{Name: "Hybrid 10kVA", Kind: KindInverter, UnitPrice: 1100000, SpecCapacity: 10000, SpecUnit: "VA"},
		{Name: "LiFePO4 4.8kWh", Kind: KindBattery, UnitPrice: 900000, SpecCapacity: 4800, SpecUnit: "Wh"},
		{Name: "Standard install", Kind: KindInstallation, UnitPrice: 150000, SpecCapacity: 1, SpecUnit: ""},
	}
}

func TestSizeSingleApplianceLoadAggregation(t *testing.T) {
	result := Size(SizingRequest{
		Appliances: []ApplianceDemand{{Wattage: 100, Count: 1, DailyHours: 6}},
		Catalog:    testCatalog(),
	})

	if result.DailyEnergyWh != 600 {
		t.Fatalf("expected daily energy 600, got %v", result.DailyEnergyWh)
	}
	if result.PeakLoadWatts != 100 {
		t.Fatalf("expected peak load 100, got %v", result.PeakLoadWatts)
	}
	if result.DesignedPeakLoadWatts != 70 {
		t.Fatalf("expected designed peak 70, got %v", result.DesignedPeakLoadWatts)
	}
}

func TestSizeLoadAggregationIsOrderIndependent(t *testing.T) {
	appliances := []ApplianceDemand{
		{Wattage: 100, Count: 2, DailyHours: 4},
		{Wattage: 1500, Count: 1, DailyHours: 2},
		{Wattage: 60, Count: 6, DailyHours: 12},
	}
	reversed := []ApplianceDemand{appliances[2], appliances[1], appliances[0]}

	a := Size(SizingRequest{Appliances: appliances, Catalog: testCatalog()})
	b := Size(SizingRequest{Appliances: reversed, Catalog: testCatalog()})

	if a.DailyEnergyWh != b.DailyEnergyWh {
		t.Fatalf("daily energy differs by order: %v vs %v", a.DailyEnergyWh, b.DailyEnergyWh)
	}
	if a.PeakLoadWatts != b.PeakLoadWatts {
		t.Fatalf("peak load differs by order: %v vs %v", a.PeakLoadWatts, b.PeakLoadWatts)
	}
	if a.TotalCost != b.TotalCost {
		t.Fatalf("total cost differs by order: %d vs %d", a.TotalCost, b.TotalCost)
	}
}

func TestSizeEmptyDemandFinancialsOnly(t *testing.T) {
	result := Size(SizingRequest{
		MonthlyGridBill: 50000,
		MonthlyFuelCost: 30000,
		Catalog:         testCatalog(),
	})

	// 50000*12 + 30000*12*0.9 = 600000 + 324000
	if result.TotalAnnualSavings != 924000 {
		t.Fatalf("expected annual savings 924000, got %v", result.TotalAnnualSavings)
	}
	if result.Panels.Count != 0 || result.Inverters.Count != 0 || result.Batteries.Count != 0 {
		t.Fatalf("expected zero equipment counts for empty demand, got %d/%d/%d",
			result.Panels.Count, result.Inverters.Count, result.Batteries.Count)
	}
	if result.EquipmentCost != 0 {
		t.Fatalf("expected zero equipment cost, got %d", result.EquipmentCost)
	}
	// Installation is still priced; payback is defined because savings > 0.
	if result.TotalCost != 150000 {
		t.Fatalf("expected total cost 150000, got %d", result.TotalCost)
	}
	if result.PaybackYears == nil {
		t.Fatal("expected payback years to be defined")
	}
}

func TestSizeInverterFallsBackWhenNoneLargeEnough(t *testing.T) {
	catalog := []CatalogItem{
		{Name: "Hybrid 5kVA", Kind: KindInverter, UnitPrice: 650000, SpecCapacity: 5000, SpecUnit: "VA"},
	}
	// requiredVA = 7142.857*0.7*1.2 = 6000
	result := Size(SizingRequest{
		Appliances: []ApplianceDemand{{Wattage: 7142.857142857143, Count: 1, DailyHours: 1}},
		Catalog:    catalog,
	})

	if math.Abs(result.RequiredInverterVA-6000) > 1e-6 {
		t.Fatalf("expected required VA 6000, got %v", result.RequiredInverterVA)
	}
	if result.Inverters.Item.Name != "Hybrid 5kVA" {
		t.Fatalf("expected fallback to only inverter, got %q", result.Inverters.Item.Name)
	}
	if result.Inverters.Count != 2 {
		t.Fatalf("expected inverter count 2, got %d", result.Inverters.Count)
	}
}

func TestSizeInverterCapacityMatchPrefersSmallestAdequate(t *testing.T) {
	catalog := []CatalogItem{
		{Name: "Hybrid 10kVA", Kind: KindInverter, UnitPrice: 1100000, SpecCapacity: 10000, SpecUnit: "VA"},
		{Name: "Hybrid 5kVA", Kind: KindInverter, UnitPrice: 650000, SpecCapacity: 5000, SpecUnit: "VA"},
	}
	// Peak 1000W -> designed 700 -> required 840 VA. Both qualify; the 5kVA
	// unit is the smallest adequate one despite listing order.
	result := Size(SizingRequest{
		Appliances: []ApplianceDemand{{Wattage: 1000, Count: 1, DailyHours: 1}},
		Catalog:    catalog,
	})

	if result.Inverters.Item.Name != "Hybrid 5kVA" {
		t.Fatalf("expected smallest adequate inverter, got %q", result.Inverters.Item.Name)
	}
	if result.Inverters.Count != 1 {
		t.Fatalf("expected inverter count 1, got %d", result.Inverters.Count)
	}
}

func TestSizeInverterHeadroomInvariant(t *testing.T) {
	result := Size(SizingRequest{
		Appliances: []ApplianceDemand{{Wattage: 800, Count: 3, DailyHours: 5}},
		Catalog:    testCatalog(),
	})

	covered := float64(result.Inverters.Count) * result.Inverters.Item.SpecCapacity
	if covered < result.RequiredInverterVA {
		t.Fatalf("inverter capacity %v does not cover required %v", covered, result.RequiredInverterVA)
	}
}

func TestSizeBatteryAndPanelTakeFirstCatalogEntry(t *testing.T) {
	catalog := []CatalogItem{
		{Name: "Tubular 2.4kWh", Kind: KindBattery, UnitPrice: 300000, SpecCapacity: 2400, SpecUnit: "Wh"},
		{Name: "LiFePO4 9.6kWh", Kind: KindBattery, UnitPrice: 1700000, SpecCapacity: 9600, SpecUnit: "Wh"},
		{Name: "Poly 300W", Kind: KindPanel, UnitPrice: 70000, SpecCapacity: 300, SpecUnit: "W"},
		{Name: "Mono 550W", Kind: KindPanel, UnitPrice: 120000, SpecCapacity: 550, SpecUnit: "W"},
		{Name: "Hybrid 5kVA", Kind: KindInverter, UnitPrice: 650000, SpecCapacity: 5000, SpecUnit: "VA"},
	}
	result := Size(SizingRequest{
		Appliances: []ApplianceDemand{{Wattage: 1000, Count: 1, DailyHours: 10}},
		Catalog:    catalog,
	})

	// First battery and panel win regardless of a better capacity fit later
	// in the list; store order is the merchant's preference ranking.
	if result.Batteries.Item.Name != "Tubular 2.4kWh" {
		t.Fatalf("expected first battery entry, got %q", result.Batteries.Item.Name)
	}
	if result.Panels.Item.Name != "Poly 300W" {
		t.Fatalf("expected first panel entry, got %q", result.Panels.Item.Name)
	}
	// 10000 Wh * 0.6 / 2400 = 2.5 -> 3 batteries
	if result.Batteries.Count != 3 {
		t.Fatalf("expected 3 batteries, got %d", result.Batteries.Count)
	}
	// (10000 / 4.5) * 1.3 = 2888.9 -> / 300 -> 10 panels
	if result.Panels.Count != 10 {
		t.Fatalf("expected 10 panels, got %d", result.Panels.Count)
	}
}

func TestSizeMissingBatteryKindUsesZeroCostFallback(t *testing.T) {
	catalog := []CatalogItem{
		{Name: "Mono 550W", Kind: KindPanel, UnitPrice: 120000, SpecCapacity: 550, SpecUnit: "W"},
		{Name: "Hybrid 5kVA", Kind: KindInverter, UnitPrice: 650000, SpecCapacity: 5000, SpecUnit: "VA"},
		{Name: "Standard install", Kind: KindInstallation, UnitPrice: 150000, SpecCapacity: 1, SpecUnit: ""},
	}
	result := Size(SizingRequest{
		Appliances: []ApplianceDemand{{Wattage: 1000, Count: 1, DailyHours: 10}},
		Catalog:    catalog,
	})

	// 10000 Wh * 0.6 / 4800 = 1.25 -> 2 fallback batteries at no cost
	if result.Batteries.Item.SpecCapacity != FallbackBatteryWh {
		t.Fatalf("expected fallback battery spec %d, got %v", FallbackBatteryWh, result.Batteries.Item.SpecCapacity)
	}
	if result.Batteries.Count != 2 {
		t.Fatalf("expected 2 batteries, got %d", result.Batteries.Count)
	}
	if result.Batteries.Item.UnitPrice != 0 {
		t.Fatalf("expected zero battery price, got %d", result.Batteries.Item.UnitPrice)
	}

	wantEquipment := int64(result.Panels.Count)*120000 + int64(result.Inverters.Count)*650000
	if result.EquipmentCost != wantEquipment {
		t.Fatalf("expected equipment cost %d, got %d", wantEquipment, result.EquipmentCost)
	}
}

func TestSizeEmptyCatalogNeverFails(t *testing.T) {
	result := Size(SizingRequest{
		Appliances: []ApplianceDemand{{Wattage: 500, Count: 2, DailyHours: 8}},
	})

	if result.EquipmentCost != 0 {
		t.Fatalf("expected zero equipment cost with empty catalog, got %d", result.EquipmentCost)
	}
	if result.InstallationCost != FallbackInstallPrice {
		t.Fatalf("expected fallback install price %d, got %d", FallbackInstallPrice, result.InstallationCost)
	}
	if result.TotalCost != FallbackInstallPrice {
		t.Fatalf("expected total cost %d, got %d", FallbackInstallPrice, result.TotalCost)
	}
	if result.Panels.Count < 1 || result.Inverters.Count < 1 || result.Batteries.Count < 1 {
		t.Fatalf("expected fallback counts >= 1, got %d/%d/%d",
			result.Panels.Count, result.Inverters.Count, result.Batteries.Count)
	}
}

func TestSizeTotalCostIsExactSum(t *testing.T) {
	result := Size(SizingRequest{
		Appliances: []ApplianceDemand{
			{Wattage: 200, Count: 4, DailyHours: 6},
			{Wattage: 1500, Count: 1, DailyHours: 3},
		},
		Catalog: testCatalog(),
	})

	want := int64(result.Panels.Count)*result.Panels.Item.UnitPrice +
		int64(result.Inverters.Count)*result.Inverters.Item.UnitPrice +
		int64(result.Batteries.Count)*result.Batteries.Item.UnitPrice +
		result.InstallationCost
	if result.TotalCost != want {
		t.Fatalf("expected total %d, got %d", want, result.TotalCost)
	}
}

func TestSizeZeroSavingsYieldsUndefinedPayback(t *testing.T) {
	result := Size(SizingRequest{
		Appliances: []ApplianceDemand{{Wattage: 100, Count: 1, DailyHours: 6}},
		Catalog:    testCatalog(),
	})

	if result.TotalAnnualSavings != 0 {
		t.Fatalf("expected zero savings, got %v", result.TotalAnnualSavings)
	}
	if result.PaybackYears != nil {
		t.Fatalf("expected undefined payback, got %v", *result.PaybackYears)
	}
}

func TestSizeIsIdempotent(t *testing.T) {
	req := SizingRequest{
		MonthlyGridBill: 45000,
		MonthlyFuelCost: 20000,
		Appliances: []ApplianceDemand{
			{Wattage: 750, Count: 2, DailyHours: 5},
			{Wattage: 90, Count: 8, DailyHours: 12},
		},
		Catalog: testCatalog(),
	}

	a := Size(req)
	b := Size(req)

	if a.DailyEnergyWh != b.DailyEnergyWh || a.TotalCost != b.TotalCost ||
		a.TotalAnnualSavings != b.TotalAnnualSavings || a.CO2MitigatedTons != b.CO2MitigatedTons {
		t.Fatal("identical requests produced different results")
	}
	if (a.PaybackYears == nil) != (b.PaybackYears == nil) {
		t.Fatal("payback definedness differs between identical requests")
	}
	if a.PaybackYears != nil && *a.PaybackYears != *b.PaybackYears {
		t.Fatalf("payback differs: %v vs %v", *a.PaybackYears, *b.PaybackYears)
	}
}

func TestSizeMonotonicInApplianceCount(t *testing.T) {
	base := SizingRequest{
		Appliances: []ApplianceDemand{{Wattage: 300, Count: 1, DailyHours: 8}},
		Catalog:    testCatalog(),
	}
	baseline := Size(base)

	for count := 2; count <= 12; count++ {
		grown := Size(SizingRequest{
			Appliances: []ApplianceDemand{{Wattage: 300, Count: count, DailyHours: 8}},
			Catalog:    testCatalog(),
		})
		if grown.DailyEnergyWh < baseline.DailyEnergyWh {
			t.Fatalf("daily energy decreased at count %d", count)
		}
		if grown.PeakLoadWatts < baseline.PeakLoadWatts {
			t.Fatalf("peak load decreased at count %d", count)
		}
		if grown.TotalCost < baseline.TotalCost {
			t.Fatalf("total cost decreased at count %d", count)
		}
		baseline = grown
	}
}

func TestSizeCO2Estimate(t *testing.T) {
	result := Size(SizingRequest{
		Appliances: []ApplianceDemand{{Wattage: 1000, Count: 1, DailyHours: 10}},
		Catalog:    testCatalog(),
	})

	// 10000 Wh * 0.4 kg * 365 / 1000 = 1460 tons-equivalent figure
	if math.Abs(result.CO2MitigatedTons-1460) > 1e-9 {
		t.Fatalf("expected co2 figure 1460, got %v", result.CO2MitigatedTons)
	}
}

func TestSystemSizeLabel(t *testing.T) {
	cases := []struct {
		spec float64
		want string
	}{
		{5000, "5kVA"},
		{7500, "7.5kVA"},
		{10000, "10kVA"},
	}
	for _, tc := range cases {
		r := SizingResult{Inverters: Selection{Item: CatalogItem{SpecCapacity: tc.spec}}}
		if got := r.SystemSizeLabel(); got != tc.want {
			t.Fatalf("spec %v: expected %q, got %q", tc.spec, tc.want, got)
		}
	}
}

func TestDailyEnergyKWhRounding(t *testing.T) {
	r := SizingResult{DailyEnergyWh: 10460}
	if got := r.DailyEnergyKWh(); got != 10.5 {
		t.Fatalf("expected 10.5 kWh, got %v", got)
	}
	r = SizingResult{DailyEnergyWh: 600}
	if got := r.DailyEnergyKWh(); got != 0.6 {
		t.Fatalf("expected 0.6 kWh, got %v", got)
	}
}

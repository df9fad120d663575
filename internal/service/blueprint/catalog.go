package blueprint

import "rdc-blueprint/internal/storage"

type ZoneTypeConfig struct {
	Type        storage.ZoneType `json:"type"`
	Label       string           `json:"label"`
	Color       string           `json:"color"`
	BgColor     string           `json:"bgColor"`
	BorderColor string           `json:"borderColor"`
	Description string           `json:"description"`
	// DemandMultiplier is the share of total floor area. All entries sum to 1.
	DemandMultiplier float64 `json:"demandMultiplier"`
	StaffPerUnit     float64 `json:"staffPerUnit"`
}

// ZoneCatalog is ordered; the packer lays zones out in this order.
var ZoneCatalog = []ZoneTypeConfig{
	{
		Type:             storage.ZoneReceiving,
		Label:            "Receiving",
		Color:            "#3B82F6",
		BgColor:          "bg-blue-200",
		BorderColor:      "border-blue-400",
		Description:      "Inbound processing - scales with demand volume",
		DemandMultiplier: 0.12,
		StaffPerUnit:     0.8,
	},
	{
		Type:             storage.ZoneQualityControl,
		Label:            "Quality Control",
		Color:            "#F59E0B",
		BgColor:          "bg-orange-200",
		BorderColor:      "border-orange-400",
		Description:      "Quality inspection and verification",
		DemandMultiplier: 0.08,
		StaffPerUnit:     1.2,
	},
	{
		Type:             storage.ZoneStorage,
		Label:            "Storage",
		Color:            "#10B981",
		BgColor:          "bg-green-200",
		BorderColor:      "border-green-400",
		Description:      "Dynamic inventory storage - largest zone",
		DemandMultiplier: 0.45,
		StaffPerUnit:     0.3,
	},
	{
		Type:             storage.ZonePicking,
		Label:            "Picking",
		Color:            "#8B5CF6",
		BgColor:          "bg-purple-200",
		BorderColor:      "border-purple-400",
		Description:      "Order fulfillment and picking operations",
		DemandMultiplier: 0.15,
		StaffPerUnit:     1.5,
	},
	{
		Type:             storage.ZonePacking,
		Label:            "Packing",
		Color:            "#EC4899",
		BgColor:          "bg-pink-200",
		BorderColor:      "border-pink-400",
		Description:      "Order packing and preparation",
		DemandMultiplier: 0.12,
		StaffPerUnit:     1.0,
	},
	{
		Type:             storage.ZoneOutbound,
		Label:            "Outbound",
		Color:            "#EF4444",
		BgColor:          "bg-red-200",
		BorderColor:      "border-red-400",
		Description:      "Shipping and dispatch operations",
		DemandMultiplier: 0.08,
		StaffPerUnit:     0.6,
	},
}

func LookupZoneType(t storage.ZoneType) (ZoneTypeConfig, bool) {
	for _, cfg := range ZoneCatalog {
		if cfg.Type == t {
			return cfg, true
		}
	}
	return ZoneTypeConfig{}, false
}

type forkliftSpec struct {
	Count int
	Type  string
	Cost  int
}

type conveyorSpec struct {
	Length int
	Type   string
	Cost   int
}

type rackingSpec struct {
	Levels int
	Type   string
	Cost   int
}

var forkliftCatalog = map[storage.DemandTier]forkliftSpec{
	storage.TierLow:    {Count: 2, Type: "Standard Forklift", Cost: 45000},
	storage.TierMedium: {Count: 4, Type: "Electric Forklift", Cost: 55000},
	storage.TierHigh:   {Count: 8, Type: "Reach Truck", Cost: 65000},
}

var conveyorCatalog = map[storage.DemandTier]conveyorSpec{
	storage.TierLow:    {Length: 200, Type: "Basic Belt", Cost: 150},
	storage.TierMedium: {Length: 500, Type: "Roller Conveyor", Cost: 180},
	storage.TierHigh:   {Length: 1000, Type: "Automated Sorter", Cost: 300},
}

var rackingCatalog = map[storage.DemandTier]rackingSpec{
	storage.TierLow:    {Levels: 3, Type: "Selective Pallet", Cost: 120},
	storage.TierMedium: {Levels: 5, Type: "Double Deep", Cost: 150},
	storage.TierHigh:   {Levels: 8, Type: "AS/RS", Cost: 400},
}

var technologyCatalog = map[storage.DemandTier][]storage.Technology{
	storage.TierHigh: {
		{Name: "WMS (Warehouse Management System)", Cost: 150000, ROI: "18 months"},
		{Name: "RFID Tracking System", Cost: 80000, ROI: "12 months"},
		{Name: "Pick-to-Light System", Cost: 120000, ROI: "15 months"},
		{Name: "Automated Guided Vehicles (AGV)", Cost: 300000, ROI: "24 months"},
	},
	storage.TierMedium: {
		{Name: "Basic WMS", Cost: 75000, ROI: "15 months"},
		{Name: "Barcode Scanning System", Cost: 25000, ROI: "8 months"},
		{Name: "Voice Picking System", Cost: 60000, ROI: "12 months"},
	},
	storage.TierLow: {
		{Name: "Inventory Management Software", Cost: 35000, ROI: "10 months"},
		{Name: "Basic Scanning System", Cost: 15000, ROI: "6 months"},
	},
}

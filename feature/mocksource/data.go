package mocksource

// Profile names for the stub sources.
const (
	ProfileExtsys1 = "extsys1"
	ProfileExtsys2 = "extsys2"
)

// extsys1Devices mimics the infrastructure inventory: lowerCamel keys,
// bare-array responses. One record deliberately lacks a serial number to
// exercise the ingest job's drop counting.
var extsys1Devices = []map[string]any{
	{
		"id":           "srv-001",
		"serialNumber": "SRV-2020-001",
		"name":         "Web Server 01",
		"type":         "server",
		"status":       "Active",
		"environment":  "Production",
		"owner":        "Platform Team",
		"location":     "Data Center A - Rack 3",
		"vendor":       "Dell",
		"model":        "PowerEdge R740",
		"purchaseDate": "2020-03-15",
		"purchaseCost": 8500.00,
	},
	{
		"id":           "db-001",
		"serialNumber": "DB-2021-004",
		"name":         "Database Server 01",
		"type":         "database",
		"status":       "Active",
		"environment":  "Production",
		"location":     "Data Center A - Rack 4",
		"maStartDate":  "2026-01-01",
		"maEndDate":    "2026-12-31",
		"maCost":       1200.00,
	},
	{
		// Decommissioned appliance that lost its asset tag; the ingest
		// job drops it and counts an error.
		"id":     "lb-001",
		"name":   "Load Balancer 01",
		"type":   "load_balancer",
		"status": "Retired",
	},
}

// extsys2Devices mimics the network equipment inventory: PascalCase keys,
// responses wrapped in a data envelope.
var extsys2Devices = []map[string]any{
	{
		"Id":           "sw-001",
		"SerialNumber": "SW-2019-010",
		"Name":         "Core Switch 01",
		"Type":         "switch",
		"Status":       "Active",
		"Location":     "Data Center A - Rack 1",
		"Vendor":       "Cisco",
		"Model":        "Catalyst 9300",
	},
	{
		"Id":           "fw-001",
		"SerialNumber": "FW-2022-002",
		"Name":         "Firewall 01",
		"Type":         "firewall",
		"Status":       "Active",
		"Location":     "Data Center A - DMZ",
		"MaStartDate":  "2026-02-01",
		"MaEndDate":    "2027-01-31",
		"MaCost":       900.00,
	},
	{
		"Id":           "rtr-001",
		"SerialNumber": "RTR-2018-007",
		"Name":         "Core Router 01",
		"Type":         "router",
		"Status":       "Maintenance",
		"Location":     "Data Center A - Core",
	},
}

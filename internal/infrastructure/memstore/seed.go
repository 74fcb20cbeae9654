package memstore

import "github.com/jhoicas/Inventario-panel/internal/domain/entity"

// Datos semilla del panel. Sustituyen a la API real hasta que exista; el
// conjunto incluye productos repartidos en varias bodegas y suficientes
// filas para ejercitar la paginación de la tabla.

// SeedWarehouses catálogo de bodegas de referencia.
func SeedWarehouses() []entity.Warehouse {
	return []entity.Warehouse{
		{Code: "BLR-A", Name: "Bangalore Alpha", City: "Bangalore", Country: "India"},
		{Code: "PNQ-C", Name: "Pune Central", City: "Pune", Country: "India"},
		{Code: "DEL-B", Name: "Delhi Beta", City: "Delhi", Country: "India"},
		{Code: "HYD-D", Name: "Hyderabad Depot", City: "Hyderabad", Country: "India"},
	}
}

// SeedProducts filas iniciales producto-bodega.
func SeedProducts() []entity.ProductRecord {
	return []entity.ProductRecord{
		{ID: "P-1001", Name: "12mm Hex Bolt", SKU: "HEX-12-100", Warehouse: "BLR-A", Stock: 180, Demand: 120},
		{ID: "P-1001", Name: "12mm Hex Bolt", SKU: "HEX-12-100", Warehouse: "PNQ-C", Stock: 50, Demand: 80},
		{ID: "P-1002", Name: "Steel Washer", SKU: "WSR-08-500", Warehouse: "BLR-A", Stock: 50, Demand: 80},
		{ID: "P-1003", Name: "M8 Nut", SKU: "NUT-08-200", Warehouse: "PNQ-C", Stock: 80, Demand: 80},
		{ID: "P-1004", Name: "Bearing 608ZZ", SKU: "BRG-608-50", Warehouse: "DEL-B", Stock: 150, Demand: 40},
		{ID: "P-1005", Name: "Rubber Gasket 40mm", SKU: "GSK-40-250", Warehouse: "BLR-A", Stock: 90, Demand: 130},
		{ID: "P-1006", Name: "Spring Washer 10mm", SKU: "SPW-10-300", Warehouse: "PNQ-C", Stock: 220, Demand: 150},
		{ID: "P-1007", Name: "Allen Key Set", SKU: "ALK-SET-25", Warehouse: "DEL-B", Stock: 45, Demand: 45},
		{ID: "P-1008", Name: "Cable Tie 200mm", SKU: "CBT-20-1000", Warehouse: "HYD-D", Stock: 900, Demand: 650},
		{ID: "P-1009", Name: "Thread-Lock Adhesive", SKU: "ADH-TL-60", Warehouse: "BLR-A", Stock: 30, Demand: 95},
		{ID: "P-1010", Name: "Copper Terminal Lug", SKU: "LUG-CU-150", Warehouse: "PNQ-C", Stock: 140, Demand: 140},
		{ID: "P-1011", Name: "Nylon Spacer 6mm", SKU: "SPC-06-400", Warehouse: "DEL-B", Stock: 310, Demand: 175},
		{ID: "P-1012", Name: "O-Ring 25mm", SKU: "ORG-25-600", Warehouse: "HYD-D", Stock: 75, Demand: 210},
		{ID: "P-1013", Name: "Grease Cartridge", SKU: "GRS-CT-90", Warehouse: "BLR-A", Stock: 60, Demand: 35},
		{ID: "P-1014", Name: "Shaft Collar 15mm", SKU: "SHC-15-120", Warehouse: "PNQ-C", Stock: 95, Demand: 95},
		{ID: "P-1015", Name: "Limit Switch V3", SKU: "LSW-V3-80", Warehouse: "DEL-B", Stock: 25, Demand: 70},
		{ID: "P-1016", Name: "Timing Belt 6mm", SKU: "TMB-06-45", Warehouse: "HYD-D", Stock: 130, Demand: 85},
		{ID: "P-1017", Name: "Aluminium Angle 20mm", SKU: "ALA-20-60", Warehouse: "BLR-A", Stock: 200, Demand: 110},
		{ID: "P-1018", Name: "PVC Conduit 16mm", SKU: "PVC-16-300", Warehouse: "PNQ-C", Stock: 55, Demand: 160},
		{ID: "P-1019", Name: "Heat Shrink Sleeve", SKU: "HSS-05-700", Warehouse: "DEL-B", Stock: 480, Demand: 320},
		{ID: "P-1020", Name: "Toggle Clamp 201B", SKU: "TGC-201-40", Warehouse: "HYD-D", Stock: 40, Demand: 40},
		{ID: "P-1021", Name: "Drill Bit 6.5mm HSS", SKU: "DRB-65-90", Warehouse: "BLR-A", Stock: 85, Demand: 125},
		{ID: "P-1022", Name: "Wire Rope 4mm", SKU: "WRP-04-200", Warehouse: "PNQ-C", Stock: 160, Demand: 60},
		{ID: "P-1023", Name: "Castor Wheel 75mm", SKU: "CSW-75-30", Warehouse: "DEL-B", Stock: 20, Demand: 55},
		{ID: "P-1024", Name: "Anti-Vibration Pad", SKU: "AVP-50-110", Warehouse: "HYD-D", Stock: 240, Demand: 190},
		{ID: "P-1025", Name: "Proximity Sensor M12", SKU: "PXS-12-35", Warehouse: "BLR-A", Stock: 35, Demand: 35},
		{ID: "P-1026", Name: "Chain Link #40", SKU: "CHL-40-150", Warehouse: "PNQ-C", Stock: 105, Demand: 230},
		{ID: "P-1026", Name: "Chain Link #40", SKU: "CHL-40-150", Warehouse: "DEL-B", Stock: 65, Demand: 30},
	}
}

// internal/register/solis.go
package register

// Solis single-phase string inverter, input registers (function code 4).
var solis = []Descriptor{
	{Name: "Total power generation", Unit: "kWh", Address: 3008, Width: 32, Scale: 0},
	{Name: "kWh today", Unit: "kWh", Address: 3014, Width: 16, Scale: 1},
	{Name: "kWh yesterday", Unit: "kWh", Address: 3015, Width: 16, Scale: 1},
	{Name: "kWh this month", Unit: "kWh", Address: 3010, Width: 32, Scale: 0},
	{Name: "kWh last month", Unit: "kWh", Address: 3012, Width: 32, Scale: 0},

	{Name: "AC power", Unit: "W", Address: 3004, Width: 32, Scale: 0},

	{Name: "DC1 voltage", Unit: "V", Address: 3021, Width: 16, Scale: 1},
	{Name: "DC1 current", Unit: "A", Address: 3022, Width: 16, Scale: 1},
	{Name: "DC2 voltage", Unit: "V", Address: 3023, Width: 16, Scale: 1},
	{Name: "DC2 current", Unit: "A", Address: 3024, Width: 16, Scale: 1},

	{Name: "AC voltage", Unit: "V", Address: 3035, Width: 16, Scale: 1},

	{Name: "Temperature", Unit: "°C", Address: 3041, Width: 16, Scale: 1},

	{Name: "AC frequency", Unit: "Hz", Address: 3042, Width: 16, Scale: 2},
}

// SolisTable returns the production descriptor table.
func SolisTable() (*Table, error) {
	return NewTable(solis...)
}

package market

// SymbolMap maps a benchmark identifier to its external futures ticker.
// It doubles as the whitelist for which benchmarks appear in the final
// payload and the graph: reference data has no tradable prices of its
// own, so only mapped benchmarks carry a price series.
type SymbolMap map[string]string

// DefaultSymbolMap is the proxy-ticker mapping for the reference data set.
func DefaultSymbolMap() SymbolMap {
	return SymbolMap{
		"AAGZU00": "CL=F",   // Crude
		"TS01021": "TI=F",   // Iron Ore
		"AAIDC00": "HO=F",   // Fuel Oil
		"AAGJA00": "RB=F",   // Gasoline
		"TS01034": "MTF=F",  // Coal
		"WAUSA00": "ZW=F",   // Wheat
		"SP500":   "^GSPC",  // Index
	}
}

// Contains reports whether the benchmark id is whitelisted.
func (m SymbolMap) Contains(id string) bool {
	_, ok := m[id]
	return ok
}

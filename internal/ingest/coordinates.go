package ingest

// Coordinate is a latitude/longitude pair.
type Coordinate struct {
	Lat float64
	Lng float64
}

// CoordinateTable maps a port identifier to its coordinates. Ports absent
// from the table are dropped during ingestion; the reference CSVs carry no
// position data and real geocoding is out of scope.
type CoordinateTable map[string]Coordinate

// DefaultCoordinates covers the ports in the reference data set.
func DefaultCoordinates() CoordinateTable {
	return CoordinateTable{
		"TAIPA00": {Lat: 5.3600, Lng: -4.0083},   // Abidjan
		"ALEDC00": {Lat: 31.2001, Lng: 29.9187},  // Alexandria
		"ALGDC00": {Lat: 36.1408, Lng: -5.4562},  // Algeciras
		"TYNPA00": {Lat: 24.0891, Lng: 38.0637},  // Yanbu
		"WILDC00": {Lat: 53.5167, Lng: 8.1333},   // Wilhelmshaven
		"TVAPC00": {Lat: 17.6868, Lng: 83.2185},  // Vishakhapatnam
		"ROT":     {Lat: 51.9225, Lng: 4.4792},   // Rotterdam
		"SIN":     {Lat: 1.3521, Lng: 103.8198},  // Singapore
		"HOU":     {Lat: 29.7604, Lng: -95.3698}, // Houston
	}
}

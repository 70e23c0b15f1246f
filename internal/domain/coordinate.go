package domain

// LocalCoordinate - точка в локальной сетке KATEC (метры)
type LocalCoordinate struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// GeoCoordinate - точка в WGS84 (градусы), всегда lon перед lat
type GeoCoordinate struct {
	Lon float64 `json:"lon"`
	Lat float64 `json:"lat"`
}

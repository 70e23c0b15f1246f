package dto

// ConvertKATECRequest - координаты KATEC для перевода в WGS84
type ConvertKATECRequest struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// ConvertWGS84Request - координаты WGS84 для перевода в KATEC
type ConvertWGS84Request struct {
	Lon float64 `json:"lon"`
	Lat float64 `json:"lat"`
}

// NearbyStationsRequest - запрос списка АЗС вокруг точки KATEC
type NearbyStationsRequest struct {
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	Radius      int     `json:"radius" validate:"omitempty,min=1,max=30000"`
	ProductCode string  `json:"prodcd" validate:"omitempty,oneof=B027 B034 D047 C004 K015"`
}

// StationDetailRequest - запрос детальной информации по идентификатору АЗС
type StationDetailRequest struct {
	UID string `json:"uid" validate:"required"`
}

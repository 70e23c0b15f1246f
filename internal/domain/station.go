package domain

// StationQuery - параметры поиска АЗС вокруг точки KATEC
type StationQuery struct {
	X           float64
	Y           float64
	Radius      int    // meters
	ProductCode string // fuel product code, e.g. B027
}

// DetailQuery - запрос детальной информации по идентификатору АЗС
type DetailQuery struct {
	ID string
}

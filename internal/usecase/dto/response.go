package dto

// XMLResponse - конверт вокруг сырого XML-ответа Opinet
type XMLResponse struct {
	XMLData string `json:"xml_data"`
}

// IndexResponse - описание API для корневого эндпоинта
type IndexResponse struct {
	Message   string   `json:"message"`
	Endpoints []string `json:"endpoints"`
}

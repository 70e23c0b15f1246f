// Package projection реализует преобразование координат между локальной
// сеткой KATEC (поперечная проекция Меркатора на эллипсоиде Бесселя со
// семипараметрическим сдвигом датума) и геодезическими координатами WGS84.
//
// Системы координат описываются proj-строками; оба определения парсятся
// один раз при старте процесса, трансформеры неизменяемы и безопасны для
// конкурентного использования.
package projection

import (
	"fmt"
	"strconv"
	"strings"
)

// Definitions of the two reference systems served by the API.
const (
	KATECDefinition = "+proj=tmerc +lat_0=38N +lon_0=128E +ellps=bessel +x_0=400000 +y_0=600000 +k=0.9999 +units=m +towgs84=-115.80,474.99,674.11,1.16,-2.31,-1.63,6.43"
	WGS84Definition = "+proj=latlong +datum=WGS84 +ellps=WGS84"
)

// Definition - разобранное определение системы координат
type Definition struct {
	Projection    string // "tmerc" or "latlong"
	Ellipsoid     Ellipsoid
	LatOrigin     float64 // degrees
	LonOrigin     float64 // degrees
	FalseEasting  float64 // meters
	FalseNorthing float64 // meters
	ScaleFactor   float64
	ToWGS84       *Helmert // nil when the datum is WGS84 itself
}

// ParseDefinition разбирает proj-строку вида "+key=value +key=value ...".
// Поддерживается ровно то подмножество параметров, которым описаны KATEC и
// WGS84; неизвестный ключ - ошибка, а не молчаливый пропуск.
func ParseDefinition(s string) (Definition, error) {
	def := Definition{ScaleFactor: 1}
	hasEllipsoid := false

	for _, token := range strings.Fields(s) {
		if !strings.HasPrefix(token, "+") {
			return Definition{}, fmt.Errorf("malformed projection parameter %q", token)
		}

		key, value, hasValue := strings.Cut(token[1:], "=")
		if !hasValue {
			if key == "no_defs" {
				continue
			}
			return Definition{}, fmt.Errorf("projection parameter %q requires a value", key)
		}

		var err error
		switch key {
		case "proj":
			if value != "tmerc" && value != "latlong" {
				return Definition{}, fmt.Errorf("unsupported projection type %q", value)
			}
			def.Projection = value
		case "lat_0":
			def.LatOrigin, err = parseAngle(value, "N", "S")
		case "lon_0":
			def.LonOrigin, err = parseAngle(value, "E", "W")
		case "x_0":
			def.FalseEasting, err = strconv.ParseFloat(value, 64)
		case "y_0":
			def.FalseNorthing, err = strconv.ParseFloat(value, 64)
		case "k", "k_0":
			def.ScaleFactor, err = strconv.ParseFloat(value, 64)
		case "ellps":
			def.Ellipsoid, err = ellipsoidByName(value)
			hasEllipsoid = err == nil
		case "datum":
			// только WGS84: эллипсоид WGS84, сдвиг датума не нужен
			if value != "WGS84" {
				return Definition{}, fmt.Errorf("unsupported datum %q", value)
			}
			def.Ellipsoid = WGS84Ellipsoid
			hasEllipsoid = true
		case "towgs84":
			def.ToWGS84, err = parseToWGS84(value)
		case "units":
			if value != "m" {
				return Definition{}, fmt.Errorf("unsupported units %q", value)
			}
		default:
			return Definition{}, fmt.Errorf("unsupported projection parameter %q", key)
		}
		if err != nil {
			return Definition{}, fmt.Errorf("invalid value for %s: %w", key, err)
		}
	}

	if def.Projection == "" {
		return Definition{}, fmt.Errorf("projection definition is missing +proj")
	}
	if !hasEllipsoid {
		return Definition{}, fmt.Errorf("projection definition is missing +ellps or +datum")
	}
	if def.ScaleFactor <= 0 {
		return Definition{}, fmt.Errorf("scale factor must be positive, got %g", def.ScaleFactor)
	}

	return def, nil
}

// parseAngle разбирает угол в градусах с необязательным суффиксом
// полушария ("38N", "128E", "33.5S")
func parseAngle(value, positive, negative string) (float64, error) {
	sign := 1.0
	switch {
	case strings.HasSuffix(value, positive):
		value = strings.TrimSuffix(value, positive)
	case strings.HasSuffix(value, negative):
		sign = -1.0
		value = strings.TrimSuffix(value, negative)
	}

	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, err
	}
	return sign * v, nil
}

// parseToWGS84 разбирает список towgs84: либо три параметра сдвига, либо
// семь (сдвиги в метрах, повороты в угловых секундах, масштаб в ppm)
func parseToWGS84(value string) (*Helmert, error) {
	parts := strings.Split(value, ",")
	if len(parts) != 3 && len(parts) != 7 {
		return nil, fmt.Errorf("towgs84 expects 3 or 7 parameters, got %d", len(parts))
	}

	var params [7]float64
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, err
		}
		params[i] = v
	}

	return newHelmert(params), nil
}

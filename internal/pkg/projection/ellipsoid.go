package projection

import (
	"fmt"
	"math"
)

// Ellipsoid - референц-эллипсоид (большая полуось и обратное сжатие)
type Ellipsoid struct {
	Name string
	A    float64 // semi-major axis, meters
	RF   float64 // reciprocal flattening
}

var (
	BesselEllipsoid = Ellipsoid{Name: "bessel", A: 6377397.155, RF: 299.1528128}
	WGS84Ellipsoid  = Ellipsoid{Name: "WGS84", A: 6378137.0, RF: 298.257223563}
)

func ellipsoidByName(name string) (Ellipsoid, error) {
	switch name {
	case "bessel":
		return BesselEllipsoid, nil
	case "WGS84":
		return WGS84Ellipsoid, nil
	default:
		return Ellipsoid{}, fmt.Errorf("unknown ellipsoid %q", name)
	}
}

// E2 - квадрат первого эксцентриситета
func (e Ellipsoid) E2() float64 {
	f := 1 / e.RF
	return f * (2 - f)
}

// toGeocentric переводит геодезические координаты (радианы, высота в
// метрах) в геоцентрические декартовы (метры)
func (e Ellipsoid) toGeocentric(lon, lat, h float64) (x, y, z float64) {
	e2 := e.E2()
	sinLat := math.Sin(lat)
	n := e.A / math.Sqrt(1-e2*sinLat*sinLat)

	x = (n + h) * math.Cos(lat) * math.Cos(lon)
	y = (n + h) * math.Cos(lat) * math.Sin(lon)
	z = (n*(1-e2) + h) * sinLat
	return x, y, z
}

// toGeodetic - обратный переход; широта ищется итеративно (итерация
// точна при любой высоте), сходимость существенно лучше миллиметра
func (e Ellipsoid) toGeodetic(x, y, z float64) (lon, lat, h float64) {
	e2 := e.E2()
	p := math.Hypot(x, y)

	lon = math.Atan2(y, x)
	lat = math.Atan2(z, p*(1-e2))

	for i := 0; i < 16; i++ {
		sinLat := math.Sin(lat)
		n := e.A / math.Sqrt(1-e2*sinLat*sinLat)
		next := math.Atan2(z+e2*n*sinLat, p)
		if math.Abs(next-lat) < 1e-14 {
			lat = next
			break
		}
		lat = next
	}

	sinLat := math.Sin(lat)
	cosLat := math.Cos(lat)
	n := e.A / math.Sqrt(1-e2*sinLat*sinLat)
	if math.Abs(cosLat) > 1e-12 {
		h = p/cosLat - n
	} else {
		h = math.Abs(z) - n*(1-e2)
	}
	return lon, lat, h
}

const (
	arcSecToRad = math.Pi / (180 * 3600)
	ppm         = 1e-6
)

// Helmert - семипараметрическое преобразование датума (position vector,
// EPSG 9606). Матрица и её точная обратная считаются один раз.
type Helmert struct {
	tx, ty, tz float64
	m          [3][3]float64
	inv        [3][3]float64
}

// newHelmert строит преобразование из параметров towgs84:
// сдвиги в метрах, повороты в угловых секундах, масштаб в ppm
func newHelmert(p [7]float64) *Helmert {
	rx := p[3] * arcSecToRad
	ry := p[4] * arcSecToRad
	rz := p[5] * arcSecToRad
	s := 1 + p[6]*ppm

	h := &Helmert{tx: p[0], ty: p[1], tz: p[2]}
	h.m = [3][3]float64{
		{s, -s * rz, s * ry},
		{s * rz, s, -s * rx},
		{-s * ry, s * rx, s},
	}
	h.inv = invert3x3(h.m)
	return h
}

// Forward применяет преобразование в сторону WGS84
func (h *Helmert) Forward(x, y, z float64) (float64, float64, float64) {
	return h.tx + h.m[0][0]*x + h.m[0][1]*y + h.m[0][2]*z,
		h.ty + h.m[1][0]*x + h.m[1][1]*y + h.m[1][2]*z,
		h.tz + h.m[2][0]*x + h.m[2][1]*y + h.m[2][2]*z
}

// Inverse применяет точное обратное преобразование, так что
// Inverse(Forward(p)) воспроизводит p с точностью до плавающей запятой
func (h *Helmert) Inverse(x, y, z float64) (float64, float64, float64) {
	x -= h.tx
	y -= h.ty
	z -= h.tz
	return h.inv[0][0]*x + h.inv[0][1]*y + h.inv[0][2]*z,
		h.inv[1][0]*x + h.inv[1][1]*y + h.inv[1][2]*z,
		h.inv[2][0]*x + h.inv[2][1]*y + h.inv[2][2]*z
}

func invert3x3(m [3][3]float64) [3][3]float64 {
	det := m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])

	return [3][3]float64{
		{
			(m[1][1]*m[2][2] - m[1][2]*m[2][1]) / det,
			(m[0][2]*m[2][1] - m[0][1]*m[2][2]) / det,
			(m[0][1]*m[1][2] - m[0][2]*m[1][1]) / det,
		},
		{
			(m[1][2]*m[2][0] - m[1][0]*m[2][2]) / det,
			(m[0][0]*m[2][2] - m[0][2]*m[2][0]) / det,
			(m[0][2]*m[1][0] - m[0][0]*m[1][2]) / det,
		},
		{
			(m[1][0]*m[2][1] - m[1][1]*m[2][0]) / det,
			(m[0][1]*m[2][0] - m[0][0]*m[2][1]) / det,
			(m[0][0]*m[1][1] - m[0][1]*m[1][0]) / det,
		},
	}
}

package projection

import (
	"fmt"
	"math"
)

// Предел удаления от осевого меридиана, за которым ряды поперечной
// проекции Меркатора теряют смысл (~40 градусов)
const maxLonDelta = 0.7 // radians

// projector - пара прямого и обратного отображений между геодезическими
// координатами (радианы) и координатами проекции
type projector interface {
	forward(lon, lat float64) (x, y float64, err error)
	inverse(x, y float64) (lon, lat float64, err error)
}

// tmerc - эллипсоидальная поперечная проекция Меркатора (ряды Снайдера).
// Все коэффициенты считаются один раз при построении.
type tmerc struct {
	ell  Ellipsoid
	lat0 float64 // radians
	lon0 float64 // radians
	k0   float64
	x0   float64
	y0   float64

	e2  float64 // first eccentricity squared
	ep2 float64 // second eccentricity squared
	e1  float64

	// meridian arc series coefficients
	mc1, mc2, mc3, mc4 float64
	m0                 float64 // meridian arc at lat0
}

func newTMerc(def Definition) *tmerc {
	e2 := def.Ellipsoid.E2()

	p := &tmerc{
		ell:  def.Ellipsoid,
		lat0: def.LatOrigin * math.Pi / 180,
		lon0: def.LonOrigin * math.Pi / 180,
		k0:   def.ScaleFactor,
		x0:   def.FalseEasting,
		y0:   def.FalseNorthing,
		e2:   e2,
		ep2:  e2 / (1 - e2),
	}

	p.mc1 = 1 - e2/4 - 3*e2*e2/64 - 5*e2*e2*e2/256
	p.mc2 = 3*e2/8 + 3*e2*e2/32 + 45*e2*e2*e2/1024
	p.mc3 = 15*e2*e2/256 + 45*e2*e2*e2/1024
	p.mc4 = 35 * e2 * e2 * e2 / 3072

	sq := math.Sqrt(1 - e2)
	p.e1 = (1 - sq) / (1 + sq)

	p.m0 = p.meridianArc(p.lat0)
	return p
}

// meridianArc - длина дуги меридиана от экватора до широты lat
func (p *tmerc) meridianArc(lat float64) float64 {
	return p.ell.A * (p.mc1*lat -
		p.mc2*math.Sin(2*lat) +
		p.mc3*math.Sin(4*lat) -
		p.mc4*math.Sin(6*lat))
}

func (p *tmerc) forward(lon, lat float64) (float64, float64, error) {
	if math.Abs(lat) > math.Pi/2 {
		return 0, 0, fmt.Errorf("latitude %.6f out of range [-90, 90]", lat*180/math.Pi)
	}

	dLon := normalizeLon(lon - p.lon0)
	if math.Abs(dLon) > maxLonDelta {
		return 0, 0, fmt.Errorf("point too far from the central meridian")
	}

	sinLat := math.Sin(lat)
	cosLat := math.Cos(lat)

	n := p.ell.A / math.Sqrt(1-p.e2*sinLat*sinLat)
	t := math.Tan(lat) * math.Tan(lat)
	c := p.ep2 * cosLat * cosLat
	a := dLon * cosLat
	m := p.meridianArc(lat)

	a2 := a * a
	a3 := a2 * a

	x := p.x0 + p.k0*n*(a+
		(1-t+c)*a3/6+
		(5-18*t+t*t+72*c-58*p.ep2)*a3*a2/120)

	y := p.y0 + p.k0*(m-p.m0+
		n*math.Tan(lat)*(a2/2+
			(5-t+9*c+4*c*c)*a2*a2/24+
			(61-58*t+t*t+600*c-330*p.ep2)*a3*a3/720))

	if !isFinite(x) || !isFinite(y) {
		return 0, 0, fmt.Errorf("projection produced a non-finite result")
	}
	return x, y, nil
}

func (p *tmerc) inverse(x, y float64) (float64, float64, error) {
	m := p.m0 + (y-p.y0)/p.k0
	mu := m / (p.ell.A * p.mc1)
	if math.Abs(mu) > math.Pi/2 {
		return 0, 0, fmt.Errorf("northing %.3f outside the projection domain", y)
	}

	e1 := p.e1
	lat1 := mu +
		(3*e1/2-27*e1*e1*e1/32)*math.Sin(2*mu) +
		(21*e1*e1/16-55*e1*e1*e1*e1/32)*math.Sin(4*mu) +
		(151*e1*e1*e1/96)*math.Sin(6*mu) +
		(1097*e1*e1*e1*e1/512)*math.Sin(8*mu)

	sinLat1 := math.Sin(lat1)
	cosLat1 := math.Cos(lat1)
	tanLat1 := math.Tan(lat1)

	w := 1 - p.e2*sinLat1*sinLat1
	n1 := p.ell.A / math.Sqrt(w)
	r1 := p.ell.A * (1 - p.e2) / (w * math.Sqrt(w))

	t1 := tanLat1 * tanLat1
	c1 := p.ep2 * cosLat1 * cosLat1

	d := (x - p.x0) / (n1 * p.k0)
	if math.Abs(d) > 0.5 {
		return 0, 0, fmt.Errorf("easting %.3f outside the projection domain", x)
	}

	d2 := d * d
	d3 := d2 * d

	lat := lat1 - (n1*tanLat1/r1)*(d2/2-
		(5+3*t1+10*c1-4*c1*c1-9*p.ep2)*d2*d2/24+
		(61+90*t1+298*c1+45*t1*t1-252*p.ep2-3*c1*c1)*d3*d3/720)

	lon := p.lon0 + (d-
		(1+2*t1+c1)*d3/6+
		(5-2*c1+28*t1-3*c1*c1+8*p.ep2+24*t1*t1)*d3*d2/120)/cosLat1

	if !isFinite(lon) || !isFinite(lat) {
		return 0, 0, fmt.Errorf("projection produced a non-finite result")
	}
	return lon, lat, nil
}

// geographic - тождественная "проекция" для latlong-систем:
// только перевод градусы/радианы и контроль диапазона
type geographic struct{}

func (geographic) forward(lon, lat float64) (float64, float64, error) {
	return lon * 180 / math.Pi, lat * 180 / math.Pi, nil
}

func (geographic) inverse(x, y float64) (float64, float64, error) {
	if math.Abs(y) > 90 {
		return 0, 0, fmt.Errorf("latitude %.6f out of range [-90, 90]", y)
	}
	if math.Abs(x) > 360 {
		return 0, 0, fmt.Errorf("longitude %.6f out of range [-360, 360]", x)
	}
	return x * math.Pi / 180, y * math.Pi / 180, nil
}

func normalizeLon(lon float64) float64 {
	for lon > math.Pi {
		lon -= 2 * math.Pi
	}
	for lon < -math.Pi {
		lon += 2 * math.Pi
	}
	return lon
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

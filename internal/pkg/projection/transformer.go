package projection

import (
	"fmt"
	"math"
)

// Transformer - преобразование координат между двумя системами.
// Строится один раз при старте процесса и переиспользуется для каждого
// запроса: построение сравнительно дорогое, сам Transform - чистая функция.
type Transformer struct {
	src        projector
	dst        projector
	srcEll     Ellipsoid
	dstEll     Ellipsoid
	srcShift   *Helmert
	dstShift   *Helmert
	datumShift bool
}

// NewTransformer строит преобразование из системы from в систему to
func NewTransformer(from, to Definition) (*Transformer, error) {
	src, err := newProjector(from)
	if err != nil {
		return nil, fmt.Errorf("source system: %w", err)
	}
	dst, err := newProjector(to)
	if err != nil {
		return nil, fmt.Errorf("target system: %w", err)
	}

	return &Transformer{
		src:      src,
		dst:      dst,
		srcEll:   from.Ellipsoid,
		dstEll:   to.Ellipsoid,
		srcShift: from.ToWGS84,
		dstShift: to.ToWGS84,
		datumShift: from.ToWGS84 != nil || to.ToWGS84 != nil ||
			from.Ellipsoid != to.Ellipsoid,
	}, nil
}

func newProjector(def Definition) (projector, error) {
	switch def.Projection {
	case "tmerc":
		return newTMerc(def), nil
	case "latlong":
		return geographic{}, nil
	default:
		return nil, fmt.Errorf("unsupported projection type %q", def.Projection)
	}
}

// Transform преобразует одну пару координат. Порядок аргументов и
// результатов всегда явный: x перед y, lon перед lat - независимо от
// направления преобразования.
func (t *Transformer) Transform(x, y float64) (float64, float64, error) {
	if !isFinite(x) || !isFinite(y) {
		return 0, 0, fmt.Errorf("coordinates must be finite numbers")
	}

	lon, lat, err := t.src.inverse(x, y)
	if err != nil {
		return 0, 0, err
	}

	if t.datumShift {
		lon, lat = t.shiftDatum(lon, lat)
	}

	return t.project(lon, lat)
}

// shiftDatum переводит геодезические координаты между датумами через
// геоцентрические. Сетка живёт на стороне towgs84-датума с нулевой
// высотой: в её сторону высота исходной стороны подбирается итеративно,
// пока высота на целевой стороне не обнулится. Так оба направления -
// точные обратные друг другу, а не два разных 3D-преобразования.
func (t *Transformer) shiftDatum(lon, lat float64) (float64, float64) {
	srcH := 0.0
	var dstLon, dstLat float64

	for i := 0; i < 8; i++ {
		gx, gy, gz := t.srcEll.toGeocentric(lon, lat, srcH)
		if t.srcShift != nil {
			gx, gy, gz = t.srcShift.Forward(gx, gy, gz)
		}
		if t.dstShift != nil {
			gx, gy, gz = t.dstShift.Inverse(gx, gy, gz)
		}

		var dstH float64
		dstLon, dstLat, dstH = t.dstEll.toGeodetic(gx, gy, gz)
		if t.dstShift == nil || math.Abs(dstH) < 1e-9 {
			break
		}
		// высота целевой стороны реагирует на srcH почти один к одному
		srcH -= dstH
	}

	return dstLon, dstLat
}

func (t *Transformer) project(lon, lat float64) (float64, float64, error) {
	ox, oy, err := t.dst.forward(lon, lat)
	if err != nil {
		return 0, 0, err
	}
	if !isFinite(ox) || !isFinite(oy) {
		return 0, 0, fmt.Errorf("transformation produced a non-finite result")
	}
	return ox, oy, nil
}

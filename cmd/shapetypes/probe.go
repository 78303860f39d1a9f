package main

import (
	"github.com/deardanieldavis/shapetypes-sub000/dbg"
	"github.com/deardanieldavis/shapetypes-sub000/shapes"
	"github.com/deardanieldavis/shapetypes-sub000/tolerance"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type classifiedPoint struct {
	point shapes.Point
	in    shapes.Containment
}

// prober runs each probe against the region and remembers what it found
// for drawing.
type prober struct {
	it     shapes.Intersector
	rng    shapes.Range
	region shapes.Shape
	tol    tolerance.Tolerance
	log    logrus.FieldLogger

	hits       []shapes.Point
	classified []classifiedPoint
}

func (p *prober) probeAll(probes shapes.Shapes) error {
	for _, probe := range probes {
		if err := p.probe(probe); err != nil {
			return errors.Wrapf(err, "probing with %s", dbg.Describe(probe))
		}
	}
	return nil
}

func (p *prober) probe(probe shapes.Shape) error {
	log := p.log.WithFields(logrus.Fields{"probe": dbg.Name(probe), "shape": dbg.Describe(probe)})

	switch s := probe.(type) {
	case shapes.Point:
		in, err := p.contains(s)
		if err != nil {
			return err
		}
		p.classified = append(p.classified, classifiedPoint{s, in})
		log.WithField("containment", dbg.Containment(in)).Info("classified")

	case shapes.Line:
		params, err := p.it.Line(s, p.region)
		if err != nil {
			return err
		}
		for _, t := range params {
			p.hits = append(p.hits, s.PointAt(t))
		}
		log.WithField("params", dbg.Params(params)).Info("intersected")

	case shapes.Ray:
		params, err := p.it.Ray(s, p.rng, p.region)
		if err != nil {
			return err
		}
		for _, t := range params {
			p.hits = append(p.hits, s.PointAt(t))
		}
		log.WithFields(logrus.Fields{"range": p.rng, "params": dbg.Params(params)}).Info("intersected")

	case shapes.Polyline:
		params, err := p.it.Polyline(s, p.region)
		if err != nil {
			return err
		}
		for _, t := range params {
			p.hits = append(p.hits, s.PointAt(t))
		}
		log.WithField("params", dbg.Params(params)).Info("intersected")

	case shapes.Rectangle:
		return p.probe(s.Outline())

	case shapes.Circle:
		// A circle can't lead an intersection, so walk the region's rings
		// against it instead.
		for i, ring := range rings(p.region) {
			params, err := p.it.Polyline(ring, s)
			if err != nil {
				return err
			}
			for _, t := range params {
				p.hits = append(p.hits, ring.PointAt(t))
			}
			log.WithFields(logrus.Fields{"ring": i, "params": dbg.Params(params)}).Info("intersected ring")
		}
		log.WithField("center", dbg.Containment(orUndefined(p.contains(s.Center)))).Debug("circle center")

	case shapes.Polygon, shapes.Shapes:
		overlap, err := shapes.Intersection(p.region, s, p.tol)
		if err != nil {
			return err
		}
		var area float64
		for _, o := range overlap {
			area += areaOf(o)
		}
		log.WithFields(logrus.Fields{"pieces": len(overlap), "area": area}).Info("overlap")

	default:
		return errors.Wrapf(shapes.ErrUnsupportedShape, "probe %T", probe)
	}
	return nil
}

func (p *prober) contains(pt shapes.Point) (shapes.Containment, error) {
	switch r := p.region.(type) {
	case shapes.Polyline:
		return r.Contains(pt, p.tol)
	case shapes.Polygon:
		return r.Contains(pt, p.tol)
	}
	return shapes.Undefined, errors.Wrapf(shapes.ErrUnsupportedShape, "region %T", p.region)
}

func rings(region shapes.Shape) []shapes.Polyline {
	switch r := region.(type) {
	case shapes.Polyline:
		return []shapes.Polyline{r}
	case shapes.Polygon:
		return r.Edges()
	}
	return nil
}

func areaOf(s shapes.Shape) float64 {
	switch s := s.(type) {
	case shapes.Polygon:
		return s.Area()
	case shapes.Polyline:
		a := s.SignedArea()
		if a < 0 {
			return -a
		}
		return a
	}
	return 0
}

func orUndefined(in shapes.Containment, err error) shapes.Containment {
	if err != nil {
		return shapes.Undefined
	}
	return in
}

// Command shapetypes probes a region with points, lines and rays, logging
// where they cross it and optionally drawing the result.
//
// The region comes from an SVG file, an embedded fixture, or stdin. Input on
// stdin should be newline separated points in the form "x y", with each ring
// separated by an extra newline. The first ring is the boundary and any
// further rings are holes.
package main

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/deardanieldavis/shapetypes-sub000/dbg"
	"github.com/deardanieldavis/shapetypes-sub000/internal/fixture"
	"github.com/deardanieldavis/shapetypes-sub000/render"
	"github.com/deardanieldavis/shapetypes-sub000/shapes"
	"github.com/deardanieldavis/shapetypes-sub000/tolerance"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"
)

type options struct {
	svg, fixture, config string
	points, lines, rays  []string
	rng                  string
	png                  string
	imgcat               bool
	scale                float64
}

var ranges = map[string]shapes.Range{
	"both":     shapes.RangeBoth,
	"positive": shapes.RangePositive,
	"zero":     shapes.RangePositiveAndZero,
}

func main() {
	app := kingpin.New("shapetypes", "Probe a 2D region with points, lines and rays.")
	var opts options
	app.Flag("svg", "SVG file holding the region (polygon elements) and probes.").ExistingFileVar(&opts.svg)
	app.Flag("fixture", "Embedded fixture to use as the region: "+strings.Join(fixture.Names(), ", ")+".").StringVar(&opts.fixture)
	app.Flag("config", "TOML or YAML file with tolerance settings.").ExistingFileVar(&opts.config)
	app.Flag("point", "Point to classify, as x,y.").StringsVar(&opts.points)
	app.Flag("line", "Segment to intersect, as x0,y0,x1,y1.").StringsVar(&opts.lines)
	app.Flag("ray", "Ray to intersect, as x,y,dx,dy.").StringsVar(&opts.rays)
	app.Flag("range", "Which ray parameters count.").Default("positive").EnumVar(&opts.rng, "both", "positive", "zero")
	app.Flag("png", "Write a drawing of the result to this file.").StringVar(&opts.png)
	app.Flag("imgcat", "Print a drawing of the result in the terminal (iTerm only).").BoolVar(&opts.imgcat)
	app.Flag("scale", "Pixels per unit in drawings.").Default("4").Float64Var(&opts.scale)
	logLevel := app.Flag("log-level", "Log level.").Default("info").Enum("debug", "info", "warn", "error")
	kingpin.MustParse(app.Parse(os.Args[1:]))

	log := logrus.New()
	log.Formatter = &logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
		DisableSorting:  true,
	}
	level, _ := logrus.ParseLevel(*logLevel)
	log.SetLevel(level)

	if err := run(opts, os.Stdin, log); err != nil {
		log.WithError(err).Fatal("failed")
	}
}

func run(opts options, stdin io.Reader, log logrus.FieldLogger) error {
	tol := tolerance.Default()
	if opts.config != "" {
		var err error
		if tol, err = tolerance.Load(opts.config); err != nil {
			return err
		}
		tolerance.SetDefault(tol)
	}
	log.WithFields(logrus.Fields{"distance": tol.Distance, "angle": tol.Angle}).Debug("tolerance")

	region, probes, err := loadRegion(opts, stdin, tol)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{"name": dbg.Name(region), "region": dbg.Describe(region)}).Info("loaded region")

	for _, raw := range opts.points {
		p, err := parsePoint(raw)
		if err != nil {
			return err
		}
		probes = append(probes, p)
	}
	for _, raw := range opts.lines {
		v, err := parseFloats(raw, 4)
		if err != nil {
			return errors.Wrap(err, "--line")
		}
		probes = append(probes, shapes.NewLine(v[0], v[1], v[2], v[3]))
	}
	for _, raw := range opts.rays {
		v, err := parseFloats(raw, 4)
		if err != nil {
			return errors.Wrap(err, "--ray")
		}
		probes = append(probes, shapes.NewRay(shapes.Point{X: v[0], Y: v[1]}, shapes.Vector{X: v[2], Y: v[3]}))
	}

	p := &prober{
		it:     shapes.NewIntersector(tol),
		rng:    ranges[opts.rng],
		region: region,
		tol:    tol,
		log:    log,
	}
	if err := p.probeAll(probes); err != nil {
		return err
	}

	if opts.png == "" && !opts.imgcat {
		return nil
	}
	cv := render.Fit(opts.scale, region, probes).WithLabels()
	cv.Shape(region)
	cv.Shape(probes)
	cv.Markers(p.hits...)
	for _, c := range p.classified {
		cv.Classified(c.point, c.in)
	}
	if opts.png != "" {
		if err := cv.SavePNG(opts.png); err != nil {
			return err
		}
		log.WithField("file", opts.png).Info("saved drawing")
	}
	if opts.imgcat {
		return cv.Cat(os.Stdout)
	}
	return nil
}

// loadRegion picks the region source. SVG and fixture scenes bring their own
// probes along.
func loadRegion(opts options, stdin io.Reader, tol tolerance.Tolerance) (shapes.Shape, shapes.Shapes, error) {
	var scene *fixture.Scene
	switch {
	case opts.svg != "" && opts.fixture != "":
		return nil, nil, errors.New("--svg and --fixture are mutually exclusive")
	case opts.svg != "":
		f, err := os.Open(opts.svg)
		if err != nil {
			return nil, nil, errors.Wrap(err, "opening svg")
		}
		defer f.Close()
		if scene, err = fixture.Parse(f, tol); err != nil {
			return nil, nil, errors.Wrap(err, opts.svg)
		}
	case opts.fixture != "":
		var err error
		if scene, err = fixture.Load(opts.fixture, tol); err != nil {
			return nil, nil, err
		}
	default:
		rings, err := readRings(stdin)
		if err != nil {
			return nil, nil, err
		}
		region, err := shapes.FromRings(rings, tol)
		return region, nil, errors.Wrap(err, "building region from stdin")
	}
	if scene.Region == nil {
		return nil, nil, errors.New("no polygon elements to use as the region")
	}
	return scene.Region, scene.Probes, nil
}

func readRings(in io.Reader) ([][]shapes.Point, error) {
	var rings [][]shapes.Point
	// Scan lines
	scanner := bufio.NewScanner(in)
	var points []shapes.Point
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())

		// If it's empty, and we collected any points, this is the end of the ring
		if line == "" {
			if len(points) > 0 {
				rings = append(rings, points)
				points = nil
			}
			continue
		}

		v, err := parseFloats(strings.Join(strings.Fields(line), ","), 2)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNo)
		}
		points = append(points, shapes.Point{X: v[0], Y: v[1]})
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading rings")
	}

	// Handle trailing ring if any
	if len(points) > 0 {
		rings = append(rings, points)
	}
	return rings, nil
}

func parsePoint(raw string) (shapes.Point, error) {
	v, err := parseFloats(raw, 2)
	if err != nil {
		return shapes.Point{}, errors.Wrap(err, "--point")
	}
	return shapes.Point{X: v[0], Y: v[1]}, nil
}

// parseFloats reads exactly n comma separated numbers.
func parseFloats(raw string, n int) ([]float64, error) {
	parts := strings.Split(raw, ",")
	if len(parts) != n {
		return nil, errors.Errorf("expected %d comma separated numbers, got %q", n, raw)
	}
	v := make([]float64, n)
	for i, part := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid number %q", part)
		}
		v[i] = f
	}
	return v, nil
}

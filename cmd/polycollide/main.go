package main

import (
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"sort"
	"strings"

	kingpin "github.com/alecthomas/kingpin/v2"
	"github.com/logrusorgru/aurora"
	"github.com/osuushi/collide/advanced"
	"github.com/osuushi/collide/config"
	"github.com/osuushi/collide/internal/shapes"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	logging "github.com/op/go-logging"
)

var log = logging.MustGetLogger("collide:cmd")

// Flags given on the command line win over the config file, including
// --epsilon 0 and --no-closing-edges.
var closingEdgesSet, epsilonSet, rejectDegenerateSet bool

var (
	configFile       = kingpin.Flag("config", "Load configuration from a TOML file.").PlaceHolder("FILE").Short('c').ExistingFile()
	geojsonFile      = kingpin.Flag("geojson", "Read polygons from a GeoJSON feature collection.").PlaceHolder("FILE").ExistingFile()
	svgFile          = kingpin.Flag("svg", "Read <polygon> elements from an SVG document.").PlaceHolder("FILE").ExistingFile()
	sampleSet        = kingpin.Flag("samples", "Use a built-in sample set instead of reading input ("+strings.Join(sampleNames(), ", ")+").").Enum(sampleNames()...)
	closingEdges     = kingpin.Flag("closing-edges", "Also test each polygon's closing edge.").IsSetByUser(&closingEdgesSet).Bool()
	epsilon          = kingpin.Flag("epsilon", "Tolerance for comparing slopes and intercepts.").IsSetByUser(&epsilonSet).Float64()
	rejectDegenerate = kingpin.Flag("reject-degenerate", "Fail on zero length edges.").IsSetByUser(&rejectDegenerateSet).Bool()
	drawFile         = kingpin.Flag("draw", "Render the polygons and their crossings to a PNG.").PlaceHolder("FILE").String()
	drawScale        = kingpin.Flag("scale", "Pixels per unit when drawing.").Default("50").Float64()
	useImgcat        = kingpin.Flag("imgcat", "Print the rendered PNG to the terminal (iTerm only).").Bool()
	verbose          = kingpin.Flag("verbose", "Log at debug level.").Short('v').Bool()
)

// Check every pair of polygons for collision. Input on stdin should be newline
// separated points in the form "x y", with each polygon separated by an extra
// newline, unless --geojson, --svg or --samples is given.
func main() {
	kingpin.CommandLine.Help = "Reports which pairs of polygons collide."
	kingpin.Parse()

	cfg, closeLogs, err := loadConfig()
	if err != nil {
		fatal(err)
	}
	defer closeLogs()
	collider := cfg.NewCollider()

	polygons, err := readPolygons()
	if err != nil {
		fatal(err)
	}
	log.Infof("Read %d polygons", len(polygons))

	results, err := evaluatePairs(collider, polygons)
	if err != nil {
		fatal(err)
	}
	printResults(os.Stdout, results)

	if *drawFile != "" {
		if err := drawPolygons(*drawFile, *drawScale, polygons, results, collider); err != nil {
			fatal(err)
		}
	}
}

func fatal(err error) {
	log.Errorf("%+v", err)
	os.Exit(1)
}

// Configuration comes from the defaults, then the config file, then flags.
func loadConfig() (config.Config, func() error, error) {
	cfg := config.Default()
	if *configFile != "" {
		f, err := os.Open(*configFile)
		if err != nil {
			return cfg, nil, errors.Wrap(err, "opening config")
		}
		defer f.Close()
		if err := cfg.Load(f); err != nil {
			return cfg, nil, err
		}
	}
	applyFlags(&cfg)

	closeLogs, err := cfg.SetupLogging()
	return cfg, closeLogs, err
}

func applyFlags(cfg *config.Config) {
	if closingEdgesSet {
		cfg.Collider.ClosingEdges = *closingEdges
	}
	if rejectDegenerateSet {
		cfg.Collider.RejectDegenerate = *rejectDegenerate
	}
	if epsilonSet {
		cfg.Collider.Epsilon = *epsilon
	}
	if *verbose {
		for i := range cfg.Logging {
			cfg.Logging[i].Level = "debug"
		}
	}
}

func readPolygons() ([]advanced.Polygon, error) {
	switch {
	case *sampleSet != "":
		return shapes.Samples()[*sampleSet], nil
	case *geojsonFile != "":
		data, err := ioutil.ReadFile(*geojsonFile)
		if err != nil {
			return nil, errors.Wrap(err, "reading geojson")
		}
		return shapes.ReadGeoJSON(data)
	case *svgFile != "":
		f, err := os.Open(*svgFile)
		if err != nil {
			return nil, errors.Wrap(err, "opening svg")
		}
		defer f.Close()
		return shapes.ReadSVG(f)
	}
	return shapes.ReadText(os.Stdin)
}

type pairResult struct {
	i, j     int
	collides bool
	crossing advanced.Crossing
}

// Every pair is independent, so they are all evaluated at once. Each goroutine
// only writes its own slot.
func evaluatePairs(collider advanced.Collider, polygons []advanced.Polygon) ([]pairResult, error) {
	results := []pairResult{}
	for i := 0; i < len(polygons)-1; i++ {
		for j := i + 1; j < len(polygons); j++ {
			results = append(results, pairResult{i: i, j: j})
		}
	}

	var g errgroup.Group
	for k := range results {
		result := &results[k]
		g.Go(func() error {
			crossing, found, err := collider.FirstCrossing(polygons[result.i], polygons[result.j])
			if err != nil {
				return errors.Wrapf(err, "shape %d vs shape %d", result.i, result.j)
			}
			result.collides = found
			result.crossing = crossing
			return nil
		})
	}
	return results, g.Wait()
}

func printResults(w io.Writer, results []pairResult) {
	for _, result := range results {
		verdict := aurora.Red("not intersects")
		if result.collides {
			verdict = aurora.Green("intersects")
		}
		fmt.Fprintf(w, "Shape %d vs Shape %d: %s\n", result.i, result.j, verdict)
		if result.collides {
			log.Debugf("Shape %d edge %d meets shape %d edge %d: %s",
				result.i, result.crossing.FirstIndex, result.j, result.crossing.SecondIndex, result.crossing.Result)
		}
	}
}

func sampleNames() []string {
	names := []string{}
	for name := range shapes.Samples() {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

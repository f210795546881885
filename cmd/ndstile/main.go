package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"strconv"

	"github.com/ndstools/ndstile/internal/adapters/geojson"
	"github.com/ndstools/ndstile/internal/core/nds"
	"github.com/ndstools/ndstile/internal/core/ports"
	"github.com/ndstools/ndstile/internal/core/wgs84"
	"github.com/ndstools/ndstile/internal/pkg/config"
	"github.com/ndstools/ndstile/internal/pkg/logging"
)

const usage = `usage: ndstile <command> [args]

commands:
  coord <lon> <lat>          NDS units and Morton code of a WGS84 position
  tile <level> <lon> <lat>   tile of the given level containing a position
  bbox <packedId>            bounding box and center of a packed tile id`

func main() {
	if len(os.Args) < 2 {
		log.Fatal(usage)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)

	var exporter ports.GeometryExporter = geojson.Encoder{}

	switch os.Args[1] {
	case "coord":
		runCoord(cfg, exporter, os.Args[2:])
	case "tile":
		runTile(cfg, exporter, os.Args[2:])
	case "bbox":
		runBBox(cfg, exporter, os.Args[2:])
	default:
		log.Fatalf("unknown command: %s\n%s", os.Args[1], usage)
	}
}

func runCoord(cfg *config.Config, exporter ports.GeometryExporter, args []string) {
	if len(args) != 2 {
		log.Fatal("usage: ndstile coord <lon> <lat>")
	}
	lon := parseFloat(args[0], "lon")
	lat := parseFloat(args[1], "lat")

	c, err := nds.FromDegrees(lon, lat)
	if err != nil {
		log.Fatalf("coord: %v", err)
	}
	slog.Debug("converted coordinate", "lon", c.Longitude, "lat", c.Latitude)

	if cfg.Output.Format == "geojson" {
		printGeoJSON(exporter.Point(c.ToWGS84()))
		return
	}
	fmt.Printf("longitude  %d\n", c.Longitude)
	fmt.Printf("latitude   %d\n", c.Latitude)
	fmt.Printf("morton     %d\n", c.MortonCode())
}

func runTile(cfg *config.Config, exporter ports.GeometryExporter, args []string) {
	if len(args) != 3 {
		log.Fatal("usage: ndstile tile <level> <lon> <lat>")
	}
	level := parseInt(args[0], "level")
	lon := parseFloat(args[1], "lon")
	lat := parseFloat(args[2], "lat")

	geo, err := wgs84.New(lon, lat)
	if err != nil {
		log.Fatalf("tile: %v", err)
	}
	t, err := nds.TileWithWGS84(int(level), geo)
	if err != nil {
		log.Fatalf("tile: %v", err)
	}
	slog.Debug("resolved tile", "level", t.Level(), "number", t.Number())

	if cfg.Output.Format == "geojson" {
		printGeoJSON(exporter.Polygon(t.BBox().ToWGS84()))
		return
	}
	printTile(t)
}

func runBBox(cfg *config.Config, exporter ports.GeometryExporter, args []string) {
	if len(args) != 1 {
		log.Fatal("usage: ndstile bbox <packedId>")
	}
	id, err := strconv.ParseInt(args[0], 10, 32)
	if err != nil {
		log.Fatalf("invalid packedId %q: %v", args[0], err)
	}

	t, err := nds.NewTileFromPackedID(int32(id))
	if err != nil {
		log.Fatalf("bbox: %v", err)
	}

	if cfg.Output.Format == "geojson" {
		printGeoJSON(exporter.Polygon(t.BBox().ToWGS84()))
		return
	}
	printTile(t)
}

func printTile(t nds.Tile) {
	b := t.BBox()
	c := t.Center()
	w := b.ToWGS84()
	fmt.Printf("level      %d\n", t.Level())
	fmt.Printf("number     %d\n", t.Number())
	fmt.Printf("packed id  %d\n", t.PackedID())
	fmt.Printf("bbox       n=%d e=%d s=%d w=%d\n", b.North, b.East, b.South, b.West)
	fmt.Printf("bbox deg   n=%.6f e=%.6f s=%.6f w=%.6f\n", w.North, w.East, w.South, w.West)
	fmt.Printf("center     %d, %d\n", c.Longitude, c.Latitude)
}

func printGeoJSON(data []byte, err error) {
	if err != nil {
		log.Fatalf("geojson: %v", err)
	}
	fmt.Println(string(data))
}

func parseFloat(s, name string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		log.Fatalf("invalid %s %q: %v", name, s, err)
	}
	return v
}

func parseInt(s, name string) int64 {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		log.Fatalf("invalid %s %q: %v", name, s, err)
	}
	return v
}

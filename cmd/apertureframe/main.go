// Command apertureframe prints EXIF metadata and bordered-frame geometry for
// JPEG files. It is a thin shell around the library packages, mainly useful
// for inspecting what a renderer would be handed.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"image"
	_ "image/jpeg"
	"log/slog"
	"os"

	apertureframe "github.com/nobothehobo/Aperture-Frame"
	"github.com/nobothehobo/Aperture-Frame/framex"
)

var logger = slog.New(slog.NewTextHandler(os.Stderr, nil))

const defaultTemplate = "{camera} · {focal}mm · f/{aperture} · {shutter} · ISO {iso}"

func main() {
	border := flag.Float64("border", 10, "Border thickness as percent of the short image edge")
	aspect := flag.String("aspect", "original", "Aspect preset: original, 4:5, 1:1, 9:16")
	template := flag.String("template", defaultTemplate, "Caption template")
	useExiftool := flag.Bool("exiftool", false, "Fall back to an external exiftool process when native extraction fails")
	raw := flag.Bool("raw", false, "Dump the raw tag values consulted during extraction")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Usage: apertureframe [flags] <image.jpg> ...")
		os.Exit(1)
	}

	var fallback *exiftoolService
	if *useExiftool {
		fallback = &exiftoolService{}
	}

	exitCode := 0
	for _, path := range flag.Args() {
		if err := run(path, *border, framex.AspectPreset(*aspect), *template, *raw, fallback); err != nil {
			logger.Error("inspect failed", "path", path, "err", err)
			exitCode = 1
		}
	}
	if fallback != nil {
		fallback.Close()
	}
	os.Exit(exitCode)
}

func run(path string, border float64, preset framex.AspectPreset, template string, raw bool, fallback *exiftoolService) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %q err, %w", path, err)
	}
	cfg, _, err := image.DecodeConfig(bytes.NewReader(b))
	if err != nil {
		return fmt.Errorf("decode config %q err, %w", path, err)
	}

	plan := apertureframe.Plan(b, cfg.Width, cfg.Height, border, preset)
	if plan.Meta.Unavailable && fallback != nil {
		if meta, ok := fallback.Metadata(path); ok {
			plan.Meta = meta
		}
	}

	fmt.Printf("%s\n", path)
	fmt.Printf("  caption      %s\n", apertureframe.RenderCaption(template, plan.Meta))
	fmt.Printf("  orientation  %d\n", plan.Orientation)
	fmt.Printf("  image        %dx%d\n", plan.Width, plan.Height)
	fmt.Printf("  canvas       %dx%d border %.0fpx content @(%d,%d)\n",
		plan.Layout.CanvasWidth, plan.Layout.CanvasHeight,
		plan.Layout.BorderPx, plan.Layout.ContentX, plan.Layout.ContentY)
	fmt.Printf("  safe scale   %.4f\n", plan.Scale)
	if raw {
		for name, v := range plan.Meta.Raw {
			fmt.Printf("  raw %-24s %s\n", name, v)
		}
	}
	return nil
}

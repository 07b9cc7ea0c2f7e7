package main

import (
	"flag"
	"fmt"
	"os"

	"text-to-stereogram/internal/config"
	"text-to-stereogram/internal/depth"
	"text-to-stereogram/internal/encode"
	"text-to-stereogram/internal/imaging"
	"text-to-stereogram/internal/preview"
	"text-to-stereogram/internal/raster"
	"text-to-stereogram/internal/stereogram"
)

func main() {
	configFile := flag.String("config", "", "Path to JSON config file")
	width := flag.Int("w", 0, "Output width")
	height := flag.Int("h", 0, "Output height")
	fontSize := flag.Int("s", 0, "Font size (text mode)")
	fontPath := flag.String("f", "", "Font filename (text mode)")
	tilePath := flag.String("t", "", "Input tile image filename")
	outPath := flag.String("o", "", "Output image filename (.png or .webp)")
	mapPath := flag.String("m", "", "Input depth map image filename")
	crossEyed := flag.Bool("c", false, "Generate cross-eyed autostereogram (as opposed to wall-eyed)")
	depthValue := flag.Int("d", 0, "Depth of the text above the far plane, 1 .. 255 (near)")
	divisor := flag.Float64("l", 0, "Pattern length divisor: at the near plane, pattern length changes by about tile width divided by this")
	noPreview := flag.Bool("no-preview", false, "Skip the preview window")
	flag.Usage = usage
	flag.Parse()

	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fail("Error loading config: %v", err)
		}
	}

	cfg.Resolve(config.Flags{
		Width:          *width,
		Height:         *height,
		TilePath:       *tilePath,
		FontPath:       *fontPath,
		FontSize:       *fontSize,
		DepthValue:     *depthValue,
		DepthMapPath:   *mapPath,
		OutputPath:     *outPath,
		CrossEyed:      *crossEyed,
		PatternDivisor: *divisor,
		NoPreview:      *noPreview,
	})

	if flag.NArg() > 0 {
		if cfg.DepthMapPath != "" {
			fail("Please specify just a string & font pair, or a depth map, not both")
		}
		cfg.Text = flag.Arg(0)
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		usage()
		os.Exit(1)
	}

	tileImg, err := imaging.Load(cfg.TilePath)
	if err != nil {
		fail("Unable to load tile image: %v", err)
	}
	tile := raster.FromImage(tileImg)

	var depthSurface *raster.Surface
	if cfg.DepthMapPath != "" {
		depthSurface, err = depth.LoadMap(cfg.DepthMapPath)
		if err != nil {
			fail("Unable to load depth map image: %v", err)
		}
	} else {
		fnt, err := depth.LoadFont(cfg.FontPath)
		if err != nil {
			fail("Unable to open font: %v", err)
		}
		depthSurface, err = depth.RenderText(fnt, float64(cfg.FontSize), cfg.Text, uint8(cfg.DepthValue))
		if err != nil {
			fail("Unable to render text surface: %v", err)
		}
	}

	r, err := stereogram.New(stereogram.Params{
		Width:     cfg.Width,
		Height:    cfg.Height,
		Tile:      tile,
		Depth:     depthSurface,
		CrossEyed: cfg.CrossEyed,
		Divisor:   cfg.PatternDivisor,
	})
	if err != nil {
		fail("%v", err)
	}

	if cfg.Width < r.MinWidth() {
		fmt.Printf("Warning: Image not wide enough! Should be at least %d\n", r.MinWidth())
	}

	canvas := r.Render()

	// A failed write is a warning only; carry on to the preview.
	if cfg.OutputPath != "" {
		if err := encode.Save(canvas, cfg.OutputPath); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: unable to save image: %v\n", err)
		}
	}

	if !cfg.NoPreview {
		if err := preview.Show(canvas); err != nil {
			fail("Unable to present preview: %v", err)
		}
	}
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: stereogram -t <tile> [-c] [-w <width>] [-h <height>] [-o <output file>] [-f <font> [-s <size> -d <depth>] <string>] [-m <depth map>] [-l <pattern length divisor>] [-no-preview]")
	fmt.Fprintln(os.Stderr, "Specify -f and <string> to render text, -m to render geometry.")
}

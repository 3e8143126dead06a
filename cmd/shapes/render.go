package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tdewolff/argp"

	"shape-canvas/internal/config"
	"shape-canvas/internal/entity"
	"shape-canvas/internal/logging"
	"shape-canvas/internal/shape"
	"shape-canvas/internal/source"
	"shape-canvas/internal/system"
	"shape-canvas/pkg/render"
)

type Render struct {
	Endpoint string `short:"e" default:"http://localhost:8080" desc:"Shape server base URL"`
	File     string `short:"f" desc:"Read shapes from this JSON file instead of the server"`
	Width    int    `short:"w" default:"1200" desc:"Container width; the canvas takes two thirds of it"`
	Output   string `short:"o" desc:"Output file, .png or .svg"`
	Verbose  bool   `short:"v" desc:"Verbose logging"`
}

func (cmd *Render) Run() error {
	if cmd.Output == "" {
		fmt.Println("ERROR: must specify output filename")
		return argp.ShowUsage
	}
	logging.SetLogger(logging.New(os.Stderr, cmd.Verbose))

	var src source.Source = source.NewHTTP(cmd.Endpoint)
	if cmd.File != "" {
		src = source.File{Path: cmd.File}
	}
	scene := entity.NewScene(entity.CanvasSize(cmd.Width))
	w, h := scene.Size()

	ctx, cancel := context.WithTimeout(context.Background(), config.FetchTimeout)
	defer cancel()

	switch ext := strings.ToLower(filepath.Ext(cmd.Output)); ext {
	case ".png":
		raster, err := render.NewRaster(w, h)
		if err != nil {
			return err
		}
		defer raster.Close()
		raster.Background(config.CanvasColor)
		if err := draw(ctx, src, scene, raster); err != nil {
			return err
		}
		if err := raster.Err(); err != nil {
			return err
		}
		return raster.SavePNG(cmd.Output)
	case ".svg":
		f, err := os.Create(cmd.Output)
		if err != nil {
			return err
		}
		doc := render.NewSVG(f, w, h)
		doc.Clear()
		drawErr := draw(ctx, src, scene, doc)
		doc.Close()
		if err := f.Close(); err != nil {
			return err
		}
		return drawErr
	default:
		return fmt.Errorf("unsupported output format %q", ext)
	}
}

func draw(ctx context.Context, src source.Source, scene *entity.Scene, dst shape.Surface) error {
	return system.NewDrawSystem(src, scene, dst, nil).DrawAll(ctx, func(msg string) {
		fmt.Println(msg)
	})
}

// internal/config/config.go
package config

import (
	"image/color"
	"time"
)

const (
	ScreenWidth  = 1200
	ScreenHeight = 900

	// The canvas ratio is applied twice: canvas width from the container
	// width, then canvas height from the canvas width.
	CanvasRatioNum = 2
	CanvasRatioDen = 3

	DefaultFill   = "rgba(0, 0, 200, 0.5)"
	DefaultStroke = 1.0
	TextSize      = 30.0

	FormFontSize  = 14
	FormWidth     = 360
	FormMargin    = 12
	FormRowHeight = 26

	ButtonWidth  = 96
	ButtonHeight = 28

	IndicatorRadius = 10.0

	FetchTimeout    = 10 * time.Second
	ShapesPath      = "/shapes"
	DefaultAddr     = "localhost:8080"
	DefaultEndpoint = "http://" + DefaultAddr
	MaxRecordBytes  = 1 << 20
	MaxDeltaTime    = 0.06
)

var (
	BackgroundColor = color.RGBA{20, 20, 30, 255}
	CanvasColor     = color.RGBA{255, 255, 255, 255}
	PanelColor      = color.RGBA{40, 44, 60, 255}
	FieldColor      = color.RGBA{70, 100, 120, 220}
	FocusColor      = color.RGBA{70, 130, 180, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	TextDarkColor   = color.RGBA{20, 20, 30, 255}
	ErrorColor      = color.RGBA{220, 60, 60, 255}
	IndicatorColor  = color.RGBA{255, 215, 0, 255}
	IndicatorStroke = color.RGBA{240, 240, 240, 255}
	ButtonColor     = color.RGBA{70, 130, 180, 220}
)

package render

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

var (
	fontOnce  sync.Once
	fontErr   error
	sansSerif *opentype.Font

	facesMu sync.Mutex
	faces   = make(map[float64]font.Face)
)

// Face returns the sans-serif face at size pixels, shared by every caller.
func Face(size float64) (font.Face, error) {
	fontOnce.Do(func() {
		sansSerif, fontErr = opentype.Parse(goregular.TTF)
	})
	if fontErr != nil {
		return nil, fmt.Errorf("failed to parse font: %w", fontErr)
	}

	facesMu.Lock()
	defer facesMu.Unlock()
	if f, ok := faces[size]; ok {
		return f, nil
	}
	f, err := opentype.NewFace(sansSerif, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create %gpx face: %w", size, err)
	}
	faces[size] = f
	return f, nil
}

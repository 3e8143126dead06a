// internal/event/types.go
package event

const (
	DrawStarted   EventType = "DrawStarted" // a fetch-then-draw pass began
	ShapesDrawn   EventType = "ShapesDrawn" // Data: number of shapes drawn
	DrawFailed    EventType = "DrawFailed"  // Data: error
	ShapeAdded    EventType = "ShapeAdded"  // Data: shape.Shape
	CanvasCleared EventType = "CanvasCleared"
	CanvasResized EventType = "CanvasResized" // Data: [2]int{w, h}
)

package main

import (
	"github.com/tdewolff/argp"
)

func main() {
	root := argp.NewCmd(&View{}, "Draws 2D shapes fetched from a shape server")
	root.AddCmd(&Serve{}, "serve", "Serve the shape collection over HTTP")
	root.AddCmd(&Render{}, "render", "Fetch the shapes and write them to a PNG or SVG file")
	root.Parse()
	root.PrintHelp()
}

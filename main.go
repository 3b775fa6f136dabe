package main

import (
	"os"

	"github.com/df07/go-sphere-raytracer/cmd"
	"github.com/df07/go-sphere-raytracer/pkg/log"
	"github.com/urfave/cli"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.New("raytracer").Errorf("%v", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	// -v is taken by the verbose flag
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "sphere-raytracer"
	app.Usage = "render sphere scenes using stochastic path tracing"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
		cli.StringFlag{
			Name:  "scenes-dir",
			Value: "scenes",
			Usage: "directory searched for JSON scene files",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a single frame",
			Description: `
Render a built-in scene or a JSON scene file. The image format follows the
extension of the output file: .ppm, .png, .webp or .tga.`,
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "scene, s",
					Value: "default",
					Usage: "built-in scene name, scene file name or path",
				},
				cli.StringFlag{
					Name:  "out, o",
					Usage: "image filename for the rendered frame (default output/<scene>/render_<timestamp>.png)",
				},
				cli.IntFlag{
					Name:  "width",
					Usage: "frame width; height follows the camera aspect ratio",
				},
				cli.IntFlag{
					Name:  "spp",
					Usage: "samples per pixel",
				},
				cli.IntFlag{
					Name:  "depth",
					Usage: "maximum ray bounce depth",
				},
				cli.Int64Flag{
					Name:  "seed",
					Usage: "seed for the random sampler",
				},
				cli.IntFlag{
					Name:  "thumbnail",
					Usage: "also write a thumbnail whose longer side has this many pixels",
				},
			},
			Action: cmd.RenderFrame,
		},
		{
			Name:   "scenes",
			Usage:  "list built-in and file scenes",
			Action: cmd.ListScenes,
		},
	}

	return app
}

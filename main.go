package main

import (
	"os"

	"github.com/urfave/cli"

	"github.com/prism-render/prism/cmd"
	"github.com/prism-render/prism/log"
)

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "prism"
	app.Usage = "render scenes using path tracing"
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
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a built-in scene to an image file",
			Description: `
Trace a scene on the CPU and encode the framebuffer to a file. The output
format is selected by the file extension: .png, .ppm or .qoi.`,
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "scene, s",
					Value: "default",
					Usage: "scene name (see the scenes command)",
				},
				cli.IntFlag{
					Name:  "width",
					Value: 0,
					Usage: "frame width, 0 uses the scene default",
				},
				cli.IntFlag{
					Name:  "height",
					Value: 0,
					Usage: "frame height, 0 derives from the scene aspect ratio",
				},
				cli.IntFlag{
					Name:  "spp",
					Value: 0,
					Usage: "samples per pixel, 0 uses the scene default",
				},
				cli.IntFlag{
					Name:  "max-depth",
					Usage: "maximum bounce depth",
				},
				cli.IntFlag{
					Name:  "tile-size",
					Value: 64,
					Usage: "edge length of render tiles",
				},
				cli.IntFlag{
					Name:  "workers, w",
					Value: 0,
					Usage: "number of render workers, 0 uses all CPUs",
				},
				cli.Int64Flag{
					Name:  "seed",
					Value: 42,
					Usage: "base seed for per-pixel sampling",
				},
				cli.StringFlag{
					Name:  "out, o",
					Value: "frame.png",
					Usage: "image filename for the rendered frame",
				},
			},
			Action: cmd.RenderScene,
		},
		{
			Name:   "scenes",
			Usage:  "list built-in scenes",
			Action: cmd.ListScenes,
		},
		{
			Name:  "serve",
			Usage: "start the HTTP preview server",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "listen, l",
					Value: ":8080",
					Usage: "listen address",
				},
			},
			Action: cmd.Serve,
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.New("prism").Errorf("%v", err)
		os.Exit(1)
	}
}

package cmd

import (
	"bytes"
	"fmt"
	"path/filepath"
	"time"

	"github.com/df07/go-sphere-raytracer/pkg/output"
	"github.com/df07/go-sphere-raytracer/pkg/renderer"
	"github.com/df07/go-sphere-raytracer/pkg/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// RenderOptions selects a scene and overrides parts of its sampling config.
// Nil overrides keep the scene's own values.
type RenderOptions struct {
	Scene         string
	ScenesDir     string
	Out           string // Defaults to output/<scene>/render_<timestamp>.png
	ThumbnailSize int    // Zero disables the thumbnail

	Width           *int
	SamplesPerPixel *int
	MaxDepth        *int
	Seed            *int64
}

// RenderResult describes a finished render
type RenderResult struct {
	Stats         renderer.RenderStats
	OutPath       string
	ThumbnailPath string
}

// Render a still frame.
func RenderFrame(ctx *cli.Context) error {
	setupLogging(ctx)

	opts := RenderOptions{
		Scene:         ctx.String("scene"),
		ScenesDir:     ctx.GlobalString("scenes-dir"),
		Out:           ctx.String("out"),
		ThumbnailSize: ctx.Int("thumbnail"),
	}
	if ctx.IsSet("width") {
		width := ctx.Int("width")
		opts.Width = &width
	}
	if ctx.IsSet("spp") {
		spp := ctx.Int("spp")
		opts.SamplesPerPixel = &spp
	}
	if ctx.IsSet("depth") {
		depth := ctx.Int("depth")
		opts.MaxDepth = &depth
	}
	if ctx.IsSet("seed") {
		seed := ctx.Int64("seed")
		opts.Seed = &seed
	}

	result, err := Render(opts)
	if err != nil {
		return err
	}

	displayFrameStats(result.Stats)
	logger.Noticef("render saved as %s", result.OutPath)
	if result.ThumbnailPath != "" {
		logger.Noticef("thumbnail saved as %s", result.ThumbnailPath)
	}
	return nil
}

// Render loads the scene, renders a single pass and writes the image
func Render(opts RenderOptions) (RenderResult, error) {
	// Reject the output format before spending time on the frame
	if opts.Out != "" {
		if _, err := output.FormatFromPath(opts.Out); err != nil {
			return RenderResult{}, err
		}
	}

	sc, err := scene.Create(opts.Scene, opts.ScenesDir)
	if err != nil {
		return RenderResult{}, err
	}
	logger.Infof("loaded scene %q with %d spheres", sc.Name, sc.World.Len())

	sc.SamplingConfig = applyOverrides(sc.SamplingConfig, sc.Camera.AspectRatio(), opts)

	rt, err := renderer.NewRaytracer(sc, logger)
	if err != nil {
		return RenderResult{}, err
	}

	img, stats := rt.RenderPass()

	result := RenderResult{Stats: stats, OutPath: opts.Out}
	if result.OutPath == "" {
		timestamp := time.Now().Format("20060102_150405")
		result.OutPath = filepath.Join("output", sc.Name, fmt.Sprintf("render_%s.png", timestamp))
	}

	if err := output.Save(result.OutPath, img); err != nil {
		return result, err
	}

	if opts.ThumbnailSize > 0 {
		thumb, err := output.Thumbnail(img, opts.ThumbnailSize)
		if err != nil {
			return result, err
		}
		result.ThumbnailPath = output.ThumbnailPath(result.OutPath)
		if err := output.Save(result.ThumbnailPath, thumb); err != nil {
			return result, err
		}
	}

	return result, nil
}

// applyOverrides replaces the config values given on the command line. A new
// width keeps the camera's aspect ratio.
func applyOverrides(config scene.SamplingConfig, aspectRatio float64, opts RenderOptions) scene.SamplingConfig {
	if opts.Width != nil {
		config.Width = *opts.Width
		config.Height = scene.HeightForAspect(config.Width, aspectRatio)
	}
	if opts.SamplesPerPixel != nil {
		config.SamplesPerPixel = *opts.SamplesPerPixel
	}
	if opts.MaxDepth != nil {
		config.MaxDepth = *opts.MaxDepth
	}
	if opts.Seed != nil {
		config.Seed = *opts.Seed
	}
	return config
}

func displayFrameStats(stats renderer.RenderStats) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Resolution", "Samples/pixel", "Max depth", "Rays traced", "Rays/sample", "Render time"})
	table.Append([]string{
		fmt.Sprintf("%dx%d", stats.Width, stats.Height),
		fmt.Sprintf("%d", stats.SamplesPerPixel),
		fmt.Sprintf("%d", stats.MaxDepth),
		fmt.Sprintf("%d", stats.RaysTraced),
		fmt.Sprintf("%.2f", stats.RaysPerSample()),
		stats.RenderTime.String(),
	})
	table.SetFooter([]string{"", "", "", "", "RAYS/SEC", fmt.Sprintf("%.0f", stats.RaysPerSecond())})

	table.Render()
	logger.Noticef("frame statistics\n%s", buf.String())
}

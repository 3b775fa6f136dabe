package cmd

import (
	"bytes"

	"github.com/df07/go-sphere-raytracer/pkg/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// List built-in and file scenes.
func ListScenes(ctx *cli.Context) error {
	setupLogging(ctx)

	scenes, err := scene.ListScenes(ctx.GlobalString("scenes-dir"))
	if err != nil {
		return err
	}

	logger.Noticef("available scenes\n%s", scenesTable(scenes))
	return nil
}

func scenesTable(scenes []scene.SceneInfo) string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Scene", "Name", "Type", "Description"})
	for _, info := range scenes {
		id := info.ID
		if info.FilePath != "" {
			id = info.FilePath
		}
		table.Append([]string{id, info.DisplayName, info.Type, info.Description})
	}
	table.Render()
	return buf.String()
}

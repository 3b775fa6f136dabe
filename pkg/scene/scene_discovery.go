package scene

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/df07/go-sphere-raytracer/pkg/log"
)

var logger = log.New("scene")

// SceneInfo represents a discovered scene with its metadata
type SceneInfo struct {
	ID          string // Name accepted by Create
	DisplayName string // Human readable name
	Description string // Optional description
	Type        string // "builtin" or "file"
	FilePath    string // Path to the JSON file (file type only)
}

// builtinScene pairs a preset constructor with its listing metadata
type builtinScene struct {
	info   SceneInfo
	create func() (*Scene, error)
}

var builtinScenes = []builtinScene{
	{
		info: SceneInfo{
			ID:          "default",
			DisplayName: "Default Scene",
			Description: "Glass, diffuse and metal spheres on a green ground",
			Type:        "builtin",
		},
		create: NewDefaultScene,
	},
	{
		info: SceneInfo{
			ID:          "simple",
			DisplayName: "Simple Scene",
			Description: "One diffuse sphere on a large ground sphere",
			Type:        "builtin",
		},
		create: NewSimpleScene,
	},
	{
		info: SceneInfo{
			ID:          "materials",
			DisplayName: "Materials",
			Description: "Hollow glass, diffuse and brushed metal spheres",
			Type:        "builtin",
		},
		create: NewMaterialsScene,
	},
	{
		info: SceneInfo{
			ID:          "sphere-grid",
			DisplayName: "Sphere Grid",
			Description: "5x5 grid of rainbow-colored metallic spheres",
			Type:        "builtin",
		},
		create: NewSphereGridScene,
	},
}

// ListScenes returns the built-in scenes followed by the JSON scenes found in
// dir, sorted by display name. A missing directory only yields the built-ins
// and unreadable files are skipped with a warning.
func ListScenes(dir string) ([]SceneInfo, error) {
	scenes := make([]SceneInfo, 0, len(builtinScenes))
	for _, builtin := range builtinScenes {
		scenes = append(scenes, builtin.info)
	}

	if dir == "" {
		return scenes, nil
	}
	if _, err := os.Stat(dir); errors.Is(err, os.ErrNotExist) {
		return scenes, nil
	}

	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to scan scenes directory: %w", err)
	}

	var fileScenes []SceneInfo
	for _, filePath := range files {
		info, err := ParseSceneMetadata(filePath)
		if err != nil {
			logger.Warningf("skipping scene %s: %v", filePath, err)
			continue
		}
		fileScenes = append(fileScenes, info)
	}

	sort.Slice(fileScenes, func(i, j int) bool {
		return fileScenes[i].DisplayName < fileScenes[j].DisplayName
	})

	return append(scenes, fileScenes...), nil
}

// ParseSceneMetadata reads the name and description of a JSON scene file
// without building it. The file name is used when the file does not name itself.
func ParseSceneMetadata(filePath string) (SceneInfo, error) {
	id := strings.TrimSuffix(filepath.Base(filePath), filepath.Ext(filePath))
	info := SceneInfo{
		ID:          id,
		DisplayName: titleCase(id),
		Type:        "file",
		FilePath:    filePath,
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return info, fmt.Errorf("reading scene metadata: %w", err)
	}

	var header struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := json.Unmarshal(data, &header); err != nil {
		return info, fmt.Errorf("%w: %s: %v", ErrInvalidSceneFile, filePath, err)
	}

	if header.Name != "" {
		info.DisplayName = header.Name
	}
	info.Description = header.Description
	return info, nil
}

// Create builds a scene by name: a built-in preset, a JSON file in dir (with or
// without the .json extension) or a direct path to a JSON file
func Create(name, dir string) (*Scene, error) {
	for _, builtin := range builtinScenes {
		if builtin.info.ID == name {
			return builtin.create()
		}
	}

	candidates := []string{name}
	if dir != "" {
		candidates = append(candidates, filepath.Join(dir, name), filepath.Join(dir, name+".json"))
	}
	for _, path := range candidates {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return LoadFile(path)
		}
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownScene, name)
}

// titleCase converts a filename-style string to title case
// e.g., "glass-row" -> "Glass Row"
func titleCase(s string) string {
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	words := strings.Fields(s)
	for i, word := range words {
		if len(word) > 0 {
			words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
		}
	}

	return strings.Join(words, " ")
}

package scene

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/image/colornames"

	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/geometry"
	"github.com/df07/go-sphere-raytracer/pkg/material"
)

const (
	defaultVFov        = 90.0
	defaultAspectRatio = 16.0 / 9.0
)

// sceneFile is the JSON layout of a scene description
type sceneFile struct {
	Name        string                  `json:"name"`
	Description string                  `json:"description"`
	Camera      cameraSpec              `json:"camera"`
	Background  *backgroundSpec         `json:"background"`
	Render      renderSpec              `json:"render"`
	Materials   map[string]materialSpec `json:"materials"`
	Spheres     []sphereSpec            `json:"spheres"`
}

type cameraSpec struct {
	VFov        float64 `json:"vfov"`
	AspectRatio float64 `json:"aspect_ratio"`
}

type backgroundSpec struct {
	Horizon *colorValue `json:"horizon"`
	Zenith  *colorValue `json:"zenith"`
}

type renderSpec struct {
	Width           *int   `json:"width"`
	SamplesPerPixel *int   `json:"samples_per_pixel"`
	MaxDepth        *int   `json:"max_depth"`
	Seed            *int64 `json:"seed"`
}

type materialSpec struct {
	Type            string     `json:"type"`
	Albedo          colorValue `json:"albedo"`
	Fuzz            float64    `json:"fuzz"`
	RefractiveIndex float64    `json:"refractive_index"`
}

type sphereSpec struct {
	Center   [3]float64 `json:"center"`
	Radius   float64    `json:"radius"`
	Material string     `json:"material"`
}

// colorValue accepts either an [r, g, b] array or a CSS color name
type colorValue core.Vec3

func (c *colorValue) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		rgba, ok := colornames.Map[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownColor, name)
		}
		*c = colorValue(core.NewVec3(float64(rgba.R)/255, float64(rgba.G)/255, float64(rgba.B)/255))
		return nil
	}

	var rgb []float64
	if err := json.Unmarshal(data, &rgb); err != nil {
		return fmt.Errorf("color must be [r, g, b] or a color name: %w", err)
	}
	if len(rgb) != 3 {
		return fmt.Errorf("color must have 3 components, got %d", len(rgb))
	}
	*c = colorValue(core.NewVec3(rgb[0], rgb[1], rgb[2]))
	return nil
}

// LoadFile reads a JSON scene description from disk. The scene is named after
// the file unless the file names itself.
func LoadFile(path string) (*Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening scene file: %w", err)
	}
	defer f.Close()

	s, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if s.Name == "" {
		s.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return s, nil
}

// Load decodes a JSON scene description. Materials are built once and shared by
// every sphere that names them.
func Load(r io.Reader) (*Scene, error) {
	var file sceneFile
	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&file); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSceneFile, err)
	}

	vfov := file.Camera.VFov
	if vfov == 0 {
		vfov = defaultVFov
	}
	aspectRatio := file.Camera.AspectRatio
	if aspectRatio == 0 {
		aspectRatio = defaultAspectRatio
	}
	camera, err := geometry.NewCamera(vfov, aspectRatio)
	if err != nil {
		return nil, err
	}

	config := file.Render.apply(DefaultSamplingConfig(), aspectRatio)
	if err := config.Validate(); err != nil {
		return nil, err
	}

	s := NewScene(file.Name, camera, file.Background.gradient(), config)

	materials, err := buildMaterials(file.Materials)
	if err != nil {
		return nil, err
	}

	for i, spec := range file.Spheres {
		mat, ok := materials[spec.Material]
		if !ok {
			return nil, fmt.Errorf("%w: sphere %d references %q", ErrUnknownMaterial, i, spec.Material)
		}
		center := core.NewVec3(spec.Center[0], spec.Center[1], spec.Center[2])
		if err := s.AddSphere(center, spec.Radius, mat); err != nil {
			return nil, fmt.Errorf("sphere %d: %w", i, err)
		}
	}

	return s, nil
}

// apply overrides the defaults with the values present in the file
func (r renderSpec) apply(config SamplingConfig, aspectRatio float64) SamplingConfig {
	if r.Width != nil {
		config.Width = *r.Width
	}
	config.Height = HeightForAspect(config.Width, aspectRatio)
	if r.SamplesPerPixel != nil {
		config.SamplesPerPixel = *r.SamplesPerPixel
	}
	if r.MaxDepth != nil {
		config.MaxDepth = *r.MaxDepth
	}
	if r.Seed != nil {
		config.Seed = *r.Seed
	}
	return config
}

func (b *backgroundSpec) gradient() core.Gradient {
	gradient := core.DefaultGradient()
	if b == nil {
		return gradient
	}
	if b.Horizon != nil {
		gradient.Horizon = core.Vec3(*b.Horizon)
	}
	if b.Zenith != nil {
		gradient.Zenith = core.Vec3(*b.Zenith)
	}
	return gradient
}

func buildMaterials(specs map[string]materialSpec) (map[string]core.Material, error) {
	names := make([]string, 0, len(specs))
	for name := range specs {
		names = append(names, name)
	}
	sort.Strings(names)

	materials := make(map[string]core.Material, len(specs))
	for _, name := range names {
		mat, err := specs[name].build()
		if err != nil {
			return nil, fmt.Errorf("material %q: %w", name, err)
		}
		materials[name] = mat
	}
	return materials, nil
}

func (m materialSpec) build() (core.Material, error) {
	albedo := core.Vec3(m.Albedo)
	switch strings.ToLower(m.Type) {
	case "lambertian", "diffuse":
		return material.NewLambertian(albedo)
	case "metal":
		return material.NewMetal(albedo, m.Fuzz)
	case "dielectric", "glass":
		return material.NewDielectric(m.RefractiveIndex)
	default:
		return nil, fmt.Errorf("%w: type %q", ErrUnknownMaterial, m.Type)
	}
}

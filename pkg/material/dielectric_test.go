package material

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-sphere-raytracer/pkg/core"
)

func TestNewDielectric_Validation(t *testing.T) {
	for _, ri := range []float64{0, -1.5, math.NaN(), math.Inf(1)} {
		if _, err := NewDielectric(ri); !errors.Is(err, ErrInvalidRefractiveIndex) {
			t.Errorf("NewDielectric(%v): expected ErrInvalidRefractiveIndex, got %v", ri, err)
		}
	}

	glass, err := NewDielectric(1.5)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if glass.RefractiveIndex != 1.5 {
		t.Errorf("Expected refractive index 1.5, got %f", glass.RefractiveIndex)
	}
}

func TestDielectricBasicBehavior(t *testing.T) {
	glass, _ := NewDielectric(1.5)

	rayDirection := core.NewVec3(1, -1, 0).Normalize() // 45-degree angle
	ray := core.Ray{Origin: core.NewVec3(0, 1, 0), Direction: rayDirection}

	hit := core.HitRecord{
		Point:     core.NewVec3(0, 0, 0),
		Normal:    core.NewVec3(0, 1, 0),
		T:         1.0,
		FrontFace: true,
		Material:  glass,
	}

	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))
	result, scattered := glass.Scatter(ray, hit, sampler)

	if !scattered {
		t.Error("Dielectric should always scatter")
	}

	expectedAttenuation := core.NewVec3(1.0, 1.0, 1.0)
	if result.Attenuation != expectedAttenuation {
		t.Errorf("Expected attenuation %v, got %v", expectedAttenuation, result.Attenuation)
	}

	// Both reflection and refraction should occur across many draws
	hasReflection := false
	hasRefraction := false

	for seed := int64(0); seed < 1000 && (!hasReflection || !hasRefraction); seed++ {
		sampler := core.NewRandomSampler(rand.New(rand.NewSource(seed)))
		result, _ := glass.Scatter(ray, hit, sampler)

		// Reflection leaves upward, refraction continues downward
		if result.Scattered.Direction.Y > 0 {
			hasReflection = true
		} else {
			hasRefraction = true
		}
	}

	if !hasRefraction {
		t.Error("Expected to see refraction in at least some cases")
	}
	if !hasReflection {
		t.Error("Expected to see Fresnel reflection in at least some cases")
	}
}

func TestDielectricReflectionProbabilityFollowsSchlick(t *testing.T) {
	glass, _ := NewDielectric(1.5)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(99)))

	rayDirection := core.NewVec3(1, -0.5, 0).Normalize()
	ray := core.NewRay(core.NewVec3(0, 0, 0), rayDirection)
	hit := core.HitRecord{Normal: core.NewVec3(0, 1, 0), FrontFace: true}

	const n = 20000
	reflections := 0
	for i := 0; i < n; i++ {
		result, _ := glass.Scatter(ray, hit, sampler)
		if result.Scattered.Direction.Y > 0 {
			reflections++
		}
	}

	cosTheta := rayDirection.Negate().Dot(hit.Normal)
	expected := core.Reflectance(cosTheta, 1.0/1.5)
	got := float64(reflections) / n
	if math.Abs(got-expected) > 0.02 {
		t.Errorf("Reflection frequency %.3f, expected about %.3f", got, expected)
	}
}

func TestDielectricTotalInternalReflection(t *testing.T) {
	glass, _ := NewDielectric(1.5)

	// Shallow ray leaving the glass
	rayDirection := core.NewVec3(1, -0.1, 0).Normalize()
	ray := core.Ray{Origin: core.NewVec3(0, 0, 0), Direction: rayDirection}

	hit := core.HitRecord{
		Point:     core.NewVec3(0, 0, 0),
		Normal:    core.NewVec3(0, 1, 0),
		T:         1.0,
		FrontFace: false,
		Material:  glass,
	}

	cosTheta := -rayDirection.Dot(hit.Normal)
	sinTheta := math.Sqrt(1.0 - cosTheta*cosTheta)
	if 1.5*sinTheta <= 1.0 {
		t.Fatalf("Test setup error: this angle should cause total internal reflection")
	}

	for i := 0; i < 10; i++ {
		sampler := core.NewRandomSampler(rand.New(rand.NewSource(int64(i))))
		result, scattered := glass.Scatter(ray, hit, sampler)

		if !scattered {
			t.Error("Dielectric should always scatter")
		}

		expected := core.Reflect(rayDirection, hit.Normal)
		if result.Scattered.Direction.Subtract(expected).Length() > 1e-12 {
			t.Errorf("Expected total internal reflection %v, got %v", expected, result.Scattered.Direction)
		}
	}
}

func TestDielectricMatchingIndexDoesNotBend(t *testing.T) {
	air, _ := NewDielectric(1.0)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(5)))

	directions := []core.Vec3{
		core.NewVec3(0, -1, 0),
		core.NewVec3(1, -1, 0),
		core.NewVec3(3, -0.2, 1),
	}

	for _, dir := range directions {
		for _, frontFace := range []bool{true, false} {
			ray := core.NewRay(core.NewVec3(0, 1, 0), dir)
			hit := core.HitRecord{Normal: core.NewVec3(0, 1, 0), FrontFace: frontFace}

			for i := 0; i < 200; i++ {
				result, scattered := air.Scatter(ray, hit, sampler)
				if !scattered {
					t.Fatal("Dielectric should always scatter")
				}
				if result.Scattered.Direction.Subtract(dir.Normalize()).Length() > 1e-12 {
					t.Fatalf("Expected unbent direction %v, got %v", dir.Normalize(), result.Scattered.Direction)
				}
			}
		}
	}
}

func TestDielectricRefractionAtNormalIncidence(t *testing.T) {
	glass, _ := NewDielectric(1.5)

	// Draws near one never choose the Fresnel reflection branch
	sampler := &fixedSampler{values: []float64{0.999}}
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -2, 0))
	hit := core.HitRecord{Point: core.NewVec3(0, 0, 0), Normal: core.NewVec3(0, 1, 0), FrontFace: true}

	result, _ := glass.Scatter(ray, hit, sampler)
	expected := core.NewVec3(0, -1, 0)
	if result.Scattered.Direction.Subtract(expected).Length() > 1e-12 {
		t.Errorf("Expected straight transmission %v, got %v", expected, result.Scattered.Direction)
	}
}

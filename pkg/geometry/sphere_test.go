package geometry

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-sphere-raytracer/pkg/core"
)

// mockMaterial never scatters; it only identifies which object was hit
type mockMaterial struct {
	name string
}

func (m *mockMaterial) Scatter(rayIn core.Ray, hit core.HitRecord, sampler core.Sampler) (core.ScatterResult, bool) {
	return core.ScatterResult{}, false
}

func newTestSphere(t *testing.T, center core.Vec3, radius float64, name string) *Sphere {
	t.Helper()
	sphere, err := NewSphere(center, radius, &mockMaterial{name: name})
	if err != nil {
		t.Fatalf("NewSphere failed: %v", err)
	}
	return sphere
}

func TestNewSphere_Validation(t *testing.T) {
	mat := &mockMaterial{}

	tests := []struct {
		name     string
		radius   float64
		material core.Material
		wantErr  error
	}{
		{"valid", 1.0, mat, nil},
		{"zero radius", 0, mat, ErrInvalidRadius},
		{"negative radius", -0.5, mat, ErrInvalidRadius},
		{"NaN radius", math.NaN(), mat, ErrInvalidRadius},
		{"infinite radius", math.Inf(1), mat, ErrInvalidRadius},
		{"nil material", 1.0, nil, ErrNilMaterial},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sphere, err := NewSphere(core.NewVec3(0, 0, 0), tt.radius, tt.material)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Unexpected error: %v", err)
				}
				if sphere.Material != tt.material {
					t.Error("Sphere should keep the material it was given")
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected %v, got %v", tt.wantErr, err)
			}
			if sphere != nil {
				t.Error("Expected nil sphere on error")
			}
		})
	}
}

func TestSphere_Hit_Miss(t *testing.T) {
	sphere := newTestSphere(t, core.NewVec3(0, 0, 0), 1.0, "unit")
	ray := core.NewRay(core.NewVec3(2, 0, 0), core.NewVec3(0, 1, 0))

	hit, isHit := sphere.Hit(ray, 0.001, 1000.0)
	if isHit {
		t.Errorf("Expected miss, but got hit at t=%f", hit.T)
	}
}

func TestSphere_Hit_FrontAndBackFace(t *testing.T) {
	sphere := newTestSphere(t, core.NewVec3(0, 0, 0), 1.0, "unit")

	tests := []struct {
		name           string
		rayOrigin      core.Vec3
		rayDirection   core.Vec3
		expectedT      float64
		expectedFront  bool
		expectedNormal core.Vec3
	}{
		{
			name:           "front face hit",
			rayOrigin:      core.NewVec3(0, 0, 2),
			rayDirection:   core.NewVec3(0, 0, -1),
			expectedT:      1.0,
			expectedFront:  true,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
		{
			name:           "back face hit",
			rayOrigin:      core.NewVec3(0, 0, 0),
			rayDirection:   core.NewVec3(0, 0, 1),
			expectedT:      1.0,
			expectedFront:  false,
			expectedNormal: core.NewVec3(0, 0, -1),
		},
		{
			name:           "unnormalized direction",
			rayOrigin:      core.NewVec3(0, 0, 3),
			rayDirection:   core.NewVec3(0, 0, -2),
			expectedT:      1.0,
			expectedFront:  true,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.rayOrigin, tt.rayDirection)
			hit, isHit := sphere.Hit(ray, 0.001, 1000.0)

			if !isHit {
				t.Fatal("Expected hit, but got miss")
			}

			if math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, hit.T)
			}

			if hit.FrontFace != tt.expectedFront {
				t.Errorf("Expected front face %t, got %t", tt.expectedFront, hit.FrontFace)
			}

			if hit.Normal.Subtract(tt.expectedNormal).Length() > 1e-9 {
				t.Errorf("Expected normal %v, got %v", tt.expectedNormal, hit.Normal)
			}

			if hit.Material != sphere.Material {
				t.Error("Hit record should carry the sphere's material")
			}
		})
	}
}

func TestSphere_Hit_GlancingHit(t *testing.T) {
	sphere := newTestSphere(t, core.NewVec3(0, 0, 0), 1.0, "unit")
	ray := core.NewRay(core.NewVec3(1, 0, 2), core.NewVec3(0, 0, -1))

	hit, isHit := sphere.Hit(ray, 0.001, 1000.0)
	if !isHit {
		t.Fatal("Expected glancing hit, but got miss")
	}

	expectedPoint := core.NewVec3(1, 0, 0)
	if hit.Point.Subtract(expectedPoint).Length() > 1e-9 {
		t.Errorf("Expected hit point %v, got %v", expectedPoint, hit.Point)
	}
	if hit.Normal.Dot(ray.Direction) > 0 {
		t.Errorf("Tangent normal %v should not face away from the ray", hit.Normal)
	}
}

func TestSphere_Hit_Bounds(t *testing.T) {
	sphere := newTestSphere(t, core.NewVec3(0, 0, 0), 1.0, "unit")
	ray := core.NewRay(core.NewVec3(0, 0, 2), core.NewVec3(0, 0, -1))

	// Test tMax bound
	hit, isHit := sphere.Hit(ray, 0.001, 0.5)
	if isHit {
		t.Errorf("Expected miss due to tMax bound, but got hit at t=%f", hit.T)
	}

	// Test tMin bound
	hit, isHit = sphere.Hit(ray, 3.5, 1000.0)
	if isHit {
		t.Errorf("Expected miss due to tMin bound, but got hit at t=%f", hit.T)
	}
}

func TestSphere_Hit_ExclusiveBounds(t *testing.T) {
	sphere := newTestSphere(t, core.NewVec3(0, 0, 0), 1.0, "unit")
	ray := core.NewRay(core.NewVec3(0, 0, 2), core.NewVec3(0, 0, -1))

	// A root exactly at tMin is rejected so the far root is used
	hit, isHit := sphere.Hit(ray, 1.0, 1000.0)
	if !isHit {
		t.Fatal("Expected the far root to be accepted")
	}
	if math.Abs(hit.T-3.0) > 1e-9 {
		t.Errorf("Expected t=3, got t=%f", hit.T)
	}
	if hit.FrontFace {
		t.Error("Far root should be a back face hit")
	}

	// A root exactly at tMax is rejected
	if hit, isHit := sphere.Hit(ray, 0.001, 1.0); isHit {
		t.Errorf("Expected miss with tMax equal to the near root, got t=%f", hit.T)
	}
}

func TestSphere_Hit_ClosestIntersection(t *testing.T) {
	sphere := newTestSphere(t, core.NewVec3(0, 0, 0), 1.0, "unit")
	ray := core.NewRay(core.NewVec3(0, 0, 2), core.NewVec3(0, 0, -1))

	hit, isHit := sphere.Hit(ray, 0.001, 1000.0)
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}

	expectedT := 1.0
	if math.Abs(hit.T-expectedT) > 1e-9 {
		t.Errorf("Expected closest intersection at t=%f, got t=%f", expectedT, hit.T)
	}

	if !hit.FrontFace {
		t.Error("Expected closest intersection to be front face")
	}
}

func TestSphere_Hit_RandomRaysLandOnSurface(t *testing.T) {
	random := rand.New(rand.NewSource(42))
	sampler := core.NewRandomSampler(random)

	center := core.NewVec3(0.3, -0.2, -2)
	radius := 0.75
	sphere := newTestSphere(t, center, radius, "random")

	hits := 0
	for i := 0; i < 2000; i++ {
		origin := core.RandomVec3Range(sampler, -3, 3)
		direction := core.RandomVec3Range(sampler, -1, 1)
		if direction.NearZero() {
			continue
		}
		ray := core.NewRay(origin, direction)

		hit, isHit := sphere.Hit(ray, 0.001, math.Inf(1))
		if !isHit {
			continue
		}
		hits++

		if d := hit.Point.Subtract(center).Length(); math.Abs(d-radius) > 1e-6 {
			t.Fatalf("Hit point %v is %f from center, expected %f", hit.Point, d, radius)
		}
		if math.Abs(hit.Normal.Length()-1) > 1e-9 {
			t.Fatalf("Normal %v is not unit length", hit.Normal)
		}
		if ray.Direction.Dot(hit.Normal) > 0 {
			t.Fatalf("Normal %v faces away from ray direction %v", hit.Normal, ray.Direction)
		}
		if hit.T <= 0.001 {
			t.Fatalf("Hit t=%f is outside the requested interval", hit.T)
		}
	}

	if hits == 0 {
		t.Fatal("Expected at least some random rays to hit the sphere")
	}
}

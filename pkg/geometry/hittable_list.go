package geometry

import (
	"github.com/df07/go-sphere-raytracer/pkg/core"
)

// HittableList is an unordered collection of objects tested as one
type HittableList struct {
	Objects []core.Hittable
}

// NewHittableList creates a list holding the given objects
func NewHittableList(objects ...core.Hittable) *HittableList {
	return &HittableList{Objects: append([]core.Hittable(nil), objects...)}
}

// Add appends an object to the list
func (l *HittableList) Add(object core.Hittable) {
	l.Objects = append(l.Objects, object)
}

// Clear removes every object
func (l *HittableList) Clear() {
	l.Objects = nil
}

// Len returns the number of objects in the list
func (l *HittableList) Len() int {
	return len(l.Objects)
}

// Hit returns the nearest hit among all objects.
// Each accepted hit shrinks the search interval so later objects can only win if they are closer.
func (l *HittableList) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	var closestHit *core.HitRecord
	closestSoFar := tMax

	for _, object := range l.Objects {
		if hit, isHit := object.Hit(ray, tMin, closestSoFar); isHit {
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}

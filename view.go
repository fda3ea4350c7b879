package waveplot

import "math"

// View describes from where a 3D scene is looked at. The camera sits
// on a sphere around the origin at the given elevation (angle above
// the x/y plane) and azimuth (angle in the x/y plane, counter clockwise
// from the x axis), both in degrees, looking at the origin with z up.
type View struct {
	Elevation, Azimuth float64

	// Distance of the camera from the origin for a perspective
	// projection. Zero gives an orthographic projection.
	Distance float64
}

// DefaultView looks slightly from above onto the x/y plane.
var DefaultView = View{Elevation: 40, Azimuth: -120}

// Project maps (x,y,z) to screen coordinates (u,v) and to a depth.
// u grows to the right, v upwards; points with larger depth are closer
// to the camera.
func (v View) Project(x, y, z float64) (u, w, depth float64) {
	el := v.Elevation * math.Pi / 180
	az := v.Azimuth * math.Pi / 180
	sinEl, cosEl := math.Sincos(el)
	sinAz, cosAz := math.Sincos(az)

	u = -sinAz*x + cosAz*y
	w = -sinEl*cosAz*x - sinEl*sinAz*y + cosEl*z
	depth = cosEl*cosAz*x + cosEl*sinAz*y + sinEl*z

	if v.Distance > 0 && depth < v.Distance {
		f := v.Distance / (v.Distance - depth)
		u, w = u*f, w*f
	}
	return u, w, depth
}

package trackgen

import "github.com/flightscore/freedist/geo"

// Default walk parameters, named to avoid magic literals, translated
// from builder's sequence-primitive defaults (defAmp/defSigma/
// defTrendSlope) to this package's lat/lon/altitude domain.
const (
	defStepDegrees   = 0.01  // per-fix lat/lon perturbation scale, in degrees
	defClimbRate     = 3.0   // altitude gain per fix while thermalling, in meters
	defGlideRate     = 1.5   // altitude loss per fix while gliding, in meters
	defCycleFixes    = 40    // fixes per climb/glide cycle
	defBaseAltitude  = 500.0 // altitude at the start of the track, in meters
)

// Generate builds a deterministic n-fix synthetic trajectory seeded by
// seed: a correlated random walk in latitude/longitude (so consecutive
// fixes stay close together, like a real recorder log) paired with an
// independent altitude stream cycling between thermalling climbs and
// glides of equal length. The mean climb per fix is twice the mean glide
// loss, so the overall track slowly gains height; a single glide phase
// loses at most 90 m.
func Generate(n int, seed int64) geo.SliceSource {
	if n <= 0 {
		return geo.SliceSource{}
	}

	walkRNG := deriveRNG(seed, streamLatLon)
	altRNG := deriveRNG(seed, streamAltitude)

	route := make(geo.SliceSource, n)
	lat, lon := float32(46.0), float32(7.0)
	altitude := defBaseAltitude

	for i := 0; i < n; i++ {
		lat += (float32(walkRNG.Float64()) - 0.5) * 2 * defStepDegrees
		lon += (float32(walkRNG.Float64()) - 0.5) * 2 * defStepDegrees

		phase := i % (2 * defCycleFixes)
		if phase < defCycleFixes {
			altitude += defClimbRate * (0.5 + altRNG.Float64())
		} else {
			altitude -= defGlideRate * (0.5 + altRNG.Float64())
		}
		if altitude < 0 {
			altitude = 0
		}

		route[i] = geo.Fix{
			Latitude:  lat,
			Longitude: lon,
			Altitude:  int16(altitude),
		}
	}

	return route
}

const (
	streamLatLon   uint64 = 1
	streamAltitude uint64 = 2
)

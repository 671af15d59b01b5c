package directions

import "fmt"

// DecodePolyline expands an encoded polyline (the Directions API's
// overview_polyline format) into coordinates. Values are lat/lng deltas
// encoded base-64-ish in 5-bit chunks, scaled by 1e5.
func DecodePolyline(encoded string) ([]LatLng, error) {
	var points []LatLng
	var lat, lng int64
	i := 0

	next := func() (int64, error) {
		var result int64
		var shift uint
		for {
			if i >= len(encoded) {
				return 0, fmt.Errorf("truncated polyline at byte %d", i)
			}
			b := int64(encoded[i]) - 63
			if b < 0 {
				return 0, fmt.Errorf("invalid polyline byte %q at %d", encoded[i], i)
			}
			i++
			result |= (b & 0x1f) << shift
			shift += 5
			if b < 0x20 {
				break
			}
		}
		// zig-zag decode
		if result&1 != 0 {
			return ^(result >> 1), nil
		}
		return result >> 1, nil
	}

	for i < len(encoded) {
		dlat, err := next()
		if err != nil {
			return nil, err
		}
		dlng, err := next()
		if err != nil {
			return nil, err
		}
		lat += dlat
		lng += dlng
		points = append(points, LatLng{
			Lat: float64(lat) / 1e5,
			Lng: float64(lng) / 1e5,
		})
	}
	return points, nil
}

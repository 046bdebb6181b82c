package geo

import "strings"

// PolylinePrecision is the fixed precision-6 encoding the engine uses for
// route shapes (Google polyline algorithm, 1e-6 degree quantization).
const PolylinePrecision = 6

// DecodePolyline decodes a precision-6 encoded polyline string into a
// sequence of coordinates, in [lon, lat] order to match the GeoJSON
// convention the rest of the gateway uses for route geometry.
func DecodePolyline(encoded string) Polyline {
	if encoded == "" {
		return nil
	}

	scale := 1.0
	for i := 0; i < PolylinePrecision; i++ {
		scale *= 10
	}

	coords := make(Polyline, 0, len(encoded)/4)
	index := 0
	lat := 0
	lng := 0

	for index < len(encoded) {
		dlat := decodeSignedValue(encoded, &index)
		lat += dlat

		dlng := decodeSignedValue(encoded, &index)
		lng += dlng

		coords = append(coords, Coordinate{
			Lon: float64(lng) / scale,
			Lat: float64(lat) / scale,
		})
	}

	return coords
}

func decodeSignedValue(encoded string, index *int) int {
	shift := uint(0)
	result := 0
	for {
		b := int(encoded[*index]) - 63
		*index++
		result |= (b & 0x1f) << shift
		shift += 5
		if b < 0x20 {
			break
		}
	}
	if result&1 != 0 {
		return ^(result >> 1)
	}
	return result >> 1
}

// EncodePolyline encodes a sequence of coordinates (in [lon, lat] order)
// into a precision-6 polyline string, the inverse of DecodePolyline. Used
// when the gateway needs to hand a previously-decoded shape back to the
// engine (e.g. trace_attributes shape input built from a route's geometry).
func EncodePolyline(coords Polyline) string {
	var b strings.Builder

	scale := 1.0
	for i := 0; i < PolylinePrecision; i++ {
		scale *= 10
	}

	prevLat, prevLng := 0, 0
	for _, c := range coords {
		lat := round(c.Lat * scale)
		lng := round(c.Lon * scale)
		encodeSignedValue(&b, lat-prevLat)
		encodeSignedValue(&b, lng-prevLng)
		prevLat, prevLng = lat, lng
	}
	return b.String()
}

func round(v float64) int {
	if v >= 0 {
		return int(v + 0.5)
	}
	return int(v - 0.5)
}

func encodeSignedValue(b *strings.Builder, v int) {
	shifted := v << 1
	if v < 0 {
		shifted = ^shifted
	}
	for shifted >= 0x20 {
		b.WriteByte(byte((0x20 | (shifted & 0x1f)) + 63))
		shifted >>= 5
	}
	b.WriteByte(byte(shifted + 63))
}

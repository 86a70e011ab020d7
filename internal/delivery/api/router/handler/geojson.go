package handler

import (
	"net/http"
	"slices"
	"time"

	"seguridad/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"
)

const mimeGeoJSON = "application/geo+json"

func writeGeoJSON(c echo.Context, fc *geojson.FeatureCollection) error {
	body, err := fc.MarshalJSON()
	if err != nil {
		return errors.Wrap(err, "failed to encode geojson")
	}

	return c.Blob(http.StatusOK, mimeGeoJSON, body)
}

// safeZonesCollection renders zone centers as points. When a position is known every
// feature also carries its distance to the zone center and whether it lies inside.
func safeZonesCollection(zones []*entity.SafeZone, position *orb.Point) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, zone := range zones {
		feature := geojson.NewFeature(zone.Center())
		feature.Properties["name"] = zone.Name
		feature.Properties["radiusMeters"] = zone.RadiusMeters
		feature.Properties["isActive"] = zone.IsActive
		if position != nil {
			feature.Properties["distanceMeters"] = zone.DistanceMeters(*position)
			feature.Properties["inside"] = zone.Contains(*position)
		}
		fc.Append(feature)
	}

	return fc
}

// locationTrackCollection renders samples as points plus, with two or more samples,
// a chronological LineString of the track.
func locationTrackCollection(events []*entity.LocationEvent) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, event := range events {
		feature := geojson.NewFeature(event.Point())
		feature.Properties["accuracy"] = event.Accuracy
		feature.Properties["timestamp"] = event.Timestamp.UTC().Format(time.RFC3339)
		fc.Append(feature)
	}

	if len(events) < 2 {
		return fc
	}

	track := make(orb.LineString, 0, len(events))
	for _, event := range slices.Backward(events) {
		track = append(track, event.Point())
	}
	feature := geojson.NewFeature(track)
	feature.Properties["kind"] = "track"
	feature.Properties["from"] = events[len(events)-1].Timestamp.UTC().Format(time.RFC3339)
	feature.Properties["to"] = events[0].Timestamp.UTC().Format(time.RFC3339)
	fc.Append(feature)

	return fc
}

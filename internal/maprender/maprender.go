// Peakmap - Mountain Peak Registry and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/peakmap

// Package maprender renders a self-contained Leaflet HTML page from a list
// of coordinate/label markers. It performs no I/O: callers pass markers in
// and get HTML out.
package maprender

import (
	"bytes"
	"fmt"
	"html/template"
)

// Marker is one labeled point on the map.
type Marker struct {
	Lat   float64
	Lon   float64
	Label string
}

// Options controls the initial viewport.
type Options struct {
	CenterLat float64
	CenterLon float64
	Zoom      int
}

// DefaultOptions centers the map roughly on France, matching the registry's
// demo dataset of Pyrenean peaks.
func DefaultOptions() Options {
	return Options{
		CenterLat: 46.0,
		CenterLon: 2.0,
		Zoom:      6,
	}
}

var pageTemplate = template.Must(template.New("map").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8"/>
<meta name="viewport" content="width=device-width, initial-scale=1.0"/>
<title>Peakmap</title>
<link rel="stylesheet" href="https://unpkg.com/leaflet@1.9.4/dist/leaflet.css"/>
<script src="https://unpkg.com/leaflet@1.9.4/dist/leaflet.js"></script>
<style>html, body, #map { height: 100%; margin: 0; }</style>
</head>
<body>
<div id="map"></div>
<script>
var map = L.map('map').setView([{{.Opts.CenterLat}}, {{.Opts.CenterLon}}], {{.Opts.Zoom}});
L.tileLayer('https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png', {
	maxZoom: 18,
	attribution: '&copy; OpenStreetMap contributors'
}).addTo(map);
{{range .Markers}}L.marker([{{.Lat}}, {{.Lon}}]).addTo(map).bindPopup({{.Label}});
{{end}}</script>
</body>
</html>
`))

// Render produces the full HTML page for the given markers.
func Render(markers []Marker, opts Options) (string, error) {
	var buf bytes.Buffer
	data := struct {
		Markers []Marker
		Opts    Options
	}{
		Markers: markers,
		Opts:    opts,
	}
	if err := pageTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render map: %w", err)
	}
	return buf.String(), nil
}

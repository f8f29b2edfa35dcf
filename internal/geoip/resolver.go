// Peakmap - Mountain Peak Registry and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/peakmap

// Package geoip resolves caller IP addresses to ISO country codes using a
// MaxMind country database (GeoLite2-Country.mmdb or compatible).
//
// The database is opened once at startup and shared read-only across
// requests. Addresses absent from the database, such as private and
// reserved ranges, resolve to an empty country code; the access gate treats
// that as "allowed" (fail open).
package geoip

import (
	"fmt"
	"net"

	"github.com/oschwald/geoip2-golang"
)

// Resolver maps an IP address to an ISO 3166-1 alpha-2 country code.
// An empty code with a nil error means the address is not in the dataset.
type Resolver interface {
	CountryCode(ip net.IP) (string, error)
	Close() error
}

// MaxMindResolver resolves countries from a MaxMind mmdb file.
type MaxMindResolver struct {
	reader *geoip2.Reader
}

// Open loads the MaxMind country database at the given path.
func Open(path string) (*MaxMindResolver, error) {
	reader, err := geoip2.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open geoip database %s: %w", path, err)
	}
	return &MaxMindResolver{reader: reader}, nil
}

// CountryCode looks up the country for the given IP.
// Unknown addresses return an empty code and no error.
func (r *MaxMindResolver) CountryCode(ip net.IP) (string, error) {
	if ip == nil {
		return "", fmt.Errorf("nil IP address")
	}
	record, err := r.reader.Country(ip)
	if err != nil {
		return "", fmt.Errorf("geoip lookup for %s: %w", ip, err)
	}
	return record.Country.IsoCode, nil
}

// Close releases the underlying mmdb reader.
func (r *MaxMindResolver) Close() error {
	return r.reader.Close()
}

// StaticResolver maps fixed IP strings to country codes. It backs the test
// suite and small deployments that do not ship an mmdb file.
type StaticResolver struct {
	countries map[string]string
}

// NewStaticResolver builds a resolver over a fixed ip->country table.
func NewStaticResolver(countries map[string]string) *StaticResolver {
	return &StaticResolver{countries: countries}
}

// CountryCode returns the mapped country, or empty for unknown addresses.
func (r *StaticResolver) CountryCode(ip net.IP) (string, error) {
	if ip == nil {
		return "", fmt.Errorf("nil IP address")
	}
	return r.countries[ip.String()], nil
}

// Close is a no-op.
func (r *StaticResolver) Close() error {
	return nil
}

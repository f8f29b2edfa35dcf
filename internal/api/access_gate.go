// Peakmap - Mountain Peak Registry and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/peakmap

package api

import (
	"net"
	"net/http"
	"strings"

	"github.com/tomtom215/peakmap/internal/logging"
	"github.com/tomtom215/peakmap/internal/metrics"
)

// CountryGate restricts requests to callers whose IP resolves to the
// configured country. Requests from any other known country are rejected
// with 403 before the handler runs.
//
// The gate fails open in two cases: the caller address cannot be parsed,
// or the resolver does not know the address (empty country code). Private
// and loopback ranges fall in the second case, so local traffic always
// passes.
func (h *Handler) CountryGate(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if h.resolver == nil || !h.cfg.GateActive() {
			next(w, r)
			return
		}

		ip := clientIP(r)
		if ip == nil {
			logging.Ctx(r.Context()).Debug().Str("remote_addr", r.RemoteAddr).Msg("Unparseable client address, gate passing through")
			next(w, r)
			return
		}

		country, err := h.resolver.CountryCode(ip)
		if err != nil {
			respondError(w, http.StatusInternalServerError, "GEOIP_ERROR", "Failed to resolve client location", err)
			return
		}

		if country != "" && !strings.EqualFold(country, h.cfg.Access.AllowedCountry) {
			metrics.RecordGateRejection(country)
			logging.Ctx(r.Context()).Warn().
				Str("client_ip", ip.String()).
				Str("country", country).
				Msg("Access denied by country gate")
			respondError(w, http.StatusForbidden, "ACCESS_DENIED", "Access restricted by region", nil)
			return
		}

		next(w, r)
	}
}

// clientIP extracts the caller address from RemoteAddr. Returns nil when
// the address cannot be parsed.
func clientIP(r *http.Request) net.IP {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	return net.ParseIP(host)
}

// Copyright (c) 2026 WebBooks. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware

import (
	"net/http"
	"slices"
	"strconv"
	"strings"

	"github.com/taibuivan/webbooks/internal/platform/constants"
)

// # Cross-Origin Resource Sharing

// AppConfig is the slice of configuration CORS needs.
type AppConfig interface {
	IsDevelopment() bool
	AllowedOrigins() []string
}

var (
	corsMethods = []string{
		http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions,
	}
	corsHeaders = []string{
		"Accept", "Authorization", "Content-Type", constants.HeaderXRequestID,
	}
)

// corsMaxAge is how long browsers may cache a preflight answer, in seconds.
const corsMaxAge = 300

/*
CORS answers browser clients served from another origin.

Every origin is accepted in development; elsewhere only EXTRA_ORIGINS are.
Credentials are allowed because the visit counter rides on the session cookie.
Preflight requests (OPTIONS with Access-Control-Request-Method) end here with
204; a plain OPTIONS continues to the router.
*/
func CORS(cfg AppConfig) func(http.Handler) http.Handler {
	allowMethods := strings.Join(corsMethods, ", ")
	allowHeaders := strings.Join(corsHeaders, ", ")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			origin := request.Header.Get(constants.HeaderOrigin)
			if origin == "" {
				next.ServeHTTP(writer, request)
				return
			}

			header := writer.Header()
			header.Add("Vary", constants.HeaderOrigin)

			if !cfg.IsDevelopment() && !slices.Contains(cfg.AllowedOrigins(), origin) {
				next.ServeHTTP(writer, request)
				return
			}

			header.Set("Access-Control-Allow-Origin", origin)
			header.Set("Access-Control-Allow-Credentials", "true")
			header.Set("Access-Control-Expose-Headers", constants.HeaderXRequestID+", "+constants.HeaderLocation)

			if request.Method == http.MethodOptions && request.Header.Get("Access-Control-Request-Method") != "" {
				header.Set("Access-Control-Allow-Methods", allowMethods)
				header.Set("Access-Control-Allow-Headers", allowHeaders)
				header.Set("Access-Control-Max-Age", strconv.Itoa(corsMaxAge))
				writer.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(writer, request)
		})
	}
}

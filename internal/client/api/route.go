package api

import (
	"fmt"
	"strings"
)

// DefaultLocalPort is where the pySET server listens in a local deployment
const DefaultLocalPort = 5000

const (
	apiPrefix  = "app/"
	apiPath    = "/api"
	errorPath  = "/404"
	schemeHTTP = "http"
)

// Hostnames that select the local base
var loopbackHosts = map[string]bool{
	"0.0.0.0":   true,
	"localhost": true,
	"127.0.0.1": true,
}

// Location is the origin of the page driving the client
type Location struct {
	Scheme   string
	Hostname string
}

// Router maps route names to absolute URLs
type Router struct {
	location  Location
	localPort int
}

func NewRouter(loc Location, localPort int) *Router {
	loc.Scheme = strings.TrimSuffix(strings.ToLower(loc.Scheme), ":")
	if loc.Scheme == "" {
		loc.Scheme = schemeHTTP
	}
	if localPort <= 0 {
		localPort = DefaultLocalPort
	}
	return &Router{location: loc, localPort: localPort}
}

func (r *Router) Location() Location {
	return r.location
}

// IsLocal reports whether the hostname is a loopback alias
func (r *Router) IsLocal() bool {
	return loopbackHosts[r.location.Hostname]
}

// Base returns scheme://host, with the local port only for loopback hosts
func (r *Router) Base() string {
	if r.IsLocal() {
		return fmt.Sprintf("%s://%s:%d", r.location.Scheme, r.location.Hostname, r.localPort)
	}
	return fmt.Sprintf("%s://%s", r.location.Scheme, r.location.Hostname)
}

func (r *Router) APIBase() string {
	return r.Base() + apiPath
}

func (r *Router) ErrorBase() string {
	return r.Base() + errorPath
}

// Route resolves a route name. Names under app/ go to the API family,
// everything else to the error family.
func (r *Router) Route(name string) string {
	if strings.HasPrefix(name, apiPrefix) {
		return fmt.Sprintf("%s/%s/", r.APIBase(), name)
	}
	return fmt.Sprintf("%s/%s/", r.ErrorBase(), name)
}

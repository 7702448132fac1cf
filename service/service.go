// Package service wires the nepaliword web service together: router, logger,
// metrics, cache, converter and configuration, plus any extra dependencies a handler needs.
//
// Handlers are registered as HandlerFunc so they receive the Service alongside the
// request. Routes can be grouped by path and each group can carry its own middleware.
package service

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rahack95/OSSRH-63090/cache"
	"github.com/rahack95/OSSRH-63090/config"
	"github.com/rahack95/OSSRH-63090/metrics"
	"github.com/rahack95/OSSRH-63090/nepaliword"
	"github.com/remiges-tech/logharbour/logharbour"
)

// Dependencies is a map to hold arbitrary dependencies.
type Dependencies map[string]any

// Service is the core struct for a web service, holding essential components and optional dependencies.
// Note: Assert the type of a value in Dependencies before using it because the value is of type any.
//
// Example:
//
//	s := NewService(router).WithLogger(logger).WithCache(redisCache)
type Service struct {
	Config       config.Config
	AppConfig    config.AppConfig
	Router       *gin.Engine
	Logger       *logharbour.Logger
	Metrics      metrics.Metrics
	Cache        cache.Cache
	Converter    nepaliword.Converter
	Dependencies Dependencies
}

// NewService constructs a Service around r with a no-op cache and metrics
// and the default converter.
func NewService(r *gin.Engine) *Service {
	s := &Service{
		Router:    r,
		Metrics:   metrics.Noop{},
		Cache:     cache.Noop{},
		Converter: nepaliword.NewConverter(),
	}
	s.AppConfig.ApplyDefaults()
	return s
}

// WithDependency is a method to inject an arbitrary dependency into the Service.
func (s *Service) WithDependency(key string, value any) *Service {
	if s.Dependencies == nil {
		s.Dependencies = make(Dependencies)
	}
	s.Dependencies[key] = value
	return s
}

// WithConfig sets the configuration source the service was loaded from.
func (s *Service) WithConfig(cfg config.Config) *Service {
	s.Config = cfg
	return s
}

// WithAppConfig sets the loaded settings. The converter follows its spacing mode.
func (s *Service) WithAppConfig(appConfig config.AppConfig) *Service {
	appConfig.ApplyDefaults()
	s.AppConfig = appConfig
	if appConfig.LegacySpacing {
		s.Converter = nepaliword.NewConverter(nepaliword.WithLegacySpacing())
	} else {
		s.Converter = nepaliword.NewConverter()
	}
	return s
}

// WithLogger is a method to inject a logger dependency into the Service.
func (s *Service) WithLogger(l *logharbour.Logger) *Service {
	s.Logger = l
	return s
}

// WithMetrics replaces the no-op metrics.
func (s *Service) WithMetrics(m metrics.Metrics) *Service {
	s.Metrics = m
	return s
}

// WithCache replaces the no-op cache.
func (s *Service) WithCache(c cache.Cache) *Service {
	s.Cache = c
	return s
}

// HandlerFunc is a function that handles a request.
// It takes a *gin.Context and a *Service as parameters.
type HandlerFunc func(*gin.Context, *Service)

// RegisterRoute allows for the registration of a single route directly on the service's engine.
func (s *Service) RegisterRoute(method, path string, handler HandlerFunc) error {
	return register(s.Router, method, path, s.wrap(handler))
}

func (s *Service) wrap(handler HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		handler(c, s)
	}
}

// RouteGroup represents a group of routes served by s.
type RouteGroup struct {
	Group   *gin.RouterGroup
	service *Service
}

// CreateGroup creates a new route group with the given path.
func (s *Service) CreateGroup(path string) *RouteGroup {
	return &RouteGroup{
		Group:   s.Router.Group(path),
		service: s,
	}
}

// RegisterRoute allows for the registration of a single route to the route group.
func (g *RouteGroup) RegisterRoute(method, path string, handler HandlerFunc) error {
	return register(g.Group, method, path, g.service.wrap(handler))
}

// CreateSubGroup creates a new sub-group within the current group.
func (g *RouteGroup) CreateSubGroup(path string) *RouteGroup {
	return &RouteGroup{
		Group:   g.Group.Group(path),
		service: g.service,
	}
}

func register(r gin.IRoutes, method, path string, h gin.HandlerFunc) error {
	switch method {
	case http.MethodGet:
		r.GET(path, h)
	case http.MethodPost:
		r.POST(path, h)
	case http.MethodPut:
		r.PUT(path, h)
	case http.MethodDelete:
		r.DELETE(path, h)
	default:
		return fmt.Errorf("unsupported method: %s", method)
	}
	return nil
}

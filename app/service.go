// Package app wires configuration, the venue registry, the detection engine
// and the task router into a runnable service.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/openathletics/flextime/config"
	"github.com/openathletics/flextime/core/conflict"
	"github.com/openathletics/flextime/core/conflict/reportlog"
	coremetrics "github.com/openathletics/flextime/core/metrics"
	"github.com/openathletics/flextime/core/model"
	"github.com/openathletics/flextime/core/providers"
	"github.com/openathletics/flextime/core/registry"
	"github.com/openathletics/flextime/core/router"
	"github.com/openathletics/flextime/infra/logger"
	"github.com/openathletics/flextime/infra/metrics"
	"github.com/openathletics/flextime/infra/resolvers"
	"github.com/openathletics/flextime/internal/eventbus"
)

// DetectionEvent is published on the event bus after every detection pass.
type DetectionEvent struct {
	Conflicts int
	Hard      int
}

// Service bundles the conflict detection engine and the task router.
type Service struct {
	Registry *registry.Registry
	Detector *conflict.Detector
	Resolver *conflict.Resolver
	Router   *router.Router
	Store    reportlog.Store

	src          resolvers.ScheduleSource
	bus          eventbus.EventBus
	sink         coremetrics.Sink
	log          logger.Logger
	remotes      []*resolvers.MQTTResolver
	systemPrompt string
	promEnabled  bool
	promAddr     string
}

// New creates a Service from the configuration.
func New(cfg *config.Config) (*Service, error) {
	logg := logger.New("service")

	reg := registry.New(logger.New("registry"))
	if cfg.Registry.VenueFile != "" {
		if err := reg.LoadFile(cfg.Registry.VenueFile); err != nil {
			logg.Warnf("venue data %s: %v; using built-in fallback", cfg.Registry.VenueFile, err)
		}
	}

	var sinks []coremetrics.Sink
	if cfg.Metrics.PrometheusEnabled {
		sink, err := metrics.NewPromSink()
		if err != nil {
			return nil, fmt.Errorf("prom sink: %w", err)
		}
		sinks = append(sinks, sink)
	}
	if cfg.Metrics.Influx.Enabled {
		sink := metrics.NewInfluxSinkWithFallback(cfg.Metrics.Influx.URL,
			cfg.Metrics.Influx.Token, cfg.Metrics.Influx.Org, cfg.Metrics.Influx.Bucket)
		sinks = append(sinks, sink)
	}
	var sink coremetrics.Sink
	switch len(sinks) {
	case 0:
		sink = coremetrics.NopSink{}
	case 1:
		sink = sinks[0]
	default:
		sink = coremetrics.NewMultiSink(sinks...)
	}

	store, err := openStore(cfg.ReportLog)
	if err != nil {
		return nil, fmt.Errorf("report store: %w", err)
	}

	bus := eventbus.New()
	det := conflict.NewDetector(reg, logger.New("detector"))
	res := conflict.NewResolver(reg)

	var src resolvers.ScheduleSource = resolvers.StaticScheduleSource{}
	if cfg.Resolvers.SchedulesFile != "" {
		src = resolvers.FileScheduleSource{Path: cfg.Resolvers.SchedulesFile}
	}

	rt := router.New(router.DefaultCapabilities(), logger.New("router"),
		router.WithStepTimeout(time.Duration(cfg.Router.StepTimeoutSeconds)*time.Second),
		router.WithSink(sink),
		router.WithBus(bus),
	)
	rt.Register(resolvers.NewCampusResolver(src, det, res, logger.New("campus-resolver")))
	rt.Register(resolvers.NewVenueDataResolver(reg))
	rt.Register(resolvers.NewGameManagerResolver(reg, defaultWeather(), logger.New("game-manager")))
	rt.Register(resolvers.NewHistoricalResolver(nil))
	rt.Register(resolvers.NewTravelResolver(reg, defaultGeo()))

	svc := &Service{
		Registry:     reg,
		Detector:     det,
		Resolver:     res,
		Router:       rt,
		Store:        store,
		src:          src,
		bus:          bus,
		sink:         sink,
		log:          logg,
		systemPrompt: cfg.Router.SystemPrompt,
		promEnabled:  cfg.Metrics.PrometheusEnabled,
		promAddr:     cfg.Metrics.PrometheusAddr,
	}

	for _, ec := range cfg.Resolvers.Exec {
		rt.Register(resolvers.NewExecResolver(ec.Name, ec.Command, ec.Args, logger.New("exec-resolver")))
	}
	for _, rc := range cfg.Resolvers.Remote {
		remote, err := resolvers.NewMQTTResolver(rc.Name, rc.MQTTConfig)
		if err != nil {
			_ = svc.Close()
			return nil, fmt.Errorf("remote resolver %s: %w", rc.Name, err)
		}
		svc.remotes = append(svc.remotes, remote)
		rt.Register(remote)
	}

	return svc, nil
}

func openStore(cfg config.ReportLogConfig) (reportlog.Store, error) {
	switch cfg.Backend {
	case "sqlite":
		return reportlog.NewSQLiteStore(cfg.Path)
	default:
		return reportlog.NewJSONLStore(cfg.Path)
	}
}

// Detect runs one detection pass over the configured schedules, resolves
// every conflict, persists the report and records metrics.
func (s *Service) Detect(ctx context.Context) (*reportlog.Report, error) {
	schedules, err := s.src.Schedules(ctx)
	if err != nil {
		return nil, err
	}
	conflicts := s.Detector.Detect(schedules)

	report := &reportlog.Report{
		Timestamp: time.Now(),
		Conflicts: conflicts,
	}
	hard := 0
	recs := make([]coremetrics.ConflictRecord, 0, len(conflicts))
	for _, c := range conflicts {
		if c.Type == model.HardConflict {
			hard++
		}
		report.Resolutions = append(report.Resolutions, s.Resolver.Resolve(c))
		recs = append(recs, coremetrics.ConflictRecord{
			School:   c.School,
			Venue:    c.Venue,
			Date:     c.Date,
			Type:     c.Type,
			Severity: c.Severity,
			Time:     report.Timestamp,
		})
	}

	if err := s.sink.RecordConflicts(recs); err != nil {
		s.log.Warnf("recording conflicts: %v", err)
	}
	s.bus.Publish(DetectionEvent{Conflicts: len(conflicts), Hard: hard})
	if err := s.Store.Append(ctx, *report); err != nil {
		s.log.Warnf("persisting report: %v", err)
	}
	return report, nil
}

// Route processes a request through the task router.
func (s *Service) Route(ctx context.Context, request string) (string, error) {
	return s.Router.Route(ctx, request, s.systemPrompt)
}

// Start launches background components. It returns immediately; the
// components stop when the context is canceled.
func (s *Service) Start(ctx context.Context) {
	if s.promEnabled {
		go func() {
			if err := metrics.StartPromServer(ctx, s.promAddr); err != nil {
				s.log.Errorf("prom server: %v", err)
			}
		}()
	}
}

// Events exposes the service event bus for subscribers.
func (s *Service) Events() eventbus.EventBus { return s.bus }

// Close releases resources held by the service.
func (s *Service) Close() error {
	for _, r := range s.remotes {
		r.Disconnect()
	}
	s.bus.Close()
	if s.Store != nil {
		return s.Store.Close()
	}
	return nil
}

// defaultGeo returns road distances between conference campuses in km.
func defaultGeo() providers.GeoProvider {
	return providers.NewStaticGeo(map[[2]string]float64{
		{"arizona_state", "baylor"}:        1600,
		{"arizona_state", "iowa_state"}:    2250,
		{"arizona_state", "kansas"}:        1750,
		{"arizona_state", "west_virginia"}: 3100,
		{"baylor", "iowa_state"}:           1100,
		{"baylor", "kansas"}:               750,
		{"baylor", "west_virginia"}:        1900,
		{"iowa_state", "kansas"}:           400,
		{"iowa_state", "west_virginia"}:    1300,
		{"kansas", "west_virginia"}:        1400,
	})
}

// defaultWeather returns seasonal outlooks per campus.
func defaultWeather() providers.WeatherProvider {
	return providers.NewStaticWeather(map[string]providers.Outlook{
		"arizona_state": {Summary: "clear and hot", RiskLevel: "low", TempHighC: 36, PrecipProb: 0.05},
		"baylor":        {Summary: "warm with afternoon storms", RiskLevel: "moderate", TempHighC: 31, PrecipProb: 0.35},
		"iowa_state":    {Summary: "cold with snow chances", RiskLevel: "moderate", TempHighC: 2, PrecipProb: 0.40},
		"kansas":        {Summary: "windy and variable", RiskLevel: "moderate", TempHighC: 12, PrecipProb: 0.30},
		"west_virginia": {Summary: "overcast with rain", RiskLevel: "high", TempHighC: 9, PrecipProb: 0.55},
	})
}

package tracing

import (
	"io"

	"github.com/opentracing/opentracing-go"
	"github.com/pkg/errors"
	"github.com/uber/jaeger-client-go"
	jaegercfg "github.com/uber/jaeger-client-go/config"
	"go.uber.org/zap"
	"max.ks1230/customs-bot/internal/logger"
)

type config interface {
	Enabled() bool
	ServiceName() string
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Init installs the global tracer. With tracing disabled the opentracing no-op
// tracer stays in place.
func Init(cfg config) (io.Closer, error) {
	if !cfg.Enabled() {
		logger.Info("tracing disabled")
		return nopCloser{}, nil
	}

	jcfg := &jaegercfg.Configuration{
		ServiceName: cfg.ServiceName(),
		Sampler: &jaegercfg.SamplerConfig{
			Type:  jaeger.SamplerTypeConst,
			Param: 1,
		},
	}
	// JAEGER_* variables override the defaults above.
	jcfg, err := jcfg.FromEnv()
	if err != nil {
		return nil, errors.Wrap(err, "jaeger config from env")
	}

	tracer, closer, err := jcfg.NewTracer()
	if err != nil {
		return nil, errors.Wrap(err, "cannot init tracing")
	}
	opentracing.SetGlobalTracer(tracer)
	logger.Info("tracing enabled", zap.String("service", cfg.ServiceName()))
	return closer, nil
}

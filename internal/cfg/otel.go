package cfg

import "errors"

type OtelConfig struct {
	// OTLPEndpoint empty disables trace export.
	OTLPEndpoint string
	ServiceName  string
	SamplerRatio float64
}

func (l *Loader) loadOtel() OtelConfig {
	ratio := l.getEnvFloat64OrDefault("OTEL_SAMPLER_RATIO", 1.0)
	if ratio < 0 || ratio > 1 {
		l.errs = append(l.errs, errors.New("OTEL_SAMPLER_RATIO must be between 0 and 1"))
	}
	return OtelConfig{
		OTLPEndpoint: l.getEnvWithDefault("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
		ServiceName:  l.getEnvWithDefault("OTEL_SERVICE_NAME", "sociallogin"),
		SamplerRatio: ratio,
	}
}

package logger

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/noah-isme/skpi-portal/pkg/config"
	"github.com/noah-isme/skpi-portal/pkg/middleware/requestid"
)

// Options describes how a logger should be built independently of the HTTP config.
type Options struct {
	Production  bool
	Level       string
	Format      string
	OutputPaths []string
}

// New builds the server logger from application config.
func New(cfg *config.Config) (*zap.Logger, error) {
	return Build(Options{
		Production: cfg.Env == config.EnvProduction,
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
	})
}

// Build constructs a zap logger. An empty OutputPaths keeps zap's defaults.
func Build(opts Options) (*zap.Logger, error) {
	var zapCfg zap.Config
	if opts.Production {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
	}

	switch opts.Format {
	case "console":
		zapCfg.Encoding = "console"
	default:
		zapCfg.Encoding = "json"
	}

	if opts.Level != "" {
		if err := zapCfg.Level.UnmarshalText([]byte(opts.Level)); err != nil {
			zapCfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
		}
	}

	if len(opts.OutputPaths) > 0 {
		zapCfg.OutputPaths = opts.OutputPaths
		zapCfg.ErrorOutputPaths = opts.OutputPaths
	}

	zapCfg.EncoderConfig.TimeKey = "timestamp"
	zapCfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return zapCfg.Build()
}

// GinMiddleware writes one access log line per request.
func GinMiddleware(l *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		latency := time.Since(start)
		reqID := requestid.Value(c)

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", latency),
			zap.String("ip", c.ClientIP()),
		}
		if role := c.Query("role"); role != "" {
			fields = append(fields, zap.String("role", role))
		}
		if menu := c.Query("menu"); menu != "" {
			fields = append(fields, zap.String("menu", menu))
		}
		if reqID != "" {
			fields = append(fields, zap.String("request_id", reqID))
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}

		switch status := c.Writer.Status(); {
		case status >= 500:
			l.Error("http_request", fields...)
		case status >= 400:
			l.Warn("http_request", fields...)
		default:
			l.Info("http_request", fields...)
		}
	}
}

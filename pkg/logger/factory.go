package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// Format is the output encoding of a logger.
type Format string

const (
	FormatJSON Format = "json"
	FormatText Format = "text"
)

// Environment names recognised by WithEnvironment and Config.
const (
	EnvDevelopment = "development"
	EnvStaging     = "staging"
	EnvProduction  = "production"
)

type preset struct {
	name   string
	level  slog.Level
	format Format
}

var presets = map[string]preset{
	EnvDevelopment: {name: EnvDevelopment, level: slog.LevelDebug, format: FormatText},
	"dev":          {name: EnvDevelopment, level: slog.LevelDebug, format: FormatText},
	EnvStaging:     {name: EnvStaging, level: slog.LevelInfo, format: FormatJSON},
	"stage":        {name: EnvStaging, level: slog.LevelInfo, format: FormatJSON},
	EnvProduction:  {name: EnvProduction, level: slog.LevelInfo, format: FormatJSON},
	"prod":         {name: EnvProduction, level: slog.LevelInfo, format: FormatJSON},
}

type options struct {
	level      slog.Level
	format     Format
	output     io.Writer
	attrs      []slog.Attr
	extractors []ContextExtractor
}

// Option configures New.
type Option func(*options)

func WithLevel(l slog.Level) Option {
	return func(o *options) { o.level = l }
}

// WithFormat sets the output format. It panics on anything but FormatJSON or
// FormatText.
func WithFormat(f Format) Option {
	if f != FormatJSON && f != FormatText {
		panic(fmt.Errorf("%w: %q", ErrInvalidFormat, f))
	}
	return func(o *options) { o.format = f }
}

func WithTextFormatter() Option { return WithFormat(FormatText) }
func WithJSONFormatter() Option { return WithFormat(FormatJSON) }

// WithOutput sets the destination. Nil keeps the current one.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		if w != nil {
			o.output = w
		}
	}
}

// WithAttr adds attributes to every record.
func WithAttr(attrs ...slog.Attr) Option {
	return func(o *options) { o.attrs = append(o.attrs, attrs...) }
}

// WithContextExtractors registers extractors run by the ContextHandler on
// every record, e.g. threadcontext.LoggerExtractor.
func WithContextExtractors(extractors ...ContextExtractor) Option {
	return func(o *options) { o.extractors = append(o.extractors, extractors...) }
}

// WithEnvironment applies the level and format of env and tags records with
// "service" and "env". Unknown names use development settings. An empty
// service leaves the options untouched.
func WithEnvironment(env, service string) Option {
	return func(o *options) {
		if service == "" {
			return
		}
		p, ok := presets[env]
		if !ok {
			p = presets[EnvDevelopment]
		}
		o.level = p.level
		o.format = p.format
		o.attrs = append(o.attrs, slog.String("service", service), slog.String("env", p.name))
	}
}

func WithDevelopment(service string) Option { return WithEnvironment(EnvDevelopment, service) }
func WithStaging(service string) Option     { return WithEnvironment(EnvStaging, service) }
func WithProduction(service string) Option  { return WithEnvironment(EnvProduction, service) }

// SetAsDefault installs l as the slog default, which is also what executors
// and futures log through when no logger is given.
func SetAsDefault(l *slog.Logger) {
	slog.SetDefault(l)
}

// New builds a logger writing JSON at info level to stdout unless options say
// otherwise. The handler is always wrapped in a ContextHandler so scope
// attributes from WithScope reach the output.
func New(opts ...Option) *slog.Logger {
	o := &options{level: slog.LevelInfo, format: FormatJSON, output: os.Stdout}
	for _, opt := range opts {
		opt(o)
	}

	ho := &slog.HandlerOptions{Level: o.level}
	var h slog.Handler
	switch o.format {
	case FormatText:
		h = slog.NewTextHandler(o.output, ho)
	default:
		h = slog.NewJSONHandler(o.output, ho)
	}
	if len(o.attrs) > 0 {
		h = h.WithAttrs(o.attrs)
	}
	return slog.New(NewContextHandler(h, o.extractors...))
}

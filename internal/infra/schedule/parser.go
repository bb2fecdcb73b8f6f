package schedule

import (
	"errors"
	"fmt"
	"strings"
	"time"

	cron "github.com/netresearch/go-cron"
)

var ErrNoOccurrence = errors.New("schedule has no future occurrence")

// Standard five field expressions plus descriptors such as @daily.
var _parser = cron.MustNewParser(
	cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

// Parser computes stop times from cron expressions stored in annotations.
type Parser struct {
	defaultTZ string
}

// New creates a parser that interprets expressions without a zone in defaultTZ.
// An empty defaultTZ means UTC.
func New(defaultTZ string) *Parser {
	if defaultTZ == "" {
		defaultTZ = "UTC"
	}

	return &Parser{defaultTZ: defaultTZ}
}

// NextAfter returns the next occurrence of spec strictly after `after`.
// tz overrides the default zone unless spec carries its own CRON_TZ= or TZ=
// prefix.
func (p *Parser) NextAfter(
	spec,
	tz string,
	after time.Time,
) (time.Time, error) {
	schedule, err := p.parse(spec, tz)
	if err != nil {
		return time.Time{}, err
	}

	next := schedule.Next(after)
	if next.IsZero() {
		return time.Time{}, fmt.Errorf("%w: %q", ErrNoOccurrence, spec)
	}

	return next, nil
}

// Validate reports whether spec and tz form a usable schedule.
func (p *Parser) Validate(spec, tz string) error {
	_, err := p.parse(spec, tz)

	return err
}

func (p *Parser) parse(spec, tz string) (cron.Schedule, error) {
	spec = strings.TrimSpace(spec)

	schedule, err := _parser.Parse(p.withZone(spec, tz))
	if err != nil {
		return nil, fmt.Errorf("parse cron spec %q: %w", spec, err)
	}

	return schedule, nil
}

func (p *Parser) withZone(spec, tz string) string {
	if strings.HasPrefix(spec, "CRON_TZ=") || strings.HasPrefix(spec, "TZ=") {
		return spec
	}

	if tz == "" {
		tz = p.defaultTZ
	}

	return "CRON_TZ=" + tz + " " + spec
}

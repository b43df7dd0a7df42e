package config

import (
	"fmt"

	"github.com/katalvlaran/syracuse/relations"
	"github.com/katalvlaran/syracuse/sequence"
	"go.uber.org/zap"
)

// Build validates the config and returns the Sequence it describes, with
// the relation's arity enforced and the given extra options applied last.
func (c *Config) Build(extra ...sequence.Option) (*sequence.Sequence, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	spec, err := relations.Parse(c.Relation)
	if err != nil {
		return nil, err
	}
	mode, err := sequence.ParseMode(c.Mode)
	if err != nil {
		return nil, err
	}

	opts := []sequence.Option{
		sequence.WithArity(spec.Arity),
		sequence.WithMode(mode),
		sequence.WithMaxSteps(c.MaxSteps),
	}
	if c.Batch.Workers > 0 {
		opts = append(opts, sequence.WithWorkers(c.Batch.Workers))
	}
	opts = append(opts, extra...)

	seq, err := sequence.New(spec.Relation, c.Terms, opts...)
	if err != nil {
		return nil, fmt.Errorf("build %s: %w", spec.Name, err)
	}

	return seq, nil
}

// Logger builds a zap logger from the Logging section.
func (c *Config) Logger() (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	if c.Logging.Format == "console" {
		zc = zap.NewDevelopmentConfig()
	}
	if c.Logging.Level != "" {
		lvl, err := zap.ParseAtomicLevel(c.Logging.Level)
		if err != nil {
			return nil, fmt.Errorf("%w: logging.level: %w", ErrInvalid, err)
		}
		zc.Level = lvl
	}

	return zc.Build()
}

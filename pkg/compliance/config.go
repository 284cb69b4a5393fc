// pkg/compliance/config.go
package compliance

import (
	"context"
	"math"

	cerr "github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"github.com/datagovrs/standards/pkg/sderr"
)

// Config carries caller-supplied engine overrides. The engine holds no
// file-backed state; callers load the bytes themselves.
type Config struct {
	Weights map[string]float64 `yaml:"weights"`
}

// weightTolerance absorbs float formatting noise in hand-written YAML.
const weightTolerance = 1e-6

// ConfigFromYAML parses engine configuration. Category weights, when
// given, must cover known validator names and sum to 1.0; a rejected
// config is a caller error, not a data problem.
func ConfigFromYAML(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, sderr.WrapConfigError(err)
	}

	if len(cfg.Weights) > 0 {
		known := map[string]bool{}
		for _, v := range DefaultValidators() {
			known[v.Name()] = true
		}
		sum := 0.0
		for name, w := range cfg.Weights {
			if !known[name] {
				return nil, sderr.WrapConfigError(cerr.Newf("unknown validator %q in weights", name))
			}
			if w < 0 {
				return nil, sderr.WrapConfigError(cerr.Newf("negative weight %.3f for %q", w, name))
			}
			sum += w
		}
		if math.Abs(sum-1.0) > weightTolerance {
			return nil, sderr.WrapConfigError(cerr.Newf("weights sum to %.3f, want 1.0", sum))
		}
	}
	return &cfg, nil
}

// reweighted overrides a validator's weight without touching its logic.
type reweighted struct {
	Validator
	weight float64
}

func (r reweighted) Weight() float64 { return r.weight }

func (r reweighted) Validate(ctx context.Context, vc *Context) (*CategoryResult, error) {
	res, err := r.Validator.Validate(ctx, vc)
	if res != nil {
		res.Weight = r.weight
	}
	return res, err
}

// apply returns the validator set with configured weights substituted.
// Validators absent from the config keep their defaults; with a full
// weight map that still sums to 1.0 per ConfigFromYAML.
func (c *Config) apply(vs []Validator) []Validator {
	if len(c.Weights) == 0 {
		return vs
	}
	out := make([]Validator, len(vs))
	for i, v := range vs {
		if w, ok := c.Weights[v.Name()]; ok {
			out[i] = reweighted{Validator: v, weight: w}
			continue
		}
		out[i] = v
	}
	return out
}

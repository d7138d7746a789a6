// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package knapsack

import (
	"bytes"
	"io"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"code.hybscloud.com/knapsack/fault"
)

// Config is the declarative form of the evaluation options.
// Zero fields keep the defaults.
type Config struct {
	// FrameBudget limits each evaluation to this many frames (0 = unlimited).
	FrameBudget uint64 `yaml:"frameBudget"`

	// CheckInterval is the number of frames between context checks.
	CheckInterval int `yaml:"checkInterval"`

	// StackHint is the initial stack capacity.
	StackHint int `yaml:"stackHint"`

	// Concurrency bounds SolveAll (0 = GOMAXPROCS).
	Concurrency int `yaml:"concurrency"`
}

// ParseConfig decodes a YAML document into a Config and validates it.
// Unknown keys are rejected. An empty document yields the zero Config.
func ParseConfig(data []byte) (Config, error) {
	var c Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fault.Preconditionf("decode config: %v", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate reports negative settings as fault.ErrPrecondition.
func (c Config) Validate() error {
	switch {
	case c.CheckInterval < 0:
		return fault.Preconditionf("checkInterval %d is negative", c.CheckInterval)
	case c.StackHint < 0:
		return fault.Preconditionf("stackHint %d is negative", c.StackHint)
	case c.Concurrency < 0:
		return fault.Preconditionf("concurrency %d is negative", c.Concurrency)
	}
	return nil
}

// Options converts c into evaluation options.
func (c Config) Options() []Option {
	var opts []Option
	if c.FrameBudget > 0 {
		opts = append(opts, WithFrameBudget(c.FrameBudget))
	}
	if c.CheckInterval > 0 {
		opts = append(opts, WithCheckInterval(c.CheckInterval))
	}
	if c.StackHint > 0 {
		opts = append(opts, WithStackHint(c.StackHint))
	}
	return opts
}

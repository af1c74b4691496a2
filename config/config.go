// Copyright © 2024 Wei Shen <shenwei356@gmail.com>
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

// Package config is for app wide settings that are unmarshalled from Viper
// (see: /cmd).
package config

import (
	"log"

	"github.com/spf13/viper"
)

// AlignConfig holds the scoring and gap parameters for the aligner. The
// defaults match the values a deployed CRISPResso2 instance runs with.
type AlignConfig struct {
	// Match is the score awarded for two identical canonical bases.
	Match int32 `mapstructure:"match"`

	// Mismatch is the score (typically negative) for two differing
	// canonical bases.
	Mismatch int32 `mapstructure:"mismatch"`

	// NMismatch is the score for a column where one side is 'N' and the
	// bases differ.
	NMismatch int32 `mapstructure:"n-mismatch"`

	// NMatch is the score for a column where both sides are 'N'.
	NMatch int32 `mapstructure:"n-match"`

	// GapOpen is the penalty for starting a new gap.
	GapOpen int32 `mapstructure:"gap-open"`

	// GapExtend is the penalty for extending an existing gap by one
	// column.
	GapExtend int32 `mapstructure:"gap-extend"`
}

// Config is the root-level settings struct, a mix of Viper defaults and
// settings bound from the command line. No settings file is read.
type Config struct {
	Align AlignConfig

	// Verbose enables extra logging to stderr.
	Verbose bool `mapstructure:"verbose"`
}

// defaults mirrors CRISPResso2's own args.json values.
var defaults = AlignConfig{
	Match:     5,
	Mismatch:  -4,
	NMismatch: -2,
	NMatch:    -1,
	GapOpen:   -20,
	GapExtend: -2,
}

func init() {
	viper.SetDefault("align.match", defaults.Match)
	viper.SetDefault("align.mismatch", defaults.Mismatch)
	viper.SetDefault("align.n-mismatch", defaults.NMismatch)
	viper.SetDefault("align.n-match", defaults.NMatch)
	viper.SetDefault("align.gap-open", defaults.GapOpen)
	viper.SetDefault("align.gap-extend", defaults.GapExtend)
	viper.SetDefault("verbose", false)
}

// NewConfig returns a new Config struct populated by Viper settings (the
// defaults set in init and any command line flags bound with
// viper.BindPFlag).
func NewConfig() Config {
	var c Config
	if err := viper.Unmarshal(&c); err != nil {
		log.Fatalf("unable to decode into struct, %v", err)
	}
	return c
}

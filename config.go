// Copyright 2020-2021 Dolthub, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cql

import (
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

// Config is the optional cql.yaml loaded at startup; every field has a
// usable default so a missing or partial file never blocks the REPL.
type Config struct {
	DataDir            string `yaml:"data_dir"`
	Prompt             string `yaml:"prompt"`
	ContinuationPrompt string `yaml:"continuation_prompt"`
	LogLevel           string `yaml:"log_level"`
}

// DefaultConfig mirrors the values a bare, un-configured REPL assumes.
func DefaultConfig() *Config {
	return &Config{
		DataDir:            ".",
		Prompt:             "cql > ",
		ContinuationPrompt: "... > ",
		LogLevel:           "info",
	}
}

// LoadConfig reads path as YAML over DefaultConfig's values; a missing
// file is not an error, matching the "defaults are used when absent"
// contract.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// NewLogger builds the logrus logger used for session/REPL diagnostics,
// honoring Config.LogLevel.
func (c *Config) NewLogger() *logrus.Logger {
	log := logrus.New()
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
	return log
}

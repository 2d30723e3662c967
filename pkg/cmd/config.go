// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"fmt"
	"strconv"

	"github.com/BurntSushi/toml"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Config captures the settings which can be given in a configuration file,
// rather than on the command line.  For example:
//
//	format = "grid"
//	color = "always"
//	max-vars = 8
type Config struct {
	Format  string `toml:"format"`
	Where   string `toml:"where"`
	MaxVars uint   `toml:"max-vars"`
	Color   string `toml:"color"`
	Verbose bool   `toml:"verbose"`
}

// ReadConfigFile decodes a TOML configuration file.  The returned metadata
// identifies which keys were actually given.
func ReadConfigFile(filename string) (Config, toml.MetaData, error) {
	var cfg Config
	//
	md, err := toml.DecodeFile(filename, &cfg)
	if err != nil {
		return cfg, md, fmt.Errorf("reading config %s: %w", filename, err)
	} else if keys := md.Undecoded(); len(keys) != 0 {
		return cfg, md, fmt.Errorf("reading config %s: unknown key \"%s\"", filename, keys[0])
	}
	//
	return cfg, md, nil
}

// Apply the settings from a configuration file to those flags of a command
// which were not set explicitly.  Flags given on the command line always take
// precedence.
func applyConfigFile(cmd *cobra.Command, filename string) error {
	cfg, md, err := ReadConfigFile(filename)
	if err != nil {
		return err
	}
	//
	settings := []struct {
		key   string
		value string
	}{
		{"format", cfg.Format},
		{"where", cfg.Where},
		{"max-vars", strconv.FormatUint(uint64(cfg.MaxVars), 10)},
		{"color", cfg.Color},
		{"verbose", strconv.FormatBool(cfg.Verbose)},
	}
	//
	for _, s := range settings {
		flag := cmd.Flags().Lookup(s.key)
		//
		if !md.IsDefined(s.key) || flag == nil || flag.Changed {
			continue
		} else if err := cmd.Flags().Set(s.key, s.value); err != nil {
			return fmt.Errorf("reading config %s: %s: %w", filename, s.key, err)
		}
		//
		log.Debugf("using %s = %q from %s", s.key, s.value, filename)
	}
	//
	return nil
}

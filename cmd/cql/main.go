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

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cqlkit/cql"
)

var (
	dataDir string
	cfgPath string
	batch   string

	rootCmd = &cobra.Command{
		Use:          "cql",
		Short:        "cql",
		Long:         "An in-memory, single-user relational query engine with a SQL-like command language.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := cql.NewEngine(cfgPath)
			if err != nil {
				return err
			}
			if dataDir != "" {
				engine.Config.DataDir = dataDir
			}
			s := engine.NewSession()

			if batch != "" {
				f, err := os.Open(batch)
				if err != nil {
					return err
				}
				defer f.Close()
				engine.Serve(s, f, os.Stdout)
				return nil
			}

			engine.Serve(s, os.Stdin, os.Stdout)
			return nil
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&dataDir, "data-dir", "d", "", "directory holding <table>.csv files (overrides cql.yaml)")
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "cql.yaml", "path to config file")
	rootCmd.PersistentFlags().StringVarP(&batch, "batch", "b", "", "run commands from this file instead of stdin, then exit")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Copyright 2026 Blink Labs Software
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

// Package commands implements the nitf-tre command line
package commands

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version information injected at build time
	Version = "dev"
	Commit  = "none"
)

type globalFlags struct {
	verbose bool
	format  string
	hex     bool
}

// NewRootCmd builds the command tree
func NewRootCmd() *cobra.Command {
	g := &globalFlags{}
	rootCmd := &cobra.Command{
		Use:   "nitf-tre",
		Short: "Inspect NITF tagged record extensions and security blocks",
		Long: `nitf-tre decodes the TRE section and security block of NITF headers
using the built-in record declarations, and prints the decoded fields.

Use "nitf-tre [command] --help" for more information about a command.`,
		Version:       fmt.Sprintf("%s (commit %s)", Version, Commit),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := formatterFor(g.format); err != nil {
				return err
			}
			level := slog.LevelInfo
			if g.verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(
				slog.NewTextHandler(
					cmd.ErrOrStderr(),
					&slog.HandlerOptions{Level: level},
				),
			)
			slog.SetDefault(logger)
			return nil
		},
	}
	rootCmd.PersistentFlags().
		BoolVarP(&g.verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().
		StringVarP(&g.format, "format", "f", "json", "output format: json, yaml or cbor")
	rootCmd.PersistentFlags().
		BoolVar(&g.hex, "hex", false, "input is hex encoded")

	rootCmd.AddCommand(newTreCmd(g))
	rootCmd.AddCommand(newSecurityCmd(g))
	return rootCmd
}

// Execute runs the command tree against os.Args
func Execute() error {
	return NewRootCmd().Execute()
}

// readInput reads the file named by the first argument, or stdin for none or
// "-"
func readInput(cmd *cobra.Command, g *globalFlags, args []string) ([]byte, error) {
	var data []byte
	var err error
	if len(args) == 0 || args[0] == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(args[0])
	}
	if err != nil {
		return nil, err
	}
	if !g.hex {
		return data, nil
	}
	data = bytes.Join(bytes.Fields(data), nil)
	ret := make([]byte, hex.DecodedLen(len(data)))
	if _, err := hex.Decode(ret, data); err != nil {
		return nil, fmt.Errorf("decode hex input: %w", err)
	}
	return ret, nil
}

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

package commands

import (
	"encoding/hex"
	"fmt"

	"github.com/nitfgo/nitf"
	"github.com/nitfgo/nitf/security"
	"github.com/spf13/cobra"
)

type securityView struct {
	Schema string         `json:"schema" yaml:"schema"`
	Length int            `json:"length" yaml:"length"`
	Fields map[string]any `json:"fields" yaml:"fields"`
}

func newSecurityCmd(g *globalFlags) *cobra.Command {
	var version string
	var offset int
	cmd := &cobra.Command{
		Use:   "security",
		Short: "Security block commands",
	}
	cmd.PersistentFlags().
		StringVar(&version, "version", "02.10", "NITF file version selecting the block generation")
	cmd.PersistentFlags().
		IntVar(&offset, "offset", 0, "byte offset of the security block in the input")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "decode [file]",
			Short: "Decode a security block",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				schema, err := nitf.SecuritySchema(version)
				if err != nil {
					return err
				}
				data, err := readInput(cmd, g, args)
				if err != nil {
					return err
				}
				rec, n, err := schema.Decode(data, offset)
				if err != nil {
					return err
				}
				return output(cmd.OutOrStdout(), g, securityView{
					Schema: schema.Name(),
					Length: n,
					Fields: rec.Map(),
				})
			},
		},
		&cobra.Command{
			Use:   "upgrade [file]",
			Short: "Rewrite a NITF 2.0 security block in the NITF 2.1 layout",
			Long: `upgrade decodes a NITF 2.0 security block and prints the equivalent
NITF 2.1 block as hex. A downgrading event moves to the classification text.`,
			Args: cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				data, err := readInput(cmd, g, args)
				if err != nil {
					return err
				}
				old, _, err := security.V20.Decode(data, offset)
				if err != nil {
					return err
				}
				rec, err := security.UpgradeV20(old)
				if err != nil {
					return err
				}
				out, err := rec.Encode()
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(out))
				return err
			},
		},
	)
	return cmd
}

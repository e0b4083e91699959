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
	"log/slog"

	"github.com/nitfgo/nitf"
	"github.com/nitfgo/nitf/tre"
	"github.com/spf13/cobra"
)

type extensionView struct {
	Tag    string         `json:"tag"              yaml:"tag"`
	Known  bool           `json:"known"            yaml:"known"`
	Length int            `json:"length"           yaml:"length"`
	Hash   string         `json:"hash"             yaml:"hash"`
	Fields map[string]any `json:"fields,omitempty" yaml:"fields,omitempty"`
	Raw    string         `json:"raw,omitempty"    yaml:"raw,omitempty"`
}

type definitionView struct {
	Tag           string `json:"tag"            yaml:"tag"`
	Description   string `json:"description"    yaml:"description"`
	Length        int    `json:"length"         yaml:"length"`
	MinimumLength int    `json:"minimum_length" yaml:"minimum_length"`
}

func newTreCmd(g *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tre",
		Short: "Tagged record extension commands",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "decode [file]",
			Short: "Decode a CETAG/CEL framed extension stream",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				data, err := readInput(cmd, g, args)
				if err != nil {
					return err
				}
				exts, err := nitf.Extensions().DecodeStream(data)
				if err != nil {
					return err
				}
				views := make([]extensionView, 0, len(exts))
				for _, ext := range exts {
					view, err := newExtensionView(ext)
					if err != nil {
						return err
					}
					views = append(views, view)
				}
				slog.Debug(
					"decoded extension stream",
					"bytes", len(data),
					"extensions", len(views),
				)
				return output(cmd.OutOrStdout(), g, views)
			},
		},
		&cobra.Command{
			Use:   "tags",
			Short: "List the built-in extension declarations",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				reg := nitf.Extensions()
				var views []definitionView
				for _, tag := range reg.Tags() {
					def, _ := reg.Definition(tag)
					views = append(views, definitionView{
						Tag:           def.Tag,
						Description:   def.Description,
						Length:        def.Schema.Length(),
						MinimumLength: def.Schema.MinimumLength(),
					})
				}
				return output(cmd.OutOrStdout(), g, views)
			},
		},
	)
	return cmd
}

func newExtensionView(ext *tre.Extension) (extensionView, error) {
	payload, err := ext.Payload()
	if err != nil {
		return extensionView{}, err
	}
	hash, err := ext.Hash()
	if err != nil {
		return extensionView{}, err
	}
	view := extensionView{
		Tag:    ext.Tag,
		Known:  ext.Known(),
		Length: len(payload),
		Hash:   hash,
	}
	if ext.Known() {
		view.Fields = ext.Record.Map()
	} else {
		view.Raw = hex.EncodeToString(payload)
	}
	return view, nil
}

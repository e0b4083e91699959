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
	"encoding/json"
	"fmt"
	"io"

	"github.com/nitfgo/nitf/cbor"
	"gopkg.in/yaml.v3"
)

type formatter func(w io.Writer, v any) error

func formatterFor(name string) (formatter, error) {
	switch name {
	case "json":
		return writeJSON, nil
	case "yaml":
		return writeYAML, nil
	case "cbor":
		return writeCBOR, nil
	}
	return nil, fmt.Errorf("unknown output format %q", name)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

func writeCBOR(w io.Writer, v any) error {
	data, err := cbor.Encode(v)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

func output(w io.Writer, g *globalFlags, v any) error {
	f, err := formatterFor(g.format)
	if err != nil {
		return err
	}
	return f(w, v)
}

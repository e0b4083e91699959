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

package nitf

import (
	"errors"
	"fmt"
	"strings"

	"github.com/nitfgo/nitf/element"
	"github.com/nitfgo/nitf/security"
)

var ErrUnknownVersion = errors.New("nitf: unknown file version")

// Version describes one NITF file format version
type Version struct {
	Name     string
	Standard string
	Security *element.Schema
}

// Version definitions
var (
	Version21 = Version{
		Name:     "NITF02.10",
		Standard: "MIL-STD-2500C",
		Security: security.V21,
	}
	Version20 = Version{
		Name:     "NITF02.00",
		Standard: "MIL-STD-2500A",
		Security: security.V20,
	}

	VersionInvalid = Version{
		Name: "invalid",
	} // VersionInvalid is used as a return value for lookup functions when a version isn't found
)

// List of valid versions for use in lookup functions
var versions = []Version{
	Version21,
	Version20,
}

// VersionByName returns a predefined version from the FHDR/FVER form
// ("NITF02.10") or the bare FVER form ("02.10")
func VersionByName(name string) Version {
	name = strings.TrimSpace(name)
	for _, version := range versions {
		if version.Name == name || strings.TrimPrefix(version.Name, "NITF") == name {
			return version
		}
	}
	return VersionInvalid
}

// SecuritySchema returns the security block schema used by the named version
func SecuritySchema(version string) (*element.Schema, error) {
	v := VersionByName(version)
	if v.Security == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownVersion, version)
	}
	return v.Security, nil
}

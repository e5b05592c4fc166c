// Copyright (c) 2026 Tigera, Inc. All rights reserved.
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

package nldiag

import "fmt"

// Registry maps numeric family IDs (as resolved by the transport, e.g.
// from the generic netlink controller) to family descriptors.  Like the
// schema tables it is built once and read-only afterwards.
type Registry struct {
	families map[uint16]*Family
}

// NewRegistry builds a registry over the given families.  The map is
// retained, not copied.
func NewRegistry(families map[uint16]*Family) *Registry {
	return &Registry{families: families}
}

// Lookup returns the family registered under an ID, or nil.
func (r *Registry) Lookup(familyID uint16) *Family {
	return r.families[familyID]
}

// Describe renders a message through the family registered under the
// given ID.  A message for an unregistered family still renders: the
// family and command names fall back to numeric labels and the payload
// is decoded with an empty schema, so every attribute shows up as an
// unknown-attribute summary.
func (r *Registry) Describe(familyID uint16, cmd uint16, payload []byte, opts ...Option) (familyName, cmdName, attrs string) {
	if f := r.families[familyID]; f != nil {
		cmdName, attrs = f.Describe(cmd, payload, opts...)
		return f.Name(), cmdName, attrs
	}
	var o describeOpts
	for _, opt := range opts {
		opt(&o)
	}
	return fmt.Sprintf("#%d", familyID),
		fmt.Sprintf("#%d", cmd),
		DumpAttributes(NewView(payload), AttributeMap{}, o.verbose)
}

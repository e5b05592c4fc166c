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

import (
	"fmt"

	log "github.com/sirupsen/logrus"
)

// Family describes one netlink protocol family for diagnostic purposes:
// a name, a command-ID-to-name table and the top-level attribute map
// applied to every command's payload.  All protocol knowledge lives in
// this data; adding a family never touches the decoder.
//
// Families are built once and never mutated, so a single instance may
// serve concurrent Describe calls without synchronization.
type Family struct {
	name     string
	commands map[uint16]string
	attrs    AttributeMap
}

// NewFamily builds a family descriptor from its tables.  The maps are
// retained, not copied; callers hand over ownership.
func NewFamily(name string, commands map[uint16]string, attrs AttributeMap) *Family {
	return &Family{
		name:     name,
		commands: commands,
		attrs:    attrs,
	}
}

// Name returns the family's display name.
func (f *Family) Name() string {
	return f.name
}

type describeOpts struct {
	verbose bool
}

// Option adjusts how Describe renders a message.
type Option func(*describeOpts)

// OptVerbose requests full detail: noisy attributes are expanded and raw
// payloads are printed byte for byte instead of being summarized.
func OptVerbose() Option {
	return func(o *describeOpts) {
		o.verbose = true
	}
}

// Describe resolves a command ID to its name and renders the command's
// attribute payload as diagnostic text.  An unrecognized command ID gets
// a numeric fallback name; payload malformations surface as in-band
// markers in the returned text.  Describe has no side effects beyond
// logging and metrics and never fails.
func (f *Family) Describe(cmd uint16, payload []byte, opts ...Option) (cmdName, attrs string) {
	var o describeOpts
	for _, opt := range opts {
		opt(&o)
	}

	name, known := f.commands[cmd]
	if !known {
		name = fmt.Sprintf("#%d", cmd)
		counterVecUnknownCommands.WithLabelValues(f.name).Inc()
	}
	counterVecMessagesDescribed.WithLabelValues(f.name).Inc()

	log.WithFields(log.Fields{
		"family":     f.name,
		"cmd":        name,
		"payloadLen": len(payload),
	}).Debug("Describing netlink message")

	return name, DumpAttributes(NewView(payload), f.attrs, o.verbose)
}

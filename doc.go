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

// Package nldiag renders inbound netlink messages as human-readable
// diagnostic text, driven by declarative per-family schema tables.
//
// The input is treated as hostile: buffers may be truncated, oversized
// or corrupted, and attributes nest recursively.  Every byte access goes
// through a bounds-checked View, malformations degrade to visible
// in-band markers, and no input can make decoding fail or read past the
// supplied buffer.
//
// The package only decodes; it opens no sockets and constructs no
// messages.  Family tables live under families/ and are pure data.
package nldiag

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

import "github.com/prometheus/client_golang/prometheus"

var (
	counterVecMessagesDescribed = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "nldiag_messages_described",
		Help: "Total number of netlink messages rendered, broken down by family.",
	}, []string{"family"})
	counterVecUnknownCommands = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "nldiag_unknown_commands",
		Help: "Total number of messages whose command ID had no table entry, broken down by family.",
	}, []string{"family"})
	countMalformedStream = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "nldiag_malformed_attribute_streams",
		Help: "Total number of attribute streams cut short by a length overrun.",
	})
	countUnknownAttrs = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "nldiag_unknown_attributes",
		Help: "Total number of attributes rendered through the unknown-attribute fallback.",
	})
)

func init() {
	prometheus.MustRegister(
		counterVecMessagesDescribed,
		counterVecUnknownCommands,
		countMalformedStream,
		countUnknownAttrs,
	)
}

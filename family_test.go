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
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Family", func() {
	var fam *Family

	BeforeEach(func() {
		fam = NewFamily("testfam",
			map[uint16]string{
				1: "GET",
				2: "SET",
			},
			AttributeMap{
				1: {Name: "IFINDEX", Type: TypeUint},
				2: {Name: "NAME", Type: TypeStringNul},
				3: {Name: "DATA", Type: TypeRaw},
			},
		)
	})

	It("should report its name", func() {
		Expect(fam.Name()).To(Equal("testfam"))
	})

	It("should resolve a known command and decode its payload", func() {
		payload := stream(nla(1, u32le(3)), nla(2, []byte("wlan0\x00")))
		cmd, attrs := fam.Describe(1, payload)
		Expect(cmd).To(Equal("GET"))
		Expect(attrs).To(Equal(`{IFINDEX=3, NAME="wlan0"}`))
	})

	It("should render an unknown command as a numeric label", func() {
		cmd, attrs := fam.Describe(77, nil)
		Expect(cmd).To(Equal("#77"))
		Expect(attrs).To(Equal("{}"))
	})

	It("should summarize raw payloads unless verbose is requested", func() {
		payload := nla(3, []byte{0xca, 0xfe})
		_, compact := fam.Describe(1, payload)
		Expect(compact).To(Equal("{DATA=" + rawSummary([]byte{0xca, 0xfe}) + "}"))

		_, verbose := fam.Describe(1, payload, OptVerbose())
		Expect(verbose).To(Equal("{DATA=cafe}"))
	})

	It("should report malformations in-band rather than fail", func() {
		payload := stream(nla(1, u32le(9)), []byte{1, 0, 0, 0})
		cmd, attrs := fam.Describe(2, payload)
		Expect(cmd).To(Equal("SET"))
		Expect(attrs).To(Equal("{IFINDEX=9, ERR}"))
	})
})

var _ = Describe("Registry", func() {
	var reg *Registry

	BeforeEach(func() {
		fam := NewFamily("testfam",
			map[uint16]string{1: "GET"},
			AttributeMap{1: {Name: "IFINDEX", Type: TypeUint}},
		)
		reg = NewRegistry(map[uint16]*Family{0x19: fam})
	})

	It("should look up registered families by ID", func() {
		Expect(reg.Lookup(0x19)).NotTo(BeNil())
		Expect(reg.Lookup(0x20)).To(BeNil())
	})

	It("should describe through a registered family", func() {
		famName, cmd, attrs := reg.Describe(0x19, 1, nla(1, u32le(4)))
		Expect(famName).To(Equal("testfam"))
		Expect(cmd).To(Equal("GET"))
		Expect(attrs).To(Equal("{IFINDEX=4}"))
	})

	It("should still decode messages for unregistered families", func() {
		payload := nla(5, []byte{1, 2, 3})
		famName, cmd, attrs := reg.Describe(0x42, 9, payload)
		Expect(famName).To(Equal("#66"))
		Expect(cmd).To(Equal("#9"))
		Expect(attrs).To(Equal("{#5=" + rawSummary([]byte{1, 2, 3}) + "}"))
	})
})

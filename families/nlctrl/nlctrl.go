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

// Package nlctrl carries the diagnostic schema for the generic netlink
// controller, the family used to resolve all the other generic netlink
// families.
package nlctrl

import (
	"sync"

	"github.com/projectcalico/nldiag"
)

// Commands and attributes from uapi/linux/genetlink.h.
const (
	CTRL_CMD_UNSPEC = iota
	CTRL_CMD_NEWFAMILY
	CTRL_CMD_DELFAMILY
	CTRL_CMD_GETFAMILY
	CTRL_CMD_NEWOPS
	CTRL_CMD_DELOPS
	CTRL_CMD_GETOPS
	CTRL_CMD_NEWMCAST_GRP
	CTRL_CMD_DELMCAST_GRP
	CTRL_CMD_GETMCAST_GRP
	CTRL_CMD_GETPOLICY
)

const (
	CTRL_ATTR_UNSPEC = iota
	CTRL_ATTR_FAMILY_ID
	CTRL_ATTR_FAMILY_NAME
	CTRL_ATTR_VERSION
	CTRL_ATTR_HDRSIZE
	CTRL_ATTR_MAXATTR
	CTRL_ATTR_OPS
	CTRL_ATTR_MCAST_GROUPS
	CTRL_ATTR_POLICY
	CTRL_ATTR_OP_POLICY
	CTRL_ATTR_OP
)

const (
	CTRL_ATTR_OP_UNSPEC = iota
	CTRL_ATTR_OP_ID
	CTRL_ATTR_OP_FLAGS
)

const (
	CTRL_ATTR_MCAST_GRP_UNSPEC = iota
	CTRL_ATTR_MCAST_GRP_NAME
	CTRL_ATTR_MCAST_GRP_ID
)

var family = sync.OnceValue(newFamily)

// Family returns the controller family descriptor.
func Family() *nldiag.Family {
	return family()
}

func newFamily() *nldiag.Family {
	return nldiag.NewFamily("nlctrl", map[uint16]string{
		CTRL_CMD_UNSPEC:       "UNSPEC",
		CTRL_CMD_NEWFAMILY:    "NEWFAMILY",
		CTRL_CMD_DELFAMILY:    "DELFAMILY",
		CTRL_CMD_GETFAMILY:    "GETFAMILY",
		CTRL_CMD_NEWOPS:       "NEWOPS",
		CTRL_CMD_DELOPS:       "DELOPS",
		CTRL_CMD_GETOPS:       "GETOPS",
		CTRL_CMD_NEWMCAST_GRP: "NEWMCAST_GRP",
		CTRL_CMD_DELMCAST_GRP: "DELMCAST_GRP",
		CTRL_CMD_GETMCAST_GRP: "GETMCAST_GRP",
		CTRL_CMD_GETPOLICY:    "GETPOLICY",
	}, attributes())
}

func attributes() nldiag.AttributeMap {
	return nldiag.AttributeMap{
		CTRL_ATTR_UNSPEC:      {Name: "UNSPEC"},
		CTRL_ATTR_FAMILY_ID:   {Name: "FAMILY_ID", Type: nldiag.TypeUint},
		CTRL_ATTR_FAMILY_NAME: {Name: "FAMILY_NAME", Type: nldiag.TypeStringNul},
		CTRL_ATTR_VERSION:     {Name: "VERSION", Type: nldiag.TypeUint},
		CTRL_ATTR_HDRSIZE:     {Name: "HDRSIZE", Type: nldiag.TypeUint},
		CTRL_ATTR_MAXATTR:     {Name: "MAXATTR", Type: nldiag.TypeUint},
		CTRL_ATTR_OPS: {Name: "OPS", Type: nldiag.TypeNested, Children: nldiag.AttributeMap{
			nldiag.AnyID: {Name: "OP", Type: nldiag.TypeNested, Children: nldiag.AttributeMap{
				CTRL_ATTR_OP_ID:    {Name: "ID", Type: nldiag.TypeUint},
				CTRL_ATTR_OP_FLAGS: {Name: "FLAGS", Type: nldiag.TypeUint},
			}},
		}},
		CTRL_ATTR_MCAST_GROUPS: {Name: "MCAST_GROUPS", Type: nldiag.TypeNested, Children: nldiag.AttributeMap{
			nldiag.AnyID: {Name: "GRP", Type: nldiag.TypeNested, Children: nldiag.AttributeMap{
				CTRL_ATTR_MCAST_GRP_NAME: {Name: "NAME", Type: nldiag.TypeStringNul},
				CTRL_ATTR_MCAST_GRP_ID:   {Name: "ID", Type: nldiag.TypeUint},
			}},
		}},
		CTRL_ATTR_POLICY:    {Name: "POLICY", Type: nldiag.TypeNested, Flags: nldiag.FlagVerbose},
		CTRL_ATTR_OP_POLICY: {Name: "OP_POLICY", Type: nldiag.TypeNested, Flags: nldiag.FlagVerbose},
		CTRL_ATTR_OP:        {Name: "OP", Type: nldiag.TypeUint},
	}
}

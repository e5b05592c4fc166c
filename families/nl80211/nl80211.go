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

// Package nl80211 carries the diagnostic schema for the nl80211 generic
// netlink family (wireless configuration and scan results).  Everything
// here is data; the decoding logic lives in the nldiag package.
package nl80211

import (
	"sync"

	"github.com/projectcalico/nldiag"
)

type def = nldiag.AttributeDefinition
type amap = nldiag.AttributeMap

// Shorthand constructors keeping the schema tables readable.
func auto(name string) def { return def{Name: name} }
func flag(name string) def { return def{Name: name, Type: nldiag.TypeFlag} }
func num(name string) def  { return def{Name: name, Type: nldiag.TypeUint} }
func str(name string) def  { return def{Name: name, Type: nldiag.TypeString} }
func strz(name string) def { return def{Name: name, Type: nldiag.TypeStringNul} }
func raw(name string) def  { return def{Name: name, Type: nldiag.TypeRaw} }

func rawv(name string) def {
	return def{Name: name, Type: nldiag.TypeRaw, Flags: nldiag.FlagVerbose}
}

func nest(name string, children amap) def {
	return def{Name: name, Type: nldiag.TypeNested, Children: children}
}

func nestv(name string, children amap) def {
	return def{Name: name, Type: nldiag.TypeNested, Children: children, Flags: nldiag.FlagVerbose}
}

func structOf(name string, f nldiag.StructFormatter) def {
	return def{Name: name, Type: nldiag.TypeStruct, Formatter: f}
}

// iftypes is shared by SUPPORTED_IFTYPES, SOFTWARE_IFTYPES and the
// interface-combination limit types; each member is a zero-length flag
// attribute.
var iftypes = amap{
	NL80211_IFTYPE_UNSPECIFIED: flag("UNSPECIFIED"),
	NL80211_IFTYPE_ADHOC:       flag("ADHOC"),
	NL80211_IFTYPE_STATION:     flag("STATION"),
	NL80211_IFTYPE_AP:          flag("AP"),
	NL80211_IFTYPE_AP_VLAN:     flag("AP_VLAN"),
	NL80211_IFTYPE_WDS:         flag("WDS"),
	NL80211_IFTYPE_MONITOR:     flag("MONITOR"),
	NL80211_IFTYPE_MESH_POINT:  flag("MESH_POINT"),
	NL80211_IFTYPE_P2P_CLIENT:  flag("P2P_CLIENT"),
	NL80211_IFTYPE_P2P_GO:      flag("P2P_GO"),
	NL80211_IFTYPE_P2P_DEVICE:  flag("P2P_DEVICE"),
	NL80211_IFTYPE_OCB:         flag("OCB"),
	NL80211_IFTYPE_NAN:         flag("NAN"),
}

var family = sync.OnceValue(newFamily)

// Family returns the nl80211 family descriptor.  It is built on first
// use and immutable afterwards; the same instance serves all callers.
func Family() *nldiag.Family {
	return family()
}

func newFamily() *nldiag.Family {
	return nldiag.NewFamily("nl80211", commandNames(), attributes())
}

func commandNames() map[uint16]string {
	return map[uint16]string{
		NL80211_CMD_UNSPEC: "UNSPEC",

		NL80211_CMD_GET_WIPHY: "GET_WIPHY",
		NL80211_CMD_SET_WIPHY: "SET_WIPHY",
		NL80211_CMD_NEW_WIPHY: "NEW_WIPHY",
		NL80211_CMD_DEL_WIPHY: "DEL_WIPHY",

		NL80211_CMD_GET_INTERFACE: "GET_INTERFACE",
		NL80211_CMD_SET_INTERFACE: "SET_INTERFACE",
		NL80211_CMD_NEW_INTERFACE: "NEW_INTERFACE",
		NL80211_CMD_DEL_INTERFACE: "DEL_INTERFACE",

		NL80211_CMD_GET_KEY: "GET_KEY",
		NL80211_CMD_SET_KEY: "SET_KEY",
		NL80211_CMD_NEW_KEY: "NEW_KEY",
		NL80211_CMD_DEL_KEY: "DEL_KEY",

		NL80211_CMD_GET_BEACON: "GET_BEACON",
		NL80211_CMD_SET_BEACON: "SET_BEACON",
		NL80211_CMD_START_AP:   "START_AP",
		NL80211_CMD_STOP_AP:    "STOP_AP",

		NL80211_CMD_GET_STATION: "GET_STATION",
		NL80211_CMD_SET_STATION: "SET_STATION",
		NL80211_CMD_NEW_STATION: "NEW_STATION",
		NL80211_CMD_DEL_STATION: "DEL_STATION",

		NL80211_CMD_GET_MPATH: "GET_MPATH",
		NL80211_CMD_SET_MPATH: "SET_MPATH",
		NL80211_CMD_NEW_MPATH: "NEW_MPATH",
		NL80211_CMD_DEL_MPATH: "DEL_MPATH",

		NL80211_CMD_SET_BSS: "SET_BSS",

		NL80211_CMD_SET_REG:     "SET_REG",
		NL80211_CMD_REQ_SET_REG: "REQ_SET_REG",

		NL80211_CMD_GET_MESH_CONFIG: "GET_MESH_CONFIG",
		NL80211_CMD_SET_MESH_CONFIG: "SET_MESH_CONFIG",

		NL80211_CMD_SET_MGMT_EXTRA_IE: "SET_MGMT_EXTRA_IE",

		NL80211_CMD_GET_REG: "GET_REG",

		NL80211_CMD_GET_SCAN:         "GET_SCAN",
		NL80211_CMD_TRIGGER_SCAN:     "TRIGGER_SCAN",
		NL80211_CMD_NEW_SCAN_RESULTS: "NEW_SCAN_RESULTS",
		NL80211_CMD_SCAN_ABORTED:     "SCAN_ABORTED",

		NL80211_CMD_REG_CHANGE: "REG_CHANGE",

		NL80211_CMD_AUTHENTICATE:   "AUTHENTICATE",
		NL80211_CMD_ASSOCIATE:      "ASSOCIATE",
		NL80211_CMD_DEAUTHENTICATE: "DEAUTHENTICATE",
		NL80211_CMD_DISASSOCIATE:   "DISASSOCIATE",

		NL80211_CMD_MICHAEL_MIC_FAILURE: "MICHAEL_MIC_FAILURE",

		NL80211_CMD_REG_BEACON_HINT: "REG_BEACON_HINT",

		NL80211_CMD_JOIN_IBSS:  "JOIN_IBSS",
		NL80211_CMD_LEAVE_IBSS: "LEAVE_IBSS",

		NL80211_CMD_TESTMODE: "TESTMODE",

		NL80211_CMD_CONNECT:    "CONNECT",
		NL80211_CMD_ROAM:       "ROAM",
		NL80211_CMD_DISCONNECT: "DISCONNECT",

		NL80211_CMD_SET_WIPHY_NETNS: "SET_WIPHY_NETNS",

		NL80211_CMD_GET_SURVEY:         "GET_SURVEY",
		NL80211_CMD_NEW_SURVEY_RESULTS: "NEW_SURVEY_RESULTS",

		NL80211_CMD_SET_PMKSA:   "SET_PMKSA",
		NL80211_CMD_DEL_PMKSA:   "DEL_PMKSA",
		NL80211_CMD_FLUSH_PMKSA: "FLUSH_PMKSA",

		NL80211_CMD_REMAIN_ON_CHANNEL:        "REMAIN_ON_CHANNEL",
		NL80211_CMD_CANCEL_REMAIN_ON_CHANNEL: "CANCEL_REMAIN_ON_CHANNEL",

		NL80211_CMD_SET_TX_BITRATE_MASK: "SET_TX_BITRATE_MASK",

		NL80211_CMD_REGISTER_FRAME:  "REGISTER_FRAME",
		NL80211_CMD_FRAME:           "FRAME",
		NL80211_CMD_FRAME_TX_STATUS: "FRAME_TX_STATUS",

		NL80211_CMD_SET_POWER_SAVE: "SET_POWER_SAVE",
		NL80211_CMD_GET_POWER_SAVE: "GET_POWER_SAVE",

		NL80211_CMD_SET_CQM:    "SET_CQM",
		NL80211_CMD_NOTIFY_CQM: "NOTIFY_CQM",

		NL80211_CMD_SET_CHANNEL:  "SET_CHANNEL",
		NL80211_CMD_SET_WDS_PEER: "SET_WDS_PEER",

		NL80211_CMD_FRAME_WAIT_CANCEL: "FRAME_WAIT_CANCEL",

		NL80211_CMD_JOIN_MESH:  "JOIN_MESH",
		NL80211_CMD_LEAVE_MESH: "LEAVE_MESH",

		NL80211_CMD_UNPROT_DEAUTHENTICATE: "UNPROT_DEAUTHENTICATE",
		NL80211_CMD_UNPROT_DISASSOCIATE:   "UNPROT_DISASSOCIATE",

		NL80211_CMD_NEW_PEER_CANDIDATE: "NEW_PEER_CANDIDATE",

		NL80211_CMD_GET_WOWLAN: "GET_WOWLAN",
		NL80211_CMD_SET_WOWLAN: "SET_WOWLAN",

		NL80211_CMD_START_SCHED_SCAN:   "START_SCHED_SCAN",
		NL80211_CMD_STOP_SCHED_SCAN:    "STOP_SCHED_SCAN",
		NL80211_CMD_SCHED_SCAN_RESULTS: "SCHED_SCAN_RESULTS",
		NL80211_CMD_SCHED_SCAN_STOPPED: "SCHED_SCAN_STOPPED",

		NL80211_CMD_SET_REKEY_OFFLOAD: "SET_REKEY_OFFLOAD",

		NL80211_CMD_PMKSA_CANDIDATE: "PMKSA_CANDIDATE",

		NL80211_CMD_TDLS_OPER: "TDLS_OPER",
		NL80211_CMD_TDLS_MGMT: "TDLS_MGMT",

		NL80211_CMD_UNEXPECTED_FRAME: "UNEXPECTED_FRAME",

		NL80211_CMD_PROBE_CLIENT: "PROBE_CLIENT",

		NL80211_CMD_REGISTER_BEACONS: "REGISTER_BEACONS",

		NL80211_CMD_UNEXPECTED_4ADDR_FRAME: "UNEXPECTED_4ADDR_FRAME",

		NL80211_CMD_SET_NOACK_MAP: "SET_NOACK_MAP",

		NL80211_CMD_CH_SWITCH_NOTIFY: "CH_SWITCH_NOTIFY",

		NL80211_CMD_START_P2P_DEVICE: "START_P2P_DEVICE",
		NL80211_CMD_STOP_P2P_DEVICE:  "STOP_P2P_DEVICE",

		NL80211_CMD_CONN_FAILED: "CONN_FAILED",

		NL80211_CMD_SET_MCAST_RATE: "SET_MCAST_RATE",

		NL80211_CMD_SET_MAC_ACL: "SET_MAC_ACL",

		NL80211_CMD_RADAR_DETECT: "RADAR_DETECT",

		NL80211_CMD_GET_PROTOCOL_FEATURES: "GET_PROTOCOL_FEATURES",

		NL80211_CMD_UPDATE_FT_IES: "UPDATE_FT_IES",
		NL80211_CMD_FT_EVENT:      "FT_EVENT",

		NL80211_CMD_CRIT_PROTOCOL_START: "CRIT_PROTOCOL_START",
		NL80211_CMD_CRIT_PROTOCOL_STOP:  "CRIT_PROTOCOL_STOP",

		NL80211_CMD_GET_COALESCE: "GET_COALESCE",
		NL80211_CMD_SET_COALESCE: "SET_COALESCE",

		NL80211_CMD_CHANNEL_SWITCH: "CHANNEL_SWITCH",

		NL80211_CMD_VENDOR: "VENDOR",

		NL80211_CMD_SET_QOS_MAP: "SET_QOS_MAP",

		NL80211_CMD_ADD_TX_TS: "ADD_TX_TS",
		NL80211_CMD_DEL_TX_TS: "DEL_TX_TS",

		NL80211_CMD_GET_MPP: "GET_MPP",

		NL80211_CMD_JOIN_OCB:  "JOIN_OCB",
		NL80211_CMD_LEAVE_OCB: "LEAVE_OCB",

		NL80211_CMD_CH_SWITCH_STARTED_NOTIFY: "CH_SWITCH_STARTED_NOTIFY",

		NL80211_CMD_TDLS_CHANNEL_SWITCH:        "TDLS_CHANNEL_SWITCH",
		NL80211_CMD_TDLS_CANCEL_CHANNEL_SWITCH: "TDLS_CANCEL_CHANNEL_SWITCH",

		NL80211_CMD_WIPHY_REG_CHANGE: "WIPHY_REG_CHANGE",

		NL80211_CMD_ABORT_SCAN: "ABORT_SCAN",

		NL80211_CMD_START_NAN:         "START_NAN",
		NL80211_CMD_STOP_NAN:          "STOP_NAN",
		NL80211_CMD_ADD_NAN_FUNCTION:  "ADD_NAN_FUNCTION",
		NL80211_CMD_DEL_NAN_FUNCTION:  "DEL_NAN_FUNCTION",
		NL80211_CMD_CHANGE_NAN_CONFIG: "CHANGE_NAN_CONFIG",
		NL80211_CMD_NAN_MATCH:         "NAN_MATCH",

		NL80211_CMD_SET_MULTICAST_TO_UNICAST: "SET_MULTICAST_TO_UNICAST",

		NL80211_CMD_UPDATE_CONNECT_PARAMS: "UPDATE_CONNECT_PARAMS",

		NL80211_CMD_SET_PMK: "SET_PMK",
		NL80211_CMD_DEL_PMK: "DEL_PMK",

		NL80211_CMD_PORT_AUTHORIZED: "PORT_AUTHORIZED",

		NL80211_CMD_RELOAD_REGDB: "RELOAD_REGDB",

		NL80211_CMD_EXTERNAL_AUTH: "EXTERNAL_AUTH",

		NL80211_CMD_STA_OPMODE_CHANGED: "STA_OPMODE_CHANGED",

		NL80211_CMD_CONTROL_PORT_FRAME: "CONTROL_PORT_FRAME",

		NL80211_CMD_GET_FTM_RESPONDER_STATS: "GET_FTM_RESPONDER_STATS",

		NL80211_CMD_PEER_MEASUREMENT_START:    "PEER_MEASUREMENT_START",
		NL80211_CMD_PEER_MEASUREMENT_RESULT:   "PEER_MEASUREMENT_RESULT",
		NL80211_CMD_PEER_MEASUREMENT_COMPLETE: "PEER_MEASUREMENT_COMPLETE",

		NL80211_CMD_NOTIFY_RADAR: "NOTIFY_RADAR",

		NL80211_CMD_UPDATE_OWE_INFO: "UPDATE_OWE_INFO",

		NL80211_CMD_PROBE_MESH_LINK: "PROBE_MESH_LINK",

		NL80211_CMD_SET_TID_CONFIG: "SET_TID_CONFIG",

		NL80211_CMD_UNPROT_BEACON: "UNPROT_BEACON",

		NL80211_CMD_CONTROL_PORT_FRAME_TX_STATUS: "CONTROL_PORT_FRAME_TX_STATUS",
	}
}

func attributes() amap {
	return amap{
		NL80211_ATTR_UNSPEC: auto("UNSPEC"),

		NL80211_ATTR_WIPHY:      num("WIPHY"),
		NL80211_ATTR_WIPHY_NAME: strz("WIPHY_NAME"),

		NL80211_ATTR_IFINDEX: num("IFINDEX"),
		NL80211_ATTR_IFNAME:  strz("IFNAME"),
		NL80211_ATTR_IFTYPE:  num("IFTYPE"),

		NL80211_ATTR_MAC: raw("MAC"),

		NL80211_ATTR_KEY_DATA:    auto("KEY_DATA"),
		NL80211_ATTR_KEY_IDX:     auto("KEY_IDX"),
		NL80211_ATTR_KEY_CIPHER:  auto("KEY_CIPHER"),
		NL80211_ATTR_KEY_SEQ:     auto("KEY_SEQ"),
		NL80211_ATTR_KEY_DEFAULT: auto("KEY_DEFAULT"),

		NL80211_ATTR_BEACON_INTERVAL: auto("BEACON_INTERVAL"),
		NL80211_ATTR_DTIM_PERIOD:     auto("DTIM_PERIOD"),
		NL80211_ATTR_BEACON_HEAD:     auto("BEACON_HEAD"),
		NL80211_ATTR_BEACON_TAIL:     auto("BEACON_TAIL"),

		NL80211_ATTR_STA_AID:             auto("STA_AID"),
		NL80211_ATTR_STA_FLAGS:           auto("STA_FLAGS"),
		NL80211_ATTR_STA_LISTEN_INTERVAL: auto("STA_LISTEN_INTERVAL"),
		NL80211_ATTR_STA_SUPPORTED_RATES: auto("STA_SUPPORTED_RATES"),
		NL80211_ATTR_STA_VLAN:            auto("STA_VLAN"),
		NL80211_ATTR_STA_INFO:            auto("STA_INFO"),

		NL80211_ATTR_WIPHY_BANDS: nestv("WIPHY_BANDS", amap{
			nldiag.AnyID: nest("BAND", amap{
				NL80211_BAND_ATTR_FREQS: nestv("FREQS", amap{
					nldiag.AnyID: nest("FQ", amap{
						NL80211_FREQUENCY_ATTR_FREQ:          num("FREQ"),
						NL80211_FREQUENCY_ATTR_DISABLED:      flag("DISABLED"),
						NL80211_FREQUENCY_ATTR_NO_IR:         flag("NO_IR"),
						__NL80211_FREQUENCY_ATTR_NO_IBSS:     flag("_NO_IBSS"),
						NL80211_FREQUENCY_ATTR_RADAR:         flag("RADAR"),
						NL80211_FREQUENCY_ATTR_MAX_TX_POWER:  num("MAX_TX_POWER"),
						NL80211_FREQUENCY_ATTR_DFS_STATE:     num("DFS_STATE"),
						NL80211_FREQUENCY_ATTR_DFS_TIME:      num("DFS_TIME"),
						NL80211_FREQUENCY_ATTR_NO_HT40_MINUS: flag("NO_HT40_MINUS"),
						NL80211_FREQUENCY_ATTR_NO_HT40_PLUS:  flag("NO_HT40_PLUS"),
						NL80211_FREQUENCY_ATTR_NO_80MHZ:      flag("NO_80MHZ"),
						NL80211_FREQUENCY_ATTR_NO_160MHZ:     flag("NO_160MHZ"),
						NL80211_FREQUENCY_ATTR_DFS_CAC_TIME:  num("DFS_CAC_TIME"),
						NL80211_FREQUENCY_ATTR_INDOOR_ONLY:   flag("INDOOR_ONLY"),
						NL80211_FREQUENCY_ATTR_IR_CONCURRENT: flag("IR_CONCURRENT"),
						NL80211_FREQUENCY_ATTR_NO_20MHZ:      flag("NO_20MHZ"),
						NL80211_FREQUENCY_ATTR_NO_10MHZ:      flag("NO_10MHZ"),
						NL80211_FREQUENCY_ATTR_WMM:           auto("WMM"),
						NL80211_FREQUENCY_ATTR_NO_HE:         flag("NO_HE"),
						NL80211_FREQUENCY_ATTR_OFFSET:        num("OFFSET"),
						NL80211_FREQUENCY_ATTR_1MHZ:          flag("1MHZ"),
						NL80211_FREQUENCY_ATTR_2MHZ:          flag("2MHZ"),
						NL80211_FREQUENCY_ATTR_4MHZ:          flag("4MHZ"),
						NL80211_FREQUENCY_ATTR_8MHZ:          flag("8MHZ"),
						NL80211_FREQUENCY_ATTR_16MHZ:         flag("16MHZ"),
					}),
				}),
				NL80211_BAND_ATTR_RATES: nest("RATES", amap{
					nldiag.AnyID: nest("RATE", amap{
						NL80211_BITRATE_ATTR_RATE:               num("RATE"),
						NL80211_BITRATE_ATTR_2GHZ_SHORTPREAMBLE: flag("2GHZ_SHORTPREAMBLE"),
					}),
				}),

				NL80211_BAND_ATTR_HT_MCS_SET:       auto("HT_MCS_SET"), // struct ieee80211_mcs_info
				NL80211_BAND_ATTR_HT_CAPA:          num("HT_CAPA"),
				NL80211_BAND_ATTR_HT_AMPDU_FACTOR:  num("HT_AMPDU_FACTOR"),
				NL80211_BAND_ATTR_HT_AMPDU_DENSITY: num("HT_AMPDU_DENSITY"),

				NL80211_BAND_ATTR_VHT_MCS_SET: auto("VHT_MCS_SET"), // struct ieee80211_vht_mcs_info
				NL80211_BAND_ATTR_VHT_CAPA:    num("VHT_CAPA"),
				NL80211_BAND_ATTR_IFTYPE_DATA: auto("IFTYPE_DATA"),

				NL80211_BAND_ATTR_EDMG_CHANNELS:  auto("EDMG_CHANNELS"),
				NL80211_BAND_ATTR_EDMG_BW_CONFIG: auto("EDMG_BW_CONFIG"),
			}),
		}),

		NL80211_ATTR_MNTR_FLAGS: auto("MNTR_FLAGS"),

		NL80211_ATTR_MESH_ID:          auto("MESH_ID"),
		NL80211_ATTR_STA_PLINK_ACTION: auto("STA_PLINK_ACTION"),
		NL80211_ATTR_MPATH_NEXT_HOP:   auto("MPATH_NEXT_HOP"),
		NL80211_ATTR_MPATH_INFO:       auto("MPATH_INFO"),

		NL80211_ATTR_BSS_CTS_PROT:        auto("BSS_CTS_PROT"),
		NL80211_ATTR_BSS_SHORT_PREAMBLE:  auto("BSS_SHORT_PREAMBLE"),
		NL80211_ATTR_BSS_SHORT_SLOT_TIME: auto("BSS_SHORT_SLOT_TIME"),

		NL80211_ATTR_HT_CAPABILITY: auto("HT_CAPABILITY"),

		NL80211_ATTR_SUPPORTED_IFTYPES: nest("SUPPORTED_IFTYPES", iftypes),

		NL80211_ATTR_REG_ALPHA2: auto("REG_ALPHA2"),
		NL80211_ATTR_REG_RULES:  auto("REG_RULES"),

		NL80211_ATTR_MESH_CONFIG: auto("MESH_CONFIG"),

		NL80211_ATTR_BSS_BASIC_RATES: auto("BSS_BASIC_RATES"),

		NL80211_ATTR_WIPHY_TXQ_PARAMS:   auto("WIPHY_TXQ_PARAMS"),
		NL80211_ATTR_WIPHY_FREQ:         auto("WIPHY_FREQ"),
		NL80211_ATTR_WIPHY_CHANNEL_TYPE: auto("WIPHY_CHANNEL_TYPE"),

		NL80211_ATTR_KEY_DEFAULT_MGMT: auto("KEY_DEFAULT_MGMT"),

		NL80211_ATTR_MGMT_SUBTYPE: auto("MGMT_SUBTYPE"),
		NL80211_ATTR_IE:           auto("IE"),

		NL80211_ATTR_MAX_NUM_SCAN_SSIDS: num("MAX_NUM_SCAN_SSIDS"),

		NL80211_ATTR_SCAN_FREQUENCIES: nestv("SCAN_FREQUENCIES", amap{
			nldiag.AnyID: num("FQ"),
		}),
		NL80211_ATTR_SCAN_SSIDS: nest("SCAN_SSIDS", amap{
			nldiag.AnyID: str("SSID"),
		}),
		NL80211_ATTR_GENERATION: num("GENERATION"),
		NL80211_ATTR_BSS: nest("BSS", amap{
			NL80211_BSS_BSSID:           raw("BSSID"),
			NL80211_BSS_FREQUENCY:       num("FREQUENCY"),
			NL80211_BSS_TSF:             num("TSF"),
			NL80211_BSS_BEACON_INTERVAL: num("BEACON_INTERVAL"),
			NL80211_BSS_CAPABILITY:      num("CAPABILITY"),
			NL80211_BSS_INFORMATION_ELEMENTS: structOf("INFORMATION_ELEMENTS",
				informationElements),
			NL80211_BSS_SIGNAL_MBM:         num("SIGNAL_MBM"),
			NL80211_BSS_SIGNAL_UNSPEC:      num("SIGNAL_UNSPEC"),
			NL80211_BSS_STATUS:             num("STATUS"), // enum nl80211_bss_status
			NL80211_BSS_SEEN_MS_AGO:        num("SEEN_MS_AGO"),
			NL80211_BSS_BEACON_IES:         structOf("BEACON_IES", informationElements),
			NL80211_BSS_CHAN_WIDTH:         num("CHAN_WIDTH"),
			NL80211_BSS_BEACON_TSF:         num("BEACON_TSF"),
			NL80211_BSS_PRESP_DATA:         flag("PRESP_DATA"),
			NL80211_BSS_LAST_SEEN_BOOTTIME: num("LAST_SEEN_BOOTTIME"),
			NL80211_BSS_PAD:                auto("PAD"),
			NL80211_BSS_PARENT_TSF:         auto("PARENT_TSF"),
			NL80211_BSS_PARENT_BSSID:       auto("PARENT_BSSID"),
			NL80211_BSS_CHAIN_SIGNAL: nest("CHAIN_SIGNAL", amap{
				nldiag.AnyID: num("SIG"),
			}),
			NL80211_BSS_FREQUENCY_OFFSET: auto("FREQUENCY_OFFSET"),
		}),

		NL80211_ATTR_REG_INITIATOR: auto("REG_INITIATOR"),
		NL80211_ATTR_REG_TYPE:      auto("REG_TYPE"),

		NL80211_ATTR_SUPPORTED_COMMANDS: nest("SUPPORTED_COMMANDS", amap{
			nldiag.AnyID: num("CMD"), // enum nl80211_commands
		}),

		NL80211_ATTR_FRAME:       auto("FRAME"),
		NL80211_ATTR_SSID:        auto("SSID"),
		NL80211_ATTR_AUTH_TYPE:   auto("AUTH_TYPE"),
		NL80211_ATTR_REASON_CODE: auto("REASON_CODE"),

		NL80211_ATTR_KEY_TYPE: auto("KEY_TYPE"),

		NL80211_ATTR_MAX_SCAN_IE_LEN: num("MAX_SCAN_IE_LEN"),
		NL80211_ATTR_CIPHER_SUITES:   structOf("CIPHER_SUITES", uint32Array),

		NL80211_ATTR_FREQ_BEFORE: auto("FREQ_BEFORE"),
		NL80211_ATTR_FREQ_AFTER:  auto("FREQ_AFTER"),

		NL80211_ATTR_FREQ_FIXED: auto("FREQ_FIXED"),

		NL80211_ATTR_WIPHY_RETRY_SHORT:    num("WIPHY_RETRY_SHORT"),
		NL80211_ATTR_WIPHY_RETRY_LONG:     num("WIPHY_RETRY_LONG"),
		NL80211_ATTR_WIPHY_FRAG_THRESHOLD: num("WIPHY_FRAG_THRESHOLD"),
		NL80211_ATTR_WIPHY_RTS_THRESHOLD:  num("WIPHY_RTS_THRESHOLD"),

		NL80211_ATTR_TIMED_OUT: auto("TIMED_OUT"),

		NL80211_ATTR_USE_MFP: auto("USE_MFP"),

		NL80211_ATTR_STA_FLAGS2: auto("STA_FLAGS2"),

		NL80211_ATTR_CONTROL_PORT: auto("CONTROL_PORT"),

		NL80211_ATTR_TESTDATA: auto("TESTDATA"),

		NL80211_ATTR_PRIVACY: auto("PRIVACY"),

		NL80211_ATTR_DISCONNECTED_BY_AP: auto("DISCONNECTED_BY_AP"),
		NL80211_ATTR_STATUS_CODE:        auto("STATUS_CODE"),

		NL80211_ATTR_CIPHER_SUITES_PAIRWISE: auto("CIPHER_SUITES_PAIRWISE"),
		NL80211_ATTR_CIPHER_SUITE_GROUP:     auto("CIPHER_SUITE_GROUP"),
		NL80211_ATTR_WPA_VERSIONS:           auto("WPA_VERSIONS"),
		NL80211_ATTR_AKM_SUITES:             auto("AKM_SUITES"),

		NL80211_ATTR_REQ_IE:  auto("REQ_IE"),
		NL80211_ATTR_RESP_IE: auto("RESP_IE"),

		NL80211_ATTR_PREV_BSSID: auto("PREV_BSSID"),

		NL80211_ATTR_KEY:  auto("KEY"),
		NL80211_ATTR_KEYS: auto("KEYS"),

		NL80211_ATTR_PID: auto("PID"),

		NL80211_ATTR_4ADDR: auto("4ADDR"),

		NL80211_ATTR_SURVEY_INFO: auto("SURVEY_INFO"),

		NL80211_ATTR_PMKID:          auto("PMKID"),
		NL80211_ATTR_MAX_NUM_PMKIDS: num("MAX_NUM_PMKIDS"),

		NL80211_ATTR_DURATION: auto("DURATION"),

		NL80211_ATTR_COOKIE: auto("COOKIE"),

		NL80211_ATTR_WIPHY_COVERAGE_CLASS: num("WIPHY_COVERAGE_CLASS"),

		NL80211_ATTR_TX_RATES: auto("TX_RATES"),

		NL80211_ATTR_FRAME_MATCH: auto("FRAME_MATCH"),

		NL80211_ATTR_ACK: auto("ACK"),

		NL80211_ATTR_PS_STATE: auto("PS_STATE"),

		NL80211_ATTR_CQM: auto("CQM"),

		NL80211_ATTR_LOCAL_STATE_CHANGE: auto("LOCAL_STATE_CHANGE"),

		NL80211_ATTR_AP_ISOLATE: auto("AP_ISOLATE"),

		NL80211_ATTR_WIPHY_TX_POWER_SETTING: auto("WIPHY_TX_POWER_SETTING"),
		NL80211_ATTR_WIPHY_TX_POWER_LEVEL:   auto("WIPHY_TX_POWER_LEVEL"),

		NL80211_ATTR_TX_FRAME_TYPES: nestv("TX_FRAME_TYPES", amap{
			nldiag.AnyID: nest("TFT", amap{
				NL80211_ATTR_FRAME_TYPE: num("FRAME_TYPE"),
			}),
		}),
		NL80211_ATTR_RX_FRAME_TYPES: nestv("RX_FRAME_TYPES", amap{
			nldiag.AnyID: nest("RFT", amap{
				NL80211_ATTR_FRAME_TYPE: num("FRAME_TYPE"),
			}),
		}),

		NL80211_ATTR_FRAME_TYPE: num("FRAME_TYPE"),

		NL80211_ATTR_CONTROL_PORT_ETHERTYPE:  auto("CONTROL_PORT_ETHERTYPE"),
		NL80211_ATTR_CONTROL_PORT_NO_ENCRYPT: auto("CONTROL_PORT_NO_ENCRYPT"),

		NL80211_ATTR_SUPPORT_IBSS_RSN: auto("SUPPORT_IBSS_RSN"),

		NL80211_ATTR_WIPHY_ANTENNA_TX: auto("WIPHY_ANTENNA_TX"),
		NL80211_ATTR_WIPHY_ANTENNA_RX: auto("WIPHY_ANTENNA_RX"),

		NL80211_ATTR_MCAST_RATE: auto("MCAST_RATE"),

		NL80211_ATTR_OFFCHANNEL_TX_OK: flag("OFFCHANNEL_TX_OK"),

		NL80211_ATTR_BSS_HT_OPMODE: auto("BSS_HT_OPMODE"),

		NL80211_ATTR_KEY_DEFAULT_TYPES: auto("KEY_DEFAULT_TYPES"),

		NL80211_ATTR_MAX_REMAIN_ON_CHANNEL_DURATION: num("MAX_REMAIN_ON_CHANNEL_DURATION"),

		NL80211_ATTR_MESH_SETUP: auto("MESH_SETUP"),

		NL80211_ATTR_WIPHY_ANTENNA_AVAIL_TX: num("WIPHY_ANTENNA_AVAIL_TX"),
		NL80211_ATTR_WIPHY_ANTENNA_AVAIL_RX: num("WIPHY_ANTENNA_AVAIL_RX"),

		NL80211_ATTR_SUPPORT_MESH_AUTH: auto("SUPPORT_MESH_AUTH"),
		NL80211_ATTR_STA_PLINK_STATE:   auto("STA_PLINK_STATE"),

		NL80211_ATTR_WOWLAN_TRIGGERS: auto("WOWLAN_TRIGGERS"),
		NL80211_ATTR_WOWLAN_TRIGGERS_SUPPORTED: nest("WOWLAN_TRIGGERS_SUPPORTED", amap{
			NL80211_WOWLAN_TRIG_ANY:        flag("ANY"),
			NL80211_WOWLAN_TRIG_DISCONNECT: flag("DISCONNECT"),
			NL80211_WOWLAN_TRIG_MAGIC_PKT:  flag("MAGIC_PKT"),
			NL80211_WOWLAN_TRIG_PKT_PATTERN: structOf("PKT_PATTERN",
				patternSupport),
			NL80211_WOWLAN_TRIG_GTK_REKEY_SUPPORTED: flag("GTK_REKEY_SUPPORTED"),
			NL80211_WOWLAN_TRIG_GTK_REKEY_FAILURE:   flag("GTK_REKEY_FAILURE"),
			NL80211_WOWLAN_TRIG_EAP_IDENT_REQUEST:   flag("EAP_IDENT_REQUEST"),
			NL80211_WOWLAN_TRIG_4WAY_HANDSHAKE:      flag("4WAY_HANDSHAKE"),
			NL80211_WOWLAN_TRIG_RFKILL_RELEASE:      flag("RFKILL_RELEASE"),
			NL80211_WOWLAN_TRIG_TCP_CONNECTION: nest("TCP_CONNECTION", amap{
				NL80211_WOWLAN_TCP_SRC_IPV4:           auto("SRC_IPV4"),
				NL80211_WOWLAN_TCP_DST_IPV4:           auto("DST_IPV4"),
				NL80211_WOWLAN_TCP_DST_MAC:            auto("DST_MAC"),
				NL80211_WOWLAN_TCP_SRC_PORT:           num("SRC_PORT"),
				NL80211_WOWLAN_TCP_DST_PORT:           num("DST_PORT"),
				NL80211_WOWLAN_TCP_DATA_PAYLOAD:       auto("DATA_PAYLOAD"),
				NL80211_WOWLAN_TCP_DATA_PAYLOAD_SEQ:   auto("DATA_PAYLOAD_SEQ"),
				NL80211_WOWLAN_TCP_DATA_PAYLOAD_TOKEN: auto("DATA_PAYLOAD_TOKEN"),
				NL80211_WOWLAN_TCP_DATA_INTERVAL:      num("DATA_INTERVAL"),
				NL80211_WOWLAN_TCP_WAKE_PAYLOAD:       auto("WAKE_PAYLOAD"),
				NL80211_WOWLAN_TCP_WAKE_MASK:          auto("WAKE_MASK"),
			}),
			NL80211_WOWLAN_TRIG_NET_DETECT: num("NET_DETECT"),

			// Not advertised in WOWLAN_TRIGGERS_SUPPORTED: the WAKEUP_*
			// and NET_DETECT_RESULTS triggers, which only appear in
			// wakeup reports.
		}),

		NL80211_ATTR_SCHED_SCAN_INTERVAL: auto("SCHED_SCAN_INTERVAL"),

		NL80211_ATTR_INTERFACE_COMBINATIONS: nestv("INTERFACE_COMBINATIONS", amap{
			nldiag.AnyID: nest("IC", amap{
				NL80211_IFACE_COMB_UNSPEC: auto("UNSPEC"),
				NL80211_IFACE_COMB_LIMITS: nest("LIMITS", amap{
					nldiag.AnyID: nest("LT", amap{
						NL80211_IFACE_LIMIT_UNSPEC: auto("UNSPEC"),
						NL80211_IFACE_LIMIT_MAX:    num("MAX"),
						NL80211_IFACE_LIMIT_TYPES:  nest("TYPES", iftypes),
					}),
				}),
				NL80211_IFACE_COMB_MAXNUM:               num("MAXNUM"),
				NL80211_IFACE_COMB_STA_AP_BI_MATCH:      flag("STA_AP_BI_MATCH"),
				NL80211_IFACE_COMB_NUM_CHANNELS:         num("NUM_CHANNELS"),
				NL80211_IFACE_COMB_RADAR_DETECT_WIDTHS:  num("RADAR_DETECT_WIDTHS"),
				NL80211_IFACE_COMB_RADAR_DETECT_REGIONS: num("RADAR_DETECT_REGIONS"),
				NL80211_IFACE_COMB_BI_MIN_GCD:           auto("BI_MIN_GCD"),
			}),
		}),
		NL80211_ATTR_SOFTWARE_IFTYPES: nest("SOFTWARE_IFTYPES", iftypes),

		NL80211_ATTR_REKEY_DATA: auto("REKEY_DATA"),

		NL80211_ATTR_MAX_NUM_SCHED_SCAN_SSIDS: num("MAX_NUM_SCHED_SCAN_SSIDS"),
		NL80211_ATTR_MAX_SCHED_SCAN_IE_LEN:    num("MAX_SCHED_SCAN_IE_LEN"),

		NL80211_ATTR_SCAN_SUPP_RATES: auto("SCAN_SUPP_RATES"),

		NL80211_ATTR_HIDDEN_SSID: auto("HIDDEN_SSID"),

		NL80211_ATTR_IE_PROBE_RESP: auto("IE_PROBE_RESP"),
		NL80211_ATTR_IE_ASSOC_RESP: auto("IE_ASSOC_RESP"),

		NL80211_ATTR_STA_WME:          auto("STA_WME"),
		NL80211_ATTR_SUPPORT_AP_UAPSD: auto("SUPPORT_AP_UAPSD"),

		NL80211_ATTR_ROAM_SUPPORT: flag("ROAM_SUPPORT"),

		NL80211_ATTR_SCHED_SCAN_MATCH: auto("SCHED_SCAN_MATCH"),
		NL80211_ATTR_MAX_MATCH_SETS:   num("MAX_MATCH_SETS"),

		NL80211_ATTR_PMKSA_CANDIDATE: auto("PMKSA_CANDIDATE"),

		NL80211_ATTR_TX_NO_CCK_RATE: auto("TX_NO_CCK_RATE"),

		NL80211_ATTR_TDLS_ACTION:         auto("TDLS_ACTION"),
		NL80211_ATTR_TDLS_DIALOG_TOKEN:   auto("TDLS_DIALOG_TOKEN"),
		NL80211_ATTR_TDLS_OPERATION:      auto("TDLS_OPERATION"),
		NL80211_ATTR_TDLS_SUPPORT:        flag("TDLS_SUPPORT"),
		NL80211_ATTR_TDLS_EXTERNAL_SETUP: flag("TDLS_EXTERNAL_SETUP"),

		NL80211_ATTR_DEVICE_AP_SME: num("DEVICE_AP_SME"),

		NL80211_ATTR_DONT_WAIT_FOR_ACK: auto("DONT_WAIT_FOR_ACK"),

		NL80211_ATTR_FEATURE_FLAGS: num("FEATURE_FLAGS"),

		NL80211_ATTR_PROBE_RESP_OFFLOAD: num("PROBE_RESP_OFFLOAD"),

		NL80211_ATTR_PROBE_RESP: auto("PROBE_RESP"),

		NL80211_ATTR_DFS_REGION: auto("DFS_REGION"),

		NL80211_ATTR_DISABLE_HT:         auto("DISABLE_HT"),
		NL80211_ATTR_HT_CAPABILITY_MASK: auto("HT_CAPABILITY_MASK"),

		NL80211_ATTR_NOACK_MAP: auto("NOACK_MAP"),

		NL80211_ATTR_INACTIVITY_TIMEOUT: auto("INACTIVITY_TIMEOUT"),

		NL80211_ATTR_RX_SIGNAL_DBM: auto("RX_SIGNAL_DBM"),

		NL80211_ATTR_BG_SCAN_PERIOD: auto("BG_SCAN_PERIOD"),

		NL80211_ATTR_WDEV: num("WDEV"),

		NL80211_ATTR_USER_REG_HINT_TYPE: auto("USER_REG_HINT_TYPE"),

		NL80211_ATTR_CONN_FAILED_REASON: auto("CONN_FAILED_REASON"),

		NL80211_ATTR_AUTH_DATA: auto("AUTH_DATA"),

		NL80211_ATTR_VHT_CAPABILITY: auto("VHT_CAPABILITY"),

		NL80211_ATTR_SCAN_FLAGS: num("SCAN_FLAGS"),

		NL80211_ATTR_CHANNEL_WIDTH: auto("CHANNEL_WIDTH"),
		NL80211_ATTR_CENTER_FREQ1:  auto("CENTER_FREQ1"),
		NL80211_ATTR_CENTER_FREQ2:  auto("CENTER_FREQ2"),

		NL80211_ATTR_P2P_CTWINDOW: auto("P2P_CTWINDOW"),
		NL80211_ATTR_P2P_OPPPS:    auto("P2P_OPPPS"),

		NL80211_ATTR_LOCAL_MESH_POWER_MODE: auto("LOCAL_MESH_POWER_MODE"),

		NL80211_ATTR_ACL_POLICY: auto("ACL_POLICY"),

		NL80211_ATTR_MAC_ADDRS: auto("MAC_ADDRS"),

		NL80211_ATTR_MAC_ACL_MAX: num("MAC_ACL_MAX"),

		NL80211_ATTR_RADAR_EVENT: auto("RADAR_EVENT"),

		NL80211_ATTR_EXT_CAPA:      auto("EXT_CAPA"),
		NL80211_ATTR_EXT_CAPA_MASK: auto("EXT_CAPA_MASK"),

		NL80211_ATTR_STA_CAPABILITY:     auto("STA_CAPABILITY"),
		NL80211_ATTR_STA_EXT_CAPABILITY: auto("STA_EXT_CAPABILITY"),

		NL80211_ATTR_PROTOCOL_FEATURES: num("PROTOCOL_FEATURES"),
		NL80211_ATTR_SPLIT_WIPHY_DUMP:  flag("SPLIT_WIPHY_DUMP"),

		NL80211_ATTR_DISABLE_VHT:         flag("DISABLE_VHT"),
		NL80211_ATTR_VHT_CAPABILITY_MASK: auto("VHT_CAPABILITY_MASK"),

		NL80211_ATTR_MDID:   auto("MDID"),
		NL80211_ATTR_IE_RIC: auto("IE_RIC"),

		NL80211_ATTR_CRIT_PROT_ID:           auto("CRIT_PROT_ID"),
		NL80211_ATTR_MAX_CRIT_PROT_DURATION: auto("MAX_CRIT_PROT_DURATION"),

		NL80211_ATTR_PEER_AID: auto("PEER_AID"),

		NL80211_ATTR_COALESCE_RULE: auto("COALESCE_RULE"),

		NL80211_ATTR_CH_SWITCH_COUNT:    auto("CH_SWITCH_COUNT"),
		NL80211_ATTR_CH_SWITCH_BLOCK_TX: auto("CH_SWITCH_BLOCK_TX"),
		NL80211_ATTR_CSA_IES:            auto("CSA_IES"),
		NL80211_ATTR_CNTDWN_OFFS_BEACON: auto("CNTDWN_OFFS_BEACON"),
		NL80211_ATTR_CNTDWN_OFFS_PRESP:  auto("CNTDWN_OFFS_PRESP"),

		NL80211_ATTR_RXMGMT_FLAGS: auto("RXMGMT_FLAGS"),

		NL80211_ATTR_STA_SUPPORTED_CHANNELS: auto("STA_SUPPORTED_CHANNELS"),

		NL80211_ATTR_STA_SUPPORTED_OPER_CLASSES: auto("STA_SUPPORTED_OPER_CLASSES"),

		NL80211_ATTR_HANDLE_DFS: auto("HANDLE_DFS"),

		NL80211_ATTR_SUPPORT_5_MHZ:  auto("SUPPORT_5_MHZ"),
		NL80211_ATTR_SUPPORT_10_MHZ: auto("SUPPORT_10_MHZ"),

		NL80211_ATTR_OPMODE_NOTIF: auto("OPMODE_NOTIF"),

		NL80211_ATTR_VENDOR_ID:     auto("VENDOR_ID"),
		NL80211_ATTR_VENDOR_SUBCMD: auto("VENDOR_SUBCMD"),
		NL80211_ATTR_VENDOR_DATA:   rawv("VENDOR_DATA"),
		NL80211_ATTR_VENDOR_EVENTS: nestv("VENDOR_EVENTS", nil),

		NL80211_ATTR_QOS_MAP: auto("QOS_MAP"),

		NL80211_ATTR_MAC_HINT:        auto("MAC_HINT"),
		NL80211_ATTR_WIPHY_FREQ_HINT: auto("WIPHY_FREQ_HINT"),

		NL80211_ATTR_MAX_AP_ASSOC_STA: auto("MAX_AP_ASSOC_STA"),

		NL80211_ATTR_TDLS_PEER_CAPABILITY: auto("TDLS_PEER_CAPABILITY"),

		NL80211_ATTR_SOCKET_OWNER: auto("SOCKET_OWNER"),

		NL80211_ATTR_CSA_C_OFFSETS_TX: auto("CSA_C_OFFSETS_TX"),
		NL80211_ATTR_MAX_CSA_COUNTERS: auto("MAX_CSA_COUNTERS"),

		NL80211_ATTR_TDLS_INITIATOR: auto("TDLS_INITIATOR"),

		NL80211_ATTR_USE_RRM: auto("USE_RRM"),

		NL80211_ATTR_WIPHY_DYN_ACK: auto("WIPHY_DYN_ACK"),

		NL80211_ATTR_TSID:          auto("TSID"),
		NL80211_ATTR_USER_PRIO:     auto("USER_PRIO"),
		NL80211_ATTR_ADMITTED_TIME: auto("ADMITTED_TIME"),

		NL80211_ATTR_SMPS_MODE: auto("SMPS_MODE"),

		NL80211_ATTR_OPER_CLASS: auto("OPER_CLASS"),

		NL80211_ATTR_MAC_MASK: auto("MAC_MASK"),

		NL80211_ATTR_WIPHY_SELF_MANAGED_REG: auto("WIPHY_SELF_MANAGED_REG"),

		NL80211_ATTR_EXT_FEATURES: auto("EXT_FEATURES"),

		NL80211_ATTR_SURVEY_RADIO_STATS: auto("SURVEY_RADIO_STATS"),

		NL80211_ATTR_NETNS_FD: auto("NETNS_FD"),

		NL80211_ATTR_SCHED_SCAN_DELAY: auto("SCHED_SCAN_DELAY"),

		NL80211_ATTR_REG_INDOOR: auto("REG_INDOOR"),

		NL80211_ATTR_MAX_NUM_SCHED_SCAN_PLANS: num("MAX_NUM_SCHED_SCAN_PLANS"),
		NL80211_ATTR_MAX_SCAN_PLAN_INTERVAL:   num("MAX_SCAN_PLAN_INTERVAL"),
		NL80211_ATTR_MAX_SCAN_PLAN_ITERATIONS: num("MAX_SCAN_PLAN_ITERATIONS"),
		NL80211_ATTR_SCHED_SCAN_PLANS:         auto("SCHED_SCAN_PLANS"),

		NL80211_ATTR_PBSS: auto("PBSS"),

		NL80211_ATTR_BSS_SELECT: auto("BSS_SELECT"),

		NL80211_ATTR_STA_SUPPORT_P2P_PS: auto("STA_SUPPORT_P2P_PS"),

		NL80211_ATTR_PAD: auto("PAD"),

		NL80211_ATTR_IFTYPE_EXT_CAPA: auto("IFTYPE_EXT_CAPA"),

		NL80211_ATTR_MU_MIMO_GROUP_DATA:      auto("MU_MIMO_GROUP_DATA"),
		NL80211_ATTR_MU_MIMO_FOLLOW_MAC_ADDR: auto("MU_MIMO_FOLLOW_MAC_ADDR"),

		NL80211_ATTR_SCAN_START_TIME_TSF:            auto("SCAN_START_TIME_TSF"),
		NL80211_ATTR_SCAN_START_TIME_TSF_BSSID:      auto("SCAN_START_TIME_TSF_BSSID"),
		NL80211_ATTR_MEASUREMENT_DURATION:           auto("MEASUREMENT_DURATION"),
		NL80211_ATTR_MEASUREMENT_DURATION_MANDATORY: auto("MEASUREMENT_DURATION_MANDATORY"),

		NL80211_ATTR_MESH_PEER_AID: auto("MESH_PEER_AID"),

		NL80211_ATTR_NAN_MASTER_PREF: auto("NAN_MASTER_PREF"),
		NL80211_ATTR_BANDS:           auto("BANDS"),
		NL80211_ATTR_NAN_FUNC:        auto("NAN_FUNC"),
		NL80211_ATTR_NAN_MATCH:       auto("NAN_MATCH"),

		NL80211_ATTR_FILS_KEK:    auto("FILS_KEK"),
		NL80211_ATTR_FILS_NONCES: auto("FILS_NONCES"),

		NL80211_ATTR_MULTICAST_TO_UNICAST_ENABLED: auto("MULTICAST_TO_UNICAST_ENABLED"),

		NL80211_ATTR_BSSID: auto("BSSID"),

		NL80211_ATTR_SCHED_SCAN_RELATIVE_RSSI: auto("SCHED_SCAN_RELATIVE_RSSI"),
		NL80211_ATTR_SCHED_SCAN_RSSI_ADJUST:   auto("SCHED_SCAN_RSSI_ADJUST"),

		NL80211_ATTR_TIMEOUT_REASON: auto("TIMEOUT_REASON"),

		NL80211_ATTR_FILS_ERP_USERNAME:     auto("FILS_ERP_USERNAME"),
		NL80211_ATTR_FILS_ERP_REALM:        auto("FILS_ERP_REALM"),
		NL80211_ATTR_FILS_ERP_NEXT_SEQ_NUM: auto("FILS_ERP_NEXT_SEQ_NUM"),
		NL80211_ATTR_FILS_ERP_RRK:          auto("FILS_ERP_RRK"),
		NL80211_ATTR_FILS_CACHE_ID:         auto("FILS_CACHE_ID"),

		NL80211_ATTR_PMK: auto("PMK"),

		NL80211_ATTR_SCHED_SCAN_MULTI:    auto("SCHED_SCAN_MULTI"),
		NL80211_ATTR_SCHED_SCAN_MAX_REQS: auto("SCHED_SCAN_MAX_REQS"),

		NL80211_ATTR_WANT_1X_4WAY_HS: auto("WANT_1X_4WAY_HS"),
		NL80211_ATTR_PMKR0_NAME:      auto("PMKR0_NAME"),
		NL80211_ATTR_PORT_AUTHORIZED: auto("PORT_AUTHORIZED"),

		NL80211_ATTR_EXTERNAL_AUTH_ACTION:  auto("EXTERNAL_AUTH_ACTION"),
		NL80211_ATTR_EXTERNAL_AUTH_SUPPORT: auto("EXTERNAL_AUTH_SUPPORT"),

		NL80211_ATTR_NSS:        auto("NSS"),
		NL80211_ATTR_ACK_SIGNAL: auto("ACK_SIGNAL"),

		NL80211_ATTR_CONTROL_PORT_OVER_NL80211: auto("CONTROL_PORT_OVER_NL80211"),

		NL80211_ATTR_TXQ_STATS:        auto("TXQ_STATS"),
		NL80211_ATTR_TXQ_LIMIT:        auto("TXQ_LIMIT"),
		NL80211_ATTR_TXQ_MEMORY_LIMIT: auto("TXQ_MEMORY_LIMIT"),
		NL80211_ATTR_TXQ_QUANTUM:      auto("TXQ_QUANTUM"),

		NL80211_ATTR_HE_CAPABILITY: auto("HE_CAPABILITY"),

		NL80211_ATTR_FTM_RESPONDER: auto("FTM_RESPONDER"),

		NL80211_ATTR_FTM_RESPONDER_STATS: auto("FTM_RESPONDER_STATS"),

		NL80211_ATTR_TIMEOUT: auto("TIMEOUT"),

		NL80211_ATTR_PEER_MEASUREMENTS: auto("PEER_MEASUREMENTS"),

		NL80211_ATTR_AIRTIME_WEIGHT:       auto("AIRTIME_WEIGHT"),
		NL80211_ATTR_STA_TX_POWER_SETTING: auto("STA_TX_POWER_SETTING"),
		NL80211_ATTR_STA_TX_POWER:         auto("STA_TX_POWER"),

		NL80211_ATTR_SAE_PASSWORD: auto("SAE_PASSWORD"),

		NL80211_ATTR_TWT_RESPONDER: auto("TWT_RESPONDER"),

		NL80211_ATTR_HE_OBSS_PD: auto("HE_OBSS_PD"),

		NL80211_ATTR_WIPHY_EDMG_CHANNELS:  auto("WIPHY_EDMG_CHANNELS"),
		NL80211_ATTR_WIPHY_EDMG_BW_CONFIG: auto("WIPHY_EDMG_BW_CONFIG"),

		NL80211_ATTR_VLAN_ID: auto("VLAN_ID"),

		NL80211_ATTR_HE_BSS_COLOR: auto("HE_BSS_COLOR"),

		NL80211_ATTR_IFTYPE_AKM_SUITES: auto("IFTYPE_AKM_SUITES"),

		NL80211_ATTR_TID_CONFIG: auto("TID_CONFIG"),

		NL80211_ATTR_CONTROL_PORT_NO_PREAUTH: auto("CONTROL_PORT_NO_PREAUTH"),

		NL80211_ATTR_PMK_LIFETIME:         auto("PMK_LIFETIME"),
		NL80211_ATTR_PMK_REAUTH_THRESHOLD: auto("PMK_REAUTH_THRESHOLD"),

		NL80211_ATTR_RECEIVE_MULTICAST:   auto("RECEIVE_MULTICAST"),
		NL80211_ATTR_WIPHY_FREQ_OFFSET:   auto("WIPHY_FREQ_OFFSET"),
		NL80211_ATTR_CENTER_FREQ1_OFFSET: auto("CENTER_FREQ1_OFFSET"),
		NL80211_ATTR_SCAN_FREQ_KHZ:       auto("SCAN_FREQ_KHZ"),

		NL80211_ATTR_HE_6GHZ_CAPABILITY: auto("HE_6GHZ_CAPABILITY"),

		NL80211_ATTR_FILS_DISCOVERY: auto("FILS_DISCOVERY"),

		NL80211_ATTR_UNSOL_BCAST_PROBE_RESP: auto("UNSOL_BCAST_PROBE_RESP"),

		NL80211_ATTR_S1G_CAPABILITY:      auto("S1G_CAPABILITY"),
		NL80211_ATTR_S1G_CAPABILITY_MASK: auto("S1G_CAPABILITY_MASK"),
	}
}

/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package code

// OK is the only non-error code. Its return value is 0.
const OK Code = 0

// Generic standard errors (1000s).
//
// These mirror the classic POSIX errno meanings one-to-one and are the usual
// target of the platform normalization table. The numbering follows the
// platform numbers plus 1000 where one exists, so gaps (1015, 1026) are
// intentional.
const (
	StdPerm   Code = 1001 // Operation not permitted.
	StdNoEnt  Code = 1002 // No such file or directory.
	StdSrch   Code = 1003 // No such process.
	StdIntr   Code = 1004 // Interrupted function call.
	StdIO     Code = 1005 // Input/output error.
	StdNxIO   Code = 1006 // No such device or address.
	StdTooBig Code = 1007 // Argument list too long.
	StdNoExec Code = 1008 // Exec format error.
	StdBadF   Code = 1009 // Bad file descriptor.
	StdChild  Code = 1010 // No child processes.
	StdAgain  Code = 1011 // Resource temporarily unavailable.
	StdNoMem  Code = 1012 // Not enough space.
	StdAcces  Code = 1013 // Permission denied.
	StdFault  Code = 1014 // Bad address.
	StdBusy   Code = 1016 // Device or resource busy.
	StdExist  Code = 1017 // File exists.
	StdXDev   Code = 1018 // Improper (cross-device) link.
	StdNoDev  Code = 1019 // No such device.
	StdNotDir Code = 1020 // Not a directory.
	StdIsDir  Code = 1021 // Is a directory.
	StdInval  Code = 1022 // Invalid argument.
	StdNFile  Code = 1023 // Too many open files in system.
	StdMFile  Code = 1024 // Too many open files.
	StdNoTTY  Code = 1025 // Inappropriate I/O control operation.
	StdFBig   Code = 1027 // File too large.
	StdNoSpc  Code = 1028 // No space left on device.
	StdSPipe  Code = 1029 // Invalid seek.
	StdROFS   Code = 1030 // Read-only file system.
	StdMLink  Code = 1031 // Too many links.
	StdPipe   Code = 1032 // Broken pipe.
	StdDom    Code = 1033 // Domain error (math functions).
	StdRange  Code = 1034 // Result too large.

	// StdNoFile is the historical name of StdNoEnt. Both share one value.
	StdNoFile = StdNoEnt
)

// Parameter errors (1100s): validity, range and format of arguments.
const (
	ParNull          Code = 1100 // Nil reference passed as argument.
	ParRange         Code = 1101 // Argument value out of allowed range.
	ParCombi         Code = 1102 // Argument value not supported by this configuration.
	ParInvChn        Code = 1103 // Channel invalid.
	ParInvConfig     Code = 1104 // Configuration invalid.
	ParNoConfig      Code = 1105 // Parameter not configured.
	ParInvIOType     Code = 1106 // Invalid IO type.
	ParInvChType     Code = 1107 // Invalid channel type.
	ParInvValueID    Code = 1108 // Invalid value identifier.
	ParInvConfigType Code = 1109 // Invalid configuration type.
	ParOpNotSupp     Code = 1110 // Parameter operation not supported.
	ParBadValue      Code = 1119 // Unexpected or invalid value.
)

// Execution errors (1200s): timing and results.
const (
	ExecTimeout   Code = 1200 // Execution timed out.
	ExecNoInit    Code = 1201 // Component not (yet) initialized.
	ExecAgainInit Code = 1202 // Component already (still) initialized.
	ExecFailInit  Code = 1203 // Initialization of component failed.
	ExecOpNotSupp Code = 1204 // Operation not supported.
	ExecDeadlock  Code = 1205 // Deadlock.
	ExecCleanup   Code = 1206 // Cleanup failed.
	ExecInvCxt    Code = 1207 // Invalid thread context.
)

// Permission errors (1600s): create, modify or delete.
const (
	PermRO Code = 1600 // Resource is write-protected.
	PermWO Code = 1601 // Resource is read-protected.
)

// Communication errors (1700s): network or IPC.
const (
	CommCRC        Code = 1700 // CRC error on data transmission.
	CommTimeout    Code = 1701 // Communication timeout.
	CommConDenied  Code = 1702 // Connection request denied.
	CommAlrdyCon   Code = 1703 // Connection already active.
	CommNoCon      Code = 1704 // Connection not active.
	CommBadLength  Code = 1705 // Message length wrong.
	CommBadReq     Code = 1706 // Message request wrong.
	CommBadContent Code = 1707 // Message content wrong.
)

// List errors (1800s).
const (
	ListOverflow Code = 1800
)

// Hardware abstraction errors (1900s).
const (
	HALError Code = 1900
)

// names holds the canonical symbolic name of every known code. Symbolic
// names are what MarshalText emits and what Parse accepts.
var names = map[Code]string{
	OK: "EOK",

	StdPerm:   "ESTD_PERM",
	StdNoEnt:  "ESTD_NOENT",
	StdSrch:   "ESTD_SRCH",
	StdIntr:   "ESTD_INTR",
	StdIO:     "ESTD_IO",
	StdNxIO:   "ESTD_NXIO",
	StdTooBig: "ESTD_2BIG",
	StdNoExec: "ESTD_NOEXEC",
	StdBadF:   "ESTD_BADF",
	StdChild:  "ESTD_CHILD",
	StdAgain:  "ESTD_AGAIN",
	StdNoMem:  "ESTD_NOMEM",
	StdAcces:  "ESTD_ACCES",
	StdFault:  "ESTD_FAULT",
	StdBusy:   "ESTD_BUSY",
	StdExist:  "ESTD_EXIST",
	StdXDev:   "ESTD_XDEV",
	StdNoDev:  "ESTD_NODEV",
	StdNotDir: "ESTD_NOTDIR",
	StdIsDir:  "ESTD_ISDIR",
	StdInval:  "ESTD_INVAL",
	StdNFile:  "ESTD_NFILE",
	StdMFile:  "ESTD_MFILE",
	StdNoTTY:  "ESTD_NOTTY",
	StdFBig:   "ESTD_FBIG",
	StdNoSpc:  "ESTD_NOSPC",
	StdSPipe:  "ESTD_SPIPE",
	StdROFS:   "ESTD_ROFS",
	StdMLink:  "ESTD_MLINK",
	StdPipe:   "ESTD_PIPE",
	StdDom:    "ESTD_DOM",
	StdRange:  "ESTD_RANGE",

	ParNull:          "EPAR_NULL",
	ParRange:         "EPAR_RANGE",
	ParCombi:         "EPAR_COMBI",
	ParInvChn:        "EPAR_INVCHN",
	ParInvConfig:     "EPAR_INVCONFIG",
	ParNoConfig:      "EPAR_NOCONFIG",
	ParInvIOType:     "EPAR_INVIOTYPE",
	ParInvChType:     "EPAR_INVCHTYPE",
	ParInvValueID:    "EPAR_INVVALUEID",
	ParInvConfigType: "EPAR_INVCONFIGTYPE",
	ParOpNotSupp:     "EPAR_OPNOTSUPP",
	ParBadValue:      "EPAR_BADVALUE",

	ExecTimeout:   "EEXEC_TO",
	ExecNoInit:    "EEXEC_NOINIT",
	ExecAgainInit: "EEXEC_AGAININIT",
	ExecFailInit:  "EEXEC_FAILINIT",
	ExecOpNotSupp: "EEXEC_OPNOTSUPP",
	ExecDeadlock:  "EEXEC_DEADLK",
	ExecCleanup:   "EEXEC_CLEANUP",
	ExecInvCxt:    "EEXEC_INVCXT",

	PermRO: "EPERM_RO",
	PermWO: "EPERM_WO",

	CommCRC:        "ECOMM_CRC",
	CommTimeout:    "ECOMM_TO",
	CommConDenied:  "ECOMM_CONDENIED",
	CommAlrdyCon:   "ECOMM_ALRDYCON",
	CommNoCon:      "ECOMM_NOCON",
	CommBadLength:  "ECOMM_BADLENGTH",
	CommBadReq:     "ECOMM_BADREQ",
	CommBadContent: "ECOMM_BADCONTENT",

	ListOverflow: "ELIST_OVERFLOW",
	HALError:     "EHAL_ERROR",
}

// aliases are extra names accepted by Parse but never produced by String.
var aliases = map[string]Code{
	"ESTD_NOFILE": StdNoFile,
}

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

package mapper

import (
	"net/http"

	"google.golang.org/grpc/codes"

	"dirpx.dev/convention/code"
)

// bandHTTP and bandGRPC are the statuses of a band when a code has no entry
// of its own.
var bandHTTP = map[code.Band]int{
	code.BandStd:  http.StatusInternalServerError,
	code.BandPar:  http.StatusBadRequest,
	code.BandExec: http.StatusInternalServerError,
	code.BandPerm: http.StatusForbidden,
	code.BandComm: http.StatusBadGateway,
	code.BandList: http.StatusInsufficientStorage,
	code.BandHAL:  http.StatusInternalServerError,
}

var bandGRPC = map[code.Band]codes.Code{
	code.BandStd:  codes.Internal,
	code.BandPar:  codes.InvalidArgument,
	code.BandExec: codes.Internal,
	code.BandPerm: codes.PermissionDenied,
	code.BandComm: codes.Unavailable,
	code.BandList: codes.ResourceExhausted,
	code.BandHAL:  codes.Internal,
}

// defaultHTTP lists codes whose status differs from their band.
var defaultHTTP = map[code.Code]int{
	// standard
	code.StdPerm:   http.StatusForbidden,
	code.StdNoEnt:  http.StatusNotFound,
	code.StdSrch:   http.StatusNotFound,
	code.StdIntr:   http.StatusServiceUnavailable,
	code.StdNxIO:   http.StatusNotFound,
	code.StdTooBig: http.StatusRequestEntityTooLarge,
	code.StdNoExec: http.StatusBadRequest,
	code.StdBadF:   http.StatusBadRequest,
	code.StdAgain:  http.StatusServiceUnavailable,
	code.StdNoMem:  http.StatusInsufficientStorage,
	code.StdAcces:  http.StatusForbidden,
	code.StdFault:  http.StatusBadRequest,
	code.StdBusy:   http.StatusServiceUnavailable,
	code.StdExist:  http.StatusConflict,
	code.StdXDev:   http.StatusBadRequest,
	code.StdNoDev:  http.StatusNotFound,
	code.StdNotDir: http.StatusBadRequest,
	code.StdIsDir:  http.StatusBadRequest,
	code.StdInval:  http.StatusBadRequest,
	code.StdNFile:  http.StatusServiceUnavailable,
	code.StdMFile:  http.StatusServiceUnavailable,
	code.StdNoTTY:  http.StatusBadRequest,
	code.StdFBig:   http.StatusRequestEntityTooLarge,
	code.StdNoSpc:  http.StatusInsufficientStorage,
	code.StdSPipe:  http.StatusBadRequest,
	code.StdROFS:   http.StatusConflict,
	code.StdMLink:  http.StatusInsufficientStorage,
	code.StdPipe:   http.StatusBadGateway,
	code.StdDom:    http.StatusBadRequest,
	code.StdRange:  http.StatusBadRequest,

	// parameter
	code.ParNoConfig:  http.StatusPreconditionFailed,
	code.ParOpNotSupp: http.StatusNotImplemented,

	// execution
	code.ExecTimeout:   http.StatusGatewayTimeout,
	code.ExecNoInit:    http.StatusServiceUnavailable,
	code.ExecAgainInit: http.StatusConflict,
	code.ExecOpNotSupp: http.StatusNotImplemented,
	code.ExecDeadlock:  http.StatusConflict,

	// communication
	code.CommTimeout:    http.StatusGatewayTimeout,
	code.CommAlrdyCon:   http.StatusConflict,
	code.CommNoCon:      http.StatusServiceUnavailable,
	code.CommBadLength:  http.StatusBadRequest,
	code.CommBadReq:     http.StatusBadRequest,
	code.CommBadContent: http.StatusBadRequest,
}

var defaultGRPC = map[code.Code]codes.Code{
	// standard
	code.StdPerm:   codes.PermissionDenied,
	code.StdNoEnt:  codes.NotFound,
	code.StdSrch:   codes.NotFound,
	code.StdIntr:   codes.Unavailable,
	code.StdNxIO:   codes.NotFound,
	code.StdTooBig: codes.InvalidArgument,
	code.StdNoExec: codes.InvalidArgument,
	code.StdBadF:   codes.InvalidArgument,
	code.StdAgain:  codes.Unavailable,
	code.StdNoMem:  codes.ResourceExhausted,
	code.StdAcces:  codes.PermissionDenied,
	code.StdFault:  codes.InvalidArgument,
	code.StdBusy:   codes.Unavailable,
	code.StdExist:  codes.AlreadyExists,
	code.StdXDev:   codes.FailedPrecondition,
	code.StdNoDev:  codes.NotFound,
	code.StdNotDir: codes.FailedPrecondition,
	code.StdIsDir:  codes.FailedPrecondition,
	code.StdInval:  codes.InvalidArgument,
	code.StdNFile:  codes.ResourceExhausted,
	code.StdMFile:  codes.ResourceExhausted,
	code.StdNoTTY:  codes.InvalidArgument,
	code.StdFBig:   codes.OutOfRange,
	code.StdNoSpc:  codes.ResourceExhausted,
	code.StdSPipe:  codes.InvalidArgument,
	code.StdROFS:   codes.FailedPrecondition,
	code.StdMLink:  codes.ResourceExhausted,
	code.StdPipe:   codes.Unavailable,
	code.StdDom:    codes.OutOfRange,
	code.StdRange:  codes.OutOfRange,

	// parameter
	code.ParRange:     codes.OutOfRange,
	code.ParNoConfig:  codes.FailedPrecondition,
	code.ParOpNotSupp: codes.Unimplemented,

	// execution
	code.ExecTimeout:   codes.DeadlineExceeded,
	code.ExecNoInit:    codes.FailedPrecondition,
	code.ExecAgainInit: codes.FailedPrecondition,
	code.ExecOpNotSupp: codes.Unimplemented,
	code.ExecDeadlock:  codes.Aborted,

	// communication
	code.CommCRC:        codes.DataLoss,
	code.CommTimeout:    codes.DeadlineExceeded,
	code.CommAlrdyCon:   codes.AlreadyExists,
	code.CommBadLength:  codes.InvalidArgument,
	code.CommBadReq:     codes.InvalidArgument,
	code.CommBadContent: codes.InvalidArgument,
}

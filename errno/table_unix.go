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

//go:build linux || darwin || freebsd || netbsd || openbsd

package errno

import (
	"sync"
	"syscall"

	"golang.org/x/sys/unix"

	"dirpx.dev/convention/code"
)

// table is the normalization table. Each platform value appears once.
var table = []Entry{
	// standard
	{unix.EPERM, code.StdPerm},
	{unix.ENOENT, code.StdNoEnt},
	{unix.ESRCH, code.StdSrch},
	{unix.EINTR, code.StdIntr},
	{unix.EIO, code.StdIO},
	{unix.ENXIO, code.StdNxIO},
	{unix.E2BIG, code.StdTooBig},
	{unix.ENOEXEC, code.StdNoExec},
	{unix.EBADF, code.StdBadF},
	{unix.ECHILD, code.StdChild},
	{unix.EAGAIN, code.StdAgain},
	{unix.ENOMEM, code.StdNoMem},
	{unix.EACCES, code.StdAcces},
	{unix.EFAULT, code.StdFault},
	{unix.EBUSY, code.StdBusy},
	{unix.EEXIST, code.StdExist},
	{unix.EXDEV, code.StdXDev},
	{unix.ENODEV, code.StdNoDev},
	{unix.ENOTDIR, code.StdNotDir},
	{unix.EISDIR, code.StdIsDir},
	{unix.EINVAL, code.StdInval},
	{unix.ENFILE, code.StdNFile},
	{unix.EMFILE, code.StdMFile},
	{unix.ENOTTY, code.StdNoTTY},
	{unix.EFBIG, code.StdFBig},
	{unix.ENOSPC, code.StdNoSpc},
	{unix.ESPIPE, code.StdSPipe},
	{unix.EROFS, code.StdROFS},
	{unix.EMLINK, code.StdMLink},
	{unix.EPIPE, code.StdPipe},
	{unix.EDOM, code.StdDom},
	{unix.ERANGE, code.StdRange},
	{unix.EDEADLK, code.ExecDeadlock},
	{unix.ETIMEDOUT, code.ExecTimeout},

	// epoll_ctl: circular loop of epoll instances
	{unix.ELOOP, code.ParCombi},

	// socket
	{unix.EAFNOSUPPORT, code.ParInvChType},
	{unix.ENOBUFS, code.StdNoMem},
	{unix.EPROTONOSUPPORT, code.ParInvChn},

	// bind
	{unix.EADDRINUSE, code.ParOpNotSupp},
	{unix.ENOTSOCK, code.ParInvConfigType},
	{unix.EADDRNOTAVAIL, code.ParInvConfig},
	{unix.ENAMETOOLONG, code.ParBadValue},

	// sendto, recvmmsg
	{unix.ECONNRESET, code.CommConDenied},
	{unix.EDESTADDRREQ, code.CommBadReq},
	{unix.EISCONN, code.CommAlrdyCon},
	{unix.EMSGSIZE, code.CommBadLength},
	{unix.ENOTCONN, code.CommNoCon},
	{unix.EOPNOTSUPP, code.ExecOpNotSupp},
	{unix.ECONNREFUSED, code.CommConDenied},

	// write
	{unix.EDQUOT, code.ParRange},

	// getsockopt, setsockopt
	{unix.ENOPROTOOPT, code.ParInvValueID},

	// open
	{unix.EOVERFLOW, code.ParRange},
	{unix.ETXTBSY, code.PermRO},
}

// maxErrno bounds the scan that builds the name index. Every supported
// platform keeps its errno values well below it.
const maxErrno = 1024

func platformName(e syscall.Errno) string {
	return unix.ErrnoName(e)
}

var byName = sync.OnceValue(func() map[string]syscall.Errno {
	m := make(map[string]syscall.Errno)
	for i := 1; i < maxErrno; i++ {
		e := syscall.Errno(i)
		n := unix.ErrnoName(e)
		if n == "" {
			continue
		}
		m[n] = e
	}
	return m
})

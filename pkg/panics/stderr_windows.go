// Copyright 2024 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

//go:build windows

package panics

import "golang.org/x/sys/windows"

func dupFD(fd uintptr) (uintptr, error) {
	p, err := windows.GetCurrentProcess()
	if err != nil {
		return 0, err
	}
	var h windows.Handle
	if err := windows.DuplicateHandle(
		p, windows.Handle(fd), p, &h, 0, true, windows.DUPLICATE_SAME_ACCESS,
	); err != nil {
		return 0, err
	}
	return uintptr(h), nil
}

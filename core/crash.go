package core

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync/atomic"
)

// crashCleanup restores the terminal before the process dies
var crashCleanup atomic.Pointer[func()]

// RegisterCrashCleanup installs the terminal teardown invoked by HandleCrash
// Called once during startup after screen initialization
func RegisterCrashCleanup(fn func()) {
	crashCleanup.Store(&fn)
}

// HandleCrash is the unified panic handler that resets the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	// Restore terminal to sane state immediately
	if fn := crashCleanup.Load(); fn != nil {
		(*fn)()
	} else {
		// Fallback: reset attributes, show cursor, leave alternate screen, drop mouse reporting
		fmt.Fprint(os.Stdout, "\x1b[0m\x1b[?25h\x1b[?1049l\x1b[?1003l\x1b[?1006l")
	}

	// Force flush stdout/stderr before printing to stderr
	os.Stdout.Sync()
	os.Stderr.Sync()

	// Print error and stack trace to stderr
	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mCRASH DETECTED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())

	// Sync stderr before exit
	os.Stderr.Sync()

	os.Exit(1)
}

// Go runs a function in a new goroutine with panic recovery.
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash.
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}

package main

import (
	"flag"
	"strconv"

	"github.com/golang/glog"
)

// initLogging configures glog through its flags, which is the only way glog can be controlled. Arguments are
// parsed by cobra, so the standard flag set is marked parsed without arguments.
func initLogging(logToStderr bool, verbose int) {
	if !flag.Parsed() {
		_ = flag.CommandLine.Parse(nil)
	}
	if logToStderr {
		_ = flag.Lookup("logtostderr").Value.Set("true")
	}
	if verbose > 0 {
		_ = flag.Lookup("v").Value.Set(strconv.Itoa(verbose))
	}
	glog.V(3).Infof("logging initialized (verbosity %d)", verbose)
}

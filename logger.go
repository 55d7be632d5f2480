package grib2dec

import "github.com/golang/glog"

// glogLogger is the default Logger, delegating to glog's package-level
// functions the way reddaly-gogrib2's file reader does.
type glogLogger struct{}

func (glogLogger) Infof(format string, args ...any)    { glog.Infof(format, args...) }
func (glogLogger) Warningf(format string, args ...any) { glog.Warningf(format, args...) }

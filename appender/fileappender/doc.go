// Package fileappender provides an appender that appends formatted lines
// to a file. The file is opened in append mode and every message is
// written through immediately; there is no rotation and no buffering.
package fileappender

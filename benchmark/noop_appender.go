package benchmark

import (
	"github.com/philipp01105/simplylog/appender"
)

type noopAppender struct{}

func newNoopAppender() appender.Appender {
	return &noopAppender{}
}

func (a *noopAppender) Append(loggerName, levelName string, args []any) {
	_ = len(loggerName) + len(levelName) + len(args)
}

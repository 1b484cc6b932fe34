package cli

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/rs/zerolog"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/simplylog/appender"
	"github.com/philipp01105/simplylog/appender/charmappender"
	"github.com/philipp01105/simplylog/appender/logrusappender"
	"github.com/philipp01105/simplylog/appender/slogappender"
	"github.com/philipp01105/simplylog/appender/zapappender"
	"github.com/philipp01105/simplylog/appender/zerologappender"
	"github.com/philipp01105/simplylog/core"
)

// Sinks accepted by --sink
var sinks = []string{"console", "zap", "zerolog", "logrus", "charm", "slog"}

type emitOptions struct {
	logger string
	level  string
	sink   string
}

func newEmitCommand(root *rootOptions) *cobra.Command {
	opts := &emitOptions{}
	cmd := &cobra.Command{
		Use:   "emit [message...]",
		Short: "Log one message",
		Long:  `Logs the arguments as one message at the given level. A message the logger does not accept is reported and dropped.`,
		Example: `  simplylog emit --level warn disk almost full
  simplylog emit --sink zap --logger db --level error connection lost`,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			r, err := root.registry(cmd)
			if err != nil {
				return err
			}
			defer func() {
				err = multierr.Append(err, r.Close())
			}()

			level, err := core.ParseLevel(opts.level)
			if err != nil {
				return err
			}
			sink, err := newSink(opts.sink, cmd.OutOrStdout())
			if err != nil {
				return err
			}

			if sink == nil {
				sink = r.ConsoleAppender()
			}
			l := r.GetLogger(opts.logger).AddAppender(sink)

			if !l.IsLogged(level) {
				r.ConsoleLogger(diagLogger).Info("dropped", level, "message for", opts.logger, "at threshold", l.Level())
				return nil
			}
			msg := make([]any, len(args))
			for i, a := range args {
				msg[i] = a
			}
			l.Log(level, msg...)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.logger, "logger", "l", "cli", "logger name")
	cmd.Flags().StringVar(&opts.level, "level", core.InfoLevel.String(), "message level")
	cmd.Flags().StringVar(&opts.sink, "sink", "console", "output: "+strings.Join(sinks, ", "))
	return cmd
}

// newSink returns the bridge appender for name writing to w. The console
// sink returns nil; it is the registry's own console appender.
func newSink(name string, w io.Writer) (appender.Appender, error) {
	switch name {
	case "console":
		return nil, nil
	case "zap":
		// MultiWriter hides Sync; syncing a terminal fails with EINVAL
		zc := zapcore.NewCore(
			zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
			zapcore.AddSync(io.MultiWriter(w)),
			zapcore.DebugLevel,
		)
		return zapappender.New(zap.New(zc)), nil
	case "zerolog":
		zl := zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).
			Level(zerolog.TraceLevel).
			With().Timestamp().Logger()
		return zerologappender.New(zl), nil
	case "logrus":
		ll := logrus.New()
		ll.SetOutput(w)
		ll.SetLevel(logrus.TraceLevel)
		ll.SetFormatter(&logrus.TextFormatter{DisableColors: true})
		return logrusappender.New(ll), nil
	case "charm":
		return charmappender.New(log.NewWithOptions(w, log.Options{
			Level:           log.DebugLevel,
			ReportTimestamp: true,
		})), nil
	case "slog":
		return slogappender.New(slog.NewTextHandler(w, &slog.HandlerOptions{
			Level: slogappender.LevelTrace,
		})), nil
	default:
		return nil, fmt.Errorf("unknown sink %q (want one of %s)", name, strings.Join(sinks, ", "))
	}
}

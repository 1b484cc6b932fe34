package core

import (
	"bytes"
	"fmt"
	"strconv"
	"time"
)

// AppendArgs renders args into buf the way a console would print them:
// each argument on its own, separated by a single space.
func AppendArgs(buf *bytes.Buffer, args []any) {
	for i, a := range args {
		if i > 0 {
			buf.WriteByte(' ')
		}
		appendArg(buf, a)
	}
}

// RenderArgs returns the console rendering of args as a string.
func RenderArgs(args []any) string {
	switch len(args) {
	case 0:
		return ""
	case 1:
		if s, ok := args[0].(string); ok {
			return s
		}
	}
	var buf bytes.Buffer
	AppendArgs(&buf, args)
	return buf.String()
}

func appendArg(buf *bytes.Buffer, a any) {
	switch v := a.(type) {
	case nil:
		buf.WriteString("<nil>")
	case string:
		buf.WriteString(v)
	case []byte:
		buf.Write(v)
	case error:
		buf.WriteString(v.Error())
	case time.Duration:
		buf.WriteString(v.String())
	case time.Time:
		buf.Write(v.AppendFormat(buf.AvailableBuffer(), time.RFC3339))
	case fmt.Stringer:
		buf.WriteString(v.String())
	case int:
		buf.Write(strconv.AppendInt(buf.AvailableBuffer(), int64(v), 10))
	case int64:
		buf.Write(strconv.AppendInt(buf.AvailableBuffer(), v, 10))
	case int32:
		buf.Write(strconv.AppendInt(buf.AvailableBuffer(), int64(v), 10))
	case uint:
		buf.Write(strconv.AppendUint(buf.AvailableBuffer(), uint64(v), 10))
	case uint64:
		buf.Write(strconv.AppendUint(buf.AvailableBuffer(), v, 10))
	case float64:
		buf.Write(strconv.AppendFloat(buf.AvailableBuffer(), v, 'g', -1, 64))
	case float32:
		buf.Write(strconv.AppendFloat(buf.AvailableBuffer(), float64(v), 'g', -1, 32))
	case bool:
		buf.Write(strconv.AppendBool(buf.AvailableBuffer(), v))
	default:
		fmt.Fprintf(buf, "%v", v)
	}
}

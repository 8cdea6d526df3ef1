package host

import (
	"fmt"

	"wirecube/hal"
)

func logf(l hal.Logger, format string, args ...any) {
	if l == nil {
		return
	}
	l.WriteLineString("host: " + fmt.Sprintf(format, args...))
}

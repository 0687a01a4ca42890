// Package log - тонкая обертка над стандартным log, которая отбрасывает сообщения [DEBUG],
// если отладка не включена. Уровень задается префиксом: [DEBUG], [INFO], [WARN], [ERROR].
package log

import (
	"fmt"
	"log"
	"strings"
)

var AllowDebug = false

// Setup включает отладку и, вместе с ней, вывод файла и строки в каждом сообщении.
func Setup(debug bool) {
	AllowDebug = debug

	flags := log.Ldate | log.Ltime
	if debug {
		flags |= log.Lmicroseconds | log.Lshortfile
	}
	log.SetFlags(flags)
}

func Printf(format string, v ...any) {
	if !allowed(format) {
		return
	}
	_ = log.Output(2, fmt.Sprintf(format, v...))
}

func Fatalf(format string, v ...any) {
	if !allowed(format) {
		return
	}
	log.Fatalf(format, v...)
}

func allowed(s string) bool {
	if AllowDebug {
		return true
	}
	return !strings.HasPrefix(s, "[DEBUG]")
}

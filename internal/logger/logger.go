// Package logger configures the process-wide logrus logger.
package logger

import (
	"fmt"
	"os"
	"sort"
	"strings"

	log "github.com/sirupsen/logrus"
)

// ConsoleFormatter renders log lines as "2006/01/02 - 15:04:05 | LEVEL | msg k=v".
type ConsoleFormatter struct{}

// Format implements logrus.Formatter.
func (f *ConsoleFormatter) Format(entry *log.Entry) ([]byte, error) {
	timestamp := entry.Time.Format("2006/01/02 - 15:04:05")
	level := fmt.Sprintf("%-5s", strings.ToUpper(entry.Level.String()))

	var fields string
	if len(entry.Data) > 0 {
		keys := make([]string, 0, len(entry.Data))
		for k := range entry.Data {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		var b strings.Builder
		for _, k := range keys {
			fmt.Fprintf(&b, " %s=%v", k, entry.Data[k])
		}
		fields = b.String()
	}

	return []byte(fmt.Sprintf("%s | %s | %s%s\n", timestamp, level, entry.Message, fields)), nil
}

// Setup configures the standard logrus logger with the given level name.
// Unknown level names fall back to info.
func Setup(level string) {
	log.SetOutput(os.Stdout)
	log.SetFormatter(&ConsoleFormatter{})
	log.SetReportCaller(false)

	parsed, err := log.ParseLevel(level)
	if err != nil {
		parsed = log.InfoLevel
	}
	log.SetLevel(parsed)
}

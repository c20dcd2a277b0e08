package ride

import (
	"strings"

	"github.com/spencer-p/beachride/pkg/timetricks"
)

// Subject is the subject line of every report.
const Subject = "Time to ride!"

// Message is a report: a header naming the days checked, then one line per
// good time.
type Message struct {
	Range     timetricks.Range
	GoodTimes []GoodTime
}

// String renders the report with every line newline terminated.
func (m Message) String() string {
	var b strings.Builder
	b.WriteString(m.Range.Header())
	b.WriteString("\n")
	for _, gt := range m.GoodTimes {
		b.WriteString(gt.String())
		b.WriteString("\n")
	}
	return b.String()
}

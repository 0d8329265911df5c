package sessions

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

// bannerFormatter renders session.log entries as banner-separated blocks.
type bannerFormatter struct{}

func (f *bannerFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	banner := fmt.Sprintf("---------- %s - %s ----------",
		entry.Time.Format("2006-01-02 15:04:05"),
		strings.ToUpper(entry.Level.String()))
	return []byte(banner + "\n" + entry.Message + "\n\n"), nil
}

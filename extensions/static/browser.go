package static

import (
	"io"

	"github.com/pkg/browser"
	"github.com/sirupsen/logrus"
)

func init() {
	browser.Stdout = io.Discard
	browser.Stderr = io.Discard
}

type BrowserOpener func(url string) error

// OpenBrowser opens url in the host's default browser.
func OpenBrowser(url string) error {
	return browser.OpenURL(url)
}

// launchBrowser is fire-and-forget: every failure, including a panic in the
// opener, is discarded and the caller never waits for the browser.
func launchBrowser(opener BrowserOpener, url string, logger logrus.FieldLogger) {
	if opener == nil {
		return
	}
	go func() {
		defer func() {
			if recovered := recover(); recovered != nil {
				logger.Debug("open browser: ", recovered)
			}
		}()
		err := opener(url)
		if err != nil {
			logger.Debug("open browser: ", err)
		}
	}()
}

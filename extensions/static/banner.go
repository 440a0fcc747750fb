package static

import (
	"fmt"
	"io"
	"strings"
)

func writeBanner(writer io.Writer, name string, url string) error {
	rule := strings.Repeat("=", 50)
	_, err := fmt.Fprintf(writer,
		"\n%s\n  %s Server Running\n%s\n\n  Open in browser: %s\n\n  Press Ctrl+C to stop the server\n\n%s\n\n",
		rule, name, rule, url, rule)
	return err
}

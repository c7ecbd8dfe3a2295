// Package greeting holds the content served by hellodevops.
package greeting

import (
	"fmt"
	"html"
	"net/http"
)

// Message is the body returned by GET /. It never changes for the lifetime of the process.
const Message = "Hello CGI!!! Welcome to the world of DevOps :)"

const (
	ContentTypeText = "text/plain; charset=utf-8"
	ContentTypeHTML = "text/html; charset=utf-8"
)

const pageTemplate = `<html>
<head>
    <meta charset="utf-8">
    <title>Index</title>
</head>
<body>
    <div style='font-size:60px;'>
    <center>
        %s<br>
    </center>
    </div>
</body>
</html>`

// Page wraps message in the HTML landing page. The message is escaped.
func Page(message string) string {
	return fmt.Sprintf(pageTemplate, html.EscapeString(message))
}

// Handler serves Message as plain text
func Handler() http.HandlerFunc {
	body := []byte(Message)
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", ContentTypeText)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(body)
	}
}

// PageHandler serves the HTML landing page
func PageHandler() http.HandlerFunc {
	body := []byte(Page(Message))
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", ContentTypeHTML)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(body)
	}
}

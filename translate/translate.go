// Package translate formats user-visible messages for the user's locale.
package translate

import (
	"log"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/message"
)

var printer *message.Printer

func init() {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("katas: locale: %v", err)
	}

	SetLocale(locales...)
}

// SetLocale selects the message printer for the best matching locale.
// With no locales, en-US is used.
func SetLocale(locales ...string) {
	if len(locales) == 0 {
		locales = []string{"en-US"}
	}

	printer = message.NewPrinter(message.MatchLanguage(locales...))
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}

// Message is an error whose text is translated each time it is formatted,
// so a later SetLocale also changes package-level errors.
type Message struct {
	Key  message.Reference
	Args []any
}

// Error creates a translated error. Each call returns a distinct error.
func Error(key message.Reference, args ...any) error {
	return &Message{Key: key, Args: args}
}

func (msg *Message) Error() string {
	return From(msg.Key, msg.Args...)
}

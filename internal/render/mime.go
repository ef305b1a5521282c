package render

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/gomail.v2"
)

var ErrNoRecipients = errors.New("no recipients")

// WriteMIME writes msg to w as a complete MIME email with an HTML body.
// Nothing is sent; the caller decides where the document goes.
func WriteMIME(w io.Writer, msg Message, from string, to []string) error {
	if len(to) == 0 {
		return ErrNoRecipients
	}

	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", to...)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/html", msg.Body)

	if _, err := m.WriteTo(w); err != nil {
		return fmt.Errorf("write mime message: %w", err)
	}
	return nil
}

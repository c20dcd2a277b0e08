// Package notify delivers a finished report. Delivery is best effort: a
// failing notifier is logged and never stops the others.
package notify

import (
	"context"
	"fmt"
	"io"
	"log"
)

// Notifier sends one report somewhere.
type Notifier interface {
	Name() string
	Notify(ctx context.Context, subject, body string) error
}

// Dispatch hands the report to every notifier in order and reports how many
// of them failed.
func Dispatch(ctx context.Context, subject, body string, notifiers ...Notifier) (failed int) {
	for _, n := range notifiers {
		if err := n.Notify(ctx, subject, body); err != nil {
			log.Printf("Failed to notify via %s: %v", n.Name(), err)
			failed++
			continue
		}
		log.Printf("Sent report via %s", n.Name())
	}
	return failed
}

// Console prints the report body.
type Console struct {
	W io.Writer
}

func (c Console) Name() string {
	return "console"
}

func (c Console) Notify(_ context.Context, _, body string) error {
	_, err := fmt.Fprintln(c.W, body)
	return err
}

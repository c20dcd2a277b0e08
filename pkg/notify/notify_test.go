package notify

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type fakeNotifier struct {
	name  string
	err   error
	calls *[]string
}

func (f fakeNotifier) Name() string { return f.name }

func (f fakeNotifier) Notify(_ context.Context, subject, body string) error {
	*f.calls = append(*f.calls, f.name+": "+subject)
	return f.err
}

func TestDispatchContinuesPastFailures(t *testing.T) {
	var calls []string
	failed := Dispatch(context.Background(), "Time to ride!", "body",
		fakeNotifier{"mail", errors.New("connection refused"), &calls},
		fakeNotifier{"console", nil, &calls},
		fakeNotifier{"telegram", errors.New("unauthorized"), &calls},
	)

	if failed != 2 {
		t.Errorf("got %d failures, want 2", failed)
	}
	want := []string{
		"mail: Time to ride!",
		"console: Time to ride!",
		"telegram: Time to ride!",
	}
	if diff := cmp.Diff(want, calls); diff != "" {
		t.Errorf("wrong calls (-want,+got):\n%s", diff)
	}
}

func TestConsole(t *testing.T) {
	var buf bytes.Buffer
	body := "Note: Checking dates from 20210101 to 20210201\n"
	if err := (Console{W: &buf}).Notify(context.Background(), "Time to ride!", body); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := buf.String(), body+"\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

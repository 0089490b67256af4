package console

import (
	"context"
	"errors"
	"flight-dashboard/internal/services"
	"fmt"
	"io"
	"log/slog"
)

const menu = `
Menu:
1. Insert Flight Plan
2. Cancel Flight Plan
3. Show Flight Plan Status
4. Show Flight Plans in 1-hour Time Period
0. Exit
`

// handler runs one menu action. It returns errInvalidInput or io.EOF when the
// operator's answers cannot be read.
type handler func(ctx context.Context) error

// Session is the interactive menu loop around a DashboardService.
// It loads the dashboard on start and saves it on exit (option 0 or end of input).
type Session struct {
	svc    *services.DashboardService
	p      *prompter
	out    io.Writer
	routes map[int]handler
}

func NewSession(svc *services.DashboardService, in io.Reader, out io.Writer) *Session {
	s := &Session{
		svc: svc,
		p:   newPrompter(in, out),
		out: out,
	}
	s.routes = map[int]handler{
		1: s.insert,
		2: s.cancel,
		3: s.status,
		4: s.window,
	}
	return s
}

// Run the session until the operator exits or input ends.
// Storage failures are reported to the operator, never returned; the only
// error returned is a failure to read input.
func (s *Session) Run(ctx context.Context) error {
	if err := s.svc.Load(ctx); err != nil {
		fmt.Fprintf(s.out, "Starting with an empty dashboard: %v\n", err)
	}

	for {
		fmt.Fprint(s.out, menu)
		option, err := s.p.readInt("Enter option: ")
		switch {
		case errors.Is(err, io.EOF):
			fmt.Fprintln(s.out)
			return s.exit(ctx)
		case errors.Is(err, errInvalidInput):
			fmt.Fprintln(s.out, "Invalid input. Please enter a number.")
			continue
		case err != nil:
			s.exit(ctx)
			return err
		}

		if option == 0 {
			return s.exit(ctx)
		}

		h, ok := s.routes[option]
		if !ok {
			s.p.discardLine()
			fmt.Fprintln(s.out, "Invalid option. Please try again.")
			continue
		}

		err = h(ctx)
		switch {
		case errors.Is(err, io.EOF):
			fmt.Fprintln(s.out)
			return s.exit(ctx)
		case errors.Is(err, errInvalidInput):
			fmt.Fprintln(s.out, "Invalid input. Please enter a number.")
		case err != nil:
			s.exit(ctx)
			return err
		}
	}
}

func (s *Session) exit(ctx context.Context) error {
	if err := s.svc.Save(ctx); err != nil {
		fmt.Fprintf(s.out, "Error writing flight data: %v\n", err)
		return nil
	}
	slog.DebugContext(ctx, "session ended")
	return nil
}

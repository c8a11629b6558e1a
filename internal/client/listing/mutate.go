package listing

import "context"

// mutation describes one server-confirmed change.
type mutation[R any] struct {
	// op names the operation in logs.
	op string
	// check runs before any I/O; an error aborts without a request.
	check func() error
	call  func(ctx context.Context) (R, error)
	// apply patches local state with the confirmed result.
	apply func(ctx context.Context, res R)
	// success, when set, is reported as an info notification.
	success string
	// refetch reloads the list after apply.
	refetch bool
}

// mutate runs m against l. Local state is only touched by apply, and only
// after the call returned without error. Any failure is reported as exactly
// one error notification and returned.
func mutate[T, R any](ctx context.Context, l *List[T], m mutation[R]) (R, error) {
	var zero R

	if m.check != nil {
		if err := m.check(); err != nil {
			l.opts.logger.Debug(ctx, "mutation rejected", "op", m.op, "error", err)
			l.notifyError(err)
			return zero, err
		}
	}

	res, err := m.call(ctx)
	if err != nil {
		l.opts.logger.Warn(ctx, "mutation failed", "op", m.op, "error", err)
		l.notifyError(err)
		return zero, err
	}

	if m.apply != nil {
		m.apply(ctx, res)
	}
	l.opts.logger.Info(ctx, "mutation applied", "op", m.op)
	if m.success != "" {
		l.notifyInfo(m.success)
	}

	if m.refetch {
		// The mutation stands even if the reload fails; Refetch reports that
		// failure itself, and the locally applied patch is still shown.
		if err := l.Refetch(ctx); err != nil {
			l.opts.onChange()
		}
	} else {
		l.opts.onChange()
	}
	return res, nil
}

// done is the result type for calls that return nothing.
type done struct{}

func noResult(call func(ctx context.Context) error) func(ctx context.Context) (done, error) {
	return func(ctx context.Context) (done, error) {
		return done{}, call(ctx)
	}
}

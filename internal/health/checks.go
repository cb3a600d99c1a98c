package health

import (
	"context"
	"fmt"
)

// Pinger is anything that can report its own reachability, e.g. the inbox.
type Pinger interface {
	Ping(ctx context.Context) error
}

// CatalogueCheck is unhealthy when the portfolio catalogue is empty.
func CatalogueCheck(count func() int) Checker {
	return CheckFunc("catalogue", func(context.Context) CheckResult {
		n := count()
		if n == 0 {
			return CheckResult{Status: StatusUnhealthy, Message: "portfolio catalogue is empty"}
		}
		return CheckResult{Status: StatusHealthy, Message: fmt.Sprintf("%d projects", n)}
	})
}

// InboxCheck reports a failing inbox as degraded; submissions still go out
// without it.
func InboxCheck(p Pinger) Checker {
	return CheckFunc("inbox", func(ctx context.Context) CheckResult {
		if err := p.Ping(ctx); err != nil {
			return CheckResult{Status: StatusDegraded, Error: err.Error()}
		}
		return CheckResult{Status: StatusHealthy}
	})
}

// ChannelsCheck lists the configured contact channels.
func ChannelsCheck(names []string) Checker {
	return CheckFunc("contact", func(context.Context) CheckResult {
		if len(names) == 0 {
			return CheckResult{Status: StatusUnhealthy, Message: "no contact channel configured"}
		}
		return CheckResult{Status: StatusHealthy, Message: fmt.Sprintf("channels: %v", names)}
	})
}

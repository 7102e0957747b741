package install

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/neodefaults/neodefaults-installer/internal/logsink"
	"github.com/neodefaults/neodefaults-installer/internal/messages"
)

// Retry budget for file copies.
const (
	DefaultCopyAttempts = 3
	DefaultCopyInterval = 500 * time.Millisecond
)

// RetryPolicy bounds copy retries. Zero values select the defaults.
type RetryPolicy struct {
	Attempts int
	Interval time.Duration
}

func (p RetryPolicy) normalized() RetryPolicy {
	if p.Attempts <= 0 {
		p.Attempts = DefaultCopyAttempts
	}
	if p.Interval <= 0 {
		p.Interval = DefaultCopyInterval
	}
	return p
}

// Copier copies single files, retrying transient failures.
type Copier struct {
	sys    System
	log    logsink.Sink
	policy RetryPolicy
}

// NewCopier returns a Copier using policy (zero fields use the defaults).
func NewCopier(sys System, log logsink.Sink, policy RetryPolicy) *Copier {
	return &Copier{sys: sys, log: log, policy: policy.normalized()}
}

// Copy copies source to dest. When overwrite is false and dest exists it fails
// immediately with ErrDestinationExists and makes no copy attempt. Otherwise it
// tries up to the retry budget and returns the last attempt's error.
func (c *Copier) Copy(source string, dest string, overwrite bool) error {
	if !overwrite {
		_, err := c.sys.Stat(dest)
		if err == nil {
			return fmt.Errorf("%w: "+messages.InstallDestinationExistsFmt, ErrDestinationExists, dest, source)
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %w", ErrTransientIO, err)
		}
	}

	attempts := 0
	op := func() error {
		attempts++
		return c.sys.CopyFile(source, dest, overwrite)
	}
	notify := func(err error, wait time.Duration) {
		c.log.Write(fmt.Sprintf(messages.InstallCopyRetryFmt, dest, err, wait))
	}
	b := backoff.WithMaxRetries(backoff.NewConstantBackOff(c.policy.Interval), uint64(c.policy.Attempts-1))
	if err := backoff.RetryNotify(op, b, notify); err != nil {
		return fmt.Errorf("%w: "+messages.InstallCopyFailedFmt, ErrTransientIO, source, dest, attempts, err)
	}
	return nil
}

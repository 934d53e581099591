package commands

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/cenkalti/backoff"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/hubsync/internal/domain/entities"
	"github.com/rios0rios0/hubsync/internal/domain/repositories"
)

// Token is the interface for the token command.
type Token interface {
	Execute(ctx context.Context, opts TokenOptions) (string, error)
}

// TokenOptions holds the inputs of a single login run.
type TokenOptions struct {
	Credential  entities.Credential
	BaseURL     string
	MaxAttempts int
	BaseDelay   time.Duration
}

// TokenCommand logs in to Docker Hub, retrying transient failures with
// exponential backoff (BaseDelay * 2^attempt).
type TokenCommand struct {
	auth    repositories.AuthRepository
	onRetry func(err error, delay time.Duration)
}

// NewTokenCommand creates a new TokenCommand with the given auth repository.
func NewTokenCommand(auth repositories.AuthRepository) *TokenCommand {
	return &TokenCommand{auth: auth}
}

// Execute returns the bearer token. Messages go to the logger (stderr) only,
// so the caller can print the token as the sole output.
func (it *TokenCommand) Execute(ctx context.Context, opts TokenOptions) (string, error) {
	if opts.Credential.Username == "" {
		return "", fmt.Errorf("%w: HUB_USER is not set", entities.ErrMissingCredential)
	}
	if opts.Credential.Password == "" {
		return "", fmt.Errorf("%w: HUB_PAT is not set", entities.ErrMissingCredential)
	}

	maxAttempts := opts.MaxAttempts
	if maxAttempts < 1 {
		maxAttempts = entities.DefaultMaxAttempts
	}

	var token string
	attempt := 0
	operation := func() error {
		attempt++
		logger.Debugf("Login attempt %d/%d against %s", attempt, maxAttempts, opts.BaseURL)

		result, err := it.auth.Login(ctx, opts.BaseURL, opts.Credential)
		if err != nil {
			if !entities.IsTransient(err) || attempt >= maxAttempts {
				return backoff.Permanent(err)
			}
			return err
		}
		token = result
		return nil
	}

	notify := func(err error, delay time.Duration) {
		logger.Warnf(
			"Login failed with transient error (%v), retrying in %s... (attempt %d/%d)",
			err, delay, attempt, maxAttempts,
		)
		if it.onRetry != nil {
			it.onRetry(err, delay)
		}
	}

	// the last attempt ends the loop itself; WithMaxRetries treats 0 as unlimited
	policy := backoff.WithContext(
		backoff.WithMaxRetries(newExponentialBackOff(opts.BaseDelay, maxAttempts), uint64(maxAttempts)),
		ctx,
	)

	if err := backoff.RetryNotify(operation, policy, notify); err != nil {
		if entities.IsTransient(err) && attempt == maxAttempts {
			return "", &entities.ExhaustedRetriesError{Attempts: attempt, Err: err}
		}
		return "", err
	}

	return token, nil
}

// newExponentialBackOff yields base, 2*base, 4*base, ... with no jitter and
// no cap below the last delay the policy can reach.
func newExponentialBackOff(base time.Duration, maxAttempts int) *backoff.ExponentialBackOff {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = base
	bo.Multiplier = 2
	bo.RandomizationFactor = 0
	bo.MaxInterval = maxDelay(base, maxAttempts)
	bo.MaxElapsedTime = 0
	bo.Reset()
	return bo
}

// maxDelay is base * 2^(maxAttempts-1), saturated at the largest Duration.
func maxDelay(base time.Duration, maxAttempts int) time.Duration {
	delay := base
	for i := 1; i < maxAttempts; i++ {
		if delay > math.MaxInt64/2 {
			return math.MaxInt64
		}
		delay *= 2
	}
	return delay
}

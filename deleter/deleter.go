// deleter/deleter.go
/* The deleter package implements the bounded-retry delete protocol for server
objects. Each attempt issues exactly one DELETE request; success (200/201),
conflict (409) and permission failure (401) are terminal, every other status is
retried on a fixed interval until the attempt budget is spent. Jamf propagates
policy deletions slowly, hence the flat 30 second interval rather than an
exponential backoff. */
package deleter

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/codeGROOVE-dev/retry"
	"github.com/deploymenttheory/jamf-api-tool/logger"
	"github.com/deploymenttheory/jamf-api-tool/response"
	"go.uber.org/zap"
)

// Requester is the slice of the transport client the orchestrator consumes.
type Requester interface {
	Delete(ctx context.Context, endpoint string) (response.Response, error)
}

// Kind identifies the object family a delete targets.
type Kind string

const (
	KindPolicy   Kind = "policy"
	KindComputer Kind = "computer"
)

// endpoint returns the Classic API delete endpoint for an object id.
func (k Kind) endpoint(id int) string {
	switch k {
	case KindComputer:
		return fmt.Sprintf("/JSSResource/computers/id/%d", id)
	default:
		return fmt.Sprintf("/JSSResource/policies/id/%d", id)
	}
}

// Outcome is the terminal state of one delete protocol run.
type Outcome int

const (
	// Succeeded: the server acknowledged the delete with 200 or 201.
	Succeeded Outcome = iota
	// Conflict: 409, the object is not in a deletable state (already gone or
	// referenced elsewhere). Never retried.
	Conflict
	// Unauthorized: 401, the credentials lack delete rights. Never retried.
	Unauthorized
	// ExhaustedRetries: the attempt budget was spent without a terminal status.
	ExhaustedRetries
)

// String returns the display name of the outcome.
func (o Outcome) String() string {
	switch o {
	case Succeeded:
		return "succeeded"
	case Conflict:
		return "conflict"
	case Unauthorized:
		return "unauthorized"
	case ExhaustedRetries:
		return "exhausted retries"
	default:
		return "unknown"
	}
}

// Policy is the retry strategy for the delete protocol. It is a value so tests
// can run the identical protocol with a zero interval.
type Policy struct {
	Attempts uint
	Interval time.Duration
}

// DefaultPolicy matches the server's observed deletion-propagation behavior.
var DefaultPolicy = Policy{Attempts: 5, Interval: 30 * time.Second}

// Result reports the terminal outcome of a delete run together with the number
// of requests issued and the last status code observed.
type Result struct {
	Outcome        Outcome
	Attempts       int
	LastStatusCode int
}

// Orchestrator runs the delete protocol against the transport client.
type Orchestrator struct {
	client Requester
	policy Policy
	log    logger.Logger
}

// New returns an Orchestrator with the given retry policy.
func New(client Requester, policy Policy, log logger.Logger) *Orchestrator {
	return &Orchestrator{client: client, policy: policy, log: log}
}

// Delete runs the delete protocol for one object id. The returned Result always
// carries a terminal outcome; request-level failures never escape as errors
// because the remaining targets of a multi-target operation must keep
// processing.
func (o *Orchestrator) Delete(ctx context.Context, kind Kind, id int) Result {
	endpoint := kind.endpoint(id)

	var result Result
	err := retry.Do(func() error {
		result.Attempts++
		o.log.Debug("Delete attempt",
			zap.String("kind", string(kind)),
			zap.Int("id", id),
			zap.Int("attempt", result.Attempts))

		resp, err := o.client.Delete(ctx, endpoint)
		if err != nil {
			o.log.LogRetryAttempt("delete_retry", http.MethodDelete, endpoint,
				result.Attempts, "transport error", o.policy.Interval, err)
			return err
		}
		result.LastStatusCode = resp.StatusCode

		switch resp.StatusCode {
		case http.StatusOK, http.StatusCreated:
			result.Outcome = Succeeded
			return nil
		case http.StatusConflict:
			result.Outcome = Conflict
			return nil
		case http.StatusUnauthorized:
			result.Outcome = Unauthorized
			return nil
		default:
			reason := retryReason(resp.StatusCode)
			o.log.LogRetryAttempt("delete_retry", http.MethodDelete, endpoint,
				result.Attempts, reason, o.policy.Interval, nil)
			return fmt.Errorf("%s %s: %s", http.MethodDelete, endpoint, reason)
		}
	},
		retry.Attempts(o.policy.Attempts),
		retry.Delay(o.policy.Interval),
		retry.MaxDelay(o.policy.Interval),
	)

	if err != nil {
		result.Outcome = ExhaustedRetries
	}

	return result
}

// retryReason classifies a non-terminal status for the retry log. The protocol
// retries every non-terminal status regardless; the classification only names
// what the server reported.
func retryReason(statusCode int) string {
	switch {
	case response.IsTransientError(statusCode):
		return fmt.Sprintf("transient server error %d", statusCode)
	case response.IsRetryableStatusCode(statusCode):
		return fmt.Sprintf("retryable status %d", statusCode)
	case response.IsNonRetryableStatusCode(statusCode):
		return fmt.Sprintf("unexpected non-retryable status %d", statusCode)
	default:
		return fmt.Sprintf("unexpected status %d", statusCode)
	}
}

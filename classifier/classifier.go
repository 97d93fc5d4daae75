// classifier/classifier.go
/* The classifier package assigns computer records to staleness/compliance buckets
and filters policy collections against name queries. It is pure computation over
fetched records: no I/O beyond logging, no mutation of inputs, and every record
is assigned to exactly one bucket or excluded with a logged parse error. */
package classifier

import (
	"time"

	"github.com/deploymenttheory/jamf-api-tool/logger"
	"go.uber.org/zap"
)

// LastContactLayout is the timestamp format of the Classic API last_contact_time field.
const LastContactLayout = "2006-01-02 15:04:05"

// DefaultStalenessThresholdDays is the check-in window beyond which a computer
// counts as stale.
const DefaultStalenessThresholdDays = 10

// Bucket is the classification assigned to a computer record.
type Bucket int

const (
	// Recent: checked in within the staleness window, no OS filter applied.
	Recent Bucket = iota
	// Stale: last check-in at or beyond the staleness threshold. When an OS
	// filter is supplied staleness dominates and the OS is not evaluated.
	Stale
	// CompliantWithOS: recent and running at least the filter OS version.
	CompliantWithOS
	// NonCompliantWithOS: recent but running an OS below the filter version.
	NonCompliantWithOS
)

// String returns the display name of the bucket.
func (b Bucket) String() string {
	switch b {
	case Recent:
		return "recent"
	case Stale:
		return "stale"
	case CompliantWithOS:
		return "compliant"
	case NonCompliantWithOS:
		return "non-compliant"
	default:
		return "unknown"
	}
}

// ComputerRecord is the classifier's view of one computer: identity plus the raw
// fields classification depends on. LastContactTime stays unparsed so that the
// parse-failure policy lives in one place.
type ComputerRecord struct {
	ID              int
	Name            string
	OSVersion       string
	DEP             string
	LastContactTime string
}

// Classified is one successfully classified record with its derived age.
type Classified struct {
	Record  ComputerRecord
	AgeDays int
	Bucket  Bucket
}

// Options controls a classification pass.
type Options struct {
	// OSFilter is an optional dotted version; when set, recent records are split
	// into compliant / non-compliant by numeric version comparison.
	OSFilter string
	// StalenessThresholdDays defaults to DefaultStalenessThresholdDays when zero.
	StalenessThresholdDays int
	// Now anchors the age computation; the zero value means time.Now in UTC.
	Now time.Time
}

// Result is the outcome of one classification pass. Buckets are mutually
// exclusive; Unparsable counts records excluded from every bucket.
type Result struct {
	Buckets    map[Bucket][]Classified
	Unparsable int
}

// Count returns the number of records in a bucket.
func (r Result) Count(b Bucket) int {
	return len(r.Buckets[b])
}

// Classify assigns each record to exactly one bucket. Records whose
// last-contact timestamp or OS version cannot be parsed are logged and excluded
// from every bucket rather than silently coerced into the arithmetic. A record
// whose age equals the threshold is stale, not recent.
func Classify(records []ComputerRecord, opts Options, log logger.Logger) Result {
	threshold := opts.StalenessThresholdDays
	if threshold == 0 {
		threshold = DefaultStalenessThresholdDays
	}
	now := opts.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}

	result := Result{Buckets: make(map[Bucket][]Classified)}

	for _, record := range records {
		seen, err := time.Parse(LastContactLayout, record.LastContactTime)
		if err != nil {
			log.Error("Unparsable last contact time, excluding record from classification",
				zap.Int("id", record.ID),
				zap.String("name", record.Name),
				zap.String("last_contact_time", record.LastContactTime),
				zap.Error(err))
			result.Unparsable++
			continue
		}

		ageDays := ageInDays(now, seen)

		bucket, ok := bucketFor(record, ageDays, threshold, opts.OSFilter, log)
		if !ok {
			result.Unparsable++
			continue
		}

		result.Buckets[bucket] = append(result.Buckets[bucket], Classified{
			Record:  record,
			AgeDays: ageDays,
			Bucket:  bucket,
		})
	}

	return result
}

// bucketFor applies the classification policy to one record with a known age.
func bucketFor(record ComputerRecord, ageDays, threshold int, osFilter string, log logger.Logger) (Bucket, bool) {
	if ageDays >= threshold {
		return Stale, true
	}

	if osFilter == "" {
		return Recent, true
	}

	cmp, err := CompareVersions(record.OSVersion, osFilter)
	if err != nil {
		log.Error("Unparsable OS version, excluding record from classification",
			zap.Int("id", record.ID),
			zap.String("name", record.Name),
			zap.String("os_version", record.OSVersion),
			zap.Error(err))
		return 0, false
	}

	if cmp >= 0 {
		return CompliantWithOS, true
	}
	return NonCompliantWithOS, true
}

// ageInDays returns the whole days between two instants, regardless of order.
func ageInDays(now, seen time.Time) int {
	diff := now.Sub(seen)
	if diff < 0 {
		diff = -diff
	}
	return int(diff.Hours() / 24)
}

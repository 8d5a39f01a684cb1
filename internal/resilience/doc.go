// Package resilience provides the circuit breaker and backoff used by the
// sender and the polling dispatcher. Circuit breaking is sony/gobreaker.
package resilience

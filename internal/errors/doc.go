// Package errors defines the sentinel errors used across devops.
//
// Errors fall into three groups: configuration errors (fail fast, nothing
// was called), input errors (the request itself is malformed), and API
// errors (a cloud call was made and failed). Callers wrap these with
// fmt.Errorf("...: %w", err) and match with errors.Is.
package errors

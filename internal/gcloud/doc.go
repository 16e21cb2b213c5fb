// Package gcloud wraps the gcloud CLI for the provisioning chores this
// tool automates: API keys with fixed restriction profiles, service
// accounts with fixed IAM role sets, and project context switching.
//
// All operations run through the operator's own authenticated gcloud
// binary; this package never handles Google credentials itself.
package gcloud

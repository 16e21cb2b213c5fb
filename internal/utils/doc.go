// Package utils provides small helpers shared across devops: git remote
// parsing, gcloud account-ID generation, terminal input, and stdin reading.
package utils

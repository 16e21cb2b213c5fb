// Package github wraps the GitHub Actions repository-secrets endpoints:
// listing secrets, fetching the repository public key, and storing values
// sealed with a libsodium-compatible sealed box.
package github

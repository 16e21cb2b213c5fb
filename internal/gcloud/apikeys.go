package gcloud

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	devopserrors "github.com/abdushkur/dev-ops/internal/errors"
)

// KeyType selects one of the fixed API key restriction profiles.
type KeyType string

const (
	// KeyWeb is a browser key for the web app, locked to the site domains.
	KeyWeb KeyType = "web"

	// KeyIOS is locked to the iOS bundle ID.
	KeyIOS KeyType = "ios"

	// KeyAndroid is locked to the Android application.
	KeyAndroid KeyType = "android"

	// KeyServer is an unrestricted-referrer key for backend use.
	KeyServer KeyType = "server"

	// KeyMaps is a browser key limited to the Maps Platform services.
	KeyMaps KeyType = "maps"

	// KeyFirebase is a client key limited to the Firebase runtime services.
	KeyFirebase KeyType = "firebase"
)

// KeyRestrictions carries the environment-derived values the key profiles
// restrict against.
type KeyRestrictions struct {
	ProdDomain     string
	DevDomain      string
	AndroidPackage string
	AndroidSHA1    string
	IOSBundleID    string
}

// APIKey describes a created key. KeyString is sensitive and must be
// masked before printing.
type APIKey struct {
	Name        string
	DisplayName string
	KeyString   string
}

// apiTargets maps each key type to the services the key may call.
var apiTargets = map[KeyType][]string{
	KeyWeb: {
		"identitytoolkit.googleapis.com",
		"firestore.googleapis.com",
		"firebasestorage.googleapis.com",
	},
	KeyIOS: {
		"identitytoolkit.googleapis.com",
		"firestore.googleapis.com",
		"fcmregistrations.googleapis.com",
	},
	KeyAndroid: {
		"identitytoolkit.googleapis.com",
		"firestore.googleapis.com",
		"fcmregistrations.googleapis.com",
	},
	KeyServer: {
		"firestore.googleapis.com",
		"fcm.googleapis.com",
		"storage.googleapis.com",
	},
	KeyMaps: {
		"maps-backend.googleapis.com",
		"places-backend.googleapis.com",
		"geocoding-backend.googleapis.com",
	},
	KeyFirebase: {
		"firebaseremoteconfig.googleapis.com",
		"firebaseinstallations.googleapis.com",
		"fcmregistrations.googleapis.com",
	},
}

// KeyTypes returns the supported key types, sorted.
func KeyTypes() []string {
	types := make([]string, 0, len(apiTargets))
	for t := range apiTargets {
		types = append(types, string(t))
	}
	sort.Strings(types)
	return types
}

// ParseKeyType validates a key type argument.
func ParseKeyType(s string) (KeyType, error) {
	t := KeyType(s)
	if _, ok := apiTargets[t]; !ok {
		return "", fmt.Errorf("%w: %q (expected one of: %v)", devopserrors.ErrUnknownKeyType, s, KeyTypes())
	}
	return t, nil
}

// buildAPIKeyArgs assembles the gcloud argument list for creating a key of
// the given type. Restriction flags are only added when the corresponding
// environment values are present; a key is never silently restricted to an
// empty referrer list.
func buildAPIKeyArgs(t KeyType, displayName string, r KeyRestrictions) []string {
	args := []string{
		"services", "api-keys", "create",
		"--display-name", displayName,
		"--format", "json",
	}

	switch t {
	case KeyWeb, KeyMaps:
		for _, referrer := range browserReferrers(r) {
			args = append(args, "--allowed-referrers", referrer)
		}
	case KeyIOS:
		if r.IOSBundleID != "" {
			args = append(args, "--allowed-bundle-ids", r.IOSBundleID)
		}
	case KeyAndroid:
		// gcloud requires both the package name and the signing
		// fingerprint for an application restriction.
		if r.AndroidPackage != "" && r.AndroidSHA1 != "" {
			args = append(args,
				"--allowed-application",
				fmt.Sprintf("sha1_fingerprint=%s,package_name=%s", r.AndroidSHA1, r.AndroidPackage))
		}
	case KeyServer, KeyFirebase:
		// No client restriction; scoped by API targets only.
	}

	for _, service := range apiTargets[t] {
		args = append(args, "--api-target", "service="+service)
	}

	return args
}

// browserReferrers builds the allowed-referrer list for browser keys from
// the configured domains.
func browserReferrers(r KeyRestrictions) []string {
	var referrers []string
	for _, domain := range []string{r.ProdDomain, r.DevDomain} {
		if domain == "" {
			continue
		}
		referrers = append(referrers,
			fmt.Sprintf("https://%s/*", domain),
			fmt.Sprintf("https://*.%s/*", domain))
	}
	return referrers
}

// apiKeyOutput matches the JSON gcloud prints for api-keys create. Older
// SDK versions print the key directly; newer ones wrap it in the
// long-running operation response.
type apiKeyOutput struct {
	Name      string `json:"name"`
	KeyString string `json:"keyString"`
	Response  struct {
		Name      string `json:"name"`
		KeyString string `json:"keyString"`
	} `json:"response"`
}

// CreateAPIKey creates an API key of the given type in the target project.
func (p *Provisioner) CreateAPIKey(ctx context.Context, t KeyType, r KeyRestrictions) (*APIKey, error) {
	displayName := fmt.Sprintf("%s-key (%s)", t, p.project)

	output, err := p.runner.Run(ctx, buildAPIKeyArgs(t, displayName, r)...)
	if err != nil {
		return nil, err
	}

	var parsed apiKeyOutput
	if err := json.Unmarshal([]byte(output), &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse api-keys create output: %w", err)
	}

	key := &APIKey{
		Name:        parsed.Name,
		DisplayName: displayName,
		KeyString:   parsed.KeyString,
	}
	if key.Name == "" {
		key.Name = parsed.Response.Name
	}
	if key.KeyString == "" {
		key.KeyString = parsed.Response.KeyString
	}

	if key.KeyString == "" {
		return nil, fmt.Errorf("%w: api-keys create returned no key string", devopserrors.ErrGcloudFailed)
	}

	return key, nil
}

package gcloud

import (
	"context"
	"errors"
	"strings"
	"testing"

	devopserrors "github.com/abdushkur/dev-ops/internal/errors"
)

var testRestrictions = KeyRestrictions{
	ProdDomain:     "example.com",
	DevDomain:      "dev.example.com",
	AndroidPackage: "com.example.app",
	AndroidSHA1:    "AA:BB:CC",
	IOSBundleID:    "com.example.app.ios",
}

func TestParseKeyType(t *testing.T) {
	for _, valid := range KeyTypes() {
		if _, err := ParseKeyType(valid); err != nil {
			t.Errorf("ParseKeyType(%q) failed: %v", valid, err)
		}
	}

	if _, err := ParseKeyType("nope"); !errors.Is(err, devopserrors.ErrUnknownKeyType) {
		t.Errorf("expected ErrUnknownKeyType, got %v", err)
	}
}

func TestKeyTypesAreSixFixedProfiles(t *testing.T) {
	types := KeyTypes()
	if len(types) != 6 {
		t.Fatalf("expected 6 key types, got %d: %v", len(types), types)
	}
}

func TestBuildAPIKeyArgsWeb(t *testing.T) {
	args := strings.Join(buildAPIKeyArgs(KeyWeb, "web-key", testRestrictions), " ")

	for _, want := range []string{
		"services api-keys create",
		"--display-name web-key",
		"--allowed-referrers https://example.com/*",
		"--allowed-referrers https://*.example.com/*",
		"--allowed-referrers https://dev.example.com/*",
		"--api-target service=identitytoolkit.googleapis.com",
		"--api-target service=firestore.googleapis.com",
	} {
		if !strings.Contains(args, want) {
			t.Errorf("web key args missing %q:\n%s", want, args)
		}
	}

	if strings.Contains(args, "--allowed-bundle-ids") || strings.Contains(args, "--allowed-application") {
		t.Errorf("web key must not carry mobile restrictions:\n%s", args)
	}
}

func TestBuildAPIKeyArgsIOS(t *testing.T) {
	args := strings.Join(buildAPIKeyArgs(KeyIOS, "ios-key", testRestrictions), " ")

	if !strings.Contains(args, "--allowed-bundle-ids com.example.app.ios") {
		t.Errorf("ios key missing bundle restriction:\n%s", args)
	}
	if strings.Contains(args, "--allowed-referrers") {
		t.Errorf("ios key must not carry referrer restrictions:\n%s", args)
	}
}

func TestBuildAPIKeyArgsAndroid(t *testing.T) {
	args := strings.Join(buildAPIKeyArgs(KeyAndroid, "android-key", testRestrictions), " ")

	if !strings.Contains(args, "--allowed-application sha1_fingerprint=AA:BB:CC,package_name=com.example.app") {
		t.Errorf("android key missing application restriction:\n%s", args)
	}
}

func TestBuildAPIKeyArgsAndroidWithoutFingerprint(t *testing.T) {
	r := testRestrictions
	r.AndroidSHA1 = ""

	args := strings.Join(buildAPIKeyArgs(KeyAndroid, "android-key", r), " ")
	if strings.Contains(args, "--allowed-application") {
		t.Errorf("android key must skip the application restriction without a fingerprint:\n%s", args)
	}
}

func TestBuildAPIKeyArgsServerHasNoClientRestrictions(t *testing.T) {
	args := strings.Join(buildAPIKeyArgs(KeyServer, "server-key", testRestrictions), " ")

	for _, forbidden := range []string{"--allowed-referrers", "--allowed-bundle-ids", "--allowed-application"} {
		if strings.Contains(args, forbidden) {
			t.Errorf("server key must not carry %s:\n%s", forbidden, args)
		}
	}
	if !strings.Contains(args, "--api-target service=fcm.googleapis.com") {
		t.Errorf("server key missing api target:\n%s", args)
	}
}

func TestCreateAPIKeyParsesDirectOutput(t *testing.T) {
	runner := newFakeRunner()
	runner.responses["services api-keys create"] = `{"name": "projects/p/locations/global/keys/k1", "keyString": "AIzaFake"}`

	p := NewProvisionerWithRunner("my-project", runner)
	key, err := p.CreateAPIKey(context.Background(), KeyWeb, testRestrictions)
	if err != nil {
		t.Fatalf("CreateAPIKey failed: %v", err)
	}
	if key.KeyString != "AIzaFake" {
		t.Errorf("KeyString = %q", key.KeyString)
	}
	if key.Name != "projects/p/locations/global/keys/k1" {
		t.Errorf("Name = %q", key.Name)
	}
}

func TestCreateAPIKeyParsesOperationOutput(t *testing.T) {
	runner := newFakeRunner()
	runner.responses["services api-keys create"] = `{"done": true, "response": {"name": "projects/p/locations/global/keys/k2", "keyString": "AIzaWrapped"}}`

	p := NewProvisionerWithRunner("my-project", runner)
	key, err := p.CreateAPIKey(context.Background(), KeyMaps, testRestrictions)
	if err != nil {
		t.Fatalf("CreateAPIKey failed: %v", err)
	}
	if key.KeyString != "AIzaWrapped" {
		t.Errorf("KeyString = %q", key.KeyString)
	}
}

func TestCreateAPIKeyNoKeyString(t *testing.T) {
	runner := newFakeRunner()
	runner.responses["services api-keys create"] = `{"done": false}`

	p := NewProvisionerWithRunner("my-project", runner)
	if _, err := p.CreateAPIKey(context.Background(), KeyWeb, testRestrictions); !errors.Is(err, devopserrors.ErrGcloudFailed) {
		t.Errorf("expected ErrGcloudFailed, got %v", err)
	}
}

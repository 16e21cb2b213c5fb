package workflows

import (
	"context"
	"os"

	"github.com/abdushkur/dev-ops/internal/audit"
	"github.com/abdushkur/dev-ops/internal/configs"
	"github.com/abdushkur/dev-ops/internal/gcloud"
)

// provisioner returns the provisioner from the options, or builds one for
// the resolved project. The nearest .env file is loaded first so
// PROJECT_ID and the restriction values can live there.
func provisioner(override *gcloud.Provisioner, projectFlag string) (*gcloud.Provisioner, error) {
	if override != nil {
		return override, nil
	}

	if _, err := configs.LoadEnvironment(); err != nil {
		return nil, err
	}

	project, err := configs.ResolveProject(projectFlag)
	if err != nil {
		return nil, err
	}

	return gcloud.NewProvisioner(project), nil
}

// restrictionsFromEnv reads the key restriction values from the process
// environment. Missing values leave the corresponding restriction off.
func restrictionsFromEnv() gcloud.KeyRestrictions {
	return gcloud.KeyRestrictions{
		ProdDomain:     os.Getenv(configs.EnvProdDomain),
		DevDomain:      os.Getenv(configs.EnvDevDomain),
		AndroidPackage: os.Getenv(configs.EnvAndroidPackage),
		AndroidSHA1:    os.Getenv(configs.EnvAndroidSHA1),
		IOSBundleID:    os.Getenv(configs.EnvIOSBundleID),
	}
}

// ListProjectsOptions configures the projects workflow.
type ListProjectsOptions struct {
	ProjectFlag string

	// Provisioner overrides the gcloud wrapper, for testing.
	Provisioner *gcloud.Provisioner
}

// ListProjectsResult contains the visible projects plus which of them is
// active in the gcloud config and which this tool targets.
type ListProjectsResult struct {
	Projects []gcloud.ProjectInfo
	Active   string
	Target   string
}

// ListProjects lists the projects the operator's gcloud account can see.
// Unlike the provisioning workflows it does not require a target project;
// a resolved one is only used to mark the listing.
func ListProjects(ctx context.Context, opts ListProjectsOptions) (*ListProjectsResult, error) {
	p := opts.Provisioner
	if p == nil {
		if _, err := configs.LoadEnvironment(); err != nil {
			return nil, err
		}
		target, err := configs.ResolveProject(opts.ProjectFlag)
		if err != nil {
			target = ""
		}
		p = gcloud.NewProvisioner(target)
	}

	projects, err := p.ListProjects(ctx)
	if err != nil {
		return nil, err
	}

	active, err := p.ActiveProject(ctx)
	if err != nil {
		return nil, err
	}

	return &ListProjectsResult{Projects: projects, Active: active, Target: p.Project()}, nil
}

// CreateAPIKeyOptions configures the api-key workflow.
type CreateAPIKeyOptions struct {
	ProjectFlag string
	Type        string

	// Provisioner overrides the gcloud wrapper, for testing.
	Provisioner *gcloud.Provisioner
}

// CreateAPIKeyResult contains the outcome of an api-key create operation.
type CreateAPIKeyResult struct {
	Project string
	Key     *gcloud.APIKey
	Type    gcloud.KeyType
}

// CreateAPIKey creates an API key with the restriction profile for the
// given type, switching the active gcloud project for the duration and
// restoring it afterwards.
func CreateAPIKey(ctx context.Context, opts CreateAPIKeyOptions) (*CreateAPIKeyResult, error) {
	keyType, err := gcloud.ParseKeyType(opts.Type)
	if err != nil {
		return nil, err
	}

	p, err := provisioner(opts.Provisioner, opts.ProjectFlag)
	if err != nil {
		return nil, err
	}

	restrictions := restrictionsFromEnv()

	var key *gcloud.APIKey
	err = p.WithProject(ctx, func(ctx context.Context) error {
		var createErr error
		key, createErr = p.CreateAPIKey(ctx, keyType, restrictions)
		return createErr
	})
	if err != nil {
		return nil, err
	}

	audit.Log(audit.Entry{
		Operation: "api-key-create",
		Project:   p.Project(),
		KeyType:   string(keyType),
	})

	return &CreateAPIKeyResult{Project: p.Project(), Key: key, Type: keyType}, nil
}

// CreateServiceAccountOptions configures the service-account workflow.
type CreateServiceAccountOptions struct {
	ProjectFlag string
	Type        string

	// KeyDir is where the JSON key is exported. Empty skips the export.
	KeyDir string

	// Provisioner overrides the gcloud wrapper, for testing.
	Provisioner *gcloud.Provisioner
}

// CreateServiceAccountResult contains the outcome of a service-account
// create operation.
type CreateServiceAccountResult struct {
	Project string
	Account *gcloud.ServiceAccount
}

// CreateServiceAccount provisions a service account of the given type with
// its fixed role set, switching the active gcloud project for the duration
// and restoring it afterwards.
func CreateServiceAccount(ctx context.Context, opts CreateServiceAccountOptions) (*CreateServiceAccountResult, error) {
	accountType, err := gcloud.ParseAccountType(opts.Type)
	if err != nil {
		return nil, err
	}

	p, err := provisioner(opts.Provisioner, opts.ProjectFlag)
	if err != nil {
		return nil, err
	}

	var account *gcloud.ServiceAccount
	err = p.WithProject(ctx, func(ctx context.Context) error {
		var createErr error
		account, createErr = p.CreateServiceAccount(ctx, accountType, opts.KeyDir)
		return createErr
	})
	if err != nil {
		return nil, err
	}

	audit.Log(audit.Entry{
		Operation: "service-account-create",
		Project:   p.Project(),
		Account:   account.Email,
		Roles:     account.Roles,
	})

	return &CreateServiceAccountResult{Project: p.Project(), Account: account}, nil
}

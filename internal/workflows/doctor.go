package workflows

import (
	"context"
	"os"

	"github.com/abdushkur/dev-ops/internal/configs"
	"github.com/abdushkur/dev-ops/internal/gcloud"
)

// DoctorOptions configures the doctor workflow.
type DoctorOptions struct {
	RepoFlag    string
	ProjectFlag string
}

// DoctorCheck is one diagnostic line.
type DoctorCheck struct {
	Name   string
	OK     bool
	Detail string
}

// DoctorResult contains the outcome of every environment check.
type DoctorResult struct {
	Checks []DoctorCheck
	Failed int
}

func (r *DoctorResult) add(name string, ok bool, detail string) {
	r.Checks = append(r.Checks, DoctorCheck{Name: name, OK: ok, Detail: detail})
	if !ok {
		r.Failed++
	}
}

// Doctor checks the pieces the other commands depend on: the .env file,
// the GitHub token, the resolved repository, the gcloud binary, and the
// resolved project. Checks never abort each other; the result carries the
// full picture.
func Doctor(ctx context.Context, opts DoctorOptions) (*DoctorResult, error) {
	result := &DoctorResult{}

	envPath, err := configs.FindDotenv()
	switch {
	case err != nil:
		result.add(".env file", false, err.Error())
	case envPath == "":
		result.add(".env file", false, "not found in this directory or any parent")
	default:
		if _, err := configs.LoadDotenv(envPath); err != nil {
			result.add(".env file", false, err.Error())
		} else {
			result.add(".env file", true, envPath)
		}
	}

	if os.Getenv(configs.EnvGitHubToken) != "" {
		result.add("GitHub token", true, configs.EnvGitHubToken+" is set")
	} else {
		result.add("GitHub token", false, configs.EnvGitHubToken+" is not set")
	}

	if repo, err := configs.ResolveRepo(opts.RepoFlag); err != nil {
		result.add("repository", false, err.Error())
	} else {
		result.add("repository", true, repo.String())
	}

	if gcloud.Available() {
		result.add("gcloud binary", true, "found on PATH")

		if project, err := configs.ResolveProject(opts.ProjectFlag); err != nil {
			result.add("project", false, err.Error())
		} else {
			result.add("project", true, project)

			p := gcloud.NewProvisioner(project)
			if active, err := p.ActiveProject(ctx); err != nil {
				result.add("gcloud config", false, err.Error())
			} else if active == "" {
				result.add("gcloud config", true, "no active project (will switch for each operation)")
			} else {
				result.add("gcloud config", true, "active project: "+active)
			}
		}
	} else {
		result.add("gcloud binary", false, "not found on PATH")
	}

	return result, nil
}

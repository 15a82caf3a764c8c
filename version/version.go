package version

import (
	"fmt"
	"runtime"

	"github.com/Masterminds/semver/v3"

	"github.com/teranos/jpoet/errors"
)

// Build information. These variables are set at build time via ldflags.
var (
	// CommitHash is the git commit hash when the binary was built
	CommitHash = "dev"

	// BuildTime is when the binary was built
	BuildTime = "unknown"

	// Version is the semantic version (if tagged)
	Version = "dev"
)

// Info contains version and build information
type Info struct {
	CommitHash string `json:"commit_hash"`
	BuildTime  string `json:"build_time"`
	Version    string `json:"version"`
	GoVersion  string `json:"go_version"`
	Platform   string `json:"platform"`
}

// Get returns the current version information
func Get() Info {
	return Info{
		CommitHash: CommitHash,
		BuildTime:  BuildTime,
		Version:    Version,
		GoVersion:  runtime.Version(),
		Platform:   fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

// String returns a human-readable version string
func (i Info) String() string {
	if i.Version != "dev" {
		return fmt.Sprintf("jpoet %s (commit %s, built %s)", i.Version, i.CommitHash, i.BuildTime)
	}
	return fmt.Sprintf("jpoet dev (commit %s, built %s)", i.CommitHash, i.BuildTime)
}

// Short returns a short version string with just the commit hash
func (i Info) Short() string {
	if len(i.CommitHash) >= 7 {
		return i.CommitHash[:7]
	}
	return i.CommitHash
}

// CheckConstraint reports whether running version satisfies constraint
// (e.g. ">= 0.2.0, < 1.0.0"). Development builds satisfy every constraint.
// An empty constraint is always satisfied.
func CheckConstraint(running, constraint string) error {
	if constraint == "" || running == "dev" {
		return nil
	}

	ver, err := semver.NewVersion(running)
	if err != nil {
		return errors.Wrapf(err, "invalid jpoet version %s", running)
	}

	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return errors.WithHint(
			errors.Wrapf(err, "invalid version constraint %q", constraint),
			`use semver constraint syntax, e.g. ">= 0.2.0"`,
		)
	}

	if ok, errs := c.Validate(ver); !ok {
		err := errors.Newf("requires jpoet %s, but running %s", constraint, running)
		for _, e := range errs {
			err = errors.WithDetail(err, e.Error())
		}
		return err
	}

	return nil
}

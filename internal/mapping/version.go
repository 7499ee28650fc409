package mapping

import (
	"github.com/Masterminds/semver/v3"
	"github.com/cockroachdb/errors"
)

// SupportedVersions is the constraint a mapping's version must satisfy.
const SupportedVersions = ">= 1.0, < 3.0"

var supported = mustConstraint(SupportedVersions)

func mustConstraint(c string) *semver.Constraints {
	cs, err := semver.NewConstraint(c)
	if err != nil {
		panic(err)
	}

	return cs
}

// CheckVersion validates a mapping schema version. An empty version is accepted.
func CheckVersion(v string) error {
	if v == "" {
		return nil
	}

	sv, err := semver.NewVersion(v)
	if err != nil {
		return errors.Wrapf(err, "invalid mapping version %q", v)
	}

	if !supported.Check(sv) {
		return errors.WithHintf(
			errors.Newf("unsupported mapping version %s", v),
			"supported versions: %s", SupportedVersions,
		)
	}

	return nil
}

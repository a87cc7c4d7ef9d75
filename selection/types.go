package selection

import (
	"runtime"
	"strings"

	"github.com/albertocavalcante/go-selectable/label"
)

// Policy configures candidate selection.
type Policy struct {
	// Arch is the system architecture.
	Arch label.Arch

	// AllowDowngrade lets update candidates have a lower edition than the
	// installed object.
	AllowDowngrade bool

	// AllowVendorChange lets update candidates come from a vendor that is not
	// equivalent to the installed object's vendor.
	AllowVendorChange bool

	// AllowArchChange lets update candidates have a different arch.
	AllowArchChange bool

	// VendorClasses groups vendor prefixes that are treated as the same
	// vendor. Matching is case-insensitive on the prefix.
	VendorClasses [][]string
}

// goArchToRPM maps GOARCH values to the arch names used by package objects.
var goArchToRPM = map[string]string{
	"amd64":   "x86_64",
	"386":     "i686",
	"arm64":   "aarch64",
	"arm":     "armv7hl",
	"ppc64le": "ppc64le",
	"ppc64":   "ppc64",
	"s390x":   "s390x",
	"riscv64": "riscv64",
}

// HostArch returns the arch of the running system.
func HostArch() label.Arch {
	if name, ok := goArchToRPM[runtime.GOARCH]; ok {
		return label.MustArch(name)
	}
	return label.MustArch("x86_64")
}

// DefaultPolicy returns a policy for the host arch that forbids downgrades,
// vendor changes and arch changes.
func DefaultPolicy() Policy {
	return Policy{Arch: HostArch()}
}

// Validate checks the policy for logical consistency.
func (p Policy) Validate() error {
	if p.Arch.IsEmpty() {
		return &PolicyError{Code: "NO_ARCH", Message: "policy needs a system arch"}
	}
	if p.Arch.IsNoarch() {
		return &PolicyError{Code: "NOARCH_SYSTEM", Message: "system arch cannot be noarch"}
	}
	for _, class := range p.VendorClasses {
		if len(class) < 2 {
			return &PolicyError{Code: "VENDOR_CLASS", Message: "vendor class needs at least two vendors"}
		}
		for _, v := range class {
			if strings.TrimSpace(v) == "" {
				return &PolicyError{Code: "VENDOR_CLASS", Message: "vendor class contains an empty vendor"}
			}
		}
	}
	return nil
}

// VendorEquivalent reports whether vendors a and b are the same vendor
// under the policy.
func (p Policy) VendorEquivalent(a, b string) bool {
	a, b = strings.ToLower(a), strings.ToLower(b)
	if a == b {
		return true
	}
	for _, class := range p.VendorClasses {
		if matchesClass(class, a) && matchesClass(class, b) {
			return true
		}
	}
	return false
}

func matchesClass(class []string, vendor string) bool {
	for _, prefix := range class {
		if strings.HasPrefix(vendor, strings.ToLower(prefix)) {
			return true
		}
	}
	return false
}

// PolicyError represents an invalid policy.
type PolicyError struct {
	Code    string
	Message string
}

func (e *PolicyError) Error() string {
	return e.Message
}

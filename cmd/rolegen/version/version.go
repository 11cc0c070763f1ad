//
//  Copyright © Manetu Inc. All rights reserved.
//

package version

// Version is the release version (e.g., v1.0.0) or git ref for dev builds,
// set at build time via -ldflags "-X .../version.Version=v1.0.0".
var Version = "dev"

// GetVersion returns the current version string
func GetVersion() string {
	return Version
}

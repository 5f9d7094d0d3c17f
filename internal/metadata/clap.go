package metadata

import (
	"encoding/json"
	"os"
	"path/filepath"

	"plugvault/internal/logging"
	"plugvault/internal/manufacturer"
)

// clapDescriptor is the JSON sidecar some CLAP bundles ship alongside the
// binary. Only the fields the catalog cares about are decoded.
type clapDescriptor struct {
	Name         string `json:"name"`
	Manufacturer string `json:"manufacturer"`
	Version      string `json:"version"`
}

var clapSidecarSubPaths = []string{
	filepath.Join("Contents", "clap.json"),
	"clap.json",
}

// extractCLAP reads the sidecar descriptor directly; there is no fallback
// chain for CLAP.
func (e *Extractor) extractCLAP(bundlePath string) Info {
	for _, sub := range clapSidecarSubPaths {
		sidecarPath := filepath.Join(bundlePath, sub)
		data, err := os.ReadFile(sidecarPath)
		if err != nil {
			continue
		}
		var desc clapDescriptor
		if err := json.Unmarshal(data, &desc); err != nil {
			e.logger.Debug("malformed clap sidecar",
				logging.String("path", sidecarPath),
				logging.Error(err),
			)
			continue
		}
		return Info{
			Manufacturer: manufacturer.Normalize(desc.Manufacturer),
			Version:      desc.Version,
		}
	}
	return Info{}
}

package installer

import (
	"github.com/yabridge/yabridgectl/internal/config"
	"github.com/yabridge/yabridgectl/internal/scanner"
)

// SyncResult summarizes the install work done for one directory.
type SyncResult struct {
	Directory string
	Installed int
	Replaced  int
	Failed    []string
	Err       error
}

// SyncDirectory installs the bridge library next to every plugin found
// under dir using the configured method. Companions that already match the
// intended method are left alone; mismatched or broken ones are replaced.
func SyncDirectory(dir, libraryPath string, method config.Method) SyncResult {
	result := SyncResult{Directory: dir}

	seq, err := scanner.Scan(dir)
	if err != nil {
		result.Err = err
		return result
	}

	wanted := KindRegular
	if method == config.MethodSymlink {
		wanted = KindSymlink
	}

	for plugin := range seq {
		artifact, err := Classify(plugin)
		if err == nil && artifact != nil && artifact.Kind == wanted {
			continue
		}

		if installErr := Install(plugin, libraryPath, method); installErr != nil {
			result.Failed = append(result.Failed, plugin)
			continue
		}

		if artifact != nil || err != nil {
			result.Replaced++
		} else {
			result.Installed++
		}
	}

	return result
}

// SyncAll runs SyncDirectory over every registered directory, isolating
// per-directory failures the same way status composition does.
func SyncAll(cfg *config.Config, libraryPath string) []SyncResult {
	dirs := cfg.Directories()
	results := make([]SyncResult, 0, len(dirs))

	for _, dir := range dirs {
		results = append(results, SyncDirectory(dir, libraryPath, cfg.Method))
	}

	return results
}

// Package status builds the per-directory installation report shown by
// `yabridgectl status`.
package status

import (
	"iter"

	"github.com/yabridge/yabridgectl/internal/config"
	"github.com/yabridge/yabridgectl/internal/installer"
	"github.com/yabridge/yabridgectl/internal/logger"
	"github.com/yabridge/yabridgectl/internal/scanner"
)

// PluginStatus is the observed installation state of one plugin file.
// Artifact is nil when nothing is installed; Err is set when the companion
// entry could not be inspected, which renders as "unknown".
type PluginStatus struct {
	Path     string
	Artifact *installer.Artifact
	Err      error
}

// DirectoryReport holds the scan outcome for one registered directory.
// When Err is set the directory could not be scanned at all and Plugins is
// empty; other directories are unaffected.
type DirectoryReport struct {
	Directory string
	Plugins   []PluginStatus
	Err       error
}

// Reporter composes the configuration's directory set with the scanner and
// the artifact classifier. Both collaborators are injectable for tests.
type Reporter struct {
	scan     func(string) (iter.Seq[string], error)
	classify func(string) (*installer.Artifact, error)
	log      *logger.Logger
}

// NewReporter creates a Reporter using the real filesystem collaborators.
func NewReporter(log *logger.Logger) *Reporter {
	return &Reporter{
		scan:     scanner.Scan,
		classify: installer.Classify,
		log:      log,
	}
}

// NewReporterWith creates a Reporter with explicit collaborators.
func NewReporterWith(
	scan func(string) (iter.Seq[string], error),
	classify func(string) (*installer.Artifact, error),
	log *logger.Logger,
) *Reporter {
	return &Reporter{scan: scan, classify: classify, log: log}
}

// Compose produces one report per registered directory, in canonical
// order. A directory that fails to scan occupies its slot with the error
// and scanning continues with the rest; a plugin whose companion cannot be
// inspected keeps its error at file granularity.
func (r *Reporter) Compose(cfg *config.Config) []DirectoryReport {
	dirs := cfg.Directories()
	reports := make([]DirectoryReport, 0, len(dirs))

	for _, dir := range dirs {
		reports = append(reports, r.composeDirectory(dir))
	}

	return reports
}

func (r *Reporter) composeDirectory(dir string) DirectoryReport {
	report := DirectoryReport{Directory: dir}

	seq, err := r.scan(dir)
	if err != nil {
		r.log.WithFields(map[string]any{"directory": dir}).Error(err, "directory scan failed")
		report.Err = err
		return report
	}

	for plugin := range seq {
		artifact, err := r.classify(plugin)
		if err != nil {
			r.log.WithFields(map[string]any{"plugin": plugin}).Warn("companion artifact could not be inspected")
			report.Plugins = append(report.Plugins, PluginStatus{Path: plugin, Err: err})
			continue
		}
		report.Plugins = append(report.Plugins, PluginStatus{Path: plugin, Artifact: artifact})
	}

	r.log.WithFields(map[string]any{"directory": dir, "plugins": len(report.Plugins)}).Debug("directory scanned")

	return report
}

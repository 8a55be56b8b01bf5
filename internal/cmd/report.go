package cmd

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/velalang/velac/internal/build"
)

// Report is the YAML session report written by build --report.
type Report struct {
	Project  string          `yaml:"project"`
	Target   string          `yaml:"target"`
	Elapsed  string          `yaml:"elapsed"`
	Modules  []ReportModule  `yaml:"modules"`
	Warnings []ReportWarning `yaml:"warnings,omitempty"`
}

// ReportModule is one module's outcome in the report.
type ReportModule struct {
	Name     string `yaml:"name"`
	Status   string `yaml:"status"`
	Duration string `yaml:"duration"`
	Error    string `yaml:"error,omitempty"`
}

// ReportWarning is one accumulated warning in the report.
type ReportWarning struct {
	Module  string `yaml:"module"`
	Message string `yaml:"message"`
}

// NewReport converts a session result into its report form.
func NewReport(project, target string, res *build.SessionResult, elapsed time.Duration) *Report {
	rep := &Report{
		Project: project,
		Target:  target,
		Elapsed: elapsed.Round(time.Millisecond).String(),
	}
	for _, m := range res.Modules {
		rm := ReportModule{
			Name:     m.Name.String(),
			Status:   string(m.Status),
			Duration: m.Duration.Round(time.Millisecond).String(),
		}
		if m.Err != nil {
			rm.Error = m.Err.Error()
		}
		rep.Modules = append(rep.Modules, rm)
	}
	for _, w := range res.Warnings {
		rep.Warnings = append(rep.Warnings, ReportWarning{
			Module:  w.Module.String(),
			Message: w.Message,
		})
	}
	return rep
}

// writeReport serializes the session result to path as YAML.
func writeReport(path, project, target string, res *build.SessionResult, elapsed time.Duration) error {
	blob, err := yaml.Marshal(NewReport(project, target, res, elapsed))
	if err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	return os.WriteFile(path, blob, 0o644)
}

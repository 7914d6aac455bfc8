package logging

// Field name constants keep structured log keys consistent across packages.
const (
	FieldError      = "error"
	FieldPath       = "path"
	FieldPaths      = "paths"
	FieldConfig     = "config"
	FieldWorkingDir = "working_dir"

	FieldFix    = "fix"
	FieldDryRun = "dry_run"
	FieldFormat = "format"
	FieldJobs   = "jobs"

	FieldFilesDiscovered = "files_discovered"
	FieldFilesProcessed  = "files_processed"
	FieldFilesFixed      = "files_fixed"
	FieldViolations      = "violations"

	FieldRule    = "rule"
	FieldVersion = "version"
)

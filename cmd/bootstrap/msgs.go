package main

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Prepare a Python application project for development and packaging"
	MsgIgnoreShort     = "Add the default entries to the ignore file"
	MsgPlanShort       = "Show the steps a bootstrap run would execute"
	MsgCIShort         = "Write the CI workflow definition"
	MsgConfigShort     = "Print the effective configuration"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"
	MsgManShort        = "Generate man pages"

	// Status messages
	MsgDryRunNotice      = "\nDRY RUN MODE - No changes were made"
	MsgPackaged          = "\nPackaged %s into %s\n"
	MsgPackagingDisabled = "\nAll steps completed; packaging is disabled"
	MsgIgnoreUpToDate    = "%s already contains every entry\n"
	MsgIgnoreAdded       = "Added %d entries to %s:\n"
	MsgIgnoreWouldAdd    = "Would add %d entries to %s:\n"
	MsgIgnoreItem        = "  %s\n"
	MsgWorkflowWritten   = "Wrote %s\n"
	MsgWorkflowDryRun    = "Would write %s\n"
	MsgConfigWritten     = "Wrote %s\n"
	MsgManWritten        = "Wrote man pages to %s\n"

	// Error messages
	MsgErrConfigExists = "%s already exists"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun  = "Preview the steps without executing them"
	MsgFlagDir     = "Project root directory"
	MsgFlagConfig  = "Config file to use instead of the project's .bootstrap.toml"
	MsgFlagNoColor = "Disable colored output"
	MsgFlagFormat  = "Output format: auto, term or text"
	MsgFlagStyles  = "YAML file overriding the output styles"
	MsgFlagStdout  = "Print the workflow instead of writing it"
	MsgFlagInit    = "Write a commented default config to the project root"
	MsgFlagManDir  = "Write one man page per command into this directory"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/root-example.txt
	msgRootExampleRaw string
	MsgRootExample    = strings.TrimRight(msgRootExampleRaw, "\n")

	//go:embed msgs/ci-long.txt
	msgCILongRaw string
	MsgCILong    = strings.TrimSpace(msgCILongRaw)

	//go:embed msgs/config-long.txt
	msgConfigLongRaw string
	MsgConfigLong    = strings.TrimSpace(msgConfigLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)

package flatlint

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Compose flat lint configurations"
	MsgComposeShort    = "Compose the configuration for the workspace"
	MsgOverrideShort   = "Recompose a tagged configuration with changed options"
	MsgRootDirShort    = "Print the workspace root"
	MsgListShort       = "List the fragments of the composed configuration"
	MsgInspectShort    = "Show which fragments apply to a file"
	MsgExplainShort    = "Describe the composed configuration"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Status messages
	MsgWrote         = "Wrote %s (%d fragments)\n"
	MsgWatching      = "Watching %s, press Ctrl+C to stop\n"
	MsgIgnoredFormat = "%s is ignored by %s\n"
	MsgNoMatches     = "No fragment applies to %s\n"
	MsgMatchFormat   = "  %d. %s (%s)\n"
	MsgRulesHeader   = "\nRules in effect:"
	MsgRuleFormat    = "  %s: %v\n"
	MsgVersionFormat = "flatlint version %s\n  commit: %s\n  built:  %s\n"

	// Error messages
	MsgErrLoadConfig  = "failed to load configuration: %w"
	MsgErrCompose     = "failed to compose configuration: %w"
	MsgErrReadTagged  = "failed to read tagged configuration: %w"
	MsgErrWriteOutput = "failed to write output: %w"

	// Flag descriptions
	MsgFlagVerbose   = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDir       = "Directory to start the workspace lookup from"
	MsgFlagSet       = "Set an option, e.g. --set vitest=false (repeatable)"
	MsgFlagUnset     = "Clear an option so it is detected again (repeatable)"
	MsgFlagFormat    = "Output format: json, yaml or toml"
	MsgFlagOut       = "Write to this file instead of stdout"
	MsgFlagWorkspace = "Tag the result so it can be overridden later"
	MsgFlagProject   = "Extend the workspace configuration with this project"
	MsgFlagWatch     = "Recompose whenever a relevant file changes"
	MsgFlagStyle     = "Glamour style for rendering (auto, dark, light, notty)"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/compose-long.txt
	msgComposeLongRaw string
	MsgComposeLong    = strings.TrimSpace(msgComposeLongRaw)

	//go:embed msgs/compose-example.txt
	msgComposeExampleRaw string
	MsgComposeExample    = strings.TrimRight(msgComposeExampleRaw, "\n")

	//go:embed msgs/override-long.txt
	msgOverrideLongRaw string
	MsgOverrideLong    = strings.TrimSpace(msgOverrideLongRaw)

	//go:embed msgs/override-example.txt
	msgOverrideExampleRaw string
	MsgOverrideExample    = strings.TrimRight(msgOverrideExampleRaw, "\n")

	//go:embed msgs/inspect-long.txt
	msgInspectLongRaw string
	MsgInspectLong    = strings.TrimSpace(msgInspectLongRaw)

	//go:embed msgs/explain-long.txt
	msgExplainLongRaw string
	MsgExplainLong    = strings.TrimSpace(msgExplainLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)

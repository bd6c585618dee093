package commands

// Message constants
const (
	MsgRootShort = "Assign line-protocol modes to telephony spans"
	MsgRootLong  = `spanline assigns a line-protocol mode (E1, T1 or J1) to each hardware span
exposed by the telephony driver, before the spans are activated.

Assignment is driven by a rule file mapping device identifiers to span/type
pairs. Rules are scanned in file order and the last matching rule wins, so
a wildcard-all rule followed by specific overrides is the usual layout:

  *                 *:T1
  usb:X1234567      [34]:E1`

	MsgFlagVerbose  = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun   = "Preview assignments without writing them"
	MsgFlagRules    = "Rule file to apply (default from configuration)"
	MsgFlagKey      = "Identifier field for dumpconfig output: hwid, location or path"
	MsgFlagLineMode = "Force the wildcard line type dumpconfig generates: E1, T1 or J1"
	MsgFlagNoColor  = "Disable colored output"

	MsgListShort   = "List current line types of all eligible spans"
	MsgListExample = `  # List every span
  spanline list

  # List spans of one device
  spanline list xbus-00`

	MsgSetShort = "Apply the rule file to all eligible spans"
	MsgSetLong  = `Resolve each eligible span against the rule file and write the resolved
line type to the device. Spans no rule matches are left untouched. A span
whose write is rejected (for example because it is already active) does not
stop the run; the failure is reported in the summary.`
	MsgSetExample = `  # Apply the configured rule file
  spanline set

  # Preview without writing
  spanline set --dry-run

  # Apply an alternate rule file to one device
  spanline set --rules ./span-types.conf xbus-01`

	MsgCompareShort = "Report drift between the rule file and live state"
	MsgCompareLong  = `Resolve each eligible span against the rule file and compare the result
with the span's live line type, without writing anything. Exits with code 2
when drift is found and 0 when the hardware matches configured intent.`

	MsgDumpConfigShort = "Render current hardware state as a rule file"
	MsgDumpConfigLong  = `Generate a span-types rule file from the current line types. When every
eligible span shares one type the output is a single wildcard rule with the
device-specific lines kept as comments; otherwise each device's lines stay
active.`
	MsgDumpConfigExample = `  # Regenerate the rule file from live state
  spanline dumpconfig > /etc/spanline/span-types.conf

  # Render locations instead of hardware ids
  spanline dumpconfig --key location`

	MsgConfigShort     = "Manage spanline's own configuration"
	MsgConfigInitShort = "Print or write the default spanline.toml"
)

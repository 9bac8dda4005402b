package cli

var (
	Version   = ""
	CommitSHA = ""
)

// Globals defines global flags available to all commands.
type Globals struct {
	Telemetry bool `help:"Show timing telemetry for operations."`
	Debug     bool `help:"Enable debug logging of the reader."`
}

type Commands struct {
	Globals

	Print    PrintCmd    `cmd:"" help:"Print transactions in canonical journal form."`
	Accounts AccountsCmd `cmd:"" help:"List the account hierarchy."`
	Balance  BalanceCmd  `cmd:"" help:"Show account balances rolled up through the account tree."`
	Budget   BudgetCmd   `cmd:"" help:"Show periodic transaction templates."`
	Stats    StatsCmd    `cmd:"" help:"Show statistics about the journal."`
}

package main

// User-visible message constants for the command layer.
const (
	MsgRootShort = "Launch the newest installed AppImage of a wrapped application"
	MsgRootLong  = `applaunch wraps an AppImage-packaged application. On each invocation it
finds the newest installed image, keeps a stable symlink pointing at it,
refuses to start a second instance, rotates the application's log files,
and starts the application detached in the background.

Any arguments are forwarded verbatim to the wrapped application; applaunch
itself only recognizes --help/-h and --version/-v.`

	MsgLaunchShort = "Resolve the newest image and start it in the background"
	MsgLaunchLong  = `Runs the full launch sequence: resolve the newest image matching the
configured pattern, point the stable alias at it, check for a running
instance, rotate oversized log files, and spawn the application detached
with output appended to the managed logs.

All arguments after the command name are forwarded verbatim.`

	MsgStatusShort = "Report alias, newest image, running instance and log sizes"
	MsgStatusLong  = `Reports the current state without changing anything: where the stable
alias points, the newest installed image, whether an instance is running,
and the size of the managed log files.`

	MsgGenConfigShort = "Print or install the default configuration"
	MsgGenConfigLong  = `Prints the default configuration file. With --write, installs it at the
user config path (never overwriting an existing file). With --effective,
renders the fully resolved configuration instead of the defaults.`

	MsgVersionShort = "Print version information"

	MsgAlreadyRunning = "%s is already running (pid %d). Exiting.\n"
	MsgAliasUpdated   = "Updated alias %s -> %s\n"
	MsgStarted        = "%s started with pid %d. Logs:\n"
	MsgLogLocation    = "  %s\n"
)

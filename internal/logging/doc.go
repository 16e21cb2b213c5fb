// Package logger provides leveled console logging for devops CLI commands.
//
// Logging behavior is controlled by two flags:
//
//   - --verbose: Shows info and warning messages
//   - --debug: Shows all messages including debug details
//
// Without flags, only user-facing warnings and errors are shown.
//
// # Log Methods
//
//	Logger.Infof()           // Shown with --verbose or --debug
//	Logger.Debugf()          // Shown only with --debug
//	Logger.Warnf()           // Shown with --verbose or --debug
//	Logger.WarnfUser()       // Always shown (user-facing warnings)
//	Logger.Errorf()          // Always shown
//	Logger.ErrorfAndReturn() // Always shown, returns the error for RunE
//
// Commands create a logger in their PersistentPreRun from the flag values
// and pass it down to internal functions that need it.
package logger

// Package workflows implements the operations behind the devops commands.
//
// Each operation follows the same shape: an Options struct, a Result
// struct, and a function taking (context.Context, Options) and returning
// (*Result, error). Command handlers stay thin; they parse flags, call a
// workflow, and render the result.
package workflows

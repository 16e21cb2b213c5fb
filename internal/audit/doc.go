// Package audit records every mutating cloud operation as a JSON Lines
// entry under the user config directory, so an operator can answer "what
// did I provision and when" without trawling cloud consoles. Secret values
// are never written, only names.
package audit

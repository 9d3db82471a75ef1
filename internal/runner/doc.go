// Package runner builds one exercise from examples/ and runs it, forwarding
// what the exercise prints.
//
// The steps form a railway over either.Either: check the name, compile with
// `go build`, execute the artifact. The first failing step is logged and the
// rest are skipped. Directories and artifact retention are configured through
// context options.
package runner

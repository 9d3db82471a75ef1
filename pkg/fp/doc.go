// Package fp contains the composition operator used by every exercise: Pipe
// threads a value through unary functions left to right.
//
// Highlights:
// - Pipe..Pipe9: statically typed pipelines of one to nine stages
// - PipeAll: fold over any number of same-typed stages
// - Flow: pipeline assembled at run time, typing loosened to any at the stage boundary
// - Compose/Identity: building blocks for stages
//
// Wrapped values (either.Either, option.Option, task.Task) are threaded through
// Pipe with the point-free MapF/ChainF adapters of their packages. Pipe itself
// never inspects the values it passes along.
package fp

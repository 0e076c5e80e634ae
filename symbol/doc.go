// Package symbol implements the runtime's interned symbol table.
//
// This package contains:
//   - Scope-tagged symbol IDs and their packed integer form
//   - Identifier classification (local, global, ivar, cvar, const, junk)
//   - The process-wide intern table and registry bootstrap
//   - Literal rendering for inspect-style output
//   - CBOR snapshot encoding for symbol tables
package symbol

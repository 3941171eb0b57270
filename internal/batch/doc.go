// Package batch drives one single-pass conversion run: scan the source
// directory into role sets, repack each set sequentially, write the packed
// maps in every configured format, and relocate them into the final
// directory. A file lock on the output directory keeps concurrent runs from
// interleaving writes and moves, and every run carries a short correlation
// ID on its log lines.
//
// Failure semantics follow the batch taxonomy: an empty role list or bad
// configuration aborts before any set is processed, while decode and
// dimension failures are logged against their set and the remaining sets
// still convert.
package batch

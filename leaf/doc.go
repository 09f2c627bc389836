// Package leaf decodes CPUID register frames into human readable facts.
//
// A State carries the facts discovered during one run (vendor, hypervisor,
// signature, processor name) from decoder to decoder. A Table maps leaf
// numbers to the decoders for that leaf. State.Run walks the standard,
// hypervisor and extended leaf ranges in ascending order, invoking each
// leaf that has an entry in the table and dispatching the frame to every
// handler registered for it whose applicability predicate holds.
//
// Two tables are provided: DecodeTable, which prints decoded text, and
// DumpTable, which prints raw register lines.
package leaf

// Package pack executes a delivery plan: it copies every planned file into
// place and, optionally, verifies each copy against a content hash.
//
// Items are processed one at a time, in plan order. Every per-item problem
// becomes a finding and the run moves on to the next item; nothing is
// retried and nothing already copied is rolled back.
//
// Per item the executor moves through:
//
//	Pending -> Missing
//	        -> Hashing -> HashFailed
//	        -> DirError
//	        -> Existing -> Skipped
//	        -> Copying -> CopyFailed
//	                   -> Copied -> VerifyFailed | Verified
//
// Cancellation is cooperative. The cancel predicate is polled before each
// item; an in-flight copy or hash always completes.
//
// A copy that fails verification is counted as both copied and failed.
package pack

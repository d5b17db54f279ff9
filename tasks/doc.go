// Package tasks holds the in-memory task list: task lifecycle, id
// assignment, and the statistics and text reports derived from it.
//
// A Store is owned by a single caller. It does no locking and no I/O;
// callers that share a Store between goroutines must serialize access
// themselves. Every operation either succeeds completely or returns an
// error without changing the store.
package tasks

// Package people reconciles person records from several directory sources
// into one canonical normalized collection and tracks the asynchronous
// lifecycle of that collection per source.
//
// The package has three layers:
//
//   - identity: PersonInfo and Ref share one canonical key, so optimistic
//     actions carrying only {source, id} address the same entry as the full
//     record delivered on success.
//   - merge: MergeBatch and MergeItem fold canonical records and per-source
//     raw records into State, skipping raw records without an identity.
//   - state machine: Reducer applies Actions to State. Search responses are
//     gated by the live query, pending update and delete markers are kept
//     per occurrence.
//
// Store wraps a Reducer for callers that dispatch from several goroutines and
// want change hooks.
//
// Example:
//
//	store := people.NewStore()
//	store.Dispatch(ctx, people.SearchStart{Query: "ada"})
//	store.Dispatch(ctx, people.SearchComplete{Query: "ada", Data: found})
//	snapshot := store.Snapshot()
package people

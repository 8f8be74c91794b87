// Package bondbook provides the functions and types for maintaining a
// personal collection of premium bond numbers. It is designed to be
// local-first and auditable, ensuring users have full control over their
// own records.
//
// The core functionalities include:
//   - Ingestion: parsing free-form text into validated 7-digit bond
//     identifiers, expanding ranges with a safety cap, and classifying
//     malformed input into precise error categories.
//   - Collection Management: an ordered, duplicate-free collection with
//     insertion, deletion, bulk clear, and substring search.
//   - Data Persistence: encoding and decoding the collection to and from
//     a single key of a pluggable key-value store, rewritten in full after
//     every mutation.
//   - Notifications: transient, auto-expiring messages describing the
//     outcome of every user action.
//   - Draw Checking: fetching published draw results and intersecting the
//     winning numbers with the user's holdings.
//
// This package serves as the foundational logic for the `bb` command-line
// tool and its local web UI, ensuring that all operations are consistent
// and based on a single source of truth.
package bondbook

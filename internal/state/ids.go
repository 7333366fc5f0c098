package state

import "github.com/oklog/ulid/v2"

// Entity ID prefixes. IDs are "<prefix>-<ULID>": the prefix keeps blobs
// human-scannable, the ULID guarantees uniqueness and creation ordering.
const (
	prefixArea     = "area"
	prefixInbox    = "inbox"
	prefixProject  = "proj"
	prefixTask     = "task"
	prefixDeal     = "deal"
	prefixNote     = "note"
	prefixContent  = "content"
	prefixTxn      = "txn"
	prefixMeal     = "meal"
	prefixShop     = "shop"
	prefixEvent    = "event"
	prefixRoutine  = "routine"
	prefixGoal     = "goal"
	prefixWeekly   = "weekly"
	prefixActivity = "activity"
	prefixOutcome  = "outcome"
)

// newID generates a prefixed unique identifier. IDs are never reused.
func newID(prefix string) string {
	return prefix + "-" + ulid.Make().String()
}

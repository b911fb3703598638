package booking

// EffectStatus tags one side effect's outcome in a transition result.
type EffectStatus string

const (
	EffectCreated EffectStatus = "created"
	EffectDeleted EffectStatus = "deleted"
	EffectQueued  EffectStatus = "queued"
	EffectSkipped EffectStatus = "skipped"
	EffectFailed  EffectStatus = "failed"
)

// Side-effect map keys, one per attempted effect.
const (
	EffectGCalSync                 = "gcal_sync"
	EffectGCalDelete               = "gcal_delete"
	EffectConfirmationNotification = "confirmation_notification"
	EffectCancellationNotification = "cancellation_notification"
	EffectNoShowNotification       = "no_show_notification"
	EffectFollowUp                 = "follow_up"
)

// EffectResult is the structured outcome of a single transition side effect.
// Failures are recorded here, never propagated: the committed status is the
// authoritative state.
type EffectResult struct {
	Status  EffectStatus `json:"status"`
	Reason  string       `json:"reason,omitempty"`
	EventID string       `json:"event_id,omitempty"`
}

// SideEffects aggregates per-effect outcomes for one transition.
type SideEffects map[string]EffectResult

func EffectOK(status EffectStatus) EffectResult {
	return EffectResult{Status: status}
}

func EffectSkippedWith(reason string) EffectResult {
	return EffectResult{Status: EffectSkipped, Reason: reason}
}

func EffectFailedWith(err error) EffectResult {
	return EffectResult{Status: EffectFailed, Reason: err.Error()}
}

package service

// SyncState is the step a client synchronization attempt is in.
type SyncState int32

const (
	SyncStateIdle SyncState = iota
	SyncStateCollectingLocal
	SyncStateTransmitting
	SyncStateAwaitingResponse
	SyncStateApplyingServerChanges
	SyncStateAdvancingCursor
)

func (s SyncState) String() string {
	switch s {
	case SyncStateIdle:
		return "idle"
	case SyncStateCollectingLocal:
		return "collecting_local"
	case SyncStateTransmitting:
		return "transmitting"
	case SyncStateAwaitingResponse:
		return "awaiting_response"
	case SyncStateApplyingServerChanges:
		return "applying_server_changes"
	case SyncStateAdvancingCursor:
		return "advancing_cursor"
	default:
		return "unknown"
	}
}

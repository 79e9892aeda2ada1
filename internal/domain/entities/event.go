package entities

// Event types published while files are processed.
const (
	EventFileLocated        = "file.located"
	EventPresenceClassified = "presence.classified"
	EventProbeFailed        = "presence.probe_failed"
	EventFileReverted       = "file.reverted"
	EventFileSkipped        = "file.skipped"
	EventFileFailed         = "file.failed"
	EventSnapshotTaken      = "snapshot.taken"
	EventSnapshotKept       = "snapshot.kept"
	EventCommitAmended      = "commit.amended"
	EventStashPushed        = "stash.pushed"
	EventStashEmpty         = "stash.empty"
)

package resources

// Snapshot states reported by EC2
const (
	SnapshotStatePending   = "pending"
	SnapshotStateCompleted = "completed"
	SnapshotStateError     = "error"
)

// SnapshotDriver abstracts the creation and removal of an EBS snapshot
//
//counterfeiter:generate . SnapshotDriver
type SnapshotDriver interface {
	Create(SnapshotDriverConfig) (Snapshot, error)
	Describe(Snapshot) (Snapshot, error)
	Delete(Snapshot) error
}

// Snapshot represents an EBS snapshot which can be used to register an AMI
type Snapshot struct {
	ID       string
	State    string
	Progress string
}

type SnapshotDriverConfig struct {
	VolumeID    string
	Description string
	Tags        map[string]string
}

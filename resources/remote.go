package resources

// RemoteExecutor runs a single command on a remote host
//
//counterfeiter:generate . RemoteExecutor
type RemoteExecutor interface {
	Execute(RemoteCommand) (RemoteOutput, error)
}

// ImageStreamer copies a local file into the standard input of a remote command
//
//counterfeiter:generate . ImageStreamer
type ImageStreamer interface {
	Stream(localPath string, target RemoteCommand) error
}

// RemoteCommand is executed as User on Host. A non-empty Prefix (for example
// "sudo") runs Command through it.
type RemoteCommand struct {
	Host    string
	KeyPath string
	User    string
	Prefix  string
	Command string
}

type RemoteOutput struct {
	Stdout     string
	Stderr     string
	ExitStatus int
}

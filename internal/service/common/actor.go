//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common

import (
	"fmt"
	"os"
	"os/user"

	pb "github.com/oshokin/wake-gate/internal/pb/v1"
)

// DetectActor identifies the person at this terminal for the server's audit fields.
// When the user database is unavailable (minimal containers) it falls back to $USER and $LOGNAME.
func DetectActor() (*pb.SystemActor, error) {
	hostname, err := os.Hostname()
	if err != nil {
		return nil, fmt.Errorf("hostname: %w", err)
	}

	username, err := currentUsername()
	if err != nil {
		return nil, err
	}

	return &pb.SystemActor{
		Hostname: hostname,
		Username: username,
	}, nil
}

// FormatActor renders an actor as user@host; a nil actor means the alarm timer acted on its own.
func FormatActor(actor *pb.SystemActor) string {
	if actor == nil {
		return "<timer>"
	}

	return actor.GetUsername() + "@" + actor.GetHostname()
}

func currentUsername() (string, error) {
	u, err := user.Current()
	if err == nil && u.Username != "" {
		return u.Username, nil
	}

	for _, key := range []string{"USER", "LOGNAME"} {
		if name := os.Getenv(key); name != "" {
			return name, nil
		}
	}

	if err == nil {
		err = errEmptyUsername
	}

	return "", fmt.Errorf("current user: %w", err)
}

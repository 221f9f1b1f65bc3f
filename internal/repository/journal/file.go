package journal

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"google.golang.org/protobuf/encoding/protojson"

	"github.com/oshokin/wake-gate/internal/config"
	domain "github.com/oshokin/wake-gate/internal/domain/alarm"
	pb "github.com/oshokin/wake-gate/internal/pb/v1"
)

// DefaultMaxSessions is the number of sessions kept on disk.
const DefaultMaxSessions = 500

// Repository defines persistence operations for the wake journal.
type Repository interface {
	Append(ctx context.Context, session *domain.Session) error
	List(ctx context.Context, limit int) ([]*domain.Session, error)
}

// FileRepository persists the journal to a JSON file on disk.
type FileRepository struct {
	// path is the filesystem location of the journal file.
	path string
	// maxSessions caps the number of stored sessions.
	maxSessions int
	// mu serializes read-modify-write cycles.
	mu sync.Mutex
}

// ErrNotFound is returned when the journal file does not exist yet.
var ErrNotFound = errors.New("journal not found")

// errSessionIsNotSet is returned when Append receives nil.
var errSessionIsNotSet = errors.New("session is not set")

// NewFileRepository creates a repository that reads/writes JSON at the provided path.
// A non-positive maxSessions selects DefaultMaxSessions.
func NewFileRepository(path string, maxSessions int) *FileRepository {
	if maxSessions <= 0 {
		maxSessions = DefaultMaxSessions
	}

	return &FileRepository{
		path:        filepath.Clean(path),
		maxSessions: maxSessions,
	}
}

// Append adds a session to the end of the journal.
func (r *FileRepository) Append(_ context.Context, session *domain.Session) error {
	if session == nil {
		return errSessionIsNotSet
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	journal, err := r.read()
	if err != nil && !errors.Is(err, ErrNotFound) {
		return err
	}

	if journal == nil {
		journal = new(pb.SessionJournal)
	}

	journal.Sessions = append(journal.Sessions, ToProto(session))
	if overflow := len(journal.Sessions) - r.maxSessions; overflow > 0 {
		journal.Sessions = journal.Sessions[overflow:]
	}

	return r.write(journal)
}

// List returns up to limit sessions, newest first. A non-positive limit returns all of them.
func (r *FileRepository) List(_ context.Context, limit int) ([]*domain.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	journal, err := r.read()
	if err != nil {
		return nil, err
	}

	stored := journal.GetSessions()
	result := make([]*domain.Session, 0, len(stored))

	for _, session := range slices.Backward(stored) {
		if limit > 0 && len(result) == limit {
			break
		}

		result = append(result, FromProto(session))
	}

	return result, nil
}

func (r *FileRepository) read() (*pb.SessionJournal, error) {
	contents, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotFound
		}

		return nil, fmt.Errorf("read journal file: %w", err)
	}

	var journal pb.SessionJournal
	if err = protojson.Unmarshal(contents, &journal); err != nil {
		return nil, fmt.Errorf("decode journal file: %w", err)
	}

	return &journal, nil
}

// write replaces the journal through a temporary file so a crash never leaves it half written.
func (r *FileRepository) write(journal *pb.SessionJournal) error {
	marshalOptions := protojson.MarshalOptions{
		Multiline: true,
	}

	data, err := marshalOptions.Marshal(journal)
	if err != nil {
		return fmt.Errorf("encode journal: %w", err)
	}

	tmp := r.path + ".tmp"
	if err = os.WriteFile(tmp, data, config.DefaultFilePermissions); err != nil {
		return fmt.Errorf("write journal file: %w", err)
	}

	if err = os.Rename(tmp, r.path); err != nil {
		return fmt.Errorf("replace journal file: %w", err)
	}

	return nil
}

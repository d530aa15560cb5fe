package dataset

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/bluele/gcache"
	"github.com/fsnotify/fsnotify"

	"github.com/taxiscope/taxi-backend-go/internal/models"
)

// Snapshot holds one immutable build of the clean dataset. It is shared
// across request goroutines; nothing may mutate it after the build.
type Snapshot struct {
	Trips     []models.Trip
	Zones     []models.Zone
	ZoneIndex map[int64]models.Zone
	Domain    models.FilterDomain

	RawCount  int
	BuiltAt   time.Time
	BuildTime time.Duration
}

// BuildObserver receives store lifecycle events
type BuildObserver interface {
	SnapshotBuilt(rawRows, cleanRows int, d time.Duration)
	SnapshotInvalidated()
}

// fileKey identifies one input file version
type fileKey struct {
	path    string
	size    int64
	modTime int64 // UnixNano
}

// fingerprint identifies the input file pair a snapshot was built from
type fingerprint struct {
	trip fileKey
	zone fileKey
}

// Store builds and memoizes clean dataset snapshots keyed by the identity
// of the input files. A snapshot is rebuilt only when a file's path, size
// or modification time changes; repeated reads of the same inputs return
// the memoized snapshot.
type Store struct {
	tripPath string
	zonePath string

	mu    sync.Mutex
	cache gcache.Cache

	watcher  *fsnotify.Watcher
	observer BuildObserver
}

// NewStore creates a dataset store for the given input files. The cache
// holds up to cacheSize snapshots so a rolled-back file does not force a
// rebuild. observer may be nil.
func NewStore(tripPath, zonePath string, cacheSize int, observer BuildObserver) *Store {
	if cacheSize <= 0 {
		cacheSize = 4
	}
	return &Store{
		tripPath: tripPath,
		zonePath: zonePath,
		cache:    gcache.New(cacheSize).LRU().Build(),
		observer: observer,
	}
}

// Snapshot returns the clean dataset for the current input files,
// building it on first access and after every input change.
func (s *Store) Snapshot() (*Snapshot, error) {
	fp, err := s.fingerprint()
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if v, err := s.cache.Get(fp); err == nil {
		return v.(*Snapshot), nil
	}

	snap, err := s.build()
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(fp, snap); err != nil {
		log.Printf("[Store] cache set failed: %v", err)
	}
	return snap, nil
}

// Invalidate drops every memoized snapshot
func (s *Store) Invalidate() {
	s.mu.Lock()
	s.cache.Purge()
	s.mu.Unlock()

	if s.observer != nil {
		s.observer.SnapshotInvalidated()
	}
}

// Watch invalidates memoized snapshots when an input file changes on
// disk. The parent directories are watched because editors and atomic
// writers replace files instead of writing them in place.
func (s *Store) Watch() error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}

	dirs := map[string]bool{
		filepath.Dir(s.tripPath): true,
		filepath.Dir(s.zonePath): true,
	}
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			watcher.Close()
			return fmt.Errorf("watch %s: %w", dir, err)
		}
	}

	s.watcher = watcher
	go s.watchLoop()
	return nil
}

func (s *Store) watchLoop() {
	watched := map[string]bool{
		filepath.Clean(s.tripPath): true,
		filepath.Clean(s.zonePath): true,
	}
	const changeOps = fsnotify.Write | fsnotify.Create | fsnotify.Remove | fsnotify.Rename

	for {
		select {
		case event, ok := <-s.watcher.Events:
			if !ok {
				return
			}
			if !watched[filepath.Clean(event.Name)] {
				continue
			}
			if event.Op&changeOps == 0 {
				continue
			}
			log.Printf("[Store] input changed (%s), invalidating snapshots", event)
			s.Invalidate()
		case err, ok := <-s.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("[Store] watcher error: %v", err)
		}
	}
}

// Close stops the file watcher if one is running
func (s *Store) Close() error {
	if s.watcher != nil {
		return s.watcher.Close()
	}
	return nil
}

// TripPath returns the configured trip file path
func (s *Store) TripPath() string { return s.tripPath }

// ZonePath returns the configured zone lookup path
func (s *Store) ZonePath() string { return s.zonePath }

func (s *Store) fingerprint() (fingerprint, error) {
	trip, err := fileKeyFor(s.tripPath)
	if err != nil {
		return fingerprint{}, err
	}
	zone, err := fileKeyFor(s.zonePath)
	if err != nil {
		return fingerprint{}, err
	}
	return fingerprint{trip: trip, zone: zone}, nil
}

func fileKeyFor(path string) (fileKey, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fileKey{}, &DatasetNotFoundError{Path: path}
		}
		return fileKey{}, fmt.Errorf("stat %s: %w", path, err)
	}
	return fileKey{
		path:    path,
		size:    info.Size(),
		modTime: info.ModTime().UnixNano(),
	}, nil
}

// build runs the full pipeline: load, derive, sanitize, zone lookup
func (s *Store) build() (*Snapshot, error) {
	start := time.Now()

	raw, err := ReadTripFile(s.tripPath)
	if err != nil {
		return nil, err
	}
	zones, err := ReadZoneFile(s.zonePath)
	if err != nil {
		return nil, err
	}

	trips := Sanitize(Derive(raw))

	snap := &Snapshot{
		Trips:     trips,
		Zones:     zones,
		ZoneIndex: ZoneIndex(zones),
		Domain:    filterDomain(trips),
		RawCount:  len(raw),
		BuiltAt:   time.Now(),
		BuildTime: time.Since(start),
	}

	log.Printf("[Store] snapshot built: %d raw rows, %d clean rows, %d zones in %v",
		len(raw), len(trips), len(zones), snap.BuildTime)
	if s.observer != nil {
		s.observer.SnapshotBuilt(len(raw), len(trips), snap.BuildTime)
	}
	return snap, nil
}

// filterDomain derives the selectable filter ranges from the clean data.
// YYYY-MM-DD strings order lexicographically, so min and max compare as
// calendar dates.
func filterDomain(trips []models.Trip) models.FilterDomain {
	d := models.FilterDomain{MinHour: 0, MaxHour: 23}

	names := make(map[string]bool)
	for i, t := range trips {
		if i == 0 || t.PickupDate < d.MinDate {
			d.MinDate = t.PickupDate
		}
		if t.PickupDate > d.MaxDate {
			d.MaxDate = t.PickupDate
		}
		names[t.PaymentName] = true
	}

	d.Payments = make([]string, 0, len(names))
	for name := range names {
		d.Payments = append(d.Payments, name)
	}
	sort.Strings(d.Payments)
	return d
}

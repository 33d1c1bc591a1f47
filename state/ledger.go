package state

import (
	"bytes"
	"encoding/binary"
	"encoding/gob"
	"fmt"
	"os"
	"path/filepath"

	"go.etcd.io/bbolt"

	"github.com/skillmarket/libskillmarket-go/codec"
)

var (
	bucketMeta     = []byte("meta")
	bucketListings = []byte("listings")
	bucketEvents   = []byte("events")
)

// keyNextListingID holds the counter in the meta bucket as a 32-byte
// big-endian integer. Absent means zero.
var keyNextListingID = []byte("next_listing_id")

// Ledger wraps a bbolt database holding listings, the id counter, and the
// event log.
type Ledger struct {
	db *bbolt.DB
}

// OpenLedger opens or creates the bbolt database at dbPath.
// The parent directory is created if it does not exist.
func OpenLedger(dbPath string) (*Ledger, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0700); err != nil {
		return nil, fmt.Errorf("state: create directory: %w", err)
	}
	db, err := bbolt.Open(dbPath, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("state: open bolt db: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		for _, name := range [][]byte{bucketMeta, bucketListings, bucketEvents} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return fmt.Errorf("ledger: create bucket %q: %w", name, err)
			}
		}
		return nil
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("state: create buckets: %w", err)
	}

	return &Ledger{db: db}, nil
}

// Close closes the underlying database.
func (l *Ledger) Close() error { return l.db.Close() }

// Update runs fn inside one read-write transaction. If fn returns an error
// every write made through the Registry is discarded; otherwise all writes
// commit together. This is the invocation atomicity boundary.
func (l *Ledger) Update(fn func(*Registry) error) error {
	return l.db.Update(func(tx *bbolt.Tx) error {
		return fn(&Registry{tx: tx})
	})
}

// View runs fn inside a read-only transaction.
func (l *Ledger) View(fn func(*Registry) error) error {
	return l.db.View(func(tx *bbolt.Tx) error {
		return fn(&Registry{tx: tx})
	})
}

// Registry is a transaction-bound view over the stored listings, the id
// counter, and the event log. It is only valid for the duration of the
// Update/View call that produced it.
type Registry struct {
	tx *bbolt.Tx
}

// NextListingID returns the current value of the listing counter.
func (r *Registry) NextListingID() (codec.U256, error) {
	raw := r.tx.Bucket(bucketMeta).Get(keyNextListingID)
	if raw == nil {
		return codec.U256{}, nil
	}
	id, err := codec.U256FromBytes(raw)
	if err != nil {
		return codec.U256{}, fmt.Errorf("%w: counter: %w", ErrCorruptRecord, err)
	}
	return id, nil
}

// AllocateID returns the current counter value and stores counter+1.
// Ids are assigned sequentially from zero and never reused.
func (r *Registry) AllocateID() (codec.U256, error) {
	id, err := r.NextListingID()
	if err != nil {
		return codec.U256{}, err
	}
	next := id.Inc()
	if err := r.tx.Bucket(bucketMeta).Put(keyNextListingID, next.Bytes()); err != nil {
		return codec.U256{}, fmt.Errorf("state: store counter: %w", err)
	}
	return id, nil
}

// PutListing stores the full record for a freshly allocated id. It fails if
// a record already exists; a listing is written exactly once.
func (r *Registry) PutListing(id codec.U256, listing *Listing) error {
	if listing == nil {
		return ErrNilParam
	}
	b := r.tx.Bucket(bucketListings)
	if b.Get(id.Bytes()) != nil {
		return fmt.Errorf("%w: id %s", ErrListingExists, id)
	}
	data, err := encodeGob(listing)
	if err != nil {
		return fmt.Errorf("state: encode listing: %w", err)
	}
	if err := b.Put(id.Bytes(), data); err != nil {
		return fmt.Errorf("state: store listing: %w", err)
	}
	return nil
}

// GetListing returns the stored record for id and whether one exists.
// Absence is not an error; callers decide how missing ids surface.
func (r *Registry) GetListing(id codec.U256) (*Listing, bool, error) {
	raw := r.tx.Bucket(bucketListings).Get(id.Bytes())
	if raw == nil {
		return nil, false, nil
	}
	var listing Listing
	if err := decodeGob(raw, &listing); err != nil {
		return nil, false, fmt.Errorf("%w: listing %s: %w", ErrCorruptRecord, id, err)
	}
	return &listing, true, nil
}

// SetActive overwrites only the active flag of an existing record.
func (r *Registry) SetActive(id codec.U256, active bool) error {
	listing, found, err := r.GetListing(id)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("%w: id %s", ErrListingNotFound, id)
	}
	listing.Active = active
	data, err := encodeGob(listing)
	if err != nil {
		return fmt.Errorf("state: encode listing: %w", err)
	}
	if err := r.tx.Bucket(bucketListings).Put(id.Bytes(), data); err != nil {
		return fmt.Errorf("state: store listing: %w", err)
	}
	return nil
}

// AppendEvent assigns the next sequence number to the record and appends it
// to the event log. Events appended in a failed Update are discarded with
// the rest of the transaction.
func (r *Registry) AppendEvent(kind string, payload []byte) (*EventRecord, error) {
	b := r.tx.Bucket(bucketEvents)
	seq, err := b.NextSequence()
	if err != nil {
		return nil, fmt.Errorf("state: event sequence: %w", err)
	}
	rec := &EventRecord{Seq: seq, Kind: kind, Payload: payload}
	data, err := encodeGob(rec)
	if err != nil {
		return nil, fmt.Errorf("state: encode event: %w", err)
	}
	if err := b.Put(seqKey(seq), data); err != nil {
		return nil, fmt.Errorf("state: store event: %w", err)
	}
	return rec, nil
}

// EventsAfter returns all events with a sequence number greater than seq, in
// order. Pass 0 to read the full log.
func (r *Registry) EventsAfter(seq uint64) ([]*EventRecord, error) {
	var out []*EventRecord
	c := r.tx.Bucket(bucketEvents).Cursor()
	for k, v := c.Seek(seqKey(seq + 1)); k != nil; k, v = c.Next() {
		var rec EventRecord
		if err := decodeGob(v, &rec); err != nil {
			return nil, fmt.Errorf("%w: event: %w", ErrCorruptRecord, err)
		}
		out = append(out, &rec)
	}
	return out, nil
}

// seqKey encodes an event sequence number as an 8-byte big-endian key for
// sorted storage.
func seqKey(seq uint64) []byte {
	k := make([]byte, 8)
	binary.BigEndian.PutUint64(k, seq)
	return k
}

// encodeGob serializes a value using gob encoding.
func encodeGob(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// decodeGob deserializes gob-encoded data into a value.
func decodeGob(data []byte, v interface{}) error {
	return gob.NewDecoder(bytes.NewReader(data)).Decode(v)
}

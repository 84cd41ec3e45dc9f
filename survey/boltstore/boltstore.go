// Package boltstore is an implementation of the survey project store
// using BoltDB for storing data persistently
package boltstore

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/Wagner-UFRRJ/agrimensura/consts"
	"github.com/Wagner-UFRRJ/agrimensura/survey"

	"github.com/reusee/mmh3"
	bolt "go.etcd.io/bbolt"
)

var (
	projectsBucket = []byte("projects")
	idMapBucket    = []byte("idmap")
)

// BoltStore keeps projects in a projects bucket under a time-sortable
// key, with a second bucket mapping project ids to those keys.
type BoltStore struct {
	db *bolt.DB
}

// NewBoltStore creates a project store on the given BoltDB. The store
// takes ownership of the database, Close closes it. On a read-only
// database the buckets must already exist, no write transaction is
// attempted.
func NewBoltStore(db *bolt.DB) (survey.ClosableStore, error) {
	if !db.IsReadOnly() {
		if err := createBucket(db, projectsBucket); err != nil {
			return nil, err
		}
		if err := createBucket(db, idMapBucket); err != nil {
			return nil, err
		}
	}
	return &BoltStore{db: db}, nil
}

func createBucket(db *bolt.DB, name []byte) error {
	return db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(name)
		return err
	})
}

func (store *BoltStore) Close() {
	store.db.Close()
}

// Add stores the given project, failing if its id is already present
func (store *BoltStore) Add(p *survey.Project) error {
	encoded, err := json.Marshal(p)
	if err != nil {
		return err
	}
	key := sortableID(p)
	return store.db.Update(func(tx *bolt.Tx) error {
		ids := tx.Bucket(idMapBucket)
		if existing := ids.Get([]byte(p.ID)); existing != nil {
			return survey.ProjectAlreadyExists(p.ID)
		}
		if err := tx.Bucket(projectsBucket).Put(key, encoded); err != nil {
			return err
		}
		return ids.Put([]byte(p.ID), key)
	})
}

// Update overwrites a previously added project
func (store *BoltStore) Update(p *survey.Project) error {
	encoded, err := json.Marshal(p)
	if err != nil {
		return err
	}
	return store.db.Update(func(tx *bolt.Tx) error {
		key := tx.Bucket(idMapBucket).Get([]byte(p.ID))
		if key == nil {
			return survey.NotFound(p.ID)
		}
		return tx.Bucket(projectsBucket).Put(key, encoded)
	})
}

// Get returns the project with the given id
func (store *BoltStore) Get(id survey.ProjectID) (*survey.Project, error) {
	var found *survey.Project
	return found, store.db.View(func(tx *bolt.Tx) error {
		key := tx.Bucket(idMapBucket).Get([]byte(id))
		if key == nil {
			return survey.NotFound(id)
		}
		data := tx.Bucket(projectsBucket).Get(key)
		if data == nil {
			return survey.NotFound(id)
		}
		var p survey.Project
		if err := json.Unmarshal(data, &p); err != nil {
			return err
		}
		found = &p
		return nil
	})
}

// FindAll returns all projects ordered by creation time
func (store *BoltStore) FindAll(order consts.SortOrder) ([]*survey.Project, error) {
	found := make([]*survey.Project, 0)
	err := store.db.View(func(tx *bolt.Tx) error {
		c := tx.Bucket(projectsBucket).Cursor()
		first, next := c.First, c.Next
		if order == consts.Descending {
			first, next = c.Last, c.Prev
		}
		for k, v := first(); k != nil; k, v = next() {
			var p survey.Project
			if err := json.Unmarshal(v, &p); err != nil {
				return err
			}
			found = append(found, &p)
		}
		return nil
	})
	return found, err
}

func sortableID(p *survey.Project) []byte {
	var id bytes.Buffer
	id.WriteString(p.Created.UTC().Format("2006-01-02T15:04:05.000000000Z"))
	h := mmh3.New32()
	h.Write([]byte(strings.ToLower(p.Name)))
	h.Write([]byte(p.ID))
	id.Write(h.Sum(nil))
	return id.Bytes()
}
